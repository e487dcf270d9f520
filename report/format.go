package report

import (
	"fmt"

	"github.com/dustin/go-humanize"
)

// Humanize formats b with a decimal (base 1000) prefix. Values below 1000
// are printed as whole bytes ("512 B"); anything larger gets exactly two
// decimals ("1.46 MB").
func Humanize(b uint64) string {
	if b < 1000 {
		return fmt.Sprintf("%d B", b)
	}

	value, prefix := humanize.ComputeSI(float64(b))
	return fmt.Sprintf("%.2f %sB", value, prefix)
}

// Percentage formats part as a share of total with two decimals. A zero
// total yields "0.00%".
func Percentage(part, total uint64) string {
	if total == 0 {
		return "0.00%"
	}
	return fmt.Sprintf("%.2f%%", float64(part)/float64(total)*100)
}
