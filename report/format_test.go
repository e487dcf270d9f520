package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHumanize(t *testing.T) {
	tests := []struct {
		in   uint64
		want string
	}{
		{0, "0 B"},
		{512, "512 B"},
		{999, "999 B"},
		{1000, "1.00 kB"},
		{1500, "1.50 kB"},
		{1_460_000, "1.46 MB"},
		{1_500_000, "1.50 MB"},
		{1_000_000, "1.00 MB"},
		{1_000_000_000, "1.00 GB"},
		{2_500_000_000_000, "2.50 TB"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Humanize(tt.in), "Humanize(%d)", tt.in)
	}
}

func TestPercentage(t *testing.T) {
	assert.Equal(t, "25.00%", Percentage(50, 200))
	assert.Equal(t, "100.00%", Percentage(7, 7))
	assert.Equal(t, "33.33%", Percentage(1, 3))
	assert.Equal(t, "0.00%", Percentage(0, 10))
	assert.Equal(t, "0.00%", Percentage(42, 0))
}

func TestRowFields(t *testing.T) {
	row := Row{Path: "/data/video.mkv", Size: 1_460_000}
	assert.Equal(t, []string{"/data/video.mkv", "1.46 MB", "50.00%"}, row.Fields(2_920_000))
}
