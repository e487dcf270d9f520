package report

import (
	"sort"

	"github.com/riadafridishibly/wbf/scanner"
)

// Row is one path and its size in a Snapshot.
type Row struct {
	Path string
	Size uint64
}

// HumanSize returns the decimal, magnitude-prefixed size.
func (r Row) HumanSize() string {
	return Humanize(r.Size)
}

// Fields returns path, human-readable size and share of total.
func (r Row) Fields(total uint64) []string {
	return []string{r.Path, r.HumanSize(), Percentage(r.Size, total)}
}

// Snapshot is a point-in-time view of an Aggregator: rows sorted by size,
// largest first, and the running total at the time it was taken.
type Snapshot struct {
	Rows  []Row
	Total uint64
}

// Aggregator keeps the size of every accepted path and their running total.
// It is not safe for concurrent use; the scan loop owns it.
type Aggregator struct {
	minSize uint64
	sizes   map[string]uint64
	total   uint64
	seen    int
}

// NewAggregator returns an Aggregator rejecting entries smaller than minSize.
func NewAggregator(minSize uint64) *Aggregator {
	return &Aggregator{
		minSize: minSize,
		sizes:   make(map[string]uint64),
	}
}

// Accept records e unless it is smaller than the minimum size. A path seen
// before is overwritten and the total adjusted by the difference, so the
// total always equals the sum of the recorded sizes.
func (a *Aggregator) Accept(e scanner.Entry) bool {
	a.seen++

	if e.Size < a.minSize {
		return false
	}

	if old, ok := a.sizes[e.Path]; ok {
		a.total -= old
	}
	a.sizes[e.Path] = e.Size
	a.total += e.Size

	return true
}

// Total is the sum of all recorded sizes.
func (a *Aggregator) Total() uint64 {
	return a.total
}

// Len is the number of distinct recorded paths.
func (a *Aggregator) Len() int {
	return len(a.sizes)
}

// Seen is the number of entries offered to Accept, including rejected ones.
func (a *Aggregator) Seen() int {
	return a.seen
}

// Snapshot returns the recorded paths sorted by size descending. Equal sizes
// are ordered by path.
func (a *Aggregator) Snapshot() Snapshot {
	rows := make([]Row, 0, len(a.sizes))
	for path, size := range a.sizes {
		rows = append(rows, Row{Path: path, Size: size})
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Size != rows[j].Size {
			return rows[i].Size > rows[j].Size
		}
		return rows[i].Path < rows[j].Path
	})

	return Snapshot{Rows: rows, Total: a.total}
}
