package tui

import (
	"context"
	"strings"
	"testing"
	"time"

	"codeberg.org/tslocum/cview"
	"github.com/gdamore/tcell/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riadafridishibly/wbf/report"
)

func sampleFrame() *Frame {
	return &Frame{
		Root: "/data",
		Seen: 3,
		Snapshot: report.Snapshot{
			Rows: []report.Row{
				{Path: "/data/big.iso", Size: 1_500_000},
				{Path: "/data/[red]notes.txt", Size: 400_000},
				{Path: "/data/a.txt", Size: 100_000},
			},
			Total: 2_000_000,
		},
	}
}

func rowTexts(table *cview.Table, row int) []string {
	texts := make([]string, len(tableHeader))
	for col := range texts {
		texts[col] = table.GetCell(row, col).GetText()
	}
	return texts
}

func TestNewTable(t *testing.T) {
	theme, err := LookupTheme(DefaultTheme)
	require.NoError(t, err)

	assert.Equal(t, "Table", newTable(&theme).GetTitle())
}

func TestBuildTable(t *testing.T) {
	theme, err := LookupTheme(DefaultTheme)
	require.NoError(t, err)
	table := newTable(&theme)

	buildTable(table, &theme, sampleFrame(), 20)

	require.Equal(t, 4, table.GetRowCount())
	assert.Equal(t, []string{"File", "Size", "Percentage of Total"}, rowTexts(table, 0))
	assert.Equal(t, []string{"/data/big.iso", "1.50 MB", "75.00%"}, rowTexts(table, 1))
	assert.Equal(t, []string{"/data/[red[]notes.txt", "400.00 kB", "20.00%"}, rowTexts(table, 2))
	assert.Equal(t, []string{"/data/a.txt", "100.00 kB", "5.00%"}, rowTexts(table, 3))
}

func TestBuildTableVisibleRows(t *testing.T) {
	theme, err := LookupTheme(DefaultTheme)
	require.NoError(t, err)
	table := newTable(&theme)

	tests := map[string]struct {
		height int
		rows   int
	}{
		"all rows fit":   {height: 6, rows: 4},
		"two rows fit":   {height: 5, rows: 3},
		"header only":    {height: 3, rows: 1},
		"no room at all": {height: 0, rows: 1},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			buildTable(table, &theme, sampleFrame(), tc.height)

			require.Equal(t, tc.rows, table.GetRowCount())
			assert.Equal(t, "File", table.GetCell(0, 0).GetText())
			if tc.rows > 1 {
				assert.Equal(t, "/data/big.iso", table.GetCell(1, 0).GetText(), "largest rows are kept")
			}
		})
	}
}

func screenText(sim tcell.SimulationScreen) string {
	cells, w, _ := sim.GetContents()
	var b strings.Builder
	for i, cell := range cells {
		if i > 0 && i%w == 0 {
			b.WriteByte('\n')
		}
		if len(cell.Runes) > 0 {
			b.WriteRune(cell.Runes[0])
		} else {
			b.WriteByte(' ')
		}
	}
	return b.String()
}

func newSimScreen(t *testing.T, wait bool) (*Screen, tcell.SimulationScreen) {
	t.Helper()
	theme, err := LookupTheme(DefaultTheme)
	require.NoError(t, err)

	sim := tcell.NewSimulationScreen("UTF-8")
	s, err := newScreen(sim, theme, wait)
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	sim.SetSize(100, 30)
	return s, sim
}

func TestScreenRender(t *testing.T) {
	s, sim := newSimScreen(t, false)

	require.NoError(t, s.Render(*sampleFrame()))

	text := screenText(sim)
	assert.Contains(t, text, "Scanning: /data")
	assert.Contains(t, text, "Table")
	assert.Contains(t, text, "Percentage of Total")
	assert.Contains(t, text, "/data/big.iso")
	assert.Contains(t, text, "/data/[red]notes.txt", "paths are shown literally")
	assert.Contains(t, text, "75.00%")
	assert.Contains(t, text, "q/Esc/Ctrl+C: Quit")

	require.NoError(t, s.Finish(context.Background()), "returns at once without wait")
}

func TestScreenQuitKey(t *testing.T) {
	s, sim := newSimScreen(t, true)
	require.NoError(t, s.Render(*sampleFrame()))

	sim.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)

	select {
	case <-s.Interrupted():
	case <-time.After(5 * time.Second):
		t.Fatal("quit key was not reported")
	}
	require.NoError(t, s.Finish(context.Background()))
	assert.Contains(t, screenText(sim), "Scan complete")
}

func TestScreenCloseTwice(t *testing.T) {
	s, _ := newSimScreen(t, false)

	require.NoError(t, s.Close())
	require.NoError(t, s.Close())
}
