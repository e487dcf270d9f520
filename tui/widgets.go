package tui

import (
	"codeberg.org/tslocum/cview"

	"github.com/riadafridishibly/wbf/report"
)

var tableHeader = []string{"File", "Size", "Percentage of Total"}

const tableMargin = 5

func newTable(theme *Theme) *cview.Table {
	table := cview.NewTable()
	table.SetBorder(true)
	table.SetTitle("Table")
	table.SetFixed(1, 0)
	table.SetBorders(false)
	table.SetSeparator(' ')
	table.SetBackgroundColor(theme.bg)
	table.SetBorderColor(theme.border)
	table.SetTitleColor(theme.headerFg)
	return table
}

func newStatusLine(theme *Theme) *cview.TextView {
	line := cview.NewTextView()
	line.SetTextAlign(cview.AlignLeft)
	line.SetBackgroundColor(theme.statusBg)
	line.SetTextColor(theme.statusFg)
	return line
}

// tableRect places the table inside a margin, shrinking the margin on small
// terminals. The status and footer lines live in the margin.
func tableRect(w, h int) (x, y, width, height int) {
	m := tableMargin
	for m > 1 && (w-2*m < 20 || h-2*m < 4) {
		m--
	}
	return m, m, max(w-2*m, 0), max(h-2*m, 0)
}

// buildTable fills table with the rows of f that fit in height cells: the
// border and the header take three lines.
func buildTable(table *cview.Table, theme *Theme, f *Frame, height int) {
	table.Clear()

	for col, title := range tableHeader {
		cell := cview.NewTableCell(title)
		cell.SetTextColor(theme.headerFg)
		cell.SetSelectable(false)
		if col == 0 {
			cell.SetExpansion(1)
		} else {
			cell.SetAlign(cview.AlignRight)
		}
		table.SetCell(0, col, cell)
	}

	rows := f.Snapshot.Rows
	if visible := max(height-3, 0); len(rows) > visible {
		rows = rows[:visible]
	}

	for i, row := range rows {
		pathCell := cview.NewTableCell(cview.Escape(row.Path))
		pathCell.SetTextColor(theme.fg)
		pathCell.SetAlign(cview.AlignLeft)
		pathCell.SetExpansion(1)
		table.SetCell(i+1, 0, pathCell)

		sizeCell := cview.NewTableCell(row.HumanSize())
		sizeCell.SetTextColor(theme.sizeFg)
		sizeCell.SetAlign(cview.AlignRight)
		table.SetCell(i+1, 1, sizeCell)

		pctCell := cview.NewTableCell(report.Percentage(row.Size, f.Snapshot.Total))
		pctCell.SetTextColor(theme.pctFg)
		pctCell.SetAlign(cview.AlignRight)
		table.SetCell(i+1, 2, pctCell)
	}
}
