package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// maxCellWidth bounds every rendered cell.
const maxCellWidth = 48

// RenderTable renders rows under headers as a bordered table. An empty
// rows slice renders the headers and a "no records" line.
func RenderTable(headers []string, rows [][]string) string {
	if len(rows) == 0 {
		return renderTable(headers, nil) + "\n" + helpStyle.Render("no records")
	}
	return renderTable(headers, rows)
}

// RenderRecord renders field/value pairs as a two-column table.
func RenderRecord(fields [][2]string) string {
	rows := make([][]string, 0, len(fields))
	for _, f := range fields {
		rows = append(rows, []string{f[0], f[1]})
	}
	return renderTable([]string{"Field", "Value"}, rows)
}

func renderTable(headers []string, rows [][]string) string {
	fitted := make([][]string, 0, len(rows))
	for _, row := range rows {
		cells := make([]string, len(row))
		for i, c := range row {
			cells[i] = fitText(c, maxCellWidth)
		}
		fitted = append(fitted, cells)
	}

	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(tableBorderStyle).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return tableHeaderStyle
			}
			return tableCellStyle
		}).
		Headers(headers...).
		Rows(fitted...).
		Render()
}
