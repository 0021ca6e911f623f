// Package formatter renders aligned markdown tables for console reports.
package formatter

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"

	"recpipe/internal/models"
)

// minColumnWidth keeps the separator row at least "---" wide.
const minColumnWidth = 3

// RenderTable renders a header row and data rows as an aligned markdown
// table. Column widths are display widths, so wide characters line up.
// Ragged rows are padded with empty cells.
func RenderTable(headers []string, rows [][]string) string {
	colCount := len(headers)
	for _, row := range rows {
		if len(row) > colCount {
			colCount = len(row)
		}
	}

	if colCount == 0 {
		return ""
	}

	// Measure display widths over header and body.
	colWidths := make([]int, colCount)

	measure := func(row []string) {
		for i := 0; i < len(row) && i < colCount; i++ {
			if width := runewidth.StringWidth(row[i]); width > colWidths[i] {
				colWidths[i] = width
			}
		}
	}

	measure(headers)

	for _, row := range rows {
		measure(row)
	}

	for i := range colWidths {
		if colWidths[i] < minColumnWidth {
			colWidths[i] = minColumnWidth
		}
	}

	var sb strings.Builder

	writeRow := func(row []string) {
		sb.WriteString("|")

		for i := 0; i < colCount; i++ {
			content := ""
			if i < len(row) {
				content = row[i]
			}

			sb.WriteString(" ")
			sb.WriteString(content)

			if padding := colWidths[i] - runewidth.StringWidth(content); padding > 0 {
				sb.WriteString(strings.Repeat(" ", padding))
			}

			sb.WriteString(" |")
		}

		sb.WriteString("\n")
	}

	writeRow(headers)

	sb.WriteString("|")

	for i := 0; i < colCount; i++ {
		sb.WriteString(" ")
		sb.WriteString(strings.Repeat("-", colWidths[i]))
		sb.WriteString(" |")
	}

	sb.WriteString("\n")

	for _, row := range rows {
		writeRow(row)
	}

	return sb.String()
}

// PairRows converts a sequence of two-element tuples into string table rows.
func PairRows(pairs []models.Pair) [][]string {
	rows := make([][]string, 0, len(pairs))

	for _, pair := range pairs {
		rows = append(rows, []string{stringify(pair[0]), stringify(pair[1])})
	}

	return rows
}

func stringify(v any) string {
	switch value := v.(type) {
	case nil:
		return ""
	case string:
		return value
	default:
		return fmt.Sprintf("%v", value)
	}
}
