package ui

import (
	"fmt"
	"strings"
)

// Table creates a formatted table for output
type Table struct {
	headers  []string
	rows     [][]string
	maxWidth int // Maximum total table width
}

// NewTable creates a new table
func NewTable(headers ...string) *Table {
	return &Table{
		headers:  headers,
		rows:     [][]string{},
		maxWidth: 120, // Default max width
	}
}

// SetMaxWidth sets the maximum table width
func (t *Table) SetMaxWidth(width int) {
	t.maxWidth = width
}

// AddRow adds a row to the table
func (t *Table) AddRow(values ...string) {
	row := make([]string, len(t.headers))
	for i := range t.headers {
		if i < len(values) {
			row[i] = values[i]
		}
	}
	t.rows = append(t.rows, row)
}

// Render renders the table to stdout
func (t *Table) Render() {
	if len(t.headers) == 0 {
		return
	}

	widths := t.columnWidths()

	border := func(left, mid, right string) string {
		parts := make([]string, len(widths))
		for i, w := range widths {
			parts[i] = strings.Repeat("─", w)
		}
		return left + strings.Join(parts, mid) + right
	}

	printCells := func(cells []string) {
		fmt.Print("│")
		for i := range t.headers {
			val := ""
			if i < len(cells) {
				val = cells[i]
			}
			fmt.Printf(" %-*s│", widths[i]-2, truncate(val, widths[i]-2))
		}
		fmt.Println()
	}

	fmt.Println(border("┌", "┬", "┐"))
	printCells(t.headers)
	fmt.Println(border("├", "┼", "┤"))
	for _, row := range t.rows {
		printCells(row)
	}
	fmt.Println(border("└", "┴", "┘"))
}

// columnWidths sizes every column to its widest cell, then shrinks the widest
// columns until the table fits maxWidth.
func (t *Table) columnWidths() []int {
	widths := make([]int, len(t.headers))
	totalWidth := 0
	for i, h := range t.headers {
		widths[i] = len(h)
		for _, row := range t.rows {
			if i < len(row) && len(row[i]) > widths[i] {
				widths[i] = len(row[i])
			}
		}
		widths[i] += 2 // Padding
		totalWidth += widths[i] + 1
	}

	excess := totalWidth - t.maxWidth
	for excess > 0 {
		maxIdx := 0
		for i := 1; i < len(widths); i++ {
			if widths[i] > widths[maxIdx] {
				maxIdx = i
			}
		}
		if widths[maxIdx] <= 10 {
			break
		}
		widths[maxIdx]--
		excess--
	}

	return widths
}

// CompactTable creates a simpler table without borders
func CompactTable(headers []string, rows [][]string) {
	if len(headers) == 0 {
		return
	}

	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
		for _, row := range rows {
			if i < len(row) && len(row[i]) > widths[i] {
				widths[i] = len(row[i])
			}
		}
		widths[i] += 2
	}

	for i, h := range headers {
		fmt.Printf("%-*s", widths[i], h)
		if i < len(headers)-1 {
			fmt.Print("  ")
		}
	}
	fmt.Println()

	for i, w := range widths {
		fmt.Print(strings.Repeat("─", w))
		if i < len(widths)-1 {
			fmt.Print("  ")
		}
	}
	fmt.Println()

	for _, row := range rows {
		for i := range headers {
			val := ""
			if i < len(row) {
				val = row[i]
			}
			fmt.Printf("%-*s", widths[i], val)
			if i < len(headers)-1 {
				fmt.Print("  ")
			}
		}
		fmt.Println()
	}
}

// truncate truncates a string to max length with ellipsis
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}
