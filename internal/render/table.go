// Package render turns expense listings into aligned text tables.
package render

import (
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"expense-cli/internal/models"
)

// Column headers are fixed. The serial number is a display-only 1-based
// index assigned fresh on every rendering; it is never persisted.
var headers = []string{"Serial Number", "Task ID", "Title", "Description", "Date", "Amount"}

// ExpenseTable writes the expenses to w as an aligned table. Rows keep the
// order they were given in, so the serial number column matches the slice
// index plus one.
func ExpenseTable(w io.Writer, expenses []models.Expense) {
	table := tablewriter.NewWriter(w)
	table.SetHeader(headers)
	table.SetAutoFormatHeaders(false)

	for i, e := range expenses {
		table.Append([]string{
			strconv.Itoa(i + 1),
			strconv.FormatInt(e.ID, 10),
			e.Title,
			e.Description,
			e.Date,
			e.Amount.String(),
		})
	}

	table.Render()
}
