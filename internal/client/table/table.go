// Package table filters, paginates and renders lists of entities from
// column descriptors.
package table

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
)

// DefaultPageSize is used when a View has no page size.
const DefaultPageSize = 10

// Column describes one column. Value is the searchable text of a row; Render,
// when set, replaces it for display only.
type Column[T any] struct {
	Label  string
	Value  func(T) string
	Render func(T) string
}

func (c Column[T]) cell(row T) string {
	if c.Render != nil {
		return c.Render(row)
	}
	if c.Value != nil {
		return c.Value(row)
	}
	return ""
}

// Filter keeps the rows where any column Value contains query, ignoring case.
// An empty query returns rows unchanged.
func Filter[T any](rows []T, columns []Column[T], query string) []T {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return rows
	}
	out := make([]T, 0, len(rows))
	for _, row := range rows {
		for _, c := range columns {
			if c.Value != nil && strings.Contains(strings.ToLower(c.Value(row)), query) {
				out = append(out, row)
				break
			}
		}
	}
	return out
}

// Page locates a slice of a filtered list.
type Page struct {
	Number int
	Size   int
	Pages  int
	Total  int
}

// Paginate returns page number (1-based, clamped into range) of rows.
func Paginate[T any](rows []T, number, size int) ([]T, Page) {
	if size <= 0 {
		size = DefaultPageSize
	}
	pages := (len(rows) + size - 1) / size
	if pages == 0 {
		pages = 1
	}
	number = min(max(number, 1), pages)

	start := min((number-1)*size, len(rows))
	end := min(start+size, len(rows))
	return rows[start:end], Page{Number: number, Size: size, Pages: pages, Total: len(rows)}
}

// View is the state a list is rendered from.
type View[T any] struct {
	Columns  []Column[T]
	Search   string
	Page     int
	PageSize int
}

// Apply filters rows by Search and returns the requested page.
func (v View[T]) Apply(rows []T) ([]T, Page) {
	return Paginate(Filter(rows, v.Columns, v.Search), v.Page, v.PageSize)
}

// Render writes the visible page of rows as an aligned table followed by a
// page footer.
func (v View[T]) Render(w io.Writer, rows []T) error {
	visible, page := v.Apply(rows)
	if err := Write(w, v.Columns, visible); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "page %d/%d, %d item(s)\n", page.Number, page.Pages, page.Total)
	return err
}

// Write renders rows under a header line built from the column labels.
func Write[T any](w io.Writer, columns []Column[T], rows []T) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	labels := make([]string, len(columns))
	for i, c := range columns {
		labels[i] = strings.ToUpper(c.Label)
	}
	fmt.Fprintln(tw, strings.Join(labels, "\t"))

	cells := make([]string, len(columns))
	for _, row := range rows {
		for i, c := range columns {
			cells[i] = sanitize(c.cell(row))
		}
		fmt.Fprintln(tw, strings.Join(cells, "\t"))
	}
	return tw.Flush()
}

func sanitize(s string) string {
	return strings.NewReplacer("\t", " ", "\n", " ", "\r", " ").Replace(s)
}
