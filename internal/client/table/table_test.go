package table

import (
	"bytes"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type row struct {
	Title string
	Site  string
	Tags  string
}

var columns = []Column[row]{
	{Label: "Title", Value: func(r row) string { return r.Title }},
	{Label: "Site", Value: func(r row) string { return r.Site }},
	{Label: "Tags", Render: func(r row) string { return "[" + r.Tags + "]" }},
}

func rows(n int) []row {
	out := make([]row, n)
	for i := range out {
		out[i] = row{Title: "item " + strconv.Itoa(i+1), Site: "site"}
	}
	return out
}

func TestFilter_EmptyQueryIsIdentity(t *testing.T) {
	data := []row{{Title: "b"}, {Title: "a"}, {Title: "c"}}
	assert.Equal(t, data, Filter(data, columns, ""))
	assert.Equal(t, data, Filter(data, columns, "   "))
}

func TestFilter_CaseInsensitiveAcrossColumns(t *testing.T) {
	data := []row{
		{Title: "Beach Cleanup", Site: "Coast"},
		{Title: "Forest walk", Site: "North Park"},
		{Title: "Museum", Site: "Downtown", Tags: "park"},
	}
	got := Filter(data, columns, "PARK")
	require.Len(t, got, 1)
	assert.Equal(t, "Forest walk", got[0].Title)

	got = Filter(data, columns, "o")
	assert.Len(t, got, 3)
	assert.Equal(t, "Beach Cleanup", got[0].Title, "original order is kept")
}

func TestFilter_IsIdempotent(t *testing.T) {
	data := rows(25)
	once := Filter(data, columns, "item 1")
	assert.Equal(t, once, Filter(once, columns, "item 1"))
}

func TestPaginate_LastPageSize(t *testing.T) {
	for _, tc := range []struct{ n, size int }{{25, 10}, {30, 10}, {1, 10}, {10, 3}, {9, 3}} {
		data := rows(tc.n)
		pages := (tc.n + tc.size - 1) / tc.size

		got, page := Paginate(data, pages, tc.size)
		want := tc.n % tc.size
		if want == 0 {
			want = tc.size
		}
		assert.Len(t, got, want, "n=%d size=%d", tc.n, tc.size)
		assert.Equal(t, pages, page.Pages)
		assert.Equal(t, tc.n, page.Total)
	}
}

func TestPaginate_Clamps(t *testing.T) {
	data := rows(25)

	got, page := Paginate(data, 0, 10)
	assert.Equal(t, 1, page.Number)
	assert.Equal(t, "item 1", got[0].Title)

	got, page = Paginate(data, 99, 10)
	assert.Equal(t, 3, page.Number)
	assert.Len(t, got, 5)

	got, page = Paginate([]row{}, 3, 0)
	assert.Empty(t, got)
	assert.Equal(t, Page{Number: 1, Size: DefaultPageSize, Pages: 1}, page)
}

func TestView_Render(t *testing.T) {
	data := rows(12)
	data[3].Tags = "x\ty"

	var buf bytes.Buffer
	v := View[row]{Columns: columns, Search: "item", Page: 1}
	require.NoError(t, v.Render(&buf, data))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1+10+1)
	assert.True(t, strings.HasPrefix(lines[0], "TITLE"))
	assert.Contains(t, lines[4], "[x y]")
	assert.Equal(t, "page 1/2, 12 item(s)", lines[len(lines)-1])
}
