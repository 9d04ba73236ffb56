// Package renderer turns store data into markdown reports for the terminal.
package renderer

import (
	"fmt"
	"io"
	"strings"
)

// table is a small helper to build aligned markdown tables.
type table struct {
	b strings.Builder
}

func (t *table) Row(cells ...string) {
	t.b.WriteString("| ")
	t.b.WriteString(strings.Join(cells, " | "))
	t.b.WriteString(" |\n")
}

// Header writes the header row and its separator.
func (t *table) Header(cells ...string) {
	t.Row(cells...)
	seps := make([]string, len(cells))
	for i := range seps {
		seps[i] = "---"
	}
	t.Row(seps...)
}

func (t *table) String() string { return t.b.String() }

// ConditionalBlock lets you fully write a block and decide at the end to print it or not.
// If the block function returns true, the content is printed to w, otherwise it is discarded.
func ConditionalBlock(w io.Writer, block func(io.Writer) bool) {
	b := &strings.Builder{}
	if block(b) {
		io.WriteString(w, b.String())
	}
}

func title(b *strings.Builder, format string, args ...any) {
	fmt.Fprintf(b, "# "+format+"\n\n", args...)
}

func section(b *strings.Builder, format string, args ...any) {
	fmt.Fprintf(b, "## "+format+"\n\n", args...)
}

// titleCase upcases the first letter of a word like "income" or "expense".
func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
