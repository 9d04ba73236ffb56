package cmd

import (
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
)

// printMarkdown renders a markdown report on the terminal. When rendering is
// not possible (dumb terminal, broken style) the raw markdown is still usable,
// so it is printed as-is.
func printMarkdown(markdown string) {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(0),
	)
	if err != nil {
		fmt.Println(markdown)
		return
	}
	out, err := r.Render(markdown)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not render markdown: %v\n", err)
		fmt.Println(markdown)
		return
	}
	fmt.Print(out)
}
