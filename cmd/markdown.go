package cmd

import (
	"fmt"

	"github.com/charmbracelet/glamour"
)

// renderMarkdown styles markdown for the terminal.
func renderMarkdown(md string) (string, error) {
	return glamour.Render(md, "auto")
}

// printMarkdown renders markdown and prints it. On any rendering problem
// the raw markdown is printed instead, reports must never be lost to a
// styling error.
func printMarkdown(md string) {
	out, err := renderMarkdown(md)
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}
