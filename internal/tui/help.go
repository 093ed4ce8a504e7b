package tui

import (
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
)

const helpMarkdown = `# twodo

Two lists, one file. The active tab is marked with brackets in the header.

## Keys

| Key | Effect |
|-----|--------|
| k / up | move selection up |
| j / down | move selection down |
| enter | move the selected item to the other list |
| tab | switch between TODO and DONE |
| s | copy the selected done item into todo (done keeps it) |
| e | export the current state to a file named TODO in the working directory |
| ? | this help |
| q | quit (press any key at the pause, then the file is saved) |

Any other key is ignored.

## File format

One item per line, order is display order:

` + "```" + `
TODO: water the plants
DONE: buy milk
` + "```" + `

A line with any other prefix is rejected at startup with its line number.
`

var (
	helpRendererMu sync.Mutex
	// Cache renderers by wrap width. Creating a renderer with WithAutoStyle
	// can trigger terminal capability queries that may block on some
	// terminals, so a fixed style is used and cached.
	helpRenderers = map[int]*glamour.TermRenderer{}
)

func renderHelp(width int) string {
	if width < 20 {
		width = 20
	}
	style := "dark"
	// lipgloss background detection already ran by the time help renders.
	if !hasDarkBackground() {
		style = "light"
	}

	helpRendererMu.Lock()
	r := helpRenderers[width]
	if r == nil {
		rr, err := glamour.NewTermRenderer(
			glamour.WithStandardStyle(style),
			glamour.WithWordWrap(width),
		)
		if err != nil {
			helpRendererMu.Unlock()
			return helpMarkdown
		}
		helpRenderers[width] = rr
		r = rr
	}
	helpRendererMu.Unlock()

	out, err := r.Render(helpMarkdown)
	if err != nil {
		return helpMarkdown
	}
	return strings.TrimRight(out, "\n") + "\n" + styleMuted().Render("press any key to go back")
}
