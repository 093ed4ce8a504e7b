package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"
)

// frame is an immediate-mode drawing surface. One is created per View call
// and discarded; all layout state (drawing cursor, open list context) lives
// for a single render and is rebuilt from the board on the next. There is no
// retained widget tree to fall out of sync with the model.
type frame struct {
	width int
	row   int
	col   int
	lines []string

	// Non-nil while a list context is open. At most one may be open, and
	// list elements may only be drawn inside one; violations are caller
	// bugs in the rendering code and panic rather than recover.
	list *frameList
}

type frameList struct {
	selected int
}

func newFrame(width int) *frame {
	if width < 1 {
		width = 1
	}
	return &frame{width: width}
}

// begin resets the drawing cursor to the given origin. Call once per frame
// before any drawing.
func (f *frame) begin(row, col int) {
	f.row = row
	f.col = col
}

// label draws text at the cursor in the given style and advances the cursor
// one row down. The row is padded (or cut) to the frame width so row styles
// span the full line; there is no wrapping.
func (f *frame) label(text string, st lipgloss.Style) {
	line := strings.Repeat(" ", f.col) + text
	w := xansi.StringWidth(line)
	if w < f.width {
		line += strings.Repeat(" ", f.width-w)
	} else if w > f.width {
		line = xansi.Cut(line, 0, f.width)
	}

	for len(f.lines) <= f.row {
		f.lines = append(f.lines, "")
	}
	f.lines[f.row] = st.Render(line)
	f.row++
}

// beginList opens the list context. selected is the index (into the items
// about to be drawn) that gets the highlight style.
func (f *frame) beginList(selected int) {
	if f.list != nil {
		panic("tui: nested list contexts are not allowed")
	}
	f.list = &frameList{selected: selected}
}

// listElement draws one list row: a label in the highlight style when index
// is the open list's selected index, the regular row style otherwise.
func (f *frame) listElement(text string, index int) {
	if f.list == nil {
		panic("tui: list element drawn outside of a list context")
	}
	st := styleRow()
	if index == f.list.selected {
		st = styleRowSelected()
	}
	f.label(text, st)
}

// endList closes the list context so a new one may open.
func (f *frame) endList() {
	f.list = nil
}

// end is a no-op kept for symmetry with begin; callers need not special-case
// frame teardown.
func (f *frame) end() {}

func (f *frame) String() string {
	return strings.Join(f.lines, "\n")
}
