// Package model holds the list state the TUI renders and mutates: two
// ordered task lists plus a selection cursor each, and the active-tab enum.
package model

// Tab selects which task list is active (rendered and receiving keys).
type Tab int

const (
	TabTodo Tab = iota
	TabDone
)

// Toggle returns the other tab.
func (t Tab) Toggle() Tab {
	if t == TabTodo {
		return TabDone
	}
	return TabTodo
}

func (t Tab) String() string {
	if t == TabTodo {
		return "todo"
	}
	return "done"
}

// TaskList is an ordered list of single-line items plus a selection cursor.
//
// Invariant: when the list is non-empty, 0 <= Cursor < len(Items). When the
// list is empty the cursor is unconstrained; every read checks non-emptiness
// first, and the cursor is reclamped the moment the list grows again.
type TaskList struct {
	Items  []string
	Cursor int
}

func (l *TaskList) Len() int { return len(l.Items) }

// Selected returns the item under the cursor, or false for an empty list.
func (l *TaskList) Selected() (string, bool) {
	if len(l.Items) == 0 {
		return "", false
	}
	l.clamp()
	return l.Items[l.Cursor], true
}

// SelectionUp moves the cursor one item up, clamped at the first item.
func (l *TaskList) SelectionUp() {
	if len(l.Items) == 0 {
		return
	}
	l.clamp()
	if l.Cursor > 0 {
		l.Cursor--
	}
}

// SelectionDown moves the cursor one item down, clamped at the last item.
func (l *TaskList) SelectionDown() {
	if len(l.Items) == 0 {
		return
	}
	l.clamp()
	if l.Cursor+1 < len(l.Items) {
		l.Cursor++
	}
}

// Append adds an item at the end, reclamping a cursor left dangling while
// the list was empty.
func (l *TaskList) Append(item string) {
	l.Items = append(l.Items, item)
	l.clamp()
}

func (l *TaskList) clamp() {
	if len(l.Items) == 0 {
		return
	}
	if l.Cursor < 0 {
		l.Cursor = 0
	}
	if l.Cursor >= len(l.Items) {
		l.Cursor = len(l.Items) - 1
	}
}

// Transfer removes src's selected item and appends it to dst. A transferred
// item always becomes dst's most recent entry; its old position is lost.
// Empty src is a no-op. After removal the src cursor is reclamped to the
// shortened list when src is still non-empty.
func Transfer(src, dst *TaskList) {
	item, ok := src.Selected()
	if !ok {
		return
	}
	src.Items = append(src.Items[:src.Cursor], src.Items[src.Cursor+1:]...)
	if src.Cursor >= len(src.Items) && len(src.Items) > 0 {
		src.Cursor = len(src.Items) - 1
	}
	dst.Append(item)
}

// Board is the whole tracked state: the todo and done lists.
type Board struct {
	Todo TaskList
	Done TaskList
}

// List returns the task list a tab addresses.
func (b *Board) List(t Tab) *TaskList {
	if t == TabTodo {
		return &b.Todo
	}
	return &b.Done
}
