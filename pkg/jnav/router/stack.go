package router

import "github.com/BrandonKowalski/jnav/pkg/jnav"

// Entry is a single screen on the backstack.
// It stores the destination, the concrete route it was opened with,
// the decoded route arguments and the entry's transient state.
type Entry struct {
	ID          int
	Destination jnav.Destination
	Route       string
	Arguments   jnav.Arguments
	State       *jnav.StateBag
}

// Matches reports whether route names this entry, either by destination
// path, by route template or by the concrete route it was opened with.
func (e *Entry) Matches(route string) bool {
	return route == e.Destination.Route() || route == e.Destination.Path() || route == e.Route
}

// Stack holds the backstack. The last entry is the current screen.
type Stack struct {
	entries []*Entry
}

// NewStack creates a new empty backstack.
func NewStack() *Stack {
	return &Stack{
		entries: make([]*Entry, 0),
	}
}

// Push adds an entry on top of the stack.
func (s *Stack) Push(entry *Entry) {
	s.entries = append(s.entries, entry)
}

// Pop removes and returns the top entry from the stack.
// Returns nil if the stack is empty.
func (s *Stack) Pop() *Entry {
	if len(s.entries) == 0 {
		return nil
	}
	entry := s.entries[len(s.entries)-1]
	s.entries[len(s.entries)-1] = nil
	s.entries = s.entries[:len(s.entries)-1]
	return entry
}

// Peek returns the top entry without removing it.
// Returns nil if the stack is empty.
func (s *Stack) Peek() *Entry {
	if len(s.entries) == 0 {
		return nil
	}
	return s.entries[len(s.entries)-1]
}

// Previous returns the entry below the top one, or nil.
func (s *Stack) Previous() *Entry {
	if len(s.entries) < 2 {
		return nil
	}
	return s.entries[len(s.entries)-2]
}

// IndexOf returns the index of the topmost entry matching route, or -1.
func (s *Stack) IndexOf(route string) int {
	for i := len(s.entries) - 1; i >= 0; i-- {
		if s.entries[i].Matches(route) {
			return i
		}
	}
	return -1
}

// Truncate keeps the first n entries.
func (s *Stack) Truncate(n int) {
	if n < 0 || n >= len(s.entries) {
		return
	}
	clear(s.entries[n:])
	s.entries = s.entries[:n]
}

// IsEmpty returns true if the stack has no entries.
func (s *Stack) IsEmpty() bool {
	return len(s.entries) == 0
}

// Len returns the number of entries in the stack.
func (s *Stack) Len() int {
	return len(s.entries)
}

// Paths lists destination paths from bottom to top.
func (s *Stack) Paths() []string {
	paths := make([]string, len(s.entries))
	for i, e := range s.entries {
		paths[i] = e.Destination.Path()
	}
	return paths
}

// Clear removes all entries from the stack.
func (s *Stack) Clear() {
	s.Truncate(0)
}
