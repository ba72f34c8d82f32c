package nav

// Entry is a single session history entry: the path it was created for and
// an opaque state identifier assigned at push time.
type Entry struct {
	Path  string
	State string
}

// Stack holds session history entries. Environments that own their history
// (the headless one) keep two of these for the back and forward directions.
type Stack struct {
	entries []Entry
}

// NewStack creates a new empty history stack.
func NewStack() *Stack {
	return &Stack{
		entries: make([]Entry, 0),
	}
}

// Push adds a new entry to the stack.
func (s *Stack) Push(path, state string) {
	s.entries = append(s.entries, Entry{
		Path:  path,
		State: state,
	})
}

// Pop removes and returns the top entry from the stack.
// Returns nil if the stack is empty.
func (s *Stack) Pop() *Entry {
	if len(s.entries) == 0 {
		return nil
	}
	entry := s.entries[len(s.entries)-1]
	s.entries = s.entries[:len(s.entries)-1]
	return &entry
}

// Peek returns the top entry without removing it.
// Returns nil if the stack is empty.
func (s *Stack) Peek() *Entry {
	if len(s.entries) == 0 {
		return nil
	}
	return &s.entries[len(s.entries)-1]
}

// IsEmpty returns true if the stack has no entries.
func (s *Stack) IsEmpty() bool {
	return len(s.entries) == 0
}

// Len returns the number of entries in the stack.
func (s *Stack) Len() int {
	return len(s.entries)
}

// Clear removes all entries from the stack.
func (s *Stack) Clear() {
	s.entries = s.entries[:0]
}
