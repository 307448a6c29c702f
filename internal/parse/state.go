package parse

import "slices"

// State is a cursor over an argument vector
type State interface {
	Pos() int             // Get the current position
	CurrentArg() string   // Get the current argument
	Peek() (string, bool) // Peek at the next argument
	Advance() bool        // Move to the next argument
	Remaining() []string  // Get the arguments after the current position
}

// DefaultState is the default implementation of the State interface
type DefaultState struct {
	pos  int
	args []string
}

// NewState creates a cursor positioned before the first element of args
func NewState(args []string) *DefaultState {
	return &DefaultState{
		pos:  -1,
		args: args,
	}
}

// Pos returns the current position, -1 before the first call to Advance
func (s *DefaultState) Pos() int {
	return s.pos
}

// CurrentArg returns the argument at the current position or "" when out of range
func (s *DefaultState) CurrentArg() string {
	if s.pos < 0 || s.pos >= len(s.args) {
		return ""
	}

	return s.args[s.pos]
}

// Peek returns the next argument without moving. The bool is false at the end of the list.
func (s *DefaultState) Peek() (string, bool) {
	if s.pos+1 < len(s.args) {
		return s.args[s.pos+1], true
	}

	return "", false
}

// Advance moves to the next argument, returning false at the end of the list
func (s *DefaultState) Advance() bool {
	if s.pos+1 < len(s.args) {
		s.pos++
		return true
	}

	return false
}

// Remaining returns a copy of the arguments after the current position
func (s *DefaultState) Remaining() []string {
	if s.pos+1 >= len(s.args) {
		return nil
	}

	return slices.Clone(s.args[s.pos+1:])
}

