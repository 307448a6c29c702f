package types

// ArgMode describes whether an option takes an argument
type ArgMode int

// String returns the string representation of an ArgMode
func (m ArgMode) String() string {
	switch m {
	case ArgOptional:
		return "optional"
	case ArgRequired:
		return "required"
	case ArgNone:
		fallthrough
	default:
		return "none"
	}
}

// TakesArgument reports whether an option with this mode accepts an argument at all
func (m ArgMode) TakesArgument() bool {
	return m == ArgOptional || m == ArgRequired
}

const (
	ArgNone     ArgMode = iota // ArgNone denotes an option which never takes an argument
	ArgOptional ArgMode = 1    // ArgOptional denotes an option whose argument must be attached (--foo=ARG, -fARG)
	ArgRequired ArgMode = 2    // ArgRequired denotes an option which consumes the next element when no argument is attached
)

// KeyValue denotes Key Value pairs
type KeyValue[K, V any] struct {
	Key   K
	Value V
}
