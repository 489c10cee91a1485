package lang

import "fmt"

// argCountError formats an arity mismatch for a builtin.
func argCountError(name string, want string, got int) error {
	return fmt.Errorf("%s: expected %s argument(s), got %d", name, want, got)
}

// argTypeError formats a type mismatch, citing the 1-based argument index.
func argTypeError(name string, index int, want Kind, got Kind) error {
	return fmt.Errorf("%s: argument %d: expected %s, got %s", name, index, want, got)
}
