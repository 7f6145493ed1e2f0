package seating

import "errors"

var (
	// ErrNotFound marks a lookup or mutation against an id that is not in the tree.
	ErrNotFound = errors.New("node not found")
	// ErrStructuralViolation marks an id that exists but not under the given parent path.
	ErrStructuralViolation = errors.New("node does not belong to parent")
	// ErrInvalidGeometry marks geometry that fails validation.
	ErrInvalidGeometry = errors.New("invalid geometry")
	// ErrInvalidInput marks a non-geometric field that fails validation.
	ErrInvalidInput = errors.New("invalid input")
	// ErrInvalidDocument marks a serialized layout that violates tree invariants.
	ErrInvalidDocument = errors.New("invalid layout document")
)

// IsNoOp reports whether err describes a mutation that was skipped because its
// target could not be resolved. The tree returned alongside such an error is
// the unchanged input and the editing session can continue.
func IsNoOp(err error) bool {
	return errors.Is(err, ErrNotFound) || errors.Is(err, ErrStructuralViolation)
}
