package surface

import "errors"

var (
	// ErrShapeMismatch is returned when vertex rows or face rows do not hold
	// exactly three entries.
	ErrShapeMismatch = errors.New("surface: shape mismatch")
	// ErrVertexOutOfRange is returned when a vertex id is not in [0, N).
	ErrVertexOutOfRange = errors.New("surface: vertex id out of range")
	// ErrInvalidParameter is returned for a parameter the geometry cannot
	// honor, such as a mapping tolerance that leaves a vertex unmatched.
	ErrInvalidParameter = errors.New("surface: invalid parameter")
	// ErrUnreachable is returned when no path joins two vertices.
	ErrUnreachable = errors.New("surface: vertex unreachable")
)
