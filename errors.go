package aabbtree

import "errors"

// Sentinel errors returned at the public call boundary. They signal
// programmer-visible argument mistakes; none are transient or retriable,
// and the tree never returns them after a successful validation step.
var (
	// ErrDimensionMismatch is returned when a supplied box has the wrong
	// number of axes, or lower and upper disagree in length.
	ErrDimensionMismatch = errors.New("aabbtree: dimension mismatch")

	// ErrInvertedBounds is returned when some axis has lower[i] > upper[i].
	ErrInvertedBounds = errors.New("aabbtree: inverted bounds")

	// ErrDuplicateParticle is returned by Insert when the id is already
	// indexed.
	ErrDuplicateParticle = errors.New("aabbtree: duplicate particle")

	// ErrUnknownParticle is returned by Update, Remove, QueryParticle, and GetAABB
	// when the id is not indexed.
	ErrUnknownParticle = errors.New("aabbtree: unknown particle")

	// ErrInvalidDimensionality is returned by New when d < 2.
	ErrInvalidDimensionality = errors.New("aabbtree: dimensionality must be >= 2")

	// ErrInvariantViolation is returned by Validate when a structural or
	// metric invariant does not hold. It indicates an implementation bug,
	// not a caller mistake.
	ErrInvariantViolation = errors.New("aabbtree: invariant violation")
)
