package repositories

import "errors"

// Sentinel errors shared by all repository implementations. Services and
// handlers match on these with errors.Is instead of parsing messages.
var (
	// ErrNotFound is returned when the requested record does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicate is returned when a uniqueness constraint would be violated.
	ErrDuplicate = errors.New("record already exists")
	// ErrInsufficientStock is returned by the conditional stock decrement when
	// a product has fewer units left than requested.
	ErrInsufficientStock = errors.New("insufficient stock")
	// ErrCategoryInUse is returned when deleting a category that still has
	// products attached.
	ErrCategoryInUse = errors.New("category has products attached")
)
