package usecase

import "fmt"

const (
	DefaultPageLimit = 100
	MaxPageLimit     = 500
)

// normalizePage validates skip/limit and applies the default and ceiling
// shared by every list operation.
func normalizePage(skip, limit int) (int, int, error) {
	if skip < 0 {
		return 0, 0, fmt.Errorf("%w: skip must be >= 0", ErrInvalidInput)
	}
	if limit < 0 {
		return 0, 0, fmt.Errorf("%w: limit must be >= 0", ErrInvalidInput)
	}
	if limit == 0 {
		limit = DefaultPageLimit
	}
	if limit > MaxPageLimit {
		return 0, 0, fmt.Errorf("%w: limit must be <= %d", ErrInvalidInput, MaxPageLimit)
	}

	return skip, limit, nil
}
