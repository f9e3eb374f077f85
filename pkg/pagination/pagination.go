package pagination

import (
	pkgerrors "github.com/angelmondragon/zencrm-backend/pkg/errors"
)

const (
	// DefaultLimit is the standard page size when a limit is not provided.
	DefaultLimit = 100
	// MaxLimit caps how many rows any list query can request.
	MaxLimit = 1000
)

// Params holds offset pagination inputs from controllers or services.
type Params struct {
	Skip  int
	Limit int
}

// Normalize validates the raw skip/limit pair and applies defaults and caps.
// Negative values are rejected rather than silently clamped.
func Normalize(skip, limit int) (Params, error) {
	if skip < 0 {
		return Params{}, pkgerrors.New(pkgerrors.CodeValidation, "skip must not be negative")
	}
	if limit < 0 {
		return Params{}, pkgerrors.New(pkgerrors.CodeValidation, "limit must not be negative")
	}
	if limit == 0 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	return Params{Skip: skip, Limit: limit}, nil
}
