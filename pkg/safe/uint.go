// Package safe provides numeric conversions with range checks for storage columns.
package safe

import (
	"errors"
	"fmt"
	"math"
)

// ErrOutOfRange is returned when a value does not fit the target type.
var ErrOutOfRange = errors.New("value out of range")

// Int64 converts an unsigned amount or height to the signed type used by BIGINT columns.
func Int64[T ~uint | ~uint32 | ~uint64](v T) (int64, error) {
	if uint64(v) > math.MaxInt64 {
		return 0, fmt.Errorf("%w: %d does not fit int64", ErrOutOfRange, uint64(v))
	}
	return int64(v), nil
}

// Uint64 converts a value read back from a signed column, rejecting negatives.
func Uint64[T ~int | ~int32 | ~int64](v T) (uint64, error) {
	if v < 0 {
		return 0, fmt.Errorf("%w: %d is negative", ErrOutOfRange, int64(v))
	}
	return uint64(v), nil
}
