package internal

import "github.com/pkg/errors"

var (
	ErrInsufficientInput    = errors.New("insufficient input: at least one point is required")
	ErrUnsupportedAlgorithm = errors.New("unsupported algorithm")
	ErrInvalidPoint         = errors.New("invalid point: coordinates must be finite")
)

// Reject empty sets and non-finite coordinates. NaN is never equal to itself,
// so it would silently break both the builders and the step diffing.
func ValidatePoints(points []Point) error {
	if len(points) == 0 {
		return ErrInsufficientInput
	}
	for i, p := range points {
		if !p.IsFinite() {
			return errors.Wrapf(ErrInvalidPoint, "point %d is %s", i, p)
		}
	}
	return nil
}
