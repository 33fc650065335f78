package model

import (
	"math"

	"github.com/google/go-cmp/cmp"
	"github.com/mitchellh/copystructure"
)

// Shape is implemented by every generated shape.
type Shape interface {
	String() string
	Validate() error
}

// floatBits is the bit pattern doubles are compared and hashed by. Every NaN
// collapses to one pattern, while 0.0 and -0.0 stay distinct.
func floatBits(f float64) uint64 {
	if math.IsNaN(f) {
		return 0x7ff8000000000000
	}
	return math.Float64bits(f)
}

var compareFloats = cmp.Comparer(func(x, y float64) bool {
	return floatBits(x) == floatBits(y)
})

// equalShapes compares the values behind a and b. Nested shapes are compared
// through their own Equal methods, timestamps through time.Time.Equal and
// doubles by floatBits, so Equal agrees with Hash.
func equalShapes[T any](a, b *T) bool {
	if a == nil || b == nil {
		return a == b
	}
	return cmp.Equal(*a, *b, compareFloats)
}

func copyShape[T any](s *T) *T {
	if s == nil {
		return nil
	}
	return copystructure.Must(copystructure.Copy(s)).(*T)
}
