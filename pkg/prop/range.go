package prop

import (
	"fmt"
	"math"
)

// Range is a closed interval with an optional step.
//
// Min and Max are stored exactly as constructed. Some drivers build ranges
// with the endpoints in descending order, so Lower, Upper, Clip and
// Contains order them before use.
type Range struct {
	Min  float64 `cbor:"1,keyasint"`
	Max  float64 `cbor:"2,keyasint"`
	Step float64 `cbor:"3,keyasint,omitempty"`
}

// NewRange creates a range from min, max and step in that order.
func NewRange(min, max, step float64) Range {
	return Range{Min: min, Max: max, Step: step}
}

// Lower returns the smaller endpoint.
func (r Range) Lower() float64 { return math.Min(r.Min, r.Max) }

// Upper returns the larger endpoint.
func (r Range) Upper() float64 { return math.Max(r.Min, r.Max) }

// Span returns Upper - Lower.
func (r Range) Span() float64 { return r.Upper() - r.Lower() }

// IsDegenerate returns true if the range holds a single point.
func (r Range) IsDegenerate() bool { return r.Min == r.Max }

// Contains returns true if v lies within the range.
func (r Range) Contains(v float64) bool {
	return v >= r.Lower() && v <= r.Upper()
}

// Clip returns v limited to the range, rounded to the nearest step when
// the step is non-zero.
func (r Range) Clip(v float64) float64 {
	lo, hi := r.Lower(), r.Upper()
	if v < lo {
		v = lo
	}
	if v > hi {
		v = hi
	}
	if r.Step > 0 {
		v = lo + math.Round((v-lo)/r.Step)*r.Step
		if v > hi {
			v -= r.Step
		}
	}
	return v
}

// String returns "[min, max, step]" with the endpoints as stored.
func (r Range) String() string {
	return fmt.Sprintf("[%g, %g, %g]", r.Min, r.Max, r.Step)
}
