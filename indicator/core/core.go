package core

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
)

// -----------------------------------------------------------------------------
// Output values
// -----------------------------------------------------------------------------

// Value is one position of an aligned output series. Valid is false for the
// warm-up prefix (and for any position the indicator could not define), which
// is the undefined marker callers must check instead of testing for NaN.
type Value struct {
	Float64 float64
	Valid   bool
}

// Defined wraps a computed value.
func Defined(v float64) Value { return Value{Float64: v, Valid: true} }

// Undefined is the marker for positions without enough history.
var Undefined = Value{}

// MarshalJSON encodes undefined positions as null.
func (v Value) MarshalJSON() ([]byte, error) {
	if !v.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(v.Float64)
}

// UnmarshalJSON accepts a number or null.
func (v *Value) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*v = Undefined
		return nil
	}
	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}
	*v = Defined(f)
	return nil
}

// MarshalYAML encodes undefined positions as null.
func (v Value) MarshalYAML() (interface{}, error) {
	if !v.Valid {
		return nil, nil
	}
	return v.Float64, nil
}

// String renders a defined value with the shortest exact representation and
// an undefined one as "null".
func (v Value) String() string {
	if !v.Valid {
		return "null"
	}
	return strconv.FormatFloat(v.Float64, 'g', -1, 64)
}

// Series is the externally visible, full-length output of an indicator.
type Series []Value

// Len returns the number of positions, defined or not.
func (s Series) Len() int { return len(s) }

// FirstDefined returns the index of the first defined value, or -1.
func (s Series) FirstDefined() int {
	for i, v := range s {
		if v.Valid {
			return i
		}
	}
	return -1
}

// Defined returns the defined values in order, dropping the undefined ones.
func (s Series) Defined() []float64 {
	out := make([]float64, 0, len(s))
	for _, v := range s {
		if v.Valid {
			out = append(out, v.Float64)
		}
	}
	return out
}

// Floats returns a copy where undefined positions hold NaN. This is an
// explicit opt-in for numeric code that already handles NaN.
func (s Series) Floats() []float64 {
	out := make([]float64, len(s))
	for i, v := range s {
		if v.Valid {
			out[i] = v.Float64
		} else {
			out[i] = math.NaN()
		}
	}
	return out
}

// -----------------------------------------------------------------------------
// Valid region, length guard and alignment
// -----------------------------------------------------------------------------

// ValidRegion describes which positions of a raw output buffer hold computed
// values: Count consecutive values starting at original index Begin.
type ValidRegion struct {
	Begin int
	Count int
}

// End returns the first index past the region.
func (r ValidRegion) End() int { return r.Begin + r.Count }

// RegionFor returns the region of an indicator with the given lookback over n
// samples. The caller must have passed RequireLength first.
func RegionFor(n, lookback int) ValidRegion {
	return ValidRegion{Begin: lookback, Count: n - lookback}
}

// RequireLength fails with ErrInsufficientData when n samples cannot produce a
// single value for an indicator whose first output sits at index lookback.
// Partial computation is refused even when a recurrence could start earlier.
func RequireLength(indicator string, n, lookback int) error {
	if need := lookback + 1; n < need {
		return InsufficientData(indicator, n, need)
	}
	return nil
}

// Align turns a raw buffer indexed by original position into the full-length
// series: positions outside the region are undefined, positions inside copy
// the computed value. A non-finite computed value is also reported as
// undefined so NaN never leaves the library.
func Align(indicator string, raw []float64, r ValidRegion) (Series, error) {
	if r.Begin < 0 || r.Count < 0 || r.End() > len(raw) {
		return nil, ComputationFailure(indicator,
			"valid region [%d, %d) does not fit an output of length %d", r.Begin, r.End(), len(raw))
	}
	out := make(Series, len(raw))
	for i := r.Begin; i < r.End(); i++ {
		if IsFinite(raw[i]) {
			out[i] = Defined(raw[i])
		}
	}
	return out, nil
}

// -----------------------------------------------------------------------------
// Numeric helpers
// -----------------------------------------------------------------------------

// RunningSum is a Kahan-compensated sliding sum. Non-finite samples are not
// added; they are counted instead so a window that contains one can be
// detected and the sum recovers once the sample leaves the window.
type RunningSum struct {
	sum     float64
	comp    float64
	missing int
}

// Add enters a sample into the window.
func (s *RunningSum) Add(v float64) {
	if !IsFinite(v) {
		s.missing++
		return
	}
	s.kahanAdd(v)
}

// Remove takes a sample that was previously added out of the window.
func (s *RunningSum) Remove(v float64) {
	if !IsFinite(v) {
		s.missing--
		return
	}
	s.kahanAdd(-v)
}

func (s *RunningSum) kahanAdd(v float64) {
	y := v - s.comp
	t := s.sum + y
	s.comp = (t - s.sum) - y
	s.sum = t
}

// Sum returns the compensated sum, or NaN when a non-finite sample is inside
// the window.
func (s *RunningSum) Sum() float64 {
	if s.missing > 0 {
		return math.NaN()
	}
	return s.sum
}

// Mean returns Sum divided by n.
func (s *RunningSum) Mean(n int) float64 {
	return s.Sum() / float64(n)
}

// SeedMean is the plain mean of data[:period] computed with the same
// summation SMA uses, so SMA and the EMA family agree bit for bit on the
// first window.
func SeedMean(data []float64, period int) float64 {
	var s RunningSum
	for _, v := range data[:period] {
		s.Add(v)
	}
	return s.Mean(period)
}

// IsFinite reports whether v is neither NaN nor infinite.
func IsFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// CopySlice creates a defensive copy of a float64 slice.
func CopySlice(src []float64) []float64 {
	if src == nil {
		return nil
	}
	dst := make([]float64, len(src))
	copy(dst, src)
	return dst
}
