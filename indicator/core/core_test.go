package core

import (
	"encoding/json"
	"math"
	"sync"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestRequireLength(t *testing.T) {
	assert.NoError(t, RequireLength("SMA", 5, 4))
	err := RequireLength("SMA", 4, 4)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInsufficientData))
	assert.Contains(t, err.Error(), "SMA")
	assert.Contains(t, err.Error(), "required 5")

	// An empty input never produces output, even with no warm-up.
	assert.True(t, errors.Is(RequireLength("MA", 0, 0), ErrInsufficientData))
}

func TestAlign(t *testing.T) {
	raw := []float64{0, 0, 3, math.NaN(), 5}
	out, err := Align("X", raw, RegionFor(len(raw), 2))
	require.NoError(t, err)

	assert.Equal(t, Series{Undefined, Undefined, Defined(3), Undefined, Defined(5)}, out)
	assert.Equal(t, 2, out.FirstDefined())
	assert.Equal(t, []float64{3, 5}, out.Defined())
}

func TestAlign_RegionOverflow(t *testing.T) {
	_, err := Align("X", make([]float64, 3), ValidRegion{Begin: 2, Count: 2})
	assert.True(t, errors.Is(err, ErrComputationFailure), "%v", err)

	_, err = Align("X", make([]float64, 3), ValidRegion{Begin: -1, Count: 1})
	assert.True(t, errors.Is(err, ErrComputationFailure), "%v", err)
}

func TestAlign_InfinityIsUndefined(t *testing.T) {
	out, err := Align("X", []float64{math.Inf(1), 1}, RegionFor(2, 0))
	require.NoError(t, err)
	assert.False(t, out[0].Valid)
	assert.True(t, out[1].Valid)
}

func TestSeriesFloats(t *testing.T) {
	s := Series{Undefined, Defined(2)}
	f := s.Floats()
	assert.True(t, math.IsNaN(f[0]))
	assert.Equal(t, 2.0, f[1])
	assert.Equal(t, -1, Series{Undefined}.FirstDefined())
}

func TestValueJSON(t *testing.T) {
	s := Series{Undefined, Defined(1.5), Defined(-2)}
	b, err := json.Marshal(s)
	require.NoError(t, err)
	assert.JSONEq(t, `[null, 1.5, -2]`, string(b))

	var back Series
	require.NoError(t, json.Unmarshal(b, &back))
	assert.Equal(t, s, back)

	assert.Equal(t, "null", Undefined.String())
	assert.Equal(t, "0.1", Defined(0.1).String())
}

func TestValueYAML(t *testing.T) {
	b, err := yaml.Marshal(Series{Undefined, Defined(4)})
	require.NoError(t, err)
	assert.Equal(t, "- null\n- 4\n", string(b))
}

func TestRunningSum(t *testing.T) {
	var s RunningSum
	for _, v := range []float64{1, 2, 3} {
		s.Add(v)
	}
	assert.Equal(t, 6.0, s.Sum())
	assert.Equal(t, 2.0, s.Mean(3))

	s.Add(math.NaN())
	assert.True(t, math.IsNaN(s.Sum()))
	s.Remove(math.NaN())
	s.Remove(1)
	assert.Equal(t, 5.0, s.Sum())
}

func TestRunningSum_Compensated(t *testing.T) {
	var s RunningSum
	s.Add(1e16)
	for i := 0; i < 10; i++ {
		s.Add(1)
	}
	s.Remove(1e16)
	assert.Equal(t, 10.0, s.Sum())
}

func TestSeedMean(t *testing.T) {
	assert.Equal(t, 2.0, SeedMean([]float64{1, 2, 3, 100}, 3))
}

func TestCopySlice(t *testing.T) {
	assert.Nil(t, CopySlice(nil))
	src := []float64{1, 2}
	dst := CopySlice(src)
	dst[0] = 9
	assert.Equal(t, 1.0, src[0])
}

func TestErrorKinds(t *testing.T) {
	cases := map[string]error{
		"InvalidParameter":   InvalidParameter("RSI", "timePeriod must be positive"),
		"InsufficientData":   InsufficientData("RSI", 3, 15),
		"NotImplemented":     NotImplemented("MACD"),
		"ComputationFailure": ComputationFailure("EMA", "overflow"),
	}
	for kind, err := range cases {
		assert.Equal(t, kind, KindOf(err))
	}
	assert.Equal(t, "", KindOf(nil))
	assert.Equal(t, "", KindOf(errors.New("other")))
	assert.Equal(t, "RSI: timePeriod must be positive: invalid parameter", cases["InvalidParameter"].Error())
}

func TestEnsureInitialized_Concurrent(t *testing.T) {
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			EnsureInitialized()
		}()
	}
	wg.Wait()
	assert.True(t, Initialized())
}

func TestFormatColumns(t *testing.T) {
	cols := []Column{
		{Name: "close", Values: Series{Defined(1), Defined(2)}},
		{Name: "sma", Values: Series{Undefined, Defined(1.5)}},
	}

	csv, err := FormatColumnsCSV(cols, nil)
	require.NoError(t, err)
	assert.Equal(t, "index,close,sma\n0,1,\n1,2,1.5\n", csv)

	js, err := FormatColumnsJSON(cols)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"name":"close","values":[1,2]},{"name":"sma","values":[null,1.5]}]`, js)

	_, err = FormatColumnsCSV([]Column{cols[0], {Name: "bad", Values: Series{Undefined}}}, nil)
	assert.Error(t, err)

	empty, err := FormatColumnsJSON(nil)
	require.NoError(t, err)
	assert.Equal(t, "[]", empty)
}
