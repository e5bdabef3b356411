package trend

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evdnx/gotalib/config"
	"github.com/evdnx/gotalib/indicator/core"
)

var implementedTypes = []config.MAType{
	config.SMA, config.EMA, config.WMA, config.DEMA,
	config.TEMA, config.TRIMA, config.KAMA, config.T3,
}

func TestMovingAverage_AlignmentForEveryVariant(t *testing.T) {
	in := randVals(200)
	for _, maType := range implementedTypes {
		for _, period := range []int{2, 5, 9} {
			out, err := MovingAverage(in, params(period, maType))
			require.NoError(t, err, "%s/%d", maType, period)
			require.Len(t, out, len(in))

			begin := Lookback(maType, period)
			assert.Equal(t, begin, out.FirstDefined(), "%s/%d", maType, period)
			for i := begin; i < len(in); i++ {
				assert.True(t, out[i].Valid, "%s/%d index %d", maType, period, i)
			}
		}
	}
}

func TestMovingAverage_DispatchMatchesDirectCalls(t *testing.T) {
	in := randVals(60)

	viaMA, err := MovingAverage(in, params(7, config.SMA))
	require.NoError(t, err)
	direct, err := SMA(in, params(7, config.SMA))
	require.NoError(t, err)
	assert.Equal(t, direct, viaMA)

	viaMA, err = MovingAverage(in, params(7, config.EMA))
	require.NoError(t, err)
	direct, err = EMA(in, params(7, config.EMA))
	require.NoError(t, err)
	assert.Equal(t, direct, viaMA)
}

func TestMovingAverage_MAMANotImplemented(t *testing.T) {
	_, err := MovingAverage(randVals(100), params(10, config.MAMA))
	require.Error(t, err)
	assert.True(t, errors.Is(err, core.ErrNotImplemented), "%v", err)
	assert.Contains(t, err.Error(), "MAMA")
	assert.False(t, Implemented(config.MAMA))
	assert.Equal(t, -1, Lookback(config.MAMA, 10))
}

func TestMovingAverage_InvalidType(t *testing.T) {
	_, err := MovingAverage(randVals(100), params(10, config.MAType(999)))
	assert.True(t, errors.Is(err, core.ErrInvalidParameter), "%v", err)
}

func TestMovingAverage_PeriodOneIsIdentity(t *testing.T) {
	in := []float64{3, 1, 4, 1, 5}
	for _, maType := range implementedTypes {
		out, err := MovingAverage(in, params(1, maType))
		require.NoError(t, err, maType)
		assert.Equal(t, in, out.Defined(), maType)
		assert.Equal(t, 0, Lookback(maType, 1))
	}
}

func TestMovingAverage_LengthGuardPerVariant(t *testing.T) {
	cases := []struct {
		maType config.MAType
		period int
		need   int
	}{
		{config.SMA, 3, 3},
		{config.EMA, 3, 3},
		{config.WMA, 3, 3},
		{config.TRIMA, 4, 4},
		{config.DEMA, 3, 5},
		{config.TEMA, 3, 7},
		{config.KAMA, 3, 4},
		{config.T3, 2, 7},
	}
	for _, tc := range cases {
		_, err := MovingAverage(randVals(tc.need-1), params(tc.period, tc.maType))
		assert.True(t, errors.Is(err, core.ErrInsufficientData), "%s: %v", tc.maType, err)

		out, err := MovingAverage(randVals(tc.need), params(tc.period, tc.maType))
		require.NoError(t, err, tc.maType)
		assert.Len(t, out.Defined(), 1, tc.maType)
		assert.Equal(t, tc.need-1, out.FirstDefined(), tc.maType)
	}
}

func TestWMA_Values(t *testing.T) {
	out, err := WMA([]float64{1, 2, 3, 4}, params(3, config.WMA))
	require.NoError(t, err)
	assert.False(t, out[1].Valid)
	assert.True(t, approxEqual(out[2].Float64, 14.0/6))
	assert.True(t, approxEqual(out[3].Float64, 20.0/6))
}

func TestTRIMA_Values(t *testing.T) {
	// Even period: weights 1,2,2,1.
	out, err := TRIMA([]float64{1, 2, 3, 4, 5, 6}, params(4, config.TRIMA))
	require.NoError(t, err)
	assert.Equal(t, 3, out.FirstDefined())
	assert.InDeltaSlice(t, []float64{2.5, 3.5, 4.5}, out.Defined(), 1e-12)

	// Odd period: weights 1,2,1.
	out, err = TRIMA([]float64{1, 5, 3, 7}, params(3, config.TRIMA))
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{(1 + 10 + 3) / 4.0, (5 + 6 + 7) / 4.0}, out.Defined(), 1e-12)
}

func TestKAMA_Values(t *testing.T) {
	// Clean trend: efficiency ratio 1, smoothing constant (2/3)^2.
	out, err := KAMA([]float64{1, 2, 3, 4}, params(2, config.KAMA))
	require.NoError(t, err)
	assert.Equal(t, 2, out.FirstDefined())
	assert.InDelta(t, 22.0/9, out[2].Float64, 1e-12)
	assert.InDelta(t, 254.0/81, out[3].Float64, 1e-12)
}

func TestKAMA_FlatSeries(t *testing.T) {
	out, err := KAMA(constant(20, 5), params(10, config.KAMA))
	require.NoError(t, err)
	for _, v := range out.Defined() {
		assert.Equal(t, 5.0, v)
	}
}

func TestEMAFamily_ConstantSeries(t *testing.T) {
	in := constant(60, 5)
	for _, maType := range []config.MAType{config.DEMA, config.TEMA, config.T3, config.TRIMA, config.WMA} {
		out, err := MovingAverage(in, params(4, maType))
		require.NoError(t, err, maType)
		for _, v := range out.Defined() {
			assert.InDelta(t, 5.0, v, 1e-9, maType)
		}
	}
}

func TestT3_ZeroVolumeFactorIsTripleEMA(t *testing.T) {
	in := randVals(120)
	const period = 4
	p := params(period, config.T3)
	p.VFactor = 0

	out, err := T3(in, p)
	require.NoError(t, err)

	e1 := emaFrom(in, 0, period)
	e2 := emaFrom(e1, period-1, period)
	e3 := emaFrom(e2, 2*(period-1), period)
	for i := T3Lookback(period); i < len(in); i++ {
		assert.InDelta(t, e3[i], out[i].Float64, 1e-9, "index %d", i)
	}
}

func TestDEMA_TEMA_Composition(t *testing.T) {
	in := randVals(90)
	const period = 5

	dema, err := DEMA(in, params(period, config.DEMA))
	require.NoError(t, err)
	tema, err := TEMA(in, params(period, config.TEMA))
	require.NoError(t, err)

	e1 := emaFrom(in, 0, period)
	e2 := emaFrom(e1, period-1, period)
	e3 := emaFrom(e2, 2*(period-1), period)
	for i := TEMALookback(period); i < len(in); i++ {
		assert.InDelta(t, 2*e1[i]-e2[i], dema[i].Float64, 1e-9)
		assert.InDelta(t, 3*e1[i]-3*e2[i]+e3[i], tema[i].Float64, 1e-9)
	}
	assert.Equal(t, DEMALookback(period), dema.FirstDefined())
	assert.Equal(t, TEMALookback(period), tema.FirstDefined())
}

func TestRegistryInitializedOnce(t *testing.T) {
	core.EnsureInitialized()
	assert.True(t, core.Initialized())
	first := registry
	core.EnsureInitialized()
	assert.Equal(t, len(first), len(registry))
	assert.Len(t, registry, len(config.MATypes))
}
