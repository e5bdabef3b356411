package config

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/evdnx/gotalib/indicator/core"
)

// -----------------------------------------------------------------------------
// Exported constants (magic numbers made visible)
// -----------------------------------------------------------------------------
const (
	DefaultMAPeriod     = 30 // SMA, EMA and the generic MA
	DefaultRSIPeriod    = 14
	DefaultATRPeriod    = 14
	DefaultBBandsPeriod = 5
	DefaultVFactor      = 0.7 // T3 volume factor

	// MaxTimePeriod is the largest window any indicator accepts.
	MaxTimePeriod = 100_000
)

// -----------------------------------------------------------------------------
// Indicator identity
// -----------------------------------------------------------------------------

// Indicator names one entry point of the library.
type Indicator string

const (
	IndicatorSMA    Indicator = "SMA"
	IndicatorEMA    Indicator = "EMA"
	IndicatorMA     Indicator = "MA"
	IndicatorRSI    Indicator = "RSI"
	IndicatorMACD   Indicator = "MACD"
	IndicatorATR    Indicator = "ATR"
	IndicatorBBands Indicator = "BBANDS"
	IndicatorAD     Indicator = "AD"
	IndicatorOBV    Indicator = "OBV"
)

// Indicators lists every indicator in catalogue order.
var Indicators = []Indicator{
	IndicatorSMA, IndicatorEMA, IndicatorMA, IndicatorRSI,
	IndicatorMACD, IndicatorATR, IndicatorBBands, IndicatorAD, IndicatorOBV,
}

// ParseIndicator resolves a case-insensitive indicator name.
func ParseIndicator(name string) (Indicator, error) {
	want := strings.ToUpper(strings.TrimSpace(name))
	for _, ind := range Indicators {
		if string(ind) == want {
			return ind, nil
		}
	}
	return "", core.InvalidParameter("indicator", "unknown indicator %q", name)
}

// Implemented reports whether the indicator computes values, as opposed to
// failing with ErrNotImplemented.
func (i Indicator) Implemented() bool {
	switch i {
	case IndicatorSMA, IndicatorEMA, IndicatorMA, IndicatorRSI:
		return true
	default:
		return false
	}
}

// SingleInput reports whether the indicator consumes a single series.
func (i Indicator) SingleInput() bool {
	switch i {
	case IndicatorATR, IndicatorAD, IndicatorOBV:
		return false
	default:
		return true
	}
}

func (i Indicator) defaultPeriod() int {
	switch i {
	case IndicatorRSI:
		return DefaultRSIPeriod
	case IndicatorATR:
		return DefaultATRPeriod
	case IndicatorBBands:
		return DefaultBBandsPeriod
	default:
		return DefaultMAPeriod
	}
}

// -----------------------------------------------------------------------------
// Moving-average variants
// -----------------------------------------------------------------------------

// MAType selects the moving-average variant. The numeric values are part of
// the public surface and must not be reordered.
type MAType int

const (
	SMA MAType = iota
	EMA
	WMA
	DEMA
	TEMA
	TRIMA
	KAMA
	MAMA
	T3
)

var maTypeNames = [...]string{"SMA", "EMA", "WMA", "DEMA", "TEMA", "TRIMA", "KAMA", "MAMA", "T3"}

// MATypes lists every variant in numeric order.
var MATypes = []MAType{SMA, EMA, WMA, DEMA, TEMA, TRIMA, KAMA, MAMA, T3}

// Valid reports whether t is one of the defined variants.
func (t MAType) Valid() bool {
	return t >= SMA && t <= T3
}

func (t MAType) String() string {
	if !t.Valid() {
		return "MAType(" + strconv.Itoa(int(t)) + ")"
	}
	return maTypeNames[t]
}

// ParseMAType accepts a case-insensitive variant name or its numeric value.
func ParseMAType(s string) (MAType, error) {
	s = strings.TrimSpace(s)
	if n, err := strconv.Atoi(s); err == nil {
		t := MAType(n)
		if !t.Valid() {
			return 0, core.InvalidParameter("maType", "value %d is out of range [0, %d]", n, int(T3))
		}
		return t, nil
	}
	for i, name := range maTypeNames {
		if strings.EqualFold(name, s) {
			return MAType(i), nil
		}
	}
	return 0, core.InvalidParameter("maType", "unknown moving-average type %q", s)
}

// UnmarshalJSON accepts either the numeric value or the variant name. Range
// checks are left to Resolve so an out-of-range number reaches the validator.
func (t *MAType) UnmarshalJSON(data []byte) error {
	var n int
	if err := json.Unmarshal(data, &n); err == nil {
		*t = MAType(n)
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return core.InvalidParameter("maType", "expected a number or a name, got %s", string(data))
	}
	parsed, err := ParseMAType(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// UnmarshalYAML accepts either the numeric value or the variant name.
func (t *MAType) UnmarshalYAML(value *yaml.Node) error {
	var n int
	if err := value.Decode(&n); err == nil {
		*t = MAType(n)
		return nil
	}
	parsed, err := ParseMAType(value.Value)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// -----------------------------------------------------------------------------
// Options – the caller-facing record, every field optional
// -----------------------------------------------------------------------------

// Options holds the named, independently optional settings of an indicator
// call. A nil field takes the indicator's documented default.
type Options struct {
	TimePeriod *int     `json:"timePeriod,omitempty" yaml:"timePeriod,omitempty"`
	MAType     *MAType  `json:"maType,omitempty" yaml:"maType,omitempty"`
	VFactor    *float64 `json:"vFactor,omitempty" yaml:"vFactor,omitempty"`
}

// WithTimePeriod returns a copy of o with the window length set.
func (o Options) WithTimePeriod(period int) Options {
	o.TimePeriod = &period
	return o
}

// WithMAType returns a copy of o with the moving-average variant set.
func (o Options) WithMAType(t MAType) Options {
	o.MAType = &t
	return o
}

// WithVFactor returns a copy of o with the T3 volume factor set.
func (o Options) WithVFactor(v float64) Options {
	o.VFactor = &v
	return o
}

// ParseOptions converts a dynamic options bag (for example decoded JSON) into
// Options. Unknown keys are ignored; a value of the wrong type is rejected.
func ParseOptions(bag map[string]interface{}) (Options, error) {
	var o Options
	if len(bag) == 0 {
		return o, nil
	}
	raw, err := json.Marshal(bag)
	if err != nil {
		return o, core.InvalidParameter("options", "cannot encode options: %v", err)
	}
	if err := json.Unmarshal(raw, &o); err != nil {
		if core.KindOf(err) != "" {
			return Options{}, err
		}
		return Options{}, core.InvalidParameter("options", "%v", err)
	}
	return o, nil
}

// -----------------------------------------------------------------------------
// Params – the fully resolved record handed to the algorithms
// -----------------------------------------------------------------------------

// Params is an Options record with every default applied and every value
// validated.
type Params struct {
	TimePeriod int
	MAType     MAType
	VFactor    float64
}

// Resolve applies the defaults of the given indicator and validates the
// result. It runs before any array is touched.
func Resolve(ind Indicator, o Options) (Params, error) {
	p := Params{
		TimePeriod: ind.defaultPeriod(),
		MAType:     SMA,
		VFactor:    DefaultVFactor,
	}
	if o.TimePeriod != nil {
		p.TimePeriod = *o.TimePeriod
	}
	if o.VFactor != nil {
		p.VFactor = *o.VFactor
	}

	switch ind {
	case IndicatorEMA:
		p.MAType = EMA
	case IndicatorMA, IndicatorBBands:
		if o.MAType != nil {
			p.MAType = *o.MAType
		}
	}

	if err := p.Validate(ind); err != nil {
		return Params{}, err
	}
	return p, nil
}

// Validate checks that the resolved values are usable.
func (p Params) Validate(ind Indicator) error {
	name := string(ind)
	if p.TimePeriod < 1 {
		return core.InvalidParameter(name, "timePeriod must be a positive integer, got %d", p.TimePeriod)
	}
	// Upper-bound sanity check: also catches wrap-around from callers that
	// squeeze large unsigned values into an int.
	if p.TimePeriod > MaxTimePeriod {
		return core.InvalidParameter(name, "timePeriod %d exceeds the maximum of %d", p.TimePeriod, MaxTimePeriod)
	}
	if !p.MAType.Valid() {
		return core.InvalidParameter(name, "maType %d is out of range [0, %d]", int(p.MAType), int(T3))
	}
	if math.IsNaN(p.VFactor) || p.VFactor < 0 || p.VFactor > 1 {
		return core.InvalidParameter(name, "vFactor must be within [0, 1], got %v", p.VFactor)
	}
	return nil
}

// -----------------------------------------------------------------------------
// Options of the multi-output indicators
// -----------------------------------------------------------------------------

const (
	DefaultMACDFastPeriod   = 12
	DefaultMACDSlowPeriod   = 26
	DefaultMACDSignalPeriod = 9
	DefaultBBandsDeviation  = 2.0
)

// MACDOptions carries the MACD periods. Nil fields take the 12/26/9 defaults.
type MACDOptions struct {
	FastPeriod   *int `json:"fastPeriod,omitempty" yaml:"fastPeriod,omitempty"`
	SlowPeriod   *int `json:"slowPeriod,omitempty" yaml:"slowPeriod,omitempty"`
	SignalPeriod *int `json:"signalPeriod,omitempty" yaml:"signalPeriod,omitempty"`
}

// BBandsOptions carries the Bollinger Bands settings.
type BBandsOptions struct {
	Options `yaml:",inline"`
	NbDevUp *float64 `json:"nbDevUp,omitempty" yaml:"nbDevUp,omitempty"`
	NbDevDn *float64 `json:"nbDevDn,omitempty" yaml:"nbDevDn,omitempty"`
}
