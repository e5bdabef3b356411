package indicator

import "github.com/evdnx/gotalib/config"

// Re-export config types and defaults so callers of this package need a
// single import.
type (
	Options       = config.Options
	Params        = config.Params
	MAType        = config.MAType
	Indicator     = config.Indicator
	MACDOptions   = config.MACDOptions
	BBandsOptions = config.BBandsOptions
)

const (
	DefaultMAPeriod  = config.DefaultMAPeriod
	DefaultRSIPeriod = config.DefaultRSIPeriod
	DefaultVFactor   = config.DefaultVFactor
)

// Resolve applies the defaults of ind to o and validates the result.
func Resolve(ind Indicator, o Options) (Params, error) {
	return config.Resolve(ind, o)
}
