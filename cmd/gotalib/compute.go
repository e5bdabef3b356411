package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/evdnx/gotalib"
	"github.com/evdnx/gotalib/config"
	"github.com/evdnx/gotalib/indicator/core"
)

var computeCmd = &cobra.Command{
	Use:   "compute <indicator> [file]",
	Short: "compute one indicator over a series read from a file or stdin",
	Args:  cobra.RangeArgs(1, 2),
	RunE:  runCompute,
}

func init() {
	computeCmd.Flags().Int("period", 0, "time period, 0 keeps the indicator default")
	computeCmd.Flags().String("ma-type", "", "moving-average variant for MA (name or number)")
	computeCmd.Flags().Float64("vfactor", config.DefaultVFactor, "T3 volume factor")
	RootCmd.AddCommand(computeCmd)
}

// optionsFromFlags builds Options from the flags the user actually set, so
// unset flags keep the indicator defaults.
func optionsFromFlags(fs *pflag.FlagSet) (config.Options, error) {
	var o config.Options
	if fs.Changed("period") {
		period, err := fs.GetInt("period")
		if err != nil {
			return o, err
		}
		o = o.WithTimePeriod(period)
	}
	if fs.Changed("ma-type") {
		s, err := fs.GetString("ma-type")
		if err != nil {
			return o, err
		}
		t, err := config.ParseMAType(s)
		if err != nil {
			return o, err
		}
		o = o.WithMAType(t)
	}
	if fs.Changed("vfactor") {
		v, err := fs.GetFloat64("vfactor")
		if err != nil {
			return o, err
		}
		o = o.WithVFactor(v)
	}
	return o, nil
}

func runCompute(cmd *cobra.Command, args []string) error {
	ind, err := config.ParseIndicator(args[0])
	if err != nil {
		return err
	}
	opts, err := optionsFromFlags(cmd.Flags())
	if err != nil {
		return err
	}

	path := ""
	if len(args) > 1 {
		path = args[1]
	}
	series, err := loadSeries(path)
	if err != nil {
		return err
	}

	out, err := gotalib.Compute(ind, series, opts)
	if err != nil {
		return err
	}

	format, precision := outputSettings()
	cols := []core.Column{{Name: string(ind), Values: out}}
	return renderColumns(cmd.OutOrStdout(), cols, format, precision)
}
