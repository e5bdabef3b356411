package main

import (
	"os"
	"path/filepath"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/evdnx/gotalib/suite"
)

var runCmd = &cobra.Command{
	Use:   "run <job.yaml>",
	Short: "run a batch of indicators described by a YAML job",
	Args:  cobra.ExactArgs(1),
	RunE:  runJob,
}

func init() {
	runCmd.Flags().Bool("summary", false, "print count/mean/stddev/min/max per indicator instead of the series")
	runCmd.Flags().Bool("with-input", false, "include the input series as the first column")
	RootCmd.AddCommand(runCmd)
}

func runJob(cmd *cobra.Command, args []string) error {
	f, err := os.Open(args[0])
	if err != nil {
		return err
	}
	job, err := suite.LoadJob(f)
	f.Close()
	if err != nil {
		return err
	}

	// A relative input path is resolved against the job file.
	input := job.Input
	if input != "" && input != "-" && !filepath.IsAbs(input) {
		input = filepath.Join(filepath.Dir(args[0]), input)
	}
	series, err := loadSeries(input)
	if err != nil {
		return err
	}

	log.WithField("job", args[0]).
		WithField("samples", len(series)).
		WithField("requests", len(job.Indicators)).
		Debug("running job")

	results, err := suite.Run(cmd.Context(), series, job.Indicators)
	if err != nil {
		return err
	}

	format, precision := outputSettings()
	if summary, _ := cmd.Flags().GetBool("summary"); summary {
		return renderSummaries(cmd.OutOrStdout(), results, format, precision)
	}
	var lead []float64
	if withInput, _ := cmd.Flags().GetBool("with-input"); withInput {
		lead = series
	}
	return renderColumns(cmd.OutOrStdout(), suite.Columns(lead, results), format, precision)
}
