package main

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/evdnx/gotalib/config"
	"github.com/evdnx/gotalib/indicator"
	"github.com/evdnx/gotalib/indicator/trend"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "list the indicators and moving-average variants",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		w := cmd.OutOrStdout()

		t := newTable(w)
		t.AppendHeader(table.Row{"indicator", "group", "inputs", "outputs", "status"})
		for _, d := range indicator.Catalogue() {
			t.AppendRow(table.Row{string(d.Indicator), d.Group, d.Inputs, d.Outputs, status(d.Implemented)})
		}
		t.Render()

		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}

		t = newTable(w)
		t.AppendHeader(table.Row{"maType", "name", "status"})
		for _, m := range config.MATypes {
			t.AppendRow(table.Row{int(m), m.String(), status(trend.Implemented(m))})
		}
		t.Render()
		return nil
	},
}

func init() {
	RootCmd.AddCommand(listCmd)
}

func status(implemented bool) string {
	if implemented {
		return "implemented"
	}
	return "not implemented"
}
