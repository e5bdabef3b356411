package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/shopspring/decimal"

	"github.com/evdnx/gotalib/indicator/core"
	"github.com/evdnx/gotalib/suite"
)

const (
	formatJSON  = "json"
	formatCSV   = "csv"
	formatTable = "table"
)

func parseFormat(s string) (string, error) {
	switch s {
	case formatJSON, formatCSV, formatTable:
		return s, nil
	case "":
		return formatTable, nil
	default:
		return "", fmt.Errorf("unknown output format %q, want json, csv or table", s)
	}
}

// roundValue rounds half away from zero to the given number of decimals. A
// negative precision leaves the value untouched.
func roundValue(v float64, precision int) float64 {
	if precision < 0 || !core.IsFinite(v) {
		return v
	}
	f, _ := decimal.NewFromFloat(v).Round(int32(precision)).Float64()
	return f
}

func roundColumns(cols []core.Column, precision int) []core.Column {
	if precision < 0 {
		return cols
	}
	out := make([]core.Column, len(cols))
	for i, c := range cols {
		vals := make(core.Series, len(c.Values))
		for j, v := range c.Values {
			if v.Valid {
				vals[j] = core.Defined(roundValue(v.Float64, precision))
			}
		}
		out[i] = core.Column{Name: c.Name, Values: vals}
	}
	return out
}

func formatter(precision int) core.ValueFormatter {
	if precision < 0 {
		return core.DefaultFormatter
	}
	return func(v float64) string {
		if !core.IsFinite(v) {
			return core.DefaultFormatter(v)
		}
		return decimal.NewFromFloat(v).StringFixed(int32(precision))
	}
}

// renderColumns writes aligned columns. Undefined positions are null in JSON,
// an empty cell in CSV and "-" in tables.
func renderColumns(w io.Writer, cols []core.Column, format string, precision int) error {
	cols = roundColumns(cols, precision)
	switch format {
	case formatJSON:
		s, err := core.FormatColumnsJSON(cols)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, s)
		return err

	case formatCSV:
		s, err := core.FormatColumnsCSV(cols, formatter(precision))
		if err != nil {
			return err
		}
		_, err = io.WriteString(w, s)
		return err

	default:
		if len(cols) == 0 {
			return nil
		}
		fmtValue := formatter(precision)
		t := newTable(w)
		header := table.Row{"#"}
		for _, c := range cols {
			header = append(header, c.Name)
		}
		t.AppendHeader(header)
		for i := range cols[0].Values {
			row := table.Row{i}
			for _, c := range cols {
				if i >= len(c.Values) || !c.Values[i].Valid {
					row = append(row, "-")
					continue
				}
				row = append(row, fmtValue(c.Values[i].Float64))
			}
			t.AppendRow(row)
		}
		t.Render()
		return nil
	}
}

type namedSummary struct {
	Name string `json:"name"`
	suite.Summary
}

func renderSummaries(w io.Writer, results []suite.Result, format string, precision int) error {
	rows := make([]namedSummary, len(results))
	for i, r := range results {
		s := suite.Summarize(r.Series)
		s.Mean = roundValue(s.Mean, precision)
		s.StdDev = roundValue(s.StdDev, precision)
		s.Min = roundValue(s.Min, precision)
		s.Max = roundValue(s.Max, precision)
		rows[i] = namedSummary{Name: r.Name, Summary: s}
	}

	f := formatter(precision)
	switch format {
	case formatJSON:
		b, err := json.Marshal(rows)
		if err != nil {
			return fmt.Errorf("failed to marshal summary: %w", err)
		}
		_, err = fmt.Fprintln(w, string(b))
		return err

	case formatCSV:
		if _, err := fmt.Fprintln(w, "name,count,mean,stddev,min,max"); err != nil {
			return err
		}
		for _, r := range rows {
			if _, err := fmt.Fprintf(w, "%s,%d,%s,%s,%s,%s\n", r.Name, r.Count,
				f(r.Mean), f(r.StdDev), f(r.Min), f(r.Max)); err != nil {
				return err
			}
		}
		return nil

	default:
		t := newTable(w)
		t.AppendHeader(table.Row{"name", "count", "mean", "stddev", "min", "max"})
		for _, r := range rows {
			t.AppendRow(table.Row{r.Name, strconv.Itoa(r.Count), f(r.Mean), f(r.StdDev), f(r.Min), f(r.Max)})
		}
		t.Render()
		return nil
	}
}

func newTable(w io.Writer) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleRounded)
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight},
	})
	return t
}
