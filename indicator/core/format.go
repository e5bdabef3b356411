package core

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Column is a named output series, used when several indicators computed over
// the same input are rendered side by side.
type Column struct {
	Name   string `json:"name"`
	Values Series `json:"values"`
}

// ValueFormatter renders a defined value as text.
type ValueFormatter func(float64) string

// DefaultFormatter uses the shortest exact representation.
func DefaultFormatter(v float64) string {
	return Defined(v).String()
}

func checkColumns(cols []Column) error {
	for _, c := range cols[1:] {
		if len(c.Values) != len(cols[0].Values) {
			return fmt.Errorf("mismatched column lengths for %s: %d vs %d",
				c.Name, len(c.Values), len(cols[0].Values))
		}
	}
	return nil
}

// FormatColumnsJSON marshals the columns; undefined positions become null.
func FormatColumnsJSON(cols []Column) (string, error) {
	if len(cols) == 0 {
		return "[]", nil
	}
	if err := checkColumns(cols); err != nil {
		return "", err
	}
	b, err := json.Marshal(cols)
	if err != nil {
		return "", fmt.Errorf("failed to marshal columns: %w", err)
	}
	return string(b), nil
}

// FormatColumnsCSV renders one row per input index with an empty cell for
// every undefined position.
func FormatColumnsCSV(cols []Column, format ValueFormatter) (string, error) {
	if len(cols) == 0 {
		return "", nil
	}
	if err := checkColumns(cols); err != nil {
		return "", err
	}
	if format == nil {
		format = DefaultFormatter
	}

	var sb strings.Builder
	sb.WriteString("index")
	for _, c := range cols {
		sb.WriteString(",")
		sb.WriteString(c.Name)
	}
	sb.WriteString("\n")
	for i := range cols[0].Values {
		fmt.Fprintf(&sb, "%d", i)
		for _, c := range cols {
			sb.WriteString(",")
			if v := c.Values[i]; v.Valid {
				sb.WriteString(format(v.Float64))
			}
		}
		sb.WriteString("\n")
	}
	return sb.String(), nil
}
