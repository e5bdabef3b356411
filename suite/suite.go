package suite

import (
	"context"
	"fmt"
	"io"
	"runtime"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
	"gopkg.in/yaml.v3"

	"github.com/evdnx/gotalib"
	"github.com/evdnx/gotalib/config"
	"github.com/evdnx/gotalib/indicator/core"
)

// ---------------------------------------------------------------------
// Request / Result
// ---------------------------------------------------------------------

// Request names one indicator evaluation of a batch. An empty Name defaults
// to the indicator name.
type Request struct {
	Name      string           `json:"name" yaml:"name"`
	Indicator config.Indicator `json:"indicator" yaml:"indicator"`
	Options   config.Options   `json:"options" yaml:"options"`
}

// Result is the output of one Request.
type Result struct {
	Name      string           `json:"name"`
	Indicator config.Indicator `json:"indicator"`
	Series    core.Series      `json:"values"`
}

// normalize resolves the indicator name and fills the default Name.
func normalize(reqs []Request) ([]Request, error) {
	out := make([]Request, len(reqs))
	seen := make(map[string]bool, len(reqs))
	for i, r := range reqs {
		ind, err := config.ParseIndicator(string(r.Indicator))
		if err != nil {
			return nil, err
		}
		r.Indicator = ind
		if r.Name == "" {
			r.Name = string(ind)
		}
		if seen[r.Name] {
			return nil, core.InvalidParameter(r.Name, "duplicate request name")
		}
		seen[r.Name] = true
		out[i] = r
	}
	return out, nil
}

// ---------------------------------------------------------------------
// Run – evaluates every request over the same series concurrently.
// ---------------------------------------------------------------------

// Run evaluates reqs over series and returns one Result per request in
// request order. The first failure cancels the remaining work and is
// returned alone; there are no partial results.
func Run(ctx context.Context, series []float64, reqs []Request) ([]Result, error) {
	reqs, err := normalize(reqs)
	if err != nil {
		return nil, err
	}
	gotalib.Init()

	results := make([]Result, len(reqs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, r := range reqs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			out, err := gotalib.Compute(r.Indicator, series, r.Options)
			if err != nil {
				return fmt.Errorf("%s: %w", r.Name, err)
			}
			results[i] = Result{Name: r.Name, Indicator: r.Indicator, Series: out}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// Columns turns results into named columns, optionally led by the input.
// Missing input samples (NaN or infinite) are undefined in the input column.
func Columns(input []float64, results []Result) []core.Column {
	cols := make([]core.Column, 0, len(results)+1)
	if input != nil {
		in := make(core.Series, len(input))
		for i, v := range input {
			if core.IsFinite(v) {
				in[i] = core.Defined(v)
			}
		}
		cols = append(cols, core.Column{Name: "input", Values: in})
	}
	for _, r := range results {
		cols = append(cols, core.Column{Name: r.Name, Values: r.Series})
	}
	return cols
}

// ---------------------------------------------------------------------
// Summary statistics of an output series
// ---------------------------------------------------------------------

// Summary describes the defined values of a series.
type Summary struct {
	Count  int     `json:"count"`
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"stddev"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
}

// Summarize computes count, mean, sample standard deviation, min and max of
// the defined values. An all-undefined series yields the zero Summary.
func Summarize(s core.Series) Summary {
	vals := s.Defined()
	if len(vals) == 0 {
		return Summary{}
	}
	sum := Summary{
		Count: len(vals),
		Min:   floats.Min(vals),
		Max:   floats.Max(vals),
	}
	if len(vals) == 1 {
		sum.Mean = vals[0]
		return sum
	}
	sum.Mean, sum.StdDev = stat.MeanStdDev(vals, nil)
	return sum
}

// ---------------------------------------------------------------------
// Job files
// ---------------------------------------------------------------------

// Job is a batch description: an input file and the requests to run on it.
type Job struct {
	Input      string    `yaml:"input"`
	Indicators []Request `yaml:"indicators"`
}

// LoadJob decodes a YAML job. Unknown keys are ignored.
func LoadJob(r io.Reader) (Job, error) {
	var job Job
	if err := yaml.NewDecoder(r).Decode(&job); err != nil {
		if core.KindOf(err) != "" {
			return Job{}, err
		}
		return Job{}, fmt.Errorf("failed to decode job: %w", err)
	}
	if len(job.Indicators) == 0 {
		return Job{}, core.InvalidParameter("job", "no indicators requested")
	}
	if _, err := normalize(job.Indicators); err != nil {
		return Job{}, err
	}
	return job, nil
}
