package labstats

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/openflume/gohydro/hydraulics"
)

// Summary is the five-number summary plus the mean, the same quantities a
// box plot draws.
type Summary struct {
	N                        int
	Min, Q1, Median, Q3, Max float64
	Mean                     float64
}

// Summarize computes the empirical quartiles of the series. The input is
// not modified.
func Summarize(values []float64) (Summary, error) {
	if len(values) == 0 {
		return Summary{}, fmt.Errorf("%w: empty series", hydraulics.ErrPrecondition)
	}
	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)
	return Summary{
		N:      len(sorted),
		Min:    sorted[0],
		Q1:     stat.Quantile(0.25, stat.Empirical, sorted, nil),
		Median: stat.Quantile(0.5, stat.Empirical, sorted, nil),
		Q3:     stat.Quantile(0.75, stat.Empirical, sorted, nil),
		Max:    sorted[len(sorted)-1],
		Mean:   stat.Mean(sorted, nil),
	}, nil
}

// Print writes the summary one statistic per line.
func (s Summary) Print() {
	fmt.Printf("n      = %d\n", s.N)
	fmt.Printf("min    = %.6g\n", s.Min)
	fmt.Printf("Q1     = %.6g\n", s.Q1)
	fmt.Printf("median = %.6g\n", s.Median)
	fmt.Printf("Q3     = %.6g\n", s.Q3)
	fmt.Printf("max    = %.6g\n", s.Max)
	fmt.Printf("mean   = %.6g\n", s.Mean)
}
