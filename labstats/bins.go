package labstats

import (
	"fmt"

	log "github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/floats"

	"github.com/openflume/gohydro/hydraulics"
)

// Bins partitions a measurement range into equal-width intervals that are
// open on the left and closed on the right: (edges[i], edges[i+1]]. Values
// at or below the first edge, or above the last, fall outside every bin.
type Bins struct {
	Edges []float64
}

// NewBins builds n equal-width bins spanning [min, max].
func NewBins(min, max float64, n int) (Bins, error) {
	if n < 1 {
		return Bins{}, fmt.Errorf("%w: bin count %d", hydraulics.ErrPrecondition, n)
	}
	if max <= min {
		return Bins{}, fmt.Errorf("%w: bin range [%g, %g]", hydraulics.ErrPrecondition, min, max)
	}
	return Bins{Edges: floats.Span(make([]float64, n+1), min, max)}, nil
}

// Count is the number of bins.
func (b Bins) Count() int {
	return len(b.Edges) - 1
}

// Assign returns the bin index holding x, or -1 when x is outside the
// binned range.
func (b Bins) Assign(x float64) int {
	if len(b.Edges) < 2 || x <= b.Edges[0] || x > b.Edges[len(b.Edges)-1] {
		return -1
	}
	for i := 1; i < len(b.Edges); i++ {
		if x <= b.Edges[i] {
			return i - 1
		}
	}
	return -1
}

// Label formats bin i the way the interval is defined.
func (b Bins) Label(i int) string {
	return fmt.Sprintf("(%.4g, %.4g]", b.Edges[i], b.Edges[i+1])
}

// Labels returns every bin label in order.
func (b Bins) Labels() (names []string) {
	names = make([]string, b.Count())
	for i := range names {
		names[i] = b.Label(i)
	}
	return
}

// GroupFlows buckets the dataset's flows by which bin the head falls in.
// Measurements outside the binned range are dropped.
func GroupFlows(d Dataset, b Bins) [][]float64 {
	groups := make([][]float64, b.Count())
	var dropped int
	for _, rec := range d {
		i := b.Assign(rec.Head)
		if i < 0 {
			dropped++
			continue
		}
		groups[i] = append(groups[i], rec.Flow)
	}
	if dropped > 0 {
		log.WithFields(log.Fields{"dropped": dropped, "total": len(d)}).
			Debug("measurements outside the binned range")
	}
	return groups
}
