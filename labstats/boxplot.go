package labstats

import (
	"fmt"

	log "github.com/sirupsen/logrus"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/openflume/gohydro/hydraulics"
)

// PlotConfig names the figure decorations and the output file. Save formats
// follow the file extension; the lab reports use PNG.
type PlotConfig struct {
	Title  string
	XLabel string
	YLabel string
	File   string
}

// boxWidth is the rendered width of each box.
const boxWidth = 20 * vg.Millimeter

func newFigure(cfg PlotConfig) (*plot.Plot, error) {
	if cfg.File == "" {
		return nil, fmt.Errorf("%w: no output file", hydraulics.ErrPrecondition)
	}
	p := plot.New()
	p.Title.Text = cfg.Title
	p.X.Label.Text = cfg.XLabel
	p.Y.Label.Text = cfg.YLabel
	grid := plotter.NewGrid()
	grid.Vertical.Dashes = []vg.Length{vg.Points(2), vg.Points(2)}
	grid.Horizontal.Dashes = []vg.Length{vg.Points(2), vg.Points(2)}
	p.Add(grid)
	return p, nil
}

// SaveGroupedBoxPlot renders one vertical box per group on a shared nominal
// axis and writes a 10x6 inch figure. Empty groups keep their axis slot but
// draw no box.
func SaveGroupedBoxPlot(groups [][]float64, labels []string, cfg PlotConfig) error {
	if len(groups) == 0 {
		return fmt.Errorf("%w: no groups", hydraulics.ErrPrecondition)
	}
	if len(groups) != len(labels) {
		return fmt.Errorf("%w: %d groups, %d labels",
			hydraulics.ErrPrecondition, len(groups), len(labels))
	}
	p, err := newFigure(cfg)
	if err != nil {
		return err
	}
	var drawn int
	for i, g := range groups {
		if len(g) == 0 {
			log.WithFields(log.Fields{"bin": labels[i]}).Debug("empty bin, no box drawn")
			continue
		}
		b, err := plotter.NewBoxPlot(boxWidth, float64(i), plotter.Values(g))
		if err != nil {
			return fmt.Errorf("labstats: box %q: %w", labels[i], err)
		}
		p.Add(b)
		drawn++
	}
	if drawn == 0 {
		return fmt.Errorf("%w: every group is empty", hydraulics.ErrPrecondition)
	}
	p.NominalX(labels...)
	if err := p.Save(10*vg.Inch, 6*vg.Inch, cfg.File); err != nil {
		return fmt.Errorf("labstats: saving %s: %w", cfg.File, err)
	}
	log.WithFields(log.Fields{"file": cfg.File, "boxes": drawn}).Debug("figure written")
	return nil
}

// SaveBoxPlot renders a single horizontal box for one measurement series
// and writes a 10x4 inch figure.
func SaveBoxPlot(values []float64, cfg PlotConfig) error {
	if len(values) == 0 {
		return fmt.Errorf("%w: empty series", hydraulics.ErrPrecondition)
	}
	p, err := newFigure(cfg)
	if err != nil {
		return err
	}
	b, err := plotter.NewBoxPlot(boxWidth, 0, plotter.Values(values))
	if err != nil {
		return fmt.Errorf("labstats: box: %w", err)
	}
	b.Horizontal = true
	p.Add(b)
	p.NominalY("")
	if err := p.Save(10*vg.Inch, 4*vg.Inch, cfg.File); err != nil {
		return fmt.Errorf("labstats: saving %s: %w", cfg.File, err)
	}
	log.WithFields(log.Fields{"file": cfg.File, "n": len(values)}).Debug("figure written")
	return nil
}
