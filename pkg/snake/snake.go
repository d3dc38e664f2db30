package snake

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/snakegrid/pkg/config"
	"github.com/matzehuels/snakegrid/pkg/dates"
	errs "github.com/matzehuels/snakegrid/pkg/errors"
	"github.com/matzehuels/snakegrid/pkg/grid"
	"github.com/matzehuels/snakegrid/pkg/splice"
)

// Injector merges markers into templates according to a [config.Config].
type Injector struct {
	cfg    config.Config
	logger *log.Logger
}

// Option configures an Injector.
type Option func(*Injector)

// WithLogger sets the logger. The default is log.Default().
func WithLogger(l *log.Logger) Option {
	return func(i *Injector) {
		if l != nil {
			i.logger = l
		}
	}
}

// New creates an Injector for cfg. The config is expected to be valid.
func New(cfg config.Config, opts ...Option) *Injector {
	i := &Injector{cfg: cfg, logger: log.Default()}
	for _, opt := range opts {
		opt(i)
	}
	return i
}

// Window returns the graph window ending on today's date.
func (i *Injector) Window(today time.Time) grid.Window {
	return grid.NewWindow(today, i.cfg.WindowDays)
}

// Placement describes where one target date lands on the grid.
type Placement struct {
	Date      time.Time
	DayNumber int
	Cell      grid.Cell
	Point     grid.Point
	InWindow  bool
}

// Place computes the placement of every date against w, in input order.
// Out-of-window dates are reported with InWindow false and zero position.
func (i *Injector) Place(w grid.Window, list []time.Time) []Placement {
	geom := i.cfg.Marker.Geometry()
	out := make([]Placement, len(list))
	for n, d := range list {
		p := Placement{Date: d, DayNumber: w.DayNumber(d), InWindow: w.Contains(d)}
		if p.InWindow {
			p.Cell = w.Cell(d)
			p.Point = geom.Locate(w, d)
		}
		out[n] = p
	}
	return out
}

// Markers renders the concatenated marker markup for the in-window dates of
// list, keeping input order and duplicates. It also returns the marker count.
func (i *Injector) Markers(w grid.Window, list []time.Time) ([]byte, int) {
	var points []grid.Point
	for _, p := range i.Place(w, list) {
		if p.InWindow {
			points = append(points, p.Point)
		}
	}
	return i.cfg.Marker.Style().RenderAll(points), len(points)
}

// Result summarizes a completed merge.
type Result struct {
	Window  grid.Window
	Dates   int      // dates loaded
	Markers int      // dates inside the window
	Outputs []string // files written, in target order
}

// Merge runs the full read, render, splice and write sequence for every
// target. today is read once by the caller and used for the whole run.
func (i *Injector) Merge(ctx context.Context, today time.Time) (*Result, error) {
	w := i.Window(today)
	i.logger.Debug("graph window", "window_start", w.Start.Format(grid.DateLayout), "window_end", w.End.Format(grid.DateLayout))

	templates := make([][]byte, len(i.cfg.Targets))
	for n, t := range i.cfg.Targets {
		data, err := readTemplate(t.Template)
		if err != nil {
			return nil, err
		}
		templates[n] = data
	}

	list, err := dates.Load(i.cfg.Dates)
	if err != nil {
		return nil, err
	}
	markup, count := i.Markers(w, list)
	i.logger.Debug("rendered markers", "dates", len(list), "markers", count)

	merged := make([][]byte, len(templates))
	for n, tmpl := range templates {
		out, err := splice.Insert(tmpl, markup)
		if err != nil {
			return nil, errs.Wrap(errs.ErrCodeInternal, err, "splice %s", i.cfg.Targets[n].Template)
		}
		merged[n] = out
	}

	res := &Result{Window: w, Dates: len(list), Markers: count}
	for n, t := range i.cfg.Targets {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		if err := writeOutput(t.Output, merged[n]); err != nil {
			return res, err
		}
		i.logger.Debug("wrote output", "output", t.Output, "bytes", len(merged[n]))
		res.Outputs = append(res.Outputs, t.Output)
	}
	return res, nil
}

// readTemplate loads a template and checks that it has an anchor.
func readTemplate(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, errs.Wrap(errs.ErrCodeFileNotFound, err, "read template %s", path)
		}
		return nil, errs.Wrap(errs.ErrCodeIO, err, "read template %s", path)
	}
	if _, ok := splice.Anchor(data); !ok {
		return nil, errs.New(errs.ErrCodeAnchorNotFound, "no </g></svg> anchor in template %s", path)
	}
	return data, nil
}

func writeOutput(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errs.Wrap(errs.ErrCodeIO, err, "create output directory %s", dir)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errs.Wrap(errs.ErrCodeIO, err, "write output %s", path)
	}
	return nil
}
