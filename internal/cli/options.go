package cli

import (
	"errors"
	"io/fs"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/snakegrid/pkg/config"
	errs "github.com/matzehuels/snakegrid/pkg/errors"
	"github.com/matzehuels/snakegrid/pkg/grid"
)

// runOpts holds the flags shared by merge and window.
// Flags override values from the config file.
type runOpts struct {
	configPath string // explicit config file; must exist when set
	dates      string // date list path
	template   string // template path (replaces configured targets)
	output     string // output path (replaces configured targets)
	today      string // YYYY-MM-DD; empty means the local date
	windowDays int    // window length in days
	fill       string // marker fill color
	verbose    bool
}

func (o *runOpts) register(cmd *cobra.Command) {
	f := cmd.PersistentFlags()
	f.StringVarP(&o.configPath, "config", "c", "", "config file (default ./"+config.FileName+" if present)")
	f.StringVarP(&o.dates, "dates", "d", config.DefaultDates, "JSON file with a list of YYYY-MM-DD dates")
	f.StringVarP(&o.template, "template", "t", config.DefaultTemplate, "template SVG")
	f.StringVarP(&o.output, "output", "o", config.DefaultOutput, "output SVG")
	f.StringVar(&o.today, "today", "", "pin today's date (YYYY-MM-DD)")
	f.IntVar(&o.windowDays, "window-days", config.DefaultWindowDays, "days before today covered by the graph")
	f.StringVar(&o.fill, "fill", config.DefaultFill, "marker fill color")
	f.BoolVarP(&o.verbose, "verbose", "v", false, "enable verbose logging")
}

// resolveConfig builds the run configuration: file (explicit, ./snakegrid.toml,
// or defaults), then any flags the user set.
func (o *runOpts) resolveConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := o.baseConfig()
	if err != nil {
		return config.Config{}, err
	}

	flags := cmd.Flags()
	if flags.Changed("dates") {
		cfg.Dates = o.dates
	}
	if flags.Changed("template") || flags.Changed("output") {
		t := config.Target{Template: config.DefaultTemplate, Output: config.DefaultOutput}
		if len(cfg.Targets) == 1 {
			t = cfg.Targets[0]
		}
		if flags.Changed("template") {
			t.Template = o.template
		}
		if flags.Changed("output") {
			t.Output = o.output
		}
		cfg.Targets = []config.Target{t}
	}
	if flags.Changed("window-days") {
		cfg.WindowDays = o.windowDays
	}
	if flags.Changed("fill") {
		cfg.Marker.Fill = o.fill
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

func (o *runOpts) baseConfig() (config.Config, error) {
	if o.configPath != "" {
		return config.Load(o.configPath)
	}
	if _, err := os.Stat(config.FileName); err == nil {
		return config.Load(config.FileName)
	} else if !errors.Is(err, fs.ErrNotExist) {
		return config.Config{}, errs.Wrap(errs.ErrCodeIO, err, "stat %s", config.FileName)
	}
	return config.Default(), nil
}

// resolveToday returns the run's single notion of today.
func (o *runOpts) resolveToday(now func() time.Time) (time.Time, error) {
	if o.today == "" {
		return grid.Day(now()), nil
	}
	d, err := grid.ParseDay(o.today)
	if err != nil {
		return time.Time{}, errs.Wrap(errs.ErrCodeInvalidInput, err, "--today %q is not a YYYY-MM-DD date", o.today)
	}
	return d, nil
}
