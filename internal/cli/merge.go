package cli

import (
	"time"

	"github.com/spf13/cobra"

	errs "github.com/matzehuels/snakegrid/pkg/errors"
	"github.com/matzehuels/snakegrid/pkg/grid"
	"github.com/matzehuels/snakegrid/pkg/snake"
)

// mergeCommand creates the merge command. It does the same as running
// snakegrid without a subcommand.
func (c *CLI) mergeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "merge",
		Short: "Paint the target dates onto every configured template",
		Long: `Merge reads the date list and each template, renders one marker per date inside
the graph window, and writes every template back out with the markers inserted
before its closing </g></svg>.

Nothing is written unless every template has the anchor and every date parses.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runMerge(cmd)
		},
	}
}

func (c *CLI) runMerge(cmd *cobra.Command) error {
	ctx := cmd.Context()
	logger := runLogger(loggerFromContext(ctx))

	cfg, err := c.opts.resolveConfig(cmd)
	if err != nil {
		return err
	}
	today, err := c.opts.resolveToday(time.Now)
	if err != nil {
		return err
	}

	prog := newProgress(logger)
	res, err := snake.New(cfg, snake.WithLogger(logger)).Merge(ctx, today)
	if err != nil {
		if errs.IsStructural(err) {
			logger.Debug("template rejected", "reason", errs.UserMessage(err))
			printError("%s; no output written", errs.UserMessage(err))
		}
		return err
	}
	prog.done("merged markers",
		"window_start", res.Window.Start.Format(grid.DateLayout),
		"window_end", res.Window.End.Format(grid.DateLayout),
		"dates", res.Dates,
		"markers", res.Markers)

	printSuccess("Painted %d of %d dates", res.Markers, res.Dates)
	for _, out := range res.Outputs {
		printFile(out)
	}
	return nil
}
