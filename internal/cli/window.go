package cli

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/snakegrid/pkg/dates"
	"github.com/matzehuels/snakegrid/pkg/grid"
	"github.com/matzehuels/snakegrid/pkg/snake"
)

// windowCommand creates the window command, a read-only preview of where
// each date would be painted.
func (c *CLI) windowCommand() *cobra.Command {
	var noDates bool

	cmd := &cobra.Command{
		Use:   "window",
		Short: "Show the graph window and the grid cell of each date",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runWindow(cmd, noDates)
		},
	}
	cmd.Flags().BoolVar(&noDates, "no-dates", false, "only show the window, do not read the date list")
	return cmd
}

func (c *CLI) runWindow(cmd *cobra.Command, noDates bool) error {
	cfg, err := c.opts.resolveConfig(cmd)
	if err != nil {
		return err
	}
	today, err := c.opts.resolveToday(time.Now)
	if err != nil {
		return err
	}

	inj := snake.New(cfg, snake.WithLogger(loggerFromContext(cmd.Context())))
	w := inj.Window(today)

	printKeyValue("start", w.Start.Format(grid.DateLayout))
	printKeyValue("end", w.End.Format(grid.DateLayout))
	printKeyValue("days", strconv.Itoa(w.Len()))
	printKeyValue("columns", strconv.Itoa(w.Cell(w.End).Column+1))

	if noDates {
		return nil
	}

	list, err := dates.Load(cfg.Dates)
	if err != nil {
		return err
	}
	printNewline()
	painted := 0
	for _, p := range inj.Place(w, list) {
		printPlacement(p)
		if p.InWindow {
			painted++
		}
	}
	printStats(len(list), painted)
	return nil
}

func printPlacement(p snake.Placement) {
	day := p.Date.Format(grid.DateLayout)
	if !p.InWindow {
		fmt.Println("  " + StyleDim.Render(day+"  outside window"))
		return
	}
	fmt.Printf("  %s  %s  %s\n",
		StyleValue.Render(day),
		StyleDim.Render(fmt.Sprintf("day %3d  cell %-8s", p.DayNumber, p.Cell)),
		StyleNumber.Render(fmt.Sprintf("x=%d y=%d", p.Point.X, p.Point.Y)))
}
