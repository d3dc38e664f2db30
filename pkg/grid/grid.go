package grid

import (
	"fmt"
	"time"
)

// DateLayout is the calendar date format used for input and display.
const DateLayout = "2006-01-02"

// DaysPerWeek is the number of rows in the grid.
const DaysPerWeek = 7

const secondsPerDay = 24 * 60 * 60

// Day truncates t to its calendar date, expressed as UTC midnight.
// The year, month and day are taken in t's own location.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseDay parses a YYYY-MM-DD string into a calendar date.
func ParseDay(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}

// Window is the inclusive date range the graph currently shows.
type Window struct {
	Start time.Time
	End   time.Time
}

// NewWindow returns the window ending on today's calendar date and starting
// days earlier. Both ends are inclusive.
func NewWindow(today time.Time, days int) Window {
	end := Day(today)
	return Window{Start: end.AddDate(0, 0, -days), End: end}
}

// Contains reports whether d falls within the window, bounds included.
func (w Window) Contains(d time.Time) bool {
	d = Day(d)
	return !d.Before(w.Start) && !d.After(w.End)
}

// DayNumber returns the number of days from the window start to d.
// It is negative for dates before the start.
func (w Window) DayNumber(d time.Time) int {
	return int(unixDay(Day(d)) - unixDay(w.Start))
}

// Cell returns the grid cell of d.
//
// Cell does not check window membership. For dates before the start it uses
// floored division, so Row stays in [0,6] and Column goes negative.
func (w Window) Cell(d time.Time) Cell {
	col, row := floorDivMod(w.DayNumber(d), DaysPerWeek)
	return Cell{Column: col, Row: row}
}

// Len returns the number of calendar days in the window.
func (w Window) Len() int {
	return w.DayNumber(w.End) + 1
}

func (w Window) String() string {
	return fmt.Sprintf("%s..%s", w.Start.Format(DateLayout), w.End.Format(DateLayout))
}

// Cell is a zero-based (column, row) position in the grid.
type Cell struct {
	Column int
	Row    int
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.Column, c.Row)
}

// Geometry describes how cells map to pixels.
type Geometry struct {
	Origin int // offset of cell (0,0) on both axes
	Pitch  int // distance between neighbouring cells
}

// Position returns the pixel coordinates of c's top-left corner.
func (g Geometry) Position(c Cell) (x, y int) {
	return g.Origin + c.Column*g.Pitch, g.Origin + c.Row*g.Pitch
}

// Point is a pixel coordinate.
type Point struct {
	X, Y int
}

// Locate combines [Window.Cell] and [Geometry.Position].
func (g Geometry) Locate(w Window, d time.Time) Point {
	x, y := g.Position(w.Cell(d))
	return Point{X: x, Y: y}
}

// unixDay returns the number of days between the Unix epoch and the UTC
// midnight t. Unlike time.Duration it does not saturate for long spans.
func unixDay(t time.Time) int64 {
	return t.Unix() / secondsPerDay
}

func floorDivMod(n, d int) (q, r int) {
	q, r = n/d, n%d
	if r < 0 {
		q--
		r += d
	}
	return q, r
}
