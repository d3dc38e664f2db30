// Package grid maps calendar dates onto a contribution-graph grid.
//
// The graph shows a trailing window of days ending today. Every date inside
// the window has a day number (days since the window start), which folds into
// a week column and a weekday row:
//
//	day    = date - start
//	column = day / 7
//	row    = day % 7
//
// A [Geometry] turns a [Cell] into pixel coordinates:
//
//	x = origin + column*pitch
//	y = origin + row*pitch
//
// All values are calendar dates at UTC midnight, so day arithmetic is exact.
// "Today" is passed in explicitly; nothing in this package reads the clock.
package grid
