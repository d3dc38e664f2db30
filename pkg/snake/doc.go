// Package snake implements the snake grid injector.
//
// A run reads one or more SVG templates and a list of target dates, paints a
// marker for every date inside the trailing window ending today, and writes
// each template back out with the markers inserted before its closing
// </g></svg> anchor.
//
// # Failure semantics
//
// All templates are read and checked for the anchor, and all markers are
// rendered, before the first output is written. A missing file, a malformed
// date or a missing anchor therefore writes nothing. Outputs are written in
// target order; if a write fails or the context is cancelled part way, the
// targets before it keep their new content and [Result.Outputs] lists them.
//
// # Usage
//
//	inj := snake.New(config.Default(), snake.WithLogger(logger))
//	res, err := inj.Merge(ctx, time.Now())
package snake
