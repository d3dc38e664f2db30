// Package pkg provides the libraries behind snakegrid.
//
// # Overview
//
// Snakegrid paints a list of dates onto a contribution-graph SVG. The data
// flow is a single linear pass:
//
//	dates.json             template.svg
//	    ↓                       ↓
//	[dates] parse         [splice] find </g></svg>
//	    ↓                       │
//	[grid] window, cell, x/y    │
//	    ↓                       │
//	[marker] <rect .../>  ──────┘
//	    ↓
//	[snake] splice and write output.svg
//
// [config] carries the paths and geometry, [errors] the coded error taxonomy,
// and [buildinfo] the version stamped at build time.
package pkg
