// Package splice inserts markup into an SVG template at its closing anchor.
//
// The template is treated as opaque text. The only structure inspected is the
// anchor: a </g> tag, optional whitespace, then </svg>. New markup goes
// immediately before the earliest such match, so it lands inside the last
// group of the document.
package splice

import (
	"regexp"

	errs "github.com/matzehuels/snakegrid/pkg/errors"
)

// anchorPattern matches the close of the grid group and the svg root.
var anchorPattern = regexp.MustCompile(`</g>\s*</svg>`)

// Anchor returns the byte offset of the earliest anchor in template.
func Anchor(template []byte) (int, bool) {
	loc := anchorPattern.FindIndex(template)
	if loc == nil {
		return 0, false
	}
	return loc[0], true
}

// Insert returns a copy of template with markup inserted before the anchor.
// It fails with ANCHOR_NOT_FOUND when the template has no anchor.
func Insert(template, markup []byte) ([]byte, error) {
	at, ok := Anchor(template)
	if !ok {
		return nil, errs.New(errs.ErrCodeAnchorNotFound, "template has no </g></svg> anchor")
	}
	out := make([]byte, 0, len(template)+len(markup))
	out = append(out, template[:at]...)
	out = append(out, markup...)
	out = append(out, template[at:]...)
	return out, nil
}
