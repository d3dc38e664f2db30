// Package marker renders contribution markers as SVG rect fragments.
package marker

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/matzehuels/snakegrid/pkg/grid"
)

// Style is the fixed appearance of every marker.
type Style struct {
	Width  int
	Height int
	Fill   string
}

// Render writes one marker at p to w, in the literal shape
//
//	<rect width="10" height="10" x="27" y="13" fill="#0e4429" />
func (s Style) Render(w io.Writer, p grid.Point) error {
	_, err := fmt.Fprintf(w, `<rect width="%d" height="%d" x="%d" y="%d" fill="%s" />`,
		s.Width, s.Height, p.X, p.Y, s.Fill)
	return err
}

// Fragment returns the fragment for one marker at p.
func (s Style) Fragment(p grid.Point) string {
	var sb strings.Builder
	_ = s.Render(&sb, p)
	return sb.String()
}

// RenderAll concatenates one fragment per point, in order, with no separator.
func (s Style) RenderAll(points []grid.Point) []byte {
	var buf bytes.Buffer
	for _, p := range points {
		_ = s.Render(&buf, p)
	}
	return buf.Bytes()
}
