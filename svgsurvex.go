// Convert annotated vector drawings of caves into survex survey data.
//
// A drawing marks up a scanned survey with colored lines: a scale bar of known
// length, an orientation line pointing north, and polylines tracing the
// survey legs. Each traced polyline becomes a traverse of stations and legs,
// and stations that coincide across polylines are equated.
//
// See the survey package for the reconstruction itself and the svx package for
// the output format.
package svgsurvex

import (
	"io"

	"github.com/osuushi/svgsurvex/internal/drawing"
	"github.com/osuushi/svgsurvex/survey"
	"github.com/osuushi/svgsurvex/svx"
)

type Drawing = drawing.Document
type Network = survey.Network
type Options = survey.Options
type Roles = survey.Roles
type Color = survey.Color
type Meta = svx.Meta

// Convert reads an SVG drawing and reconstructs the survey network it
// describes. The drawing is returned as well, for its name and image.
func Convert(r io.Reader, opts Options) (*Drawing, *Network, error) {
	doc, err := drawing.Read(r)
	if err != nil {
		return nil, nil, err
	}
	network, err := survey.Build(doc.Records, opts)
	if err != nil {
		return doc, nil, err
	}
	return doc, network, nil
}

// ParseColor reads a CSS style color, like "#ff0000" or "red".
func ParseColor(s string) (Color, error) {
	return drawing.ParseColor(s)
}

// WriteSVX writes the network as a survex file.
func WriteSVX(w io.Writer, n *Network, meta Meta) error {
	return svx.Write(w, n, meta)
}
