// Package svx renders a survey network as a survex data file.
package svx

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"strings"
	"time"

	"github.com/osuushi/svgsurvex/survey"
	"github.com/pkg/errors"
)

// Meta carries everything the file needs that isn't part of the network
// itself.
type Meta struct {
	// Name of the outermost *begin block
	Name string
	// Drawing the network was read from
	Source string
	// Background image embedded in the drawing, if any
	Image     string
	Generated time.Time
	// Add per-traverse commentary
	Extra bool
}

// Write renders the network and writes it to w in one go. Nothing is written
// if rendering fails.
func Write(w io.Writer, n *survey.Network, meta Meta) error {
	data, err := Render(n, meta)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

func Render(n *survey.Network, meta Meta) ([]byte, error) {
	if n == nil {
		return nil, errors.New("svx: nil network")
	}
	if strings.TrimSpace(meta.Name) == "" {
		return nil, errors.New("svx: missing top level block name")
	}

	var buf bytes.Buffer
	writeHeader(&buf, n, meta)

	top := SurveyName(meta.Name)
	nested := len(n.Traverses) > 1

	fmt.Fprintf(&buf, "\n*begin %s\n\n", top)

	if len(n.Equates) > 0 {
		for _, pair := range n.Equates {
			fmt.Fprintf(&buf, "*equate %s %s ; separation %4.2f m\n",
				stationName(pair.A, nested), stationName(pair.B, nested), pair.Separation)
		}
		buf.WriteString("\n")
	}

	buf.WriteString("*data normal from to tape compass clino\n\n")

	for _, t := range n.Traverses {
		if nested {
			fmt.Fprintf(&buf, "*begin %s\n", SurveyName(t.ID))
			if ids := n.Exports[t.ID]; len(ids) > 0 {
				fmt.Fprintf(&buf, "*export %s\n", strings.Join(ids, " "))
			}
		}
		if meta.Extra {
			writeTraverseComment(&buf, &t)
		}
		for _, leg := range t.Legs {
			fmt.Fprintf(&buf, "%3s %3s %8.3f %6.1f 0\n", leg.From, leg.To, leg.Tape, roundCompass(leg.Compass))
		}
		if nested {
			fmt.Fprintf(&buf, "*end %s\n", SurveyName(t.ID))
		}
		buf.WriteString("\n")
	}

	fmt.Fprintf(&buf, "*end %s\n", top)
	buf.WriteString("; end of file\n")
	return buf.Bytes(), nil
}

func writeHeader(buf *bytes.Buffer, n *survey.Network, meta Meta) {
	source := meta.Source
	if source == "" {
		source = "unknown drawing"
	}
	fmt.Fprintf(buf, "; survex file generated from %s\n", source)
	if meta.Image != "" {
		fmt.Fprintf(buf, "; image %s\n", meta.Image)
	}
	if !meta.Generated.IsZero() {
		fmt.Fprintf(buf, "; generated %s\n", meta.Generated.Format(time.RFC3339))
	}

	b := n.Basis
	fmt.Fprintf(buf, "; scale factor %.6g m per drawing unit (scale bar %g m)\n", b.ScaleFactor, n.Options.ScaleLength)
	fmt.Fprintf(buf, "; north unit (%.4f, %.4f), east unit (%.4f, %.4f), north offset %g deg\n",
		b.North.X, b.North.Y, b.East.X, b.East.Y, n.Options.NorthOffset)
	if n.Options.Layer != "" {
		fmt.Fprintf(buf, "; restricted to layer %s\n", n.Options.Layer)
	}
	fmt.Fprintf(buf, "; %s\n", Counts(n))
	fmt.Fprintf(buf, "; tolerance for equates %g m\n", n.Options.Tolerance)
}

// Counts sums up the size of a network, as in "2 traverses, 5 stations,
// 3 legs, 1 equate".
func Counts(n *survey.Network) string {
	return strings.Join([]string{
		plural(len(n.Traverses), "traverse"),
		plural(n.StationCount(), "station"),
		plural(n.LegCount(), "leg"),
		plural(len(n.Equates), "equate"),
	}, ", ")
}

func plural(count int, noun string) string {
	if count == 1 {
		return "1 " + noun
	}
	return fmt.Sprintf("%d %ss", count, noun)
}

func writeTraverseComment(buf *bytes.Buffer, t *survey.Traverse) {
	layer := t.Layer
	if layer == "" {
		layer = "(none)"
	}
	fmt.Fprintf(buf, "; traverse %s on layer %s, %d stations, length %.2f m\n", t.ID, layer, len(t.Stations), t.Length())
}

// Inside a single traverse there is no nested block, so stations are named
// by index alone.
func stationName(id survey.StationID, nested bool) string {
	if !nested {
		return id.Local
	}
	return SurveyName(id.Traverse) + "." + id.Local
}

// Round to the printed precision, so 359.96 comes out as 0.0 rather than 360.0
func roundCompass(c float64) float64 {
	r := math.Round(c*10) / 10
	if r >= 360 {
		r -= 360
	}
	return r
}

// SurveyName makes an identifier safe to use as a survex survey name. See
// survey.SurveyName.
func SurveyName(id string) string {
	return survey.SurveyName(id)
}
