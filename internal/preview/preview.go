// Package preview draws a reconstructed survey network as a PNG, so the
// conversion can be checked against the drawing at a glance.
package preview

import (
	"io"
	"math"
	"os"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/osuushi/svgsurvex/survey"
	"github.com/pkg/errors"
)

// Padding around the network, in pixels
const padding = 40

const DefaultWidth = 1024

// Canvas maps network coordinates (y-up) onto image pixels (y-down).
type Canvas struct {
	Width, Height int
	minX, minY    float64
	scale         float64
}

func NewCanvas(n *survey.Network, width int) Canvas {
	if width <= 2*padding {
		width = DefaultWidth
	}
	var minX, minY, maxX, maxY float64
	minX = math.Inf(1)
	minY = math.Inf(1)
	maxX = math.Inf(-1)
	maxY = math.Inf(-1)
	for _, t := range n.Traverses {
		for _, s := range t.Stations {
			minX = math.Min(minX, s.Position.X)
			minY = math.Min(minY, s.Position.Y)
			maxX = math.Max(maxX, s.Position.X)
			maxY = math.Max(maxY, s.Position.Y)
		}
	}
	if math.IsInf(minX, 1) {
		minX, minY, maxX, maxY = 0, 0, 0, 0
	}

	span := math.Max(maxX-minX, maxY-minY)
	if span == 0 {
		span = 1
	}
	scale := float64(width-2*padding) / span
	return Canvas{
		Width:  width,
		Height: int(math.Ceil((maxY-minY)*scale)) + 2*padding,
		minX:   minX,
		minY:   minY,
		scale:  scale,
	}
}

func (c Canvas) Point(p survey.Point) (float64, float64) {
	x := padding + (p.X-c.minX)*c.scale
	y := float64(c.Height) - padding - (p.Y-c.minY)*c.scale
	return x, y
}

// Draw renders the network: traverses in red, stations in white, equated
// stations ringed in cyan, and a north arrow in the top right corner.
func Draw(n *survey.Network, width int) (*gg.Context, Canvas) {
	canvas := NewCanvas(n, width)
	c := gg.NewContext(canvas.Width, canvas.Height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(canvas.Width), float64(canvas.Height))
	c.Fill()

	c.SetLineWidth(2)
	c.SetRGB(1, 0.3, 0.3)
	for _, t := range n.Traverses {
		for i, s := range t.Stations {
			x, y := canvas.Point(s.Position)
			if i == 0 {
				c.MoveTo(x, y)
			} else {
				c.LineTo(x, y)
			}
		}
		c.Stroke()
	}

	equated := make(map[survey.StationID]bool)
	for _, pair := range n.Equates {
		equated[pair.A] = true
		equated[pair.B] = true
	}

	for _, t := range n.Traverses {
		for _, s := range t.Stations {
			x, y := canvas.Point(s.Position)
			c.SetRGB(1, 1, 1)
			c.DrawCircle(x, y, 2)
			c.Fill()
			if equated[s.ID()] {
				c.SetRGB(0, 1, 1)
				c.SetLineWidth(1.5)
				c.DrawCircle(x, y, 5)
				c.Stroke()
			}
		}
		if len(t.Stations) > 0 {
			x, y := canvas.Point(t.Stations[0].Position)
			c.SetRGB(1, 1, 0)
			c.DrawStringAnchored(t.ID, x+6, y-6, 0, 0)
		}
	}

	drawNorthArrow(c, canvas, n.Basis)
	return c, canvas
}

func drawNorthArrow(c *gg.Context, canvas Canvas, basis survey.Basis) {
	const length = 24
	x0 := float64(canvas.Width) - padding/2 - length/2
	y0 := float64(padding) + length/2
	// Flip y for the image
	dx, dy := basis.North.X*length, -basis.North.Y*length
	c.SetRGB(0, 1, 0)
	c.SetLineWidth(2)
	c.MoveTo(x0-dx/2, y0-dy/2)
	c.LineTo(x0+dx/2, y0+dy/2)
	c.Stroke()
	c.DrawStringAnchored("N", x0+dx/2+basis.North.X*8, y0+dy/2-basis.North.Y*8, 0.5, 0.5)
}

// Encode writes the preview as a PNG.
func Encode(w io.Writer, n *survey.Network, width int) error {
	c, _ := Draw(n, width)
	return errors.Wrap(c.EncodePNG(w), "encoding preview")
}

// Save writes the preview to a PNG file.
func Save(path string, n *survey.Network, width int) error {
	c, _ := Draw(n, width)
	return errors.Wrapf(c.SavePNG(path), "saving preview %s", path)
}

// Show prints the preview inline in terminals that understand the iTerm image
// protocol. Without a path, a temporary file is used.
func Show(w io.Writer, path string, n *survey.Network, width int) error {
	if path == "" {
		f, err := os.CreateTemp("", "svg2svx-*.png")
		if err != nil {
			return errors.Wrap(err, "creating preview file")
		}
		path = f.Name()
		f.Close()
		defer os.Remove(path)
		if err := Save(path, n, width); err != nil {
			return err
		}
	}
	return errors.Wrap(imgcat.CatFile(path, w), "showing preview")
}
