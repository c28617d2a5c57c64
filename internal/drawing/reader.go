// Package drawing extracts polylines from an Inkscape SVG drawing.
//
// Every path, line, polyline and polygon with a stroke color becomes a
// survey.PolylineRecord. Transforms on the element and its ancestors are
// applied, and the y axis is flipped so records are in a y-up frame where
// "up the page" is +y.
package drawing

import (
	"fmt"
	"io"
	"log/slog"
	"path"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"
	"github.com/osuushi/svgsurvex/survey"
	"github.com/pkg/errors"
)

// Document is what a conversion needs from the drawing.
type Document struct {
	// sodipodi:docname, if the drawing was saved by Inkscape
	Name string
	// File name of the first embedded or linked image, usually the scanned survey
	Image   string
	Records []survey.PolylineRecord
}

// Subtrees that never render directly
var skippedElements = map[string]bool{
	"defs":      true,
	"clipPath":  true,
	"mask":      true,
	"pattern":   true,
	"symbol":    true,
	"marker":    true,
	"metadata":  true,
	"namedview": true,
}

// Read parses an SVG document and extracts its polylines.
func Read(r io.Reader) (*Document, error) {
	root, err := svgparser.Parse(r, false)
	if err != nil {
		return nil, errors.Wrap(err, "parsing svg")
	}
	if root == nil || root.Name != "svg" {
		return nil, errors.New("not an svg document")
	}

	doc := &Document{Name: root.Attributes["docname"]}
	if images := root.FindAll("image"); len(images) > 0 {
		doc.Image = imageName(images[0])
	}

	w := &walker{doc: doc, ids: make(map[string]bool)}
	w.collectIDs(root)
	if err := w.walk(root, scope{transform: Identity()}); err != nil {
		return nil, err
	}
	return doc, nil
}

// Inkscape records the image's absolute path in sodipodi:absref. Embedded data
// URIs have no useful name.
func imageName(el *svgparser.Element) string {
	ref := el.Attributes["absref"]
	if ref == "" {
		ref = el.Attributes["href"]
	}
	if ref == "" || strings.HasPrefix(ref, "data:") {
		return ""
	}
	return path.Base(strings.ReplaceAll(ref, "\\", "/"))
}

// What an element inherits from its ancestors
type scope struct {
	transform Transform
	stroke    string
	layer     string
	// Whether layer came from an Inkscape layer rather than a plain group label
	inLayer bool
}

type walker struct {
	doc  *Document
	ids  map[string]bool
	anon int
}

func (w *walker) collectIDs(el *svgparser.Element) {
	if id := el.Attributes["id"]; id != "" {
		w.ids[id] = true
	}
	for _, child := range el.Children {
		w.collectIDs(child)
	}
}

func (w *walker) walk(el *svgparser.Element, parent scope) error {
	if skippedElements[el.Name] {
		return nil
	}

	s := parent
	if attr := el.Attributes["transform"]; attr != "" {
		t, err := ParseTransform(attr)
		if err != nil {
			return errors.Wrapf(err, "element %q", el.Attributes["id"])
		}
		s.transform = parent.transform.Mul(t)
	}
	if stroke := strokeOf(el); stroke != "" {
		s.stroke = stroke
	}

	switch el.Name {
	case "g":
		label := el.Attributes["label"]
		if el.Attributes["groupmode"] == "layer" {
			s.layer = label
			s.inLayer = true
		} else if label != "" && !s.inLayer {
			s.layer = label
		}
	case "path", "line", "polyline", "polygon":
		if err := w.shape(el, s); err != nil {
			return err
		}
	}

	for _, child := range el.Children {
		if err := w.walk(child, s); err != nil {
			return err
		}
	}
	return nil
}

func strokeOf(el *svgparser.Element) string {
	if style := el.Attributes["style"]; style != "" {
		if stroke, ok := parseStyle(style)["stroke"]; ok {
			return stroke
		}
	}
	return strings.TrimSpace(el.Attributes["stroke"])
}

func (w *walker) shape(el *svgparser.Element, s scope) error {
	id := el.Attributes["id"]
	if id == "" {
		id = w.anonymousID(el.Name)
	}

	if s.stroke == "" || s.stroke == "none" {
		slog.Debug("skipping unstroked element", "id", id, "element", el.Name)
		return nil
	}
	color, err := ParseColor(s.stroke)
	if err != nil {
		slog.Debug("skipping element with unusable stroke", "id", id, "stroke", s.stroke)
		return nil
	}

	subpaths, err := shapeSubpaths(el)
	if err != nil {
		return errors.Wrapf(err, "%s %q", el.Name, id)
	}

	for i, sub := range subpaths {
		record := survey.PolylineRecord{
			ID:     id,
			Stroke: color,
			Layer:  s.layer,
			Curved: sub.Curved,
			Points: make([]survey.Point, len(sub.Points)),
		}
		// Later subpaths are separate polylines; a moveto is not a leg
		if i > 0 {
			record.ID = w.subpathID(id, i)
			record.Source = id
		}
		for j, p := range sub.Points {
			p = s.transform.Apply(p)
			record.Points[j] = survey.Point{X: p.X, Y: -p.Y}
		}
		w.doc.Records = append(w.doc.Records, record)
	}
	return nil
}

func (w *walker) anonymousID(name string) string {
	for {
		w.anon++
		id := name + strconv.Itoa(w.anon)
		if !w.ids[id] {
			w.ids[id] = true
			return id
		}
	}
}

// Names id_N for the nth subpath, skipping past any id already used in the
// drawing.
func (w *walker) subpathID(id string, n int) string {
	for {
		candidate := fmt.Sprintf("%s_%d", id, n)
		if !w.ids[candidate] {
			w.ids[candidate] = true
			return candidate
		}
		n++
	}
}

func shapeSubpaths(el *svgparser.Element) ([]Subpath, error) {
	switch el.Name {
	case "path":
		return ParsePathData(el.Attributes["d"])
	case "line":
		var coords [4]float64
		for i, name := range []string{"x1", "y1", "x2", "y2"} {
			v, err := parseLength(el.Attributes[name])
			if err != nil {
				return nil, errors.Wrapf(err, "attribute %s", name)
			}
			coords[i] = v
		}
		return []Subpath{{Points: []survey.Point{
			{X: coords[0], Y: coords[1]},
			{X: coords[2], Y: coords[3]},
		}}}, nil
	case "polyline", "polygon":
		points, err := ParsePointList(el.Attributes["points"])
		if err != nil {
			return nil, err
		}
		if el.Name == "polygon" && len(points) > 1 && points[0] != points[len(points)-1] {
			points = append(points, points[0])
		}
		return []Subpath{{Points: points}}, nil
	}
	return nil, nil
}

// Lengths default to zero and may carry a px unit.
func parseLength(s string) (float64, error) {
	s = strings.TrimSuffix(strings.TrimSpace(s), "px")
	if s == "" {
		return 0, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, errors.Errorf("bad length %q", s)
	}
	return v, nil
}
