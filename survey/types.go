package survey

import (
	"strconv"

	"github.com/golang/geo/r2"
)

// Points live in a y-up Cartesian frame in the drawing's native units. SVG
// readers must flip the drawing's y axis before handing points over.
type Point = r2.Point

// Color is an opaque RGB value. Records are matched to roles by equality only.
type Color struct {
	R, G, B uint8
}

// A polyline as extracted from the drawing. Curved is set when the source
// path had any non-straight segment, in which case Points only holds the
// segment endpoints.
type PolylineRecord struct {
	ID     string
	Points []Point
	Stroke Color
	Layer  string
	Curved bool
	// Id of the drawing element the record came from, when it differs from
	// ID. Elements with several subpaths give one record per subpath.
	Source string
}

// Origin names the drawing element the record came from.
func (r PolylineRecord) Origin() string {
	if r.Source != "" {
		return r.Source
	}
	return r.ID
}

// Roles maps each job a line can do in the drawing to the stroke color that
// marks it.
type Roles struct {
	Export Color
	Scale  Color
	Orient Color
}

type Basis struct {
	// Real-world units per drawing unit
	ScaleFactor float64
	North       Point
	East        Point
}

type StationID struct {
	Traverse string
	Local    string
}

func (id StationID) String() string {
	return id.Traverse + "." + id.Local
}

type Station struct {
	Traverse string
	Index    int
	Position Point
}

func (s Station) LocalID() string {
	return strconv.Itoa(s.Index)
}

func (s Station) ID() StationID {
	return StationID{Traverse: s.Traverse, Local: s.LocalID()}
}

type Leg struct {
	From    string
	To      string
	Tape    float64
	Compass float64
}

type Traverse struct {
	ID       string
	Layer    string
	Stations []Station
	Legs     []Leg
}

// Length is the sum of the traverse's tapes.
func (t *Traverse) Length() float64 {
	var total float64
	for _, leg := range t.Legs {
		total += leg.Tape
	}
	return total
}

type EquatePair struct {
	A, B StationID
	// Calibrated distance between the two stations
	Separation float64
}

// Maps each traverse id to the local ids it must export. Every traverse has
// an entry, even if the list is empty.
type ExportSet map[string][]string
