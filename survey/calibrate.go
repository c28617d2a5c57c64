package survey

import (
	"strings"
)

// Calibrate finds the scale bar and the orientation line among the records
// and derives the basis used to measure every leg.
//
// The scale bar's length in drawing units maps to scaleLength real units.
// The orientation line points north. East is north rotated 90 degrees
// clockwise, which for a y-up frame makes the basis a normal map layout.
func Calibrate(records []PolylineRecord, roles Roles, scaleLength float64) (Basis, error) {
	_, scaleLen, err := calibrationLine(records, roles.Scale, "scale")
	if err != nil {
		return Basis{}, err
	}

	d, orientLen, err := calibrationLine(records, roles.Orient, "orientation")
	if err != nil {
		return Basis{}, err
	}

	north := d.Mul(1 / orientLen)
	return Basis{
		ScaleFactor: scaleLength / scaleLen,
		North:       north,
		// + 0 keeps a zero component from printing as -0
		East: Point{X: north.Y, Y: -north.X + 0},
	}, nil
}

// Find the single straight two point line stroked in the given color, and
// return its displacement.
func calibrationLine(records []PolylineRecord, color Color, role string) (Point, float64, error) {
	var matches []*PolylineRecord
	for i := range records {
		if records[i].Stroke == color {
			matches = append(matches, &records[i])
		}
	}

	switch len(matches) {
	case 0:
		return Point{}, 0, newError(MissingCalibration, "", "no %s line found", role)
	case 1:
	default:
		ids := make([]string, len(matches))
		for i, record := range matches {
			ids[i] = record.ID
		}
		return Point{}, 0, newError(AmbiguousCalibration, "", "%d %s lines found (%s)", len(matches), role, strings.Join(ids, ", "))
	}

	line := matches[0]
	if line.Curved {
		return Point{}, 0, newError(InvalidCalibrationLine, line.ID, "%s line is not straight", role)
	}
	if len(line.Points) != 2 {
		return Point{}, 0, newError(InvalidCalibrationLine, line.ID, "%s line has %d points, want 2", role, len(line.Points))
	}

	d, dl := Displacement(line.Points[0], line.Points[1])
	if dl == 0 {
		return Point{}, 0, newError(DegenerateGeometry, line.ID, "%s line has zero length", role)
	}
	return d, dl, nil
}
