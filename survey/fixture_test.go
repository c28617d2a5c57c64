package survey

// Shared records for the tests in this package. Colors follow the usual
// convention of red traverses, blue scale bar and green orientation line.

var (
	red   = Color{R: 0xff}
	green = Color{G: 0xff}
	blue  = Color{B: 0xff}
)

var testRoles = Roles{Export: red, Scale: blue, Orient: green}

func line(id string, color Color, points ...Point) PolylineRecord {
	return PolylineRecord{ID: id, Points: points, Stroke: color, Layer: "Layer 1"}
}

// Unit scale bar and an orientation line pointing up the page.
func unitCalibration() []PolylineRecord {
	return []PolylineRecord{
		line("scale", blue, Point{X: 0, Y: 0}, Point{X: 0, Y: 1}),
		line("north", green, Point{X: 0, Y: 0}, Point{X: 0, Y: 1}),
	}
}

func unitBasis() Basis {
	return Basis{ScaleFactor: 1, North: Point{X: 0, Y: 1}, East: Point{X: 1, Y: 0}}
}

func testOptions() Options {
	return Options{
		ScaleLength: 1,
		NorthOffset: 0,
		Tolerance:   0.1,
		Roles:       testRoles,
	}
}
