package drawing

import (
	"embed"
	"log"
	"testing"

	"github.com/osuushi/svgsurvex/survey"
	"github.com/stretchr/testify/require"
)

// Fixtures are available by name in the fixtures/ directory, sans extension.

//go:embed fixtures
var fixtures embed.FS

func LoadFixture(t *testing.T, name string) *Document {
	fixture, err := fixtures.Open("fixtures/" + name + ".svg")
	if err != nil {
		log.Fatalf("Could not load fixture %q: %v", name, err)
	}
	defer fixture.Close()

	doc, err := Read(fixture)
	require.NoError(t, err, "reading fixture %q", name)
	return doc
}

func recordByID(t *testing.T, doc *Document, id string) survey.PolylineRecord {
	for _, record := range doc.Records {
		if record.ID == id {
			return record
		}
	}
	t.Fatalf("no record %q", id)
	return survey.PolylineRecord{}
}

func pts(coords ...float64) []survey.Point {
	var points []survey.Point
	for i := 0; i < len(coords); i += 2 {
		points = append(points, survey.Point{X: coords[i], Y: coords[i+1]})
	}
	return points
}
