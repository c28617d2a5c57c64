package drawing

import (
	"testing"

	"github.com/osuushi/svgsurvex/survey"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertApplies(t *testing.T, attr string, in, expected survey.Point) {
	t.Helper()
	transform, err := ParseTransform(attr)
	require.NoError(t, err, attr)
	out := transform.Apply(in)
	assert.InDelta(t, expected.X, out.X, 1e-9, "%s x", attr)
	assert.InDelta(t, expected.Y, out.Y, 1e-9, "%s y", attr)
}

func TestParseTransform(t *testing.T) {
	p := survey.Point{X: 1, Y: 1}
	assertApplies(t, "", p, p)
	assertApplies(t, "translate(10,20)", p, survey.Point{X: 11, Y: 21})
	assertApplies(t, "translate(10)", p, survey.Point{X: 11, Y: 1})
	assertApplies(t, "scale(2)", p, survey.Point{X: 2, Y: 2})
	assertApplies(t, "scale(2, -3)", p, survey.Point{X: 2, Y: -3})
	assertApplies(t, "rotate(90)", survey.Point{X: 1, Y: 0}, survey.Point{X: 0, Y: 1})
	assertApplies(t, "rotate(90 1 1)", survey.Point{X: 2, Y: 1}, survey.Point{X: 1, Y: 2})
	assertApplies(t, "matrix(1,0,0,1,5,6)", p, survey.Point{X: 6, Y: 7})
	assertApplies(t, "skewX(45)", survey.Point{X: 0, Y: 2}, survey.Point{X: 2, Y: 2})
	assertApplies(t, "skewY(45)", survey.Point{X: 2, Y: 0}, survey.Point{X: 2, Y: 2})
}

func TestParseTransform_ListAppliesRightToLeft(t *testing.T) {
	// Scale first, then translate
	assertApplies(t, "translate(10,0) scale(2)", survey.Point{X: 1, Y: 1}, survey.Point{X: 12, Y: 2})
	assertApplies(t, "scale(2),translate(10,0)", survey.Point{X: 1, Y: 1}, survey.Point{X: 22, Y: 2})
}

func TestTransformMul(t *testing.T) {
	translate := Transform{A: 1, D: 1, E: 3, F: 4}
	scale := Transform{A: 2, D: 2}
	p := survey.Point{X: 1, Y: 1}
	assert.Equal(t, translate.Apply(scale.Apply(p)), translate.Mul(scale).Apply(p))
	assert.Equal(t, p, Identity().Mul(Identity()).Apply(p))
}

func TestParseTransform_Errors(t *testing.T) {
	for _, attr := range []string{
		"translate(1,2,3)",
		"wobble(1)",
		"translate(1",
		"scale(a)",
		"matrix(1,2,3)",
		"rotate(1,2)",
	} {
		_, err := ParseTransform(attr)
		assert.Error(t, err, attr)
	}
}
