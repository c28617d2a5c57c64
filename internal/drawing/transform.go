package drawing

import (
	"math"
	"strconv"
	"strings"

	"github.com/osuushi/svgsurvex/survey"
	"github.com/pkg/errors"
)

// Transform is an SVG affine transform, as the 2x3 matrix [ A C E ; B D F ].
type Transform struct {
	A, B, C, D, E, F float64
}

func Identity() Transform {
	return Transform{A: 1, D: 1}
}

// Mul composes t with u, giving the transform that applies u first, then t.
func (t Transform) Mul(u Transform) Transform {
	return Transform{
		A: t.A*u.A + t.C*u.B,
		B: t.B*u.A + t.D*u.B,
		C: t.A*u.C + t.C*u.D,
		D: t.B*u.C + t.D*u.D,
		E: t.A*u.E + t.C*u.F + t.E,
		F: t.B*u.E + t.D*u.F + t.F,
	}
}

func (t Transform) Apply(p survey.Point) survey.Point {
	return survey.Point{
		X: t.A*p.X + t.C*p.Y + t.E,
		Y: t.B*p.X + t.D*p.Y + t.F,
	}
}

// ParseTransform reads a transform attribute such as
// "translate(10,20) rotate(45)". The list applies right to left, as in SVG.
func ParseTransform(attr string) (Transform, error) {
	result := Identity()
	rest := strings.TrimSpace(attr)
	for rest != "" {
		open := strings.IndexByte(rest, '(')
		close := strings.IndexByte(rest, ')')
		if open < 0 || close < open {
			return Identity(), errors.Errorf("malformed transform %q", attr)
		}
		name := strings.TrimSpace(rest[:open])
		args, err := parseTransformArgs(rest[open+1 : close])
		if err != nil {
			return Identity(), errors.Wrapf(err, "transform %q", attr)
		}
		t, err := transformFor(name, args)
		if err != nil {
			return Identity(), errors.Wrapf(err, "transform %q", attr)
		}
		result = result.Mul(t)
		rest = strings.TrimLeft(rest[close+1:], " \t\n\r,")
	}
	return result, nil
}

func parseTransformArgs(s string) ([]float64, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})
	args := make([]float64, len(fields))
	for i, field := range fields {
		v, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return nil, errors.Errorf("bad transform argument %q", field)
		}
		args[i] = v
	}
	return args, nil
}

func transformFor(name string, args []float64) (Transform, error) {
	argCount := func(counts ...int) error {
		for _, c := range counts {
			if len(args) == c {
				return nil
			}
		}
		return errors.Errorf("%s takes %v arguments, got %d", name, counts, len(args))
	}

	switch name {
	case "matrix":
		if err := argCount(6); err != nil {
			return Transform{}, err
		}
		return Transform{A: args[0], B: args[1], C: args[2], D: args[3], E: args[4], F: args[5]}, nil
	case "translate":
		if err := argCount(1, 2); err != nil {
			return Transform{}, err
		}
		t := Identity()
		t.E = args[0]
		if len(args) == 2 {
			t.F = args[1]
		}
		return t, nil
	case "scale":
		if err := argCount(1, 2); err != nil {
			return Transform{}, err
		}
		sx, sy := args[0], args[0]
		if len(args) == 2 {
			sy = args[1]
		}
		return Transform{A: sx, D: sy}, nil
	case "rotate":
		if err := argCount(1, 3); err != nil {
			return Transform{}, err
		}
		rad := args[0] * math.Pi / 180
		sin, cos := math.Sincos(rad)
		r := Transform{A: cos, B: sin, C: -sin, D: cos}
		if len(args) == 3 {
			cx, cy := args[1], args[2]
			to := Transform{A: 1, D: 1, E: cx, F: cy}
			from := Transform{A: 1, D: 1, E: -cx, F: -cy}
			r = to.Mul(r).Mul(from)
		}
		return r, nil
	case "skewX":
		if err := argCount(1); err != nil {
			return Transform{}, err
		}
		return Transform{A: 1, C: math.Tan(args[0] * math.Pi / 180), D: 1}, nil
	case "skewY":
		if err := argCount(1); err != nil {
			return Transform{}, err
		}
		return Transform{A: 1, B: math.Tan(args[0] * math.Pi / 180), D: 1}, nil
	}
	return Transform{}, errors.Errorf("unknown transform %q", name)
}
