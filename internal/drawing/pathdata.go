package drawing

import (
	"strconv"
	"strings"

	"github.com/osuushi/svgsurvex/survey"
)

// Subpath is one continuous run of path data, starting at a moveto. Points
// are in the element's own coordinate system, with SVG's y-down axis.
type Subpath struct {
	Points []survey.Point
	// Set if any segment was a curve or arc. Only endpoints are kept for those.
	Curved bool
}

// ParsePathData reads the d attribute of an SVG path. Straight segments (M, L,
// H, V, Z) become vertices. Curves and arcs contribute their endpoint and mark
// the subpath as curved. Closing a subpath adds its start point again unless
// the path is already there.
func ParsePathData(d string) (subpaths []Subpath, err error) {
	defer func() {
		recoveredErr := handlePathDataPanicRecover(recover())
		if recoveredErr != nil {
			subpaths = nil
			err = recoveredErr
		}
	}()
	s := &pathScanner{data: d}
	return s.parse(), nil
}

// ParsePointList reads the points attribute of a polyline or polygon.
func ParsePointList(points string) (result []survey.Point, err error) {
	defer func() {
		recoveredErr := handlePathDataPanicRecover(recover())
		if recoveredErr != nil {
			result = nil
			err = recoveredErr
		}
	}()
	s := &pathScanner{data: points}
	for s.skipSeparators(); s.pos < len(s.data); s.skipSeparators() {
		x := s.number()
		y := s.number()
		result = append(result, survey.Point{X: x, Y: y})
	}
	return result, nil
}

const pathCommands = "MmLlHhVvCcSsQqTtAaZz"

type pathScanner struct {
	data string
	pos  int

	current  survey.Point
	start    survey.Point
	sub      *Subpath
	started  bool
	subpaths []Subpath
}

func (s *pathScanner) parse() []Subpath {
	var cmd byte
	for s.skipSeparators(); s.pos < len(s.data); s.skipSeparators() {
		c := s.data[s.pos]
		if strings.IndexByte(pathCommands, c) >= 0 {
			cmd = c
			s.pos++
		} else if cmd == 0 {
			fatalf("unexpected %q at offset %d in path data", c, s.pos)
		}
		cmd = s.command(cmd)
	}
	s.finishSubpath()
	return s.subpaths
}

// Run one command and return the command that implicitly repeats if more
// coordinates follow.
func (s *pathScanner) command(cmd byte) byte {
	relative := cmd >= 'a' && cmd <= 'z'
	if !s.started && cmd != 'M' && cmd != 'm' {
		fatalf("path data must start with a moveto, not %q", cmd)
	}

	switch cmd {
	case 'M', 'm':
		p := s.point(relative)
		s.finishSubpath()
		s.started = true
		s.start = p
		s.current = p
		s.sub = &Subpath{Points: []survey.Point{p}}
		if relative {
			return 'l'
		}
		return 'L'
	case 'L', 'l':
		s.lineTo(s.point(relative))
	case 'H', 'h':
		x := s.number()
		if relative {
			x += s.current.X
		}
		s.lineTo(survey.Point{X: x, Y: s.current.Y})
	case 'V', 'v':
		y := s.number()
		if relative {
			y += s.current.Y
		}
		s.lineTo(survey.Point{X: s.current.X, Y: y})
	case 'C', 'c':
		s.point(relative)
		s.point(relative)
		s.curveTo(s.point(relative))
	case 'S', 's', 'Q', 'q':
		s.point(relative)
		s.curveTo(s.point(relative))
	case 'T', 't':
		s.curveTo(s.point(relative))
	case 'A', 'a':
		s.number() // rx
		s.number() // ry
		s.number() // x axis rotation
		s.flag()   // large arc
		s.flag()   // sweep
		s.curveTo(s.point(relative))
	case 'Z', 'z':
		if s.sub != nil && s.current != s.start {
			s.sub.Points = append(s.sub.Points, s.start)
		}
		s.current = s.start
		s.finishSubpath()
		// Coordinates can't follow a closepath
		return 0
	}
	return cmd
}

// Read a coordinate pair. For relative commands it is offset from the current
// point; the control points of a relative curve share that same origin.
func (s *pathScanner) point(relative bool) survey.Point {
	x := s.number()
	y := s.number()
	if relative {
		x += s.current.X
		y += s.current.Y
	}
	return survey.Point{X: x, Y: y}
}

func (s *pathScanner) curveTo(p survey.Point) {
	s.lineTo(p)
	s.sub.Curved = true
}

func (s *pathScanner) lineTo(p survey.Point) {
	// Drawing after a closepath starts a new subpath at the closed one's start
	if s.sub == nil {
		s.sub = &Subpath{Points: []survey.Point{s.current}}
	}
	s.sub.Points = append(s.sub.Points, p)
	s.current = p
}

func (s *pathScanner) finishSubpath() {
	if s.sub != nil {
		s.subpaths = append(s.subpaths, *s.sub)
		s.sub = nil
	}
}

func (s *pathScanner) skipSeparators() {
	for s.pos < len(s.data) {
		switch s.data[s.pos] {
		case ' ', '\t', '\n', '\r', '\f', ',':
			s.pos++
		default:
			return
		}
	}
}

func (s *pathScanner) digits() int {
	count := 0
	for s.pos < len(s.data) && s.data[s.pos] >= '0' && s.data[s.pos] <= '9' {
		s.pos++
		count++
	}
	return count
}

func (s *pathScanner) sign() {
	if s.pos < len(s.data) && (s.data[s.pos] == '+' || s.data[s.pos] == '-') {
		s.pos++
	}
}

// Numbers may run together without separators, e.g. "1.5.5-2" is 1.5, .5, -2.
func (s *pathScanner) number() float64 {
	s.skipSeparators()
	start := s.pos
	s.sign()
	count := s.digits()
	if s.pos < len(s.data) && s.data[s.pos] == '.' {
		s.pos++
		count += s.digits()
	}
	if count == 0 {
		if start >= len(s.data) {
			fatalf("path data ended where a number was expected")
		}
		fatalf("expected a number at offset %d in path data, found %q", start, s.data[start])
	}
	if s.pos < len(s.data) && (s.data[s.pos] == 'e' || s.data[s.pos] == 'E') {
		s.pos++
		s.sign()
		if s.digits() == 0 {
			fatalf("malformed exponent at offset %d in path data", start)
		}
	}
	value, err := strconv.ParseFloat(s.data[start:s.pos], 64)
	if err != nil {
		fatalf("bad number %q in path data: %v", s.data[start:s.pos], err)
	}
	return value
}

// Arc flags are a single digit and may be packed against what follows.
func (s *pathScanner) flag() bool {
	s.skipSeparators()
	if s.pos < len(s.data) {
		switch s.data[s.pos] {
		case '0':
			s.pos++
			return false
		case '1':
			s.pos++
			return true
		}
	}
	fatalf("expected an arc flag at offset %d in path data", s.pos)
	return false
}
