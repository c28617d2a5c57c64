package drawing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePathData(t *testing.T) {
	cases := []struct {
		name     string
		d        string
		expected []Subpath
	}{
		{"absolute lines", "M 0,0 L 10,0 L 10,10", []Subpath{{Points: pts(0, 0, 10, 0, 10, 10)}}},
		{"implicit lineto", "M 0,0 10,0 10,10", []Subpath{{Points: pts(0, 0, 10, 0, 10, 10)}}},
		{"relative closed", "m 1,1 2,0 0,2 z", []Subpath{{Points: pts(1, 1, 3, 1, 3, 3, 1, 1)}}},
		{"horizontal and vertical", "M0 0H5V5h-2v-1", []Subpath{{Points: pts(0, 0, 5, 0, 5, 5, 3, 5, 3, 4)}}},
		{"packed numbers", "M1.5.5-2-3L1e1,2E-1", []Subpath{{Points: pts(1.5, 0.5, -2, -3, 10, 0.2)}}},
		{"cubic", "M0,0 C1,1 2,2 3,3 L4,4", []Subpath{{Points: pts(0, 0, 3, 3, 4, 4), Curved: true}}},
		{"relative cubic", "m1,1 c1,0 1,1 2,2", []Subpath{{Points: pts(1, 1, 3, 3), Curved: true}}},
		{"quadratic and smooth", "M0,0 Q1,1 2,0 T4,0 S5,1 6,0", []Subpath{{Points: pts(0, 0, 2, 0, 4, 0, 6, 0), Curved: true}}},
		{"packed arc flags", "M0,0 a5,5 0 0110,0", []Subpath{{Points: pts(0, 0, 10, 0), Curved: true}}},
		{"two subpaths", "M0,0 L1,0 M5,5 L6,5", []Subpath{{Points: pts(0, 0, 1, 0)}, {Points: pts(5, 5, 6, 5)}}},
		{"drawing after close", "M0,0 L1,0 L1,1 Z L2,2", []Subpath{{Points: pts(0, 0, 1, 0, 1, 1, 0, 0)}, {Points: pts(0, 0, 2, 2)}}},
		{"close at start", "M0,0 L1,0 L0,0 Z", []Subpath{{Points: pts(0, 0, 1, 0, 0, 0)}}},
		{"only curved subpath flagged", "M0,0 L1,0 M2,2 C3,3 4,4 5,5", []Subpath{{Points: pts(0, 0, 1, 0)}, {Points: pts(2, 2, 5, 5), Curved: true}}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			subpaths, err := ParsePathData(c.d)
			require.NoError(t, err)
			require.Len(t, subpaths, len(c.expected))
			for i, expected := range c.expected {
				assert.Equal(t, expected.Curved, subpaths[i].Curved, "subpath %d curved", i)
				require.Len(t, subpaths[i].Points, len(expected.Points), "subpath %d", i)
				for j, p := range expected.Points {
					assert.InDelta(t, p.X, subpaths[i].Points[j].X, 1e-9, "subpath %d point %d", i, j)
					assert.InDelta(t, p.Y, subpaths[i].Points[j].Y, 1e-9, "subpath %d point %d", i, j)
				}
			}
		})
	}
}

func TestParsePathData_Empty(t *testing.T) {
	subpaths, err := ParsePathData("  ")
	assert.NoError(t, err)
	assert.Empty(t, subpaths)
}

func TestParsePathData_Errors(t *testing.T) {
	for _, d := range []string{
		"L 1,1",
		"M 1",
		"M 1,1 Z 3,3",
		"M 1,1 X 2,2",
		"M1,1 a1,1 0 2 0 3,3",
		"M 1e,1",
		"M 1,1 L -,2",
	} {
		t.Run(d, func(t *testing.T) {
			subpaths, err := ParsePathData(d)
			assert.Error(t, err)
			assert.Nil(t, subpaths)
		})
	}
}

func TestParsePointList(t *testing.T) {
	points, err := ParsePointList("20,10 30,10\n 40 15.5")
	require.NoError(t, err)
	assert.Equal(t, pts(20, 10, 30, 10, 40, 15.5), points)

	_, err = ParsePointList("1,2 3")
	assert.Error(t, err)
}

func TestHandlePathDataPanicRecover(t *testing.T) {
	testFn := func(shouldThrow bool, shouldPanic bool) (err error) {
		defer func() {
			recoveredErr := handlePathDataPanicRecover(recover())
			if recoveredErr != nil {
				err = recoveredErr
			}
		}()

		if shouldThrow {
			fatalf("kaboom!")
		}

		if shouldPanic {
			panic("true panic")
		}

		return nil
	}

	t.Run("with throw", func(t *testing.T) {
		err := testFn(true, false)
		assert.EqualError(t, err, "kaboom!")
	})

	t.Run("with real panic", func(t *testing.T) {
		assert.Panics(t, func() {
			testFn(false, true)
		})
	})

	t.Run("no error", func(t *testing.T) {
		err := testFn(false, false)
		assert.NoError(t, err)
	})
}
