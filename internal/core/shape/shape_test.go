package shape

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/require"

	"github.com/zeusync/narrowphase/pkg/geom"
)

func TestNewPolygon_Validation(t *testing.T) {
	tests := []struct {
		name   string
		points []mgl64.Vec2
		err    error
	}{
		{
			name:   "two points",
			points: []mgl64.Vec2{{0, 0}, {1, 0}},
			err:    ErrTooFewVertices,
		},
		{
			name:   "clockwise",
			points: []mgl64.Vec2{{0, 0}, {0, 1}, {1, 1}, {1, 0}},
			err:    ErrClockwiseWinding,
		},
		{
			name:   "reflex vertex",
			points: []mgl64.Vec2{{0, 0}, {4, 0}, {2, 1}, {4, 4}, {0, 4}},
			err:    ErrNotConvex,
		},
		{
			name:   "coincident neighbours",
			points: []mgl64.Vec2{{0, 0}, {1, 0}, {1, 0}, {0, 1}},
			err:    ErrCoincidentVertices,
		},
		{
			name:   "pentagram",
			points: []mgl64.Vec2{{0, 10}, {-6, -8}, {9.5, 3}, {-9.5, 3}, {6, -8}},
			err:    ErrNotConvex,
		},
		{
			name:   "NaN vertex",
			points: []mgl64.Vec2{{0, 0}, {1, 0}, {math.NaN(), 1}},
			err:    ErrNonFinite,
		},
		{
			name:   "infinite vertex",
			points: []mgl64.Vec2{{0, 0}, {math.Inf(1), 0}, {0, 1}},
			err:    ErrNonFinite,
		},
		{
			name:   "collinear only",
			points: []mgl64.Vec2{{0, 0}, {1, 1}, {2, 2}},
			err:    ErrDegenerateArea,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := NewPolygon(tt.points...)
			require.ErrorIs(t, err, tt.err)
			require.Nil(t, p)
		})
	}

	t.Run("collinear edge vertex allowed", func(t *testing.T) {
		_, err := NewPolygon(mgl64.Vec2{0, 0}, mgl64.Vec2{1, 0}, mgl64.Vec2{2, 0}, mgl64.Vec2{1, 1})
		require.NoError(t, err)
	})
}

func TestMustConstructorsPanic(t *testing.T) {
	require.Panics(t, func() { MustPolygon(mgl64.Vec2{0, 0}, mgl64.Vec2{1, 0}) })
	require.Panics(t, func() { MustTriangle(mgl64.Vec2{0, 0}, mgl64.Vec2{0, 1}, mgl64.Vec2{1, 0}) })
	require.Panics(t, func() { MustRectangle(0, 1) })
	require.Panics(t, func() { MustCircle(-2) })
	require.NotPanics(t, func() { MustRectangle(10, 12) })
}

func TestNonPositiveDimensions(t *testing.T) {
	for _, wh := range [][2]float64{{0, 1}, {1, 0}, {-1, 2}} {
		_, err := NewRectangle(wh[0], wh[1])
		require.ErrorIs(t, err, ErrNonPositiveDimension)
	}
	for _, r := range []float64{0, -0.5} {
		_, err := NewCircle(r)
		require.ErrorIs(t, err, ErrNonPositiveDimension)
	}
}

func TestNonFiniteDimensions(t *testing.T) {
	for _, wh := range [][2]float64{{math.NaN(), 1}, {math.Inf(1), 1}, {1, math.Inf(-1)}} {
		_, err := NewRectangle(wh[0], wh[1])
		require.ErrorIs(t, err, ErrNonFinite)
	}
	for _, r := range []float64{math.NaN(), math.Inf(1)} {
		_, err := NewCircle(r)
		require.ErrorIs(t, err, ErrNonFinite)
	}
	_, err := NewCircleAt(mgl64.Vec2{math.NaN(), 0}, 1)
	require.ErrorIs(t, err, ErrNonFinite)
}

func TestPolygon_Center(t *testing.T) {
	t.Run("triangle centroid", func(t *testing.T) {
		tri := MustTriangle(mgl64.Vec2{4, 11}, mgl64.Vec2{4, 5}, mgl64.Vec2{9, 9})
		require.InDelta(t, 17.0/3, tri.Center()[0], 1e-9)
		require.InDelta(t, 25.0/3, tri.Center()[1], 1e-9)
		require.Equal(t, KindTriangle, tri.Kind())
	})

	t.Run("rectangle uses local origin", func(t *testing.T) {
		rect := MustRectangle(10, 12)
		require.Equal(t, mgl64.Vec2{}, rect.Center())
		require.Len(t, rect.Vertices(), 4)
	})

	t.Run("offset square", func(t *testing.T) {
		sq := MustPolygon(mgl64.Vec2{2, 2}, mgl64.Vec2{4, 2}, mgl64.Vec2{4, 4}, mgl64.Vec2{2, 4})
		require.True(t, geom.ApproxEqual(mgl64.Vec2{3, 3}, sq.Center(), 1e-12))
	})
}

func TestPolygon_FarthestPoint(t *testing.T) {
	rect := MustRectangle(2, 4)

	t.Run("identity", func(t *testing.T) {
		require.Equal(t, mgl64.Vec2{1, 2}, rect.FarthestPoint(mgl64.Vec2{1, 1}, geom.Identity()))
		require.Equal(t, mgl64.Vec2{-1, -2}, rect.FarthestPoint(mgl64.Vec2{-1, -1}, geom.Identity()))
	})

	t.Run("tie keeps first vertex", func(t *testing.T) {
		require.Equal(t, mgl64.Vec2{1, -2}, rect.FarthestPoint(mgl64.Vec2{1, 0}, geom.Identity()))
	})

	t.Run("translated and rotated", func(t *testing.T) {
		tr := geom.NewTransform(5, 0, math.Pi/2)
		got := rect.FarthestPoint(mgl64.Vec2{1, 0.1}, tr)
		// local (1,-2) rotated a quarter turn is (2,1)
		require.True(t, geom.ApproxEqual(mgl64.Vec2{7, 1}, got, 1e-9), "got %v", got)
	})
}

func TestCircle_FarthestPoint(t *testing.T) {
	c := MustCircle(2)
	tr := geom.NewTransform(1, 1.2, 0.3)

	got := c.FarthestPoint(mgl64.Vec2{0, 5}, tr)
	require.True(t, geom.ApproxEqual(mgl64.Vec2{1, 3.2}, got, 1e-9), "got %v", got)

	offset, err := NewCircleAt(mgl64.Vec2{1, 0}, 0.5)
	require.NoError(t, err)
	got = offset.FarthestPoint(mgl64.Vec2{-1, 0}, geom.Identity())
	require.True(t, geom.ApproxEqual(mgl64.Vec2{0.5, 0}, got, 1e-12), "got %v", got)
}

func TestStringers(t *testing.T) {
	require.Contains(t, MustRectangle(1, 1).String(), "RECTANGLE")
	require.Contains(t, MustCircle(1).String(), "radius=1")
	require.Equal(t, "UNKNOWN", Kind(42).String())
}
