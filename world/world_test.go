package world

import (
	"bytes"
	"fmt"
	"log"
	"sync"
	"testing"

	"github.com/osuushi/polycollide/geom"
	"github.com/osuushi/polycollide/resolve"
	"github.com/osuushi/polycollide/shape"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r2"
)

func squareBody(t *testing.T, id string, center geom.Point, side float64) *Body {
	s, err := shape.NewRectangle(center, geom.Pt(side, side), 0)
	require.NoError(t, err)
	return &Body{ID: id, Shape: s}
}

func TestRegisterRemove(t *testing.T) {
	w := New(nil)
	a := squareBody(t, "a", geom.Pt(0, 0), 2)
	b := squareBody(t, "", geom.Pt(5, 0), 2)

	w.Register(a)
	w.Register(a)
	w.Register(b)
	assert.Equal(t, []*Body{a, b}, w.Bodies())
	assert.NotEmpty(t, b.ID, "anonymous bodies get a name")

	found, ok := w.Lookup("a")
	assert.True(t, ok)
	assert.Same(t, a, found)

	w.Remove(a)
	w.Remove(a)
	assert.Equal(t, []*Body{b}, w.Bodies())
	_, ok = w.Lookup("a")
	assert.False(t, ok)
}

func TestWorldsAreIndependent(t *testing.T) {
	w1, w2 := New(nil), New(nil)
	w1.Register(squareBody(t, "a", geom.Pt(0, 0), 2))
	assert.Len(t, w1.Bodies(), 1)
	assert.Empty(t, w2.Bodies())
}

func TestCheckCollisions(t *testing.T) {
	w := New(nil)
	wall := squareBody(t, "wall", geom.Pt(0, 0), 2)
	ball := squareBody(t, "ball", geom.Pt(5, 0), 2)
	w.Register(wall)
	w.Register(ball)

	assert.Empty(t, w.CheckCollisions(ball.Shape))
	assert.Equal(t, []*Body{wall}, w.CheckCollisionsAt(geom.Pt(1, 0), ball.Shape))
	assert.Equal(t, geom.Pt(5, 0), ball.Shape.Center(), "probing does not move the shape")

	// A free standing probe sees everything it touches
	probe, err := shape.NewCircle(geom.Pt(2.5, 0), 2)
	require.NoError(t, err)
	assert.Equal(t, []*Body{wall, ball}, w.CheckCollisions(probe))
}

func TestCreate2D(t *testing.T) {
	rect, err := shape.NewRectangle(geom.Pt(1, 2), geom.Pt(3, 1), 30)
	require.NoError(t, err)
	hexagon, err := shape.NewRegularPolygon(geom.Pt(-1, 0), 6, 2, 10)
	require.NoError(t, err)
	tri, err := shape.NewTriangle(geom.Pt(0, 0), geom.Pt(3, 0), geom.Pt(0, 4))
	require.NoError(t, err)
	convex, err := shape.NewConvex([]geom.Point{geom.Pt(0, 0), geom.Pt(2, -1), geom.Pt(3, 2), geom.Pt(1, 3)})
	require.NoError(t, err)

	for _, original := range []shape.Shape{rect, hexagon, tri, convex} {
		t.Run(original.Kind(), func(t *testing.T) {
			clone := Create2D(original)
			assert.IsType(t, original, clone)
			assert.NotSame(t, original, clone)
			assert.Equal(t, original.Vertices(), clone.Vertices())
			assert.Equal(t, original.Edges(), clone.Edges())
			assert.Equal(t, original.Area(), clone.Area())
			assert.Equal(t, original.Center(), clone.Center())

			clone.Translate(geom.Pt(1, 1))
			assert.NotEqual(t, original.Center(), clone.Center())
		})
	}
}

func TestMove(t *testing.T) {
	setup := func(t *testing.T) (*World, *Body, *Body, *bytes.Buffer) {
		var buf bytes.Buffer
		w := New(nil)
		w.Logger = log.New(&buf, "", 0)
		wall := squareBody(t, "wall", geom.Pt(0, 0), 2)
		ball := squareBody(t, "ball", geom.Pt(3, 0), 2)
		w.Register(wall)
		w.Register(ball)
		return w, wall, ball, &buf
	}

	t.Run("unobstructed", func(t *testing.T) {
		w, _, ball, _ := setup(t)
		center, err := w.Move(ball, geom.Pt(3, 4))
		require.NoError(t, err)
		assert.Equal(t, geom.Pt(3, 4), center)
		assert.Equal(t, center, ball.Shape.Center())
	})

	t.Run("pushed back", func(t *testing.T) {
		w, wall, ball, buf := setup(t)
		center, err := w.Move(ball, geom.Pt(1, 0))
		require.NoError(t, err)
		assert.InDelta(t, 2.0, center.X, 0.02)
		assert.InDelta(t, 0, center.Y, 1e-9)
		assert.Equal(t, center, ball.Shape.Center())
		assert.False(t, ball.Shape.Intersects(wall.Shape))
		assert.Equal(t, geom.Pt(0, 0), wall.Shape.Center())
		assert.Contains(t, buf.String(), "ball hit wall: separated")
	})

	t.Run("impossible", func(t *testing.T) {
		w := New(nil)
		bar, err := shape.NewRectangle(geom.Pt(0, 0), geom.Pt(0.2, 10), 0)
		require.NoError(t, err)
		tri, err := shape.NewTriangle(geom.Pt(-5, 1), geom.Pt(-4.134, -0.5), geom.Pt(-5.866, -0.5))
		require.NoError(t, err)
		wall := &Body{ID: "bar", Shape: bar}
		arrow := &Body{ID: "arrow", Shape: tri}
		w.Register(wall)
		w.Register(arrow)
		start := tri.Center()

		center, err := w.Move(arrow, r2.Add(start, geom.Pt(5.5, 0)))
		assert.ErrorIs(t, err, resolve.ErrImpossibleCollision)
		assert.Equal(t, start, center)
		assert.Equal(t, start, arrow.Shape.Center())
	})

	t.Run("unregistered", func(t *testing.T) {
		w, _, _, _ := setup(t)
		stranger := squareBody(t, "stranger", geom.Pt(9, 9), 1)
		_, err := w.Move(stranger, geom.Pt(0, 0))
		assert.Error(t, err)
	})
}

func TestSync(t *testing.T) {
	w := New(nil)
	body := squareBody(t, "box", geom.Pt(0, 0), 2)
	w.Register(body)

	w.Sync(body, geom.Pt(4, 4), 90)
	assert.Equal(t, geom.Pt(4, 4), body.Shape.Center())
	assert.InDelta(t, 90, body.Shape.Rotation(), 1e-9)
	// The quarter turn takes the top left corner to the bottom left
	v := body.Shape.Vertices()[0]
	assert.InDelta(t, 3, v.X, 1e-9)
	assert.InDelta(t, 3, v.Y, 1e-9)
}

func TestConcurrentAccess(t *testing.T) {
	w := New(nil)
	w.Register(squareBody(t, "wall", geom.Pt(0, 0), 2))

	bodies := make([]*Body, 8)
	for i := range bodies {
		bodies[i] = squareBody(t, fmt.Sprintf("body%d", i), geom.Pt(float64(10*(i+1)), 0), 1)
	}

	var wg sync.WaitGroup
	for i, body := range bodies {
		wg.Add(1)
		go func(i int, body *Body) {
			defer wg.Done()
			w.Register(body)
			w.CheckCollisionsAt(geom.Pt(0, 0), body.Shape)
			_, _ = w.Move(body, geom.Pt(float64(10*(i+1)), 5))
			w.Remove(body)
		}(i, body)
	}
	wg.Wait()
	assert.Len(t, w.Bodies(), 1)
}

// Checking at a position with a body's own shape reads it while Move rewrites
// it. Run under the race detector.
func TestCheckCollisionsAtWhileMoving(t *testing.T) {
	w := New(nil)
	wall := squareBody(t, "wall", geom.Pt(0, 0), 2)
	ball := squareBody(t, "ball", geom.Pt(10, 0), 2)
	w.Register(wall)
	w.Register(ball)

	const rounds = 200
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 0; i < rounds; i++ {
			_, _ = w.Move(ball, geom.Pt(10, float64(i%2)))
		}
	}()
	hits := make([][]*Body, rounds)
	go func() {
		defer wg.Done()
		for i := range hits {
			hits[i] = w.CheckCollisionsAt(geom.Pt(0, 0), ball.Shape)
		}
	}()
	wg.Wait()

	for _, hit := range hits {
		assert.Equal(t, []*Body{wall}, hit)
	}
}
