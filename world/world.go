// Package world keeps track of the shapes in a simulation and moves them
// without letting them overlap.
//
// A World is an explicit registry owned by whoever runs the simulation loop, so
// independent simulations (and tests) never share state. All methods are safe
// for concurrent use.
package world

import (
	"log"
	"sync"

	"github.com/osuushi/polycollide/dbg"
	"github.com/osuushi/polycollide/geom"
	"github.com/osuushi/polycollide/resolve"
	"github.com/osuushi/polycollide/shape"
	"github.com/pkg/errors"
)

// Body owns a shape in the world. Bodies are identified by pointer; ID is only
// for humans.
type Body struct {
	ID    string
	Shape shape.Shape
}

func (b *Body) String() string {
	return b.ID
}

type World struct {
	mu       sync.RWMutex
	bodies   []*Body
	resolver *resolve.Resolver

	// Logger, if set, gets a line per registration change and per move.
	Logger *log.Logger
}

// New creates an empty world resolving collisions with resolver, or with the
// default resolver if it is nil.
func New(resolver *resolve.Resolver) *World {
	if resolver == nil {
		resolver = resolve.Default()
	}
	return &World{resolver: resolver}
}

func (w *World) Resolver() *resolve.Resolver {
	return w.resolver
}

func (w *World) logf(format string, args ...interface{}) {
	if w.Logger != nil {
		w.Logger.Printf(format, args...)
	}
}

// Register adds body to the world. Registering a body twice does nothing.
// Bodies without an ID are given a readable one.
func (w *World) Register(body *Body) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.indexOf(body) >= 0 {
		return
	}
	if body.ID == "" {
		body.ID = dbg.Name(body)
	}
	w.bodies = append(w.bodies, body)
	w.logf("registered %s", body.ID)
}

// Remove takes body out of the world, if it is there.
func (w *World) Remove(body *Body) {
	w.mu.Lock()
	defer w.mu.Unlock()

	i := w.indexOf(body)
	if i < 0 {
		return
	}
	w.bodies = append(w.bodies[:i], w.bodies[i+1:]...)
	w.logf("removed %s", body.ID)
}

func (w *World) indexOf(body *Body) int {
	for i, b := range w.bodies {
		if b == body {
			return i
		}
	}
	return -1
}

// Bodies lists the registered bodies in registration order.
func (w *World) Bodies() []*Body {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return append([]*Body(nil), w.bodies...)
}

// Lookup finds a body by ID.
func (w *World) Lookup(id string) (*Body, bool) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	for _, b := range w.bodies {
		if b.ID == id {
			return b, true
		}
	}
	return nil, false
}

// CheckCollisions lists the bodies whose shapes intersect probe. A body whose
// shape is probe itself is skipped. This is a linear scan.
func (w *World) CheckCollisions(probe shape.Shape) []*Body {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.collisions(probe, nil)
}

// CheckCollisionsAt is CheckCollisions for a copy of probe moved to position.
// probe itself stays where it is.
func (w *World) CheckCollisionsAt(position geom.Point, probe shape.Shape) []*Body {
	// The shape may belong to a body that Move is writing to
	w.mu.RLock()
	defer w.mu.RUnlock()

	moved := Create2D(probe)
	moved.MoveTo(position)
	return w.collisions(moved, w.ownerOf(probe))
}

func (w *World) collisions(probe shape.Shape, skip *Body) []*Body {
	var result []*Body
	for _, b := range w.bodies {
		if b == skip || b.Shape == probe {
			continue
		}
		if b.Shape.Intersects(probe) {
			result = append(result, b)
		}
	}
	return result
}

func (w *World) ownerOf(s shape.Shape) *Body {
	for _, b := range w.bodies {
		if b.Shape == s {
			return b
		}
	}
	return nil
}

// Create2D makes an independent copy of s with the same concrete type.
func Create2D(s shape.Shape) shape.Shape {
	return s.Clone()
}

// Move tries to put body's shape at target. Every body the shape would overlap
// there is resolved against in turn, and the shape ends up wherever the
// resolver pushed it. The final center is returned.
//
// If any collision is impossible, the body does not move and the error wraps
// resolve.ErrImpossibleCollision.
func (w *World) Move(body *Body, target geom.Point) (geom.Point, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.indexOf(body) < 0 {
		return geom.Point{}, errors.Errorf("body %s is not registered", body.ID)
	}
	past := body.Shape
	moved := Create2D(past)
	moved.MoveTo(target)

	for _, other := range w.collisions(moved, body) {
		result, err := w.resolver.Resolve(moved, past, other.Shape)
		if err != nil {
			w.logf("%s cannot move to (%.4f, %.4f): %v", body.ID, target.X, target.Y, err)
			return past.Center(), errors.Wrapf(err, "moving %s into %s", body.ID, other.ID)
		}
		w.logf("%s hit %s: %s, pushed (%.4f, %.4f)", body.ID, other.ID, result.Case, result.Offset.X, result.Offset.Y)
		moved.Translate(result.Offset)
	}

	body.Shape.MoveTo(moved.Center())
	return body.Shape.Center(), nil
}

// Sync sets a body's geometry from the host's transform.
func (w *World) Sync(body *Body, center geom.Point, rotation float64) {
	w.mu.Lock()
	defer w.mu.Unlock()
	body.Shape.MoveTo(center)
	body.Shape.SetRotation(rotation)
}
