package resolve

import (
	"github.com/osuushi/polycollide/geom"
	"github.com/pkg/errors"
)

// ErrImpossibleCollision means no translation could be found that leaves the
// two shapes touching instead of overlapping. What to do about it (skip the
// move, shrink the step, halt) is up to the caller.
var ErrImpossibleCollision = errors.New("impossible collision")

// The complex case is a chain of fallbacks, several helpers deep, any of which
// can discover that there is no answer. Threading that back up through every
// helper would bury the geometry, so they panic instead, and Resolve recovers
// to convert to an error.

type impossibleCollision struct {
	error
}

// Panic with an error wrapping ErrImpossibleCollision.
func throwImpossible(format string, args ...interface{}) {
	panic(impossibleCollision{errors.Wrapf(ErrImpossibleCollision, format, args...)})
}

// HandleResolvePanicRecover converts a recovered impossible collision, or a
// degenerate geometry precondition failure, back into an error. Any other panic
// is a bug and is re-raised.
func HandleResolvePanicRecover(r interface{}) error {
	if r == nil {
		return nil
	}
	if impossible, ok := r.(impossibleCollision); ok {
		return impossible.error
	}
	if err, ok := r.(error); ok && errors.Is(err, geom.ErrDegenerate) {
		return err
	}
	panic(r)
}
