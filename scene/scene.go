// Package scene loads simulation setups from YAML files: the resolver
// configuration, the bodies to register and a list of moves to run.
//
//	config: {step_size: 0.01, max_steps: 10000, precision: 3}
//	bodies:
//	  - {id: wall, kind: rectangle, center: {x: 0, y: 0}, size: {x: 2, y: 2}}
//	  - {id: ball, kind: regular, center: {x: 3, y: 0}, radius: 1, vertices: 8}
//	  - {id: rock, kind: svg, file: rock.svg}
//	moves:
//	  - {body: ball, to: {x: 1, y: 0}}
package scene

import (
	"io"
	"os"
	"path/filepath"

	"github.com/osuushi/polycollide/geom"
	"github.com/osuushi/polycollide/resolve"
	"github.com/osuushi/polycollide/world"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

type Vec struct {
	X float64 `yaml:"x" json:"x"`
	Y float64 `yaml:"y" json:"y"`
}

func (v Vec) Point() geom.Point {
	return geom.Pt(v.X, v.Y)
}

type Move struct {
	Body string `yaml:"body" json:"body" jsonschema:"required,description=ID of the body to move"`
	To   Vec    `yaml:"to" json:"to" jsonschema:"required,description=Target center"`
}

type File struct {
	Config resolve.Config `yaml:"config" json:"config,omitempty"`
	Bodies []ShapeSpec    `yaml:"bodies" json:"bodies" jsonschema:"required"`
	Moves  []Move         `yaml:"moves" json:"moves,omitempty"`

	// SVG files are found relative to this
	dir string
}

// Load reads a scene file. Unknown keys are an error.
func Load(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open scene")
	}
	defer f.Close()

	scene, err := Parse(f, filepath.Dir(path))
	if err != nil {
		return nil, errors.Wrapf(err, "load scene %s", path)
	}
	return scene, nil
}

// Parse decodes a scene from r. Relative SVG paths are resolved against dir.
// Config values the scene leaves out keep their defaults.
func Parse(r io.Reader, dir string) (*File, error) {
	scene := &File{Config: resolve.DefaultConfig(), dir: dir}
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(scene); err != nil && err != io.EOF {
		return nil, errors.Wrap(err, "decode scene")
	}
	if err := scene.Config.Validate(); err != nil {
		return nil, err
	}
	return scene, nil
}

// Build creates a world holding the scene's bodies, in file order.
func (f *File) Build() (*world.World, error) {
	resolver, err := resolve.New(f.Config)
	if err != nil {
		return nil, err
	}
	w := world.New(resolver)

	seen := make(map[string]bool, len(f.Bodies))
	for i, spec := range f.Bodies {
		if spec.ID != "" {
			if seen[spec.ID] {
				return nil, errors.Errorf("duplicate body id %q", spec.ID)
			}
			seen[spec.ID] = true
		}
		s, err := spec.Build(f.dir)
		if err != nil {
			return nil, errors.Wrapf(err, "body %d (%s)", i, spec.ID)
		}
		w.Register(&world.Body{ID: spec.ID, Shape: s})
	}
	return w, nil
}

// MoveResult records what happened to one move. Err is set when the move was
// refused as an impossible collision, in which case Center is where the body
// stayed.
type MoveResult struct {
	Body   *world.Body
	From   geom.Point
	Target geom.Point
	Center geom.Point
	Err    error
}

// Run performs the scene's moves in order. Refused moves are reported in their
// result and do not stop the run. A move naming an unknown body does.
func (f *File) Run(w *world.World) ([]MoveResult, error) {
	results := make([]MoveResult, 0, len(f.Moves))
	for _, m := range f.Moves {
		body, ok := w.Lookup(m.Body)
		if !ok {
			return results, errors.Errorf("move of unknown body %q", m.Body)
		}
		result := MoveResult{Body: body, From: body.Shape.Center(), Target: m.To.Point()}
		result.Center, result.Err = w.Move(body, result.Target)
		if result.Err != nil && !errors.Is(result.Err, resolve.ErrImpossibleCollision) {
			return results, result.Err
		}
		results = append(results, result)
	}
	return results, nil
}
