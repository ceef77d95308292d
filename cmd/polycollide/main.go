package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/davecgh/go-spew/spew"
	"github.com/osuushi/polycollide/dbg"
	"github.com/osuushi/polycollide/scene"
	"github.com/osuushi/polycollide/shape"
	"gopkg.in/alecthomas/kingpin.v2"
)

// Command line front end for scene files. See the scene package for the
// format.
var (
	app     = kingpin.New("polycollide", "Convex polygon collision resolution.")
	noColor = app.Flag("no-color", "Disable colored output.").Bool()
	verbose = app.Flag("verbose", "Log resolver decisions to stderr.").Short('v').Bool()

	resolveCmd   = app.Command("resolve", "Run the moves of a scene and report where each body ended up.")
	resolveScene = resolveCmd.Arg("scene", "Scene file.").Required().ExistingFile()
	stepSize     = resolveCmd.Flag("step-size", "Override the pre-reduction step size.").Float64()
	maxSteps     = resolveCmd.Flag("max-steps", "Override the pre-reduction step cap.").Int()
	dump         = resolveCmd.Flag("dump", "Dump the full move results.").Bool()

	checkCmd   = app.Command("check", "List the overlapping bodies of a scene.")
	checkScene = checkCmd.Arg("scene", "Scene file.").Required().ExistingFile()

	renderCmd    = app.Command("render", "Draw a scene to a PNG file.")
	renderScene  = renderCmd.Arg("scene", "Scene file.").Required().ExistingFile()
	renderOut    = renderCmd.Flag("out", "Output PNG path.").Short('o').Default("scene.png").String()
	renderScale  = renderCmd.Flag("scale", "Pixels per world unit.").Default("50").Float64()
	renderAfter  = renderCmd.Flag("after", "Run the moves before drawing.").Bool()
	renderImgcat = renderCmd.Flag("imgcat", "Also print the image to the terminal (iTerm only).").Bool()

	schemaCmd = app.Command("schema", "Print the JSON schema of scene files.")
)

func main() {
	command := kingpin.MustParse(app.Parse(os.Args[1:]))
	palette := dbg.NewPalette(!*noColor)
	var logger *log.Logger
	if *verbose {
		logger = log.New(os.Stderr, "", 0)
	}

	var err error
	switch command {
	case resolveCmd.FullCommand():
		err = runResolve(os.Stdout, palette, logger, *resolveScene)
	case checkCmd.FullCommand():
		err = runCheck(os.Stdout, palette, *checkScene)
	case renderCmd.FullCommand():
		err = runRender(*renderScene, *renderOut, *renderScale, *renderAfter, *renderImgcat)
	case schemaCmd.FullCommand():
		err = runSchema(os.Stdout)
	}
	app.FatalIfError(err, "%s", command)
}

func loadScene(path string) (*scene.File, error) {
	s, err := scene.Load(path)
	if err != nil {
		return nil, err
	}
	if *stepSize > 0 {
		s.Config.StepSize = *stepSize
	}
	if *maxSteps > 0 {
		s.Config.MaxSteps = *maxSteps
	}
	return s, nil
}

func runResolve(out io.Writer, palette dbg.Palette, logger *log.Logger, path string) error {
	s, err := loadScene(path)
	if err != nil {
		return err
	}
	w, err := s.Build()
	if err != nil {
		return err
	}
	w.Logger = logger
	w.Resolver().Logger = logger

	results, err := s.Run(w)
	if err != nil {
		return err
	}
	for _, r := range results {
		if r.Err != nil {
			fmt.Fprintf(out, "%s: (%g, %g) → (%g, %g) refused: %s\n", palette.Body(r.Body.ID),
				r.From.X, r.From.Y, r.Target.X, r.Target.Y, palette.Error(r.Err))
			continue
		}
		fmt.Fprintf(out, "%s: (%g, %g) → (%g, %g) %s (%.4f, %.4f)\n", palette.Body(r.Body.ID),
			r.From.X, r.From.Y, r.Target.X, r.Target.Y, palette.OK("ended at"), r.Center.X, r.Center.Y)
	}
	if *dump {
		spew.Fdump(out, results)
	}
	return nil
}

func runCheck(out io.Writer, palette dbg.Palette, path string) error {
	s, err := loadScene(path)
	if err != nil {
		return err
	}
	w, err := s.Build()
	if err != nil {
		return err
	}
	for _, body := range w.Bodies() {
		for _, other := range w.CheckCollisions(body.Shape) {
			fmt.Fprintf(out, "%s overlaps %s\n", palette.Body(body.ID), palette.Body(other.ID))
		}
	}
	return nil
}

func runRender(path, outPath string, scale float64, after, preview bool) error {
	s, err := loadScene(path)
	if err != nil {
		return err
	}
	w, err := s.Build()
	if err != nil {
		return err
	}
	if after {
		if _, err := s.Run(w); err != nil {
			return err
		}
	}
	var shapes []shape.Shape
	for _, body := range w.Bodies() {
		shapes = append(shapes, body.Shape)
	}
	if err := dbg.SavePNG(outPath, shapes, scale); err != nil {
		return err
	}
	if preview {
		return dbg.Preview(shapes, scale)
	}
	return nil
}

func runSchema(out io.Writer) error {
	data, err := scene.Schema()
	if err != nil {
		return err
	}
	_, err = out.Write(data)
	return err
}
