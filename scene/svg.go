package scene

import (
	"io"
	"os"
	"strconv"
	"strings"
	"unicode"

	"github.com/JoshVarga/svgparser"
	"github.com/osuushi/polycollide/geom"
	"github.com/osuushi/polycollide/shape"
	"github.com/pkg/errors"
)

// LoadSVG reads the first polygon element of an SVG file as a convex shape.
// This is not an SVG renderer: transforms and every other element are ignored.
func LoadSVG(path string) (*shape.Convex, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open svg")
	}
	defer f.Close()

	result, err := ParseSVG(f)
	if err != nil {
		return nil, errors.Wrapf(err, "svg %s", path)
	}
	return result, nil
}

func ParseSVG(r io.Reader) (*shape.Convex, error) {
	root, err := svgparser.Parse(r, false)
	if err != nil {
		return nil, errors.Wrap(err, "parse svg")
	}
	polygons := root.FindAll("polygon")
	if len(polygons) == 0 {
		return nil, errors.New("no polygon element")
	}
	points, err := parsePoints(polygons[0].Attributes["points"])
	if err != nil {
		return nil, err
	}
	return shape.NewConvex(points)
}

// parsePoints reads an SVG points list. Numbers may be separated by commas,
// whitespace or both.
func parsePoints(s string) ([]geom.Point, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
	if len(fields)%2 != 0 {
		return nil, errors.Errorf("odd number of coordinates in %q", s)
	}
	points := make([]geom.Point, 0, len(fields)/2)
	for i := 0; i < len(fields); i += 2 {
		x, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid x value %q", fields[i])
		}
		y, err := strconv.ParseFloat(fields[i+1], 64)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid y value %q", fields[i+1])
		}
		points = append(points, geom.Pt(x, y))
	}
	return points, nil
}
