package dbg

import (
	"github.com/logrusorgru/aurora"
	"github.com/osuushi/polycollide/resolve"
)

// Palette colors labels for terminal output. With colors off, labels come back
// unchanged.
type Palette struct {
	au aurora.Aurora
}

func NewPalette(colors bool) Palette {
	return Palette{au: aurora.NewAurora(colors)}
}

// Case colors a resolution case by how much work it took: green when nothing
// was in the way, cyan for a single penetrating vertex, yellow for the complex
// configurations and magenta for the last resort.
func (p Palette) Case(c resolve.Case) string {
	name := c.String()
	switch {
	case c == resolve.CaseSeparated:
		return p.au.Green(name).String()
	case c == resolve.CaseLastResort:
		return p.au.Magenta(name).String()
	case c.Complex():
		return p.au.Yellow(name).String()
	default:
		return p.au.Cyan(name).String()
	}
}

func (p Palette) Body(id string) string {
	return p.au.Bold(id).String()
}

func (p Palette) Error(err error) string {
	return p.au.Red(err.Error()).String()
}

func (p Palette) OK(text string) string {
	return p.au.Green(text).String()
}
