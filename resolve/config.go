package resolve

import (
	"github.com/osuushi/polycollide/geom"
	"github.com/pkg/errors"
)

// Config tunes the resolver. The zero value is not usable; start from
// DefaultConfig.
type Config struct {
	// StepSize is how far each pre-reduction step backs the moving shape out
	// along its motion, in world units. Tunnelling gets more likely as the step
	// grows relative to shape size.
	StepSize float64 `yaml:"step_size" json:"step_size" jsonschema:"description=Pre-reduction step in world units,minimum=0,exclusiveMinimum=true"`

	// MaxSteps caps the pre-reduction loop.
	MaxSteps int `yaml:"max_steps" json:"max_steps" jsonschema:"description=Cap on pre-reduction steps,minimum=1"`

	// Precision is the number of decimal places boundary intersection points are
	// rounded to before duplicates are collapsed.
	Precision int `yaml:"precision" json:"precision" jsonschema:"description=Decimal places for intersection point de-duplication,minimum=0,maximum=12"`
}

func DefaultConfig() Config {
	return Config{
		StepSize:  0.01,
		MaxSteps:  10000,
		Precision: geom.DefaultPrecision,
	}
}

func (c Config) Validate() error {
	if !(c.StepSize > 0) {
		return errors.Errorf("step size must be positive, got %v", c.StepSize)
	}
	if c.MaxSteps < 1 {
		return errors.Errorf("max steps must be at least 1, got %d", c.MaxSteps)
	}
	if c.Precision < 0 || c.Precision > 12 {
		return errors.Errorf("precision must be between 0 and 12 decimal places, got %d", c.Precision)
	}
	return nil
}
