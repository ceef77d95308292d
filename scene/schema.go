package scene

import (
	"encoding/json"

	"github.com/invopop/jsonschema"
	"github.com/pkg/errors"
)

// Schema is the JSON schema of scene files, for editors that validate YAML
// against one.
func Schema() ([]byte, error) {
	reflector := jsonschema.Reflector{
		RequiredFromJSONSchemaTags: true,
	}
	schema := reflector.Reflect(new(File))
	schema.Title = "polycollide scene"
	schema.Description = "Bodies to register in a world and moves to run through the collision resolver."

	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return nil, errors.Wrap(err, "marshal schema")
	}
	return append(data, '\n'), nil
}
