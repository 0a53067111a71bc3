package plugin

import (
	"encoding/json"
	"fmt"

	"github.com/invopop/jsonschema"
)

// SettingsSchema returns the JSON schema of the persisted settings blob.
func SettingsSchema() ([]byte, error) {
	r := &jsonschema.Reflector{
		DoNotReference:             true,
		AllowAdditionalProperties:  true,
		RequiredFromJSONSchemaTags: true,
	}
	schema := r.Reflect(&settingsBlob{})
	schema.Title = "linkpeek settings"
	schema.Description = "Settings blob saved through the host's plugin data API. Missing or invalid fields fall back to defaults."

	out, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal settings schema: %w", err)
	}
	return out, nil
}
