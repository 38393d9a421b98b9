package manifest

import "github.com/invopop/jsonschema"

// Schema returns the JSON schema of a manifest document.
func Schema() *jsonschema.Schema {
	reflector := new(jsonschema.Reflector)
	reflector.Anonymous = true
	reflector.DoNotReference = true
	return reflector.Reflect(&Document{})
}
