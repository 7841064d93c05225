package manager

import (
	_ "embed"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed schemas/site.schema.json
var siteSchemaJSON string

var compileSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	return jsonschema.CompileString("site.schema.json", siteSchemaJSON)
})

// validateDocument checks a decoded document against the content schema.
// Both the current file and the updated result are validated before any
// write happens.
func validateDocument(doc any) error {
	schema, err := compileSchema()
	if err != nil {
		return fmt.Errorf("manager: compile schema: %w", err)
	}
	if err := schema.Validate(doc); err != nil {
		return updateErrf("document does not match schema: %v", err)
	}
	return nil
}
