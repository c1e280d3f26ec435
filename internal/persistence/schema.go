package persistence

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

const schemaURL = "https://myday.local/schemas/tasks.json"

//go:embed schema.json
var schemaSource string

// compileSchema compiles the embedded task-list schema
func compileSchema() (*jsonschema.Schema, error) {
	compiler := jsonschema.NewCompiler()
	compiler.AssertFormat = true

	if err := compiler.AddResource(schemaURL, strings.NewReader(schemaSource)); err != nil {
		return nil, fmt.Errorf("add schema resource: %w", err)
	}

	schema, err := compiler.Compile(schemaURL)
	if err != nil {
		return nil, fmt.Errorf("compile schema: %w", err)
	}
	return schema, nil
}

// SchemaViolation is a single failed schema rule at a JSON pointer location.
type SchemaViolation struct {
	Location string
	Message  string
}

// SchemaError lists every violation found in a stored value.
type SchemaError struct {
	Violations []SchemaViolation
}

func (e *SchemaError) Error() string {
	parts := make([]string, len(e.Violations))
	for i, v := range e.Violations {
		loc := v.Location
		if loc == "" {
			loc = "/"
		}
		parts[i] = fmt.Sprintf("%s: %s", loc, v.Message)
	}
	return "schema validation failed: " + strings.Join(parts, "; ")
}

// toSchemaError flattens a jsonschema validation tree into its leaf causes
func toSchemaError(err error) error {
	ve, ok := err.(*jsonschema.ValidationError)
	if !ok {
		return err
	}

	result := &SchemaError{}
	collectViolations(result, ve)
	return result
}

func collectViolations(result *SchemaError, err *jsonschema.ValidationError) {
	if err == nil {
		return
	}

	if len(err.Causes) == 0 {
		result.Violations = append(result.Violations, SchemaViolation{
			Location: err.InstanceLocation,
			Message:  err.Message,
		})
		return
	}

	for _, cause := range err.Causes {
		collectViolations(result, cause)
	}
}
