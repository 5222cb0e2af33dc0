package store

import (
	"embed"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed schemas/*.schema.json
var schemaFiles embed.FS

// SchemaValidationError represents a loaded document that does not match
// the expected record shape, with field-level detail.
type SchemaValidationError struct {
	Path   string
	Errors []FieldError
}

// FieldError represents a single schema violation at a specific field.
type FieldError struct {
	Field   string
	Message string
}

func (e *SchemaValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("document %s does not match expected shape:\n", e.Path))
	for i, fe := range e.Errors {
		sb.WriteString(fmt.Sprintf("  %d. %s: %s\n", i+1, fe.Field, fe.Message))
	}
	return sb.String()
}

// validateDocument checks raw JSON content against an embedded schema file.
// Returns a SchemaValidationError describing every violated field.
func validateDocument(schemaName, docPath string, content []byte) error {
	schemaContent, err := schemaFiles.ReadFile("schemas/" + schemaName)
	if err != nil {
		return &StoreError{Path: docPath, Message: fmt.Sprintf("failed to read embedded schema %s", schemaName), Cause: err}
	}

	schemaLoader := gojsonschema.NewBytesLoader(schemaContent)
	documentLoader := gojsonschema.NewBytesLoader(content)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return &StoreError{Path: docPath, Message: "schema validation failed", Cause: err}
	}

	if result.Valid() {
		return nil
	}

	validationErr := &SchemaValidationError{
		Path:   docPath,
		Errors: make([]FieldError, 0, len(result.Errors())),
	}
	for _, desc := range result.Errors() {
		field := desc.Field()
		if field == "" {
			field = "(root)"
		}
		validationErr.Errors = append(validationErr.Errors, FieldError{
			Field:   field,
			Message: desc.Description(),
		})
	}

	return validationErr
}
