package schemas

import (
	_ "embed"
)

// The resume structure schema ships inside the binary so validation works
// regardless of working directory.
//
//go:embed resume_structure.schema.json
var structureSchema string

// StructureSchema returns the bundled resume structure schema document.
func StructureSchema() string {
	return structureSchema
}

// ValidateStructure validates resume structure JSON content against the
// bundled schema. Returns a *ValidationError describing each failing field,
// or nil when the document conforms.
func ValidateStructure(jsonContent string) error {
	return ValidateJSONString(structureSchema, jsonContent)
}
