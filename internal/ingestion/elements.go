package ingestion

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/jonathan/ats-screener/internal/schemas"
	"github.com/jonathan/ats-screener/internal/types"
)

// structureDocument is the on-disk interchange format for parsed resumes.
type structureDocument struct {
	Elements []types.ContentElement `json:"elements"`
}

// LoadElements reads a resume structure JSON file and returns its content
// elements in document order. The document is checked against the bundled
// structure schema first, then each element goes through struct validation.
// Schema failures come back as *schemas.ValidationError so callers can
// report them per field.
func LoadElements(path string) ([]types.ContentElement, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("structure file not found: %w", err)
		}
		return nil, fmt.Errorf("failed to read structure file: %w", err)
	}

	return ParseElements(data)
}

// ParseElements validates and decodes resume structure JSON content.
func ParseElements(data []byte) ([]types.ContentElement, error) {
	if err := schemas.ValidateStructure(string(data)); err != nil {
		return nil, err
	}

	var doc structureDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse structure document: %w", err)
	}

	for i := range doc.Elements {
		if err := doc.Elements[i].Validate(); err != nil {
			return nil, fmt.Errorf("element %d failed validation: %w", i, err)
		}
	}

	return doc.Elements, nil
}
