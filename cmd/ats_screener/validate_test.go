package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validStructureJSON = `{
  "elements": [
    {"type": "heading", "content": "John Smith", "font_size": 16.0, "page": 1},
    {"type": "bullet", "content": "Built data pipelines in python", "page": 1}
  ]
}`

const badKindStructureJSON = `{
  "elements": [
    {"type": "paragraph", "content": "Not a known element kind"}
  ]
}`

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestRunValidate_StructureValid(t *testing.T) {
	path := writeTempFile(t, "structure.json", validStructureJSON)
	setFlags(t, validateCmd, map[string]string{"structure": path})

	assert.NoError(t, runValidate(validateCmd, nil))
}

func TestRunValidate_StructureBadKind(t *testing.T) {
	path := writeTempFile(t, "structure.json", badKindStructureJSON)
	setFlags(t, validateCmd, map[string]string{"structure": path})

	err := runValidate(validateCmd, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
}

func TestRunValidate_StructureMissingFile(t *testing.T) {
	setFlags(t, validateCmd, map[string]string{
		"structure": filepath.Join(t.TempDir(), "missing.json"),
	})

	err := runValidate(validateCmd, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestRunValidate_NoFlags(t *testing.T) {
	setFlags(t, validateCmd, map[string]string{})

	err := runValidate(validateCmd, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must provide either --structure or --schema/--json")
}

func TestRunValidate_BothModes(t *testing.T) {
	path := writeTempFile(t, "structure.json", validStructureJSON)
	setFlags(t, validateCmd, map[string]string{
		"structure": path,
		"schema":    "schema.json",
	})

	err := runValidate(validateCmd, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot use --structure with --schema/--json")
}

func TestRunValidate_SchemaPairValid(t *testing.T) {
	schema := writeTempFile(t, "person.schema.json", `{
		"$schema": "http://json-schema.org/draft-07/schema#",
		"type": "object",
		"required": ["name"],
		"properties": {"name": {"type": "string"}}
	}`)
	doc := writeTempFile(t, "person.json", `{"name": "Ada"}`)
	setFlags(t, validateCmd, map[string]string{"schema": schema, "json": doc})

	assert.NoError(t, runValidate(validateCmd, nil))
}

func TestRunValidate_SchemaPairInvalid(t *testing.T) {
	schema := writeTempFile(t, "person.schema.json", `{
		"$schema": "http://json-schema.org/draft-07/schema#",
		"type": "object",
		"required": ["name"],
		"properties": {"name": {"type": "string"}}
	}`)
	doc := writeTempFile(t, "person.json", `{"age": 30}`)
	setFlags(t, validateCmd, map[string]string{"schema": schema, "json": doc})

	err := runValidate(validateCmd, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
}

func TestRunValidate_SchemaWithoutJSON(t *testing.T) {
	setFlags(t, validateCmd, map[string]string{"schema": "schema.json"})

	err := runValidate(validateCmd, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--schema and --json must be provided together")
}
