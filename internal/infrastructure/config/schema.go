package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/invopop/jsonschema"
)

// Schema returns the JSON schema of config.toml.
func Schema() ([]byte, error) {
	r := &jsonschema.Reflector{FieldNameTag: "toml"}
	schema := r.Reflect(&Config{})
	schema.ID = "https://github.com/bnema/fontkeeper/config.schema.json"
	schema.Title = "fontkeeper configuration"
	schema.Description = "Configuration for fontkeeper, a custom font manager for note-taking hosts"

	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal schema: %w", err)
	}
	return data, nil
}

// GenerateSchemaFile writes the schema next to the config file.
func GenerateSchemaFile(path string) error {
	data, err := Schema()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, filePerm); err != nil {
		return fmt.Errorf("failed to write schema file: %w", err)
	}
	return nil
}
