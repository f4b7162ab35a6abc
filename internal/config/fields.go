package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/jonathan/cv-analyzer/internal/types"
)

// LoadFields reads a JSON array of custom form field definitions.
func LoadFields(path string) ([]types.CustomField, error) {
	if path == "" {
		return nil, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read fields file %s: %w", path, err)
	}

	var fields []types.CustomField
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, fmt.Errorf("failed to parse fields JSON: %w", err)
	}

	if err := types.ValidateFields(fields); err != nil {
		return nil, err
	}

	return fields, nil
}
