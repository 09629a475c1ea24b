package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"acquiring/internal/services/feestructure"

	"gopkg.in/yaml.v3"
)

// loadStructure reads a fee structure from a JSON or YAML file. YAML is
// converted to JSON first so both formats share the JSON field names and
// decimal decoding.
func loadStructure(path string) (feestructure.Input, error) {
	var in feestructure.Input

	data, err := os.ReadFile(path)
	if err != nil {
		return in, fmt.Errorf("failed to read %s: %w", path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
	default:
		var doc interface{}
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return in, fmt.Errorf("failed to parse %s: %w", path, err)
		}
		if data, err = json.Marshal(doc); err != nil {
			return in, fmt.Errorf("failed to convert %s: %w", path, err)
		}
	}

	if err := json.Unmarshal(data, &in); err != nil {
		return in, fmt.Errorf("failed to decode %s: %w", path, err)
	}
	return in, nil
}
