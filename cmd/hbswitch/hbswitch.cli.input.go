package main

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// readInput reads content from a file or stdin
func readInput(path string, stdin io.Reader) ([]byte, error) {
	if path == InputSourceStdin {
		return io.ReadAll(stdin)
	}

	return os.ReadFile(path)
}

// writeOutput writes content to a file or stdout
func writeOutput(path string, data []byte, stdout io.Writer) error {
	if path == FlagDefaultOutput {
		_, err := stdout.Write(data)
		return err
	}

	return os.WriteFile(path, data, FilePermissions)
}

// loadData builds the rendering context from an inline JSON string, a data
// file, or both (file values are applied first, inline JSON overrides).
// Files with a .yaml or .yml extension are parsed as YAML, everything else
// as JSON.
func loadData(dataJSON, dataFilePath string) (map[string]interface{}, error) {
	data := make(map[string]interface{})

	if dataFilePath != "" {
		content, err := os.ReadFile(dataFilePath)
		if err != nil {
			return nil, err
		}

		if err := unmarshalData(dataFilePath, content, &data); err != nil {
			return nil, err
		}
	}

	if dataJSON != "" {
		inline := make(map[string]interface{})
		if err := json.Unmarshal([]byte(dataJSON), &inline); err != nil {
			return nil, err
		}
		for k, v := range inline {
			data[k] = v
		}
	}

	return data, nil
}

// unmarshalData decodes a data file by extension.
func unmarshalData(path string, content []byte, out *map[string]interface{}) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ExtYAML, ExtYML:
		return yaml.Unmarshal(content, out)
	default:
		return json.Unmarshal(content, out)
	}
}
