// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package classify

import (
	_ "embed"
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"
)

//go:embed tables.yaml
var defaultTablesYAML []byte

// DefaultTables parses the embedded badge tables. The embedded file is
// validated by tests, so a parse failure here is a build defect.
func DefaultTables() *Tables {
	t, err := parseTables(defaultTablesYAML)
	if err != nil {
		panic(fmt.Sprintf("embedded tables.yaml: %v", err))
	}
	return t
}

// LoadTables reads category tables from a YAML file, falling back to the
// embedded defaults when path is empty.
func LoadTables(path string) (*Tables, error) {
	if path == "" {
		return DefaultTables(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading tables %s: %w", path, err)
	}
	t, err := parseTables(data)
	if err != nil {
		return nil, fmt.Errorf("parsing tables %s: %w", path, err)
	}
	return t, nil
}

func parseTables(data []byte) (*Tables, error) {
	var t Tables
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, err
	}
	for _, group := range [][]Entry{t.Languages, t.Frameworks, t.Databases, t.Tools} {
		for _, e := range group {
			if e.Key == "" || e.Label == "" {
				return nil, fmt.Errorf("table entry %+v missing key or label", e)
			}
		}
	}
	return &t, nil
}
