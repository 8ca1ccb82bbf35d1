// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package classify

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultTablesParse(t *testing.T) {
	tables := DefaultTables()

	require.NotEmpty(t, tables.Languages)
	require.NotEmpty(t, tables.Frameworks)
	require.NotEmpty(t, tables.Databases)
	require.NotEmpty(t, tables.Tools)

	for _, group := range [][]Entry{tables.Languages, tables.Frameworks, tables.Databases, tables.Tools} {
		for _, e := range group {
			assert.NotEmpty(t, e.Key, "entry %q missing key", e.Label)
			assert.NotEmpty(t, e.Image, "entry %q missing badge", e.Key)
		}
	}
}

func TestLoadTablesFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tables.yaml")
	content := `languages:
  - key: cobol
    label: COBOL
    badge: https://example.com/cobol.svg
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	tables, err := LoadTables(path)
	require.NoError(t, err)
	require.Len(t, tables.Languages, 1)
	assert.Equal(t, "cobol", tables.Languages[0].Key)

	got := Classify([]string{"COBOL"}, tables)
	require.Len(t, got.Languages, 1)
	assert.Equal(t, "COBOL", got.Languages[0].Label)
}

func TestLoadTablesMissingFile(t *testing.T) {
	_, err := LoadTables(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadTablesEmptyPathUsesDefaults(t *testing.T) {
	tables, err := LoadTables("")
	require.NoError(t, err)
	assert.NotEmpty(t, tables.Languages)
}

func TestClassifyScenario(t *testing.T) {
	got := Classify([]string{"Python", "React", "Docker"}, DefaultTables())

	require.Len(t, got.Languages, 1)
	assert.Equal(t, "Python", got.Languages[0].Label)
	require.Len(t, got.Frameworks, 1)
	assert.Equal(t, "React", got.Frameworks[0].Label)
	require.Len(t, got.Tools, 1)
	assert.Equal(t, "Docker", got.Tools[0].Label)
	assert.Empty(t, got.Databases)
}

// Exact case duplicates survive extraction ("Python" vs "python") but
// both resolve to the same table entry, so the badge appears once.
func TestClassifyDeduplicatesAcrossCaseVariants(t *testing.T) {
	got := Classify([]string{"Python", "python", "Java"}, DefaultTables())

	labels := make([]string, len(got.Languages))
	for i, b := range got.Languages {
		labels[i] = b.Label
	}
	assert.Equal(t, []string{"Python", "Java"}, labels)
}

func TestClassifyToleranceLevels(t *testing.T) {
	tests := []struct {
		name string
		tag  string
		want string // expected language label
	}{
		{"exact", "python", "Python"},
		{"exact with symbols", "C++", "C++"},
		{"whole token", "advanced Python programming", "Python"},
		{"substring", "pythonista", "Python"},
		{"punctuation normalized away", "Python(3)", "Python"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify([]string{tt.tag}, DefaultTables())
			require.NotEmpty(t, got.Languages, "tag %q matched nothing", tt.tag)
			assert.Equal(t, tt.want, got.Languages[0].Label)
		})
	}
}

func TestClassifyCategoriesAreIndependent(t *testing.T) {
	// "PostgreSQL" carries the "sql" language key as a substring and is
	// a database by name; both categories keep their match.
	got := Classify([]string{"PostgreSQL"}, DefaultTables())

	assert.NotEmpty(t, got.Databases)
	assert.NotEmpty(t, got.Languages)
}

func TestClassifyNothingMatches(t *testing.T) {
	got := Classify([]string{"Teamwork", "Public Speaking"}, DefaultTables())
	assert.True(t, got.IsEmpty())
}

func TestClassifyPreservesDetectionOrder(t *testing.T) {
	got := Classify([]string{"Rust", "Go", "Python"}, DefaultTables())

	labels := make([]string, len(got.Languages))
	for i, b := range got.Languages {
		labels[i] = b.Label
	}
	assert.Equal(t, []string{"Rust", "Go", "Python"}, labels)
}

func TestNormalizeTag(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"Python", "python"},
		{"C++", "c++"},
		{"Node.js", "node.js"},
		{"React / Redux", "react redux"},
		{"  spaces  ", "spaces"},
		{"***", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, normalizeTag(tt.in), "normalizeTag(%q)", tt.in)
	}
}
