// Package testutil provides test utilities and fixtures for unit tests.
package testutil

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/pelletier/go-toml/v2"
	"go.yaml.in/yaml/v4"
)

// StyleDoc is the document shape of a custom style file.
type StyleDoc struct {
	Styles []StyleDef `json:"styles" yaml:"styles" toml:"styles"`
}

// StyleDef is one custom style definition.
type StyleDef struct {
	Name       string `json:"name"                 yaml:"name"                 toml:"name"`
	Short      string `json:"short,omitempty"      yaml:"short,omitempty"      toml:"short,omitempty"`
	Pattern    string `json:"pattern"              yaml:"pattern"              toml:"pattern"`
	Delimiter  string `json:"delimiter"            yaml:"delimiter"            toml:"delimiter"`
	Boundaries string `json:"boundaries,omitempty" yaml:"boundaries,omitempty" toml:"boundaries,omitempty"`
}

// NewDotStyleDoc returns a document defining one style, "Dot" (short name
// "dotted"), that lowercases words and joins and splits them on ".".
func NewDotStyleDoc() StyleDoc {
	return StyleDoc{Styles: []StyleDef{{
		Name:       "Dot",
		Short:      "dotted",
		Pattern:    "lowercase",
		Delimiter:  ".",
		Boundaries: ".",
	}}}
}

// NewPathStyleDoc returns a document defining "Path": camel-cased words
// joined by "/", split on "/" and lower-to-upper transitions.
func NewPathStyleDoc() StyleDoc {
	return StyleDoc{Styles: []StyleDef{{
		Name:       "Path",
		Pattern:    "camel",
		Delimiter:  "/",
		Boundaries: "/aA",
	}}}
}

// WriteTempYAML marshals a document to YAML and writes it to a temporary file.
// Returns the path to the temporary file.
// The file is automatically cleaned up when the test completes (via t.TempDir).
func WriteTempYAML(t *testing.T, doc any) string {
	t.Helper()

	data, err := yaml.Marshal(doc)
	if err != nil {
		t.Fatalf("Failed to marshal document to YAML: %v", err)
	}
	return WriteTempFile(t, "styles.yaml", string(data))
}

// WriteTempJSON marshals a document to JSON and writes it to a temporary file.
func WriteTempJSON(t *testing.T, doc any) string {
	t.Helper()

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		t.Fatalf("Failed to marshal document to JSON: %v", err)
	}
	return WriteTempFile(t, "styles.json", string(data))
}

// WriteTempTOML marshals a document to TOML and writes it to a temporary file.
func WriteTempTOML(t *testing.T, doc any) string {
	t.Helper()

	data, err := toml.Marshal(doc)
	if err != nil {
		t.Fatalf("Failed to marshal document to TOML: %v", err)
	}
	return WriteTempFile(t, "styles.toml", string(data))
}

// WriteTempFile writes content to name inside a fresh temporary directory.
// The extension of name selects how style loaders read it.
func WriteTempFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("Failed to write temporary file: %v", err)
	}
	return path
}
