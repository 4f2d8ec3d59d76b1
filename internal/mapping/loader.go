package mapping

import (
	"cmp"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// LoadFile loads and parses a declaration file. Files ending in .json are
// read as JSON, everything else as YAML.
func LoadFile(path string) (*MappingFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read mapping file %s: %w", path, err)
	}

	var mf *MappingFile
	if isJSON(path) {
		mf, err = ParseJSON(data)
	} else {
		mf, err = Parse(data)
	}

	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return mf, nil
}

// Parse parses YAML data into a MappingFile.
func Parse(data []byte) (*MappingFile, error) {
	var mf MappingFile

	if err := yaml.Unmarshal(data, &mf); err != nil {
		return nil, fmt.Errorf("failed to parse mapping YAML: %w", err)
	}

	applyDefaults(&mf)

	return &mf, nil
}

// ParseJSON parses JSON data into a MappingFile.
func ParseJSON(data []byte) (*MappingFile, error) {
	var mf MappingFile

	if err := json.Unmarshal(data, &mf); err != nil {
		return nil, fmt.Errorf("failed to parse mapping JSON: %w", err)
	}

	applyDefaults(&mf)

	return &mf, nil
}

// applyDefaults fills in default values for optional fields and trims
// names, tags and inline members, so that a quoted " card" is the member
// "card" that rules refer to.
func applyDefaults(mf *MappingFile) {
	if mf.Version == "" {
		mf.Version = "1"
	}

	for i := range mf.Converters {
		c := &mf.Converters[i]
		c.Name = strings.TrimSpace(c.Name)
		c.Tag = strings.TrimSpace(c.Tag)
		trimAll(c.Internal.Members)
		trimAll(c.External.Members)
	}
}

// Marshal serializes a MappingFile to YAML.
func Marshal(mf *MappingFile) ([]byte, error) {
	return yaml.Marshal(mf)
}

// MarshalJSON serializes a MappingFile to indented JSON.
func MarshalJSON(mf *MappingFile) ([]byte, error) {
	return json.MarshalIndent(mf, "", "  ")
}

// WriteFile writes a MappingFile to the given path, as JSON when the path
// ends in .json.
func WriteFile(mf *MappingFile, path string) error {
	marshal := Marshal
	if isJSON(path) {
		marshal = MarshalJSON
	}

	data, err := marshal(mf)
	if err != nil {
		return fmt.Errorf("failed to marshal mapping: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write mapping file %s: %w", path, err)
	}

	return nil
}

// Normalize puts a file in canonical form: defaults applied and rules
// ordered by kind, internal member, then external member.
// Rule order never changes the meaning of a converter.
func Normalize(mf *MappingFile) {
	applyDefaults(mf)

	for i := range mf.Converters {
		slices.SortStableFunc(mf.Converters[i].Rules, compareRules)
	}
}

// compareRules orders valid rules by kind and operands; invalid rules go last.
func compareRules(a, b RuleDef) int {
	if a.IsValid() != b.IsValid() {
		if a.IsValid() {
			return -1
		}

		return 1
	}

	return cmp.Or(
		cmp.Compare(a.Rule.Kind, b.Rule.Kind),
		cmp.Compare(a.Rule.ValueA, b.Rule.ValueA),
		cmp.Compare(a.Rule.ValueB, b.Rule.ValueB),
	)
}

func trimAll(values []string) {
	for i, v := range values {
		values[i] = strings.TrimSpace(v)
	}
}

func isJSON(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".json")
}
