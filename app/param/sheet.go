package param

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Sheet is a set of parameters sharing one group of display settings.
type Sheet struct {
	Settings   Settings            `yaml:"settings" json:"settings"`
	Parameters []QuantityParameter `yaml:"parameters" json:"parameters"`
}

// Format is a sheet file encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// FormatForPath picks the encoding from a file extension.
// Supported extensions: .yaml, .yml, .json
func FormatForPath(path string) (Format, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("unsupported sheet file extension: %s", ext)
	}
}

// FromFile loads a sheet from a file, auto-detecting format by extension.
func FromFile(path string) (*Sheet, error) {
	format, err := FormatForPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read sheet file: %w", err)
	}
	if format == FormatJSON {
		return FromJSON(data)
	}
	return FromYAML(data)
}

// FromYAML parses YAML data into a Sheet. Settings missing from the data
// keep their defaults.
func FromYAML(data []byte) (*Sheet, error) {
	s := &Sheet{Settings: DefaultSettings()}
	if err := yaml.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// FromJSON parses JSON data into a Sheet. Settings missing from the data
// keep their defaults.
func FromJSON(data []byte) (*Sheet, error) {
	s := &Sheet{Settings: DefaultSettings()}
	if err := json.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("parse json: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Validate checks that every parameter has a unique ID and that its
// options can be built.
func (s *Sheet) Validate() error {
	var errs []error
	seen := make(map[string]bool, len(s.Parameters))
	for i, p := range s.Parameters {
		if p.ID == "" {
			errs = append(errs, fmt.Errorf("parameter %d: missing id", i))
			continue
		}
		if seen[p.ID] {
			errs = append(errs, fmt.Errorf("parameter %q: duplicate id", p.ID))
			continue
		}
		seen[p.ID] = true
		if _, err := Options(p, s.Settings); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Parameter returns the parameter with the given ID.
func (s *Sheet) Parameter(id string) (QuantityParameter, bool) {
	for _, p := range s.Parameters {
		if p.ID == id {
			return p, true
		}
	}
	return QuantityParameter{}, false
}

// Marshal encodes the sheet in the given format.
func (s *Sheet) Marshal(format Format) ([]byte, error) {
	switch format {
	case FormatYAML:
		return yaml.Marshal(s)
	case FormatJSON:
		data, err := json.MarshalIndent(s, "", "  ")
		if err != nil {
			return nil, err
		}
		return append(data, '\n'), nil
	default:
		return nil, fmt.Errorf("unsupported sheet format: %q", format)
	}
}

// WriteFile encodes the sheet in the format matching path's extension
// and writes it.
func (s *Sheet) WriteFile(path string) error {
	format, err := FormatForPath(path)
	if err != nil {
		return err
	}
	data, err := s.Marshal(format)
	if err != nil {
		return fmt.Errorf("encode sheet: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write sheet file: %w", err)
	}
	return nil
}
