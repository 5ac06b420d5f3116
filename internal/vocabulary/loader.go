// Package vocabulary loads the vocabulary dataset the decks are built from.
package vocabulary

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"vocadeck/internal/domain"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Format is the encoding of a dataset file
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

//go:embed data/vocabulary.json
var embedded []byte

var validate = validator.New()

// Load reads the dataset from path, or the embedded dataset when path is empty
func Load(path string) ([]domain.VocabularyItem, error) {
	if path == "" {
		return Default()
	}
	return LoadFile(path)
}

// Default returns the dataset compiled into the binary
func Default() ([]domain.VocabularyItem, error) {
	items, err := Parse(embedded, FormatJSON)
	if err != nil {
		return nil, fmt.Errorf("embedded dataset: %w", err)
	}
	return items, nil
}

// LoadFile reads a JSON or YAML dataset, picking the format by extension
func LoadFile(path string) ([]domain.VocabularyItem, error) {
	format, err := formatOf(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read dataset: %w", err)
	}

	items, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return items, nil
}

// Parse decodes and validates a dataset
func Parse(data []byte, format Format) ([]domain.VocabularyItem, error) {
	var items []domain.VocabularyItem

	switch format {
	case FormatJSON:
		if err := json.Unmarshal(data, &items); err != nil {
			return nil, fmt.Errorf("failed to decode json: %w", err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &items); err != nil {
			return nil, fmt.Errorf("failed to decode yaml: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported dataset format %q", format)
	}

	if err := Validate(items); err != nil {
		return nil, err
	}
	return items, nil
}

// Validate checks every record for required fields
func Validate(items []domain.VocabularyItem) error {
	for i, item := range items {
		if err := validate.Struct(item); err != nil {
			return fmt.Errorf("invalid item %d (%q): %w", i, item.Word, err)
		}
	}
	return nil
}

func formatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unsupported dataset file %q", path)
	}
}
