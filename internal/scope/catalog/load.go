package catalog

import (
	"bufio"
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrUnsupportedFormat is returned for catalog files with an unknown extension.
var ErrUnsupportedFormat = errors.New("unsupported catalog format")

// Format identifies a catalog file encoding
type Format string

// Supported catalog file formats
const (
	FormatYAML  Format = "yaml"
	FormatJSON  Format = "json"
	FormatJSONL Format = "jsonl"
)

//go:embed tutorials.yaml
var defaultCatalog []byte

// yamlFile is the on-disk shape of a YAML catalog
type yamlFile struct {
	Tutorials []Document `yaml:"tutorials"`
}

// Default returns the built-in tutorial catalog
func Default() (*Catalog, error) {
	docs, err := Parse(bytes.NewReader(defaultCatalog), FormatYAML)
	if err != nil {
		return nil, fmt.Errorf("failed to parse built-in catalog: %w", err)
	}
	return New(docs)
}

// Open loads and validates a catalog file, picking the format from its extension
func Open(path string) (*Catalog, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog: %w", err)
	}
	defer func() { _ = f.Close() }()

	docs, err := Parse(f, format)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return New(docs)
}

// FormatFromPath maps a file extension to a Format
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	case ".jsonl", ".ndjson":
		return FormatJSONL, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// Parse decodes raw documents without validating them
func Parse(r io.Reader, format Format) ([]Document, error) {
	switch format {
	case FormatYAML:
		var file yamlFile
		if err := yaml.NewDecoder(r).Decode(&file); err != nil {
			if errors.Is(err, io.EOF) {
				return nil, nil
			}
			return nil, fmt.Errorf("failed to decode yaml: %w", err)
		}
		return file.Tutorials, nil

	case FormatJSON:
		var docs []Document
		if err := json.NewDecoder(r).Decode(&docs); err != nil {
			return nil, fmt.Errorf("failed to decode json: %w", err)
		}
		return docs, nil

	case FormatJSONL:
		return parseJSONL(r)

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}

func parseJSONL(r io.Reader) ([]Document, error) {
	docs := make([]Document, 0)
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)

	line := 0
	for scanner.Scan() {
		line++
		raw := bytes.TrimSpace(scanner.Bytes())
		if len(raw) == 0 {
			continue
		}

		var doc Document
		if err := json.Unmarshal(raw, &doc); err != nil {
			return nil, fmt.Errorf("failed to decode document on line %d: %w", line, err)
		}
		docs = append(docs, doc)
	}

	return docs, scanner.Err()
}

// WriteJSONL writes docs one per line
func WriteJSONL(w io.Writer, docs []Document) error {
	encoder := json.NewEncoder(w)
	for i := range docs {
		if err := encoder.Encode(docs[i]); err != nil {
			return fmt.Errorf("failed to encode document %d: %w", i, err)
		}
	}
	return nil
}
