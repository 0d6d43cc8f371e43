package inventory

import (
	"bytes"
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	appErrors "showroom/internal/errors"
)

// FileSource reads records from a YAML or JSON document. The document is
// either a bare list of records or a mapping with a "vehicles" list; JSON is
// accepted because it parses as YAML.
type FileSource struct {
	path string
}

// NewFileSource constructs a source for the file at path.
func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

type fileDocument struct {
	Vehicles []Record `yaml:"vehicles"`
}

// Describe implements Source.
func (s *FileSource) Describe() string {
	return "file:" + s.path
}

// Load implements Source.
func (s *FileSource) Load(ctx context.Context) ([]Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	//nolint:gosec // G304: inventory path is operator supplied
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, appErrors.New(appErrors.CodeInventoryNotFound, fmt.Sprintf("read %s", s.path), err)
	}
	return decodeRecords(s.path, data)
}

func decodeRecords(name string, data []byte) ([]Record, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, nil
	}

	var node yaml.Node
	if err := yaml.Unmarshal(trimmed, &node); err != nil {
		return nil, parseError(name, err)
	}
	if len(node.Content) == 0 {
		return nil, nil
	}

	switch node.Content[0].Kind {
	case yaml.SequenceNode:
		var records []Record
		if err := node.Content[0].Decode(&records); err != nil {
			return nil, parseError(name, err)
		}
		return records, nil
	case yaml.MappingNode:
		var doc fileDocument
		if err := node.Content[0].Decode(&doc); err != nil {
			return nil, parseError(name, err)
		}
		return doc.Vehicles, nil
	default:
		return nil, appErrors.New(appErrors.CodeInventoryParse,
			fmt.Sprintf("parse %s: expected a list of vehicles or a vehicles: key", name), nil)
	}
}

func parseError(name string, err error) error {
	return appErrors.New(appErrors.CodeInventoryParse, fmt.Sprintf("parse %s: %v", name, err), err)
}
