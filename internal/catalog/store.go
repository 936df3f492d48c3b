package catalog

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/rayyanquantum/rayui/internal/errors"
)

// DefaultFile is the catalog location relative to the content directory.
const DefaultFile = "blocks-metadata.yml"

const blocksKey = "blocks"

type document struct {
	Blocks []ComponentRecord `yaml:"blocks"`
}

// Parse decodes a catalog document. An empty document yields no records.
func Parse(data []byte) ([]ComponentRecord, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrap(err, errors.ErrorTypeValidation, errors.ErrCodeCatalogInvalid, "invalid catalog document")
	}
	return doc.Blocks, nil
}

// Load reads and parses the catalog file at path.
func Load(path string) ([]ComponentRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WrapRead(err, path)
	}
	records, err := Parse(data)
	if err != nil {
		if re, ok := err.(*errors.RayError); ok {
			re.WithPath(path)
		}
		return nil, err
	}
	return records, nil
}

// Find returns the record with the given id.
func Find(records []ComponentRecord, id string) (ComponentRecord, bool) {
	for _, r := range records {
		if r.ID == id {
			return r, true
		}
	}
	return ComponentRecord{}, false
}

// Append adds rec to the end of the catalog file at path. The file is parsed,
// the record appended to the blocks sequence and the document re-encoded, so
// existing records, their order and any comments on them survive. A missing
// file is created.
func Append(path string, rec ComponentRecord) error {
	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return errors.WrapRead(err, path)
	}

	out, err := appendRecord(data, rec)
	if err != nil {
		if re, ok := err.(*errors.RayError); ok {
			re.WithPath(path)
		}
		return err
	}

	if err := os.WriteFile(path, out, 0644); err != nil {
		return errors.WrapFileSystem(err, errors.ErrCodeWriteFile, "failed to write catalog", path)
	}
	return nil
}

func appendRecord(data []byte, rec ComponentRecord) ([]byte, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, errors.Wrap(err, errors.ErrorTypeValidation, errors.ErrCodeCatalogInvalid, "invalid catalog document")
	}

	if root.Kind == 0 {
		root = yaml.Node{Kind: yaml.DocumentNode}
	}
	if root.Kind == yaml.DocumentNode && len(root.Content) == 0 {
		root.Content = []*yaml.Node{{Kind: yaml.MappingNode, Tag: "!!map"}}
	}
	if root.Kind != yaml.DocumentNode || len(root.Content) == 0 || root.Content[0].Kind != yaml.MappingNode {
		return nil, errors.NewValidationError(errors.ErrCodeCatalogInvalid, "catalog root must be a mapping")
	}

	seq, err := blocksSequence(root.Content[0])
	if err != nil {
		return nil, err
	}

	var entry yaml.Node
	if err := entry.Encode(rec); err != nil {
		return nil, errors.NewInternalError(errors.ErrCodeInternalError, "failed to encode record", err)
	}
	seq.Content = append(seq.Content, &entry)

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(&root); err != nil {
		return nil, errors.NewInternalError(errors.ErrCodeInternalError, "failed to encode catalog", err)
	}
	if err := enc.Close(); err != nil {
		return nil, errors.NewInternalError(errors.ErrCodeInternalError, "failed to encode catalog", err)
	}
	return buf.Bytes(), nil
}

// blocksSequence finds the blocks sequence in the top-level mapping,
// creating it when absent or null.
func blocksSequence(mapping *yaml.Node) (*yaml.Node, error) {
	for i := 0; i+1 < len(mapping.Content); i += 2 {
		if mapping.Content[i].Value != blocksKey {
			continue
		}
		value := mapping.Content[i+1]
		switch {
		case value.Kind == yaml.SequenceNode:
			// An empty flow sequence ("blocks: []") would otherwise stay inline.
			value.Style &^= yaml.FlowStyle
			return value, nil
		case value.Kind == yaml.ScalarNode && value.Tag == "!!null":
			*value = yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
			return value, nil
		default:
			return nil, errors.NewValidationError(errors.ErrCodeCatalogInvalid,
				fmt.Sprintf("%q must be a list", blocksKey))
		}
	}

	seq := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
	mapping.Content = append(mapping.Content,
		&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: blocksKey},
		seq,
	)
	return seq, nil
}
