package document

import (
	"bytes"
	"fmt"

	"github.com/goccy/go-yaml"
)

// UnmarshalYAML parses YAML data into a document. Empty or all-whitespace
// input yields an empty mapping, mirroring a config file that does not
// exist yet. A non-mapping top level is an error: the root of a config
// document is always a mapping.
func UnmarshalYAML(data []byte) (Mapping, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return Mapping{}, nil
	}
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if raw == nil {
		return Mapping{}, nil
	}
	node, err := FromGo(raw)
	if err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return node.(Mapping), nil
}

// MarshalYAML serializes a node to YAML.
func MarshalYAML(n Node) ([]byte, error) {
	return yaml.Marshal(ToGo(n))
}
