package jsontree

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// FromYAML converts a single YAML document into its JSON equivalent and
// parses it. It returns both the tree and the JSON re-presentation of the
// document so callers can hand the same payload to JSON-only decoders.
func FromYAML(data []byte) (Value, []byte, error) {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Value{}, nil, fmt.Errorf("jsontree: yaml: %w", err)
	}
	normalized, err := normalizeYAML(doc)
	if err != nil {
		return Value{}, nil, err
	}
	jsonBytes, err := json.Marshal(normalized)
	if err != nil {
		return Value{}, nil, fmt.Errorf("jsontree: yaml to json: %w", err)
	}
	value, err := Parse(jsonBytes)
	if err != nil {
		return Value{}, nil, err
	}
	return value, jsonBytes, nil
}

// normalizeYAML rewrites yaml.v3 output into JSON-marshalable shapes.
// Non-string map keys are rendered through their YAML scalar form.
func normalizeYAML(v any) (any, error) {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			nv, err := normalizeYAML(val)
			if err != nil {
				return nil, err
			}
			out[k] = nv
		}
		return out, nil
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			key, err := yamlScalarKey(k)
			if err != nil {
				return nil, err
			}
			nv, err := normalizeYAML(val)
			if err != nil {
				return nil, err
			}
			out[key] = nv
		}
		return out, nil
	case []any:
		out := make([]any, len(t))
		for i, val := range t {
			nv, err := normalizeYAML(val)
			if err != nil {
				return nil, err
			}
			out[i] = nv
		}
		return out, nil
	default:
		return v, nil
	}
}

func yamlScalarKey(k any) (string, error) {
	if s, ok := k.(string); ok {
		return s, nil
	}
	rendered, err := yaml.Marshal(k)
	if err != nil {
		return "", fmt.Errorf("jsontree: yaml map key %v: %w", k, err)
	}
	// yaml.Marshal appends a trailing newline to scalars.
	out := string(rendered)
	if n := len(out); n > 0 && out[n-1] == '\n' {
		out = out[:n-1]
	}
	return out, nil
}
