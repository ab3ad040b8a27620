package jsontree

import (
	"testing"
)

func TestFromYAML(t *testing.T) {
	value, jsonBytes, err := FromYAML([]byte("code: 1\ndetail: boom\nnested:\n  - a\n  - 2\n"))
	if err != nil {
		t.Fatalf("FromYAML failed: %v", err)
	}

	if value.Kind() != KindObject {
		t.Fatalf("Kind = %v, want object", value.Kind())
	}

	code, ok := value.Object().Get("code")
	if !ok || code.Number().String() != "1" {
		t.Errorf("code = %v, want 1", code)
	}

	nested, ok := value.Object().Get("nested")
	if !ok || nested.Kind() != KindArray || len(nested.Items()) != 2 {
		t.Errorf("unexpected nested value: %v", nested)
	}

	// The JSON re-presentation parses to the same tree.
	reparsed, err := Parse(jsonBytes)
	if err != nil {
		t.Fatalf("re-presentation does not parse: %v", err)
	}
	if reparsed.Kind() != KindObject || reparsed.Object().Len() != value.Object().Len() {
		t.Error("re-presentation disagrees with returned tree")
	}
}

func TestFromYAMLScalarRoot(t *testing.T) {
	value, _, err := FromYAML([]byte("plain text"))
	if err != nil {
		t.Fatalf("FromYAML failed: %v", err)
	}
	if value.Kind() != KindString || value.Str() != "plain text" {
		t.Errorf("got %v %q, want string root", value.Kind(), value.Str())
	}
}

func TestFromYAMLInvalid(t *testing.T) {
	if _, _, err := FromYAML([]byte("a: [unclosed")); err == nil {
		t.Error("expected yaml error")
	}
}
