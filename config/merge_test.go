package config

import (
	"reflect"
	"testing"
)

func TestMergeOverrideWins(t *testing.T) {
	defaults := map[string]any{"host": "localhost", "port": 5432}
	overrides := map[string]any{"port": 6543}

	merged := Merge(defaults, overrides)

	want := map[string]any{"host": "localhost", "port": 6543}
	if !reflect.DeepEqual(merged, want) {
		t.Errorf("got %v, want %v", merged, want)
	}
}

func TestMergeNestedMaps(t *testing.T) {
	defaults := map[string]any{
		"pool": map[string]any{"min": 1, "max": 10},
	}
	overrides := map[string]any{
		"pool": map[string]any{"max": 50},
	}

	merged := Merge(defaults, overrides)

	pool, ok := merged["pool"].(map[string]any)
	if !ok {
		t.Fatalf("expected nested map, got %T", merged["pool"])
	}
	if pool["min"] != 1 || pool["max"] != 50 {
		t.Errorf("got %v, want min=1 max=50", pool)
	}
}

func TestMergeReplacesNonMapValues(t *testing.T) {
	defaults := map[string]any{"tags": []any{"a", "b"}}
	overrides := map[string]any{"tags": []any{"c"}}

	merged := Merge(defaults, overrides)

	if !reflect.DeepEqual(merged["tags"], []any{"c"}) {
		t.Errorf("expected slices to be replaced, got %v", merged["tags"])
	}
}

func TestMergeDoesNotMutateInputs(t *testing.T) {
	defaults := map[string]any{
		"pool": map[string]any{"min": 1},
	}
	overrides := map[string]any{
		"pool": map[string]any{"max": 50},
	}

	merged := Merge(defaults, overrides)
	merged["pool"].(map[string]any)["min"] = 99

	if defaults["pool"].(map[string]any)["min"] != 1 {
		t.Error("defaults were mutated through the merged map")
	}
	if _, ok := overrides["pool"].(map[string]any)["min"]; ok {
		t.Error("overrides were mutated by the merge")
	}
}

func TestMergeNilInputs(t *testing.T) {
	if got := Merge(nil, nil); len(got) != 0 {
		t.Errorf("expected empty map, got %v", got)
	}
	if got := Merge(nil, map[string]any{"a": 1}); got["a"] != 1 {
		t.Errorf("expected override to survive nil defaults, got %v", got)
	}
	if got := Merge(map[string]any{"a": 1}, nil); got["a"] != 1 {
		t.Errorf("expected defaults to survive nil overrides, got %v", got)
	}
}
