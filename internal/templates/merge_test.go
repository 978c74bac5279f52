package templates

import (
	"reflect"
	"testing"
)

func TestMergeTable(t *testing.T) {
	tests := []struct {
		name      string
		base      map[string]any
		overrides map[string]any
		want      map[string]any
	}{
		{
			name:      "override replaces scalar",
			base:      map[string]any{"name": "a", "keep": 1},
			overrides: map[string]any{"name": "b"},
			want:      map[string]any{"name": "b", "keep": 1},
		},
		{
			name:      "new keys are added",
			base:      map[string]any{"a": 1},
			overrides: map[string]any{"b": 2},
			want:      map[string]any{"a": 1, "b": 2},
		},
		{
			name:      "maps merge one level",
			base:      map[string]any{"cfg": map[string]any{"x": 1, "y": 2}},
			overrides: map[string]any{"cfg": map[string]any{"y": 9, "z": 3}},
			want:      map[string]any{"cfg": map[string]any{"x": 1, "y": 9, "z": 3}},
		},
		{
			name: "nested maps below one level are replaced wholesale",
			base: map[string]any{"cfg": map[string]any{
				"inner": map[string]any{"a": 1, "b": 2},
			}},
			overrides: map[string]any{"cfg": map[string]any{
				"inner": map[string]any{"a": 7},
			}},
			want: map[string]any{"cfg": map[string]any{
				"inner": map[string]any{"a": 7},
			}},
		},
		{
			name:      "list overrides replace not append",
			base:      map[string]any{"tags": []any{"a", "b"}},
			overrides: map[string]any{"tags": []any{"c"}},
			want:      map[string]any{"tags": []any{"c"}},
		},
		{
			name:      "map over scalar replaces",
			base:      map[string]any{"v": "scalar"},
			overrides: map[string]any{"v": map[string]any{"k": 1}},
			want:      map[string]any{"v": map[string]any{"k": 1}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Merge(tt.base, tt.overrides)
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMergeDoesNotMutateInputs(t *testing.T) {
	base := map[string]any{"cfg": map[string]any{"x": 1}}
	overrides := map[string]any{"cfg": map[string]any{"y": 2}}
	Merge(base, overrides)
	if len(base["cfg"].(map[string]any)) != 1 {
		t.Fatalf("base mutated: %v", base)
	}
	if len(overrides["cfg"].(map[string]any)) != 1 {
		t.Fatalf("overrides mutated: %v", overrides)
	}
}
