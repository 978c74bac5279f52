package tools

import (
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	casetypes "github.com/aws/aws-sdk-go-v2/service/connectcases/types"
	"github.com/mark3labs/mcp-go/mcp"
)

func reqWith(args map[string]any) mcp.CallToolRequest {
	req := mcp.CallToolRequest{}
	req.Params.Arguments = args
	return req
}

func TestArgString(t *testing.T) {
	req := reqWith(map[string]any{"instance_id": "abc"})
	v, errRes := argString(req, "instance_id")
	if errRes != nil {
		t.Fatalf("unexpected error result: %+v", errRes)
	}
	if v != "abc" {
		t.Fatalf("got %q", v)
	}

	_, errRes = argString(req, "missing")
	if errRes == nil {
		t.Fatal("expected error result for missing argument")
	}
	if !errRes.IsError {
		t.Fatal("expected IsError on missing argument result")
	}

	_, errRes = argString(reqWith(map[string]any{"instance_id": ""}), "instance_id")
	if errRes == nil {
		t.Fatal("expected error result for empty argument")
	}
}

func TestOptHelpers(t *testing.T) {
	req := reqWith(map[string]any{
		"max_results": float64(42),
		"enabled":     true,
		"names":       []any{"a", "b", 3, "c"},
		"attrs":       map[string]any{"k": "v", "n": 7},
	})

	if got := optInt(req, "max_results", 10); got != 42 {
		t.Fatalf("optInt = %d", got)
	}
	if got := optInt(req, "absent", 10); got != 10 {
		t.Fatalf("optInt default = %d", got)
	}
	if !optBool(req, "enabled", false) {
		t.Fatal("optBool should read true")
	}
	if got := optStringSlice(req, "names"); len(got) != 3 || got[0] != "a" || got[2] != "c" {
		t.Fatalf("optStringSlice = %v", got)
	}
	attrs := optStringMap(req, "attrs")
	if len(attrs) != 1 || attrs["k"] != "v" {
		t.Fatalf("optStringMap = %v", attrs)
	}
}

func TestArgTime(t *testing.T) {
	req := reqWith(map[string]any{"start": "2026-08-01T10:00:00Z"})
	got, errRes := argTime(req, "start")
	if errRes != nil {
		t.Fatalf("unexpected error result: %+v", errRes)
	}
	want := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("got %v want %v", got, want)
	}

	_, errRes = argTime(reqWith(map[string]any{"start": "yesterday"}), "start")
	if errRes == nil {
		t.Fatal("expected error result for a non-ISO timestamp")
	}
}

func TestCaseFieldsReshaping(t *testing.T) {
	fields := caseFields(map[string]string{"title": "Printer on fire", "summary": "urgent"})
	if len(fields) != 2 {
		t.Fatalf("got %d fields", len(fields))
	}
	seen := map[string]string{}
	for _, f := range fields {
		sv, ok := f.Value.(*casetypes.FieldValueUnionMemberStringValue)
		if !ok {
			t.Fatalf("field %s: value is %T, want string union member", aws.ToString(f.Id), f.Value)
		}
		seen[aws.ToString(f.Id)] = sv.Value
	}
	if seen["title"] != "Printer on fire" || seen["summary"] != "urgent" {
		t.Fatalf("reshaped fields = %v", seen)
	}
}

func TestLayoutFromMap(t *testing.T) {
	content := map[string]any{
		"basic": map[string]any{
			"topPanel": map[string]any{
				"sections": []any{
					map[string]any{
						"fieldGroup": map[string]any{
							"name":   "Overview",
							"fields": []any{map[string]any{"id": "title"}, map[string]any{"id": "summary"}},
						},
					},
				},
			},
		},
	}
	lc, err := layoutFromMap(content)
	if err != nil {
		t.Fatalf("layoutFromMap: %v", err)
	}
	basic, ok := lc.(*casetypes.LayoutContentMemberBasic)
	if !ok {
		t.Fatalf("layout content is %T", lc)
	}
	if basic.Value.TopPanel == nil || len(basic.Value.TopPanel.Sections) != 1 {
		t.Fatal("expected one top panel section")
	}
	fg, ok := basic.Value.TopPanel.Sections[0].(*casetypes.SectionMemberFieldGroup)
	if !ok {
		t.Fatalf("section is %T", basic.Value.TopPanel.Sections[0])
	}
	if aws.ToString(fg.Value.Name) != "Overview" || len(fg.Value.Fields) != 2 {
		t.Fatalf("field group = %+v", fg.Value)
	}
	if basic.Value.MoreInfo != nil {
		t.Fatal("moreInfo should be nil when absent")
	}

	if _, err := layoutFromMap(map[string]any{}); err == nil {
		t.Fatal("expected error without a basic layout object")
	}
}
