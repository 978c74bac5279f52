package templates

import (
	"reflect"
	"testing"

	"github.com/arcline/connect-mcp/internal/errs"
)

func TestListKnownCategory(t *testing.T) {
	infos := List("cases")
	if len(infos) == 0 {
		t.Fatal("expected case templates")
	}
	names := map[string]bool{}
	for _, in := range infos {
		if in.Category != "cases" {
			t.Fatalf("unexpected category %q", in.Category)
		}
		names[in.Name] = true
	}
	for _, want := range []string{"general_support", "billing_inquiry", "technical_support"} {
		if !names[want] {
			t.Fatalf("missing template %q in %v", want, names)
		}
	}
}

func TestListUnknownCategoryIsEmptyNotError(t *testing.T) {
	if infos := List("no_such_category"); len(infos) != 0 {
		t.Fatalf("expected empty list, got %v", infos)
	}
}

func TestListAllIncludesSubcategories(t *testing.T) {
	var found bool
	for _, in := range List("") {
		if in.Category == "routing" && in.Subcategory == "hours_of_operation" && in.Name == "business_hours" {
			found = true
		}
	}
	if !found {
		t.Fatal("expected routing/hours_of_operation/business_hours in full listing")
	}
}

func TestGetMissingTemplateIsNotFound(t *testing.T) {
	_, err := Get("cases", "does_not_exist", "")
	if err == nil {
		t.Fatal("expected error")
	}
	if !errs.IsNotFound(err) {
		t.Fatalf("expected NotFoundError, got %T: %v", err, err)
	}
}

func TestGetReturnsIndependentCopies(t *testing.T) {
	a, err := Get("cases", "billing_inquiry", "")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	b, err := Get("cases", "billing_inquiry", "")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	a["name"] = "mutated"
	if b["name"] != "Billing Inquiry" {
		t.Fatalf("mutation leaked between copies: %v", b["name"])
	}
	c, _ := Get("cases", "billing_inquiry", "")
	if c["name"] != "Billing Inquiry" {
		t.Fatalf("mutation leaked into store: %v", c["name"])
	}
}

func TestCustomizeEmptyOverridesEqualsGet(t *testing.T) {
	got, err := Customize("cases", "billing_inquiry", "", map[string]any{})
	if err != nil {
		t.Fatalf("customize: %v", err)
	}
	want, err := Get("cases", "billing_inquiry", "")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("customize with empty overrides diverged:\n got %v\nwant %v", got, want)
	}
}

func TestCustomizeTopLevelOverride(t *testing.T) {
	got, err := Customize("cases", "billing_inquiry", "", map[string]any{"name": "Custom Billing Template"})
	if err != nil {
		t.Fatalf("customize: %v", err)
	}
	if got["name"] != "Custom Billing Template" {
		t.Fatalf("override not applied: %v", got["name"])
	}
	want, _ := Get("cases", "billing_inquiry", "")
	want["name"] = "Custom Billing Template"
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("fields other than name changed:\n got %v\nwant %v", got, want)
	}
}

func TestGetSubcategoryTemplate(t *testing.T) {
	doc, err := Get("routing", "business_hours", "hours_of_operation")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if doc["timeZone"] != "America/New_York" {
		t.Fatalf("unexpected timeZone: %v", doc["timeZone"])
	}
}

func TestGetCloudFormationYAMLDecodesIntrinsics(t *testing.T) {
	doc, err := Get("iac", "basic_instance", "cloudformation")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	resources, ok := doc["Resources"].(map[string]any)
	if !ok {
		t.Fatalf("Resources missing: %v", doc)
	}
	instance, ok := resources["ConnectInstance"].(map[string]any)
	if !ok {
		t.Fatal("ConnectInstance missing")
	}
	props := instance["Properties"].(map[string]any)
	ref, ok := props["InstanceAlias"].(map[string]any)
	if !ok || ref["Ref"] != "InstanceAlias" {
		t.Fatalf("expected {Ref: InstanceAlias}, got %v", props["InstanceAlias"])
	}

	hours := resources["BusinessHours"].(map[string]any)
	hprops := hours["Properties"].(map[string]any)
	getatt, ok := hprops["InstanceArn"].(map[string]any)
	if !ok {
		t.Fatalf("expected GetAtt mapping, got %v", hprops["InstanceArn"])
	}
	attr, ok := getatt["Fn::GetAtt"].([]any)
	if !ok || len(attr) != 2 || attr[0] != "ConnectInstance" || attr[1] != "Arn" {
		t.Fatalf("unexpected Fn::GetAtt: %v", getatt["Fn::GetAtt"])
	}
	sub, ok := hprops["Name"].(map[string]any)
	if !ok || sub["Fn::Sub"] != "${InstanceAlias}-business-hours" {
		t.Fatalf("unexpected Fn::Sub: %v", hprops["Name"])
	}
}
