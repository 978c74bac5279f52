package tools

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/arcline/connect-mcp/internal/wizard"
)

func TestTemplateListGroupsByCategory(t *testing.T) {
	svc := newTestService(t)
	res, err := svc.TemplateList(context.Background(), reqWith(map[string]any{}))
	if err != nil || res.IsError {
		t.Fatalf("unexpected failure: err=%v res=%s", err, resultText(t, res))
	}

	var parsed struct {
		Total      int                 `json:"total"`
		Categories map[string][]struct {
			Name string `json:"name"`
			Path string `json:"path"`
		} `json:"categories"`
	}
	if err := json.Unmarshal([]byte(resultText(t, res)), &parsed); err != nil {
		t.Fatalf("result is not JSON: %v", err)
	}
	if parsed.Total == 0 {
		t.Fatal("expected embedded templates")
	}
	if len(parsed.Categories["cases"]) == 0 {
		t.Fatal("expected cases templates in the grouping")
	}
}

func TestTemplateGetUnknownIsToolError(t *testing.T) {
	svc := newTestService(t)
	res, err := svc.TemplateGet(context.Background(), reqWith(map[string]any{
		"category": "cases",
		"name":     "no_such_template",
	}))
	if err != nil {
		t.Fatalf("handler returned transport error: %v", err)
	}
	if !res.IsError {
		t.Fatal("expected tool error for an unknown template")
	}
	if got := resultText(t, res); !strings.Contains(got, "not found") {
		t.Fatalf("error text = %q", got)
	}
}

func TestTemplateCustomizeAppliesOverrides(t *testing.T) {
	svc := newTestService(t)
	res, err := svc.TemplateCustomize(context.Background(), reqWith(map[string]any{
		"category":  "cases",
		"name":      "general_support",
		"overrides": map[string]any{"name": "Custom Support"},
	}))
	if err != nil || res.IsError {
		t.Fatalf("unexpected failure: err=%v res=%s", err, resultText(t, res))
	}

	var parsed struct {
		Customized bool           `json:"customized"`
		Template   map[string]any `json:"template"`
	}
	if err := json.Unmarshal([]byte(resultText(t, res)), &parsed); err != nil {
		t.Fatalf("result is not JSON: %v", err)
	}
	if !parsed.Customized {
		t.Fatal("customized flag not set")
	}
	if parsed.Template["name"] != "Custom Support" {
		t.Fatalf("override not applied: %v", parsed.Template["name"])
	}
}

func TestWizardStartSetupPersistsRun(t *testing.T) {
	svc := newTestService(t)
	res, err := svc.WizardStartSetup(context.Background(), reqWith(map[string]any{
		"instance_name": "Acme Outdoors",
		"use_case":      "cases_enabled",
		"region":        "eu-west-2",
	}))
	if err != nil || res.IsError {
		t.Fatalf("unexpected failure: err=%v res=%s", err, resultText(t, res))
	}

	state, lerr := svc.wizardStore.Load("Acme Outdoors")
	if lerr != nil {
		t.Fatalf("run state was not persisted: %v", lerr)
	}
	if state.Region != "eu-west-2" {
		t.Fatalf("persisted region = %q", state.Region)
	}
	if state.Phase != wizard.PhaseNotStarted {
		t.Fatalf("fresh run phase = %q", state.Phase)
	}

	var parsed struct {
		Configuration struct {
			Features []string `json:"features"`
		} `json:"configuration"`
	}
	if err := json.Unmarshal([]byte(resultText(t, res)), &parsed); err != nil {
		t.Fatalf("result is not JSON: %v", err)
	}
	found := false
	for _, f := range parsed.Configuration.Features {
		if f == "cases" {
			found = true
		}
	}
	if !found {
		t.Fatalf("cases_enabled configuration lacks the cases feature: %v", parsed.Configuration.Features)
	}
}

func TestWizardStartSetupUnknownUseCaseFallsBack(t *testing.T) {
	svc := newTestService(t)
	res, err := svc.WizardStartSetup(context.Background(), reqWith(map[string]any{
		"instance_name": "Acme",
		"use_case":      "interdimensional",
	}))
	if err != nil || res.IsError {
		t.Fatalf("unexpected failure: err=%v res=%s", err, resultText(t, res))
	}
	var parsed struct {
		Configuration struct {
			Description string `json:"description"`
		} `json:"configuration"`
	}
	if err := json.Unmarshal([]byte(resultText(t, res)), &parsed); err != nil {
		t.Fatalf("result is not JSON: %v", err)
	}
	if !strings.Contains(parsed.Configuration.Description, "Basic contact center") {
		t.Fatalf("fallback configuration = %q", parsed.Configuration.Description)
	}
}

func TestWizardRunStatusListsRuns(t *testing.T) {
	svc := newTestService(t)
	for _, brand := range []string{"Beta Corp", "Acme"} {
		if _, err := svc.WizardStartSetup(context.Background(), reqWith(map[string]any{"instance_name": brand})); err != nil {
			t.Fatalf("start %s: %v", brand, err)
		}
	}

	res, err := svc.WizardRunStatus(context.Background(), reqWith(map[string]any{}))
	if err != nil || res.IsError {
		t.Fatalf("unexpected failure: err=%v res=%s", err, resultText(t, res))
	}
	var parsed struct {
		Runs []string `json:"runs"`
	}
	if err := json.Unmarshal([]byte(resultText(t, res)), &parsed); err != nil {
		t.Fatalf("result is not JSON: %v", err)
	}
	if len(parsed.Runs) != 2 {
		t.Fatalf("runs = %v", parsed.Runs)
	}

	res, err = svc.WizardRunStatus(context.Background(), reqWith(map[string]any{"brand": "Acme"}))
	if err != nil || res.IsError {
		t.Fatalf("unexpected failure: err=%v res=%s", err, resultText(t, res))
	}
	if got := resultText(t, res); !strings.Contains(got, `"brand": "Acme"`) {
		t.Fatalf("status output = %q", got)
	}
}

func TestWizardRunStatusUnknownBrand(t *testing.T) {
	svc := newTestService(t)
	res, err := svc.WizardRunStatus(context.Background(), reqWith(map[string]any{"brand": "Nobody"}))
	if err != nil {
		t.Fatalf("handler returned transport error: %v", err)
	}
	if !res.IsError {
		t.Fatal("expected tool error for an unknown run")
	}
}

func TestWizardGetIACTemplateFillsParameters(t *testing.T) {
	svc := newTestService(t)
	res, err := svc.WizardGetIACTemplate(context.Background(), reqWith(map[string]any{
		"instance_name":       "acme-support",
		"region":              "eu-central-1",
		"enable_contact_lens": false,
	}))
	if err != nil || res.IsError {
		t.Fatalf("unexpected failure: err=%v res=%s", err, resultText(t, res))
	}

	var parsed struct {
		TemplateType string            `json:"template_type"`
		Parameters   map[string]string `json:"parameters"`
		Template     map[string]any    `json:"template"`
		Commands     []string          `json:"deployment_commands"`
	}
	if err := json.Unmarshal([]byte(resultText(t, res)), &parsed); err != nil {
		t.Fatalf("result is not JSON: %v", err)
	}
	if parsed.TemplateType != "CloudFormation" {
		t.Fatalf("template_type = %q", parsed.TemplateType)
	}
	if parsed.Parameters["InstanceAlias"] != "acme-support" || parsed.Parameters["EnableContactLens"] != "false" {
		t.Fatalf("parameters = %v", parsed.Parameters)
	}
	if len(parsed.Template) == 0 {
		t.Fatal("expected the embedded CloudFormation document")
	}
	joined := strings.Join(parsed.Commands, "\n")
	if !strings.Contains(joined, "aws cloudformation create-stack") || !strings.Contains(joined, "eu-central-1") {
		t.Fatalf("deployment commands = %q", joined)
	}
}

func TestSessionLifecycle(t *testing.T) {
	svc := newTestService(t)

	res, err := svc.SessionSet(context.Background(), reqWith(map[string]any{"region": "ap-northeast-1"}))
	if err != nil || res.IsError {
		t.Fatalf("unexpected failure: err=%v res=%s", err, resultText(t, res))
	}
	if got := svc.session.Region(); got != "ap-northeast-1" {
		t.Fatalf("session region = %q", got)
	}

	res, err = svc.SessionGet(context.Background(), reqWith(map[string]any{}))
	if err != nil || res.IsError {
		t.Fatalf("unexpected failure: err=%v res=%s", err, resultText(t, res))
	}
	if got := resultText(t, res); !strings.Contains(got, "ap-northeast-1") {
		t.Fatalf("session_get output = %q", got)
	}

	if _, err := svc.SessionClear(context.Background(), reqWith(map[string]any{})); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if got := svc.session.Region(); got != "" {
		t.Fatalf("session region after clear = %q", got)
	}
}
