package tools

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/arcline/connect-mcp/internal/templates"
	"github.com/arcline/connect-mcp/internal/wizard"
)

// useCaseConfig is the recommended setup for one wizard use case.
type useCaseConfig struct {
	Description string         `json:"description"`
	Features    []string       `json:"features"`
	Templates   map[string]any `json:"templates"`
	NextSteps   []string       `json:"next_steps"`
}

var useCaseConfigs = map[string]useCaseConfig{
	"basic": {
		Description: "Basic contact center with voice and chat",
		Features:    []string{"voice", "chat", "basic_routing"},
		Templates: map[string]any{
			"hours":   "routing/hours_of_operation/business_hours",
			"queue":   "routing/queues/general_support",
			"profile": "routing/profiles/support_agent",
			"iac":     "iac/cloudformation/basic_instance",
		},
		NextSteps: []string{"wizard_resume", "wizard_run_status"},
	},
	"cases_enabled": {
		Description: "Contact center with case management",
		Features:    []string{"voice", "chat", "basic_routing", "cases"},
		Templates: map[string]any{
			"hours":         "routing/hours_of_operation/business_hours",
			"queue":         "routing/queues/general_support",
			"profile":       "routing/profiles/support_agent",
			"case_template": "cases/general_support",
		},
		NextSteps: []string{"wizard_resume", "wizard_run_status"},
	},
	"ai_enhanced": {
		Description: "Contact center with AI assistance (Amazon Q in Connect)",
		Features:    []string{"voice", "chat", "basic_routing", "cases", "amazon_q", "step_by_step_guides"},
		Templates: map[string]any{
			"hours":           "routing/hours_of_operation/business_hours",
			"queue":           "routing/queues/general_support",
			"profile":         "routing/profiles/support_agent",
			"case_template":   "cases/general_support",
			"screen_pop":      "views/screen_pop",
			"topic_selection": "views/topic_selection",
		},
		NextSteps: []string{"wizard_resume", "wizard_run_status"},
	},
	"full_enterprise": {
		Description: "Full enterprise contact center with all features",
		Features: []string{
			"voice", "chat", "email", "tasks", "cases", "amazon_q",
			"customer_profiles", "contact_lens", "outbound_campaigns", "data_tables",
		},
		Templates: map[string]any{
			"hours":          "routing/hours_of_operation/business_hours",
			"queue":          "routing/queues/general_support",
			"profile":        "routing/profiles/support_agent",
			"case_templates": []string{"cases/general_support", "cases/billing_inquiry", "cases/technical_support"},
			"views":          []string{"views/screen_pop", "views/topic_selection", "views/case_creation_form", "views/call_disposition"},
			"data_tables":    []string{"data_tables/holiday_schedule", "data_tables/emergency_routing"},
		},
		NextSteps: []string{"wizard_resume", "wizard_run_status"},
	},
}

// WizardStartSetup creates (or reopens) an onboarding run and returns the
// recommended configuration for the use case. When a website URL is given the
// brand's site is fetched and the extracted facts are stored on the run for
// the knowledge-base steps.
func (s *Service) WizardStartSetup(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	useCase := optString(req, "use_case", "basic")
	instanceName, errRes := argString(req, "instance_name")
	if errRes != nil {
		return errRes, nil
	}
	region := optString(req, "region", "us-east-1")

	cfg, ok := useCaseConfigs[useCase]
	if !ok {
		cfg = useCaseConfigs["basic"]
	}

	state, err := s.wizardStore.LoadOrCreate(instanceName, region)
	if err != nil {
		return errResult(err), nil
	}

	if siteURL := optString(req, "website_url", ""); siteURL != "" && state.Discovery == nil {
		result, derr := s.discoverer.Discover(ctx, siteURL)
		if derr != nil {
			return errResult(derr), nil
		}
		state.Discovery = result
		state.Phase = wizard.PhaseDiscovery
		if err := s.wizardStore.Save(state); err != nil {
			return errResult(err), nil
		}
	} else if err := s.wizardStore.Save(state); err != nil {
		return errResult(err), nil
	}

	return jsonResult(map[string]any{
		"wizard_session": map[string]any{
			"use_case":      useCase,
			"instance_name": instanceName,
			"region":        state.Region,
			"status":        "started",
			"phase":         state.Phase,
			"state_file":    s.wizardStore.Path(instanceName),
		},
		"configuration": cfg,
		"message":       fmt.Sprintf("Wizard started for %q setup. Call wizard_resume to provision, wizard_run_status to inspect progress.", useCase),
	}), nil
}

// WizardRunStatus reports one run, or lists all runs when brand is omitted.
func (s *Service) WizardRunStatus(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	brand := optString(req, "brand", optString(req, "instance_name", ""))
	if brand == "" {
		brands, err := s.wizardStore.List()
		if err != nil {
			return errResult(err), nil
		}
		return jsonResult(map[string]any{"runs": brands}), nil
	}
	state, err := s.wizardStore.Load(brand)
	if err != nil {
		return errResult(err), nil
	}
	return jsonResult(state), nil
}

// WizardResume executes the provisioning checklist for a run, skipping
// completed steps and retrying a previously failed one. It returns the final
// state whether the run finished or stopped on a failure.
func (s *Service) WizardResume(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	brand := optString(req, "brand", optString(req, "instance_name", ""))
	if brand == "" {
		return mcp.NewToolResultError("brand is required"), nil
	}
	state, err := s.wizardStore.Load(brand)
	if err != nil {
		return errResult(err), nil
	}

	steps := wizard.DefaultSteps(wizard.Deps{Registry: s.registry, HTTP: s.httpClient})
	runner := wizard.NewRunner(s.wizardStore, steps, s.wizardCfg.PollInterval(), s.wizardCfg.MaxPollAttempts)
	runErr := runner.Run(ctx, state)

	result := map[string]any{"state": state}
	if runErr != nil {
		result["error"] = runErr.Error()
	} else {
		result["message"] = "onboarding complete"
	}
	return jsonResult(result), nil
}

// WizardGetIACTemplate returns the embedded CloudFormation blueprint with
// filled-in parameters and copy-paste deployment commands.
func (s *Service) WizardGetIACTemplate(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	useCase := optString(req, "use_case", "basic")
	instanceName := optString(req, "instance_name", "my-connect-instance")
	region := optString(req, "region", "us-east-1")
	timezone := optString(req, "timezone", "America/New_York")
	contactLens := "false"
	if optBool(req, "enable_contact_lens", true) {
		contactLens = "true"
	}

	doc, err := templates.Get("iac", "basic_instance", "cloudformation")
	if err != nil {
		return errResult(err), nil
	}

	return jsonResult(map[string]any{
		"template_type": "CloudFormation",
		"use_case":      useCase,
		"parameters": map[string]string{
			"InstanceAlias":     instanceName,
			"Timezone":          timezone,
			"EnableContactLens": contactLens,
		},
		"template": doc,
		"deployment_commands": []string{
			"# Deploy using AWS CLI",
			"aws cloudformation create-stack \\",
			fmt.Sprintf("  --stack-name %s-connect \\", instanceName),
			"  --template-body file://basic_instance.yaml \\",
			fmt.Sprintf("  --parameters ParameterKey=InstanceAlias,ParameterValue=%s \\", instanceName),
			fmt.Sprintf("               ParameterKey=Timezone,ParameterValue=%s \\", timezone),
			fmt.Sprintf("               ParameterKey=EnableContactLens,ParameterValue=%s \\", contactLens),
			fmt.Sprintf("  --region %s", region),
			"",
			"# Or deploy using SAM CLI",
			fmt.Sprintf("sam deploy --template-file basic_instance.yaml --stack-name %s-connect --region %s --guided", instanceName, region),
		},
	}), nil
}
