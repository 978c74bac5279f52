package wizard

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/connect"
	connecttypes "github.com/aws/aws-sdk-go-v2/service/connect/types"
	"github.com/aws/aws-sdk-go-v2/service/connectcases"
	casetypes "github.com/aws/aws-sdk-go-v2/service/connectcases/types"
	"github.com/aws/aws-sdk-go-v2/service/customerprofiles"
	"github.com/aws/aws-sdk-go-v2/service/qconnect"
	qctypes "github.com/aws/aws-sdk-go-v2/service/qconnect/types"

	"github.com/arcline/connect-mcp/internal/awsregistry"
	"github.com/arcline/connect-mcp/internal/errs"
	"github.com/arcline/connect-mcp/internal/logger"
	"github.com/arcline/connect-mcp/internal/templates"
)

// Resource keys recorded in RunState.Resources. Every identifier is scoped
// to the run's region.
const (
	ResInstanceID      = "instance_id"
	ResHoursID         = "hours_of_operation_id"
	ResQueueID         = "queue_id"
	ResRoutingProfile  = "routing_profile_id"
	ResProfileDomain   = "profile_domain"
	ResCaseDomainID    = "case_domain_id"
	ResCaseFieldID     = "case_field_id"
	ResCaseTemplateID  = "case_template_id"
	ResAssistantID     = "assistant_id"
	ResKnowledgeBaseID = "knowledge_base_id"
	ResKBAssociation   = "kb_association_id"
)

// Deps carries everything the provisioning steps need.
type Deps struct {
	Registry *awsregistry.Registry
	// HTTP uploads knowledge-base content to presigned URLs.
	HTTP *http.Client
}

// DefaultSteps returns the fixed onboarding checklist. Order encodes the
// dependency chain: instance before routing, routing before domains,
// profile domain before case domain, knowledge base last.
func DefaultSteps(deps Deps) []Step {
	if deps.HTTP == nil {
		deps.HTTP = &http.Client{Timeout: 60 * time.Second}
	}
	return []Step{
		{
			ID: "create_instance", Name: "Create Connect instance", ResourceKey: ResInstanceID,
			Run: func(ctx context.Context, rc *RunContext) (string, error) {
				client, err := deps.Registry.Connect(ctx, rc.State.Region)
				if err != nil {
					return "", err
				}
				out, err := client.CreateInstance(ctx, &connect.CreateInstanceInput{
					IdentityManagementType: connecttypes.DirectoryTypeConnectManaged,
					InstanceAlias:          aws.String(slug(rc.State.Brand)),
					InboundCallsEnabled:    aws.Bool(true),
					OutboundCallsEnabled:   aws.Bool(true),
				})
				if err != nil {
					return "", errs.Remote("create_instance", err)
				}
				return aws.ToString(out.Id), nil
			},
		},
		{
			ID: "wait_instance_active", Name: "Wait for instance to become active",
			Run: func(ctx context.Context, rc *RunContext) (string, error) {
				client, err := deps.Registry.Connect(ctx, rc.State.Region)
				if err != nil {
					return "", err
				}
				instanceID, err := rc.Resource(ResInstanceID)
				if err != nil {
					return "", err
				}
				err = rc.Poll(ctx, "instance", func(ctx context.Context) error {
					out, derr := client.DescribeInstance(ctx, &connect.DescribeInstanceInput{
						InstanceId: aws.String(instanceID),
					})
					if derr != nil {
						return errs.Remote("describe_instance", derr)
					}
					switch status := out.Instance.InstanceStatus; status {
					case connecttypes.InstanceStatusActive:
						return nil
					case connecttypes.InstanceStatusCreationInProgress:
						return StillProvisioning(string(status))
					default:
						return fmt.Errorf("instance entered status %s", status)
					}
				})
				return "", err
			},
		},
		{
			ID: "create_hours_of_operation", Name: "Create hours of operation", ResourceKey: ResHoursID,
			Run: func(ctx context.Context, rc *RunContext) (string, error) {
				client, err := deps.Registry.Connect(ctx, rc.State.Region)
				if err != nil {
					return "", err
				}
				instanceID, err := rc.Resource(ResInstanceID)
				if err != nil {
					return "", err
				}
				hoursCfg, tz, err := hoursFromTemplate()
				if err != nil {
					return "", err
				}
				out, err := client.CreateHoursOfOperation(ctx, &connect.CreateHoursOfOperationInput{
					InstanceId: aws.String(instanceID),
					Name:       aws.String("Business Hours"),
					TimeZone:   aws.String(tz),
					Config:     hoursCfg,
				})
				if err != nil {
					return "", errs.Remote("create_hours_of_operation", err)
				}
				return aws.ToString(out.HoursOfOperationId), nil
			},
		},
		{
			ID: "create_queue", Name: "Create inbound queue", ResourceKey: ResQueueID,
			Run: func(ctx context.Context, rc *RunContext) (string, error) {
				client, err := deps.Registry.Connect(ctx, rc.State.Region)
				if err != nil {
					return "", err
				}
				instanceID, err := rc.Resource(ResInstanceID)
				if err != nil {
					return "", err
				}
				hoursID, err := rc.Resource(ResHoursID)
				if err != nil {
					return "", err
				}
				out, err := client.CreateQueue(ctx, &connect.CreateQueueInput{
					InstanceId:         aws.String(instanceID),
					Name:               aws.String("General Support"),
					Description:        aws.String("Default inbound queue"),
					HoursOfOperationId: aws.String(hoursID),
				})
				if err != nil {
					return "", errs.Remote("create_queue", err)
				}
				return aws.ToString(out.QueueId), nil
			},
		},
		{
			ID: "create_routing_profile", Name: "Create routing profile", ResourceKey: ResRoutingProfile,
			Run: func(ctx context.Context, rc *RunContext) (string, error) {
				client, err := deps.Registry.Connect(ctx, rc.State.Region)
				if err != nil {
					return "", err
				}
				instanceID, err := rc.Resource(ResInstanceID)
				if err != nil {
					return "", err
				}
				queueID, err := rc.Resource(ResQueueID)
				if err != nil {
					return "", err
				}
				out, err := client.CreateRoutingProfile(ctx, &connect.CreateRoutingProfileInput{
					InstanceId:             aws.String(instanceID),
					Name:                   aws.String("Support Agent"),
					Description:            aws.String("Routing profile for frontline support agents"),
					DefaultOutboundQueueId: aws.String(queueID),
					MediaConcurrencies: []connecttypes.MediaConcurrency{
						{Channel: connecttypes.ChannelVoice, Concurrency: aws.Int32(1)},
						{Channel: connecttypes.ChannelChat, Concurrency: aws.Int32(2)},
					},
				})
				if err != nil {
					return "", errs.Remote("create_routing_profile", err)
				}
				return aws.ToString(out.RoutingProfileId), nil
			},
		},
		{
			ID: "create_profile_domain", Name: "Create customer profiles domain", ResourceKey: ResProfileDomain,
			Run: func(ctx context.Context, rc *RunContext) (string, error) {
				client, err := deps.Registry.Profiles(ctx, rc.State.Region)
				if err != nil {
					return "", err
				}
				name := slug(rc.State.Brand) + "-profiles"
				out, err := client.CreateDomain(ctx, &customerprofiles.CreateDomainInput{
					DomainName:            aws.String(name),
					DefaultExpirationDays: aws.Int32(365),
				})
				if err != nil {
					return "", errs.Remote("profiles_create_domain", err)
				}
				return aws.ToString(out.DomainName), nil
			},
		},
		{
			ID: "create_case_domain", Name: "Create case domain", ResourceKey: ResCaseDomainID,
			Run: func(ctx context.Context, rc *RunContext) (string, error) {
				// Profile domain first: case fields referencing customer
				// profile data need the profiles domain in place.
				if _, err := rc.Resource(ResProfileDomain); err != nil {
					return "", err
				}
				client, err := deps.Registry.Cases(ctx, rc.State.Region)
				if err != nil {
					return "", err
				}
				out, err := client.CreateDomain(ctx, &connectcases.CreateDomainInput{
					Name: aws.String(slug(rc.State.Brand) + "-cases"),
				})
				if err != nil {
					return "", errs.Remote("cases_create_domain", err)
				}
				return aws.ToString(out.DomainId), nil
			},
		},
		{
			ID: "wait_case_domain_active", Name: "Wait for case domain to become active",
			Run: func(ctx context.Context, rc *RunContext) (string, error) {
				client, err := deps.Registry.Cases(ctx, rc.State.Region)
				if err != nil {
					return "", err
				}
				domainID, err := rc.Resource(ResCaseDomainID)
				if err != nil {
					return "", err
				}
				err = rc.Poll(ctx, "case domain", func(ctx context.Context) error {
					out, derr := client.GetDomain(ctx, &connectcases.GetDomainInput{
						DomainId: aws.String(domainID),
					})
					if derr != nil {
						return errs.Remote("cases_get_domain", derr)
					}
					switch status := out.DomainStatus; status {
					case casetypes.DomainStatusActive:
						return nil
					case casetypes.DomainStatusCreationInProgress:
						return StillProvisioning(string(status))
					default:
						return fmt.Errorf("case domain entered status %s", status)
					}
				})
				return "", err
			},
		},
		{
			ID: "create_case_field", Name: "Create summary case field", ResourceKey: ResCaseFieldID,
			Run: func(ctx context.Context, rc *RunContext) (string, error) {
				client, err := deps.Registry.Cases(ctx, rc.State.Region)
				if err != nil {
					return "", err
				}
				domainID, err := rc.Resource(ResCaseDomainID)
				if err != nil {
					return "", err
				}
				out, err := client.CreateField(ctx, &connectcases.CreateFieldInput{
					DomainId:    aws.String(domainID),
					Name:        aws.String("summary"),
					Type:        casetypes.FieldTypeText,
					Description: aws.String("Free-text summary of the case"),
				})
				if err != nil {
					return "", errs.Remote("cases_create_field", err)
				}
				return aws.ToString(out.FieldId), nil
			},
		},
		{
			ID: "create_case_template", Name: "Create case template", ResourceKey: ResCaseTemplateID,
			Run: func(ctx context.Context, rc *RunContext) (string, error) {
				client, err := deps.Registry.Cases(ctx, rc.State.Region)
				if err != nil {
					return "", err
				}
				domainID, err := rc.Resource(ResCaseDomainID)
				if err != nil {
					return "", err
				}
				fieldID, err := rc.Resource(ResCaseFieldID)
				if err != nil {
					return "", err
				}
				out, err := client.CreateTemplate(ctx, &connectcases.CreateTemplateInput{
					DomainId:    aws.String(domainID),
					Name:        aws.String("General Support"),
					Description: aws.String("Default case template"),
					Status:      casetypes.TemplateStatusActive,
					RequiredFields: []casetypes.RequiredField{
						{FieldId: aws.String(fieldID)},
					},
				})
				if err != nil {
					return "", errs.Remote("cases_create_template", err)
				}
				return aws.ToString(out.TemplateId), nil
			},
		},
		{
			ID: "create_assistant", Name: "Create Q in Connect assistant", ResourceKey: ResAssistantID,
			Run: func(ctx context.Context, rc *RunContext) (string, error) {
				client, err := deps.Registry.QConnect(ctx, rc.State.Region)
				if err != nil {
					return "", err
				}
				out, err := client.CreateAssistant(ctx, &qconnect.CreateAssistantInput{
					Name: aws.String(slug(rc.State.Brand) + "-assistant"),
					Type: qctypes.AssistantTypeAgent,
				})
				if err != nil {
					return "", errs.Remote("ai_create_assistant", err)
				}
				return aws.ToString(out.Assistant.AssistantId), nil
			},
		},
		{
			ID: "create_knowledge_base", Name: "Create FAQ knowledge base", ResourceKey: ResKnowledgeBaseID,
			Run: func(ctx context.Context, rc *RunContext) (string, error) {
				client, err := deps.Registry.QConnect(ctx, rc.State.Region)
				if err != nil {
					return "", err
				}
				out, err := client.CreateKnowledgeBase(ctx, &qconnect.CreateKnowledgeBaseInput{
					Name:              aws.String(slug(rc.State.Brand) + "-faq"),
					KnowledgeBaseType: qctypes.KnowledgeBaseTypeCustom,
				})
				if err != nil {
					return "", errs.Remote("ai_create_knowledge_base", err)
				}
				return aws.ToString(out.KnowledgeBase.KnowledgeBaseId), nil
			},
		},
		{
			ID: "associate_knowledge_base", Name: "Associate knowledge base with assistant", ResourceKey: ResKBAssociation,
			Run: func(ctx context.Context, rc *RunContext) (string, error) {
				client, err := deps.Registry.QConnect(ctx, rc.State.Region)
				if err != nil {
					return "", err
				}
				assistantID, err := rc.Resource(ResAssistantID)
				if err != nil {
					return "", err
				}
				kbID, err := rc.Resource(ResKnowledgeBaseID)
				if err != nil {
					return "", err
				}
				out, err := client.CreateAssistantAssociation(ctx, &qconnect.CreateAssistantAssociationInput{
					AssistantId:     aws.String(assistantID),
					AssociationType: qctypes.AssociationTypeKnowledgeBase,
					Association: &qctypes.AssistantAssociationInputDataMemberKnowledgeBaseId{
						Value: kbID,
					},
				})
				if err != nil {
					return "", errs.Remote("ai_associate_knowledge_base", err)
				}
				return aws.ToString(out.AssistantAssociation.AssistantAssociationId), nil
			},
		},
		{
			ID: "ingest_faq_content", Name: "Ingest FAQ articles into knowledge base",
			Run: func(ctx context.Context, rc *RunContext) (string, error) {
				if rc.State.Discovery == nil || len(rc.State.Discovery.FAQs) == 0 {
					logger.Info("[WIZARD] no FAQ entries discovered, skipping ingestion")
					return "", nil
				}
				client, err := deps.Registry.QConnect(ctx, rc.State.Region)
				if err != nil {
					return "", err
				}
				kbID, err := rc.Resource(ResKnowledgeBaseID)
				if err != nil {
					return "", err
				}
				for _, artifact := range BuildArtifacts(rc.State.Discovery.FAQs) {
					if err := ingestArtifact(ctx, client, deps.HTTP, kbID, artifact); err != nil {
						return "", err
					}
				}
				return "", nil
			},
		},
	}
}

// ingestArtifact uploads one artifact to a presigned URL and registers it as
// knowledge-base content.
func ingestArtifact(ctx context.Context, client awsregistry.QConnectAPI, httpClient *http.Client, kbID string, artifact Artifact) error {
	upload, err := client.StartContentUpload(ctx, &qconnect.StartContentUploadInput{
		KnowledgeBaseId: aws.String(kbID),
		ContentType:     aws.String("text/plain"),
	})
	if err != nil {
		return errs.Remote("ai_start_content_upload", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, aws.ToString(upload.Url), bytes.NewReader([]byte(artifact.Content)))
	if err != nil {
		return fmt.Errorf("upload %s: %w", artifact.Name, err)
	}
	for k, v := range upload.HeadersToInclude {
		req.Header.Set(k, v)
	}
	resp, err := httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("upload %s: %w", artifact.Name, err)
	}
	resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("upload %s: presigned PUT returned %s", artifact.Name, resp.Status)
	}

	if _, err := client.CreateContent(ctx, &qconnect.CreateContentInput{
		KnowledgeBaseId: aws.String(kbID),
		Name:            aws.String(artifact.Name),
		UploadId:        upload.UploadId,
	}); err != nil {
		return errs.Remote("ai_create_content", err)
	}
	logger.Debug("[WIZARD] ingested %s (%d bytes)", artifact.Name, len(artifact.Content))
	return nil
}

// hoursFromTemplate builds the typed hours-of-operation config from the
// stored business_hours template so the wizard and the template library
// cannot drift apart.
func hoursFromTemplate() ([]connecttypes.HoursOfOperationConfig, string, error) {
	doc, err := templates.Get("routing", "business_hours", "hours_of_operation")
	if err != nil {
		return nil, "", err
	}
	tz, _ := doc["timeZone"].(string)
	if tz == "" {
		tz = "UTC"
	}
	raw, _ := doc["config"].([]any)
	var cfg []connecttypes.HoursOfOperationConfig
	for _, item := range raw {
		m, ok := item.(map[string]any)
		if !ok {
			continue
		}
		day, _ := m["day"].(string)
		cfg = append(cfg, connecttypes.HoursOfOperationConfig{
			Day:       connecttypes.HoursOfOperationDays(day),
			StartTime: timeSlice(m["startTime"]),
			EndTime:   timeSlice(m["endTime"]),
		})
	}
	if len(cfg) == 0 {
		return nil, "", fmt.Errorf("business_hours template has no config entries")
	}
	return cfg, tz, nil
}

func timeSlice(v any) *connecttypes.HoursOfOperationTimeSlice {
	m, ok := v.(map[string]any)
	if !ok {
		return &connecttypes.HoursOfOperationTimeSlice{Hours: aws.Int32(0), Minutes: aws.Int32(0)}
	}
	h, _ := m["hours"].(float64)
	min, _ := m["minutes"].(float64)
	return &connecttypes.HoursOfOperationTimeSlice{Hours: aws.Int32(int32(h)), Minutes: aws.Int32(int32(min))}
}
