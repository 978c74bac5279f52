package tools

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/connect"
	connecttypes "github.com/aws/aws-sdk-go-v2/service/connect/types"
	"github.com/aws/aws-sdk-go-v2/service/connectcampaignsv2"
	campaigntypes "github.com/aws/aws-sdk-go-v2/service/connectcampaignsv2/types"
	"github.com/aws/aws-sdk-go-v2/service/customerprofiles"
	"github.com/aws/aws-sdk-go-v2/service/qconnect"
	qctypes "github.com/aws/aws-sdk-go-v2/service/qconnect/types"
	"github.com/aws/smithy-go"
	"github.com/mark3labs/mcp-go/mcp"

	"github.com/arcline/connect-mcp/internal/awsregistry"
	"github.com/arcline/connect-mcp/internal/config"
)

// Fakes embed the API interface so only the methods a test overrides need
// implementing; calling anything else panics, which is what we want.
type fakeConnect struct {
	awsregistry.ConnectAPI
	describeInstance func(context.Context, *connect.DescribeInstanceInput, ...func(*connect.Options)) (*connect.DescribeInstanceOutput, error)
	listQueues       func(context.Context, *connect.ListQueuesInput, ...func(*connect.Options)) (*connect.ListQueuesOutput, error)
	currentMetrics   func(context.Context, *connect.GetCurrentMetricDataInput, ...func(*connect.Options)) (*connect.GetCurrentMetricDataOutput, error)
}

func (f *fakeConnect) DescribeInstance(ctx context.Context, p *connect.DescribeInstanceInput, o ...func(*connect.Options)) (*connect.DescribeInstanceOutput, error) {
	return f.describeInstance(ctx, p, o...)
}

func (f *fakeConnect) ListQueues(ctx context.Context, p *connect.ListQueuesInput, o ...func(*connect.Options)) (*connect.ListQueuesOutput, error) {
	return f.listQueues(ctx, p, o...)
}

func (f *fakeConnect) GetCurrentMetricData(ctx context.Context, p *connect.GetCurrentMetricDataInput, o ...func(*connect.Options)) (*connect.GetCurrentMetricDataOutput, error) {
	return f.currentMetrics(ctx, p, o...)
}

type fakeProfiles struct {
	awsregistry.ProfilesAPI
	searchProfiles func(context.Context, *customerprofiles.SearchProfilesInput, ...func(*customerprofiles.Options)) (*customerprofiles.SearchProfilesOutput, error)
}

func (f *fakeProfiles) SearchProfiles(ctx context.Context, p *customerprofiles.SearchProfilesInput, o ...func(*customerprofiles.Options)) (*customerprofiles.SearchProfilesOutput, error) {
	return f.searchProfiles(ctx, p, o...)
}

type fakeCampaigns struct {
	awsregistry.CampaignsAPI
	createCampaign func(context.Context, *connectcampaignsv2.CreateCampaignInput, ...func(*connectcampaignsv2.Options)) (*connectcampaignsv2.CreateCampaignOutput, error)
}

func (f *fakeCampaigns) CreateCampaign(ctx context.Context, p *connectcampaignsv2.CreateCampaignInput, o ...func(*connectcampaignsv2.Options)) (*connectcampaignsv2.CreateCampaignOutput, error) {
	return f.createCampaign(ctx, p, o...)
}

type fakeQConnect struct {
	awsregistry.QConnectAPI
	listAssistants func(context.Context, *qconnect.ListAssistantsInput, ...func(*qconnect.Options)) (*qconnect.ListAssistantsOutput, error)
	queryAssistant func(context.Context, *qconnect.QueryAssistantInput, ...func(*qconnect.Options)) (*qconnect.QueryAssistantOutput, error)
}

func (f *fakeQConnect) ListAssistants(ctx context.Context, p *qconnect.ListAssistantsInput, o ...func(*qconnect.Options)) (*qconnect.ListAssistantsOutput, error) {
	return f.listAssistants(ctx, p, o...)
}

func (f *fakeQConnect) QueryAssistant(ctx context.Context, p *qconnect.QueryAssistantInput, o ...func(*qconnect.Options)) (*qconnect.QueryAssistantOutput, error) {
	return f.queryAssistant(ctx, p, o...)
}

func stubLoader(ctx context.Context, region, profile string) (aws.Config, error) {
	return aws.Config{Region: region}, nil
}

func newTestService(t *testing.T, opts ...awsregistry.Option) *Service {
	t.Helper()
	cfg := config.Default()
	cfg.Wizard.StateDir = t.TempDir()
	opts = append([]awsregistry.Option{awsregistry.WithConfigLoader(stubLoader)}, opts...)
	return NewService(cfg, awsregistry.New("us-west-2", "", opts...))
}

func resultText(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	if res == nil {
		t.Fatal("nil tool result")
	}
	var sb strings.Builder
	for _, c := range res.Content {
		if tc, ok := c.(mcp.TextContent); ok {
			sb.WriteString(tc.Text)
		}
	}
	return sb.String()
}

func TestDescribeInstanceMissingArg(t *testing.T) {
	svc := newTestService(t)
	res, err := svc.DescribeInstance(context.Background(), reqWith(map[string]any{}))
	if err != nil {
		t.Fatalf("handler returned transport error: %v", err)
	}
	if !res.IsError {
		t.Fatal("expected tool error for missing instance_id")
	}
	if got := resultText(t, res); !strings.Contains(got, "instance_id is required") {
		t.Fatalf("error text = %q", got)
	}
}

func TestDescribeInstanceUsesSessionRegion(t *testing.T) {
	var gotRegions []string
	fc := &fakeConnect{
		describeInstance: func(ctx context.Context, p *connect.DescribeInstanceInput, _ ...func(*connect.Options)) (*connect.DescribeInstanceOutput, error) {
			return &connect.DescribeInstanceOutput{
				Instance: &connecttypes.Instance{Id: p.InstanceId},
			}, nil
		},
	}
	svc := newTestService(t, awsregistry.WithConnectConstructor(func(c aws.Config) awsregistry.ConnectAPI {
		gotRegions = append(gotRegions, c.Region)
		return fc
	}))

	svc.session.SetRegion("eu-west-2")
	res, err := svc.DescribeInstance(context.Background(), reqWith(map[string]any{"instance_id": "i-1"}))
	if err != nil || res.IsError {
		t.Fatalf("unexpected failure: err=%v res=%s", err, resultText(t, res))
	}
	if len(gotRegions) != 1 || gotRegions[0] != "eu-west-2" {
		t.Fatalf("constructed client regions = %v, want session region", gotRegions)
	}

	// Explicit region argument beats the session default.
	res, err = svc.DescribeInstance(context.Background(), reqWith(map[string]any{"instance_id": "i-2", "region": "ap-southeast-2"}))
	if err != nil || res.IsError {
		t.Fatalf("unexpected failure: err=%v res=%s", err, resultText(t, res))
	}
	if gotRegions[len(gotRegions)-1] != "ap-southeast-2" {
		t.Fatalf("constructed client regions = %v, want explicit region last", gotRegions)
	}
}

func TestListQueuesIsCached(t *testing.T) {
	calls := 0
	fc := &fakeConnect{
		listQueues: func(ctx context.Context, p *connect.ListQueuesInput, _ ...func(*connect.Options)) (*connect.ListQueuesOutput, error) {
			calls++
			return &connect.ListQueuesOutput{QueueSummaryList: []connecttypes.QueueSummary{
				{Id: aws.String("q-1"), Name: aws.String("General Support")},
			}}, nil
		},
	}
	svc := newTestService(t, awsregistry.WithConnectConstructor(func(aws.Config) awsregistry.ConnectAPI { return fc }))

	args := map[string]any{"instance_id": "i-1"}
	for i := 0; i < 3; i++ {
		res, err := svc.ListQueues(context.Background(), reqWith(args))
		if err != nil || res.IsError {
			t.Fatalf("call %d failed: err=%v res=%s", i, err, resultText(t, res))
		}
	}
	if calls != 1 {
		t.Fatalf("ListQueues hit the API %d times, want 1 (cached)", calls)
	}

	// A different argument set is a different cache key.
	res, err := svc.ListQueues(context.Background(), reqWith(map[string]any{"instance_id": "i-1", "max_results": float64(5)}))
	if err != nil || res.IsError {
		t.Fatalf("unexpected failure: err=%v res=%s", err, resultText(t, res))
	}
	if calls != 2 {
		t.Fatalf("ListQueues hit the API %d times, want 2", calls)
	}
}

func TestRemoteErrorKeepsUpstreamCode(t *testing.T) {
	fc := &fakeConnect{
		describeInstance: func(ctx context.Context, p *connect.DescribeInstanceInput, _ ...func(*connect.Options)) (*connect.DescribeInstanceOutput, error) {
			return nil, &smithy.GenericAPIError{Code: "ResourceNotFoundException", Message: "no such instance"}
		},
	}
	svc := newTestService(t, awsregistry.WithConnectConstructor(func(aws.Config) awsregistry.ConnectAPI { return fc }))

	res, err := svc.DescribeInstance(context.Background(), reqWith(map[string]any{"instance_id": "i-404"}))
	if err != nil {
		t.Fatalf("handler returned transport error: %v", err)
	}
	if !res.IsError {
		t.Fatal("expected tool error")
	}
	text := resultText(t, res)
	if !strings.Contains(text, "ResourceNotFoundException") || !strings.Contains(text, "no such instance") {
		t.Fatalf("error text lost the upstream code/message: %q", text)
	}
	if !strings.Contains(text, "describe_instance") {
		t.Fatalf("error text lost the operation name: %q", text)
	}
}

func TestGetCurrentMetricsFansToAllQueues(t *testing.T) {
	var filtered []string
	fc := &fakeConnect{
		listQueues: func(ctx context.Context, p *connect.ListQueuesInput, _ ...func(*connect.Options)) (*connect.ListQueuesOutput, error) {
			return &connect.ListQueuesOutput{QueueSummaryList: []connecttypes.QueueSummary{
				{Id: aws.String("q-1")}, {Id: aws.String("q-2")},
			}}, nil
		},
		currentMetrics: func(ctx context.Context, p *connect.GetCurrentMetricDataInput, _ ...func(*connect.Options)) (*connect.GetCurrentMetricDataOutput, error) {
			filtered = p.Filters.Queues
			if len(p.CurrentMetrics) != 4 {
				t.Fatalf("requested %d metrics, want 4", len(p.CurrentMetrics))
			}
			return &connect.GetCurrentMetricDataOutput{}, nil
		},
	}
	svc := newTestService(t, awsregistry.WithConnectConstructor(func(aws.Config) awsregistry.ConnectAPI { return fc }))

	res, err := svc.GetCurrentMetrics(context.Background(), reqWith(map[string]any{"instance_id": "i-1"}))
	if err != nil || res.IsError {
		t.Fatalf("unexpected failure: err=%v res=%s", err, resultText(t, res))
	}
	if len(filtered) != 2 || filtered[0] != "q-1" || filtered[1] != "q-2" {
		t.Fatalf("metric filter queues = %v", filtered)
	}
}

func TestContactsTransferRequiresTarget(t *testing.T) {
	svc := newTestService(t)
	res, err := svc.ContactsTransfer(context.Background(), reqWith(map[string]any{
		"instance_id":     "i-1",
		"contact_id":      "c-1",
		"contact_flow_id": "f-1",
	}))
	if err != nil {
		t.Fatalf("handler returned transport error: %v", err)
	}
	if !res.IsError {
		t.Fatal("expected tool error without queue_id or user_id")
	}
}

func TestProfilesGetNotFound(t *testing.T) {
	fp := &fakeProfiles{
		searchProfiles: func(ctx context.Context, p *customerprofiles.SearchProfilesInput, _ ...func(*customerprofiles.Options)) (*customerprofiles.SearchProfilesOutput, error) {
			if aws.ToString(p.KeyName) != "_profileId" {
				t.Fatalf("search key = %q, want _profileId", aws.ToString(p.KeyName))
			}
			return &customerprofiles.SearchProfilesOutput{}, nil
		},
	}
	svc := newTestService(t, awsregistry.WithProfilesConstructor(func(aws.Config) awsregistry.ProfilesAPI { return fp }))

	res, err := svc.ProfilesGet(context.Background(), reqWith(map[string]any{
		"domain_name": "acme-profiles",
		"profile_id":  "p-404",
	}))
	if err != nil {
		t.Fatalf("handler returned transport error: %v", err)
	}
	if !res.IsError {
		t.Fatal("expected tool error for an unknown profile")
	}
	if got := resultText(t, res); !strings.Contains(got, "profile not found") {
		t.Fatalf("error text = %q", got)
	}
}

func TestCampaignsCreateBuildsTelephonyConfig(t *testing.T) {
	var got *connectcampaignsv2.CreateCampaignInput
	fcamp := &fakeCampaigns{
		createCampaign: func(ctx context.Context, p *connectcampaignsv2.CreateCampaignInput, _ ...func(*connectcampaignsv2.Options)) (*connectcampaignsv2.CreateCampaignOutput, error) {
			got = p
			return &connectcampaignsv2.CreateCampaignOutput{Id: aws.String("camp-1")}, nil
		},
	}
	svc := newTestService(t, awsregistry.WithCampaignsConstructor(func(aws.Config) awsregistry.CampaignsAPI { return fcamp }))

	res, err := svc.CampaignsCreate(context.Background(), reqWith(map[string]any{
		"name":                "Renewal outreach",
		"connect_instance_id": "i-1",
		"queue_id":            "q-1",
		"contact_flow_id":     "f-1",
		"source_phone":        "+15550100",
	}))
	if err != nil || res.IsError {
		t.Fatalf("unexpected failure: err=%v res=%s", err, resultText(t, res))
	}

	tel := got.ChannelSubtypeConfig.Telephony
	if aws.ToString(tel.ConnectQueueId) != "q-1" {
		t.Fatalf("queue = %q", aws.ToString(tel.ConnectQueueId))
	}
	if aws.ToString(tel.DefaultOutboundConfig.ConnectContactFlowId) != "f-1" {
		t.Fatalf("flow = %q", aws.ToString(tel.DefaultOutboundConfig.ConnectContactFlowId))
	}
	if _, ok := tel.OutboundMode.(*campaigntypes.TelephonyOutboundModeMemberAgentless); !ok {
		t.Fatalf("default outbound mode is %T, want agentless", tel.OutboundMode)
	}

	res, err = svc.CampaignsCreate(context.Background(), reqWith(map[string]any{
		"name":                "x",
		"connect_instance_id": "i-1",
		"queue_id":            "q-1",
		"contact_flow_id":     "f-1",
		"source_phone":        "+15550100",
		"outbound_mode":       "psychic",
	}))
	if err != nil {
		t.Fatalf("handler returned transport error: %v", err)
	}
	if !res.IsError {
		t.Fatal("expected tool error for an unknown outbound mode")
	}
}

func TestQICSearchPicksFirstAssistant(t *testing.T) {
	var queried string
	fq := &fakeQConnect{
		listAssistants: func(ctx context.Context, p *qconnect.ListAssistantsInput, _ ...func(*qconnect.Options)) (*qconnect.ListAssistantsOutput, error) {
			return &qconnect.ListAssistantsOutput{AssistantSummaries: []qctypes.AssistantSummary{
				{AssistantId: aws.String("as-1")},
			}}, nil
		},
		queryAssistant: func(ctx context.Context, p *qconnect.QueryAssistantInput, _ ...func(*qconnect.Options)) (*qconnect.QueryAssistantOutput, error) {
			queried = aws.ToString(p.AssistantId)
			return &qconnect.QueryAssistantOutput{}, nil
		},
	}
	svc := newTestService(t, awsregistry.WithQConnectConstructor(func(aws.Config) awsregistry.QConnectAPI { return fq }))

	res, err := svc.QICSearch(context.Background(), reqWith(map[string]any{"query_text": "refund policy"}))
	if err != nil || res.IsError {
		t.Fatalf("unexpected failure: err=%v res=%s", err, resultText(t, res))
	}
	if queried != "as-1" {
		t.Fatalf("queried assistant %q, want as-1", queried)
	}

	var parsed struct {
		AssistantID string `json:"assistant_id"`
	}
	if err := json.Unmarshal([]byte(resultText(t, res)), &parsed); err != nil {
		t.Fatalf("result is not JSON: %v", err)
	}
	if parsed.AssistantID != "as-1" {
		t.Fatalf("result assistant_id = %q", parsed.AssistantID)
	}
}

func TestQICSearchNoAssistants(t *testing.T) {
	fq := &fakeQConnect{
		listAssistants: func(ctx context.Context, p *qconnect.ListAssistantsInput, _ ...func(*qconnect.Options)) (*qconnect.ListAssistantsOutput, error) {
			return &qconnect.ListAssistantsOutput{}, nil
		},
	}
	svc := newTestService(t, awsregistry.WithQConnectConstructor(func(aws.Config) awsregistry.QConnectAPI { return fq }))

	res, err := svc.QICSearch(context.Background(), reqWith(map[string]any{"query_text": "anything"}))
	if err != nil {
		t.Fatalf("handler returned transport error: %v", err)
	}
	if !res.IsError {
		t.Fatal("expected tool error when no assistants exist")
	}
}
