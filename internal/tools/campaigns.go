package tools

import (
	"context"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/connectcampaignsv2"
	campaigntypes "github.com/aws/aws-sdk-go-v2/service/connectcampaignsv2/types"
	"github.com/google/uuid"
	"github.com/mark3labs/mcp-go/mcp"

	"github.com/arcline/connect-mcp/internal/errs"
	"github.com/arcline/connect-mcp/internal/toolcache"
)

// CampaignsCreate creates a telephony outbound campaign. The channel
// configuration is taken as flat arguments rather than a raw document so the
// union types are built here, in one place.
func (s *Service) CampaignsCreate(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, errRes := argString(req, "name")
	if errRes != nil {
		return errRes, nil
	}
	instanceID, errRes := argString(req, "connect_instance_id")
	if errRes != nil {
		return errRes, nil
	}
	queueID, errRes := argString(req, "queue_id")
	if errRes != nil {
		return errRes, nil
	}
	flowID, errRes := argString(req, "contact_flow_id")
	if errRes != nil {
		return errRes, nil
	}
	sourcePhone, errRes := argString(req, "source_phone")
	if errRes != nil {
		return errRes, nil
	}

	var mode campaigntypes.TelephonyOutboundMode
	switch optString(req, "outbound_mode", "agentless") {
	case "agentless":
		mode = &campaigntypes.TelephonyOutboundModeMemberAgentless{}
	case "predictive":
		mode = &campaigntypes.TelephonyOutboundModeMemberPredictive{
			Value: campaigntypes.PredictiveConfig{BandwidthAllocation: aws.Float64(1.0)},
		}
	case "progressive":
		mode = &campaigntypes.TelephonyOutboundModeMemberProgressive{
			Value: campaigntypes.ProgressiveConfig{BandwidthAllocation: aws.Float64(1.0)},
		}
	default:
		return mcp.NewToolResultError("outbound_mode must be agentless, predictive or progressive"), nil
	}

	client, err := s.registry.Campaigns(ctx, s.region(optString(req, "region", "")))
	if err != nil {
		return errResult(err), nil
	}
	out, err := client.CreateCampaign(ctx, &connectcampaignsv2.CreateCampaignInput{
		Name:              aws.String(name),
		ConnectInstanceId: aws.String(instanceID),
		ChannelSubtypeConfig: &campaigntypes.ChannelSubtypeConfig{
			Telephony: &campaigntypes.TelephonyChannelSubtypeConfig{
				ConnectQueueId: aws.String(queueID),
				DefaultOutboundConfig: &campaigntypes.TelephonyOutboundConfig{
					ConnectContactFlowId:     aws.String(flowID),
					ConnectSourcePhoneNumber: aws.String(sourcePhone),
				},
				OutboundMode: mode,
			},
		},
	})
	if err != nil {
		return errResult(errs.Remote("campaigns_create", err)), nil
	}
	return jsonResult(out), nil
}

func (s *Service) CampaignsList(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	instanceID, errRes := argString(req, "connect_instance_id")
	if errRes != nil {
		return errRes, nil
	}
	region := s.region(optString(req, "region", ""))
	maxResults := optInt(req, "max_results", 25)

	key := toolcache.Key("campaigns_list", map[string]any{"connect_instance_id": instanceID, "region": region, "max_results": maxResults})
	out, err := s.cache.Do(key, func() (any, error) {
		client, err := s.registry.Campaigns(ctx, region)
		if err != nil {
			return nil, err
		}
		resp, err := client.ListCampaigns(ctx, &connectcampaignsv2.ListCampaignsInput{
			Filters: &campaigntypes.CampaignFilters{
				InstanceIdFilter: &campaigntypes.InstanceIdFilter{
					Value:    aws.String(instanceID),
					Operator: campaigntypes.InstanceIdFilterOperatorEq,
				},
			},
			MaxResults: aws.Int32(int32(maxResults)),
		})
		if err != nil {
			return nil, errs.Remote("campaigns_list", err)
		}
		return resp.CampaignSummaryList, nil
	})
	if err != nil {
		return errResult(err), nil
	}
	return jsonResult(map[string]any{"CampaignSummaryList": out}), nil
}

func (s *Service) CampaignsDescribe(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	campaignID, errRes := argString(req, "campaign_id")
	if errRes != nil {
		return errRes, nil
	}
	client, err := s.registry.Campaigns(ctx, s.region(optString(req, "region", "")))
	if err != nil {
		return errResult(err), nil
	}
	out, err := client.DescribeCampaign(ctx, &connectcampaignsv2.DescribeCampaignInput{Id: aws.String(campaignID)})
	if err != nil {
		return errResult(errs.Remote("campaigns_describe", err)), nil
	}
	return jsonResult(out.Campaign), nil
}

func (s *Service) CampaignsStart(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	campaignID, errRes := argString(req, "campaign_id")
	if errRes != nil {
		return errRes, nil
	}
	client, err := s.registry.Campaigns(ctx, s.region(optString(req, "region", "")))
	if err != nil {
		return errResult(err), nil
	}
	if _, err := client.StartCampaign(ctx, &connectcampaignsv2.StartCampaignInput{Id: aws.String(campaignID)}); err != nil {
		return errResult(errs.Remote("campaigns_start", err)), nil
	}
	return jsonResult(map[string]string{"status": "started", "campaign_id": campaignID}), nil
}

func (s *Service) CampaignsPause(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	campaignID, errRes := argString(req, "campaign_id")
	if errRes != nil {
		return errRes, nil
	}
	client, err := s.registry.Campaigns(ctx, s.region(optString(req, "region", "")))
	if err != nil {
		return errResult(err), nil
	}
	if _, err := client.PauseCampaign(ctx, &connectcampaignsv2.PauseCampaignInput{Id: aws.String(campaignID)}); err != nil {
		return errResult(errs.Remote("campaigns_pause", err)), nil
	}
	return jsonResult(map[string]string{"status": "paused", "campaign_id": campaignID}), nil
}

func (s *Service) CampaignsResume(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	campaignID, errRes := argString(req, "campaign_id")
	if errRes != nil {
		return errRes, nil
	}
	client, err := s.registry.Campaigns(ctx, s.region(optString(req, "region", "")))
	if err != nil {
		return errResult(err), nil
	}
	if _, err := client.ResumeCampaign(ctx, &connectcampaignsv2.ResumeCampaignInput{Id: aws.String(campaignID)}); err != nil {
		return errResult(errs.Remote("campaigns_resume", err)), nil
	}
	return jsonResult(map[string]string{"status": "resumed", "campaign_id": campaignID}), nil
}

func (s *Service) CampaignsStop(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	campaignID, errRes := argString(req, "campaign_id")
	if errRes != nil {
		return errRes, nil
	}
	client, err := s.registry.Campaigns(ctx, s.region(optString(req, "region", "")))
	if err != nil {
		return errResult(err), nil
	}
	if _, err := client.StopCampaign(ctx, &connectcampaignsv2.StopCampaignInput{Id: aws.String(campaignID)}); err != nil {
		return errResult(errs.Remote("campaigns_stop", err)), nil
	}
	return jsonResult(map[string]string{"status": "stopped", "campaign_id": campaignID}), nil
}

func (s *Service) CampaignsDelete(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	campaignID, errRes := argString(req, "campaign_id")
	if errRes != nil {
		return errRes, nil
	}
	client, err := s.registry.Campaigns(ctx, s.region(optString(req, "region", "")))
	if err != nil {
		return errResult(err), nil
	}
	if _, err := client.DeleteCampaign(ctx, &connectcampaignsv2.DeleteCampaignInput{Id: aws.String(campaignID)}); err != nil {
		return errResult(errs.Remote("campaigns_delete", err)), nil
	}
	return jsonResult(map[string]string{"status": "deleted", "campaign_id": campaignID}), nil
}

func (s *Service) CampaignsGetState(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	campaignID, errRes := argString(req, "campaign_id")
	if errRes != nil {
		return errRes, nil
	}
	client, err := s.registry.Campaigns(ctx, s.region(optString(req, "region", "")))
	if err != nil {
		return errResult(err), nil
	}
	out, err := client.GetCampaignState(ctx, &connectcampaignsv2.GetCampaignStateInput{Id: aws.String(campaignID)})
	if err != nil {
		return errResult(errs.Remote("campaigns_get_state", err)), nil
	}
	return jsonResult(map[string]any{"state": out.State}), nil
}

// CampaignsPutOutboundRequests adds contacts to a campaign's dial list. Each
// request is an object with destination_phone and optional attributes.
func (s *Service) CampaignsPutOutboundRequests(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	campaignID, errRes := argString(req, "campaign_id")
	if errRes != nil {
		return errRes, nil
	}
	raw, ok := req.Params.Arguments["outbound_requests"].([]any)
	if !ok || len(raw) == 0 {
		return mcp.NewToolResultError("outbound_requests is required"), nil
	}

	expiry := aws.Time(time.Now().Add(24 * time.Hour))
	requests := make([]campaigntypes.OutboundRequest, 0, len(raw))
	for _, item := range raw {
		m, ok := item.(map[string]any)
		if !ok {
			continue
		}
		phone, _ := m["destination_phone"].(string)
		if phone == "" {
			return mcp.NewToolResultError("each outbound request needs destination_phone"), nil
		}
		attrs := map[string]string{}
		if rawAttrs, ok := m["attributes"].(map[string]any); ok {
			for k, v := range rawAttrs {
				if s, ok := v.(string); ok {
					attrs[k] = s
				}
			}
		}
		requests = append(requests, campaigntypes.OutboundRequest{
			ClientToken:    aws.String(uuid.NewString()),
			ExpirationTime: expiry,
			ChannelSubtypeParameters: &campaigntypes.ChannelSubtypeParametersMemberTelephony{
				Value: campaigntypes.TelephonyChannelSubtypeParameters{
					DestinationPhoneNumber: aws.String(phone),
					Attributes:             attrs,
				},
			},
		})
	}

	client, err := s.registry.Campaigns(ctx, s.region(optString(req, "region", "")))
	if err != nil {
		return errResult(err), nil
	}
	out, err := client.PutOutboundRequestBatch(ctx, &connectcampaignsv2.PutOutboundRequestBatchInput{
		Id:               aws.String(campaignID),
		OutboundRequests: requests,
	})
	if err != nil {
		return errResult(errs.Remote("campaigns_put_outbound_requests", err)), nil
	}
	return jsonResult(out), nil
}

func (s *Service) CampaignsStartOnboarding(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	instanceID, errRes := argString(req, "connect_instance_id")
	if errRes != nil {
		return errRes, nil
	}
	input := &connectcampaignsv2.StartInstanceOnboardingJobInput{
		ConnectInstanceId: aws.String(instanceID),
		EncryptionConfig:  &campaigntypes.EncryptionConfig{Enabled: false},
	}
	if keyArn := optString(req, "kms_key_arn", ""); keyArn != "" {
		input.EncryptionConfig = &campaigntypes.EncryptionConfig{
			Enabled:        true,
			EncryptionType: campaigntypes.EncryptionTypeKms,
			KeyArn:         aws.String(keyArn),
		}
	}

	client, err := s.registry.Campaigns(ctx, s.region(optString(req, "region", "")))
	if err != nil {
		return errResult(err), nil
	}
	out, err := client.StartInstanceOnboardingJob(ctx, input)
	if err != nil {
		return errResult(errs.Remote("campaigns_start_onboarding", err)), nil
	}
	return jsonResult(out.ConnectInstanceOnboardingJobStatus), nil
}

func (s *Service) CampaignsGetOnboardingStatus(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	instanceID, errRes := argString(req, "connect_instance_id")
	if errRes != nil {
		return errRes, nil
	}
	client, err := s.registry.Campaigns(ctx, s.region(optString(req, "region", "")))
	if err != nil {
		return errResult(err), nil
	}
	out, err := client.GetInstanceOnboardingJobStatus(ctx, &connectcampaignsv2.GetInstanceOnboardingJobStatusInput{
		ConnectInstanceId: aws.String(instanceID),
	})
	if err != nil {
		return errResult(errs.Remote("campaigns_get_onboarding_status", err)), nil
	}
	return jsonResult(out.ConnectInstanceOnboardingJobStatus), nil
}

func (s *Service) CampaignsDeleteOnboarding(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	instanceID, errRes := argString(req, "connect_instance_id")
	if errRes != nil {
		return errRes, nil
	}
	client, err := s.registry.Campaigns(ctx, s.region(optString(req, "region", "")))
	if err != nil {
		return errResult(err), nil
	}
	if _, err := client.DeleteInstanceOnboardingJob(ctx, &connectcampaignsv2.DeleteInstanceOnboardingJobInput{
		ConnectInstanceId: aws.String(instanceID),
	}); err != nil {
		return errResult(errs.Remote("campaigns_delete_onboarding", err)), nil
	}
	return jsonResult(map[string]string{"status": "deleted", "connect_instance_id": instanceID}), nil
}
