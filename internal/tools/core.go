package tools

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/connect"
	connecttypes "github.com/aws/aws-sdk-go-v2/service/connect/types"
	"github.com/aws/aws-sdk-go-v2/service/connectcases"
	casetypes "github.com/aws/aws-sdk-go-v2/service/connectcases/types"
	"github.com/mark3labs/mcp-go/mcp"

	"github.com/arcline/connect-mcp/internal/errs"
	"github.com/arcline/connect-mcp/internal/logger"
	"github.com/arcline/connect-mcp/internal/toolcache"
)

// connectRegions are the regions fanned over when list_instances is called
// without an explicit region.
var connectRegions = []string{
	"us-east-1", "us-west-2", "eu-west-2", "eu-central-1", "ap-southeast-1",
	"ap-southeast-2", "ap-northeast-1", "ap-northeast-2", "ca-central-1", "af-south-1",
}

func (s *Service) DescribeInstance(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	instanceID, errRes := argString(req, "instance_id")
	if errRes != nil {
		return errRes, nil
	}
	region := s.region(optString(req, "region", ""))

	key := toolcache.Key("describe_instance", map[string]any{"instance_id": instanceID, "region": region})
	out, err := s.cache.Do(key, func() (any, error) {
		client, err := s.registry.Connect(ctx, region)
		if err != nil {
			return nil, err
		}
		resp, err := client.DescribeInstance(ctx, &connect.DescribeInstanceInput{InstanceId: aws.String(instanceID)})
		if err != nil {
			return nil, errs.Remote("describe_instance", err)
		}
		return resp.Instance, nil
	})
	if err != nil {
		return errResult(err), nil
	}
	return jsonResult(out), nil
}

func (s *Service) CreateInstance(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	alias, errRes := argString(req, "instance_alias")
	if errRes != nil {
		return errRes, nil
	}
	client, err := s.registry.Connect(ctx, s.region(optString(req, "region", "")))
	if err != nil {
		return errResult(err), nil
	}
	out, err := client.CreateInstance(ctx, &connect.CreateInstanceInput{
		IdentityManagementType: connecttypes.DirectoryTypeConnectManaged,
		InstanceAlias:          aws.String(alias),
		InboundCallsEnabled:    aws.Bool(optBool(req, "inbound_calls", true)),
		OutboundCallsEnabled:   aws.Bool(optBool(req, "outbound_calls", true)),
	})
	if err != nil {
		return errResult(errs.Remote("create_instance", err)), nil
	}
	return jsonResult(map[string]any{"Id": aws.ToString(out.Id), "Arn": aws.ToString(out.Arn)}), nil
}

func (s *Service) DeleteInstance(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	instanceID, errRes := argString(req, "instance_id")
	if errRes != nil {
		return errRes, nil
	}
	client, err := s.registry.Connect(ctx, s.region(optString(req, "region", "")))
	if err != nil {
		return errResult(err), nil
	}
	if _, err := client.DeleteInstance(ctx, &connect.DeleteInstanceInput{InstanceId: aws.String(instanceID)}); err != nil {
		return errResult(errs.Remote("delete_instance", err)), nil
	}
	return jsonResult(map[string]string{"status": "deleted", "instance_id": instanceID}), nil
}

// instanceSummary is an instance listing entry annotated with the region it
// came from.
type instanceSummary struct {
	connecttypes.InstanceSummary
	Region string
}

func (s *Service) ListInstances(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	region := s.region(optString(req, "region", ""))

	key := toolcache.Key("list_instances", map[string]any{"region": region})
	out, err := s.cache.Do(key, func() (any, error) {
		if region != "" {
			return s.listInstancesIn(ctx, region)
		}
		// No region given: fan over every Connect-supported region,
		// skipping the ones that fail (no credentials, service not
		// available there).
		var all []instanceSummary
		for _, r := range connectRegions {
			found, err := s.listInstancesIn(ctx, r)
			if err != nil {
				logger.Debug("[TOOLS] list_instances: skipping %s: %v", r, err)
				continue
			}
			all = append(all, found...)
		}
		return all, nil
	})
	if err != nil {
		return errResult(err), nil
	}
	return jsonResult(map[string]any{"InstanceSummaryList": out}), nil
}

func (s *Service) listInstancesIn(ctx context.Context, region string) ([]instanceSummary, error) {
	client, err := s.registry.Connect(ctx, region)
	if err != nil {
		return nil, err
	}
	resp, err := client.ListInstances(ctx, &connect.ListInstancesInput{})
	if err != nil {
		return nil, errs.Remote("list_instances", err)
	}
	out := make([]instanceSummary, 0, len(resp.InstanceSummaryList))
	for _, inst := range resp.InstanceSummaryList {
		out = append(out, instanceSummary{InstanceSummary: inst, Region: region})
	}
	return out, nil
}

func (s *Service) ListQueues(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	instanceID, errRes := argString(req, "instance_id")
	if errRes != nil {
		return errRes, nil
	}
	region := s.region(optString(req, "region", ""))
	maxResults := optInt(req, "max_results", 100)

	key := toolcache.Key("list_queues", map[string]any{"instance_id": instanceID, "region": region, "max_results": maxResults})
	out, err := s.cache.Do(key, func() (any, error) {
		client, err := s.registry.Connect(ctx, region)
		if err != nil {
			return nil, err
		}
		resp, err := client.ListQueues(ctx, &connect.ListQueuesInput{
			InstanceId: aws.String(instanceID),
			MaxResults: aws.Int32(int32(maxResults)),
		})
		if err != nil {
			return nil, errs.Remote("list_queues", err)
		}
		return resp.QueueSummaryList, nil
	})
	if err != nil {
		return errResult(err), nil
	}
	return jsonResult(map[string]any{"QueueSummaryList": out}), nil
}

func (s *Service) GetCurrentMetrics(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	instanceID, errRes := argString(req, "instance_id")
	if errRes != nil {
		return errRes, nil
	}
	client, err := s.registry.Connect(ctx, s.region(optString(req, "region", "")))
	if err != nil {
		return errResult(err), nil
	}

	queueIDs := optStringSlice(req, "queue_ids")
	if len(queueIDs) == 0 {
		resp, err := client.ListQueues(ctx, &connect.ListQueuesInput{
			InstanceId: aws.String(instanceID),
			MaxResults: aws.Int32(100),
		})
		if err != nil {
			return errResult(errs.Remote("list_queues", err)), nil
		}
		for _, q := range resp.QueueSummaryList {
			queueIDs = append(queueIDs, aws.ToString(q.Id))
		}
	}
	if len(queueIDs) == 0 {
		return jsonResult(map[string]any{"MetricResults": []any{}, "message": "no queues found"}), nil
	}

	channel := connecttypes.Channel(optString(req, "channel", "VOICE"))
	out, err := client.GetCurrentMetricData(ctx, &connect.GetCurrentMetricDataInput{
		InstanceId: aws.String(instanceID),
		Filters: &connecttypes.Filters{
			Queues:   queueIDs,
			Channels: []connecttypes.Channel{channel},
		},
		CurrentMetrics: []connecttypes.CurrentMetric{
			{Name: connecttypes.CurrentMetricNameAgentsAvailable, Unit: connecttypes.UnitCount},
			{Name: connecttypes.CurrentMetricNameAgentsOnline, Unit: connecttypes.UnitCount},
			{Name: connecttypes.CurrentMetricNameContactsInQueue, Unit: connecttypes.UnitCount},
			{Name: connecttypes.CurrentMetricNameOldestContactAge, Unit: connecttypes.UnitSeconds},
		},
	})
	if err != nil {
		return errResult(errs.Remote("get_current_metrics", err)), nil
	}
	return jsonResult(out), nil
}

func (s *Service) SearchContacts(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	instanceID, errRes := argString(req, "instance_id")
	if errRes != nil {
		return errRes, nil
	}
	start, errRes := argTime(req, "time_range_start")
	if errRes != nil {
		return errRes, nil
	}
	end, errRes := argTime(req, "time_range_end")
	if errRes != nil {
		return errRes, nil
	}
	client, err := s.registry.Connect(ctx, s.region(optString(req, "region", "")))
	if err != nil {
		return errResult(err), nil
	}
	out, err := client.SearchContacts(ctx, &connect.SearchContactsInput{
		InstanceId: aws.String(instanceID),
		TimeRange: &connecttypes.SearchContactsTimeRange{
			Type:      connecttypes.SearchContactsTimeRangeTypeInitiationTimestamp,
			StartTime: aws.Time(start),
			EndTime:   aws.Time(end),
		},
		MaxResults: aws.Int32(int32(optInt(req, "max_results", 100))),
	})
	if err != nil {
		return errResult(errs.Remote("search_contacts", err)), nil
	}
	return jsonResult(out), nil
}

func (s *Service) DescribeContact(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	instanceID, errRes := argString(req, "instance_id")
	if errRes != nil {
		return errRes, nil
	}
	contactID, errRes := argString(req, "contact_id")
	if errRes != nil {
		return errRes, nil
	}
	client, err := s.registry.Connect(ctx, s.region(optString(req, "region", "")))
	if err != nil {
		return errResult(err), nil
	}
	out, err := client.DescribeContact(ctx, &connect.DescribeContactInput{
		InstanceId: aws.String(instanceID),
		ContactId:  aws.String(contactID),
	})
	if err != nil {
		return errResult(errs.Remote("describe_contact", err)), nil
	}
	return jsonResult(out.Contact), nil
}

func (s *Service) CreateCase(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	domainID, errRes := argString(req, "domain_id")
	if errRes != nil {
		return errRes, nil
	}
	templateID, errRes := argString(req, "template_id")
	if errRes != nil {
		return errRes, nil
	}
	fields, errRes := argStringMap(req, "fields")
	if errRes != nil {
		return errRes, nil
	}
	client, err := s.registry.Cases(ctx, s.region(optString(req, "region", "")))
	if err != nil {
		return errResult(err), nil
	}
	out, err := client.CreateCase(ctx, &connectcases.CreateCaseInput{
		DomainId:   aws.String(domainID),
		TemplateId: aws.String(templateID),
		Fields:     caseFields(fields),
	})
	if err != nil {
		return errResult(errs.Remote("create_case", err)), nil
	}
	return jsonResult(out), nil
}

func (s *Service) GetCase(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	domainID, errRes := argString(req, "domain_id")
	if errRes != nil {
		return errRes, nil
	}
	caseID, errRes := argString(req, "case_id")
	if errRes != nil {
		return errRes, nil
	}
	fieldIDs := optStringSlice(req, "field_ids")
	if len(fieldIDs) == 0 {
		fieldIDs = []string{"title"}
	}
	identifiers := make([]casetypes.FieldIdentifier, 0, len(fieldIDs))
	for _, id := range fieldIDs {
		identifiers = append(identifiers, casetypes.FieldIdentifier{Id: aws.String(id)})
	}

	client, err := s.registry.Cases(ctx, s.region(optString(req, "region", "")))
	if err != nil {
		return errResult(err), nil
	}
	out, err := client.GetCase(ctx, &connectcases.GetCaseInput{
		DomainId: aws.String(domainID),
		CaseId:   aws.String(caseID),
		Fields:   identifiers,
	})
	if err != nil {
		return errResult(errs.Remote("get_case", err)), nil
	}
	return jsonResult(out), nil
}

func (s *Service) SearchCases(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	domainID, errRes := argString(req, "domain_id")
	if errRes != nil {
		return errRes, nil
	}
	input := &connectcases.SearchCasesInput{
		DomainId:   aws.String(domainID),
		MaxResults: aws.Int32(int32(optInt(req, "max_results", 25))),
	}
	filterField := optString(req, "filter_field", "")
	filterValue := optString(req, "filter_value", "")
	if filterField != "" && filterValue != "" {
		input.Filter = &casetypes.CaseFilterMemberField{
			Value: &casetypes.FieldFilterMemberEqualTo{
				Value: casetypes.FieldValue{
					Id:    aws.String(filterField),
					Value: &casetypes.FieldValueUnionMemberStringValue{Value: filterValue},
				},
			},
		}
	}

	client, err := s.registry.Cases(ctx, s.region(optString(req, "region", "")))
	if err != nil {
		return errResult(err), nil
	}
	out, err := client.SearchCases(ctx, input)
	if err != nil {
		return errResult(errs.Remote("search_cases", err)), nil
	}
	return jsonResult(out), nil
}

func (s *Service) ListDomainsForInstance(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	instanceID, errRes := argString(req, "instance_id")
	if errRes != nil {
		return errRes, nil
	}
	region := s.region(optString(req, "region", ""))

	key := toolcache.Key("list_domains_for_instance", map[string]any{"instance_id": instanceID, "region": region})
	out, err := s.cache.Do(key, func() (any, error) {
		client, err := s.registry.Cases(ctx, region)
		if err != nil {
			return nil, err
		}
		resp, err := client.ListDomains(ctx, &connectcases.ListDomainsInput{MaxResults: aws.Int32(10)})
		if err != nil {
			return nil, errs.Remote("list_domains_for_instance", err)
		}
		return resp.Domains, nil
	})
	if err != nil {
		return errResult(err), nil
	}
	return jsonResult(map[string]any{"instance_id": instanceID, "domains": out}), nil
}
