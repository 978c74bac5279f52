package tools

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/connect"
	connecttypes "github.com/aws/aws-sdk-go-v2/service/connect/types"
	"github.com/mark3labs/mcp-go/mcp"

	"github.com/arcline/connect-mcp/internal/errs"
	"github.com/arcline/connect-mcp/internal/toolcache"
)

func (s *Service) ConfigListContactFlows(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	instanceID, errRes := argString(req, "instance_id")
	if errRes != nil {
		return errRes, nil
	}
	region := s.region(optString(req, "region", ""))
	maxResults := optInt(req, "max_results", 100)

	key := toolcache.Key("config_list_contact_flows", map[string]any{"instance_id": instanceID, "region": region, "max_results": maxResults})
	out, err := s.cache.Do(key, func() (any, error) {
		client, err := s.registry.Connect(ctx, region)
		if err != nil {
			return nil, err
		}
		resp, err := client.ListContactFlows(ctx, &connect.ListContactFlowsInput{
			InstanceId: aws.String(instanceID),
			MaxResults: aws.Int32(int32(maxResults)),
		})
		if err != nil {
			return nil, errs.Remote("config_list_contact_flows", err)
		}
		return resp.ContactFlowSummaryList, nil
	})
	if err != nil {
		return errResult(err), nil
	}
	return jsonResult(map[string]any{"ContactFlowSummaryList": out}), nil
}

func (s *Service) ConfigDescribeContactFlow(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	instanceID, errRes := argString(req, "instance_id")
	if errRes != nil {
		return errRes, nil
	}
	flowID, errRes := argString(req, "contact_flow_id")
	if errRes != nil {
		return errRes, nil
	}
	client, err := s.registry.Connect(ctx, s.region(optString(req, "region", "")))
	if err != nil {
		return errResult(err), nil
	}
	out, err := client.DescribeContactFlow(ctx, &connect.DescribeContactFlowInput{
		InstanceId:    aws.String(instanceID),
		ContactFlowId: aws.String(flowID),
	})
	if err != nil {
		return errResult(errs.Remote("config_describe_contact_flow", err)), nil
	}
	return jsonResult(out.ContactFlow), nil
}

func (s *Service) ConfigCreateContactFlow(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	instanceID, errRes := argString(req, "instance_id")
	if errRes != nil {
		return errRes, nil
	}
	name, errRes := argString(req, "name")
	if errRes != nil {
		return errRes, nil
	}
	flowType, errRes := argString(req, "flow_type")
	if errRes != nil {
		return errRes, nil
	}
	content, errRes := argString(req, "content")
	if errRes != nil {
		return errRes, nil
	}
	client, err := s.registry.Connect(ctx, s.region(optString(req, "region", "")))
	if err != nil {
		return errResult(err), nil
	}
	out, err := client.CreateContactFlow(ctx, &connect.CreateContactFlowInput{
		InstanceId:  aws.String(instanceID),
		Name:        aws.String(name),
		Type:        connecttypes.ContactFlowType(flowType),
		Content:     aws.String(content),
		Description: aws.String(optString(req, "description", "")),
	})
	if err != nil {
		return errResult(errs.Remote("config_create_contact_flow", err)), nil
	}
	return jsonResult(out), nil
}

func (s *Service) ConfigUpdateContactFlowContent(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	instanceID, errRes := argString(req, "instance_id")
	if errRes != nil {
		return errRes, nil
	}
	flowID, errRes := argString(req, "contact_flow_id")
	if errRes != nil {
		return errRes, nil
	}
	content, errRes := argString(req, "content")
	if errRes != nil {
		return errRes, nil
	}
	client, err := s.registry.Connect(ctx, s.region(optString(req, "region", "")))
	if err != nil {
		return errResult(err), nil
	}
	if _, err := client.UpdateContactFlowContent(ctx, &connect.UpdateContactFlowContentInput{
		InstanceId:    aws.String(instanceID),
		ContactFlowId: aws.String(flowID),
		Content:       aws.String(content),
	}); err != nil {
		return errResult(errs.Remote("config_update_contact_flow_content", err)), nil
	}
	return jsonResult(map[string]string{"status": "updated", "contact_flow_id": flowID}), nil
}

func (s *Service) ConfigCreateQueue(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	instanceID, errRes := argString(req, "instance_id")
	if errRes != nil {
		return errRes, nil
	}
	name, errRes := argString(req, "name")
	if errRes != nil {
		return errRes, nil
	}
	hoursID, errRes := argString(req, "hours_of_operation_id")
	if errRes != nil {
		return errRes, nil
	}
	client, err := s.registry.Connect(ctx, s.region(optString(req, "region", "")))
	if err != nil {
		return errResult(err), nil
	}
	out, err := client.CreateQueue(ctx, &connect.CreateQueueInput{
		InstanceId:         aws.String(instanceID),
		Name:               aws.String(name),
		HoursOfOperationId: aws.String(hoursID),
		Description:        aws.String(optString(req, "description", "")),
	})
	if err != nil {
		return errResult(errs.Remote("config_create_queue", err)), nil
	}
	return jsonResult(out), nil
}

func (s *Service) ConfigDescribeQueue(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	instanceID, errRes := argString(req, "instance_id")
	if errRes != nil {
		return errRes, nil
	}
	queueID, errRes := argString(req, "queue_id")
	if errRes != nil {
		return errRes, nil
	}
	client, err := s.registry.Connect(ctx, s.region(optString(req, "region", "")))
	if err != nil {
		return errResult(err), nil
	}
	out, err := client.DescribeQueue(ctx, &connect.DescribeQueueInput{
		InstanceId: aws.String(instanceID),
		QueueId:    aws.String(queueID),
	})
	if err != nil {
		return errResult(errs.Remote("config_describe_queue", err)), nil
	}
	return jsonResult(out.Queue), nil
}

func (s *Service) ConfigUpdateQueueStatus(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	instanceID, errRes := argString(req, "instance_id")
	if errRes != nil {
		return errRes, nil
	}
	queueID, errRes := argString(req, "queue_id")
	if errRes != nil {
		return errRes, nil
	}
	status, errRes := argString(req, "status")
	if errRes != nil {
		return errRes, nil
	}
	client, err := s.registry.Connect(ctx, s.region(optString(req, "region", "")))
	if err != nil {
		return errResult(err), nil
	}
	if _, err := client.UpdateQueueStatus(ctx, &connect.UpdateQueueStatusInput{
		InstanceId: aws.String(instanceID),
		QueueId:    aws.String(queueID),
		Status:     connecttypes.QueueStatus(status),
	}); err != nil {
		return errResult(errs.Remote("config_update_queue_status", err)), nil
	}
	return jsonResult(map[string]string{"status": "updated", "queue_id": queueID}), nil
}

func (s *Service) ConfigListPhoneNumbers(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	instanceID, errRes := argString(req, "instance_id")
	if errRes != nil {
		return errRes, nil
	}
	region := s.region(optString(req, "region", ""))
	maxResults := optInt(req, "max_results", 100)

	key := toolcache.Key("config_list_phone_numbers", map[string]any{"instance_id": instanceID, "region": region, "max_results": maxResults})
	out, err := s.cache.Do(key, func() (any, error) {
		client, err := s.registry.Connect(ctx, region)
		if err != nil {
			return nil, err
		}
		resp, err := client.ListPhoneNumbers(ctx, &connect.ListPhoneNumbersInput{
			InstanceId: aws.String(instanceID),
			MaxResults: aws.Int32(int32(maxResults)),
		})
		if err != nil {
			return nil, errs.Remote("config_list_phone_numbers", err)
		}
		return resp.PhoneNumberSummaryList, nil
	})
	if err != nil {
		return errResult(err), nil
	}
	return jsonResult(map[string]any{"PhoneNumberSummaryList": out}), nil
}

func (s *Service) ConfigListRoutingProfiles(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	instanceID, errRes := argString(req, "instance_id")
	if errRes != nil {
		return errRes, nil
	}
	region := s.region(optString(req, "region", ""))
	maxResults := optInt(req, "max_results", 100)

	key := toolcache.Key("config_list_routing_profiles", map[string]any{"instance_id": instanceID, "region": region, "max_results": maxResults})
	out, err := s.cache.Do(key, func() (any, error) {
		client, err := s.registry.Connect(ctx, region)
		if err != nil {
			return nil, err
		}
		resp, err := client.ListRoutingProfiles(ctx, &connect.ListRoutingProfilesInput{
			InstanceId: aws.String(instanceID),
			MaxResults: aws.Int32(int32(maxResults)),
		})
		if err != nil {
			return nil, errs.Remote("config_list_routing_profiles", err)
		}
		return resp.RoutingProfileSummaryList, nil
	})
	if err != nil {
		return errResult(err), nil
	}
	return jsonResult(map[string]any{"RoutingProfileSummaryList": out}), nil
}

func (s *Service) ConfigCreateRoutingProfile(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	instanceID, errRes := argString(req, "instance_id")
	if errRes != nil {
		return errRes, nil
	}
	name, errRes := argString(req, "name")
	if errRes != nil {
		return errRes, nil
	}
	outboundQueueID, errRes := argString(req, "default_outbound_queue_id")
	if errRes != nil {
		return errRes, nil
	}

	concurrencies := []connecttypes.MediaConcurrency{
		{Channel: connecttypes.ChannelVoice, Concurrency: aws.Int32(1)},
		{Channel: connecttypes.ChannelChat, Concurrency: aws.Int32(2)},
	}
	if raw, ok := req.Params.Arguments["media_concurrencies"].([]any); ok && len(raw) > 0 {
		concurrencies = concurrencies[:0]
		for _, item := range raw {
			m, ok := item.(map[string]any)
			if !ok {
				continue
			}
			channel, _ := m["channel"].(string)
			n, _ := m["concurrency"].(float64)
			concurrencies = append(concurrencies, connecttypes.MediaConcurrency{
				Channel:     connecttypes.Channel(channel),
				Concurrency: aws.Int32(int32(n)),
			})
		}
	}

	client, err := s.registry.Connect(ctx, s.region(optString(req, "region", "")))
	if err != nil {
		return errResult(err), nil
	}
	out, err := client.CreateRoutingProfile(ctx, &connect.CreateRoutingProfileInput{
		InstanceId:             aws.String(instanceID),
		Name:                   aws.String(name),
		Description:            aws.String(optString(req, "description", "")),
		DefaultOutboundQueueId: aws.String(outboundQueueID),
		MediaConcurrencies:     concurrencies,
	})
	if err != nil {
		return errResult(errs.Remote("config_create_routing_profile", err)), nil
	}
	return jsonResult(out), nil
}

func (s *Service) ConfigListHoursOfOperations(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	instanceID, errRes := argString(req, "instance_id")
	if errRes != nil {
		return errRes, nil
	}
	region := s.region(optString(req, "region", ""))
	maxResults := optInt(req, "max_results", 100)

	key := toolcache.Key("config_list_hours_of_operations", map[string]any{"instance_id": instanceID, "region": region, "max_results": maxResults})
	out, err := s.cache.Do(key, func() (any, error) {
		client, err := s.registry.Connect(ctx, region)
		if err != nil {
			return nil, err
		}
		resp, err := client.ListHoursOfOperations(ctx, &connect.ListHoursOfOperationsInput{
			InstanceId: aws.String(instanceID),
			MaxResults: aws.Int32(int32(maxResults)),
		})
		if err != nil {
			return nil, errs.Remote("config_list_hours_of_operations", err)
		}
		return resp.HoursOfOperationSummaryList, nil
	})
	if err != nil {
		return errResult(err), nil
	}
	return jsonResult(map[string]any{"HoursOfOperationSummaryList": out}), nil
}

func (s *Service) ConfigCreateHoursOfOperation(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	instanceID, errRes := argString(req, "instance_id")
	if errRes != nil {
		return errRes, nil
	}
	name, errRes := argString(req, "name")
	if errRes != nil {
		return errRes, nil
	}
	timeZone, errRes := argString(req, "time_zone")
	if errRes != nil {
		return errRes, nil
	}
	raw, ok := req.Params.Arguments["config"].([]any)
	if !ok || len(raw) == 0 {
		return mcp.NewToolResultError("config is required"), nil
	}
	var hoursCfg []connecttypes.HoursOfOperationConfig
	for _, item := range raw {
		m, ok := item.(map[string]any)
		if !ok {
			continue
		}
		day, _ := m["day"].(string)
		hoursCfg = append(hoursCfg, connecttypes.HoursOfOperationConfig{
			Day:       connecttypes.HoursOfOperationDays(day),
			StartTime: hoursSlice(m["startTime"]),
			EndTime:   hoursSlice(m["endTime"]),
		})
	}

	client, err := s.registry.Connect(ctx, s.region(optString(req, "region", "")))
	if err != nil {
		return errResult(err), nil
	}
	out, err := client.CreateHoursOfOperation(ctx, &connect.CreateHoursOfOperationInput{
		InstanceId: aws.String(instanceID),
		Name:       aws.String(name),
		TimeZone:   aws.String(timeZone),
		Config:     hoursCfg,
	})
	if err != nil {
		return errResult(errs.Remote("config_create_hours_of_operation", err)), nil
	}
	return jsonResult(out), nil
}

func hoursSlice(v any) *connecttypes.HoursOfOperationTimeSlice {
	m, ok := v.(map[string]any)
	if !ok {
		return &connecttypes.HoursOfOperationTimeSlice{Hours: aws.Int32(0), Minutes: aws.Int32(0)}
	}
	h, _ := m["hours"].(float64)
	min, _ := m["minutes"].(float64)
	return &connecttypes.HoursOfOperationTimeSlice{Hours: aws.Int32(int32(h)), Minutes: aws.Int32(int32(min))}
}

func (s *Service) ConfigListUsers(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	instanceID, errRes := argString(req, "instance_id")
	if errRes != nil {
		return errRes, nil
	}
	region := s.region(optString(req, "region", ""))
	maxResults := optInt(req, "max_results", 100)

	key := toolcache.Key("config_list_users", map[string]any{"instance_id": instanceID, "region": region, "max_results": maxResults})
	out, err := s.cache.Do(key, func() (any, error) {
		client, err := s.registry.Connect(ctx, region)
		if err != nil {
			return nil, err
		}
		resp, err := client.ListUsers(ctx, &connect.ListUsersInput{
			InstanceId: aws.String(instanceID),
			MaxResults: aws.Int32(int32(maxResults)),
		})
		if err != nil {
			return nil, errs.Remote("config_list_users", err)
		}
		return resp.UserSummaryList, nil
	})
	if err != nil {
		return errResult(err), nil
	}
	return jsonResult(map[string]any{"UserSummaryList": out}), nil
}

func (s *Service) ConfigDescribeUser(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	instanceID, errRes := argString(req, "instance_id")
	if errRes != nil {
		return errRes, nil
	}
	userID, errRes := argString(req, "user_id")
	if errRes != nil {
		return errRes, nil
	}
	client, err := s.registry.Connect(ctx, s.region(optString(req, "region", "")))
	if err != nil {
		return errResult(err), nil
	}
	out, err := client.DescribeUser(ctx, &connect.DescribeUserInput{
		InstanceId: aws.String(instanceID),
		UserId:     aws.String(userID),
	})
	if err != nil {
		return errResult(errs.Remote("config_describe_user", err)), nil
	}
	return jsonResult(out.User), nil
}

func (s *Service) ConfigCreateUser(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	instanceID, errRes := argString(req, "instance_id")
	if errRes != nil {
		return errRes, nil
	}
	username, errRes := argString(req, "username")
	if errRes != nil {
		return errRes, nil
	}
	routingProfileID, errRes := argString(req, "routing_profile_id")
	if errRes != nil {
		return errRes, nil
	}
	securityProfileIDs := optStringSlice(req, "security_profile_ids")
	if len(securityProfileIDs) == 0 {
		return mcp.NewToolResultError("security_profile_ids is required"), nil
	}

	client, err := s.registry.Connect(ctx, s.region(optString(req, "region", "")))
	if err != nil {
		return errResult(err), nil
	}
	out, err := client.CreateUser(ctx, &connect.CreateUserInput{
		InstanceId:         aws.String(instanceID),
		Username:           aws.String(username),
		RoutingProfileId:   aws.String(routingProfileID),
		SecurityProfileIds: securityProfileIDs,
		PhoneConfig: &connecttypes.UserPhoneConfig{
			PhoneType: connecttypes.PhoneType(optString(req, "phone_type", "SOFT_PHONE")),
		},
	})
	if err != nil {
		return errResult(errs.Remote("config_create_user", err)), nil
	}
	return jsonResult(out), nil
}

func (s *Service) ConfigUpdateUserRoutingProfile(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	instanceID, errRes := argString(req, "instance_id")
	if errRes != nil {
		return errRes, nil
	}
	userID, errRes := argString(req, "user_id")
	if errRes != nil {
		return errRes, nil
	}
	routingProfileID, errRes := argString(req, "routing_profile_id")
	if errRes != nil {
		return errRes, nil
	}
	client, err := s.registry.Connect(ctx, s.region(optString(req, "region", "")))
	if err != nil {
		return errResult(err), nil
	}
	if _, err := client.UpdateUserRoutingProfile(ctx, &connect.UpdateUserRoutingProfileInput{
		InstanceId:       aws.String(instanceID),
		UserId:           aws.String(userID),
		RoutingProfileId: aws.String(routingProfileID),
	}); err != nil {
		return errResult(errs.Remote("config_update_user_routing_profile", err)), nil
	}
	return jsonResult(map[string]string{"status": "updated", "user_id": userID}), nil
}

func (s *Service) ConfigListSecurityProfiles(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	instanceID, errRes := argString(req, "instance_id")
	if errRes != nil {
		return errRes, nil
	}
	region := s.region(optString(req, "region", ""))
	maxResults := optInt(req, "max_results", 100)

	key := toolcache.Key("config_list_security_profiles", map[string]any{"instance_id": instanceID, "region": region, "max_results": maxResults})
	out, err := s.cache.Do(key, func() (any, error) {
		client, err := s.registry.Connect(ctx, region)
		if err != nil {
			return nil, err
		}
		resp, err := client.ListSecurityProfiles(ctx, &connect.ListSecurityProfilesInput{
			InstanceId: aws.String(instanceID),
			MaxResults: aws.Int32(int32(maxResults)),
		})
		if err != nil {
			return nil, errs.Remote("config_list_security_profiles", err)
		}
		return resp.SecurityProfileSummaryList, nil
	})
	if err != nil {
		return errResult(err), nil
	}
	return jsonResult(map[string]any{"SecurityProfileSummaryList": out}), nil
}

func (s *Service) ConfigListAgentStatuses(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	instanceID, errRes := argString(req, "instance_id")
	if errRes != nil {
		return errRes, nil
	}
	region := s.region(optString(req, "region", ""))
	maxResults := optInt(req, "max_results", 100)

	key := toolcache.Key("config_list_agent_statuses", map[string]any{"instance_id": instanceID, "region": region, "max_results": maxResults})
	out, err := s.cache.Do(key, func() (any, error) {
		client, err := s.registry.Connect(ctx, region)
		if err != nil {
			return nil, err
		}
		resp, err := client.ListAgentStatuses(ctx, &connect.ListAgentStatusesInput{
			InstanceId: aws.String(instanceID),
			MaxResults: aws.Int32(int32(maxResults)),
		})
		if err != nil {
			return nil, errs.Remote("config_list_agent_statuses", err)
		}
		return resp.AgentStatusSummaryList, nil
	})
	if err != nil {
		return errResult(err), nil
	}
	return jsonResult(map[string]any{"AgentStatusSummaryList": out}), nil
}

func (s *Service) ConfigPutUserStatus(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	instanceID, errRes := argString(req, "instance_id")
	if errRes != nil {
		return errRes, nil
	}
	userID, errRes := argString(req, "user_id")
	if errRes != nil {
		return errRes, nil
	}
	statusID, errRes := argString(req, "agent_status_id")
	if errRes != nil {
		return errRes, nil
	}
	client, err := s.registry.Connect(ctx, s.region(optString(req, "region", "")))
	if err != nil {
		return errResult(err), nil
	}
	if _, err := client.PutUserStatus(ctx, &connect.PutUserStatusInput{
		InstanceId:    aws.String(instanceID),
		UserId:        aws.String(userID),
		AgentStatusId: aws.String(statusID),
	}); err != nil {
		return errResult(errs.Remote("config_put_user_status", err)), nil
	}
	return jsonResult(map[string]string{"status": "updated", "user_id": userID}), nil
}
