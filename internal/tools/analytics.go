package tools

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/connect"
	connecttypes "github.com/aws/aws-sdk-go-v2/service/connect/types"
	"github.com/mark3labs/mcp-go/mcp"

	"github.com/arcline/connect-mcp/internal/errs"
)

// defaultHistoricalMetrics are requested when the caller does not name any.
var defaultHistoricalMetrics = []string{
	"CONTACTS_QUEUED",
	"CONTACTS_HANDLED",
	"CONTACTS_ABANDONED",
	"AVG_HANDLE_TIME",
}

func (s *Service) AnalyticsGetMetricData(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	instanceID, errRes := argString(req, "instance_id")
	if errRes != nil {
		return errRes, nil
	}
	start, errRes := argTime(req, "start_time")
	if errRes != nil {
		return errRes, nil
	}
	end, errRes := argTime(req, "end_time")
	if errRes != nil {
		return errRes, nil
	}

	names := optStringSlice(req, "metrics")
	if len(names) == 0 {
		names = defaultHistoricalMetrics
	}
	metrics := make([]connecttypes.MetricV2, 0, len(names))
	for _, name := range names {
		metrics = append(metrics, connecttypes.MetricV2{Name: aws.String(name)})
	}

	var filters []connecttypes.FilterV2
	if queueIDs := optStringSlice(req, "queue_ids"); len(queueIDs) > 0 {
		filters = append(filters, connecttypes.FilterV2{
			FilterKey:    aws.String("QUEUE"),
			FilterValues: queueIDs,
		})
	}

	client, err := s.registry.Connect(ctx, s.region(optString(req, "region", "")))
	if err != nil {
		return errResult(err), nil
	}
	out, err := client.GetMetricDataV2(ctx, &connect.GetMetricDataV2Input{
		ResourceArn: aws.String(fmt.Sprintf("arn:aws:connect:*:*:instance/%s", instanceID)),
		StartTime:   aws.Time(start),
		EndTime:     aws.Time(end),
		Filters:     filters,
		Metrics:     metrics,
	})
	if err != nil {
		return errResult(errs.Remote("analytics_get_metric_data", err)), nil
	}
	return jsonResult(out.MetricResults), nil
}

func (s *Service) AnalyticsGetCurrentUserData(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	instanceID, errRes := argString(req, "instance_id")
	if errRes != nil {
		return errRes, nil
	}
	client, err := s.registry.Connect(ctx, s.region(optString(req, "region", "")))
	if err != nil {
		return errResult(err), nil
	}
	out, err := client.GetCurrentUserData(ctx, &connect.GetCurrentUserDataInput{
		InstanceId: aws.String(instanceID),
		Filters: &connecttypes.UserDataFilters{
			Queues: optStringSlice(req, "queue_ids"),
		},
	})
	if err != nil {
		return errResult(errs.Remote("analytics_get_current_user_data", err)), nil
	}
	return jsonResult(out.UserDataList), nil
}

func (s *Service) AnalyticsListContactEvaluations(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
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
	out, err := client.ListContactEvaluations(ctx, &connect.ListContactEvaluationsInput{
		InstanceId: aws.String(instanceID),
		ContactId:  aws.String(contactID),
	})
	if err != nil {
		return errResult(errs.Remote("analytics_list_contact_evaluations", err)), nil
	}
	return jsonResult(out.EvaluationSummaryList), nil
}

func (s *Service) AnalyticsStartContactEvaluation(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	instanceID, errRes := argString(req, "instance_id")
	if errRes != nil {
		return errRes, nil
	}
	contactID, errRes := argString(req, "contact_id")
	if errRes != nil {
		return errRes, nil
	}
	formID, errRes := argString(req, "evaluation_form_id")
	if errRes != nil {
		return errRes, nil
	}
	client, err := s.registry.Connect(ctx, s.region(optString(req, "region", "")))
	if err != nil {
		return errResult(err), nil
	}
	out, err := client.StartContactEvaluation(ctx, &connect.StartContactEvaluationInput{
		InstanceId:       aws.String(instanceID),
		ContactId:        aws.String(contactID),
		EvaluationFormId: aws.String(formID),
	})
	if err != nil {
		return errResult(errs.Remote("analytics_start_contact_evaluation", err)), nil
	}
	return jsonResult(out), nil
}

func (s *Service) AnalyticsListEvaluationForms(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	instanceID, errRes := argString(req, "instance_id")
	if errRes != nil {
		return errRes, nil
	}
	client, err := s.registry.Connect(ctx, s.region(optString(req, "region", "")))
	if err != nil {
		return errResult(err), nil
	}
	out, err := client.ListEvaluationForms(ctx, &connect.ListEvaluationFormsInput{
		InstanceId: aws.String(instanceID),
		MaxResults: aws.Int32(int32(optInt(req, "max_results", 25))),
	})
	if err != nil {
		return errResult(errs.Remote("analytics_list_evaluation_forms", err)), nil
	}
	return jsonResult(out.EvaluationFormSummaryList), nil
}
