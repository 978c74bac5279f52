package tools

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/connect"
	connecttypes "github.com/aws/aws-sdk-go-v2/service/connect/types"
	"github.com/google/uuid"
	"github.com/mark3labs/mcp-go/mcp"

	"github.com/arcline/connect-mcp/internal/errs"
)

func (s *Service) ContactsStartOutboundVoice(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	instanceID, errRes := argString(req, "instance_id")
	if errRes != nil {
		return errRes, nil
	}
	destination, errRes := argString(req, "destination_phone")
	if errRes != nil {
		return errRes, nil
	}
	flowID, errRes := argString(req, "contact_flow_id")
	if errRes != nil {
		return errRes, nil
	}
	source, errRes := argString(req, "source_phone")
	if errRes != nil {
		return errRes, nil
	}
	client, err := s.registry.Connect(ctx, s.region(optString(req, "region", "")))
	if err != nil {
		return errResult(err), nil
	}
	out, err := client.StartOutboundVoiceContact(ctx, &connect.StartOutboundVoiceContactInput{
		InstanceId:             aws.String(instanceID),
		DestinationPhoneNumber: aws.String(destination),
		ContactFlowId:          aws.String(flowID),
		SourcePhoneNumber:      aws.String(source),
		Attributes:             optStringMap(req, "attributes"),
		ClientToken:            aws.String(uuid.NewString()),
	})
	if err != nil {
		return errResult(errs.Remote("contacts_start_outbound_voice", err)), nil
	}
	return jsonResult(out), nil
}

func (s *Service) ContactsStartChat(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	instanceID, errRes := argString(req, "instance_id")
	if errRes != nil {
		return errRes, nil
	}
	flowID, errRes := argString(req, "contact_flow_id")
	if errRes != nil {
		return errRes, nil
	}
	displayName, errRes := argString(req, "participant_display_name")
	if errRes != nil {
		return errRes, nil
	}
	client, err := s.registry.Connect(ctx, s.region(optString(req, "region", "")))
	if err != nil {
		return errResult(err), nil
	}
	out, err := client.StartChatContact(ctx, &connect.StartChatContactInput{
		InstanceId:         aws.String(instanceID),
		ContactFlowId:      aws.String(flowID),
		ParticipantDetails: &connecttypes.ParticipantDetails{DisplayName: aws.String(displayName)},
		Attributes:         optStringMap(req, "attributes"),
		ClientToken:        aws.String(uuid.NewString()),
	})
	if err != nil {
		return errResult(errs.Remote("contacts_start_chat", err)), nil
	}
	return jsonResult(out), nil
}

func (s *Service) ContactsStartTask(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	instanceID, errRes := argString(req, "instance_id")
	if errRes != nil {
		return errRes, nil
	}
	flowID, errRes := argString(req, "contact_flow_id")
	if errRes != nil {
		return errRes, nil
	}
	name, errRes := argString(req, "name")
	if errRes != nil {
		return errRes, nil
	}
	input := &connect.StartTaskContactInput{
		InstanceId:    aws.String(instanceID),
		ContactFlowId: aws.String(flowID),
		Name:          aws.String(name),
		Attributes:    optStringMap(req, "attributes"),
		ClientToken:   aws.String(uuid.NewString()),
	}
	if desc := optString(req, "description", ""); desc != "" {
		input.Description = aws.String(desc)
	}

	client, err := s.registry.Connect(ctx, s.region(optString(req, "region", "")))
	if err != nil {
		return errResult(err), nil
	}
	out, err := client.StartTaskContact(ctx, input)
	if err != nil {
		return errResult(errs.Remote("contacts_start_task", err)), nil
	}
	return jsonResult(out), nil
}

func (s *Service) ContactsStop(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
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
	if _, err := client.StopContact(ctx, &connect.StopContactInput{
		InstanceId: aws.String(instanceID),
		ContactId:  aws.String(contactID),
	}); err != nil {
		return errResult(errs.Remote("contacts_stop", err)), nil
	}
	return jsonResult(map[string]string{"status": "stopped", "contact_id": contactID}), nil
}

func (s *Service) ContactsTransfer(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	instanceID, errRes := argString(req, "instance_id")
	if errRes != nil {
		return errRes, nil
	}
	contactID, errRes := argString(req, "contact_id")
	if errRes != nil {
		return errRes, nil
	}
	flowID, errRes := argString(req, "contact_flow_id")
	if errRes != nil {
		return errRes, nil
	}
	queueID := optString(req, "queue_id", "")
	userID := optString(req, "user_id", "")
	if queueID == "" && userID == "" {
		return mcp.NewToolResultError("either queue_id or user_id is required"), nil
	}

	input := &connect.TransferContactInput{
		InstanceId:    aws.String(instanceID),
		ContactId:     aws.String(contactID),
		ContactFlowId: aws.String(flowID),
		ClientToken:   aws.String(uuid.NewString()),
	}
	if queueID != "" {
		input.QueueId = aws.String(queueID)
	}
	if userID != "" {
		input.UserId = aws.String(userID)
	}

	client, err := s.registry.Connect(ctx, s.region(optString(req, "region", "")))
	if err != nil {
		return errResult(err), nil
	}
	out, err := client.TransferContact(ctx, input)
	if err != nil {
		return errResult(errs.Remote("contacts_transfer", err)), nil
	}
	return jsonResult(out), nil
}

func (s *Service) ContactsUpdateAttributes(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	instanceID, errRes := argString(req, "instance_id")
	if errRes != nil {
		return errRes, nil
	}
	contactID, errRes := argString(req, "contact_id")
	if errRes != nil {
		return errRes, nil
	}
	attrs, errRes := argStringMap(req, "attributes")
	if errRes != nil {
		return errRes, nil
	}
	client, err := s.registry.Connect(ctx, s.region(optString(req, "region", "")))
	if err != nil {
		return errResult(err), nil
	}
	if _, err := client.UpdateContactAttributes(ctx, &connect.UpdateContactAttributesInput{
		InstanceId:       aws.String(instanceID),
		InitialContactId: aws.String(contactID),
		Attributes:       attrs,
	}); err != nil {
		return errResult(errs.Remote("contacts_update_attributes", err)), nil
	}
	return jsonResult(map[string]string{"status": "updated", "contact_id": contactID}), nil
}

func (s *Service) ContactsStartRecording(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	instanceID, errRes := argString(req, "instance_id")
	if errRes != nil {
		return errRes, nil
	}
	contactID, errRes := argString(req, "contact_id")
	if errRes != nil {
		return errRes, nil
	}
	track := connecttypes.VoiceRecordingTrack(optString(req, "track", "ALL"))
	switch track {
	case connecttypes.VoiceRecordingTrackAll, connecttypes.VoiceRecordingTrackFromAgent, connecttypes.VoiceRecordingTrackToAgent:
	default:
		return mcp.NewToolResultError("track must be ALL, FROM_AGENT or TO_AGENT"), nil
	}

	client, err := s.registry.Connect(ctx, s.region(optString(req, "region", "")))
	if err != nil {
		return errResult(err), nil
	}
	if _, err := client.StartContactRecording(ctx, &connect.StartContactRecordingInput{
		InstanceId:       aws.String(instanceID),
		ContactId:        aws.String(contactID),
		InitialContactId: aws.String(contactID),
		VoiceRecordingConfiguration: &connecttypes.VoiceRecordingConfiguration{
			VoiceRecordingTrack: track,
		},
	}); err != nil {
		return errResult(errs.Remote("contacts_start_recording", err)), nil
	}
	return jsonResult(map[string]string{"status": "recording", "contact_id": contactID}), nil
}

func (s *Service) ContactsStopRecording(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
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
	if _, err := client.StopContactRecording(ctx, &connect.StopContactRecordingInput{
		InstanceId:       aws.String(instanceID),
		ContactId:        aws.String(contactID),
		InitialContactId: aws.String(contactID),
	}); err != nil {
		return errResult(errs.Remote("contacts_stop_recording", err)), nil
	}
	return jsonResult(map[string]string{"status": "stopped", "contact_id": contactID}), nil
}
