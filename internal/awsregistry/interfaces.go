// Package awsregistry constructs and caches AWS service clients, one per
// (service, region) pair. The registry is passed explicitly into the tool
// facade so tests can substitute fakes per service.
package awsregistry

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/connect"
	"github.com/aws/aws-sdk-go-v2/service/connectcampaignsv2"
	"github.com/aws/aws-sdk-go-v2/service/connectcases"
	"github.com/aws/aws-sdk-go-v2/service/customerprofiles"
	"github.com/aws/aws-sdk-go-v2/service/qconnect"
)

// ConnectAPI lists the Amazon Connect operations the tool facade and the
// onboarding wizard call. *connect.Client satisfies it.
type ConnectAPI interface {
	DescribeInstance(ctx context.Context, params *connect.DescribeInstanceInput, optFns ...func(*connect.Options)) (*connect.DescribeInstanceOutput, error)
	CreateInstance(ctx context.Context, params *connect.CreateInstanceInput, optFns ...func(*connect.Options)) (*connect.CreateInstanceOutput, error)
	DeleteInstance(ctx context.Context, params *connect.DeleteInstanceInput, optFns ...func(*connect.Options)) (*connect.DeleteInstanceOutput, error)
	ListInstances(ctx context.Context, params *connect.ListInstancesInput, optFns ...func(*connect.Options)) (*connect.ListInstancesOutput, error)
	ListQueues(ctx context.Context, params *connect.ListQueuesInput, optFns ...func(*connect.Options)) (*connect.ListQueuesOutput, error)
	GetCurrentMetricData(ctx context.Context, params *connect.GetCurrentMetricDataInput, optFns ...func(*connect.Options)) (*connect.GetCurrentMetricDataOutput, error)
	SearchContacts(ctx context.Context, params *connect.SearchContactsInput, optFns ...func(*connect.Options)) (*connect.SearchContactsOutput, error)
	DescribeContact(ctx context.Context, params *connect.DescribeContactInput, optFns ...func(*connect.Options)) (*connect.DescribeContactOutput, error)

	ListContactFlows(ctx context.Context, params *connect.ListContactFlowsInput, optFns ...func(*connect.Options)) (*connect.ListContactFlowsOutput, error)
	DescribeContactFlow(ctx context.Context, params *connect.DescribeContactFlowInput, optFns ...func(*connect.Options)) (*connect.DescribeContactFlowOutput, error)
	CreateContactFlow(ctx context.Context, params *connect.CreateContactFlowInput, optFns ...func(*connect.Options)) (*connect.CreateContactFlowOutput, error)
	UpdateContactFlowContent(ctx context.Context, params *connect.UpdateContactFlowContentInput, optFns ...func(*connect.Options)) (*connect.UpdateContactFlowContentOutput, error)

	CreateQueue(ctx context.Context, params *connect.CreateQueueInput, optFns ...func(*connect.Options)) (*connect.CreateQueueOutput, error)
	DescribeQueue(ctx context.Context, params *connect.DescribeQueueInput, optFns ...func(*connect.Options)) (*connect.DescribeQueueOutput, error)
	UpdateQueueStatus(ctx context.Context, params *connect.UpdateQueueStatusInput, optFns ...func(*connect.Options)) (*connect.UpdateQueueStatusOutput, error)
	ListPhoneNumbers(ctx context.Context, params *connect.ListPhoneNumbersInput, optFns ...func(*connect.Options)) (*connect.ListPhoneNumbersOutput, error)

	ListRoutingProfiles(ctx context.Context, params *connect.ListRoutingProfilesInput, optFns ...func(*connect.Options)) (*connect.ListRoutingProfilesOutput, error)
	CreateRoutingProfile(ctx context.Context, params *connect.CreateRoutingProfileInput, optFns ...func(*connect.Options)) (*connect.CreateRoutingProfileOutput, error)
	ListHoursOfOperations(ctx context.Context, params *connect.ListHoursOfOperationsInput, optFns ...func(*connect.Options)) (*connect.ListHoursOfOperationsOutput, error)
	CreateHoursOfOperation(ctx context.Context, params *connect.CreateHoursOfOperationInput, optFns ...func(*connect.Options)) (*connect.CreateHoursOfOperationOutput, error)

	ListUsers(ctx context.Context, params *connect.ListUsersInput, optFns ...func(*connect.Options)) (*connect.ListUsersOutput, error)
	DescribeUser(ctx context.Context, params *connect.DescribeUserInput, optFns ...func(*connect.Options)) (*connect.DescribeUserOutput, error)
	CreateUser(ctx context.Context, params *connect.CreateUserInput, optFns ...func(*connect.Options)) (*connect.CreateUserOutput, error)
	UpdateUserRoutingProfile(ctx context.Context, params *connect.UpdateUserRoutingProfileInput, optFns ...func(*connect.Options)) (*connect.UpdateUserRoutingProfileOutput, error)
	ListSecurityProfiles(ctx context.Context, params *connect.ListSecurityProfilesInput, optFns ...func(*connect.Options)) (*connect.ListSecurityProfilesOutput, error)
	ListAgentStatuses(ctx context.Context, params *connect.ListAgentStatusesInput, optFns ...func(*connect.Options)) (*connect.ListAgentStatusesOutput, error)
	PutUserStatus(ctx context.Context, params *connect.PutUserStatusInput, optFns ...func(*connect.Options)) (*connect.PutUserStatusOutput, error)

	StartOutboundVoiceContact(ctx context.Context, params *connect.StartOutboundVoiceContactInput, optFns ...func(*connect.Options)) (*connect.StartOutboundVoiceContactOutput, error)
	StartChatContact(ctx context.Context, params *connect.StartChatContactInput, optFns ...func(*connect.Options)) (*connect.StartChatContactOutput, error)
	StartTaskContact(ctx context.Context, params *connect.StartTaskContactInput, optFns ...func(*connect.Options)) (*connect.StartTaskContactOutput, error)
	StopContact(ctx context.Context, params *connect.StopContactInput, optFns ...func(*connect.Options)) (*connect.StopContactOutput, error)
	TransferContact(ctx context.Context, params *connect.TransferContactInput, optFns ...func(*connect.Options)) (*connect.TransferContactOutput, error)
	UpdateContactAttributes(ctx context.Context, params *connect.UpdateContactAttributesInput, optFns ...func(*connect.Options)) (*connect.UpdateContactAttributesOutput, error)
	StartContactRecording(ctx context.Context, params *connect.StartContactRecordingInput, optFns ...func(*connect.Options)) (*connect.StartContactRecordingOutput, error)
	StopContactRecording(ctx context.Context, params *connect.StopContactRecordingInput, optFns ...func(*connect.Options)) (*connect.StopContactRecordingOutput, error)

	GetMetricDataV2(ctx context.Context, params *connect.GetMetricDataV2Input, optFns ...func(*connect.Options)) (*connect.GetMetricDataV2Output, error)
	GetCurrentUserData(ctx context.Context, params *connect.GetCurrentUserDataInput, optFns ...func(*connect.Options)) (*connect.GetCurrentUserDataOutput, error)
	ListContactEvaluations(ctx context.Context, params *connect.ListContactEvaluationsInput, optFns ...func(*connect.Options)) (*connect.ListContactEvaluationsOutput, error)
	StartContactEvaluation(ctx context.Context, params *connect.StartContactEvaluationInput, optFns ...func(*connect.Options)) (*connect.StartContactEvaluationOutput, error)
	ListEvaluationForms(ctx context.Context, params *connect.ListEvaluationFormsInput, optFns ...func(*connect.Options)) (*connect.ListEvaluationFormsOutput, error)
}

// CasesAPI lists the Amazon Connect Cases operations in use.
type CasesAPI interface {
	CreateDomain(ctx context.Context, params *connectcases.CreateDomainInput, optFns ...func(*connectcases.Options)) (*connectcases.CreateDomainOutput, error)
	ListDomains(ctx context.Context, params *connectcases.ListDomainsInput, optFns ...func(*connectcases.Options)) (*connectcases.ListDomainsOutput, error)
	GetDomain(ctx context.Context, params *connectcases.GetDomainInput, optFns ...func(*connectcases.Options)) (*connectcases.GetDomainOutput, error)

	CreateTemplate(ctx context.Context, params *connectcases.CreateTemplateInput, optFns ...func(*connectcases.Options)) (*connectcases.CreateTemplateOutput, error)
	ListTemplates(ctx context.Context, params *connectcases.ListTemplatesInput, optFns ...func(*connectcases.Options)) (*connectcases.ListTemplatesOutput, error)
	GetTemplate(ctx context.Context, params *connectcases.GetTemplateInput, optFns ...func(*connectcases.Options)) (*connectcases.GetTemplateOutput, error)
	UpdateTemplate(ctx context.Context, params *connectcases.UpdateTemplateInput, optFns ...func(*connectcases.Options)) (*connectcases.UpdateTemplateOutput, error)

	CreateField(ctx context.Context, params *connectcases.CreateFieldInput, optFns ...func(*connectcases.Options)) (*connectcases.CreateFieldOutput, error)
	ListFields(ctx context.Context, params *connectcases.ListFieldsInput, optFns ...func(*connectcases.Options)) (*connectcases.ListFieldsOutput, error)
	UpdateField(ctx context.Context, params *connectcases.UpdateFieldInput, optFns ...func(*connectcases.Options)) (*connectcases.UpdateFieldOutput, error)

	CreateLayout(ctx context.Context, params *connectcases.CreateLayoutInput, optFns ...func(*connectcases.Options)) (*connectcases.CreateLayoutOutput, error)
	ListLayouts(ctx context.Context, params *connectcases.ListLayoutsInput, optFns ...func(*connectcases.Options)) (*connectcases.ListLayoutsOutput, error)

	CreateCase(ctx context.Context, params *connectcases.CreateCaseInput, optFns ...func(*connectcases.Options)) (*connectcases.CreateCaseOutput, error)
	GetCase(ctx context.Context, params *connectcases.GetCaseInput, optFns ...func(*connectcases.Options)) (*connectcases.GetCaseOutput, error)
	UpdateCase(ctx context.Context, params *connectcases.UpdateCaseInput, optFns ...func(*connectcases.Options)) (*connectcases.UpdateCaseOutput, error)
	DeleteCase(ctx context.Context, params *connectcases.DeleteCaseInput, optFns ...func(*connectcases.Options)) (*connectcases.DeleteCaseOutput, error)
	SearchCases(ctx context.Context, params *connectcases.SearchCasesInput, optFns ...func(*connectcases.Options)) (*connectcases.SearchCasesOutput, error)
	CreateRelatedItem(ctx context.Context, params *connectcases.CreateRelatedItemInput, optFns ...func(*connectcases.Options)) (*connectcases.CreateRelatedItemOutput, error)
	ListCasesForContact(ctx context.Context, params *connectcases.ListCasesForContactInput, optFns ...func(*connectcases.Options)) (*connectcases.ListCasesForContactOutput, error)
}

// ProfilesAPI lists the Customer Profiles operations in use.
type ProfilesAPI interface {
	CreateDomain(ctx context.Context, params *customerprofiles.CreateDomainInput, optFns ...func(*customerprofiles.Options)) (*customerprofiles.CreateDomainOutput, error)
	ListDomains(ctx context.Context, params *customerprofiles.ListDomainsInput, optFns ...func(*customerprofiles.Options)) (*customerprofiles.ListDomainsOutput, error)
	CreateProfile(ctx context.Context, params *customerprofiles.CreateProfileInput, optFns ...func(*customerprofiles.Options)) (*customerprofiles.CreateProfileOutput, error)
	SearchProfiles(ctx context.Context, params *customerprofiles.SearchProfilesInput, optFns ...func(*customerprofiles.Options)) (*customerprofiles.SearchProfilesOutput, error)
	UpdateProfile(ctx context.Context, params *customerprofiles.UpdateProfileInput, optFns ...func(*customerprofiles.Options)) (*customerprofiles.UpdateProfileOutput, error)
	DeleteProfile(ctx context.Context, params *customerprofiles.DeleteProfileInput, optFns ...func(*customerprofiles.Options)) (*customerprofiles.DeleteProfileOutput, error)
	MergeProfiles(ctx context.Context, params *customerprofiles.MergeProfilesInput, optFns ...func(*customerprofiles.Options)) (*customerprofiles.MergeProfilesOutput, error)
}

// QConnectAPI lists the Amazon Q in Connect operations in use.
type QConnectAPI interface {
	ListAssistants(ctx context.Context, params *qconnect.ListAssistantsInput, optFns ...func(*qconnect.Options)) (*qconnect.ListAssistantsOutput, error)
	CreateAssistant(ctx context.Context, params *qconnect.CreateAssistantInput, optFns ...func(*qconnect.Options)) (*qconnect.CreateAssistantOutput, error)
	CreateAssistantAssociation(ctx context.Context, params *qconnect.CreateAssistantAssociationInput, optFns ...func(*qconnect.Options)) (*qconnect.CreateAssistantAssociationOutput, error)
	QueryAssistant(ctx context.Context, params *qconnect.QueryAssistantInput, optFns ...func(*qconnect.Options)) (*qconnect.QueryAssistantOutput, error)
	ListKnowledgeBases(ctx context.Context, params *qconnect.ListKnowledgeBasesInput, optFns ...func(*qconnect.Options)) (*qconnect.ListKnowledgeBasesOutput, error)
	CreateKnowledgeBase(ctx context.Context, params *qconnect.CreateKnowledgeBaseInput, optFns ...func(*qconnect.Options)) (*qconnect.CreateKnowledgeBaseOutput, error)
	SearchContent(ctx context.Context, params *qconnect.SearchContentInput, optFns ...func(*qconnect.Options)) (*qconnect.SearchContentOutput, error)
	GetRecommendations(ctx context.Context, params *qconnect.GetRecommendationsInput, optFns ...func(*qconnect.Options)) (*qconnect.GetRecommendationsOutput, error)
	CreateSession(ctx context.Context, params *qconnect.CreateSessionInput, optFns ...func(*qconnect.Options)) (*qconnect.CreateSessionOutput, error)
	ListQuickResponses(ctx context.Context, params *qconnect.ListQuickResponsesInput, optFns ...func(*qconnect.Options)) (*qconnect.ListQuickResponsesOutput, error)
	SearchQuickResponses(ctx context.Context, params *qconnect.SearchQuickResponsesInput, optFns ...func(*qconnect.Options)) (*qconnect.SearchQuickResponsesOutput, error)
	StartContentUpload(ctx context.Context, params *qconnect.StartContentUploadInput, optFns ...func(*qconnect.Options)) (*qconnect.StartContentUploadOutput, error)
	CreateContent(ctx context.Context, params *qconnect.CreateContentInput, optFns ...func(*qconnect.Options)) (*qconnect.CreateContentOutput, error)
}

// CampaignsAPI lists the Outbound Campaigns v2 operations in use.
type CampaignsAPI interface {
	CreateCampaign(ctx context.Context, params *connectcampaignsv2.CreateCampaignInput, optFns ...func(*connectcampaignsv2.Options)) (*connectcampaignsv2.CreateCampaignOutput, error)
	ListCampaigns(ctx context.Context, params *connectcampaignsv2.ListCampaignsInput, optFns ...func(*connectcampaignsv2.Options)) (*connectcampaignsv2.ListCampaignsOutput, error)
	DescribeCampaign(ctx context.Context, params *connectcampaignsv2.DescribeCampaignInput, optFns ...func(*connectcampaignsv2.Options)) (*connectcampaignsv2.DescribeCampaignOutput, error)
	StartCampaign(ctx context.Context, params *connectcampaignsv2.StartCampaignInput, optFns ...func(*connectcampaignsv2.Options)) (*connectcampaignsv2.StartCampaignOutput, error)
	PauseCampaign(ctx context.Context, params *connectcampaignsv2.PauseCampaignInput, optFns ...func(*connectcampaignsv2.Options)) (*connectcampaignsv2.PauseCampaignOutput, error)
	ResumeCampaign(ctx context.Context, params *connectcampaignsv2.ResumeCampaignInput, optFns ...func(*connectcampaignsv2.Options)) (*connectcampaignsv2.ResumeCampaignOutput, error)
	StopCampaign(ctx context.Context, params *connectcampaignsv2.StopCampaignInput, optFns ...func(*connectcampaignsv2.Options)) (*connectcampaignsv2.StopCampaignOutput, error)
	DeleteCampaign(ctx context.Context, params *connectcampaignsv2.DeleteCampaignInput, optFns ...func(*connectcampaignsv2.Options)) (*connectcampaignsv2.DeleteCampaignOutput, error)
	GetCampaignState(ctx context.Context, params *connectcampaignsv2.GetCampaignStateInput, optFns ...func(*connectcampaignsv2.Options)) (*connectcampaignsv2.GetCampaignStateOutput, error)
	PutOutboundRequestBatch(ctx context.Context, params *connectcampaignsv2.PutOutboundRequestBatchInput, optFns ...func(*connectcampaignsv2.Options)) (*connectcampaignsv2.PutOutboundRequestBatchOutput, error)
	StartInstanceOnboardingJob(ctx context.Context, params *connectcampaignsv2.StartInstanceOnboardingJobInput, optFns ...func(*connectcampaignsv2.Options)) (*connectcampaignsv2.StartInstanceOnboardingJobOutput, error)
	GetInstanceOnboardingJobStatus(ctx context.Context, params *connectcampaignsv2.GetInstanceOnboardingJobStatusInput, optFns ...func(*connectcampaignsv2.Options)) (*connectcampaignsv2.GetInstanceOnboardingJobStatusOutput, error)
	DeleteInstanceOnboardingJob(ctx context.Context, params *connectcampaignsv2.DeleteInstanceOnboardingJobInput, optFns ...func(*connectcampaignsv2.Options)) (*connectcampaignsv2.DeleteInstanceOnboardingJobOutput, error)
}

// Compile-time checks that the real SDK clients satisfy the interfaces.
var (
	_ ConnectAPI   = (*connect.Client)(nil)
	_ CasesAPI     = (*connectcases.Client)(nil)
	_ ProfilesAPI  = (*customerprofiles.Client)(nil)
	_ QConnectAPI  = (*qconnect.Client)(nil)
	_ CampaignsAPI = (*connectcampaignsv2.Client)(nil)
)
