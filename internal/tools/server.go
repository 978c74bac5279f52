package tools

import (
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

const serverName = "connect-mcp"

// ServerVersion is the advertised MCP server version.
const ServerVersion = "1.2.0"

// NewServer builds the MCP server and registers every tool against the
// handler facade.
func NewServer(svc *Service, version string) *server.MCPServer {
	s := server.NewMCPServer(
		serverName,
		version,
		server.WithToolCapabilities(true),
		server.WithRecovery(),
		server.WithInstructions(serverInstructions()),
	)

	registerCore(s, svc)
	registerCases(s, svc)
	registerContacts(s, svc)
	registerSession(s, svc)
	registerConfig(s, svc)
	registerAnalytics(s, svc)
	registerProfiles(s, svc)
	registerCampaigns(s, svc)
	registerAI(s, svc)
	registerTemplates(s, svc)
	registerWizard(s, svc)

	return s
}

func serverInstructions() string {
	return `Amazon Connect MCP Server - AI assistant for contact center operations.

TIER 1 (Core - use these first):
- describe_instance, list_instances, list_queues
- get_current_metrics
- search_contacts, describe_contact
- create_case, get_case, search_cases

TIER 2 (Search for these when needed):
- cases_* : Case templates, fields, layouts, domains
- contacts_* : Voice, chat, tasks, transfers, recording
- config_* : Flows, queues, routing, users, agent status
- analytics_* : Metrics, evaluations
- profiles_* : Customer profiles
- campaigns_* : Outbound campaigns
- ai_* : Amazon Q in Connect

QUICK ACCESS:
- qic_search: Use when the user says "QiC", "Q in Connect", or wants to search the Connect knowledge base

SESSION:
- session_set, session_get, session_clear: default region for subsequent calls

WIZARD & TEMPLATES:
- template_list, template_get, template_customize
- wizard_start_setup, wizard_resume, wizard_run_status, wizard_get_iac_template`
}

// regionParam is shared by almost every tool.
func regionParam() mcp.ToolOption {
	return mcp.WithString("region", mcp.Description("AWS region override; defaults to the session or configured region"))
}

func registerCore(s *server.MCPServer, svc *Service) {
	s.AddTool(mcp.NewTool("describe_instance",
		mcp.WithDescription("Get details for an Amazon Connect instance"),
		mcp.WithString("instance_id", mcp.Required(), mcp.Description("Connect instance ID")),
		regionParam(),
	), svc.DescribeInstance)

	s.AddTool(mcp.NewTool("create_instance",
		mcp.WithDescription("Create a new Amazon Connect instance"),
		mcp.WithString("instance_alias", mcp.Required(), mcp.Description("Globally unique instance alias")),
		mcp.WithBoolean("inbound_calls", mcp.Description("Enable inbound calls (default true)")),
		mcp.WithBoolean("outbound_calls", mcp.Description("Enable outbound calls (default true)")),
		regionParam(),
	), svc.CreateInstance)

	s.AddTool(mcp.NewTool("delete_instance",
		mcp.WithDescription("Delete an Amazon Connect instance"),
		mcp.WithString("instance_id", mcp.Required(), mcp.Description("Connect instance ID")),
		regionParam(),
	), svc.DeleteInstance)

	s.AddTool(mcp.NewTool("list_instances",
		mcp.WithDescription("List Connect instances; scans all Connect regions unless region is given"),
		regionParam(),
	), svc.ListInstances)

	s.AddTool(mcp.NewTool("list_queues",
		mcp.WithDescription("List queues for an instance"),
		mcp.WithString("instance_id", mcp.Required(), mcp.Description("Connect instance ID")),
		mcp.WithNumber("max_results", mcp.Description("Page size (default 100)")),
		regionParam(),
	), svc.ListQueues)

	s.AddTool(mcp.NewTool("get_current_metrics",
		mcp.WithDescription("Real-time queue metrics: agents online/available, contacts in queue, oldest contact age"),
		mcp.WithString("instance_id", mcp.Required(), mcp.Description("Connect instance ID")),
		mcp.WithArray("queue_ids", mcp.Description("Queue IDs to report on; all queues when omitted")),
		mcp.WithString("channel", mcp.Description("VOICE, CHAT or TASK (default VOICE)")),
		regionParam(),
	), svc.GetCurrentMetrics)

	s.AddTool(mcp.NewTool("search_contacts",
		mcp.WithDescription("Search contacts by initiation time range"),
		mcp.WithString("instance_id", mcp.Required(), mcp.Description("Connect instance ID")),
		mcp.WithString("time_range_start", mcp.Required(), mcp.Description("ISO 8601 start of the range")),
		mcp.WithString("time_range_end", mcp.Required(), mcp.Description("ISO 8601 end of the range")),
		mcp.WithNumber("max_results", mcp.Description("Page size (default 100)")),
		regionParam(),
	), svc.SearchContacts)

	s.AddTool(mcp.NewTool("describe_contact",
		mcp.WithDescription("Get details for a contact"),
		mcp.WithString("instance_id", mcp.Required(), mcp.Description("Connect instance ID")),
		mcp.WithString("contact_id", mcp.Required(), mcp.Description("Contact ID")),
		regionParam(),
	), svc.DescribeContact)

	s.AddTool(mcp.NewTool("create_case",
		mcp.WithDescription("Create a case in a Cases domain"),
		mcp.WithString("domain_id", mcp.Required(), mcp.Description("Cases domain ID")),
		mcp.WithString("template_id", mcp.Required(), mcp.Description("Case template ID")),
		mcp.WithObject("fields", mcp.Required(), mcp.Description("Field ID to string value map")),
		regionParam(),
	), svc.CreateCase)

	s.AddTool(mcp.NewTool("get_case",
		mcp.WithDescription("Get case details"),
		mcp.WithString("domain_id", mcp.Required(), mcp.Description("Cases domain ID")),
		mcp.WithString("case_id", mcp.Required(), mcp.Description("Case ID")),
		mcp.WithArray("field_ids", mcp.Description("Field IDs to return (default: title)")),
		regionParam(),
	), svc.GetCase)

	s.AddTool(mcp.NewTool("search_cases",
		mcp.WithDescription("Search cases, optionally filtered on one field value"),
		mcp.WithString("domain_id", mcp.Required(), mcp.Description("Cases domain ID")),
		mcp.WithString("filter_field", mcp.Description("Field ID to filter on")),
		mcp.WithString("filter_value", mcp.Description("Exact value the field must equal")),
		mcp.WithNumber("max_results", mcp.Description("Page size (default 25)")),
		regionParam(),
	), svc.SearchCases)

	s.AddTool(mcp.NewTool("list_domains_for_instance",
		mcp.WithDescription("List Cases domains visible to this account"),
		mcp.WithString("instance_id", mcp.Required(), mcp.Description("Connect instance ID")),
		regionParam(),
	), svc.ListDomainsForInstance)
}

func registerCases(s *server.MCPServer, svc *Service) {
	s.AddTool(mcp.NewTool("cases_create_template",
		mcp.WithDescription("Create a case template"),
		mcp.WithString("domain_id", mcp.Required(), mcp.Description("Cases domain ID")),
		mcp.WithString("name", mcp.Required(), mcp.Description("Template name")),
		mcp.WithString("description", mcp.Description("Template description")),
		mcp.WithArray("required_fields", mcp.Description("Field IDs required on case creation")),
		regionParam(),
	), svc.CasesCreateTemplate)

	s.AddTool(mcp.NewTool("cases_list_templates",
		mcp.WithDescription("List case templates in a domain"),
		mcp.WithString("domain_id", mcp.Required(), mcp.Description("Cases domain ID")),
		mcp.WithNumber("max_results", mcp.Description("Page size, default 25")),
		regionParam(),
	), svc.CasesListTemplates)

	s.AddTool(mcp.NewTool("cases_get_template",
		mcp.WithDescription("Get one case template"),
		mcp.WithString("domain_id", mcp.Required(), mcp.Description("Cases domain ID")),
		mcp.WithString("template_id", mcp.Required(), mcp.Description("Template ID")),
		regionParam(),
	), svc.CasesGetTemplate)

	s.AddTool(mcp.NewTool("cases_update_template",
		mcp.WithDescription("Update a case template's name or description"),
		mcp.WithString("domain_id", mcp.Required(), mcp.Description("Cases domain ID")),
		mcp.WithString("template_id", mcp.Required(), mcp.Description("Template ID")),
		mcp.WithString("name", mcp.Description("New name")),
		mcp.WithString("description", mcp.Description("New description")),
		regionParam(),
	), svc.CasesUpdateTemplate)

	s.AddTool(mcp.NewTool("cases_create_field",
		mcp.WithDescription("Create a case field"),
		mcp.WithString("domain_id", mcp.Required(), mcp.Description("Cases domain ID")),
		mcp.WithString("name", mcp.Required(), mcp.Description("Field name")),
		mcp.WithString("field_type", mcp.Required(), mcp.Description("Text, Number, Boolean, DateTime, SingleSelect, Url or User")),
		mcp.WithString("description", mcp.Description("Field description")),
		regionParam(),
	), svc.CasesCreateField)

	s.AddTool(mcp.NewTool("cases_list_fields",
		mcp.WithDescription("List case fields in a domain"),
		mcp.WithString("domain_id", mcp.Required(), mcp.Description("Cases domain ID")),
		mcp.WithNumber("max_results", mcp.Description("Page size, default 25")),
		regionParam(),
	), svc.CasesListFields)

	s.AddTool(mcp.NewTool("cases_update_field",
		mcp.WithDescription("Update a case field's name or description"),
		mcp.WithString("domain_id", mcp.Required(), mcp.Description("Cases domain ID")),
		mcp.WithString("field_id", mcp.Required(), mcp.Description("Field ID")),
		mcp.WithString("name", mcp.Description("New name")),
		mcp.WithString("description", mcp.Description("New description")),
		regionParam(),
	), svc.CasesUpdateField)

	s.AddTool(mcp.NewTool("cases_create_layout",
		mcp.WithDescription("Create a case layout from a basic layout document"),
		mcp.WithString("domain_id", mcp.Required(), mcp.Description("Cases domain ID")),
		mcp.WithString("name", mcp.Required(), mcp.Description("Layout name")),
		mcp.WithObject("content", mcp.Required(), mcp.Description("Layout document: {basic: {topPanel, moreInfo}} with field-group sections")),
		regionParam(),
	), svc.CasesCreateLayout)

	s.AddTool(mcp.NewTool("cases_list_layouts",
		mcp.WithDescription("List case layouts in a domain"),
		mcp.WithString("domain_id", mcp.Required(), mcp.Description("Cases domain ID")),
		mcp.WithNumber("max_results", mcp.Description("Page size, default 25")),
		regionParam(),
	), svc.CasesListLayouts)

	s.AddTool(mcp.NewTool("cases_update_case",
		mcp.WithDescription("Update field values on a case"),
		mcp.WithString("domain_id", mcp.Required(), mcp.Description("Cases domain ID")),
		mcp.WithString("case_id", mcp.Required(), mcp.Description("Case ID")),
		mcp.WithObject("fields", mcp.Required(), mcp.Description("Field ID to string value map")),
		regionParam(),
	), svc.CasesUpdateCase)

	s.AddTool(mcp.NewTool("cases_delete_case",
		mcp.WithDescription("Delete a case"),
		mcp.WithString("domain_id", mcp.Required(), mcp.Description("Cases domain ID")),
		mcp.WithString("case_id", mcp.Required(), mcp.Description("Case ID")),
		regionParam(),
	), svc.CasesDeleteCase)

	s.AddTool(mcp.NewTool("cases_create_related_item",
		mcp.WithDescription("Attach a comment or contact to a case"),
		mcp.WithString("domain_id", mcp.Required(), mcp.Description("Cases domain ID")),
		mcp.WithString("case_id", mcp.Required(), mcp.Description("Case ID")),
		mcp.WithString("item_type", mcp.Required(), mcp.Description("Comment or Contact")),
		mcp.WithString("body", mcp.Description("Comment body (item_type Comment)")),
		mcp.WithString("contact_arn", mcp.Description("Contact ARN (item_type Contact)")),
		regionParam(),
	), svc.CasesCreateRelatedItem)

	s.AddTool(mcp.NewTool("cases_list_cases_for_contact",
		mcp.WithDescription("List cases related to a contact"),
		mcp.WithString("domain_id", mcp.Required(), mcp.Description("Cases domain ID")),
		mcp.WithString("contact_arn", mcp.Required(), mcp.Description("Contact ARN")),
		mcp.WithNumber("max_results", mcp.Description("Page size, default 25")),
		regionParam(),
	), svc.CasesListCasesForContact)

	s.AddTool(mcp.NewTool("cases_create_domain",
		mcp.WithDescription("Create a Cases domain"),
		mcp.WithString("name", mcp.Required(), mcp.Description("Domain name")),
		regionParam(),
	), svc.CasesCreateDomain)

	s.AddTool(mcp.NewTool("cases_list_domains",
		mcp.WithDescription("List Cases domains"),
		mcp.WithNumber("max_results", mcp.Description("Page size, at most 10")),
		regionParam(),
	), svc.CasesListDomains)

	s.AddTool(mcp.NewTool("cases_get_domain",
		mcp.WithDescription("Get Cases domain details"),
		mcp.WithString("domain_id", mcp.Required(), mcp.Description("Cases domain ID")),
		regionParam(),
	), svc.CasesGetDomain)
}

func registerContacts(s *server.MCPServer, svc *Service) {
	s.AddTool(mcp.NewTool("contacts_start_outbound_voice",
		mcp.WithDescription("Place an outbound call"),
		mcp.WithString("instance_id", mcp.Required(), mcp.Description("Connect instance ID")),
		mcp.WithString("destination_phone", mcp.Required(), mcp.Description("E.164 destination number")),
		mcp.WithString("contact_flow_id", mcp.Required(), mcp.Description("Outbound contact flow ID")),
		mcp.WithString("source_phone", mcp.Required(), mcp.Description("E.164 claimed source number")),
		mcp.WithObject("attributes", mcp.Description("Contact attributes")),
		regionParam(),
	), svc.ContactsStartOutboundVoice)

	s.AddTool(mcp.NewTool("contacts_start_chat",
		mcp.WithDescription("Start a chat contact"),
		mcp.WithString("instance_id", mcp.Required(), mcp.Description("Connect instance ID")),
		mcp.WithString("contact_flow_id", mcp.Required(), mcp.Description("Chat contact flow ID")),
		mcp.WithString("participant_display_name", mcp.Required(), mcp.Description("Customer display name")),
		mcp.WithObject("attributes", mcp.Description("Contact attributes")),
		regionParam(),
	), svc.ContactsStartChat)

	s.AddTool(mcp.NewTool("contacts_start_task",
		mcp.WithDescription("Create a task contact"),
		mcp.WithString("instance_id", mcp.Required(), mcp.Description("Connect instance ID")),
		mcp.WithString("contact_flow_id", mcp.Required(), mcp.Description("Task contact flow ID")),
		mcp.WithString("name", mcp.Required(), mcp.Description("Task name")),
		mcp.WithString("description", mcp.Description("Task description")),
		mcp.WithObject("attributes", mcp.Description("Contact attributes")),
		regionParam(),
	), svc.ContactsStartTask)

	s.AddTool(mcp.NewTool("contacts_stop",
		mcp.WithDescription("Stop an active contact"),
		mcp.WithString("instance_id", mcp.Required(), mcp.Description("Connect instance ID")),
		mcp.WithString("contact_id", mcp.Required(), mcp.Description("Contact ID")),
		regionParam(),
	), svc.ContactsStop)

	s.AddTool(mcp.NewTool("contacts_transfer",
		mcp.WithDescription("Transfer a contact to a queue or agent"),
		mcp.WithString("instance_id", mcp.Required(), mcp.Description("Connect instance ID")),
		mcp.WithString("contact_id", mcp.Required(), mcp.Description("Contact ID")),
		mcp.WithString("contact_flow_id", mcp.Required(), mcp.Description("Transfer contact flow ID")),
		mcp.WithString("queue_id", mcp.Description("Target queue ID")),
		mcp.WithString("user_id", mcp.Description("Target agent user ID")),
		regionParam(),
	), svc.ContactsTransfer)

	s.AddTool(mcp.NewTool("contacts_update_attributes",
		mcp.WithDescription("Update attributes on a contact"),
		mcp.WithString("instance_id", mcp.Required(), mcp.Description("Connect instance ID")),
		mcp.WithString("contact_id", mcp.Required(), mcp.Description("Initial contact ID")),
		mcp.WithObject("attributes", mcp.Required(), mcp.Description("Attribute key/value map")),
		regionParam(),
	), svc.ContactsUpdateAttributes)

	s.AddTool(mcp.NewTool("contacts_start_recording",
		mcp.WithDescription("Start voice recording on a contact"),
		mcp.WithString("instance_id", mcp.Required(), mcp.Description("Connect instance ID")),
		mcp.WithString("contact_id", mcp.Required(), mcp.Description("Contact ID")),
		mcp.WithString("track", mcp.Description("ALL, FROM_AGENT or TO_AGENT (default ALL)")),
		regionParam(),
	), svc.ContactsStartRecording)

	s.AddTool(mcp.NewTool("contacts_stop_recording",
		mcp.WithDescription("Stop voice recording on a contact"),
		mcp.WithString("instance_id", mcp.Required(), mcp.Description("Connect instance ID")),
		mcp.WithString("contact_id", mcp.Required(), mcp.Description("Contact ID")),
		regionParam(),
	), svc.ContactsStopRecording)
}

func registerSession(s *server.MCPServer, svc *Service) {
	s.AddTool(mcp.NewTool("session_set",
		mcp.WithDescription("Set the default region for subsequent tool calls"),
		mcp.WithString("region", mcp.Required(), mcp.Description("AWS region, e.g. us-east-1")),
	), svc.SessionSet)

	s.AddTool(mcp.NewTool("session_get",
		mcp.WithDescription("Show the current session defaults"),
	), svc.SessionGet)

	s.AddTool(mcp.NewTool("session_clear",
		mcp.WithDescription("Clear the session defaults"),
	), svc.SessionClear)
}

func registerConfig(s *server.MCPServer, svc *Service) {
	s.AddTool(mcp.NewTool("config_list_contact_flows",
		mcp.WithDescription("List contact flows"),
		mcp.WithString("instance_id", mcp.Required(), mcp.Description("Connect instance ID")),
		mcp.WithNumber("max_results", mcp.Description("Page size (default 100)")),
		regionParam(),
	), svc.ConfigListContactFlows)

	s.AddTool(mcp.NewTool("config_describe_contact_flow",
		mcp.WithDescription("Get a contact flow, including its content"),
		mcp.WithString("instance_id", mcp.Required(), mcp.Description("Connect instance ID")),
		mcp.WithString("contact_flow_id", mcp.Required(), mcp.Description("Contact flow ID")),
		regionParam(),
	), svc.ConfigDescribeContactFlow)

	s.AddTool(mcp.NewTool("config_create_contact_flow",
		mcp.WithDescription("Create a contact flow"),
		mcp.WithString("instance_id", mcp.Required(), mcp.Description("Connect instance ID")),
		mcp.WithString("name", mcp.Required(), mcp.Description("Flow name")),
		mcp.WithString("flow_type", mcp.Required(), mcp.Description("CONTACT_FLOW, CUSTOMER_QUEUE, AGENT_TRANSFER, ...")),
		mcp.WithString("content", mcp.Required(), mcp.Description("Flow definition JSON")),
		mcp.WithString("description", mcp.Description("Flow description")),
		regionParam(),
	), svc.ConfigCreateContactFlow)

	s.AddTool(mcp.NewTool("config_update_contact_flow_content",
		mcp.WithDescription("Replace a contact flow's content"),
		mcp.WithString("instance_id", mcp.Required(), mcp.Description("Connect instance ID")),
		mcp.WithString("contact_flow_id", mcp.Required(), mcp.Description("Contact flow ID")),
		mcp.WithString("content", mcp.Required(), mcp.Description("Flow definition JSON")),
		regionParam(),
	), svc.ConfigUpdateContactFlowContent)

	s.AddTool(mcp.NewTool("config_create_queue",
		mcp.WithDescription("Create a queue"),
		mcp.WithString("instance_id", mcp.Required(), mcp.Description("Connect instance ID")),
		mcp.WithString("name", mcp.Required(), mcp.Description("Queue name")),
		mcp.WithString("hours_of_operation_id", mcp.Required(), mcp.Description("Hours of operation ID")),
		mcp.WithString("description", mcp.Description("Queue description")),
		regionParam(),
	), svc.ConfigCreateQueue)

	s.AddTool(mcp.NewTool("config_describe_queue",
		mcp.WithDescription("Get queue details"),
		mcp.WithString("instance_id", mcp.Required(), mcp.Description("Connect instance ID")),
		mcp.WithString("queue_id", mcp.Required(), mcp.Description("Queue ID")),
		regionParam(),
	), svc.ConfigDescribeQueue)

	s.AddTool(mcp.NewTool("config_update_queue_status",
		mcp.WithDescription("Enable or disable a queue"),
		mcp.WithString("instance_id", mcp.Required(), mcp.Description("Connect instance ID")),
		mcp.WithString("queue_id", mcp.Required(), mcp.Description("Queue ID")),
		mcp.WithString("status", mcp.Required(), mcp.Description("ENABLED or DISABLED")),
		regionParam(),
	), svc.ConfigUpdateQueueStatus)

	s.AddTool(mcp.NewTool("config_list_phone_numbers",
		mcp.WithDescription("List claimed phone numbers"),
		mcp.WithString("instance_id", mcp.Required(), mcp.Description("Connect instance ID")),
		mcp.WithNumber("max_results", mcp.Description("Page size (default 100)")),
		regionParam(),
	), svc.ConfigListPhoneNumbers)

	s.AddTool(mcp.NewTool("config_list_routing_profiles",
		mcp.WithDescription("List routing profiles"),
		mcp.WithString("instance_id", mcp.Required(), mcp.Description("Connect instance ID")),
		mcp.WithNumber("max_results", mcp.Description("Page size (default 100)")),
		regionParam(),
	), svc.ConfigListRoutingProfiles)

	s.AddTool(mcp.NewTool("config_create_routing_profile",
		mcp.WithDescription("Create a routing profile; defaults to voice 1 / chat 2 concurrency"),
		mcp.WithString("instance_id", mcp.Required(), mcp.Description("Connect instance ID")),
		mcp.WithString("name", mcp.Required(), mcp.Description("Routing profile name")),
		mcp.WithString("default_outbound_queue_id", mcp.Required(), mcp.Description("Default outbound queue")),
		mcp.WithString("description", mcp.Description("Routing profile description")),
		mcp.WithArray("media_concurrencies", mcp.Description("Objects of {channel, concurrency}")),
		regionParam(),
	), svc.ConfigCreateRoutingProfile)

	s.AddTool(mcp.NewTool("config_list_hours_of_operations",
		mcp.WithDescription("List hours of operation"),
		mcp.WithString("instance_id", mcp.Required(), mcp.Description("Connect instance ID")),
		mcp.WithNumber("max_results", mcp.Description("Page size (default 100)")),
		regionParam(),
	), svc.ConfigListHoursOfOperations)

	s.AddTool(mcp.NewTool("config_create_hours_of_operation",
		mcp.WithDescription("Create hours of operation from day/startTime/endTime entries"),
		mcp.WithString("instance_id", mcp.Required(), mcp.Description("Connect instance ID")),
		mcp.WithString("name", mcp.Required(), mcp.Description("Hours name")),
		mcp.WithString("time_zone", mcp.Required(), mcp.Description("IANA time zone, e.g. America/New_York")),
		mcp.WithArray("config", mcp.Required(), mcp.Description("Objects of {day, startTime: {hours, minutes}, endTime: {hours, minutes}}")),
		regionParam(),
	), svc.ConfigCreateHoursOfOperation)

	s.AddTool(mcp.NewTool("config_list_users",
		mcp.WithDescription("List users"),
		mcp.WithString("instance_id", mcp.Required(), mcp.Description("Connect instance ID")),
		mcp.WithNumber("max_results", mcp.Description("Page size (default 100)")),
		regionParam(),
	), svc.ConfigListUsers)

	s.AddTool(mcp.NewTool("config_describe_user",
		mcp.WithDescription("Get user details"),
		mcp.WithString("instance_id", mcp.Required(), mcp.Description("Connect instance ID")),
		mcp.WithString("user_id", mcp.Required(), mcp.Description("User ID")),
		regionParam(),
	), svc.ConfigDescribeUser)

	s.AddTool(mcp.NewTool("config_create_user",
		mcp.WithDescription("Create a user (soft phone by default)"),
		mcp.WithString("instance_id", mcp.Required(), mcp.Description("Connect instance ID")),
		mcp.WithString("username", mcp.Required(), mcp.Description("Login name")),
		mcp.WithString("routing_profile_id", mcp.Required(), mcp.Description("Routing profile ID")),
		mcp.WithArray("security_profile_ids", mcp.Required(), mcp.Description("Security profile IDs")),
		mcp.WithString("phone_type", mcp.Description("SOFT_PHONE or DESK_PHONE (default SOFT_PHONE)")),
		regionParam(),
	), svc.ConfigCreateUser)

	s.AddTool(mcp.NewTool("config_update_user_routing_profile",
		mcp.WithDescription("Move a user to another routing profile"),
		mcp.WithString("instance_id", mcp.Required(), mcp.Description("Connect instance ID")),
		mcp.WithString("user_id", mcp.Required(), mcp.Description("User ID")),
		mcp.WithString("routing_profile_id", mcp.Required(), mcp.Description("New routing profile ID")),
		regionParam(),
	), svc.ConfigUpdateUserRoutingProfile)

	s.AddTool(mcp.NewTool("config_list_security_profiles",
		mcp.WithDescription("List security profiles"),
		mcp.WithString("instance_id", mcp.Required(), mcp.Description("Connect instance ID")),
		mcp.WithNumber("max_results", mcp.Description("Page size (default 100)")),
		regionParam(),
	), svc.ConfigListSecurityProfiles)

	s.AddTool(mcp.NewTool("config_list_agent_statuses",
		mcp.WithDescription("List agent statuses"),
		mcp.WithString("instance_id", mcp.Required(), mcp.Description("Connect instance ID")),
		mcp.WithNumber("max_results", mcp.Description("Page size (default 100)")),
		regionParam(),
	), svc.ConfigListAgentStatuses)

	s.AddTool(mcp.NewTool("config_put_user_status",
		mcp.WithDescription("Set an agent's status"),
		mcp.WithString("instance_id", mcp.Required(), mcp.Description("Connect instance ID")),
		mcp.WithString("user_id", mcp.Required(), mcp.Description("User ID")),
		mcp.WithString("agent_status_id", mcp.Required(), mcp.Description("Agent status ID")),
		regionParam(),
	), svc.ConfigPutUserStatus)
}

func registerAnalytics(s *server.MCPServer, svc *Service) {
	s.AddTool(mcp.NewTool("analytics_get_metric_data",
		mcp.WithDescription("Historical metrics over a time range (contacts queued/handled/abandoned, AHT by default)"),
		mcp.WithString("instance_id", mcp.Required(), mcp.Description("Connect instance ID")),
		mcp.WithString("start_time", mcp.Required(), mcp.Description("ISO 8601 start")),
		mcp.WithString("end_time", mcp.Required(), mcp.Description("ISO 8601 end")),
		mcp.WithArray("queue_ids", mcp.Description("Queue IDs to filter on")),
		mcp.WithArray("metrics", mcp.Description("Metric names to request")),
		regionParam(),
	), svc.AnalyticsGetMetricData)

	s.AddTool(mcp.NewTool("analytics_get_current_user_data",
		mcp.WithDescription("Real-time agent status data"),
		mcp.WithString("instance_id", mcp.Required(), mcp.Description("Connect instance ID")),
		mcp.WithArray("queue_ids", mcp.Description("Queue IDs to filter on")),
		regionParam(),
	), svc.AnalyticsGetCurrentUserData)

	s.AddTool(mcp.NewTool("analytics_list_contact_evaluations",
		mcp.WithDescription("List evaluations for a contact"),
		mcp.WithString("instance_id", mcp.Required(), mcp.Description("Connect instance ID")),
		mcp.WithString("contact_id", mcp.Required(), mcp.Description("Contact ID")),
		regionParam(),
	), svc.AnalyticsListContactEvaluations)

	s.AddTool(mcp.NewTool("analytics_start_contact_evaluation",
		mcp.WithDescription("Start an evaluation for a contact"),
		mcp.WithString("instance_id", mcp.Required(), mcp.Description("Connect instance ID")),
		mcp.WithString("contact_id", mcp.Required(), mcp.Description("Contact ID")),
		mcp.WithString("evaluation_form_id", mcp.Required(), mcp.Description("Evaluation form ID")),
		regionParam(),
	), svc.AnalyticsStartContactEvaluation)

	s.AddTool(mcp.NewTool("analytics_list_evaluation_forms",
		mcp.WithDescription("List evaluation forms"),
		mcp.WithString("instance_id", mcp.Required(), mcp.Description("Connect instance ID")),
		mcp.WithNumber("max_results", mcp.Description("Page size (default 25)")),
		regionParam(),
	), svc.AnalyticsListEvaluationForms)
}

func registerProfiles(s *server.MCPServer, svc *Service) {
	s.AddTool(mcp.NewTool("profiles_create_profile",
		mcp.WithDescription("Create a customer profile"),
		mcp.WithString("domain_name", mcp.Required(), mcp.Description("Customer Profiles domain name")),
		mcp.WithString("first_name", mcp.Description("First name")),
		mcp.WithString("last_name", mcp.Description("Last name")),
		mcp.WithString("email", mcp.Description("Email address")),
		mcp.WithString("phone", mcp.Description("Phone number")),
		mcp.WithObject("attributes", mcp.Description("Custom attributes")),
		regionParam(),
	), svc.ProfilesCreate)

	s.AddTool(mcp.NewTool("profiles_search",
		mcp.WithDescription("Search profiles by key (e.g. _email, _phone, _account)"),
		mcp.WithString("domain_name", mcp.Required(), mcp.Description("Customer Profiles domain name")),
		mcp.WithString("key_name", mcp.Required(), mcp.Description("Search key name")),
		mcp.WithArray("values", mcp.Required(), mcp.Description("Values to match")),
		mcp.WithNumber("max_results", mcp.Description("Page size (default 25)")),
		regionParam(),
	), svc.ProfilesSearch)

	s.AddTool(mcp.NewTool("profiles_get_profile",
		mcp.WithDescription("Get a profile by its ID"),
		mcp.WithString("domain_name", mcp.Required(), mcp.Description("Customer Profiles domain name")),
		mcp.WithString("profile_id", mcp.Required(), mcp.Description("Profile ID")),
		regionParam(),
	), svc.ProfilesGet)

	s.AddTool(mcp.NewTool("profiles_update_profile",
		mcp.WithDescription("Update a customer profile"),
		mcp.WithString("domain_name", mcp.Required(), mcp.Description("Customer Profiles domain name")),
		mcp.WithString("profile_id", mcp.Required(), mcp.Description("Profile ID")),
		mcp.WithString("first_name", mcp.Description("First name")),
		mcp.WithString("last_name", mcp.Description("Last name")),
		mcp.WithString("email", mcp.Description("Email address")),
		mcp.WithString("phone", mcp.Description("Phone number")),
		mcp.WithObject("attributes", mcp.Description("Custom attributes")),
		regionParam(),
	), svc.ProfilesUpdate)

	s.AddTool(mcp.NewTool("profiles_delete_profile",
		mcp.WithDescription("Delete a customer profile"),
		mcp.WithString("domain_name", mcp.Required(), mcp.Description("Customer Profiles domain name")),
		mcp.WithString("profile_id", mcp.Required(), mcp.Description("Profile ID")),
		regionParam(),
	), svc.ProfilesDelete)

	s.AddTool(mcp.NewTool("profiles_merge",
		mcp.WithDescription("Merge duplicate profiles into one"),
		mcp.WithString("domain_name", mcp.Required(), mcp.Description("Customer Profiles domain name")),
		mcp.WithString("main_profile_id", mcp.Required(), mcp.Description("Surviving profile ID")),
		mcp.WithArray("profile_ids_to_merge", mcp.Required(), mcp.Description("Profile IDs to merge in")),
		regionParam(),
	), svc.ProfilesMerge)

	s.AddTool(mcp.NewTool("profiles_list_domains",
		mcp.WithDescription("List Customer Profiles domains"),
		mcp.WithNumber("max_results", mcp.Description("Page size (default 25)")),
		regionParam(),
	), svc.ProfilesListDomains)

	s.AddTool(mcp.NewTool("profiles_create_domain",
		mcp.WithDescription("Create a Customer Profiles domain"),
		mcp.WithString("domain_name", mcp.Required(), mcp.Description("Domain name")),
		mcp.WithNumber("default_expiration_days", mcp.Description("Profile retention in days (default 365)")),
		regionParam(),
	), svc.ProfilesCreateDomain)
}

func registerCampaigns(s *server.MCPServer, svc *Service) {
	s.AddTool(mcp.NewTool("campaigns_create",
		mcp.WithDescription("Create a telephony outbound campaign"),
		mcp.WithString("name", mcp.Required(), mcp.Description("Campaign name")),
		mcp.WithString("connect_instance_id", mcp.Required(), mcp.Description("Connect instance ID")),
		mcp.WithString("queue_id", mcp.Required(), mcp.Description("Outbound queue ID")),
		mcp.WithString("contact_flow_id", mcp.Required(), mcp.Description("Outbound contact flow ID")),
		mcp.WithString("source_phone", mcp.Required(), mcp.Description("E.164 source number")),
		mcp.WithString("outbound_mode", mcp.Description("agentless, predictive or progressive (default agentless)")),
		regionParam(),
	), svc.CampaignsCreate)

	s.AddTool(mcp.NewTool("campaigns_list",
		mcp.WithDescription("List campaigns for an instance"),
		mcp.WithString("connect_instance_id", mcp.Required(), mcp.Description("Connect instance ID")),
		mcp.WithNumber("max_results", mcp.Description("Page size (default 25)")),
		regionParam(),
	), svc.CampaignsList)

	s.AddTool(mcp.NewTool("campaigns_describe",
		mcp.WithDescription("Get campaign details"),
		mcp.WithString("campaign_id", mcp.Required(), mcp.Description("Campaign ID")),
		regionParam(),
	), svc.CampaignsDescribe)

	s.AddTool(mcp.NewTool("campaigns_start",
		mcp.WithDescription("Start a campaign"),
		mcp.WithString("campaign_id", mcp.Required(), mcp.Description("Campaign ID")),
		regionParam(),
	), svc.CampaignsStart)

	s.AddTool(mcp.NewTool("campaigns_pause",
		mcp.WithDescription("Pause a campaign"),
		mcp.WithString("campaign_id", mcp.Required(), mcp.Description("Campaign ID")),
		regionParam(),
	), svc.CampaignsPause)

	s.AddTool(mcp.NewTool("campaigns_resume",
		mcp.WithDescription("Resume a paused campaign"),
		mcp.WithString("campaign_id", mcp.Required(), mcp.Description("Campaign ID")),
		regionParam(),
	), svc.CampaignsResume)

	s.AddTool(mcp.NewTool("campaigns_stop",
		mcp.WithDescription("Stop a campaign"),
		mcp.WithString("campaign_id", mcp.Required(), mcp.Description("Campaign ID")),
		regionParam(),
	), svc.CampaignsStop)

	s.AddTool(mcp.NewTool("campaigns_delete",
		mcp.WithDescription("Delete a campaign"),
		mcp.WithString("campaign_id", mcp.Required(), mcp.Description("Campaign ID")),
		regionParam(),
	), svc.CampaignsDelete)

	s.AddTool(mcp.NewTool("campaigns_get_state",
		mcp.WithDescription("Get a campaign's run state"),
		mcp.WithString("campaign_id", mcp.Required(), mcp.Description("Campaign ID")),
		regionParam(),
	), svc.CampaignsGetState)

	s.AddTool(mcp.NewTool("campaigns_put_outbound_requests",
		mcp.WithDescription("Add contacts to a campaign's dial list"),
		mcp.WithString("campaign_id", mcp.Required(), mcp.Description("Campaign ID")),
		mcp.WithArray("outbound_requests", mcp.Required(), mcp.Description("Objects of {destination_phone, attributes}")),
		regionParam(),
	), svc.CampaignsPutOutboundRequests)

	s.AddTool(mcp.NewTool("campaigns_start_onboarding",
		mcp.WithDescription("Onboard an instance for outbound campaigns"),
		mcp.WithString("connect_instance_id", mcp.Required(), mcp.Description("Connect instance ID")),
		mcp.WithString("kms_key_arn", mcp.Description("KMS key for encryption; omit to disable")),
		regionParam(),
	), svc.CampaignsStartOnboarding)

	s.AddTool(mcp.NewTool("campaigns_get_onboarding_status",
		mcp.WithDescription("Get campaign onboarding job status"),
		mcp.WithString("connect_instance_id", mcp.Required(), mcp.Description("Connect instance ID")),
		regionParam(),
	), svc.CampaignsGetOnboardingStatus)

	s.AddTool(mcp.NewTool("campaigns_delete_onboarding",
		mcp.WithDescription("Delete a campaign onboarding job"),
		mcp.WithString("connect_instance_id", mcp.Required(), mcp.Description("Connect instance ID")),
		regionParam(),
	), svc.CampaignsDeleteOnboarding)
}

func registerAI(s *server.MCPServer, svc *Service) {
	s.AddTool(mcp.NewTool("ai_list_assistants",
		mcp.WithDescription("List Amazon Q in Connect assistants"),
		regionParam(),
	), svc.AIListAssistants)

	s.AddTool(mcp.NewTool("ai_query_assistant",
		mcp.WithDescription("Query an assistant for recommendations"),
		mcp.WithString("assistant_id", mcp.Required(), mcp.Description("Assistant ID")),
		mcp.WithString("query_text", mcp.Required(), mcp.Description("Natural-language query")),
		mcp.WithNumber("max_results", mcp.Description("Result cap (default 10)")),
		regionParam(),
	), svc.AIQueryAssistant)

	s.AddTool(mcp.NewTool("ai_list_knowledge_bases",
		mcp.WithDescription("List knowledge bases"),
		regionParam(),
	), svc.AIListKnowledgeBases)

	s.AddTool(mcp.NewTool("ai_search_content",
		mcp.WithDescription("Search knowledge base content by name"),
		mcp.WithString("knowledge_base_id", mcp.Required(), mcp.Description("Knowledge base ID")),
		mcp.WithString("search_expression", mcp.Required(), mcp.Description("Content name to match")),
		mcp.WithNumber("max_results", mcp.Description("Result cap (default 10)")),
		regionParam(),
	), svc.AISearchContent)

	s.AddTool(mcp.NewTool("ai_get_recommendations",
		mcp.WithDescription("Get AI recommendations for a session"),
		mcp.WithString("assistant_id", mcp.Required(), mcp.Description("Assistant ID")),
		mcp.WithString("session_id", mcp.Required(), mcp.Description("Session ID")),
		mcp.WithNumber("max_results", mcp.Description("Result cap (default 5)")),
		regionParam(),
	), svc.AIGetRecommendations)

	s.AddTool(mcp.NewTool("ai_create_session",
		mcp.WithDescription("Create an assistant session"),
		mcp.WithString("assistant_id", mcp.Required(), mcp.Description("Assistant ID")),
		mcp.WithString("name", mcp.Required(), mcp.Description("Session name")),
		regionParam(),
	), svc.AICreateSession)

	s.AddTool(mcp.NewTool("ai_list_quick_responses",
		mcp.WithDescription("List quick responses in a knowledge base"),
		mcp.WithString("knowledge_base_id", mcp.Required(), mcp.Description("Knowledge base ID")),
		mcp.WithNumber("max_results", mcp.Description("Page size (default 25)")),
		regionParam(),
	), svc.AIListQuickResponses)

	s.AddTool(mcp.NewTool("ai_search_quick_responses",
		mcp.WithDescription("Search quick responses by content"),
		mcp.WithString("knowledge_base_id", mcp.Required(), mcp.Description("Knowledge base ID")),
		mcp.WithString("query_text", mcp.Required(), mcp.Description("Text to search for")),
		mcp.WithNumber("max_results", mcp.Description("Result cap (default 10)")),
		regionParam(),
	), svc.AISearchQuickResponses)

	s.AddTool(mcp.NewTool("qic_search",
		mcp.WithDescription("Search the Connect knowledge base (Q in Connect); picks the first assistant when none is given"),
		mcp.WithString("query_text", mcp.Required(), mcp.Description("Natural-language query")),
		mcp.WithString("assistant_id", mcp.Description("Assistant to query; first available when omitted")),
		mcp.WithNumber("max_results", mcp.Description("Result cap (default 10)")),
		regionParam(),
	), svc.QICSearch)
}

func registerTemplates(s *server.MCPServer, svc *Service) {
	s.AddTool(mcp.NewTool("template_list",
		mcp.WithDescription("List embedded Connect configuration templates, grouped by category"),
		mcp.WithString("category", mcp.Description("cases, views, data_tables, routing, profiles, ai, campaigns or iac")),
	), svc.TemplateList)

	s.AddTool(mcp.NewTool("template_get",
		mcp.WithDescription("Get one template by category and name"),
		mcp.WithString("category", mcp.Required(), mcp.Description("Template category")),
		mcp.WithString("name", mcp.Required(), mcp.Description("Template name, without extension")),
		mcp.WithString("subcategory", mcp.Description("Subcategory, e.g. hours_of_operation")),
	), svc.TemplateGet)

	s.AddTool(mcp.NewTool("template_customize",
		mcp.WithDescription("Fetch a template and apply overrides; nothing is persisted"),
		mcp.WithString("category", mcp.Required(), mcp.Description("Template category")),
		mcp.WithString("name", mcp.Required(), mcp.Description("Template name")),
		mcp.WithObject("overrides", mcp.Required(), mcp.Description("Values to override")),
		mcp.WithString("subcategory", mcp.Description("Subcategory")),
	), svc.TemplateCustomize)
}

func registerWizard(s *server.MCPServer, svc *Service) {
	s.AddTool(mcp.NewTool("wizard_start_setup",
		mcp.WithDescription("Start (or reopen) an onboarding run and get the recommended configuration"),
		mcp.WithString("instance_name", mcp.Required(), mcp.Description("Desired instance alias / brand")),
		mcp.WithString("use_case", mcp.Description("basic, cases_enabled, ai_enhanced or full_enterprise (default basic)")),
		mcp.WithString("region", mcp.Description("AWS region (default us-east-1)")),
		mcp.WithString("website_url", mcp.Description("Brand website to mine for hours, industry and FAQs")),
	), svc.WizardStartSetup)

	s.AddTool(mcp.NewTool("wizard_resume",
		mcp.WithDescription("Run the provisioning checklist; skips completed steps, retries the failed one"),
		mcp.WithString("brand", mcp.Description("Brand the run was started with")),
		mcp.WithString("instance_name", mcp.Description("Accepted in place of brand")),
	), svc.WizardResume)

	s.AddTool(mcp.NewTool("wizard_run_status",
		mcp.WithDescription("Inspect an onboarding run, or list runs when brand is omitted"),
		mcp.WithString("brand", mcp.Description("Brand / instance name")),
		mcp.WithString("instance_name", mcp.Description("Accepted in place of brand")),
	), svc.WizardRunStatus)

	s.AddTool(mcp.NewTool("wizard_get_iac_template",
		mcp.WithDescription("CloudFormation blueprint with parameters and deployment commands"),
		mcp.WithString("use_case", mcp.Description("Deployment type (default basic)")),
		mcp.WithString("instance_name", mcp.Description("Instance alias")),
		mcp.WithString("region", mcp.Description("AWS region")),
		mcp.WithString("timezone", mcp.Description("Hours-of-operation time zone")),
		mcp.WithBoolean("enable_contact_lens", mcp.Description("Enable Contact Lens (default true)")),
	), svc.WizardGetIACTemplate)
}
