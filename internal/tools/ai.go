package tools

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/qconnect"
	qctypes "github.com/aws/aws-sdk-go-v2/service/qconnect/types"
	"github.com/mark3labs/mcp-go/mcp"

	"github.com/arcline/connect-mcp/internal/errs"
	"github.com/arcline/connect-mcp/internal/toolcache"
)

func (s *Service) AIListAssistants(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	region := s.region(optString(req, "region", ""))

	key := toolcache.Key("ai_list_assistants", map[string]any{"region": region})
	out, err := s.cache.Do(key, func() (any, error) {
		client, err := s.registry.QConnect(ctx, region)
		if err != nil {
			return nil, err
		}
		resp, err := client.ListAssistants(ctx, &qconnect.ListAssistantsInput{})
		if err != nil {
			return nil, errs.Remote("ai_list_assistants", err)
		}
		return resp.AssistantSummaries, nil
	})
	if err != nil {
		return errResult(err), nil
	}
	return jsonResult(map[string]any{"AssistantSummaries": out}), nil
}

func (s *Service) AIQueryAssistant(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	assistantID, errRes := argString(req, "assistant_id")
	if errRes != nil {
		return errRes, nil
	}
	queryText, errRes := argString(req, "query_text")
	if errRes != nil {
		return errRes, nil
	}
	client, err := s.registry.QConnect(ctx, s.region(optString(req, "region", "")))
	if err != nil {
		return errResult(err), nil
	}
	out, err := client.QueryAssistant(ctx, &qconnect.QueryAssistantInput{
		AssistantId: aws.String(assistantID),
		QueryText:   aws.String(queryText),
		MaxResults:  aws.Int32(int32(optInt(req, "max_results", 10))),
	})
	if err != nil {
		return errResult(errs.Remote("ai_query_assistant", err)), nil
	}
	return jsonResult(out.Results), nil
}

func (s *Service) AIListKnowledgeBases(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	region := s.region(optString(req, "region", ""))

	key := toolcache.Key("ai_list_knowledge_bases", map[string]any{"region": region})
	out, err := s.cache.Do(key, func() (any, error) {
		client, err := s.registry.QConnect(ctx, region)
		if err != nil {
			return nil, err
		}
		resp, err := client.ListKnowledgeBases(ctx, &qconnect.ListKnowledgeBasesInput{})
		if err != nil {
			return nil, errs.Remote("ai_list_knowledge_bases", err)
		}
		return resp.KnowledgeBaseSummaries, nil
	})
	if err != nil {
		return errResult(err), nil
	}
	return jsonResult(map[string]any{"KnowledgeBaseSummaries": out}), nil
}

// AISearchContent searches a knowledge base by content name. The search
// expression supports exact matching only, so the query is an equals filter
// on the name field.
func (s *Service) AISearchContent(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	kbID, errRes := argString(req, "knowledge_base_id")
	if errRes != nil {
		return errRes, nil
	}
	query, errRes := argString(req, "search_expression")
	if errRes != nil {
		return errRes, nil
	}
	client, err := s.registry.QConnect(ctx, s.region(optString(req, "region", "")))
	if err != nil {
		return errResult(err), nil
	}
	out, err := client.SearchContent(ctx, &qconnect.SearchContentInput{
		KnowledgeBaseId: aws.String(kbID),
		SearchExpression: &qctypes.SearchExpression{
			Filters: []qctypes.Filter{{
				Field:    qctypes.FilterFieldName,
				Operator: qctypes.FilterOperatorEquals,
				Value:    aws.String(query),
			}},
		},
		MaxResults: aws.Int32(int32(optInt(req, "max_results", 10))),
	})
	if err != nil {
		return errResult(errs.Remote("ai_search_content", err)), nil
	}
	return jsonResult(out.ContentSummaries), nil
}

func (s *Service) AIGetRecommendations(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	assistantID, errRes := argString(req, "assistant_id")
	if errRes != nil {
		return errRes, nil
	}
	sessionID, errRes := argString(req, "session_id")
	if errRes != nil {
		return errRes, nil
	}
	client, err := s.registry.QConnect(ctx, s.region(optString(req, "region", "")))
	if err != nil {
		return errResult(err), nil
	}
	out, err := client.GetRecommendations(ctx, &qconnect.GetRecommendationsInput{
		AssistantId: aws.String(assistantID),
		SessionId:   aws.String(sessionID),
		MaxResults:  aws.Int32(int32(optInt(req, "max_results", 5))),
	})
	if err != nil {
		return errResult(errs.Remote("ai_get_recommendations", err)), nil
	}
	return jsonResult(out.Recommendations), nil
}

func (s *Service) AICreateSession(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	assistantID, errRes := argString(req, "assistant_id")
	if errRes != nil {
		return errRes, nil
	}
	name, errRes := argString(req, "name")
	if errRes != nil {
		return errRes, nil
	}
	client, err := s.registry.QConnect(ctx, s.region(optString(req, "region", "")))
	if err != nil {
		return errResult(err), nil
	}
	out, err := client.CreateSession(ctx, &qconnect.CreateSessionInput{
		AssistantId: aws.String(assistantID),
		Name:        aws.String(name),
	})
	if err != nil {
		return errResult(errs.Remote("ai_create_session", err)), nil
	}
	return jsonResult(out.Session), nil
}

func (s *Service) AIListQuickResponses(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	kbID, errRes := argString(req, "knowledge_base_id")
	if errRes != nil {
		return errRes, nil
	}
	region := s.region(optString(req, "region", ""))
	maxResults := optInt(req, "max_results", 25)

	key := toolcache.Key("ai_list_quick_responses", map[string]any{"knowledge_base_id": kbID, "region": region, "max_results": maxResults})
	out, err := s.cache.Do(key, func() (any, error) {
		client, err := s.registry.QConnect(ctx, region)
		if err != nil {
			return nil, err
		}
		resp, err := client.ListQuickResponses(ctx, &qconnect.ListQuickResponsesInput{
			KnowledgeBaseId: aws.String(kbID),
			MaxResults:      aws.Int32(int32(maxResults)),
		})
		if err != nil {
			return nil, errs.Remote("ai_list_quick_responses", err)
		}
		return resp.QuickResponseSummaries, nil
	})
	if err != nil {
		return errResult(err), nil
	}
	return jsonResult(map[string]any{"QuickResponseSummaries": out}), nil
}

func (s *Service) AISearchQuickResponses(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	kbID, errRes := argString(req, "knowledge_base_id")
	if errRes != nil {
		return errRes, nil
	}
	queryText, errRes := argString(req, "query_text")
	if errRes != nil {
		return errRes, nil
	}
	client, err := s.registry.QConnect(ctx, s.region(optString(req, "region", "")))
	if err != nil {
		return errResult(err), nil
	}
	out, err := client.SearchQuickResponses(ctx, &qconnect.SearchQuickResponsesInput{
		KnowledgeBaseId: aws.String(kbID),
		SearchExpression: &qctypes.QuickResponseSearchExpression{
			Queries: []qctypes.QuickResponseQueryField{{
				Name:     aws.String("content"),
				Operator: qctypes.QuickResponseQueryOperatorContains,
				Values:   []string{queryText},
			}},
		},
		MaxResults: aws.Int32(int32(optInt(req, "max_results", 10))),
	})
	if err != nil {
		return errResult(errs.Remote("ai_search_quick_responses", err)), nil
	}
	return jsonResult(out.Results), nil
}

// QICSearch is a convenience wrapper over ai_query_assistant. When no
// assistant id is given it queries the first assistant in the region.
func (s *Service) QICSearch(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	queryText, errRes := argString(req, "query_text")
	if errRes != nil {
		return errRes, nil
	}
	client, err := s.registry.QConnect(ctx, s.region(optString(req, "region", "")))
	if err != nil {
		return errResult(err), nil
	}

	assistantID := optString(req, "assistant_id", "")
	if assistantID == "" {
		resp, err := client.ListAssistants(ctx, &qconnect.ListAssistantsInput{MaxResults: aws.Int32(1)})
		if err != nil {
			return errResult(errs.Remote("qic_search", err)), nil
		}
		if len(resp.AssistantSummaries) == 0 {
			return mcp.NewToolResultError("no assistants found; pass assistant_id or create one first"), nil
		}
		assistantID = aws.ToString(resp.AssistantSummaries[0].AssistantId)
	}

	out, err := client.QueryAssistant(ctx, &qconnect.QueryAssistantInput{
		AssistantId: aws.String(assistantID),
		QueryText:   aws.String(queryText),
		MaxResults:  aws.Int32(int32(optInt(req, "max_results", 10))),
	})
	if err != nil {
		return errResult(errs.Remote("qic_search", err)), nil
	}
	return jsonResult(map[string]any{"assistant_id": assistantID, "results": out.Results}), nil
}
