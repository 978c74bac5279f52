package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/arcline/connect-mcp/internal/templates"
)

type templateEntry struct {
	Name        string `json:"name"`
	Subcategory string `json:"subcategory"`
	Path        string `json:"path"`
}

func (s *Service) TemplateList(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	infos := templates.List(optString(req, "category", ""))

	grouped := make(map[string][]templateEntry)
	for _, info := range infos {
		grouped[info.Category] = append(grouped[info.Category], templateEntry{
			Name:        info.Name,
			Subcategory: info.Subcategory,
			Path:        info.Path,
		})
	}
	return jsonResult(map[string]any{
		"total":      len(infos),
		"categories": grouped,
	}), nil
}

func (s *Service) TemplateGet(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	category, errRes := argString(req, "category")
	if errRes != nil {
		return errRes, nil
	}
	name, errRes := argString(req, "name")
	if errRes != nil {
		return errRes, nil
	}
	subcategory := optString(req, "subcategory", "")

	doc, err := templates.Get(category, name, subcategory)
	if err != nil {
		return errResult(err), nil
	}
	return jsonResult(map[string]any{
		"category":    category,
		"name":        name,
		"subcategory": subcategory,
		"template":    doc,
	}), nil
}

func (s *Service) TemplateCustomize(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	category, errRes := argString(req, "category")
	if errRes != nil {
		return errRes, nil
	}
	name, errRes := argString(req, "name")
	if errRes != nil {
		return errRes, nil
	}
	overrides := optMap(req, "overrides")

	doc, err := templates.Customize(category, name, optString(req, "subcategory", ""), overrides)
	if err != nil {
		return errResult(err), nil
	}
	return jsonResult(map[string]any{
		"category":   category,
		"name":       name,
		"customized": true,
		"template":   doc,
	}), nil
}
