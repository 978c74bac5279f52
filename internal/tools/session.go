package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
)

func (s *Service) SessionSet(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	region, errRes := argString(req, "region")
	if errRes != nil {
		return errRes, nil
	}
	s.session.SetRegion(region)
	return jsonResult(map[string]string{"status": "set", "region": region}), nil
}

func (s *Service) SessionGet(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return jsonResult(map[string]string{"region": s.session.Region()}), nil
}

func (s *Service) SessionClear(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	s.session.Clear()
	return jsonResult(map[string]string{"status": "cleared"}), nil
}
