package tools

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	casetypes "github.com/aws/aws-sdk-go-v2/service/connectcases/types"
	"github.com/mark3labs/mcp-go/mcp"
)

// argString returns a required string argument or an error result naming it.
func argString(req mcp.CallToolRequest, name string) (string, *mcp.CallToolResult) {
	v, ok := req.Params.Arguments[name].(string)
	if !ok || v == "" {
		return "", mcp.NewToolResultError(name + " is required")
	}
	return v, nil
}

// optString returns an optional string argument, def when absent.
func optString(req mcp.CallToolRequest, name, def string) string {
	if v, ok := req.Params.Arguments[name].(string); ok && v != "" {
		return v
	}
	return def
}

// optInt returns an optional integer argument. JSON numbers arrive as
// float64.
func optInt(req mcp.CallToolRequest, name string, def int) int {
	if v, ok := req.Params.Arguments[name].(float64); ok {
		return int(v)
	}
	return def
}

// optBool returns an optional boolean argument.
func optBool(req mcp.CallToolRequest, name string, def bool) bool {
	if v, ok := req.Params.Arguments[name].(bool); ok {
		return v
	}
	return def
}

// optStringSlice reads an optional array-of-strings argument. Non-string
// elements are skipped.
func optStringSlice(req mcp.CallToolRequest, name string) []string {
	raw, ok := req.Params.Arguments[name].([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(raw))
	for _, item := range raw {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

// optStringMap reads an optional object argument whose values are strings.
func optStringMap(req mcp.CallToolRequest, name string) map[string]string {
	raw, ok := req.Params.Arguments[name].(map[string]any)
	if !ok {
		return nil
	}
	out := make(map[string]string, len(raw))
	for k, v := range raw {
		if s, ok := v.(string); ok {
			out[k] = s
		}
	}
	return out
}

// argStringMap is like optStringMap but required.
func argStringMap(req mcp.CallToolRequest, name string) (map[string]string, *mcp.CallToolResult) {
	m := optStringMap(req, name)
	if len(m) == 0 {
		return nil, mcp.NewToolResultError(name + " is required")
	}
	return m, nil
}

// optMap reads an optional free-form object argument.
func optMap(req mcp.CallToolRequest, name string) map[string]any {
	m, _ := req.Params.Arguments[name].(map[string]any)
	return m
}

// argTime parses a required ISO 8601 timestamp argument.
func argTime(req mcp.CallToolRequest, name string) (time.Time, *mcp.CallToolResult) {
	v, errRes := argString(req, name)
	if errRes != nil {
		return time.Time{}, errRes
	}
	t, err := time.Parse(time.RFC3339, v)
	if err != nil {
		return time.Time{}, mcp.NewToolResultError(fmt.Sprintf("%s must be an ISO 8601 timestamp: %v", name, err))
	}
	return t, nil
}

// jsonResult marshals v into a text tool result.
func jsonResult(v any) *mcp.CallToolResult {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("encode result: %v", err))
	}
	return mcp.NewToolResultText(string(data))
}

// errResult turns a facade error into a tool error result. The error text
// already carries the upstream code and message for RemoteError.
func errResult(err error) *mcp.CallToolResult {
	return mcp.NewToolResultError(err.Error())
}

// caseFields reshapes a field-id to string-value map into the Cases API's
// list-of-{id, stringValue} form.
func caseFields(fields map[string]string) []casetypes.FieldValue {
	out := make([]casetypes.FieldValue, 0, len(fields))
	for id, value := range fields {
		out = append(out, casetypes.FieldValue{
			Id:    aws.String(id),
			Value: &casetypes.FieldValueUnionMemberStringValue{Value: value},
		})
	}
	return out
}
