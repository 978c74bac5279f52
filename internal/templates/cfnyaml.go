package templates

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// decodeYAML parses a YAML template into a plain map, converting
// CloudFormation short-form intrinsics (!Ref, !GetAtt, !Sub, ...) into their
// long-form mapping equivalents so the document round-trips as ordinary
// JSON-compatible data.
func decodeYAML(data []byte) (map[string]any, error) {
	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		return nil, err
	}
	v, err := nodeValue(&node)
	if err != nil {
		return nil, err
	}
	doc, ok := v.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("template root is %T, expected a mapping", v)
	}
	return doc, nil
}

func nodeValue(n *yaml.Node) (any, error) {
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return nil, nil
		}
		return nodeValue(n.Content[0])
	case yaml.AliasNode:
		return nodeValue(n.Alias)
	case yaml.MappingNode:
		m := make(map[string]any, len(n.Content)/2)
		for i := 0; i+1 < len(n.Content); i += 2 {
			var key string
			if err := n.Content[i].Decode(&key); err != nil {
				return nil, err
			}
			v, err := nodeValue(n.Content[i+1])
			if err != nil {
				return nil, err
			}
			m[key] = v
		}
		return wrapIntrinsic(n.Tag, m), nil
	case yaml.SequenceNode:
		s := make([]any, 0, len(n.Content))
		for _, c := range n.Content {
			v, err := nodeValue(c)
			if err != nil {
				return nil, err
			}
			s = append(s, v)
		}
		return wrapIntrinsic(n.Tag, s), nil
	case yaml.ScalarNode:
		if isIntrinsicTag(n.Tag) {
			return wrapIntrinsic(n.Tag, n.Value), nil
		}
		var v any
		if err := n.Decode(&v); err != nil {
			return nil, err
		}
		return v, nil
	default:
		return nil, fmt.Errorf("unsupported yaml node kind %d", n.Kind)
	}
}

func isIntrinsicTag(tag string) bool {
	return strings.HasPrefix(tag, "!") && !strings.HasPrefix(tag, "!!")
}

// wrapIntrinsic maps a CFN short tag to its long form: !Ref x -> {Ref: x},
// anything else !Name v -> {Fn::Name: v}. GetAtt dotted strings become the
// list form CloudFormation expects.
func wrapIntrinsic(tag string, v any) any {
	if !isIntrinsicTag(tag) {
		return v
	}
	name := strings.TrimPrefix(tag, "!")
	switch name {
	case "Ref":
		return map[string]any{"Ref": v}
	case "GetAtt":
		if s, ok := v.(string); ok {
			parts := strings.SplitN(s, ".", 2)
			attr := make([]any, 0, len(parts))
			for _, p := range parts {
				attr = append(attr, p)
			}
			return map[string]any{"Fn::GetAtt": attr}
		}
		return map[string]any{"Fn::GetAtt": v}
	default:
		return map[string]any{"Fn::" + name: v}
	}
}
