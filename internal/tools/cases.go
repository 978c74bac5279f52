package tools

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/connectcases"
	casetypes "github.com/aws/aws-sdk-go-v2/service/connectcases/types"
	"github.com/mark3labs/mcp-go/mcp"

	"github.com/arcline/connect-mcp/internal/errs"
	"github.com/arcline/connect-mcp/internal/toolcache"
)

func (s *Service) CasesCreateTemplate(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	domainID, errRes := argString(req, "domain_id")
	if errRes != nil {
		return errRes, nil
	}
	name, errRes := argString(req, "name")
	if errRes != nil {
		return errRes, nil
	}
	input := &connectcases.CreateTemplateInput{
		DomainId:    aws.String(domainID),
		Name:        aws.String(name),
		Description: aws.String(optString(req, "description", "")),
	}
	for _, fieldID := range optStringSlice(req, "required_fields") {
		input.RequiredFields = append(input.RequiredFields, casetypes.RequiredField{FieldId: aws.String(fieldID)})
	}

	client, err := s.registry.Cases(ctx, s.region(optString(req, "region", "")))
	if err != nil {
		return errResult(err), nil
	}
	out, err := client.CreateTemplate(ctx, input)
	if err != nil {
		return errResult(errs.Remote("cases_create_template", err)), nil
	}
	return jsonResult(out), nil
}

func (s *Service) CasesListTemplates(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	domainID, errRes := argString(req, "domain_id")
	if errRes != nil {
		return errRes, nil
	}
	region := s.region(optString(req, "region", ""))
	maxResults := optInt(req, "max_results", 25)

	key := toolcache.Key("cases_list_templates", map[string]any{"domain_id": domainID, "region": region, "max_results": maxResults})
	out, err := s.cache.Do(key, func() (any, error) {
		client, err := s.registry.Cases(ctx, region)
		if err != nil {
			return nil, err
		}
		resp, err := client.ListTemplates(ctx, &connectcases.ListTemplatesInput{
			DomainId:   aws.String(domainID),
			MaxResults: aws.Int32(int32(maxResults)),
		})
		if err != nil {
			return nil, errs.Remote("cases_list_templates", err)
		}
		return resp.Templates, nil
	})
	if err != nil {
		return errResult(err), nil
	}
	return jsonResult(map[string]any{"templates": out}), nil
}

func (s *Service) CasesGetTemplate(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	domainID, errRes := argString(req, "domain_id")
	if errRes != nil {
		return errRes, nil
	}
	templateID, errRes := argString(req, "template_id")
	if errRes != nil {
		return errRes, nil
	}
	client, err := s.registry.Cases(ctx, s.region(optString(req, "region", "")))
	if err != nil {
		return errResult(err), nil
	}
	out, err := client.GetTemplate(ctx, &connectcases.GetTemplateInput{
		DomainId:   aws.String(domainID),
		TemplateId: aws.String(templateID),
	})
	if err != nil {
		return errResult(errs.Remote("cases_get_template", err)), nil
	}
	return jsonResult(out), nil
}

func (s *Service) CasesUpdateTemplate(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	domainID, errRes := argString(req, "domain_id")
	if errRes != nil {
		return errRes, nil
	}
	templateID, errRes := argString(req, "template_id")
	if errRes != nil {
		return errRes, nil
	}
	input := &connectcases.UpdateTemplateInput{
		DomainId:   aws.String(domainID),
		TemplateId: aws.String(templateID),
	}
	if name := optString(req, "name", ""); name != "" {
		input.Name = aws.String(name)
	}
	if desc := optString(req, "description", ""); desc != "" {
		input.Description = aws.String(desc)
	}

	client, err := s.registry.Cases(ctx, s.region(optString(req, "region", "")))
	if err != nil {
		return errResult(err), nil
	}
	if _, err := client.UpdateTemplate(ctx, input); err != nil {
		return errResult(errs.Remote("cases_update_template", err)), nil
	}
	return jsonResult(map[string]string{"status": "updated", "template_id": templateID}), nil
}

func (s *Service) CasesCreateField(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	domainID, errRes := argString(req, "domain_id")
	if errRes != nil {
		return errRes, nil
	}
	name, errRes := argString(req, "name")
	if errRes != nil {
		return errRes, nil
	}
	fieldType, errRes := argString(req, "field_type")
	if errRes != nil {
		return errRes, nil
	}
	client, err := s.registry.Cases(ctx, s.region(optString(req, "region", "")))
	if err != nil {
		return errResult(err), nil
	}
	out, err := client.CreateField(ctx, &connectcases.CreateFieldInput{
		DomainId:    aws.String(domainID),
		Name:        aws.String(name),
		Type:        casetypes.FieldType(fieldType),
		Description: aws.String(optString(req, "description", "")),
	})
	if err != nil {
		return errResult(errs.Remote("cases_create_field", err)), nil
	}
	return jsonResult(out), nil
}

func (s *Service) CasesListFields(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	domainID, errRes := argString(req, "domain_id")
	if errRes != nil {
		return errRes, nil
	}
	region := s.region(optString(req, "region", ""))
	maxResults := optInt(req, "max_results", 25)

	key := toolcache.Key("cases_list_fields", map[string]any{"domain_id": domainID, "region": region, "max_results": maxResults})
	out, err := s.cache.Do(key, func() (any, error) {
		client, err := s.registry.Cases(ctx, region)
		if err != nil {
			return nil, err
		}
		resp, err := client.ListFields(ctx, &connectcases.ListFieldsInput{
			DomainId:   aws.String(domainID),
			MaxResults: aws.Int32(int32(maxResults)),
		})
		if err != nil {
			return nil, errs.Remote("cases_list_fields", err)
		}
		return resp.Fields, nil
	})
	if err != nil {
		return errResult(err), nil
	}
	return jsonResult(map[string]any{"fields": out}), nil
}

func (s *Service) CasesUpdateField(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	domainID, errRes := argString(req, "domain_id")
	if errRes != nil {
		return errRes, nil
	}
	fieldID, errRes := argString(req, "field_id")
	if errRes != nil {
		return errRes, nil
	}
	input := &connectcases.UpdateFieldInput{
		DomainId: aws.String(domainID),
		FieldId:  aws.String(fieldID),
	}
	if name := optString(req, "name", ""); name != "" {
		input.Name = aws.String(name)
	}
	if desc := optString(req, "description", ""); desc != "" {
		input.Description = aws.String(desc)
	}

	client, err := s.registry.Cases(ctx, s.region(optString(req, "region", "")))
	if err != nil {
		return errResult(err), nil
	}
	if _, err := client.UpdateField(ctx, input); err != nil {
		return errResult(errs.Remote("cases_update_field", err)), nil
	}
	return jsonResult(map[string]string{"status": "updated", "field_id": fieldID}), nil
}

func (s *Service) CasesCreateLayout(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	domainID, errRes := argString(req, "domain_id")
	if errRes != nil {
		return errRes, nil
	}
	name, errRes := argString(req, "name")
	if errRes != nil {
		return errRes, nil
	}
	content := optMap(req, "content")
	if content == nil {
		return mcp.NewToolResultError("content is required"), nil
	}
	layout, err := layoutFromMap(content)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	client, err := s.registry.Cases(ctx, s.region(optString(req, "region", "")))
	if err != nil {
		return errResult(err), nil
	}
	out, err := client.CreateLayout(ctx, &connectcases.CreateLayoutInput{
		DomainId: aws.String(domainID),
		Name:     aws.String(name),
		Content:  layout,
	})
	if err != nil {
		return errResult(errs.Remote("cases_create_layout", err)), nil
	}
	return jsonResult(out), nil
}

// layoutFromMap converts the JSON layout document into the typed Cases
// layout. Expected shape:
//
//	{"basic": {"topPanel": {"sections": [{"fieldGroup": {"name": ..., "fields": [{"id": ...}]}}]},
//	           "moreInfo": {...}}}
func layoutFromMap(content map[string]any) (casetypes.LayoutContent, error) {
	basic, ok := content["basic"].(map[string]any)
	if !ok {
		return nil, fmt.Errorf("content must have a \"basic\" layout object")
	}
	value := casetypes.BasicLayout{}
	if top, ok := basic["topPanel"].(map[string]any); ok {
		value.TopPanel = layoutSections(top)
	}
	if more, ok := basic["moreInfo"].(map[string]any); ok {
		value.MoreInfo = layoutSections(more)
	}
	return &casetypes.LayoutContentMemberBasic{Value: value}, nil
}

func layoutSections(panel map[string]any) *casetypes.LayoutSections {
	raw, _ := panel["sections"].([]any)
	sections := make([]casetypes.Section, 0, len(raw))
	for _, item := range raw {
		sec, ok := item.(map[string]any)
		if !ok {
			continue
		}
		group, ok := sec["fieldGroup"].(map[string]any)
		if !ok {
			continue
		}
		fg := casetypes.FieldGroup{}
		if name, ok := group["name"].(string); ok {
			fg.Name = aws.String(name)
		}
		if fields, ok := group["fields"].([]any); ok {
			for _, f := range fields {
				if fm, ok := f.(map[string]any); ok {
					if id, ok := fm["id"].(string); ok {
						fg.Fields = append(fg.Fields, casetypes.FieldItem{Id: aws.String(id)})
					}
				}
			}
		}
		sections = append(sections, &casetypes.SectionMemberFieldGroup{Value: fg})
	}
	return &casetypes.LayoutSections{Sections: sections}
}

func (s *Service) CasesListLayouts(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	domainID, errRes := argString(req, "domain_id")
	if errRes != nil {
		return errRes, nil
	}
	client, err := s.registry.Cases(ctx, s.region(optString(req, "region", "")))
	if err != nil {
		return errResult(err), nil
	}
	out, err := client.ListLayouts(ctx, &connectcases.ListLayoutsInput{
		DomainId:   aws.String(domainID),
		MaxResults: aws.Int32(int32(optInt(req, "max_results", 25))),
	})
	if err != nil {
		return errResult(errs.Remote("cases_list_layouts", err)), nil
	}
	return jsonResult(map[string]any{"layouts": out.Layouts}), nil
}

func (s *Service) CasesUpdateCase(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	domainID, errRes := argString(req, "domain_id")
	if errRes != nil {
		return errRes, nil
	}
	caseID, errRes := argString(req, "case_id")
	if errRes != nil {
		return errRes, nil
	}
	fields, errRes := argStringMap(req, "fields")
	if errRes != nil {
		return errRes, nil
	}
	client, err := s.registry.Cases(ctx, s.region(optString(req, "region", "")))
	if err != nil {
		return errResult(err), nil
	}
	if _, err := client.UpdateCase(ctx, &connectcases.UpdateCaseInput{
		DomainId: aws.String(domainID),
		CaseId:   aws.String(caseID),
		Fields:   caseFields(fields),
	}); err != nil {
		return errResult(errs.Remote("cases_update_case", err)), nil
	}
	return jsonResult(map[string]string{"status": "updated", "case_id": caseID}), nil
}

func (s *Service) CasesDeleteCase(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	domainID, errRes := argString(req, "domain_id")
	if errRes != nil {
		return errRes, nil
	}
	caseID, errRes := argString(req, "case_id")
	if errRes != nil {
		return errRes, nil
	}
	client, err := s.registry.Cases(ctx, s.region(optString(req, "region", "")))
	if err != nil {
		return errResult(err), nil
	}
	if _, err := client.DeleteCase(ctx, &connectcases.DeleteCaseInput{
		DomainId: aws.String(domainID),
		CaseId:   aws.String(caseID),
	}); err != nil {
		return errResult(errs.Remote("cases_delete_case", err)), nil
	}
	return jsonResult(map[string]string{"status": "deleted", "case_id": caseID}), nil
}

func (s *Service) CasesCreateRelatedItem(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	domainID, errRes := argString(req, "domain_id")
	if errRes != nil {
		return errRes, nil
	}
	caseID, errRes := argString(req, "case_id")
	if errRes != nil {
		return errRes, nil
	}
	itemType, errRes := argString(req, "item_type")
	if errRes != nil {
		return errRes, nil
	}

	var content casetypes.RelatedItemInputContent
	switch casetypes.RelatedItemType(itemType) {
	case casetypes.RelatedItemTypeComment:
		body, errRes := argString(req, "body")
		if errRes != nil {
			return errRes, nil
		}
		content = &casetypes.RelatedItemInputContentMemberComment{
			Value: casetypes.CommentContent{
				Body:        aws.String(body),
				ContentType: casetypes.CommentBodyTextTypePlaintext,
			},
		}
	case casetypes.RelatedItemTypeContact:
		contactArn, errRes := argString(req, "contact_arn")
		if errRes != nil {
			return errRes, nil
		}
		content = &casetypes.RelatedItemInputContentMemberContact{
			Value: casetypes.Contact{ContactArn: aws.String(contactArn)},
		}
	default:
		return mcp.NewToolResultError("item_type must be Comment or Contact"), nil
	}

	client, err := s.registry.Cases(ctx, s.region(optString(req, "region", "")))
	if err != nil {
		return errResult(err), nil
	}
	out, err := client.CreateRelatedItem(ctx, &connectcases.CreateRelatedItemInput{
		DomainId: aws.String(domainID),
		CaseId:   aws.String(caseID),
		Type:     casetypes.RelatedItemType(itemType),
		Content:  content,
	})
	if err != nil {
		return errResult(errs.Remote("cases_create_related_item", err)), nil
	}
	return jsonResult(out), nil
}

func (s *Service) CasesListCasesForContact(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	domainID, errRes := argString(req, "domain_id")
	if errRes != nil {
		return errRes, nil
	}
	contactArn, errRes := argString(req, "contact_arn")
	if errRes != nil {
		return errRes, nil
	}
	client, err := s.registry.Cases(ctx, s.region(optString(req, "region", "")))
	if err != nil {
		return errResult(err), nil
	}
	out, err := client.ListCasesForContact(ctx, &connectcases.ListCasesForContactInput{
		DomainId:   aws.String(domainID),
		ContactArn: aws.String(contactArn),
		MaxResults: aws.Int32(int32(optInt(req, "max_results", 25))),
	})
	if err != nil {
		return errResult(errs.Remote("cases_list_cases_for_contact", err)), nil
	}
	return jsonResult(out), nil
}

func (s *Service) CasesCreateDomain(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, errRes := argString(req, "name")
	if errRes != nil {
		return errRes, nil
	}
	client, err := s.registry.Cases(ctx, s.region(optString(req, "region", "")))
	if err != nil {
		return errResult(err), nil
	}
	out, err := client.CreateDomain(ctx, &connectcases.CreateDomainInput{Name: aws.String(name)})
	if err != nil {
		return errResult(errs.Remote("cases_create_domain", err)), nil
	}
	return jsonResult(out), nil
}

func (s *Service) CasesListDomains(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	region := s.region(optString(req, "region", ""))
	maxResults := optInt(req, "max_results", 10)
	if maxResults > 10 {
		maxResults = 10
	}

	key := toolcache.Key("cases_list_domains", map[string]any{"region": region, "max_results": maxResults})
	out, err := s.cache.Do(key, func() (any, error) {
		client, err := s.registry.Cases(ctx, region)
		if err != nil {
			return nil, err
		}
		resp, err := client.ListDomains(ctx, &connectcases.ListDomainsInput{MaxResults: aws.Int32(int32(maxResults))})
		if err != nil {
			return nil, errs.Remote("cases_list_domains", err)
		}
		return resp.Domains, nil
	})
	if err != nil {
		return errResult(err), nil
	}
	return jsonResult(map[string]any{"domains": out}), nil
}

func (s *Service) CasesGetDomain(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	domainID, errRes := argString(req, "domain_id")
	if errRes != nil {
		return errRes, nil
	}
	client, err := s.registry.Cases(ctx, s.region(optString(req, "region", "")))
	if err != nil {
		return errResult(err), nil
	}
	out, err := client.GetDomain(ctx, &connectcases.GetDomainInput{DomainId: aws.String(domainID)})
	if err != nil {
		return errResult(errs.Remote("cases_get_domain", err)), nil
	}
	return jsonResult(out), nil
}
