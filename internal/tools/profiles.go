package tools

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/customerprofiles"
	"github.com/mark3labs/mcp-go/mcp"

	"github.com/arcline/connect-mcp/internal/errs"
	"github.com/arcline/connect-mcp/internal/toolcache"
)

func (s *Service) ProfilesCreate(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	domainName, errRes := argString(req, "domain_name")
	if errRes != nil {
		return errRes, nil
	}
	input := &customerprofiles.CreateProfileInput{
		DomainName: aws.String(domainName),
		Attributes: optStringMap(req, "attributes"),
	}
	if v := optString(req, "first_name", ""); v != "" {
		input.FirstName = aws.String(v)
	}
	if v := optString(req, "last_name", ""); v != "" {
		input.LastName = aws.String(v)
	}
	if v := optString(req, "email", ""); v != "" {
		input.EmailAddress = aws.String(v)
	}
	if v := optString(req, "phone", ""); v != "" {
		input.PhoneNumber = aws.String(v)
	}

	client, err := s.registry.Profiles(ctx, s.region(optString(req, "region", "")))
	if err != nil {
		return errResult(err), nil
	}
	out, err := client.CreateProfile(ctx, input)
	if err != nil {
		return errResult(errs.Remote("profiles_create_profile", err)), nil
	}
	return jsonResult(out), nil
}

func (s *Service) ProfilesSearch(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	domainName, errRes := argString(req, "domain_name")
	if errRes != nil {
		return errRes, nil
	}
	keyName, errRes := argString(req, "key_name")
	if errRes != nil {
		return errRes, nil
	}
	values := optStringSlice(req, "values")
	if len(values) == 0 {
		return mcp.NewToolResultError("values is required"), nil
	}
	client, err := s.registry.Profiles(ctx, s.region(optString(req, "region", "")))
	if err != nil {
		return errResult(err), nil
	}
	out, err := client.SearchProfiles(ctx, &customerprofiles.SearchProfilesInput{
		DomainName: aws.String(domainName),
		KeyName:    aws.String(keyName),
		Values:     values,
		MaxResults: aws.Int32(int32(optInt(req, "max_results", 25))),
	})
	if err != nil {
		return errResult(errs.Remote("profiles_search", err)), nil
	}
	return jsonResult(out.Items), nil
}

// ProfilesGet looks a profile up by its id. Customer Profiles has no direct
// get call, so this searches on the built-in _profileId key.
func (s *Service) ProfilesGet(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	domainName, errRes := argString(req, "domain_name")
	if errRes != nil {
		return errRes, nil
	}
	profileID, errRes := argString(req, "profile_id")
	if errRes != nil {
		return errRes, nil
	}
	client, err := s.registry.Profiles(ctx, s.region(optString(req, "region", "")))
	if err != nil {
		return errResult(err), nil
	}
	out, err := client.SearchProfiles(ctx, &customerprofiles.SearchProfilesInput{
		DomainName: aws.String(domainName),
		KeyName:    aws.String("_profileId"),
		Values:     []string{profileID},
		MaxResults: aws.Int32(1),
	})
	if err != nil {
		return errResult(errs.Remote("profiles_get_profile", err)), nil
	}
	if len(out.Items) == 0 {
		return errResult(&errs.NotFoundError{Kind: "profile", Name: profileID}), nil
	}
	return jsonResult(out.Items[0]), nil
}

func (s *Service) ProfilesUpdate(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	domainName, errRes := argString(req, "domain_name")
	if errRes != nil {
		return errRes, nil
	}
	profileID, errRes := argString(req, "profile_id")
	if errRes != nil {
		return errRes, nil
	}
	input := &customerprofiles.UpdateProfileInput{
		DomainName: aws.String(domainName),
		ProfileId:  aws.String(profileID),
		Attributes: optStringMap(req, "attributes"),
	}
	if v := optString(req, "first_name", ""); v != "" {
		input.FirstName = aws.String(v)
	}
	if v := optString(req, "last_name", ""); v != "" {
		input.LastName = aws.String(v)
	}
	if v := optString(req, "email", ""); v != "" {
		input.EmailAddress = aws.String(v)
	}
	if v := optString(req, "phone", ""); v != "" {
		input.PhoneNumber = aws.String(v)
	}

	client, err := s.registry.Profiles(ctx, s.region(optString(req, "region", "")))
	if err != nil {
		return errResult(err), nil
	}
	out, err := client.UpdateProfile(ctx, input)
	if err != nil {
		return errResult(errs.Remote("profiles_update_profile", err)), nil
	}
	return jsonResult(out), nil
}

func (s *Service) ProfilesDelete(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	domainName, errRes := argString(req, "domain_name")
	if errRes != nil {
		return errRes, nil
	}
	profileID, errRes := argString(req, "profile_id")
	if errRes != nil {
		return errRes, nil
	}
	client, err := s.registry.Profiles(ctx, s.region(optString(req, "region", "")))
	if err != nil {
		return errResult(err), nil
	}
	out, err := client.DeleteProfile(ctx, &customerprofiles.DeleteProfileInput{
		DomainName: aws.String(domainName),
		ProfileId:  aws.String(profileID),
	})
	if err != nil {
		return errResult(errs.Remote("profiles_delete_profile", err)), nil
	}
	return jsonResult(out), nil
}

func (s *Service) ProfilesMerge(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	domainName, errRes := argString(req, "domain_name")
	if errRes != nil {
		return errRes, nil
	}
	mainProfileID, errRes := argString(req, "main_profile_id")
	if errRes != nil {
		return errRes, nil
	}
	toMerge := optStringSlice(req, "profile_ids_to_merge")
	if len(toMerge) == 0 {
		return mcp.NewToolResultError("profile_ids_to_merge is required"), nil
	}
	client, err := s.registry.Profiles(ctx, s.region(optString(req, "region", "")))
	if err != nil {
		return errResult(err), nil
	}
	out, err := client.MergeProfiles(ctx, &customerprofiles.MergeProfilesInput{
		DomainName:           aws.String(domainName),
		MainProfileId:        aws.String(mainProfileID),
		ProfileIdsToBeMerged: toMerge,
	})
	if err != nil {
		return errResult(errs.Remote("profiles_merge", err)), nil
	}
	return jsonResult(out), nil
}

func (s *Service) ProfilesListDomains(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	region := s.region(optString(req, "region", ""))
	maxResults := optInt(req, "max_results", 25)

	key := toolcache.Key("profiles_list_domains", map[string]any{"region": region, "max_results": maxResults})
	out, err := s.cache.Do(key, func() (any, error) {
		client, err := s.registry.Profiles(ctx, region)
		if err != nil {
			return nil, err
		}
		resp, err := client.ListDomains(ctx, &customerprofiles.ListDomainsInput{
			MaxResults: aws.Int32(int32(maxResults)),
		})
		if err != nil {
			return nil, errs.Remote("profiles_list_domains", err)
		}
		return resp.Items, nil
	})
	if err != nil {
		return errResult(err), nil
	}
	return jsonResult(map[string]any{"Items": out}), nil
}

func (s *Service) ProfilesCreateDomain(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	domainName, errRes := argString(req, "domain_name")
	if errRes != nil {
		return errRes, nil
	}
	client, err := s.registry.Profiles(ctx, s.region(optString(req, "region", "")))
	if err != nil {
		return errResult(err), nil
	}
	out, err := client.CreateDomain(ctx, &customerprofiles.CreateDomainInput{
		DomainName:            aws.String(domainName),
		DefaultExpirationDays: aws.Int32(int32(optInt(req, "default_expiration_days", 365))),
	})
	if err != nil {
		return errResult(errs.Remote("profiles_create_domain", err)), nil
	}
	return jsonResult(out), nil
}
