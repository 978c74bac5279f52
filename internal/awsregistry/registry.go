package awsregistry

import (
	"context"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/connect"
	"github.com/aws/aws-sdk-go-v2/service/connectcampaignsv2"
	"github.com/aws/aws-sdk-go-v2/service/connectcases"
	"github.com/aws/aws-sdk-go-v2/service/customerprofiles"
	"github.com/aws/aws-sdk-go-v2/service/qconnect"

	"github.com/arcline/connect-mcp/internal/errs"
)

// Registry hands out one cached client per (service, region). Clients are
// constructed lazily on first use and live for the process lifetime; the key
// space is small (a handful of services times the Connect-supported regions)
// so there is no eviction.
type Registry struct {
	defaultRegion string
	profile       string

	mu        sync.Mutex
	awsCfgs   map[string]aws.Config
	connect   map[string]ConnectAPI
	cases     map[string]CasesAPI
	profiles  map[string]ProfilesAPI
	qconnect  map[string]QConnectAPI
	campaigns map[string]CampaignsAPI

	// constructors, replaceable in tests
	newConnect   func(aws.Config) ConnectAPI
	newCases     func(aws.Config) CasesAPI
	newProfiles  func(aws.Config) ProfilesAPI
	newQConnect  func(aws.Config) QConnectAPI
	newCampaigns func(aws.Config) CampaignsAPI
	loadConfig   func(ctx context.Context, region, profile string) (aws.Config, error)
}

// Option customizes a Registry, mainly for substituting fakes in tests.
type Option func(*Registry)

// WithConnectConstructor replaces the Connect client constructor.
func WithConnectConstructor(fn func(aws.Config) ConnectAPI) Option {
	return func(r *Registry) { r.newConnect = fn }
}

// WithCasesConstructor replaces the Cases client constructor.
func WithCasesConstructor(fn func(aws.Config) CasesAPI) Option {
	return func(r *Registry) { r.newCases = fn }
}

// WithProfilesConstructor replaces the Customer Profiles client constructor.
func WithProfilesConstructor(fn func(aws.Config) ProfilesAPI) Option {
	return func(r *Registry) { r.newProfiles = fn }
}

// WithQConnectConstructor replaces the Q in Connect client constructor.
func WithQConnectConstructor(fn func(aws.Config) QConnectAPI) Option {
	return func(r *Registry) { r.newQConnect = fn }
}

// WithCampaignsConstructor replaces the Campaigns client constructor.
func WithCampaignsConstructor(fn func(aws.Config) CampaignsAPI) Option {
	return func(r *Registry) { r.newCampaigns = fn }
}

// WithConfigLoader replaces the shared-config loader (tests use a stub that
// never touches credentials files).
func WithConfigLoader(fn func(ctx context.Context, region, profile string) (aws.Config, error)) Option {
	return func(r *Registry) { r.loadConfig = fn }
}

// New creates a Registry. defaultRegion is used whenever a caller does not
// scope a request to an explicit region.
func New(defaultRegion, profile string, opts ...Option) *Registry {
	r := &Registry{
		defaultRegion: defaultRegion,
		profile:       profile,
		awsCfgs:       make(map[string]aws.Config),
		connect:       make(map[string]ConnectAPI),
		cases:         make(map[string]CasesAPI),
		profiles:      make(map[string]ProfilesAPI),
		qconnect:      make(map[string]QConnectAPI),
		campaigns:     make(map[string]CampaignsAPI),
		newConnect:    func(c aws.Config) ConnectAPI { return connect.NewFromConfig(c) },
		newCases:      func(c aws.Config) CasesAPI { return connectcases.NewFromConfig(c) },
		newProfiles:   func(c aws.Config) ProfilesAPI { return customerprofiles.NewFromConfig(c) },
		newQConnect:   func(c aws.Config) QConnectAPI { return qconnect.NewFromConfig(c) },
		newCampaigns:  func(c aws.Config) CampaignsAPI { return connectcampaignsv2.NewFromConfig(c) },
		loadConfig:    loadSharedConfig,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func loadSharedConfig(ctx context.Context, region, profile string) (aws.Config, error) {
	loadOpts := []func(*awsconfig.LoadOptions) error{awsconfig.WithRegion(region)}
	if profile != "" {
		loadOpts = append(loadOpts, awsconfig.WithSharedConfigProfile(profile))
	}
	return awsconfig.LoadDefaultConfig(ctx, loadOpts...)
}

// DefaultRegion returns the region used when callers pass an empty region.
func (r *Registry) DefaultRegion() string { return r.defaultRegion }

// Region resolves an explicit region, falling back to the default.
func (r *Registry) Region(region string) string {
	if region == "" {
		return r.defaultRegion
	}
	return region
}

// awsConfig returns the cached aws.Config for region, loading it on first
// use. Callers must hold r.mu.
func (r *Registry) awsConfig(ctx context.Context, region string) (aws.Config, error) {
	if cfg, ok := r.awsCfgs[region]; ok {
		return cfg, nil
	}
	cfg, err := r.loadConfig(ctx, region, r.profile)
	if err != nil {
		return aws.Config{}, &errs.ConfigError{Op: "load aws config for region " + region, Err: err}
	}
	r.awsCfgs[region] = cfg
	return cfg, nil
}

// Connect returns the Amazon Connect client for region.
func (r *Registry) Connect(ctx context.Context, region string) (ConnectAPI, error) {
	region = r.Region(region)
	r.mu.Lock()
	defer r.mu.Unlock()
	if c, ok := r.connect[region]; ok {
		return c, nil
	}
	cfg, err := r.awsConfig(ctx, region)
	if err != nil {
		return nil, err
	}
	c := r.newConnect(cfg)
	r.connect[region] = c
	return c, nil
}

// Cases returns the Connect Cases client for region.
func (r *Registry) Cases(ctx context.Context, region string) (CasesAPI, error) {
	region = r.Region(region)
	r.mu.Lock()
	defer r.mu.Unlock()
	if c, ok := r.cases[region]; ok {
		return c, nil
	}
	cfg, err := r.awsConfig(ctx, region)
	if err != nil {
		return nil, err
	}
	c := r.newCases(cfg)
	r.cases[region] = c
	return c, nil
}

// Profiles returns the Customer Profiles client for region.
func (r *Registry) Profiles(ctx context.Context, region string) (ProfilesAPI, error) {
	region = r.Region(region)
	r.mu.Lock()
	defer r.mu.Unlock()
	if c, ok := r.profiles[region]; ok {
		return c, nil
	}
	cfg, err := r.awsConfig(ctx, region)
	if err != nil {
		return nil, err
	}
	c := r.newProfiles(cfg)
	r.profiles[region] = c
	return c, nil
}

// QConnect returns the Amazon Q in Connect client for region.
func (r *Registry) QConnect(ctx context.Context, region string) (QConnectAPI, error) {
	region = r.Region(region)
	r.mu.Lock()
	defer r.mu.Unlock()
	if c, ok := r.qconnect[region]; ok {
		return c, nil
	}
	cfg, err := r.awsConfig(ctx, region)
	if err != nil {
		return nil, err
	}
	c := r.newQConnect(cfg)
	r.qconnect[region] = c
	return c, nil
}

// Campaigns returns the Outbound Campaigns client for region.
func (r *Registry) Campaigns(ctx context.Context, region string) (CampaignsAPI, error) {
	region = r.Region(region)
	r.mu.Lock()
	defer r.mu.Unlock()
	if c, ok := r.campaigns[region]; ok {
		return c, nil
	}
	cfg, err := r.awsConfig(ctx, region)
	if err != nil {
		return nil, err
	}
	c := r.newCampaigns(cfg)
	r.campaigns[region] = c
	return c, nil
}
