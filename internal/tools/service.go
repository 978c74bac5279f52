// Package tools exposes Amazon Connect operations as MCP tools. Each handler
// makes at most one remote call (list_instances fan-in excepted), never
// retries, and reports upstream failures with their AWS error code and
// message intact.
package tools

import (
	"net/http"
	"sync"
	"time"

	"github.com/arcline/connect-mcp/internal/awsregistry"
	"github.com/arcline/connect-mcp/internal/config"
	"github.com/arcline/connect-mcp/internal/toolcache"
	"github.com/arcline/connect-mcp/internal/wizard"
)

// Service carries the shared dependencies of every tool handler.
type Service struct {
	registry *awsregistry.Registry
	cache    *toolcache.Cache
	session  *Session

	wizardStore *wizard.Store
	wizardCfg   config.WizardConfig
	discoverer  *wizard.Discoverer
	httpClient  *http.Client
}

// NewService wires a Service from loaded configuration.
func NewService(cfg *config.Config, registry *awsregistry.Registry) *Service {
	httpClient := &http.Client{Timeout: 60 * time.Second}
	return &Service{
		registry:    registry,
		cache:       toolcache.New(cfg.CacheTTL()),
		session:     &Session{},
		wizardStore: wizard.NewStore(cfg.Wizard.StateDir),
		wizardCfg:   cfg.Wizard,
		discoverer:  wizard.NewDiscoverer(httpClient),
		httpClient:  httpClient,
	}
}

// Session holds the per-process defaults a client can set once instead of
// repeating on every call. Currently just the region.
type Session struct {
	mu     sync.Mutex
	region string
}

// SetRegion sets the session default region.
func (s *Session) SetRegion(region string) {
	s.mu.Lock()
	s.region = region
	s.mu.Unlock()
}

// Region returns the session default region, empty when unset.
func (s *Session) Region() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.region
}

// Clear resets the session.
func (s *Session) Clear() {
	s.mu.Lock()
	s.region = ""
	s.mu.Unlock()
}

// region resolves the effective region for a call: explicit argument first,
// then the session default, then empty (the registry falls back to the
// configured default).
func (s *Service) region(argRegion string) string {
	if argRegion != "" {
		return argRegion
	}
	return s.session.Region()
}
