package wizard

import (
	"encoding/json"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/arcline/connect-mcp/internal/errs"
)

// Phase is the coarse lifecycle of an onboarding run.
type Phase string

const (
	PhaseNotStarted Phase = "NOT_STARTED"
	PhaseDiscovery  Phase = "DISCOVERY"
	PhaseFAQ        Phase = "FAQ_GENERATION"
	PhaseInProgress Phase = "IN_PROGRESS"
	PhaseComplete   Phase = "COMPLETE"
	PhaseFailed     Phase = "FAILED"
)

// StepError records the step a run failed on.
type StepError struct {
	Step    int    `json:"step"`
	StepID  string `json:"step_id"`
	Message string `json:"message"`
}

// RunState is the persisted state of one onboarding run, one JSON document
// per brand. It is the resume checkpoint and the audit trail; it is never
// deleted automatically.
type RunState struct {
	Brand     string    `json:"brand"`
	Region    string    `json:"region"`
	Phase     Phase     `json:"phase"`
	Step      int       `json:"step"`
	Completed []string  `json:"completed_steps"`
	// Resources maps logical names ("instance_id", "queue_id", ...) to the
	// remote-assigned identifiers, all scoped to Region.
	Resources map[string]string `json:"resources"`
	LastError *StepError        `json:"last_error,omitempty"`

	Discovery *DiscoveryResult `json:"discovery,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewRunState creates a fresh run for a brand in a region.
func NewRunState(brand, region string) *RunState {
	now := time.Now().UTC()
	return &RunState{
		Brand:     brand,
		Region:    region,
		Phase:     PhaseNotStarted,
		Resources: make(map[string]string),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// IsCompleted reports whether a step ID is in the completed set.
func (s *RunState) IsCompleted(id string) bool {
	for _, c := range s.Completed {
		if c == id {
			return true
		}
	}
	return false
}

// MarkCompleted appends a step ID to the completed set, once.
func (s *RunState) MarkCompleted(id string) {
	if !s.IsCompleted(id) {
		s.Completed = append(s.Completed, id)
	}
}

// Validate checks the internal invariant: every completed step that declares
// a resource key must have that resource recorded.
func (s *RunState) Validate(steps []Step) error {
	if s.Resources == nil {
		s.Resources = make(map[string]string)
	}
	byID := make(map[string]Step, len(steps))
	for _, st := range steps {
		byID[st.ID] = st
	}
	for _, id := range s.Completed {
		st, ok := byID[id]
		if !ok {
			continue // steps may be renamed across versions; unknown IDs are ignored
		}
		if st.ResourceKey != "" && s.Resources[st.ResourceKey] == "" {
			return &errs.StateError{
				Path:   s.Brand,
				Reason: "completed step " + id + " has no recorded resource " + st.ResourceKey,
			}
		}
	}
	return nil
}

var slugRe = regexp.MustCompile(`[^a-z0-9]+`)

// slug derives a filesystem-safe name from a brand identifier.
func slug(brand string) string {
	s := slugRe.ReplaceAllString(strings.ToLower(brand), "-")
	return strings.Trim(s, "-")
}

// Store persists run states as JSON files, one per brand, under a directory.
// It is single-writer by convention: concurrent runs against the same brand
// are the caller's error to prevent.
type Store struct {
	dir string
}

// NewStore creates a store rooted at dir.
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// Path returns the state file path for a brand.
func (st *Store) Path(brand string) string {
	return filepath.Join(st.dir, slug(brand)+".json")
}

// Load reads a run state. Missing file is a NotFoundError; unparseable
// content is a StateError.
func (st *Store) Load(brand string) (*RunState, error) {
	path := st.Path(brand)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &errs.NotFoundError{Kind: "wizard run", Name: brand}
		}
		return nil, &errs.StateError{Path: path, Reason: "read failed", Err: err}
	}
	var state RunState
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, &errs.StateError{Path: path, Reason: "parse failed", Err: err}
	}
	if state.Resources == nil {
		state.Resources = make(map[string]string)
	}
	return &state, nil
}

// LoadOrCreate loads the run for brand or starts a fresh one.
func (st *Store) LoadOrCreate(brand, region string) (*RunState, error) {
	state, err := st.Load(brand)
	if err == nil {
		return state, nil
	}
	if errs.IsNotFound(err) {
		return NewRunState(brand, region), nil
	}
	return nil, err
}

// Save writes the state atomically (write to temp file, then rename) so a
// crash mid-write never leaves a half-written checkpoint.
func (st *Store) Save(state *RunState) error {
	if err := os.MkdirAll(st.dir, 0755); err != nil {
		return &errs.StateError{Path: st.dir, Reason: "create state dir", Err: err}
	}
	state.UpdatedAt = time.Now().UTC()
	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return &errs.StateError{Path: st.Path(state.Brand), Reason: "encode", Err: err}
	}
	path := st.Path(state.Brand)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return &errs.StateError{Path: path, Reason: "write", Err: err}
	}
	if err := os.Rename(tmp, path); err != nil {
		return &errs.StateError{Path: path, Reason: "rename", Err: err}
	}
	return nil
}

// List returns the brands with a persisted run, sorted by file name.
func (st *Store) List() ([]string, error) {
	entries, err := os.ReadDir(st.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	var brands []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		brands = append(brands, strings.TrimSuffix(e.Name(), ".json"))
	}
	return brands, nil
}
