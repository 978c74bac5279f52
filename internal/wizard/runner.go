package wizard

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/arcline/connect-mcp/internal/logger"
)

// Step is one entry in the onboarding checklist. Steps run strictly in
// order; the list encodes the real dependency chain (hours before queue,
// profile domain before case domain, and so on), so there is nothing to
// parallelize.
type Step struct {
	ID   string
	Name string
	// ResourceKey names the Resources entry this step records, empty when
	// the step produces no remote resource.
	ResourceKey string
	Run         func(ctx context.Context, rc *RunContext) (string, error)
}

// RunContext is what a step gets to work with.
type RunContext struct {
	State        *RunState
	PollInterval time.Duration
	MaxPolls     int
}

// Resource returns a previously recorded resource ID or fails loudly: a step
// asking for a resource its predecessors did not record is a checklist bug.
func (rc *RunContext) Resource(key string) (string, error) {
	if id := rc.State.Resources[key]; id != "" {
		return id, nil
	}
	return "", fmt.Errorf("required resource %q not recorded by a prior step", key)
}

// errStillProvisioning marks a poll result as retryable.
var errStillProvisioning = errors.New("still provisioning")

// StillProvisioning wraps a status into the retryable poll error.
func StillProvisioning(status string) error {
	return fmt.Errorf("%w: %s", errStillProvisioning, status)
}

// Poll invokes check every PollInterval until it succeeds, returns a
// non-retryable error, or MaxPolls attempts are exhausted. Only
// errStillProvisioning is retryable; any other failure is fatal for the
// step.
func (rc *RunContext) Poll(ctx context.Context, what string, check func(ctx context.Context) error) error {
	for attempt := 1; ; attempt++ {
		err := check(ctx)
		if err == nil {
			return nil
		}
		if !errors.Is(err, errStillProvisioning) {
			return err
		}
		if attempt >= rc.MaxPolls {
			return fmt.Errorf("%s not ready after %d attempts: %w", what, attempt, err)
		}
		logger.Debug("[WIZARD] %s: %v (attempt %d/%d)", what, err, attempt, rc.MaxPolls)
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(rc.PollInterval):
		}
	}
}

// Runner drives a checklist against a persisted run state.
type Runner struct {
	store        *Store
	steps        []Step
	pollInterval time.Duration
	maxPolls     int
}

// NewRunner creates a runner over a state store and a step list.
func NewRunner(store *Store, steps []Step, pollInterval time.Duration, maxPolls int) *Runner {
	return &Runner{store: store, steps: steps, pollInterval: pollInterval, maxPolls: maxPolls}
}

// Steps exposes the checklist, for status rendering.
func (r *Runner) Steps() []Step { return r.steps }

// Run executes every step not yet in the completed set, persisting state
// after each attempt. On the first failure it records the step and error,
// marks the run FAILED and stops; a later Run on the same state re-attempts
// that step. Completed steps are never re-run.
func (r *Runner) Run(ctx context.Context, state *RunState) error {
	if err := state.Validate(r.steps); err != nil {
		return err
	}

	rc := &RunContext{
		State:        state,
		PollInterval: r.pollInterval,
		MaxPolls:     r.maxPolls,
	}

	for i, step := range r.steps {
		if state.IsCompleted(step.ID) {
			continue
		}

		state.Phase = PhaseInProgress
		state.Step = i
		if err := r.store.Save(state); err != nil {
			return err
		}

		logger.Info("[WIZARD] step %d/%d: %s", i+1, len(r.steps), step.Name)
		resourceID, err := step.Run(ctx, rc)
		if err != nil {
			state.Phase = PhaseFailed
			state.LastError = &StepError{Step: i, StepID: step.ID, Message: err.Error()}
			if serr := r.store.Save(state); serr != nil {
				logger.Error("[WIZARD] failed to persist failure state: %v", serr)
			}
			return fmt.Errorf("step %q: %w", step.ID, err)
		}

		if step.ResourceKey != "" {
			state.Resources[step.ResourceKey] = resourceID
		}
		state.MarkCompleted(step.ID)
		state.LastError = nil
		if err := r.store.Save(state); err != nil {
			return err
		}
	}

	state.Phase = PhaseComplete
	return r.store.Save(state)
}
