package wizard

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"
)

// recordingStep builds a Step whose invocations are appended to calls and
// whose outcome is scripted per attempt.
func recordingStep(id, resourceKey string, calls *[]string, fail func(attempt int) error) Step {
	attempt := 0
	return Step{
		ID:          id,
		Name:        id,
		ResourceKey: resourceKey,
		Run: func(ctx context.Context, rc *RunContext) (string, error) {
			attempt++
			*calls = append(*calls, id)
			if fail != nil {
				if err := fail(attempt); err != nil {
					return "", err
				}
			}
			return id + "-resource", nil
		},
	}
}

func TestRunnerCompletesChecklist(t *testing.T) {
	store := NewStore(t.TempDir())
	var calls []string
	steps := []Step{
		recordingStep("one", "one_id", &calls, nil),
		recordingStep("two", "", &calls, nil),
		recordingStep("three", "three_id", &calls, nil),
	}
	runner := NewRunner(store, steps, time.Millisecond, 3)

	state := NewRunState("brand", "us-west-2")
	if err := runner.Run(context.Background(), state); err != nil {
		t.Fatalf("run: %v", err)
	}
	if state.Phase != PhaseComplete {
		t.Fatalf("phase = %s, want %s", state.Phase, PhaseComplete)
	}
	if len(calls) != 3 {
		t.Fatalf("calls = %v", calls)
	}
	if state.Resources["one_id"] != "one-resource" || state.Resources["three_id"] != "three-resource" {
		t.Fatalf("resources = %v", state.Resources)
	}

	// Step without a resource key records nothing.
	if _, ok := state.Resources[""]; ok {
		t.Fatal("empty resource key recorded")
	}

	// Final state is persisted.
	got, err := store.Load("brand")
	if err != nil {
		t.Fatalf("load after run: %v", err)
	}
	if got.Phase != PhaseComplete {
		t.Fatalf("persisted phase = %s", got.Phase)
	}
}

func TestRunnerFailureRecordsErrorAndStops(t *testing.T) {
	store := NewStore(t.TempDir())
	var calls []string
	boom := errors.New("throttled")
	steps := []Step{
		recordingStep("one", "one_id", &calls, nil),
		recordingStep("two", "two_id", &calls, func(int) error { return boom }),
		recordingStep("three", "three_id", &calls, nil),
	}
	runner := NewRunner(store, steps, time.Millisecond, 3)

	state := NewRunState("brand", "us-west-2")
	err := runner.Run(context.Background(), state)
	if err == nil || !errors.Is(err, boom) {
		t.Fatalf("err = %v, want wrapped throttled", err)
	}
	if state.Phase != PhaseFailed {
		t.Fatalf("phase = %s, want %s", state.Phase, PhaseFailed)
	}
	if state.LastError == nil || state.LastError.StepID != "two" || state.LastError.Step != 1 {
		t.Fatalf("last error = %+v", state.LastError)
	}
	if state.IsCompleted("two") {
		t.Fatal("failed step must not be marked completed")
	}
	if len(calls) != 2 {
		t.Fatalf("step three should not run after a failure, calls = %v", calls)
	}

	// Failure state is persisted so a later resume sees it.
	got, err := store.Load("brand")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.Phase != PhaseFailed || got.LastError == nil {
		t.Fatalf("persisted failure state = %+v", got)
	}
}

func TestRunnerResumeSkipsCompletedAndRetriesFailed(t *testing.T) {
	store := NewStore(t.TempDir())
	var calls []string
	steps := []Step{
		recordingStep("one", "one_id", &calls, nil),
		recordingStep("two", "two_id", &calls, nil),
		recordingStep("three", "three_id", &calls, nil),
		recordingStep("four", "four_id", &calls, func(attempt int) error {
			if attempt == 1 {
				return errors.New("transient")
			}
			return nil
		}),
		recordingStep("five", "five_id", &calls, nil),
	}
	runner := NewRunner(store, steps, time.Millisecond, 3)

	state := NewRunState("brand", "us-west-2")
	if err := runner.Run(context.Background(), state); err == nil {
		t.Fatal("first run should fail on step four")
	}

	// Resume from the persisted checkpoint: one through three untouched,
	// four re-attempted, five runs.
	resumed, err := store.Load("brand")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	calls = calls[:0]
	if err := runner.Run(context.Background(), resumed); err != nil {
		t.Fatalf("resume: %v", err)
	}
	if fmt.Sprint(calls) != "[four five]" {
		t.Fatalf("resume calls = %v, want [four five]", calls)
	}
	if resumed.Phase != PhaseComplete {
		t.Fatalf("phase = %s", resumed.Phase)
	}
	if resumed.LastError != nil {
		t.Fatalf("last error not cleared: %+v", resumed.LastError)
	}
	for _, key := range []string{"one_id", "two_id", "three_id", "four_id", "five_id"} {
		if resumed.Resources[key] == "" {
			t.Fatalf("missing resource %s: %v", key, resumed.Resources)
		}
	}
}

func TestRunnerPersistsAfterEveryStep(t *testing.T) {
	store := NewStore(t.TempDir())
	var calls []string

	// Step two inspects the persisted file to prove step one's result was
	// flushed before two started.
	steps := []Step{
		recordingStep("one", "one_id", &calls, nil),
		{
			ID: "two", Name: "two",
			Run: func(ctx context.Context, rc *RunContext) (string, error) {
				onDisk, err := store.Load("brand")
				if err != nil {
					return "", err
				}
				if !onDisk.IsCompleted("one") || onDisk.Resources["one_id"] == "" {
					return "", errors.New("step one not checkpointed before step two ran")
				}
				return "", nil
			},
		},
	}
	runner := NewRunner(store, steps, time.Millisecond, 3)
	if err := runner.Run(context.Background(), NewRunState("brand", "us-west-2")); err != nil {
		t.Fatalf("run: %v", err)
	}
}

func TestRunnerRejectsInvalidState(t *testing.T) {
	store := NewStore(t.TempDir())
	steps := []Step{{ID: "one", ResourceKey: "one_id", Run: func(context.Context, *RunContext) (string, error) { return "", nil }}}
	runner := NewRunner(store, steps, time.Millisecond, 3)

	state := NewRunState("brand", "us-west-2")
	state.MarkCompleted("one") // completed but no resource recorded
	if err := runner.Run(context.Background(), state); err == nil {
		t.Fatal("expected validation error")
	}
}

func TestPollRetriesOnlyStillProvisioning(t *testing.T) {
	rc := &RunContext{State: NewRunState("brand", "us-west-2"), PollInterval: time.Millisecond, MaxPolls: 5}

	attempts := 0
	err := rc.Poll(context.Background(), "thing", func(ctx context.Context) error {
		attempts++
		if attempts < 3 {
			return StillProvisioning("CREATION_IN_PROGRESS")
		}
		return nil
	})
	if err != nil {
		t.Fatalf("poll: %v", err)
	}
	if attempts != 3 {
		t.Fatalf("attempts = %d, want 3", attempts)
	}

	// A non-retryable error stops immediately.
	attempts = 0
	fatal := errors.New("CREATION_FAILED")
	err = rc.Poll(context.Background(), "thing", func(ctx context.Context) error {
		attempts++
		return fatal
	})
	if !errors.Is(err, fatal) {
		t.Fatalf("err = %v", err)
	}
	if attempts != 1 {
		t.Fatalf("attempts = %d, want 1", attempts)
	}
}

func TestPollExhaustsAttempts(t *testing.T) {
	rc := &RunContext{State: NewRunState("brand", "us-west-2"), PollInterval: time.Millisecond, MaxPolls: 3}
	attempts := 0
	err := rc.Poll(context.Background(), "thing", func(ctx context.Context) error {
		attempts++
		return StillProvisioning("CREATION_IN_PROGRESS")
	})
	if err == nil {
		t.Fatal("expected exhaustion error")
	}
	if attempts != 3 {
		t.Fatalf("attempts = %d, want 3", attempts)
	}
}

func TestPollHonorsContextCancel(t *testing.T) {
	rc := &RunContext{State: NewRunState("brand", "us-west-2"), PollInterval: time.Hour, MaxPolls: 10}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := rc.Poll(ctx, "thing", func(ctx context.Context) error {
		return StillProvisioning("CREATION_IN_PROGRESS")
	})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
}
