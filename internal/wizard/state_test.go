package wizard

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/arcline/connect-mcp/internal/errs"
)

func TestStoreSaveLoadRoundTrip(t *testing.T) {
	store := NewStore(t.TempDir())

	state := NewRunState("Acme Outdoors", "us-west-2")
	state.Phase = PhaseInProgress
	state.Resources["instance_id"] = "inst-123"
	state.MarkCompleted("create_instance")

	if err := store.Save(state); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := store.Load("Acme Outdoors")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.Brand != "Acme Outdoors" || got.Region != "us-west-2" {
		t.Fatalf("identity mismatch: %+v", got)
	}
	if got.Phase != PhaseInProgress {
		t.Fatalf("phase = %s, want %s", got.Phase, PhaseInProgress)
	}
	if got.Resources["instance_id"] != "inst-123" {
		t.Fatalf("resources not preserved: %v", got.Resources)
	}
	if !got.IsCompleted("create_instance") {
		t.Fatalf("completed set not preserved: %v", got.Completed)
	}
	if got.UpdatedAt.IsZero() {
		t.Fatal("UpdatedAt not stamped on save")
	}
}

func TestStoreLoadMissingIsNotFound(t *testing.T) {
	store := NewStore(t.TempDir())
	_, err := store.Load("nobody")
	if !errs.IsNotFound(err) {
		t.Fatalf("err = %v, want NotFoundError", err)
	}
}

func TestStoreLoadCorruptIsStateError(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(dir)
	if err := os.WriteFile(filepath.Join(dir, "broken.json"), []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}
	_, err := store.Load("broken")
	var serr *errs.StateError
	if !errors.As(err, &serr) {
		t.Fatalf("err = %v, want StateError", err)
	}
}

func TestStorePathUsesSlug(t *testing.T) {
	store := NewStore("/state")
	got := store.Path("Acme Outdoors, Inc.")
	want := filepath.Join("/state", "acme-outdoors-inc.json")
	if got != want {
		t.Fatalf("path = %q, want %q", got, want)
	}
}

func TestLoadOrCreateStartsFresh(t *testing.T) {
	store := NewStore(t.TempDir())
	state, err := store.LoadOrCreate("newbrand", "eu-west-1")
	if err != nil {
		t.Fatalf("LoadOrCreate: %v", err)
	}
	if state.Phase != PhaseNotStarted {
		t.Fatalf("phase = %s, want %s", state.Phase, PhaseNotStarted)
	}
	if state.Region != "eu-west-1" {
		t.Fatalf("region = %s", state.Region)
	}
}

func TestValidateRejectsCompletedStepWithoutResource(t *testing.T) {
	steps := []Step{
		{ID: "create_instance", ResourceKey: "instance_id"},
		{ID: "wait_instance_active"},
	}

	state := NewRunState("brand", "us-west-2")
	state.MarkCompleted("create_instance")
	if err := state.Validate(steps); err == nil {
		t.Fatal("expected StateError for completed step with no recorded resource")
	}

	state.Resources["instance_id"] = "inst-1"
	if err := state.Validate(steps); err != nil {
		t.Fatalf("valid state rejected: %v", err)
	}

	// Unknown completed IDs are tolerated across checklist versions.
	state.MarkCompleted("step_removed_long_ago")
	if err := state.Validate(steps); err != nil {
		t.Fatalf("unknown completed ID rejected: %v", err)
	}
}

func TestStoreList(t *testing.T) {
	store := NewStore(t.TempDir())
	for _, brand := range []string{"beta", "alpha"} {
		if err := store.Save(NewRunState(brand, "us-west-2")); err != nil {
			t.Fatalf("save %s: %v", brand, err)
		}
	}
	brands, err := store.List()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(brands) != 2 || brands[0] != "alpha" || brands[1] != "beta" {
		t.Fatalf("brands = %v", brands)
	}
}

func TestStoreListMissingDirIsEmpty(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "never-created"))
	brands, err := store.List()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(brands) != 0 {
		t.Fatalf("brands = %v, want empty", brands)
	}
}
