package backend

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/pydash/ares/internal/prompt"
)

const validDocument = `{
  "metrics": {"metric_1": 4, "metric_2": 999, "metric_3": 1000, "metric_4": 12345},
  "tasks": {
    "completed_tasks": ["A"],
    "outstanding_tasks": ["B", "C"]
  }
}`

type recordedPrompt struct {
	kind    prompt.Kind
	message string
	title   string
}

type fakePrompter struct {
	prompts []recordedPrompt
}

func (f *fakePrompter) Prompt(kind prompt.Kind, message, title string, onChoice func(prompt.Choice)) {
	f.prompts = append(f.prompts, recordedPrompt{kind, message, title})
	if onChoice != nil {
		onChoice(kind.Spec().Confirm)
	}
}

func writeBackend(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "backend.json")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write backend file: %v", err)
	}
	return path
}

func TestStore_Load(t *testing.T) {
	store := NewStore(writeBackend(t, validDocument))

	state, err := store.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	values := state.Metrics.Values()
	expected := [4]float64{4, 999, 1000, 12345}
	if values != expected {
		t.Errorf("Metrics = %v, expected %v", values, expected)
	}
	if state.OutstandingCount() != 2 {
		t.Errorf("OutstandingCount() = %d, expected 2", state.OutstandingCount())
	}
}

func TestStore_LoadErrors(t *testing.T) {
	tests := []struct {
		name      string
		content   string
		schemaErr bool
	}{
		{"truncated", `{"metrics": {`, false},
		{"not json", `hello`, false},
		{"missing tasks", `{"metrics": {"metric_1": 1, "metric_2": 2, "metric_3": 3, "metric_4": 4}}`, true},
		{"missing metric", `{"metrics": {"metric_1": 1}, "tasks": {"completed_tasks": [], "outstanding_tasks": []}}`, true},
		{"empty object", `{}`, true},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			state, err := NewStore(writeBackend(t, test.content)).Load()
			if err == nil {
				t.Fatalf("Load() = %+v, expected error", state)
			}
			if errors.Is(err, ErrSchema) != test.schemaErr {
				t.Errorf("errors.Is(err, ErrSchema) = %v, expected %v (err: %v)", !test.schemaErr, test.schemaErr, err)
			}
		})
	}
}

func TestStore_LoadMissingFile(t *testing.T) {
	_, err := NewStore(filepath.Join(t.TempDir(), "missing.json")).Load()
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Load() error = %v, expected not-exist", err)
	}
}

func TestStore_Check(t *testing.T) {
	tests := []struct {
		name    string
		content string
		ok      bool
	}{
		{"valid document", validDocument, true},
		{"empty object", `{}`, true},
		{"array", `[1, 2, 3]`, true},
		{"truncated", `{"metrics": {`, false},
		{"garbage", `not json`, false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			err := NewStore(writeBackend(t, test.content)).Check()
			if (err == nil) != test.ok {
				t.Errorf("Check() = %v, expected ok=%v", err, test.ok)
			}
		})
	}
}

func TestStore_CheckMissingFileFails(t *testing.T) {
	if err := NewStore(filepath.Join(t.TempDir(), "missing.json")).Check(); err == nil {
		t.Error("Check() on missing file should fail")
	}
}

// A well-formed document without the expected shape passes the integrity
// check but fails the load path.
func TestStore_CheckAndLoadAreIndependent(t *testing.T) {
	store := NewStore(writeBackend(t, `{"unrelated": true}`))

	if err := store.Check(); err != nil {
		t.Errorf("Check() = %v, expected success", err)
	}
	if _, err := store.Load(); !errors.Is(err, ErrSchema) {
		t.Errorf("Load() = %v, expected schema error", err)
	}
}

func TestStore_LoadOrWarn(t *testing.T) {
	p := &fakePrompter{}

	state := NewStore(writeBackend(t, validDocument)).LoadOrWarn(p)
	if state == nil {
		t.Fatal("LoadOrWarn() returned nil for valid document")
	}
	if len(p.prompts) != 0 {
		t.Errorf("Expected no prompts, got %d", len(p.prompts))
	}

	state = NewStore(writeBackend(t, `{"metrics":`)).LoadOrWarn(p)
	if state != nil {
		t.Errorf("LoadOrWarn() = %+v, expected nil", state)
	}
	if len(p.prompts) != 1 {
		t.Fatalf("Expected 1 prompt, got %d", len(p.prompts))
	}

	got := p.prompts[0]
	if got.kind != prompt.Warning || got.message != LoadErrorMessage || got.title != LoadErrorTitle {
		t.Errorf("Prompt = %+v, expected Warning %q / %q", got, LoadErrorMessage, LoadErrorTitle)
	}
}

func TestStore_LoadOrWarnWithoutPrompter(t *testing.T) {
	if state := NewStore(filepath.Join(t.TempDir(), "missing.json")).LoadOrWarn(nil); state != nil {
		t.Errorf("LoadOrWarn(nil) = %+v, expected nil", state)
	}
}
