package status

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/pydash/ares/internal/config"
	"github.com/pydash/ares/internal/model"
)

type fakeIntegrity struct {
	err error
}

func (f fakeIntegrity) Check() error { return f.err }

func TestChecker_Backend(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected model.BackendLink
	}{
		{"linked", nil, model.BackendLinked},
		{"unlinked", errors.New("unexpected end of JSON input"), model.BackendUnlinked},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			result := NewChecker(fakeIntegrity{test.err}, "", 0, "1.0.0").Backend()
			if result.Link != test.expected {
				t.Errorf("Backend().Link = %s, expected %s", result.Link, test.expected)
			}
			if !errors.Is(result.Err, test.err) {
				t.Errorf("Backend().Err = %v, expected %v", result.Err, test.err)
			}
		})
	}
}

func TestChecker_InternetConnected(t *testing.T) {
	var hits int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		if r.Method != http.MethodGet {
			t.Errorf("Expected GET, got %s", r.Method)
		}
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	result := NewChecker(fakeIntegrity{}, server.URL, time.Second, "1.0.0").Internet(context.Background())
	if result.Link != model.InternetConnected {
		t.Errorf("Internet().Link = %s, expected %s (err: %v)", result.Link, model.InternetConnected, result.Err)
	}
	if hits != 1 {
		t.Errorf("Expected exactly 1 request, got %d", hits)
	}
}

func TestChecker_InternetTimeout(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer server.Close()
	defer close(release)

	result := NewChecker(fakeIntegrity{}, server.URL, 50*time.Millisecond, "1.0.0").Internet(context.Background())
	if result.Link != model.InternetDisconnected {
		t.Errorf("Internet().Link = %s, expected %s", result.Link, model.InternetDisconnected)
	}
	if result.Err == nil {
		t.Error("Expected timeout error")
	}
}

func TestChecker_InternetUnreachable(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()

	result := NewChecker(fakeIntegrity{}, url, time.Second, "1.0.0").Internet(context.Background())
	if result.Link != model.InternetDisconnected {
		t.Errorf("Internet().Link = %s, expected %s", result.Link, model.InternetDisconnected)
	}
}

func TestChecker_Version(t *testing.T) {
	exe := filepath.Join(t.TempDir(), "ares")
	if err := os.WriteFile(exe, []byte("bin"), 0755); err != nil {
		t.Fatal(err)
	}
	stamp := time.Date(2024, 3, 9, 14, 5, 0, 0, time.Local)
	if err := os.Chtimes(exe, stamp, stamp); err != nil {
		t.Fatal(err)
	}

	checker := NewChecker(fakeIntegrity{}, "", 0, "1.0.0")
	checker.executable = func() (string, error) { return exe, nil }

	result := checker.Version()
	if result.State != model.VersionUpToDate {
		t.Errorf("Version().State = %s, expected %s", result.State, model.VersionUpToDate)
	}
	if result.Version != "1.0.0" {
		t.Errorf("Version().Version = %s, expected 1.0.0", result.Version)
	}
	if got := result.UpdatedAtString(); got != "2024-03-09 14:05:00" {
		t.Errorf("UpdatedAtString() = %s, expected 2024-03-09 14:05:00", got)
	}
}

func TestChecker_VersionWithoutExecutable(t *testing.T) {
	checker := NewChecker(fakeIntegrity{}, "", 0, "1.0.0")
	checker.executable = func() (string, error) { return "", errors.New("not supported") }

	result := checker.Version()
	if result.State != model.VersionUpToDate {
		t.Errorf("Version().State = %s, expected up to date regardless", result.State)
	}
	if result.UpdatedAtString() != "unknown" {
		t.Errorf("UpdatedAtString() = %s, expected unknown", result.UpdatedAtString())
	}
}

func TestNewChecker_Defaults(t *testing.T) {
	checker := NewChecker(fakeIntegrity{}, "", 0, "1.0.0")
	if checker.url != config.DefaultCheckURL {
		t.Errorf("url = %s, expected %s", checker.url, config.DefaultCheckURL)
	}
	if checker.timeout != config.DefaultCheckTimeout {
		t.Errorf("timeout = %v, expected %v", checker.timeout, config.DefaultCheckTimeout)
	}
	if checker.client.Timeout != config.DefaultCheckTimeout {
		t.Errorf("client timeout = %v, expected %v", checker.client.Timeout, config.DefaultCheckTimeout)
	}
}

func TestReport_OK(t *testing.T) {
	tests := []struct {
		name     string
		report   Report
		expected bool
	}{
		{"all good", Report{BackendResult{Link: model.BackendLinked}, InternetResult{Link: model.InternetConnected}, VersionResult{}}, true},
		{"backend down", Report{BackendResult{Link: model.BackendUnlinked}, InternetResult{Link: model.InternetConnected}, VersionResult{}}, false},
		{"offline", Report{BackendResult{Link: model.BackendLinked}, InternetResult{Link: model.InternetDisconnected}, VersionResult{}}, false},
	}

	for _, test := range tests {
		if test.report.OK() != test.expected {
			t.Errorf("%s: OK() = %v, expected %v", test.name, !test.expected, test.expected)
		}
	}
}
