// Package status runs the dashboard's three independent, stateless checks:
// backend file integrity, internet reachability and application version.
package status

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/pydash/ares/internal/config"
	"github.com/pydash/ares/internal/model"
)

// TimestampLayout formats the executable modification time
const TimestampLayout = "2006-01-02 15:04:05"

// IntegrityChecker verifies the backend file
type IntegrityChecker interface {
	Check() error
}

// BackendResult is the outcome of the backend integrity check
type BackendResult struct {
	Link model.BackendLink
	Err  error
}

// InternetResult is the outcome of the internet check
type InternetResult struct {
	Link model.InternetLink
	Err  error
}

// VersionResult is the outcome of the version check. The state is always
// up to date; UpdatedAt is the executable's modification time when known.
type VersionResult struct {
	State     model.VersionState
	Version   string
	UpdatedAt time.Time
}

// UpdatedAtString returns the modification time for display
func (r VersionResult) UpdatedAtString() string {
	if r.UpdatedAt.IsZero() {
		return "unknown"
	}
	return r.UpdatedAt.Format(TimestampLayout)
}

// Checker runs the status checks
type Checker struct {
	backend    IntegrityChecker
	client     *http.Client
	url        string
	timeout    time.Duration
	version    string
	executable func() (string, error)
}

// NewChecker creates a checker. A zero timeout or empty URL selects the defaults.
func NewChecker(backend IntegrityChecker, url string, timeout time.Duration, version string) *Checker {
	if url == "" {
		url = config.DefaultCheckURL
	}
	if timeout <= 0 {
		timeout = config.DefaultCheckTimeout
	}
	return &Checker{
		backend:    backend,
		client:     &http.Client{Timeout: timeout},
		url:        url,
		timeout:    timeout,
		version:    version,
		executable: os.Executable,
	}
}

// Backend runs the integrity check on the backend file
func (c *Checker) Backend() BackendResult {
	if err := c.backend.Check(); err != nil {
		log.Printf("JSON Error: %v", err)
		return BackendResult{Link: model.BackendUnlinked, Err: err}
	}
	return BackendResult{Link: model.BackendLinked}
}

// Internet sends one GET to the configured URL. Only transport success
// matters; the response status is ignored.
func (c *Checker) Internet(ctx context.Context) InternetResult {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		log.Printf("Connection Error: %v", err)
		return InternetResult{Link: model.InternetDisconnected, Err: err}
	}

	resp, err := c.client.Do(req)
	if err != nil {
		log.Printf("Connection Error: %v", err)
		return InternetResult{Link: model.InternetDisconnected, Err: err}
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	resp.Body.Close()

	return InternetResult{Link: model.InternetConnected}
}

// Version reports the running version and when the executable was last updated
func (c *Checker) Version() VersionResult {
	result := VersionResult{State: model.VersionUpToDate, Version: c.version}

	path, err := c.executable()
	if err != nil {
		log.Printf("Failed to locate executable: %v", err)
		return result
	}
	info, err := os.Stat(path)
	if err != nil {
		log.Printf("Failed to stat executable: %v", err)
		return result
	}
	result.UpdatedAt = info.ModTime()
	return result
}

// Report collects the results of all three checks
type Report struct {
	Backend  BackendResult
	Internet InternetResult
	Version  VersionResult
}

// OK reports whether no check failed
func (r Report) OK() bool {
	return !r.Backend.Link.IsFailure() && !r.Internet.Link.IsFailure()
}

// RunAll runs every check sequentially
func (c *Checker) RunAll(ctx context.Context) Report {
	return Report{
		Backend:  c.Backend(),
		Internet: c.Internet(ctx),
		Version:  c.Version(),
	}
}

// String renders a one-line summary of the report
func (r Report) String() string {
	return fmt.Sprintf("backend=%s internet=%s version=%s", r.Backend.Link, r.Internet.Link, r.Version.State)
}
