// Package versioncheck reports Amplify Gen 2 / Next.js version compatibility.
package versioncheck

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/Masterminds/semver/v3"
)

// DefaultRegistryURL is the npm registry queried for latest package versions.
const DefaultRegistryURL = "https://registry.npmjs.org"

// MinNextMajor is the lowest Next.js major version Amplify Gen 2 supports.
const MinNextMajor = 14

// Report summarizes the compatibility check. Version fields are empty when
// they could not be determined.
type Report struct {
	AmplifyBackend string
	NextLatest     string
	NextLocal      string
	Notes          []string
}

// Checker queries the npm registry for latest package versions.
type Checker struct {
	client   *http.Client
	registry string
}

// Option configures a Checker.
type Option func(*Checker)

// WithRegistryURL overrides the npm registry endpoint.
func WithRegistryURL(u string) Option {
	return func(c *Checker) { c.registry = strings.TrimRight(u, "/") }
}

// WithClient replaces the HTTP client.
func WithClient(client *http.Client) Option {
	return func(c *Checker) { c.client = client }
}

// New returns a Checker talking to the public npm registry by default.
func New(opts ...Option) *Checker {
	c := &Checker{
		client:   &http.Client{Timeout: 10 * time.Second},
		registry: DefaultRegistryURL,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// LatestVersion fetches the latest published version of an npm package.
func (c *Checker) LatestVersion(ctx context.Context, pkg string) (string, error) {
	url := fmt.Sprintf("%s/%s/latest", c.registry, pkg)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch %s: %w", pkg, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("fetch %s: unexpected status %d", pkg, resp.StatusCode)
	}

	var payload struct {
		Version string `json:"version"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", fmt.Errorf("decode %s response: %w", pkg, err)
	}
	if payload.Version == "" {
		return "", fmt.Errorf("no version in %s response", pkg)
	}
	return payload.Version, nil
}

// LocalNextVersion reads the Next.js dependency constraint from the
// package.json in dir. Returns "" without error when there is no
// package.json or it does not depend on next.
func LocalNextVersion(dir string) (string, error) {
	data, err := os.ReadFile(filepath.Join(dir, "package.json"))
	if os.IsNotExist(err) {
		return "", nil
	}
	if err != nil {
		return "", err
	}

	var pkg struct {
		Dependencies    map[string]string `json:"dependencies"`
		DevDependencies map[string]string `json:"devDependencies"`
	}
	if err := json.Unmarshal(data, &pkg); err != nil {
		return "", fmt.Errorf("parse package.json: %w", err)
	}
	if v, ok := pkg.Dependencies["next"]; ok {
		return v, nil
	}
	if v, ok := pkg.DevDependencies["next"]; ok {
		return v, nil
	}
	return "", nil
}

// Compatible reports whether a version string (possibly carrying a range
// prefix like ^ or ~) satisfies the minimum supported Next.js major.
func Compatible(version string) bool {
	v, err := semver.NewVersion(strings.TrimLeft(version, "^~>=< v"))
	if err != nil {
		return false
	}
	return v.Major() >= MinNextMajor
}

// Run performs the full compatibility check. Registry failures degrade to
// notes rather than errors so a partial report is still useful offline.
func (c *Checker) Run(ctx context.Context, projectDir string) *Report {
	report := &Report{}

	if v, err := c.LatestVersion(ctx, "@aws-amplify/backend"); err == nil {
		report.AmplifyBackend = v
	} else {
		report.Notes = append(report.Notes, fmt.Sprintf("could not fetch @aws-amplify/backend version: %v", err))
	}

	if v, err := c.LatestVersion(ctx, "next"); err == nil {
		report.NextLatest = v
		if Compatible(v) {
			report.Notes = append(report.Notes, fmt.Sprintf("latest Next.js %s is compatible with Amplify Gen 2", v))
		} else {
			report.Notes = append(report.Notes, fmt.Sprintf("latest Next.js %s may have compatibility issues", v))
		}
	} else {
		report.Notes = append(report.Notes, fmt.Sprintf("could not fetch next version: %v", err))
	}

	if v, err := LocalNextVersion(projectDir); err == nil && v != "" {
		report.NextLocal = v
		if Compatible(v) {
			report.Notes = append(report.Notes, fmt.Sprintf("local Next.js %s is compatible", v))
		} else {
			report.Notes = append(report.Notes, fmt.Sprintf("local Next.js %s should be upgraded to %d.x or higher", v, MinNextMajor))
		}
	} else if err != nil {
		report.Notes = append(report.Notes, fmt.Sprintf("could not read local package.json: %v", err))
	}

	return report
}
