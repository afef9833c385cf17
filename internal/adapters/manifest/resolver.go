// Package manifest resolves the required runtime version from a dependency
// manifest such as requirements.txt.
package manifest

import (
	"bufio"
	"fmt"
	"os"
	"regexp"

	"go.trai.ch/pybundle/internal/core/domain"
	"go.trai.ch/pybundle/internal/core/ports"
	"golang.org/x/mod/semver"
)

const (
	// DefaultVersion is returned when no version pin is found.
	DefaultVersion = "3.10.0"

	// MinSupportedVersion is the floor below which a found version triggers
	// a warning. Resolution still returns the found version.
	MinSupportedVersion = "3.9"
)

// patterns express "runtime version = X.Y.Z" in the recognized notations.
// Order matters: within a line the first matching pattern wins.
var patterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)python\s*==\s*([\d.]+)`),          // python==3.12.1
	regexp.MustCompile(`(?i)python\s*==\s*"([\d.]+)"`),        // python=="3.12.1"
	regexp.MustCompile(`(?i)python\s*=\s*"([\d.]+)"`),         // python="3.12.1"
	regexp.MustCompile(`(?i)python_version\s*=\s*"([\d.]+)"`), // python_version="3.12.1"
}

// Resolver implements ports.VersionResolver over a line-oriented manifest.
type Resolver struct {
	logger ports.Logger
}

// NewResolver creates a new Resolver with the given logger.
func NewResolver(logger ports.Logger) *Resolver {
	return &Resolver{logger: logger}
}

// Resolve scans the manifest line by line and returns the first version pin
// found. A missing, unreadable, or pin-free manifest yields DefaultVersion;
// resolution never fails. The only side effects are diagnostics.
func (r *Resolver) Resolve(manifestPath string) domain.RuntimeVersion {
	f, err := os.Open(manifestPath) //nolint:gosec // Path is controlled by caller
	if err != nil {
		r.logger.Info(fmt.Sprintf("no readable manifest at %s, using default runtime version %s", manifestPath, DefaultVersion))
		return domain.RuntimeVersion{Version: DefaultVersion, IsDefault: true}
	}
	defer f.Close() //nolint:errcheck // Best effort close in defer

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		for _, pattern := range patterns {
			m := pattern.FindStringSubmatch(line)
			if m == nil {
				continue
			}
			found := m[1]
			if semver.IsValid("v"+found) && semver.Compare("v"+found, "v"+MinSupportedVersion) < 0 {
				r.logger.Warn(fmt.Sprintf("runtime version %s is below the minimum supported %s, proceeding anyway", found, MinSupportedVersion))
			}
			return domain.RuntimeVersion{Version: found}
		}
	}

	if err := scanner.Err(); err != nil {
		r.logger.Info(fmt.Sprintf("failed reading manifest %s: %v, using default runtime version %s", manifestPath, err, DefaultVersion))
		return domain.RuntimeVersion{Version: DefaultVersion, IsDefault: true}
	}

	r.logger.Info(fmt.Sprintf("no runtime version pin in %s, using default %s", manifestPath, DefaultVersion))
	return domain.RuntimeVersion{Version: DefaultVersion, IsDefault: true}
}
