package ports

import "go.trai.ch/pybundle/internal/core/domain"

// VersionResolver extracts the required runtime version from a dependency
// manifest. Resolution never fails: a missing or malformed manifest yields
// the policy default.
//
//go:generate mockgen -source=resolver.go -destination=mocks/mock_resolver.go -package=mocks
type VersionResolver interface {
	Resolve(manifestPath string) domain.RuntimeVersion
}
