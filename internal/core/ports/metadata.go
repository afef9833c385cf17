package ports

import "go.trai.ch/pybundle/internal/core/domain"

// MetadataWriter serializes the build metadata record.
//
//go:generate mockgen -source=metadata.go -destination=mocks/mock_metadata.go -package=mocks
type MetadataWriter interface {
	Write(internalDir string, rec domain.MetadataRecord) error
}
