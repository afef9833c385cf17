package metadata

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/pybundle/internal/core/ports"
)

// NodeID is the unique identifier for the metadata writer Graft node.
const NodeID graft.ID = "adapter.metadata"

func init() {
	graft.Register(graft.Node[ports.MetadataWriter]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.MetadataWriter, error) {
			return NewWriter(), nil
		},
	})
}
