package manifest

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/pybundle/internal/adapters/logger"
	"go.trai.ch/pybundle/internal/core/ports"
)

// NodeID is the unique identifier for the version resolver Graft node.
const NodeID graft.ID = "adapter.manifest.resolver"

func init() {
	graft.Register(graft.Node[ports.VersionResolver]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.VersionResolver, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewResolver(log), nil
		},
	})
}
