package iscc

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/pybundle/internal/adapters/logger"
	"go.trai.ch/pybundle/internal/core/ports"
)

// NodeID is the unique identifier for the compiler runner Graft node.
const NodeID graft.ID = "adapter.iscc"

func init() {
	graft.Register(graft.Node[ports.CompilerRunner]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.CompilerRunner, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewRunner(log), nil
		},
	})
}
