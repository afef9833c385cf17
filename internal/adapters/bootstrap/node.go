package bootstrap

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/pybundle/internal/core/ports"
)

// NodeID is the unique identifier for the bootstrap generator Graft node.
const NodeID graft.ID = "adapter.bootstrap"

func init() {
	graft.Register(graft.Node[ports.BootstrapGenerator]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.BootstrapGenerator, error) {
			r, err := NewRenderer()
			if err != nil {
				return nil, err
			}
			return r, nil
		},
	})
}
