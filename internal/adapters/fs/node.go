package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/pybundle/internal/adapters/logger"
	"go.trai.ch/pybundle/internal/core/ports"
)

const (
	// LayoutNodeID is the unique identifier for the layout builder Graft node.
	LayoutNodeID graft.ID = "adapter.fs.layout"
	// MarkerNodeID is the unique identifier for the package marker Graft node.
	MarkerNodeID graft.ID = "adapter.fs.marker"
	// HasherNodeID is the unique identifier for the tree hasher Graft node.
	HasherNodeID graft.ID = "adapter.fs.hasher"
)

func init() {
	graft.Register(graft.Node[ports.LayoutBuilder]{
		ID:        LayoutNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.LayoutBuilder, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewLayoutBuilder(log), nil
		},
	})

	graft.Register(graft.Node[ports.PackageMarker]{
		ID:        MarkerNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.PackageMarker, error) {
			return NewMarker(), nil
		},
	})

	graft.Register(graft.Node[ports.TreeHasher]{
		ID:        HasherNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.TreeHasher, error) {
			return NewHasher(), nil
		},
	})
}
