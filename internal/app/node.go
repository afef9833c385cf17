package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/pybundle/internal/adapters/archive"
	"go.trai.ch/pybundle/internal/adapters/bootstrap"
	"go.trai.ch/pybundle/internal/adapters/config"
	"go.trai.ch/pybundle/internal/adapters/fs"
	"go.trai.ch/pybundle/internal/adapters/iscc"
	"go.trai.ch/pybundle/internal/adapters/logger"
	"go.trai.ch/pybundle/internal/adapters/manifest"
	"go.trai.ch/pybundle/internal/adapters/metadata"
	"go.trai.ch/pybundle/internal/core/ports"
)

const (
	// AppNodeID is the unique identifier for the App Graft node.
	AppNodeID graft.ID = "app"
	// ComponentsNodeID is the unique identifier for the Components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			manifest.NodeID,
			fs.LayoutNodeID,
			fs.MarkerNodeID,
			fs.HasherNodeID,
			bootstrap.NodeID,
			metadata.NodeID,
			archive.NodeID,
			iscc.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*App, error) {
			loader, err := graft.Dep[ports.ConfigLoader](ctx)
			if err != nil {
				return nil, err
			}
			resolver, err := graft.Dep[ports.VersionResolver](ctx)
			if err != nil {
				return nil, err
			}
			layout, err := graft.Dep[ports.LayoutBuilder](ctx)
			if err != nil {
				return nil, err
			}
			marker, err := graft.Dep[ports.PackageMarker](ctx)
			if err != nil {
				return nil, err
			}
			hasher, err := graft.Dep[ports.TreeHasher](ctx)
			if err != nil {
				return nil, err
			}
			generator, err := graft.Dep[ports.BootstrapGenerator](ctx)
			if err != nil {
				return nil, err
			}
			writer, err := graft.Dep[ports.MetadataWriter](ctx)
			if err != nil {
				return nil, err
			}
			archiver, err := graft.Dep[ports.Archiver](ctx)
			if err != nil {
				return nil, err
			}
			compiler, err := graft.Dep[ports.CompilerRunner](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return New(loader, resolver, layout, marker, generator, writer, hasher, archiver, compiler, log), nil
		},
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{AppNodeID, logger.NodeID},
		Run: func(ctx context.Context) (*Components, error) {
			application, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewComponents(application, log), nil
		},
	})
}
