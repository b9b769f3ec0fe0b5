// Package commands runs dots check and dots install over a spec tree.
//
// Both commands load the tree once, then walk it in discovery order. Per
// spec and per symlink failures are logged and counted; only failures to
// read the tree itself abort a run.
package commands

import (
	"github.com/metov/dotstree/pkg/config"
	"github.com/metov/dotstree/pkg/filesystem"
	"github.com/metov/dotstree/pkg/logging"
	"github.com/metov/dotstree/pkg/specs"
	"github.com/metov/dotstree/pkg/types"
)

// loadTree loads the specs under root with component loggers
func loadTree(root string, fs types.FS, cfg *config.Config) (*types.SpecTree, error) {
	loader := specs.NewLoader(fs, cfg, logging.GetLogger("specs"))
	return loader.LoadTree(root)
}

func defaults(fs types.FS, cfg *config.Config) (types.FS, *config.Config) {
	if fs == nil {
		fs = filesystem.NewOS()
	}
	if cfg == nil {
		cfg = config.Default()
	}
	return fs, cfg
}

// displayName is the spec column of the report; the root spec has no name
func displayName(spec *types.Spec) string {
	if spec.Key == types.RootKey {
		return types.RootKey
	}
	return spec.Name()
}
