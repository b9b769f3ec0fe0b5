package specs

import (
	"path/filepath"

	"github.com/metov/dotstree/pkg/config"
	"github.com/metov/dotstree/pkg/errors"
	"github.com/metov/dotstree/pkg/paths"
	"github.com/metov/dotstree/pkg/types"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

// reservedPathKey is computed by the loader and never read from a spec
const reservedPathKey = "path"

// rawSymlink is a symlinks entry as written
type rawSymlink struct {
	From *string `yaml:"from"`
	To   *string `yaml:"to"`
}

// rawSpec is the typed view of a spec document. Unknown keys land in Extra.
type rawSpec struct {
	Symlinks *[]rawSymlink          `yaml:"symlinks"`
	Check    *string                `yaml:"check"`
	Install  *string                `yaml:"install"`
	Extra    map[string]interface{} `yaml:",inline"`
}

// Loader turns located spec files into specs
type Loader struct {
	fs      types.FS
	locator *Locator
	logger  zerolog.Logger
}

// NewLoader creates a loader that locates specs with the same configuration
func NewLoader(fs types.FS, cfg *config.Config, logger zerolog.Logger) *Loader {
	return &Loader{
		fs:      fs,
		locator: NewLocator(fs, cfg, logger),
		logger:  logger,
	}
}

// LoadTree locates and loads every spec under root. Specs that are not
// YAML mappings are logged and left out; an unreadable spec file or root
// aborts the whole load.
func (l *Loader) LoadTree(root string) (*types.SpecTree, error) {
	root, err := filepath.Abs(root)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInvalidInput, "cannot make root absolute")
	}

	locations, err := l.locator.Locate(root)
	if err != nil {
		return nil, err
	}

	tree := types.NewSpecTree()
	for _, loc := range locations {
		spec, err := l.Load(loc, root)
		if err != nil {
			if errors.IsErrorCode(err, errors.ErrSpecInvalid) {
				l.logger.Error().Err(err).Str("path", loc.File).Msg("Skipping invalid spec")
				continue
			}
			return nil, err
		}
		if err := tree.Add(spec); err != nil {
			return nil, err
		}
	}

	l.logger.Info().Str("root", root).Int("count", tree.Len()).Msg("Loaded spec tree")
	return tree, nil
}

// Load parses the spec at loc. root must be absolute and an ancestor of
// loc.Dir; it only determines the key.
func (l *Loader) Load(loc Location, root string) (*types.Spec, error) {
	logger := l.logger.With().Str("path", loc.File).Logger()

	data, err := l.fs.ReadFile(loc.File)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrFileAccess, "cannot read spec").
			WithDetail("path", loc.File)
	}

	raw, err := decode(data, logger)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrSpecInvalid, "cannot parse spec").
			WithDetail("path", loc.File)
	}

	if _, ok := raw.Extra[reservedPathKey]; ok {
		logger.Warn().Msg(`Spec already contains a "path" key - it will be ignored`)
		delete(raw.Extra, reservedPathKey)
	}

	rel, err := filepath.Rel(root, loc.Dir)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInvalidInput, "spec is outside of the tree root").
			WithDetail("path", loc.File).
			WithDetail("root", root)
	}

	spec := &types.Spec{
		Key:     types.KeyFromRel(filepath.ToSlash(rel)),
		Path:    loc.Dir,
		File:    loc.File,
		Check:   raw.Check,
		Install: raw.Install,
		Extra:   raw.Extra,
	}

	if raw.Symlinks != nil {
		spec.HasSymlinks = true
		spec.Symlinks = make([]types.Symlink, 0, len(*raw.Symlinks))
		for i, entry := range *raw.Symlinks {
			link, err := normalizeSymlink(entry, loc.Dir)
			if err != nil {
				return nil, errors.Wrapf(err, errors.ErrSpecInvalid, "invalid symlinks entry %d", i).
					WithDetail("path", loc.File)
			}
			spec.Symlinks = append(spec.Symlinks, link)
		}
	}

	logger.Trace().Str("key", spec.Key).Int("symlinks", len(spec.Symlinks)).Msg("Loaded spec")
	return spec, nil
}

// decode parses a spec document. An empty document is an empty spec;
// anything other than a mapping is an error.
func decode(data []byte, logger zerolog.Logger) (rawSpec, error) {
	var raw rawSpec

	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return raw, err
	}

	content := documentContent(&doc)
	if content == nil {
		logger.Warn().Msg("Spec is empty")
		return raw, nil
	}

	if content.Kind != yaml.MappingNode {
		return raw, errors.New(errors.ErrSpecInvalid, "spec is not a YAML mapping")
	}

	if err := content.Decode(&raw); err != nil {
		return raw, err
	}
	return raw, nil
}

// documentContent returns the top-level node, or nil for empty and null documents
func documentContent(doc *yaml.Node) *yaml.Node {
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil
	}
	content := doc.Content[0]
	if content.Kind == yaml.ScalarNode && content.Tag == "!!null" {
		return nil
	}
	return content
}

// normalizeSymlink keeps from as written and resolves to against specDir
func normalizeSymlink(entry rawSymlink, specDir string) (types.Symlink, error) {
	if entry.From == nil || *entry.From == "" {
		return types.Symlink{}, errors.New(errors.ErrSpecInvalid, `missing "from"`)
	}
	if entry.To == nil || *entry.To == "" {
		return types.Symlink{}, errors.New(errors.ErrSpecInvalid, `missing "to"`)
	}

	to, err := paths.ResolveTarget(specDir, *entry.To)
	if err != nil {
		return types.Symlink{}, err
	}
	return types.Symlink{From: *entry.From, To: to}, nil
}
