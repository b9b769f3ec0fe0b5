package types

import (
	"github.com/metov/dotstree/pkg/errors"
)

// SpecTree maps tree keys to specs and remembers discovery order.
// It is filled once by the loader and only read afterwards.
type SpecTree struct {
	keys  []string
	specs map[string]*Spec
}

// NewSpecTree creates an empty tree
func NewSpecTree() *SpecTree {
	return &SpecTree{specs: make(map[string]*Spec)}
}

// Add inserts a spec under its Key. Keys must be unique.
func (t *SpecTree) Add(spec *Spec) error {
	if spec == nil {
		return errors.New(errors.ErrInvalidInput, "nil spec")
	}
	if _, exists := t.specs[spec.Key]; exists {
		return errors.Newf(errors.ErrDuplicateSpec, "duplicate spec key %q", spec.Key).
			WithDetail("path", spec.Path)
	}
	t.keys = append(t.keys, spec.Key)
	t.specs[spec.Key] = spec
	return nil
}

// Get returns the spec stored under key
func (t *SpecTree) Get(key string) (*Spec, bool) {
	spec, ok := t.specs[key]
	return spec, ok
}

// Keys returns the keys in discovery order
func (t *SpecTree) Keys() []string {
	out := make([]string, len(t.keys))
	copy(out, t.keys)
	return out
}

// Specs returns the specs in discovery order
func (t *SpecTree) Specs() []*Spec {
	out := make([]*Spec, 0, len(t.keys))
	for _, k := range t.keys {
		out = append(out, t.specs[k])
	}
	return out
}

// Len returns the number of specs
func (t *SpecTree) Len() int {
	return len(t.keys)
}
