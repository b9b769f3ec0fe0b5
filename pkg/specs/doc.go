// Package specs finds and loads spec files.
//
// A spec tree is any directory tree with spec files (spec.yaml or spec.yml
// by default) sprinkled through it. The Locator walks the tree and stops
// descending as soon as a directory holds a spec, so
//
//	./foo/spec.yaml
//	./foo/bar/spec.yaml
//	./baz/fizz/spec.yml
//
// yields ./foo and ./baz/fizz but not ./foo/bar. The Loader parses each
// located file into a types.Spec, resolving relative link targets against
// the spec's own directory, and collects them into a types.SpecTree keyed
// by the directory relative to the scan root.
package specs
