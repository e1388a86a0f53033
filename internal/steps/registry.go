// Package steps provides the named transform steps a Transformer runs and a
// registry that builds them from configuration.
package steps

import (
	"fmt"
	"slices"

	"github.com/custodia-labs/textpipe/internal/core/domain"
	"github.com/custodia-labs/textpipe/internal/core/ports/driving"
)

// BuilderFunc creates a StepFunc from generic config.
// Config is a map of step-specific settings parsed from flags or TOML.
type BuilderFunc func(cfg map[string]any) (driving.StepFunc, error)

// Registry maps step names to their builders.
type Registry struct {
	builders map[string]BuilderFunc
}

// NewRegistry creates an empty step registry.
func NewRegistry() *Registry {
	return &Registry{
		builders: make(map[string]BuilderFunc),
	}
}

// Register adds a step builder. A later registration replaces an earlier
// one with the same name.
func (r *Registry) Register(name string, builder BuilderFunc) {
	r.builders[name] = builder
}

// Build creates the step function registered under name.
// Returns domain.ErrUnknownStep if the name is not registered.
func (r *Registry) Build(name string, cfg map[string]any) (driving.StepFunc, error) {
	builder, ok := r.builders[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnknownStep, name)
	}
	fn, err := builder(cfg)
	if err != nil {
		return nil, fmt.Errorf("building step %s: %w", name, err)
	}
	return fn, nil
}

// Has returns true if a step with the given name is registered.
func (r *Registry) Has(name string) bool {
	_, ok := r.builders[name]
	return ok
}

// Names returns the registered step names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.builders))
	for name := range r.builders {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Pipeline builds the named steps in order. Each step reads from corpus
// and gets cfg[name] as its builder config.
func (r *Registry) Pipeline(names []string, cfg map[string]map[string]any, corpus driving.Catalog) ([]driving.Step, error) {
	pipeline := make([]driving.Step, 0, len(names))
	for _, name := range names {
		fn, err := r.Build(name, cfg[name])
		if err != nil {
			return nil, err
		}
		pipeline = append(pipeline, driving.Step{Name: name, Fn: fn, Catalog: corpus})
	}
	return pipeline, nil
}
