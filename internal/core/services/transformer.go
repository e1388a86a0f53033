package services

import (
	"context"
	"fmt"
	"maps"
	"os"

	"github.com/google/uuid"

	"github.com/custodia-labs/textpipe/internal/core/domain"
	"github.com/custodia-labs/textpipe/internal/core/ports/driving"
	"github.com/custodia-labs/textpipe/internal/logger"
)

// Ensure Transformer implements the interface.
var _ driving.Transformer = (*Transformer)(nil)

// CorpusArg is the Extra key that overrides a step's Corpus catalog.
const CorpusArg = "corpus"

// Transformer runs named steps over the documents of a source catalog,
// writing results into a target catalog.
type Transformer struct {
	source driving.Catalog
	target driving.Catalog
	ids    []domain.DocID
}

// NewTransformer creates a transformer. ids, when given, is the default
// document list for runs that do not supply their own.
func NewTransformer(source, target driving.Catalog, ids ...domain.DocID) *Transformer {
	var defaults []domain.DocID
	if len(ids) > 0 {
		defaults = append(defaults, ids...)
	}
	return &Transformer{source: source, target: target, ids: defaults}
}

// Source returns the catalog documents are read from.
func (t *Transformer) Source() driving.Catalog {
	return t.source
}

// Target returns the catalog results are written to.
func (t *Transformer) Target() driving.Catalog {
	return t.target
}

// Transform applies steps in order to every document. The first step sees
// the document's own id; each later step sees the id left by the step
// before it. The first step error stops the run.
func (t *Transformer) Transform(ctx context.Context, steps []driving.Step, opts driving.TransformOptions) error {
	for _, step := range steps {
		if step.Fn == nil {
			return fmt.Errorf("%w: step %q has no function", domain.ErrInvalidArgument, step.Name)
		}
	}

	ids, err := t.documents(opts.IDs)
	if err != nil {
		return err
	}

	args := t.stepArgs(steps, opts.Args)

	progress := opts.Progress
	if progress == nil {
		progress = os.Stderr
	}

	runID := uuid.NewString()
	logger.Section("Transform " + runID)
	logger.Debug("%d documents, %d steps", len(ids), len(steps))
	if opts.Debug {
		fmt.Fprintf(progress, "run %s: %d documents\n", runID, len(ids))
	}

	for n, id := range ids {
		if err := ctx.Err(); err != nil {
			return err
		}

		last, err := t.apply(ctx, id, steps, args, opts)
		if err != nil {
			return err
		}
		if opts.Debug {
			fmt.Fprintf(progress, "%d %s to %s\n", n+1, id, last)
		}
	}
	return nil
}

// apply runs the step chain for one document and returns the last id.
func (t *Transformer) apply(ctx context.Context, id domain.DocID, steps []driving.Step, args map[string]*driving.StepArgs, opts driving.TransformOptions) (domain.DocID, error) {
	if opts.Include != nil {
		ok, err := opts.Include(ctx, t.source, id)
		if err != nil {
			return id, fmt.Errorf("filtering %s: %w", id, err)
		}
		if !ok {
			logger.Debug("skipped %s", id)
			return id, nil
		}
	}

	current := id
	for _, step := range steps {
		a := args[step.Name]
		a.DocID = current

		next, err := step.Fn(ctx, a)
		if err != nil {
			return current, fmt.Errorf("%w: step %q on %s: %w", domain.ErrStepFailed, step.Name, current, err)
		}
		if !next.IsZero() {
			a.DocID = next
		}
		logger.Debug("%s: %s -> %s", step.Name, current, a.DocID)
		current = a.DocID
	}

	if opts.After != nil {
		if err := opts.After(ctx, t.target, current); err != nil {
			return current, fmt.Errorf("finishing %s: %w", current, err)
		}
	}
	return current, nil
}

// documents picks the run's ids: explicit, then the defaults, then the
// whole source corpus.
func (t *Transformer) documents(ids []domain.DocID) ([]domain.DocID, error) {
	if ids != nil {
		return ids, nil
	}
	if t.ids != nil {
		return t.ids, nil
	}
	resolved, err := t.source.Resolve(domain.All())
	if err != nil {
		return nil, fmt.Errorf("resolving source documents: %w", err)
	}
	return resolved, nil
}

// stepArgs builds one record per step name. Records persist for the whole
// run so steps can keep state in Extra.
func (t *Transformer) stepArgs(steps []driving.Step, extra map[string]map[string]any) map[string]*driving.StepArgs {
	args := make(map[string]*driving.StepArgs, len(steps))
	for _, step := range steps {
		if _, ok := args[step.Name]; ok {
			continue
		}
		a := &driving.StepArgs{
			Corpus: step.Catalog,
			Source: t.source,
			Target: t.target,
			Extra:  maps.Clone(extra[step.Name]),
		}
		if a.Extra == nil {
			a.Extra = make(map[string]any)
		}
		if c, ok := a.Extra[CorpusArg].(driving.Catalog); ok {
			a.Corpus = c
		}
		args[step.Name] = a
	}
	return args
}
