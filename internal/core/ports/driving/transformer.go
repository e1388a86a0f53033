package driving

import (
	"context"
	"io"

	"github.com/custodia-labs/textpipe/internal/core/domain"
)

// StepArgs is the per-step argument record of a transform run.
// One record exists per step name; it is created before the first document
// and reused for every document of the run, so Extra may carry state
// between documents.
type StepArgs struct {
	// DocID is the document the step operates on.
	DocID domain.DocID

	// Corpus is the catalog the step was registered against.
	Corpus Catalog

	// Source and Target are the transformer's catalogs.
	Source Catalog
	Target Catalog

	// Extra holds caller-supplied fields for this step.
	Extra map[string]any
}

// StepFunc performs one transformation on args.DocID.
// It returns the id later steps must see, or the zero DocID to keep
// args.DocID. A non-nil error aborts the run.
type StepFunc func(ctx context.Context, args *StepArgs) (domain.DocID, error)

// Step is a named unit of a transform pipeline.
type Step struct {
	Name    string
	Fn      StepFunc
	Catalog Catalog
}

// IncludeFunc decides whether a source document enters the step chain.
type IncludeFunc func(ctx context.Context, source Catalog, id domain.DocID) (bool, error)

// AfterFunc runs once a document has passed through every step, with the
// id the last step left.
type AfterFunc func(ctx context.Context, target Catalog, id domain.DocID) error

// TransformOptions configures a single Transform call.
type TransformOptions struct {
	// Args maps step names to extra fields copied into their StepArgs.
	Args map[string]map[string]any

	// IDs overrides the transformer's default document list.
	IDs []domain.DocID

	// Include optionally filters documents before the first step.
	Include IncludeFunc

	// After optionally runs on the target after each included document.
	After AfterFunc

	// Debug writes one progress line per document to Progress.
	Debug bool

	// Progress receives debug lines. Defaults to stderr.
	Progress io.Writer
}

// Transformer runs ordered steps over a list of documents.
type Transformer interface {
	Transform(ctx context.Context, steps []Step, opts TransformOptions) error
}
