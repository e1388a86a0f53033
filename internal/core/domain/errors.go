package domain

import "errors"

// Domain errors represent corpus and pipeline failures.
// Missing files are not errors: catalogs filter them out silently.
var (
	// ErrNotFound indicates a requested document does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidArgument indicates a malformed call, such as giving both
	// ids and categories to a selector or a DocID without a category.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrEmptySet indicates statistics were requested over a document set
	// that resolved to zero existing files.
	ErrEmptySet = errors.New("empty document set")

	// ErrStepFailed wraps any error returned by a transform step.
	// The run is aborted at the first failure.
	ErrStepFailed = errors.New("pipeline step failed")

	// ErrUnknownStep indicates a step name that is not registered.
	ErrUnknownStep = errors.New("unknown step")
)
