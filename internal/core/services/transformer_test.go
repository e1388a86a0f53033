package services

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/textpipe/internal/core/domain"
	"github.com/custodia-labs/textpipe/internal/core/ports/driving"
)

func transformCorpus(t *testing.T) (*FileCatalog, *FileCatalog) {
	t.Helper()
	source := NewFileCatalog(writeCorpus(t, map[string]string{
		"a/1.html": "<p>one</p>",
		"a/2.html": "<p>two</p>",
		"b/3.html": "<p>three</p>",
	}))
	target := NewFileCatalog(t.TempDir())
	return source, target
}

// recordStep appends "<name>:<id>" to calls for every invocation.
func recordStep(name string, calls *[]string, next func(domain.DocID) domain.DocID) driving.Step {
	return driving.Step{
		Name: name,
		Fn: func(_ context.Context, args *driving.StepArgs) (domain.DocID, error) {
			*calls = append(*calls, name+":"+args.DocID.String())
			if next == nil {
				return domain.DocID{}, nil
			}
			return next(args.DocID), nil
		},
	}
}

func TestNewTransformer(t *testing.T) {
	source, target := transformCorpus(t)
	tr := NewTransformer(source, target)
	assert.Same(t, source, tr.Source())
	assert.Same(t, target, tr.Target())
	assert.Nil(t, tr.ids)
}

func TestTransformer_OrderAndThreading(t *testing.T) {
	source, target := transformCorpus(t)
	var calls []string
	toTxt := func(id domain.DocID) domain.DocID { return id.WithExt("txt") }

	steps := []driving.Step{
		recordStep("convert", &calls, toTxt),
		recordStep("inspect", &calls, nil),
	}
	ids := []domain.DocID{domain.NewDocID("a", "1.html"), domain.NewDocID("b", "3.html")}

	err := NewTransformer(source, target).Transform(context.Background(), steps, driving.TransformOptions{IDs: ids})
	require.NoError(t, err)

	assert.Equal(t, []string{
		"convert:a/1.html",
		"inspect:a/1.txt",
		"convert:b/3.html",
		"inspect:b/3.txt",
	}, calls)
}

func TestTransformer_StepMayMutateArgs(t *testing.T) {
	source, target := transformCorpus(t)
	var seen []string
	steps := []driving.Step{
		{Name: "rename", Fn: func(_ context.Context, args *driving.StepArgs) (domain.DocID, error) {
			args.DocID = domain.NewDocID("renamed", args.DocID.Name)
			return domain.DocID{}, nil
		}},
		{Name: "look", Fn: func(_ context.Context, args *driving.StepArgs) (domain.DocID, error) {
			seen = append(seen, args.DocID.String())
			return domain.DocID{}, nil
		}},
	}

	opts := driving.TransformOptions{IDs: []domain.DocID{domain.NewDocID("a", "1.html")}}
	require.NoError(t, NewTransformer(source, target).Transform(context.Background(), steps, opts))
	assert.Equal(t, []string{"renamed/1.html"}, seen)
}

func TestTransformer_DocumentFallbacks(t *testing.T) {
	source, target := transformCorpus(t)
	explicit := []domain.DocID{domain.NewDocID("b", "3.html")}
	defaults := []domain.DocID{domain.NewDocID("a", "2.html")}

	tests := []struct {
		name     string
		defaults []domain.DocID
		opts     []domain.DocID
		want     []string
	}{
		{"explicit ids win", defaults, explicit, []string{"s:b/3.html"}},
		{"constructor defaults", defaults, nil, []string{"s:a/2.html"}},
		{"whole source", nil, nil, []string{"s:a/1.html", "s:a/2.html", "s:b/3.html"}},
		{"explicit empty list", defaults, []domain.DocID{}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var calls []string
			tr := NewTransformer(source, target, tt.defaults...)
			err := tr.Transform(context.Background(), []driving.Step{recordStep("s", &calls, nil)}, driving.TransformOptions{IDs: tt.opts})
			require.NoError(t, err)
			assert.Equal(t, tt.want, calls)
		})
	}
}

func TestTransformer_StepErrorAborts(t *testing.T) {
	source, target := transformCorpus(t)
	cause := errors.New("disk full")
	var calls []string

	steps := []driving.Step{
		recordStep("first", &calls, nil),
		{Name: "boom", Fn: func(_ context.Context, args *driving.StepArgs) (domain.DocID, error) {
			if args.DocID.Name == "2.html" {
				return domain.DocID{}, cause
			}
			return domain.DocID{}, nil
		}},
		recordStep("last", &calls, nil),
	}

	err := NewTransformer(source, target).Transform(context.Background(), steps, driving.TransformOptions{})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrStepFailed)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), `step "boom" on a/2.html`)

	assert.Equal(t, []string{"first:a/1.html", "last:a/1.html", "first:a/2.html"}, calls)
}

func TestTransformer_NilStepFunction(t *testing.T) {
	source, target := transformCorpus(t)
	err := NewTransformer(source, target).Transform(context.Background(), []driving.Step{{Name: "empty"}}, driving.TransformOptions{})
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
}

func TestTransformer_ArgsPersistAcrossDocuments(t *testing.T) {
	source, target := transformCorpus(t)
	other := NewFileCatalog(t.TempDir())

	var records []*driving.StepArgs
	counter := driving.Step{
		Name:    "count",
		Catalog: source,
		Fn: func(_ context.Context, args *driving.StepArgs) (domain.DocID, error) {
			n, _ := args.Extra["n"].(int)
			args.Extra["n"] = n + 1
			records = append(records, args)
			return domain.DocID{}, nil
		},
	}
	callerArgs := map[string]any{"n": 10, CorpusArg: other}

	opts := driving.TransformOptions{Args: map[string]map[string]any{"count": callerArgs}}
	require.NoError(t, NewTransformer(source, target).Transform(context.Background(), []driving.Step{counter}, opts))

	require.Len(t, records, 3)
	assert.Same(t, records[0], records[2])
	assert.Equal(t, 13, records[2].Extra["n"])
	assert.Same(t, other, records[0].Corpus)
	assert.Same(t, source, records[0].Source)
	assert.Same(t, target, records[0].Target)

	// The caller's map is copied, not mutated.
	assert.Equal(t, 10, callerArgs["n"])
}

func TestTransformer_Include(t *testing.T) {
	source, target := transformCorpus(t)
	var calls []string
	progress := &bytes.Buffer{}

	opts := driving.TransformOptions{
		Include: func(_ context.Context, _ driving.Catalog, id domain.DocID) (bool, error) {
			return id.Category == "a", nil
		},
		Debug:    true,
		Progress: progress,
	}
	steps := []driving.Step{recordStep("s", &calls, func(id domain.DocID) domain.DocID { return id.WithExt("txt") })}
	require.NoError(t, NewTransformer(source, target).Transform(context.Background(), steps, opts))

	assert.Equal(t, []string{"s:a/1.html", "s:a/2.html"}, calls)
	assert.Contains(t, progress.String(), "3 b/3.html to b/3.html\n")

	failing := driving.TransformOptions{
		Include: func(context.Context, driving.Catalog, domain.DocID) (bool, error) {
			return false, errors.New("unreadable")
		},
	}
	err := NewTransformer(source, target).Transform(context.Background(), steps, failing)
	assert.ErrorContains(t, err, "unreadable")
}

func TestTransformer_After(t *testing.T) {
	source, target := transformCorpus(t)
	var finished []string

	opts := driving.TransformOptions{
		Include: func(_ context.Context, _ driving.Catalog, id domain.DocID) (bool, error) {
			return id.Name != "2.html", nil
		},
		After: func(_ context.Context, c driving.Catalog, id domain.DocID) error {
			assert.Same(t, target, c)
			finished = append(finished, id.String())
			return nil
		},
	}
	steps := []driving.Step{{Name: "md", Fn: func(_ context.Context, args *driving.StepArgs) (domain.DocID, error) {
		return args.DocID.WithExt("md"), nil
	}}}
	require.NoError(t, NewTransformer(source, target).Transform(context.Background(), steps, opts))
	assert.Equal(t, []string{"a/1.md", "b/3.md"}, finished)

	opts.After = func(context.Context, driving.Catalog, domain.DocID) error {
		return errors.New("index locked")
	}
	err := NewTransformer(source, target).Transform(context.Background(), steps, opts)
	assert.ErrorContains(t, err, "finishing a/1.md: index locked")
}

func TestTransformer_DebugOutput(t *testing.T) {
	source, target := transformCorpus(t)
	progress := &bytes.Buffer{}
	steps := []driving.Step{{Name: "md", Fn: func(_ context.Context, args *driving.StepArgs) (domain.DocID, error) {
		return args.DocID.WithExt("md"), nil
	}}}

	opts := driving.TransformOptions{Debug: true, Progress: progress}
	require.NoError(t, NewTransformer(source, target).Transform(context.Background(), steps, opts))

	lines := strings.Split(strings.TrimSpace(progress.String()), "\n")
	require.Len(t, lines, 4)
	assert.True(t, strings.HasPrefix(lines[0], "run "))
	assert.True(t, strings.HasSuffix(lines[0], ": 3 documents"))
	assert.Equal(t, "1 a/1.html to a/1.md", lines[1])
	assert.Equal(t, "2 a/2.html to a/2.md", lines[2])
	assert.Equal(t, "3 b/3.html to b/3.md", lines[3])
}

func TestTransformer_NoDebugOutput(t *testing.T) {
	source, target := transformCorpus(t)
	progress := &bytes.Buffer{}
	var calls []string

	opts := driving.TransformOptions{Progress: progress}
	require.NoError(t, NewTransformer(source, target).Transform(context.Background(), []driving.Step{recordStep("s", &calls, nil)}, opts))
	assert.Empty(t, progress.String())
	assert.Len(t, calls, 3)
}

func TestTransformer_CancelledContext(t *testing.T) {
	source, target := transformCorpus(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var calls []string
	err := NewTransformer(source, target).Transform(ctx, []driving.Step{recordStep("s", &calls, nil)}, driving.TransformOptions{})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, calls)
}
