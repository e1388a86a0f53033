package steps

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/textpipe/internal/core/domain"
	"github.com/custodia-labs/textpipe/internal/core/ports/driving"
	"github.com/custodia-labs/textpipe/internal/core/services"
)

func noopBuilder(_ map[string]any) (driving.StepFunc, error) {
	return func(context.Context, *driving.StepArgs) (domain.DocID, error) {
		return domain.DocID{}, nil
	}, nil
}

func TestNewRegistry(t *testing.T) {
	r := NewRegistry()
	require.NotNil(t, r)
	assert.Empty(t, r.Names())
}

func TestRegistry_RegisterAndHas(t *testing.T) {
	r := NewRegistry()
	r.Register("noop", noopBuilder)

	assert.True(t, r.Has("noop"))
	assert.False(t, r.Has("other"))
}

func TestRegistry_Build(t *testing.T) {
	r := NewRegistry()
	r.Register("noop", noopBuilder)
	r.Register("broken", func(map[string]any) (driving.StepFunc, error) {
		return nil, errors.New("bad config")
	})

	tests := []struct {
		name    string
		step    string
		wantErr error
		errText string
	}{
		{name: "registered", step: "noop"},
		{name: "unknown", step: "missing", wantErr: domain.ErrUnknownStep},
		{name: "builder error", step: "broken", errText: "building step broken: bad config"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fn, err := r.Build(tt.step, nil)
			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
			case tt.errText != "":
				assert.EqualError(t, err, tt.errText)
			default:
				require.NoError(t, err)
				assert.NotNil(t, fn)
			}
		})
	}
}

func TestRegistry_NamesSorted(t *testing.T) {
	r := NewRegistry()
	RegisterDefaults(r)
	assert.Equal(t, []string{"clean", "copy", "html2md", "html2txt", "md2txt"}, r.Names())
}

func TestRegistry_Pipeline(t *testing.T) {
	r := NewRegistry()
	RegisterDefaults(r)
	corpus := services.NewFileCatalog(t.TempDir())

	pipeline, err := r.Pipeline([]string{"html2txt", "copy"}, map[string]map[string]any{
		"html2txt": {CleanTextKey: true},
	}, corpus)
	require.NoError(t, err)
	require.Len(t, pipeline, 2)
	assert.Equal(t, "html2txt", pipeline[0].Name)
	assert.Equal(t, "copy", pipeline[1].Name)
	assert.Same(t, corpus, pipeline[0].Catalog)
	assert.NotNil(t, pipeline[1].Fn)

	_, err = r.Pipeline([]string{"copy", "nope"}, nil, corpus)
	assert.ErrorIs(t, err, domain.ErrUnknownStep)
}

func TestGetBoolFromConfig(t *testing.T) {
	tests := []struct {
		name string
		cfg  map[string]any
		want bool
	}{
		{"nil config", nil, false},
		{"missing", map[string]any{}, false},
		{"bool true", map[string]any{"k": true}, true},
		{"bool false", map[string]any{"k": false}, false},
		{"string true", map[string]any{"k": "true"}, true},
		{"string yes", map[string]any{"k": "yes"}, true},
		{"string other", map[string]any{"k": "on-ish"}, false},
		{"int", map[string]any{"k": 1}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, getBoolFromConfig(tt.cfg, "k"))
		})
	}
}
