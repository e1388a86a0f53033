package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDocID(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected DocID
		wantErr  bool
	}{
		{name: "canonical", input: "legal/doc1.txt", expected: DocID{Category: "legal", Name: "doc1.txt"}},
		{name: "cyrillic", input: "закони/ст.41.html", expected: DocID{Category: "закони", Name: "ст.41.html"}},
		{name: "no separator", input: "doc1.txt", wantErr: true},
		{name: "empty category", input: "/doc1.txt", wantErr: true},
		{name: "empty name", input: "legal/", wantErr: true},
		{name: "nested", input: "legal/sub/doc1.txt", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := ParseDocID(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidArgument)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, id)
			assert.Equal(t, tt.input, id.String())
		})
	}
}

func TestMustParseDocID_Panics(t *testing.T) {
	assert.Panics(t, func() { MustParseDocID("broken") })
	assert.NotPanics(t, func() { MustParseDocID("a/b") })
}

func TestDocID_Ext(t *testing.T) {
	assert.Equal(t, "html", NewDocID("web", "Index.HTML").Ext())
	assert.Equal(t, "txt", NewDocID("legal", "a.b.txt").Ext())
	assert.Equal(t, "", NewDocID("legal", "README").Ext())
}

func TestDocID_WithExt(t *testing.T) {
	id := NewDocID("web", "page.html")
	assert.Equal(t, NewDocID("web", "page.txt"), id.WithExt("txt"))
	assert.Equal(t, "page", id.Stem())
}

func TestDocID_IsZero(t *testing.T) {
	assert.True(t, DocID{}.IsZero())
	assert.False(t, NewDocID("a", "b").IsZero())
}

func TestIsHidden(t *testing.T) {
	assert.True(t, IsHidden(".git"))
	assert.True(t, IsHidden(".DS_Store"))
	assert.False(t, IsHidden("legal"))
}

func TestSelection_Validate(t *testing.T) {
	assert.NoError(t, All().Validate())
	assert.NoError(t, ByIDs(NewDocID("a", "b")).Validate())
	assert.NoError(t, ByCategories("a").Validate())

	both := Selection{IDs: []DocID{NewDocID("a", "b")}, Categories: []string{"a"}}
	assert.ErrorIs(t, both.Validate(), ErrInvalidArgument)
}

func TestByIDs_EmptyIsNotAll(t *testing.T) {
	sel := ByIDs()
	assert.NotNil(t, sel.IDs)
	assert.Empty(t, sel.IDs)
	assert.Nil(t, sel.Categories)
}
