package catalog

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleDocs() []Document {
	return []Document{
		{ID: "go", Title: "Go Tutorial", Description: "Learn Go", Category: "Backend", Path: "/go", Keywords: []string{" Go ", "GOLANG", ""}},
		{ID: "css", Title: "CSS Tutorial", Description: "Learn CSS", Category: "Frontend", Path: "/css"},
		{ID: "rust", Title: "Rust Tutorial", Description: "Learn Rust", Category: "Backend", Path: "/rust"},
	}
}

func TestNew(t *testing.T) {
	docs := sampleDocs()
	c, err := New(docs)
	require.NoError(t, err)

	assert.Equal(t, 3, c.Count())
	assert.Equal(t, []string{"go", "golang"}, c.Docs()[0].Keywords)
	assert.Equal(t, []string{" Go ", "GOLANG", ""}, docs[0].Keywords, "input must not be modified")

	ids := make([]string, 0, c.Count())
	for _, d := range c.Docs() {
		ids = append(ids, d.ID)
	}
	assert.Equal(t, []string{"go", "css", "rust"}, ids)
}

func TestNewValidation(t *testing.T) {
	t.Run("duplicate id", func(t *testing.T) {
		docs := sampleDocs()
		docs[2].ID = "go"
		_, err := New(docs)
		assert.ErrorIs(t, err, ErrDuplicateID)
	})

	t.Run("missing title", func(t *testing.T) {
		docs := sampleDocs()
		docs[1].Title = "  "
		_, err := New(docs)
		assert.ErrorIs(t, err, ErrMissingField)
		assert.Contains(t, err.Error(), "title")
	})

	t.Run("missing path", func(t *testing.T) {
		docs := sampleDocs()
		docs[0].Path = ""
		_, err := New(docs)
		assert.ErrorIs(t, err, ErrMissingField)
	})

	t.Run("empty catalog", func(t *testing.T) {
		c, err := New(nil)
		require.NoError(t, err)
		assert.Equal(t, 0, c.Count())
	})
}

func TestGet(t *testing.T) {
	c, err := New(sampleDocs())
	require.NoError(t, err)

	doc, ok := c.Get("css")
	require.True(t, ok)
	assert.Equal(t, "CSS Tutorial", doc.Title)

	_, ok = c.Get("missing")
	assert.False(t, ok)
}

func TestCategories(t *testing.T) {
	c, err := New(sampleDocs())
	require.NoError(t, err)

	assert.Equal(t, []string{"Backend", "Frontend"}, c.Categories())
	assert.Len(t, c.ByCategory("backend"), 2)
	assert.Empty(t, c.ByCategory("DevOps"))
}

func TestDefault(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	assert.GreaterOrEqual(t, c.Count(), 20)

	doc, ok := c.Get("reactjs")
	require.True(t, ok)
	assert.Equal(t, "React.js Tutorial", doc.Title)
	assert.Contains(t, doc.Keywords, "react")

	for _, d := range c.Docs() {
		for _, kw := range d.Keywords {
			assert.Equal(t, strings.ToLower(kw), kw, "keyword %q of %s not lower-case", kw, d.ID)
		}
	}
}

func TestParseFormats(t *testing.T) {
	t.Run("yaml", func(t *testing.T) {
		in := "tutorials:\n  - id: a\n    title: A\n    description: d\n    category: c\n    path: /a\n    keywords: [x, y]\n"
		docs, err := Parse(strings.NewReader(in), FormatYAML)
		require.NoError(t, err)
		require.Len(t, docs, 1)
		assert.Equal(t, []string{"x", "y"}, docs[0].Keywords)
	})

	t.Run("json", func(t *testing.T) {
		in := `[{"id":"a","title":"A","description":"d","category":"c","path":"/a","content":"body"}]`
		docs, err := Parse(strings.NewReader(in), FormatJSON)
		require.NoError(t, err)
		require.Len(t, docs, 1)
		assert.Equal(t, "body", docs[0].Content)
	})

	t.Run("jsonl skips blank lines", func(t *testing.T) {
		in := "{\"id\":\"a\"}\n\n{\"id\":\"b\"}\n"
		docs, err := Parse(strings.NewReader(in), FormatJSONL)
		require.NoError(t, err)
		require.Len(t, docs, 2)
		assert.Equal(t, "b", docs[1].ID)
	})

	t.Run("jsonl reports line", func(t *testing.T) {
		_, err := Parse(strings.NewReader("{\"id\":\"a\"}\nnot json\n"), FormatJSONL)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "line 2")
	})

	t.Run("unknown format", func(t *testing.T) {
		_, err := Parse(strings.NewReader(""), Format("toml"))
		assert.ErrorIs(t, err, ErrUnsupportedFormat)
	})
}

func TestOpenRoundTripJSONL(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSONL(&buf, sampleDocs()))

	path := filepath.Join(t.TempDir(), "catalog.jsonl")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))

	c, err := Open(path)
	require.NoError(t, err)
	assert.Equal(t, 3, c.Count())
}

func TestOpenErrors(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "catalog.txt"))
	assert.ErrorIs(t, err, ErrUnsupportedFormat)

	_, err = Open(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
