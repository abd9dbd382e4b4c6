package obsidian

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFrontmatter_SetKeepsKeysSorted(t *testing.T) {
	fm := NewFrontmatter()
	fm.Set("year", "1965")
	fm.Set("author", "Herbert")
	fm.Set("title", "Dune")

	assert.Equal(t, []string{"author", "title", "year"}, fm.Keys())

	// Overwriting does not duplicate the key
	fm.Set("title", "Dune Messiah")
	assert.Equal(t, []string{"author", "title", "year"}, fm.Keys())
	assert.Equal(t, "Dune Messiah", fm.GetString("title"))
}

func TestFrontmatter_Getters(t *testing.T) {
	fm := NewFrontmatter()
	fm.Set("title", "Dune")
	fm.Set("tags", []string{"scifi", "classic"})

	assert.Equal(t, "Dune", fm.GetString("title"))
	assert.Equal(t, "", fm.GetString("missing"))
	assert.Equal(t, []string{"scifi", "classic"}, fm.GetStringArray("tags"))

	val, ok := fm.Get("title")
	require.True(t, ok)
	assert.Equal(t, "Dune", val)
}

func TestNote_Build(t *testing.T) {
	fm := NewFrontmatterWithTitle("Dune")
	fm.Set("author", "Herbert")
	fm.Set("tags", []string{"scifi", "classic"})

	note := &Note{Frontmatter: fm, Body: "A desert planet.\n"}
	out, err := note.Build()
	require.NoError(t, err)

	content := string(out)
	assert.True(t, strings.HasPrefix(content, "---\n"))
	assert.Contains(t, content, "title: Dune")
	assert.Contains(t, content, "author: Herbert")
	// Tags are flow-style
	assert.Contains(t, content, "tags: [scifi, classic]")
	assert.True(t, strings.HasSuffix(content, "A desert planet.\n"))
}

func TestNote_BuildWithoutFrontmatter(t *testing.T) {
	note := &Note{Frontmatter: NewFrontmatter(), Body: "just a body"}
	out, err := note.Build()
	require.NoError(t, err)

	assert.Equal(t, "just a body", string(out))
}

func TestBuildNoteMarkdown_TrimsBody(t *testing.T) {
	fm := NewFrontmatterWithTitle("Dune")
	ts := NewTagSet()
	ts.Add("scifi")
	ApplyTagSet(fm, ts)

	out, err := BuildNoteMarkdown(fm, "\n\nbody text\n\n")
	require.NoError(t, err)

	content := string(out)
	assert.Contains(t, content, "tags: [scifi]")
	assert.True(t, strings.HasSuffix(content, "---\nbody text"))
}
