package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vkorhonen/alexandria/internal/library"
	"github.com/vkorhonen/alexandria/internal/tui"
)

func stubPicker(t *testing.T, result tui.SelectionResult) {
	t.Helper()

	original := pickBooks
	pickBooks = func(prompt string, books []library.Book) (tui.SelectionResult, error) {
		return result, nil
	}
	t.Cleanup(func() { pickBooks = original })
}

func TestAddTagToBooksWithKeys(t *testing.T) {
	setupEnv(t)
	seedCollection(t, sampleBooks())

	require.NoError(t, AddTagToBooks("favorite", []string{"k1", "k3"}))

	books := loadCollection()
	assert.True(t, books[0].HasTag("favorite"))
	assert.False(t, books[1].HasTag("favorite"))
	assert.True(t, books[2].HasTag("favorite"))
}

func TestRemoveTagFromBooksWithKeys(t *testing.T) {
	setupEnv(t)
	seedCollection(t, sampleBooks())

	require.NoError(t, RemoveTagFromBooks("scifi", []string{"k1", "k2"}))

	books := loadCollection()
	assert.False(t, books[0].HasTag("scifi"))
	assert.False(t, books[1].HasTag("scifi"))
	assert.True(t, books[0].HasTag("classic"))
}

func TestAddTagUsesPickerWhenNoKeys(t *testing.T) {
	setupEnv(t)
	seedCollection(t, sampleBooks())
	stubPicker(t, tui.SelectionResult{
		Action: tui.ActionConfirmed,
		Keys:   map[string]bool{"k2": true},
	})

	require.NoError(t, AddTagToBooks("space-opera", nil))

	books := loadCollection()
	assert.False(t, books[0].HasTag("space-opera"))
	assert.True(t, books[1].HasTag("space-opera"))
}

func TestAddTagPickerCancelled(t *testing.T) {
	setupEnv(t)
	seedCollection(t, sampleBooks())
	stubPicker(t, tui.SelectionResult{Action: tui.ActionCancelled})

	require.NoError(t, AddTagToBooks("favorite", nil))

	for _, b := range loadCollection() {
		assert.False(t, b.HasTag("favorite"))
	}
}

func TestTagRoundTrip(t *testing.T) {
	setupEnv(t)
	seedCollection(t, sampleBooks())

	require.NoError(t, AddTagToBooks("favorite", []string{"k1", "k2", "k3"}))
	require.NoError(t, RemoveTagFromBooks("favorite", []string{"k1", "k2", "k3"}))

	books := loadCollection()
	assert.Equal(t, []string{"scifi", "classic"}, books[0].Tags)
	assert.Equal(t, []string{"scifi"}, books[1].Tags)
	assert.Empty(t, books[2].Tags)
}
