package library

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBulkAddTag(t *testing.T) {
	books := testBooks()
	keys := map[string]bool{"k1": true, "k3": true, "unknown": true}

	changed := BulkAddTag(books, keys, "favorites")

	assert.Equal(t, 2, changed)
	assert.True(t, books[0].HasTag("favorites"))
	assert.False(t, books[1].HasTag("favorites"))
	assert.True(t, books[2].HasTag("favorites"))
}

func TestBulkAddTag_PresentTagIsNoOp(t *testing.T) {
	books := testBooks()

	changed := BulkAddTag(books, map[string]bool{"k1": true}, "scifi")

	assert.Zero(t, changed)
	assert.Equal(t, []string{"scifi"}, books[0].Tags)
}

func TestBulkAddTag_EmptyTagIsNoOp(t *testing.T) {
	books := testBooks()

	assert.Zero(t, BulkAddTag(books, map[string]bool{"k1": true}, "  "))
	assert.Equal(t, []string{"scifi"}, books[0].Tags)
}

func TestBulkRemoveTag(t *testing.T) {
	books := testBooks()
	keys := map[string]bool{"k1": true, "k2": true}

	changed := BulkRemoveTag(books, keys, "scifi")

	assert.Equal(t, 2, changed)
	assert.False(t, books[0].HasTag("scifi"))
	assert.Equal(t, []string{"space-opera"}, books[1].Tags)
	// Record outside the key set untouched
	assert.Equal(t, []string{"fantasy"}, books[2].Tags)
}

func TestBulkRemoveTag_AbsentTagIsNoOp(t *testing.T) {
	books := testBooks()

	changed := BulkRemoveTag(books, map[string]bool{"k3": true}, "scifi")

	assert.Zero(t, changed)
	assert.Equal(t, []string{"fantasy"}, books[2].Tags)
}

func TestBulkTag_AddThenRemoveRoundTrip(t *testing.T) {
	books := testBooks()
	original := make([][]string, len(books))
	for i, b := range books {
		original[i] = append([]string(nil), b.Tags...)
	}

	keys := map[string]bool{"k1": true, "k2": true, "k3": true}

	added := BulkAddTag(books, keys, "to-read")
	removed := BulkRemoveTag(books, keys, "to-read")

	assert.Equal(t, added, removed)
	for i, b := range books {
		assert.Equal(t, original[i], b.Tags, "record %s tag set should return to its original state", b.Key)
	}
}
