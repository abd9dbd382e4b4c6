// Package library implements the record store for the book catalog: loading,
// mutating, and persisting the collection and settings files, plus the query
// operations the CLI layers on top of them.
package library

import (
	"strings"

	"github.com/google/uuid"
)

// Book represents a single catalog entry in the collection file.
type Book struct {
	Key    string   `json:"key"`
	Title  string   `json:"title"`
	Author string   `json:"author"`
	Year   string   `json:"year,omitempty"`
	Genre  string   `json:"genre,omitempty"`
	Series string   `json:"series,omitempty"`
	Notes  string   `json:"notes,omitempty"`
	Tags   []string `json:"tags"`
	Cover  string   `json:"cover,omitempty"`
}

// Settings is the flat settings document. Keys this version does not
// recognize are preserved on save.
type Settings map[string]any

// NewKey returns a fresh record key. Keys are never reused, even after the
// record they belonged to is deleted.
func NewKey() string {
	return uuid.NewString()
}

// HasTag reports whether the book carries the given tag (exact match).
func (b *Book) HasTag(tag string) bool {
	for _, t := range b.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// normalize trims the text fields, collapses duplicate tags, and assigns a
// key if the record does not have one. Called on load and before save so
// legacy records end up with the same shape as new ones.
func (b *Book) normalize() {
	b.Title = strings.TrimSpace(b.Title)
	b.Author = strings.TrimSpace(b.Author)
	b.Year = strings.TrimSpace(b.Year)
	b.Genre = strings.TrimSpace(b.Genre)
	b.Series = strings.TrimSpace(b.Series)

	if b.Key == "" {
		b.Key = NewKey()
	}

	b.Tags = dedupeTags(b.Tags)
}

func dedupeTags(tags []string) []string {
	seen := make(map[string]bool, len(tags))
	result := make([]string, 0, len(tags))
	for _, tag := range tags {
		tag = strings.TrimSpace(tag)
		if tag == "" || seen[tag] {
			continue
		}
		seen[tag] = true
		result = append(result, tag)
	}
	return result
}
