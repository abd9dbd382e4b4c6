package library

import "strings"

// BulkAddTag adds tag to every book whose key is in keys. Unknown keys are
// ignored; books that already carry the tag are left alone. Returns the
// number of records changed. The slice is mutated in place; the caller
// persists via Store.Replace or SaveCollection.
func BulkAddTag(books []Book, keys map[string]bool, tag string) int {
	tag = strings.TrimSpace(tag)
	if tag == "" {
		return 0
	}

	changed := 0
	for i := range books {
		if !keys[books[i].Key] || books[i].HasTag(tag) {
			continue
		}
		books[i].Tags = append(books[i].Tags, tag)
		changed++
	}
	return changed
}

// BulkRemoveTag removes tag from every book whose key is in keys. Unknown
// keys and absent tags are ignored. Returns the number of records changed.
func BulkRemoveTag(books []Book, keys map[string]bool, tag string) int {
	changed := 0
	for i := range books {
		if !keys[books[i].Key] || !books[i].HasTag(tag) {
			continue
		}

		remaining := make([]string, 0, len(books[i].Tags)-1)
		for _, t := range books[i].Tags {
			if t != tag {
				remaining = append(remaining, t)
			}
		}
		books[i].Tags = remaining
		changed++
	}
	return changed
}
