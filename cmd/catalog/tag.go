package catalog

import (
	"log/slog"

	"github.com/vkorhonen/alexandria/internal/library"
	"github.com/vkorhonen/alexandria/internal/tui"
)

var pickBooks = tui.PickBooks

// AddTagToBooks adds tag to the books with the given keys. When no keys are
// given the books are chosen in the interactive picker.
func AddTagToBooks(tag string, keys []string) error {
	return bulkTagEdit(tag, keys, "Select books to tag", library.BulkAddTag)
}

// RemoveTagFromBooks removes tag from the books with the given keys. When no
// keys are given the books are chosen in the interactive picker.
func RemoveTagFromBooks(tag string, keys []string) error {
	return bulkTagEdit(tag, keys, "Select books to untag", library.BulkRemoveTag)
}

func bulkTagEdit(tag string, keys []string, prompt string, edit func([]library.Book, map[string]bool, string) int) error {
	store := openStore()
	books := store.Books()

	selected := keySet(keys)
	if len(selected) == 0 {
		result, err := pickBooks(prompt, books)
		if err != nil {
			return err
		}
		if result.Action != tui.ActionConfirmed || len(result.Keys) == 0 {
			slog.Info("No books selected, nothing to do")
			return nil
		}
		selected = result.Keys
	}

	changed := edit(books, selected, tag)
	if changed == 0 {
		slog.Info("No books changed", "tag", tag)
		return nil
	}

	if err := store.Replace(books); err != nil {
		return err
	}

	slog.Info("Tags updated", "tag", tag, "count", changed)
	return nil
}
