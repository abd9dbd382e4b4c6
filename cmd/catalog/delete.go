package catalog

import "log/slog"

// DeleteBooks removes the records with the given keys. Unknown keys are
// ignored; cover files referenced by deleted records stay on disk.
func DeleteBooks(keys []string) error {
	store := openStore()

	deleted, err := store.Delete(keySet(keys))
	if err != nil {
		return err
	}

	if deleted == 0 {
		slog.Warn("No books matched the given keys")
		return nil
	}

	slog.Info("Books deleted", "count", deleted)
	return nil
}
