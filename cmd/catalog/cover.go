package catalog

import (
	"fmt"
	"log/slog"

	"github.com/vkorhonen/alexandria/internal/config"
	"github.com/vkorhonen/alexandria/internal/covers"
)

// SetCover copies the source image into the covers folder and points the
// book at the copy. A previous cover file is left on disk.
func SetCover(key, source string) error {
	store := openStore()
	books := store.Books()

	index := -1
	for i := range books {
		if books[i].Key == key {
			index = i
			break
		}
	}
	if index < 0 {
		return fmt.Errorf("no book with key %q", key)
	}

	coverPath, err := covers.Copy(source, config.CoversDir)
	if err != nil {
		return err
	}

	books[index].Cover = coverPath
	if err := store.Replace(books); err != nil {
		return err
	}

	slog.Info("Cover set", "key", key, "cover", coverPath)
	return nil
}
