package library

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/vkorhonen/alexandria/internal/errors"
	"github.com/vkorhonen/alexandria/internal/fileutil"
)

// LoadCollection reads the collection file at path. A missing, unreadable,
// or malformed file yields an empty collection rather than an error, so the
// application stays usable on first run or after external corruption.
func LoadCollection(path string) []Book {
	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			slog.Warn("Collection file unreadable, starting empty", "path", path, "error", err)
		}
		return []Book{}
	}

	var books []Book
	if err := json.Unmarshal(data, &books); err != nil {
		slog.Warn("Collection file malformed, starting empty", "path", path, "error", err)
		return []Book{}
	}

	// Legacy records may lack keys or carry duplicate tags
	for i := range books {
		books[i].normalize()
	}

	return books
}

// SaveCollection validates and writes the full collection to path. The write
// is atomic: a temp file in the target directory is renamed into place, so a
// failure partway never leaves a truncated file visible.
func SaveCollection(path string, books []Book) error {
	for i := range books {
		books[i].normalize()
		if books[i].Title == "" {
			return errors.NewValidationError(fmt.Sprintf("record %d: title is required", i))
		}
		if books[i].Author == "" {
			return errors.NewValidationError(fmt.Sprintf("record %d: author is required", i))
		}
	}

	if err := fileutil.WriteJSONFileAtomic(books, path); err != nil {
		return errors.NewPersistError("save collection", path, err)
	}

	return nil
}

// LoadSettings reads the settings file at path. Missing or malformed files
// yield an empty settings map.
func LoadSettings(path string) Settings {
	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			slog.Warn("Settings file unreadable, using defaults", "path", path, "error", err)
		}
		return Settings{}
	}

	var settings Settings
	if err := json.Unmarshal(data, &settings); err != nil {
		slog.Warn("Settings file malformed, using defaults", "path", path, "error", err)
		return Settings{}
	}

	return settings
}

// SaveSettings writes the settings map to path atomically. Keys this version
// does not use are written back untouched.
func SaveSettings(path string, settings Settings) error {
	if err := fileutil.WriteJSONFileAtomic(settings, path); err != nil {
		return errors.NewPersistError("save settings", path, err)
	}
	return nil
}

// Store owns the in-memory collection and settings for the lifetime of the
// process. Callers hold only keys; every mutation goes through the store and
// is persisted immediately.
type Store struct {
	collectionPath string
	settingsPath   string

	books    []Book
	settings Settings
}

// Open loads the collection and settings from disk and returns a store over
// them. Load failures degrade to empty state, never an error.
func Open(collectionPath, settingsPath string) *Store {
	return &Store{
		collectionPath: collectionPath,
		settingsPath:   settingsPath,
		books:          LoadCollection(collectionPath),
		settings:       LoadSettings(settingsPath),
	}
}

// Books returns the current in-memory collection.
func (s *Store) Books() []Book {
	return s.books
}

// Settings returns the current in-memory settings map.
func (s *Store) Settings() Settings {
	return s.settings
}

// Add validates a new record, assigns it a key, appends it, and persists the
// collection. On a persistence failure the record is rolled back so the
// in-memory state matches the last saved state plus nothing.
func (s *Store) Add(book Book) (Book, error) {
	book.normalize()
	if book.Title == "" {
		return Book{}, errors.NewValidationError("title is required")
	}
	if book.Author == "" {
		return Book{}, errors.NewValidationError("author is required")
	}

	s.books = append(s.books, book)
	if err := s.Save(); err != nil {
		s.books = s.books[:len(s.books)-1]
		return Book{}, err
	}

	slog.Info("Added book", "key", book.Key, "title", book.Title)
	return book, nil
}

// Delete removes the records whose keys are in keys and persists the
// collection. Unknown keys are ignored. Cover files referenced by deleted
// records are left in place.
func (s *Store) Delete(keys map[string]bool) (int, error) {
	remaining := make([]Book, 0, len(s.books))
	for _, b := range s.books {
		if !keys[b.Key] {
			remaining = append(remaining, b)
		}
	}

	deleted := len(s.books) - len(remaining)
	if deleted == 0 {
		return 0, nil
	}

	previous := s.books
	s.books = remaining
	if err := s.Save(); err != nil {
		s.books = previous
		return 0, err
	}

	slog.Info("Deleted books", "count", deleted)
	return deleted, nil
}

// Replace swaps in a new collection wholesale and persists it. Used by bulk
// operations that edit records in place.
func (s *Store) Replace(books []Book) error {
	previous := s.books
	s.books = books
	if err := s.Save(); err != nil {
		s.books = previous
		return err
	}
	return nil
}

// Save persists the full in-memory collection.
func (s *Store) Save() error {
	return SaveCollection(s.collectionPath, s.books)
}

// SetSetting updates one settings key and persists the settings file.
func (s *Store) SetSetting(key string, value any) error {
	previous, had := s.settings[key]
	s.settings[key] = value
	if err := SaveSettings(s.settingsPath, s.settings); err != nil {
		if had {
			s.settings[key] = previous
		} else {
			delete(s.settings, key)
		}
		return err
	}
	return nil
}
