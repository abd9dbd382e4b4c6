package catalog

import (
	"log/slog"

	"github.com/vkorhonen/alexandria/internal/csvutil"
	"github.com/vkorhonen/alexandria/internal/library"
)

// ImportCSV reads books from a CSV file using the export column order and
// merges them into the collection. Invalid rows are skipped with a warning;
// imported records always get fresh keys.
func ImportCSV(filename string) error {
	imported, err := csvutil.ProcessCSV(filename, library.BookFromCSVRow, csvutil.ProcessorOptions{
		SkipInvalid: true,
	})
	if err != nil {
		return err
	}

	if len(imported) == 0 {
		slog.Warn("No valid rows in CSV file", "file", filename)
		return nil
	}

	store := openStore()
	books := store.Books()
	for _, book := range imported {
		// Re-importing an export must not collide with existing records.
		book.Key = library.NewKey()
		books = append(books, book)
	}

	if err := store.Replace(books); err != nil {
		return err
	}

	slog.Info("Books imported", "file", filename, "count", len(imported))
	return nil
}
