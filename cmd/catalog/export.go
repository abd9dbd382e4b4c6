package catalog

import (
	"log/slog"

	"github.com/vkorhonen/alexandria/internal/cmdutil"
	"github.com/vkorhonen/alexandria/internal/library"
)

// ExportCSV writes the whole collection to a CSV file.
func ExportCSV(destination string) error {
	store := openStore()

	if err := library.ExportCSV(store.Books(), destination); err != nil {
		return err
	}

	slog.Info("CSV export written", "file", destination, "count", len(store.Books()))
	return nil
}

// ExportMarkdown writes one markdown note per book into the output
// directory.
func ExportMarkdown(outputDir string) error {
	store := openStore()

	cfg := &cmdutil.BaseCommandConfig{
		OutputDir: outputDir,
		ConfigKey: "books",
	}
	if err := cmdutil.SetupOutputDir(cfg); err != nil {
		return err
	}

	written := 0
	for _, book := range store.Books() {
		if err := writeBookToMarkdown(book, cfg.OutputDir); err != nil {
			slog.Error("Error writing markdown", "title", book.Title, "error", err)
			continue
		}
		written++
	}

	slog.Info("Markdown export finished", "directory", cfg.OutputDir, "count", written)
	return nil
}

// ExportDatasette batch-inserts the collection into the configured SQLite
// file.
func ExportDatasette() error {
	store := openStore()

	if err := writeBooksToDatasette(store.Books()); err != nil {
		return err
	}

	slog.Info("Datasette export finished", "count", len(store.Books()))
	return nil
}
