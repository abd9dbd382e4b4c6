package catalog

import (
	"log/slog"

	"github.com/vkorhonen/alexandria/internal/config"
	"github.com/vkorhonen/alexandria/internal/covers"
	"github.com/vkorhonen/alexandria/internal/library"
)

// AddOptions carries the fields of a new catalog record.
type AddOptions struct {
	Title  string
	Author string
	Year   string
	Genre  string
	Series string
	Notes  string
	Tags   []string
	Cover  string
}

// AddBook validates the options, copies the cover image if one was given,
// and persists the new record.
func AddBook(opts AddOptions) error {
	book := library.Book{
		Title:  opts.Title,
		Author: opts.Author,
		Year:   opts.Year,
		Genre:  opts.Genre,
		Series: opts.Series,
		Notes:  opts.Notes,
		Tags:   opts.Tags,
	}

	if opts.Cover != "" {
		coverPath, err := covers.Copy(opts.Cover, config.CoversDir)
		if err != nil {
			return err
		}
		book.Cover = coverPath
	}

	store := openStore()
	added, err := store.Add(book)
	if err != nil {
		return err
	}

	slog.Info("Book added", "key", added.Key, "title", added.Title, "author", added.Author)
	return nil
}
