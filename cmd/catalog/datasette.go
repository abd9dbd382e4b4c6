package catalog

import (
	"github.com/vkorhonen/alexandria/internal/cmdutil"
	"github.com/vkorhonen/alexandria/internal/library"
)

const booksSchema = `CREATE TABLE IF NOT EXISTS books (
		key TEXT PRIMARY KEY,
		title TEXT,
		author TEXT,
		year TEXT,
		genre TEXT,
		series TEXT,
		notes TEXT,
		tags TEXT,
		cover TEXT
	)`

func bookToMap(book library.Book) map[string]any {
	return cmdutil.StructToMap(book, cmdutil.StructToMapOptions{
		JoinStringSlices: true,
	})
}

func writeBooksToDatasette(books []library.Book) error {
	return cmdutil.WriteToDatastore(books, booksSchema, "books", "Book catalog", bookToMap)
}
