package library

import (
	"encoding/csv"
	"os"
	"strings"

	"github.com/vkorhonen/alexandria/internal/errors"
)

// csvHeader is the column set shared by CSV export and import.
var csvHeader = []string{"key", "title", "author", "year", "genre", "series", "tags", "notes", "cover"}

// CSVHeader returns the export column names in order.
func CSVHeader() []string {
	return append([]string(nil), csvHeader...)
}

// CSVRow returns the book as one export row. Tags are joined into a single
// field; the CSV writer handles quoting when a value contains the delimiter.
func CSVRow(b Book) []string {
	return []string{
		b.Key,
		b.Title,
		b.Author,
		b.Year,
		b.Genre,
		b.Series,
		strings.Join(b.Tags, ","),
		b.Notes,
		b.Cover,
	}
}

// ExportCSV writes the given records to destination as UTF-8 CSV with a
// header row. Failures to create or write the file surface as persistence
// errors and leave the in-memory collection untouched.
func ExportCSV(books []Book, destination string) error {
	file, err := os.Create(destination)
	if err != nil {
		return errors.NewPersistError("export csv", destination, err)
	}
	defer func() { _ = file.Close() }()

	writer := csv.NewWriter(file)
	if err := writer.Write(csvHeader); err != nil {
		return errors.NewPersistError("export csv", destination, err)
	}

	for _, b := range books {
		if err := writer.Write(CSVRow(b)); err != nil {
			return errors.NewPersistError("export csv", destination, err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return errors.NewPersistError("export csv", destination, err)
	}

	return file.Close()
}

// BookFromCSVRow parses one import row using the export column order. The
// key column may be empty; a fresh key is assigned on save.
func BookFromCSVRow(record []string) (Book, error) {
	if len(record) < len(csvHeader) {
		return Book{}, errors.NewValidationError("row has too few columns")
	}

	book := Book{
		Key:    record[0],
		Title:  strings.TrimSpace(record[1]),
		Author: strings.TrimSpace(record[2]),
		Year:   record[3],
		Genre:  record[4],
		Series: record[5],
		Notes:  record[7],
		Cover:  record[8],
	}

	if record[6] != "" {
		book.Tags = strings.Split(record[6], ",")
	}

	if book.Title == "" {
		return Book{}, errors.NewValidationError("title is required")
	}
	if book.Author == "" {
		return Book{}, errors.NewValidationError("author is required")
	}

	return book, nil
}
