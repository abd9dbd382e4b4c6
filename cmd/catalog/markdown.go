package catalog

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/vkorhonen/alexandria/internal/config"
	"github.com/vkorhonen/alexandria/internal/fileutil"
	"github.com/vkorhonen/alexandria/internal/library"
	"github.com/vkorhonen/alexandria/internal/obsidian"
)

func writeBookToMarkdown(book library.Book, directory string) error {
	filePath := fileutil.GetMarkdownFilePath(book.Title, directory)

	fm := obsidian.NewFrontmatterWithTitle(book.Title)
	fm.Set("type", "book")
	fm.Set("author", book.Author)

	if book.Year != "" {
		fm.Set("year", book.Year)
	}
	if book.Genre != "" {
		fm.Set("genre", book.Genre)
	}
	if book.Series != "" {
		fm.Set("series", book.Series)
	}

	// Collect tags using TagSet for deduplication and normalization
	tc := obsidian.NewTagSet()
	tc.Add("book")
	tc.AddAll(book.Tags)
	obsidian.ApplyTagSet(fm, tc)

	var body strings.Builder

	if book.Cover != "" {
		fm.Set("cover", book.Cover)
		body.WriteString(fmt.Sprintf("![[%s]]\n\n", book.Cover))
	}

	if book.Notes != "" {
		body.WriteString("## Notes\n\n")
		body.WriteString(book.Notes)
		body.WriteString("\n")
	}

	markdown, err := obsidian.BuildNoteMarkdown(fm, strings.TrimSpace(body.String()))
	if err != nil {
		return fmt.Errorf("failed to build markdown: %w", err)
	}

	written, err := fileutil.WriteFileWithOverwrite(filePath, markdown, 0644, config.OverwriteFiles)
	if err != nil {
		return err
	}

	if written {
		slog.Debug("Wrote markdown file", "file", filePath)
	} else {
		slog.Debug("Skipped existing markdown file", "file", filePath)
	}

	return nil
}
