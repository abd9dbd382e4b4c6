package catalog

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/vkorhonen/alexandria/internal/library"
)

// ListOptions narrows and orders the listing.
type ListOptions struct {
	Search string
	Tag    string
	Sort   string
}

// ListBooks prints the collection as a table, after applying the tag filter,
// search keyword, and sort criterion in that order.
func ListBooks(w io.Writer, opts ListOptions) error {
	store := openStore()
	books := store.Books()

	books = library.FilterByTag(books, opts.Tag)
	books = library.Search(books, opts.Search)

	if opts.Sort != "" {
		sorted, err := library.SortBooks(books, opts.Sort)
		if err != nil {
			return err
		}
		books = sorted
	}

	if len(books) == 0 {
		_, err := fmt.Fprintln(w, "No books found.")
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "KEY\tTITLE\tAUTHOR\tYEAR\tTAGS")
	for _, b := range books {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
			b.Key, b.Title, b.Author, b.Year, strings.Join(b.Tags, ", "))
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	_, err := fmt.Fprintf(w, "\n%d book(s)\n", len(books))
	return err
}
