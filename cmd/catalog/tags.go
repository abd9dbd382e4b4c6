package catalog

import (
	"fmt"
	"io"

	"github.com/vkorhonen/alexandria/internal/library"
)

// ListTags prints the sorted union of every tag in the collection, one per
// line.
func ListTags(w io.Writer) error {
	store := openStore()

	tags := library.AllTags(store.Books())
	if len(tags) == 0 {
		_, err := fmt.Fprintln(w, "No tags in the catalog.")
		return err
	}

	for _, tag := range tags {
		if _, err := fmt.Fprintln(w, tag); err != nil {
			return err
		}
	}
	return nil
}
