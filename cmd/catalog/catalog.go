// Package catalog implements the CLI commands over the book collection.
package catalog

import (
	"github.com/vkorhonen/alexandria/internal/config"
	"github.com/vkorhonen/alexandria/internal/library"
)

func openStore() *library.Store {
	return library.Open(config.LibraryFile, config.SettingsFile)
}

func keySet(keys []string) map[string]bool {
	set := make(map[string]bool, len(keys))
	for _, k := range keys {
		set[k] = true
	}
	return set
}
