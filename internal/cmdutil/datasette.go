package cmdutil

import (
	"fmt"
	"log/slog"

	"github.com/spf13/viper"

	"github.com/vkorhonen/alexandria/internal/datastore"
)

// WriteToDatastore writes records to the local Datasette SQLite database
// when the sink is enabled in config. Each record is converted to a column
// map by toMap. Disabled sink is a silent no-op.
func WriteToDatastore[T any](records []T, schema, table, description string, toMap func(T) map[string]any) error {
	if !viper.GetBool("datasette.enabled") {
		return nil
	}

	dbFile := viper.GetString("datasette.dbfile")
	store := datastore.NewSQLiteStore(dbFile)
	if err := store.Connect(); err != nil {
		return fmt.Errorf("failed to connect to datastore: %w", err)
	}
	defer func() { _ = store.Close() }()

	if err := store.CreateTable(schema); err != nil {
		return fmt.Errorf("failed to create table %s: %w", table, err)
	}

	rows := make([]map[string]any, len(records))
	for i, record := range records {
		rows[i] = toMap(record)
	}

	if err := store.BatchInsert(table, rows); err != nil {
		return fmt.Errorf("failed to insert %s: %w", description, err)
	}

	slog.Info("Wrote records to datastore", "table", table, "count", len(rows), "dbfile", dbFile)
	return nil
}
