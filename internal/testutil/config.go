package testutil

import (
	"testing"

	"github.com/spf13/viper"

	"github.com/vkorhonen/alexandria/internal/config"
)

// ConfigState holds the state of the config package variables.
type ConfigState struct {
	OverwriteFiles    bool
	LibraryFile       string
	SettingsFile      string
	CoversDir         string
	MarkdownOutputDir string
}

// SaveConfigState captures the current state of config package variables.
func SaveConfigState() ConfigState {
	return ConfigState{
		OverwriteFiles:    config.OverwriteFiles,
		LibraryFile:       config.LibraryFile,
		SettingsFile:      config.SettingsFile,
		CoversDir:         config.CoversDir,
		MarkdownOutputDir: config.MarkdownOutputDir,
	}
}

// RestoreConfigState restores the config package variables to a saved state.
func RestoreConfigState(state ConfigState) {
	config.OverwriteFiles = state.OverwriteFiles
	config.LibraryFile = state.LibraryFile
	config.SettingsFile = state.SettingsFile
	config.CoversDir = state.CoversDir
	config.MarkdownOutputDir = state.MarkdownOutputDir
}

// SetTestConfig points every config path into the test environment, enables
// overwrites, and restores the previous state when the test completes.
func SetTestConfig(t *testing.T, env *TestEnv) {
	t.Helper()

	state := SaveConfigState()
	viper.Reset()

	config.OverwriteFiles = true
	config.LibraryFile = env.Path("library.json")
	config.SettingsFile = env.Path("settings.json")
	config.CoversDir = env.Path("covers")
	config.MarkdownOutputDir = env.Path("markdown")

	t.Cleanup(func() {
		RestoreConfigState(state)
		viper.Reset()
	})
}

// SetViperValue sets a viper configuration value and schedules cleanup.
func SetViperValue(t *testing.T, key string, value any) {
	t.Helper()

	oldValue := viper.Get(key)
	hadValue := viper.IsSet(key)

	viper.Set(key, value)

	t.Cleanup(func() {
		if hadValue {
			viper.Set(key, oldValue)
		}
		// Note: viper doesn't have an Unset function, so we can't
		// restore the "unset" state. This is a known limitation.
	})
}

// SetupDatasetteDB configures the datasette sink for tests. It points the
// database file into the test environment and enables the sink, with
// automatic cleanup. Returns the database path.
func SetupDatasetteDB(t *testing.T, env *TestEnv) string {
	t.Helper()

	dbPath := env.Path("test.db")

	SetViperValue(t, "datasette.enabled", true)
	SetViperValue(t, "datasette.dbfile", dbPath)

	return dbPath
}
