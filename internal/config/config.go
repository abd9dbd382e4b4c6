package config

import (
	"github.com/spf13/viper"
)

// Global configuration variables
var (
	// OverwriteFiles controls whether existing export files should be overwritten
	OverwriteFiles bool
	// LibraryFile is the path to the JSON collection file
	LibraryFile string
	// SettingsFile is the path to the JSON settings file
	SettingsFile string
	// CoversDir is the managed cover image folder
	CoversDir string
	// MarkdownOutputDir is the base directory for markdown export
	MarkdownOutputDir string
)

// InitConfig initializes the global configuration
func InitConfig() {
	// Set default values
	viper.SetDefault("libraryfile", "./library.json")
	viper.SetDefault("settingsfile", "./settings.json")
	viper.SetDefault("coversdir", "./covers/")
	viper.SetDefault("markdownoutputdir", "./markdown/")
	viper.SetDefault("overwritefiles", false)

	// Get values from viper
	OverwriteFiles = viper.GetBool("overwritefiles")
	LibraryFile = viper.GetString("libraryfile")
	SettingsFile = viper.GetString("settingsfile")
	CoversDir = viper.GetString("coversdir")
	MarkdownOutputDir = viper.GetString("markdownoutputdir")
}

// SetOverwriteFiles sets the OverwriteFiles flag
func SetOverwriteFiles(overwrite bool) {
	OverwriteFiles = overwrite
}
