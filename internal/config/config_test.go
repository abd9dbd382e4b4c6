package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

func TestSetOverwriteFiles(t *testing.T) {
	// Save the original value to restore after the test
	originalValue := OverwriteFiles

	testCases := []struct {
		name     string
		input    bool
		expected bool
	}{
		{
			name:     "set to true",
			input:    true,
			expected: true,
		},
		{
			name:     "set to false",
			input:    false,
			expected: false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// Set the value
			SetOverwriteFiles(tc.input)

			// Check that the global variable was updated
			assert.Equal(t, tc.expected, OverwriteFiles)
		})
	}

	// Restore the original value
	OverwriteFiles = originalValue
}

func TestInitConfig_Defaults(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	InitConfig()

	assert.Equal(t, "./library.json", LibraryFile)
	assert.Equal(t, "./settings.json", SettingsFile)
	assert.Equal(t, "./covers/", CoversDir)
	assert.Equal(t, "./markdown/", MarkdownOutputDir)
	assert.False(t, OverwriteFiles)
}

func TestInitConfig_ViperOverrides(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	viper.Set("libraryfile", "/data/books.json")
	viper.Set("overwritefiles", true)

	InitConfig()

	assert.Equal(t, "/data/books.json", LibraryFile)
	assert.True(t, OverwriteFiles)
}
