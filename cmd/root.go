package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/lepinkainen/humanlog"
	"github.com/spf13/viper"

	"github.com/vkorhonen/alexandria/cmd/catalog"
	"github.com/vkorhonen/alexandria/internal/config"
)

var (
	runAdd             = catalog.AddBook
	runList            = catalog.ListBooks
	runDelete          = catalog.DeleteBooks
	runTagAdd          = catalog.AddTagToBooks
	runTagRemove       = catalog.RemoveTagFromBooks
	runTags            = catalog.ListTags
	runCover           = catalog.SetCover
	runExportCSV       = catalog.ExportCSV
	runExportMarkdown  = catalog.ExportMarkdown
	runExportDatasette = catalog.ExportDatasette
	runImport          = catalog.ImportCSV
	runTheme           = catalog.SetTheme
)

// CLI represents the complete command structure for the alexandria application
type CLI struct {
	// Global flags
	Overwrite bool `help:"Overwrite existing markdown files when exporting"`

	// Datasette flags
	Datasette   bool   `help:"Enable Datasette output" default:"true"`
	DatasetteDB string `help:"Path to SQLite database file" default:"./alexandria.db"`

	Add    AddCmd    `cmd:"" help:"Add a book to the catalog"`
	List   ListCmd   `cmd:"" help:"List books, optionally searched, filtered, and sorted"`
	Delete DeleteCmd `cmd:"" help:"Delete books by key"`
	Tag    TagCmd    `cmd:"" help:"Add or remove a tag on multiple books"`
	Tags   TagsCmd   `cmd:"" help:"List every tag in the catalog"`
	Cover  CoverCmd  `cmd:"" help:"Attach a cover image to a book"`
	Export ExportCmd `cmd:"" help:"Export the catalog to CSV, markdown, or Datasette"`
	Import ImportCmd `cmd:"" help:"Import books from a CSV file"`
	Theme  ThemeCmd  `cmd:"" help:"Set the appearance mode"`
}

// AddCmd represents the add command
type AddCmd struct {
	Title  string   `short:"t" help:"Book title" required:""`
	Author string   `short:"a" help:"Book author" required:""`
	Year   string   `help:"Publication year"`
	Genre  string   `help:"Genre"`
	Series string   `help:"Series the book belongs to"`
	Notes  string   `help:"Free-form notes"`
	Tags   []string `help:"Tags to attach"`
	Cover  string   `help:"Path to a cover image to copy into the covers folder"`
}

// ListCmd represents the list command
type ListCmd struct {
	Search string `short:"s" help:"Case-insensitive keyword matched against title and author"`
	Tag    string `help:"Only show books carrying this exact tag"`
	Sort   string `help:"Sort criterion (title, author, year, genre, each with optional -desc suffix)"`
}

// DeleteCmd represents the delete command
type DeleteCmd struct {
	Keys []string `arg:"" help:"Keys of the books to delete"`
}

// TagCmd represents the tag command and its subcommands
type TagCmd struct {
	Add    TagAddCmd    `cmd:"" help:"Add a tag to the selected books"`
	Remove TagRemoveCmd `cmd:"" help:"Remove a tag from the selected books"`
}

// TagAddCmd adds a tag to books picked by key or interactively
type TagAddCmd struct {
	Tag  string   `arg:"" help:"Tag to add"`
	Keys []string `short:"k" help:"Keys of the books to tag (interactive picker when omitted)"`
}

// TagRemoveCmd removes a tag from books picked by key or interactively
type TagRemoveCmd struct {
	Tag  string   `arg:"" help:"Tag to remove"`
	Keys []string `short:"k" help:"Keys of the books to untag (interactive picker when omitted)"`
}

// TagsCmd represents the tags command
type TagsCmd struct{}

// CoverCmd represents the cover command
type CoverCmd struct {
	Key    string `arg:"" help:"Key of the book"`
	Source string `arg:"" help:"Path to the source image"`
}

// ExportCmd represents the export command and its subcommands
type ExportCmd struct {
	CSV       ExportCSVCmd       `cmd:"" name:"csv" help:"Export the catalog to a CSV file"`
	Markdown  ExportMarkdownCmd  `cmd:"" help:"Export one markdown note per book"`
	Datasette ExportDatasetteCmd `cmd:"" help:"Export the catalog to a local SQLite database"`
}

// ExportCSVCmd represents the export csv command
type ExportCSVCmd struct {
	Output string `short:"o" help:"Destination CSV file" default:"./books.csv"`
}

// ExportMarkdownCmd represents the export markdown command
type ExportMarkdownCmd struct {
	Output string `short:"o" help:"Output directory for markdown files (defaults under markdown output directory)"`
}

// ExportDatasetteCmd represents the export datasette command
type ExportDatasetteCmd struct{}

// ImportCmd represents the import command
type ImportCmd struct {
	Input string `short:"f" help:"Path to the CSV file to import"`
}

// ThemeCmd represents the theme command
type ThemeCmd struct {
	Mode string `arg:"" enum:"dark,light" help:"Appearance mode (dark or light)"`
}

// Execute runs the Kong-based CLI
func Execute() {
	initLogging()
	initConfig()

	var cli CLI

	ctx := kong.Parse(&cli,
		kong.Name("alexandria"),
		kong.Description("A personal book catalog with search, tags, covers, and exports."),
		kong.UsageOnError(),
	)

	updateGlobalConfig(&cli)

	err := ctx.Run()
	if err != nil {
		slog.Error("Command failed", "error", err)
		os.Exit(1)
	}
}

func initConfig() {
	viper.SetDefault("libraryfile", "./library.json")
	viper.SetDefault("settingsfile", "./settings.json")
	viper.SetDefault("coversdir", "./covers/")
	viper.SetDefault("markdownoutputdir", "./markdown/")
	viper.SetDefault("overwritefiles", false)

	// Datasette defaults
	viper.SetDefault("datasette.enabled", true)
	viper.SetDefault("datasette.dbfile", "./alexandria.db")

	// Enable environment variable support
	viper.AutomaticEnv()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			slog.Info("Config file not found, writing default config file...")
			if err := viper.SafeWriteConfig(); err != nil {
				slog.Error("Error writing config file", "error", err)
			}
			os.Exit(0)
		} else {
			slog.Error("Fatal error config file", "error", err)
			os.Exit(1)
		}
	}

	// Initialize global config
	config.InitConfig()
}

func updateGlobalConfig(cli *CLI) {
	// Update config based on CLI flags
	config.SetOverwriteFiles(cli.Overwrite)

	// Update datasette config
	viper.Set("datasette.enabled", cli.Datasette)
	viper.Set("datasette.dbfile", cli.DatasetteDB)
}

// Run methods for each command

func (a *AddCmd) Run() error {
	return runAdd(catalog.AddOptions{
		Title:  a.Title,
		Author: a.Author,
		Year:   a.Year,
		Genre:  a.Genre,
		Series: a.Series,
		Notes:  a.Notes,
		Tags:   a.Tags,
		Cover:  a.Cover,
	})
}

func (l *ListCmd) Run() error {
	return runList(os.Stdout, catalog.ListOptions{
		Search: l.Search,
		Tag:    l.Tag,
		Sort:   l.Sort,
	})
}

func (d *DeleteCmd) Run() error {
	return runDelete(d.Keys)
}

func (t *TagAddCmd) Run() error {
	return runTagAdd(t.Tag, t.Keys)
}

func (t *TagRemoveCmd) Run() error {
	return runTagRemove(t.Tag, t.Keys)
}

func (t *TagsCmd) Run() error {
	return runTags(os.Stdout)
}

func (c *CoverCmd) Run() error {
	return runCover(c.Key, c.Source)
}

func (e *ExportCSVCmd) Run() error {
	return runExportCSV(e.Output)
}

func (e *ExportMarkdownCmd) Run() error {
	return runExportMarkdown(e.Output)
}

func (e *ExportDatasetteCmd) Run() error {
	return runExportDatasette()
}

func (i *ImportCmd) Run() error {
	// Read from config if value not provided via flag
	input := i.Input
	if input == "" {
		input = viper.GetString("import.csvfile")
	}

	// Check if required value is still missing
	if input == "" {
		return fmt.Errorf("input CSV file is required (provide via --input flag or import.csvfile in config)")
	}

	return runImport(input)
}

func (t *ThemeCmd) Run() error {
	return runTheme(t.Mode)
}

func initLogging() {
	level := slog.LevelInfo
	switch strings.ToLower(os.Getenv("ALEXANDRIA_LOG_LEVEL")) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	// Create a human-readable handler for logging
	handler := humanlog.NewHandler(os.Stdout, &humanlog.Options{
		Level: level,
	})

	// Set the default logger
	slog.SetDefault(slog.New(handler))
}
