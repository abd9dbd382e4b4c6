package catalog

import (
	"image"
	"image/png"
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vkorhonen/alexandria/internal/config"
	"github.com/vkorhonen/alexandria/internal/library"
	"github.com/vkorhonen/alexandria/internal/testutil"
)

func seedCollection(t *testing.T, books []library.Book) {
	t.Helper()
	require.NoError(t, library.SaveCollection(config.LibraryFile, books))
}

func loadCollection() []library.Book {
	return library.LoadCollection(config.LibraryFile)
}

func sampleBooks() []library.Book {
	return []library.Book{
		{Key: "k1", Title: "Dune", Author: "Frank Herbert", Year: "1965", Genre: "Science Fiction", Tags: []string{"scifi", "classic"}},
		{Key: "k2", Title: "Hyperion", Author: "Dan Simmons", Year: "1989", Genre: "Science Fiction", Tags: []string{"scifi"}},
		{Key: "k3", Title: "The Hobbit", Author: "J.R.R. Tolkien", Year: "1937", Genre: "Fantasy"},
	}
}

func writeTestImage(t *testing.T, path string) {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	file, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, png.Encode(file, img))
	require.NoError(t, file.Close())
}

func setupEnv(t *testing.T) *testutil.TestEnv {
	t.Helper()

	env := testutil.NewTestEnv(t)
	testutil.SetTestConfig(t, env)
	return env
}
