// Package covers manages the folder of copied cover images referenced by
// collection records.
package covers

import (
	"log/slog"
	"path/filepath"

	"github.com/disintegration/imaging"

	"github.com/vkorhonen/alexandria/internal/errors"
	"github.com/vkorhonen/alexandria/internal/fileutil"
)

// Copy copies an image file into the managed cover folder under a
// collision-safe name and returns the relative reference to store on the
// record (e.g. "covers/dune.jpg"). The source is decoded first so a
// non-image file is rejected before anything is written. Existing managed
// files are never overwritten.
func Copy(sourcePath, coversDir string) (string, error) {
	if _, err := imaging.Open(sourcePath); err != nil {
		return "", errors.NewCoverSourceError(sourcePath, err.Error())
	}

	filename := fileutil.SanitizeFilename(filepath.Base(sourcePath))
	destPath := fileutil.UniquePath(coversDir, filename)

	if err := fileutil.CopyFile(sourcePath, destPath); err != nil {
		return "", errors.NewPersistError("copy cover", destPath, err)
	}

	relative := filepath.ToSlash(filepath.Join(filepath.Base(coversDir), filepath.Base(destPath)))
	slog.Info("Copied cover", "source", sourcePath, "cover", relative)
	return relative, nil
}
