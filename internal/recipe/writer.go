package recipe

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pkgsmith/recipegen/internal/models"
	"github.com/pkgsmith/recipegen/internal/utils"
)

// Write serializes doc to <outputDir>/<name>.xml. An existing recipe
// is never overwritten; the record is skipped instead.
func Write(outputDir, name string, doc *Document) (string, error) {
	path := filepath.Join(outputDir, name+".xml")

	if _, err := os.Stat(path); err == nil {
		return "", &models.GenError{
			Kind:   models.ErrCollision,
			Record: name,
			Err:    fmt.Errorf("recipe already exists at %s", path),
		}
	} else if !os.IsNotExist(err) {
		return "", &models.GenError{Kind: models.ErrFileOp, Record: name, Err: err}
	}

	data, err := doc.Bytes()
	if err != nil {
		return "", &models.GenError{Kind: models.ErrFileOp, Record: name, Err: err}
	}

	if err := utils.WriteFile(path, data, 0644); err != nil {
		return "", &models.GenError{Kind: models.ErrFileOp, Record: name, Err: err}
	}

	return path, nil
}
