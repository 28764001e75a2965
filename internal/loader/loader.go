// Package loader reads package-metadata record files produced by the
// external discovery tool. A record file is a JSON array of records,
// optionally gzip- or xz-compressed.
package loader

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/pkgsmith/recipegen/internal/models"
	"github.com/sirupsen/logrus"
	"github.com/ulikunitz/xz"
)

// LoadRecords reads all records from the file at path. Compression is
// chosen by file extension, the same way the discovery tool writes it.
func LoadRecords(path string) ([]models.PackageRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &models.GenError{
			Kind: models.ErrStartup,
			Err:  fmt.Errorf("failed to open record file: %w", err),
		}
	}
	defer f.Close()

	var r io.Reader = f
	switch {
	case strings.HasSuffix(path, ".gz"):
		gr, err := gzip.NewReader(f)
		if err != nil {
			return nil, &models.GenError{
				Kind: models.ErrStartup,
				Err:  fmt.Errorf("failed to read gzip record file: %w", err),
			}
		}
		defer gr.Close()
		r = gr
	case strings.HasSuffix(path, ".xz"):
		xr, err := xz.NewReader(f)
		if err != nil {
			return nil, &models.GenError{
				Kind: models.ErrStartup,
				Err:  fmt.Errorf("failed to read xz record file: %w", err),
			}
		}
		r = xr
	}

	var records []models.PackageRecord
	if err := json.NewDecoder(r).Decode(&records); err != nil {
		return nil, &models.GenError{
			Kind: models.ErrStartup,
			Err:  fmt.Errorf("failed to parse record file: %w", err),
		}
	}

	logrus.Debugf("Loaded %d records from %s", len(records), path)
	return records, nil
}
