package loader

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/pkgsmith/recipegen/internal/models"
	"github.com/ulikunitz/xz"
)

var sampleRecords = []models.PackageRecord{
	{Name: "7-Zip", InstallerType: "msi", InstallerURL: "https://www.7-zip.org/a/7z2301-x64.msi"},
	{Name: "Greenshot", InstallerType: "nullsoft", Description: models.Unavailable},
}

func assertRecords(t *testing.T, records []models.PackageRecord) {
	t.Helper()
	if len(records) != len(sampleRecords) {
		t.Fatalf("loaded %d records, want %d", len(records), len(sampleRecords))
	}
	if records[0].Name != "7-Zip" || records[1].InstallerType != "nullsoft" {
		t.Errorf("records decoded incorrectly: %+v", records)
	}
	if records[1].Description.Present() {
		t.Error("sentinel description should not be present")
	}
}

func TestLoadRecordsJSON(t *testing.T) {
	data, err := json.Marshal(sampleRecords)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	path := filepath.Join(t.TempDir(), "records.json")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("failed to write records: %v", err)
	}

	records, err := LoadRecords(path)
	if err != nil {
		t.Fatalf("LoadRecords failed: %v", err)
	}
	assertRecords(t, records)
}

func TestLoadRecordsGzip(t *testing.T) {
	data, err := json.Marshal(sampleRecords)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	path := filepath.Join(t.TempDir(), "records.json.gz")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("failed to create file: %v", err)
	}
	w := gzip.NewWriter(f)
	if _, err := w.Write(data); err != nil {
		t.Fatalf("gzip write failed: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("gzip close failed: %v", err)
	}
	f.Close()

	records, err := LoadRecords(path)
	if err != nil {
		t.Fatalf("LoadRecords failed: %v", err)
	}
	assertRecords(t, records)
}

func TestLoadRecordsXz(t *testing.T) {
	data, err := json.Marshal(sampleRecords)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	path := filepath.Join(t.TempDir(), "records.json.xz")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("failed to create file: %v", err)
	}
	w, err := xz.NewWriter(f)
	if err != nil {
		t.Fatalf("xz writer failed: %v", err)
	}
	if _, err := w.Write(data); err != nil {
		t.Fatalf("xz write failed: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("xz close failed: %v", err)
	}
	f.Close()

	records, err := LoadRecords(path)
	if err != nil {
		t.Fatalf("LoadRecords failed: %v", err)
	}
	assertRecords(t, records)
}

func TestLoadRecordsMissingFile(t *testing.T) {
	_, err := LoadRecords(filepath.Join(t.TempDir(), "missing.json"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}

	var genErr *models.GenError
	if !errors.As(err, &genErr) || genErr.Kind != models.ErrStartup {
		t.Errorf("expected Startup error, got %v", err)
	}
}

func TestLoadRecordsMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "records.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatalf("failed to write records: %v", err)
	}

	_, err := LoadRecords(path)
	if err == nil {
		t.Fatal("expected error for malformed input")
	}
}
