package script

import (
	"strings"
	"testing"

	"github.com/pkgsmith/recipegen/internal/models"
	"github.com/pkgsmith/recipegen/internal/recipe"
)

func populated(t *testing.T, rec models.PackageRecord) *recipe.Document {
	t.Helper()

	templates, err := recipe.LoadTemplates("", "")
	if err != nil {
		t.Fatalf("LoadTemplates failed: %v", err)
	}

	doc := templates.NewDocument(recipe.VariantScript)
	if err := New().Populate(doc, rec); err != nil {
		t.Fatalf("Populate failed: %v", err)
	}
	return doc
}

func TestVariant(t *testing.T) {
	if got := New().Variant(); got != recipe.VariantScript {
		t.Errorf("Variant() = %s, want %s", got, recipe.VariantScript)
	}
}

func TestPopulateDefaultSilentSwitch(t *testing.T) {
	doc := populated(t, models.PackageRecord{
		Name:          "Greenshot",
		InstallerType: "nullsoft",
		InstallerURL:  "https://example.com/Greenshot-INSTALLER.exe",
	})

	install := doc.FieldValue(recipe.FieldInstallProgram)
	if !strings.HasSuffix(install, " /S") {
		t.Errorf("InstallProgram = %q, want trailing %q", install, " /S")
	}
	if got := doc.FieldValue(recipe.FieldInstallationType); got != "Script" {
		t.Errorf("InstallationType = %q, want %q", got, "Script")
	}
	if got := doc.FieldValue(recipe.FieldUninstallCmd); got != "" {
		t.Errorf("UninstallCmd = %q, want empty", got)
	}
	if got := doc.FieldValue(recipe.FieldDownloadVersionCheck); got != "" {
		t.Errorf("DownloadVersionCheck = %q, want empty", got)
	}
}

func TestPopulateSwitchPriority(t *testing.T) {
	rec := models.PackageRecord{
		Name:                       "Greenshot",
		InstallerType:              "inno",
		InstallerURL:               "https://example.com/greenshot-setup.exe",
		SilentSwitches:             "/VERYSILENT /NORESTART",
		SilentWithProgressSwitches: "/SILENT",
	}

	doc := populated(t, rec)
	if got := doc.FieldValue(recipe.FieldInstallProgram); got != "greenshot-setup.exe /VERYSILENT /NORESTART" {
		t.Errorf("InstallProgram = %q, silent switches should win", got)
	}

	rec.SilentSwitches = ""
	doc = populated(t, rec)
	if got := doc.FieldValue(recipe.FieldInstallProgram); got != "greenshot-setup.exe /SILENT" {
		t.Errorf("InstallProgram = %q, progress switches should be the fallback", got)
	}
}

func TestPopulateNoMSIFileElement(t *testing.T) {
	doc := populated(t, models.PackageRecord{
		Name:          "Greenshot",
		InstallerType: "exe",
	})

	data, err := doc.Bytes()
	if err != nil {
		t.Fatalf("Bytes failed: %v", err)
	}
	if strings.Contains(string(data), "MSIFile") {
		t.Error("Script recipes must not contain an MSIFile element")
	}
}

func TestPopulatePrefetchExclusivity(t *testing.T) {
	doc := populated(t, models.PackageRecord{
		Name:          "Greenshot",
		InstallerType: "exe",
		APIUrl:        "https://api.example.com/packages/greenshot",
	})

	if got := doc.FieldValue(recipe.FieldPrefetchScript); got == "" {
		t.Error("PrefetchScript should be set when an API URL is present")
	}
	if got := doc.FieldValue(recipe.FieldDownloadURL); got != "" {
		t.Errorf("URL = %q, want empty when an API URL is present", got)
	}
}
