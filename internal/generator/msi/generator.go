// Package msi generates recipes for Windows Installer packages.
package msi

import (
	"fmt"

	"github.com/pkgsmith/recipegen/internal/generator"
	"github.com/pkgsmith/recipegen/internal/models"
	"github.com/pkgsmith/recipegen/internal/recipe"
)

const (
	// prefetchFmt resolves the current installer version and download
	// URL from the package API before download.
	prefetchFmt = `Resolve-MsiInstaller -ApiUrl "%s"`

	// versionCheck probes the ProductVersion property of the
	// downloaded MSI.
	versionCheck = `(Get-MsiProperty -Path "$DownloadedFile" -Property ProductVersion)`
)

// Generator implements the generator.Generator interface for the MSI
// document shape
type Generator struct{}

// New creates a new MSI recipe generator
func New() *Generator {
	return &Generator{}
}

// Variant returns the document shape this generator produces.
func (g *Generator) Variant() recipe.Variant {
	return recipe.VariantMSI
}

// Populate applies the MSI mapping: common fields, the msiexec
// install/uninstall command pair, the product-version probe, and the
// MSIFile element carrying the download file name.
func (g *Generator) Populate(doc *recipe.Document, rec models.PackageRecord) error {
	if err := generator.ApplyCommonFields(doc, rec, prefetchFmt); err != nil {
		return err
	}

	file := generator.DownloadFileName(rec)

	fields := []struct {
		field recipe.Field
		value string
	}{
		{recipe.FieldInstallationType, "MSI"},
		{recipe.FieldDownloadVersionCheck, versionCheck},
		{recipe.FieldInstallProgram, fmt.Sprintf("msiexec.exe /i %s /qn /norestart /l*v install.log", file)},
		{recipe.FieldUninstallCmd, fmt.Sprintf("msiexec.exe /x %s /qn /norestart /l*v uninstall.log", file)},
	}
	for _, f := range fields {
		if err := doc.SetField(f.field, f.value); err != nil {
			return err
		}
	}

	return doc.EnsureMSIFile(file)
}
