// Package script generates recipes for script-driven installers
// (EXE, Inno Setup, NSIS, Burn, WiX).
package script

import (
	"github.com/pkgsmith/recipegen/internal/generator"
	"github.com/pkgsmith/recipegen/internal/models"
	"github.com/pkgsmith/recipegen/internal/recipe"
)

const (
	// prefetchFmt resolves the current installer version and download
	// URL from the package API before download.
	prefetchFmt = `Resolve-ScriptInstaller -ApiUrl "%s"`

	// defaultSwitch is the NSIS-style silent flag used when the
	// discovery tool reports no switches at all.
	defaultSwitch = "/S"
)

// Generator implements the generator.Generator interface for the
// Script document shape
type Generator struct{}

// New creates a new Script recipe generator
func New() *Generator {
	return &Generator{}
}

// Variant returns the document shape this generator produces.
func (g *Generator) Variant() recipe.Variant {
	return recipe.VariantScript
}

// Populate applies the Script mapping: common fields plus an install
// command built from the installer file and the best available silent
// switches. Script recipes carry no uninstall command or version
// probe; the operator completes those.
func (g *Generator) Populate(doc *recipe.Document, rec models.PackageRecord) error {
	if err := generator.ApplyCommonFields(doc, rec, prefetchFmt); err != nil {
		return err
	}

	switches := rec.SilentSwitches.Or(rec.SilentWithProgressSwitches.Or(defaultSwitch))
	file := generator.DownloadFileName(rec)

	fields := []struct {
		field recipe.Field
		value string
	}{
		{recipe.FieldInstallationType, "Script"},
		{recipe.FieldDownloadVersionCheck, ""},
		{recipe.FieldInstallProgram, file + " " + switches},
		{recipe.FieldUninstallCmd, ""},
	}
	for _, f := range fields {
		if err := doc.SetField(f.field, f.value); err != nil {
			return err
		}
	}

	return nil
}
