// Package recipe owns the recipe document: it loads the two base
// templates, hands out a fresh mutable copy per record, applies field
// values through a fixed path table, and serializes in the exact
// format the downstream deployment pipeline parses.
package recipe

import (
	"embed"
	"fmt"
	"os"

	"github.com/beevik/etree"
	"github.com/pkgsmith/recipegen/internal/models"
)

// Variant selects one of the two recipe document shapes.
type Variant int

const (
	VariantMSI Variant = iota
	VariantScript
)

// String returns the string representation of Variant
func (v Variant) String() string {
	if v == VariantMSI {
		return "MSI"
	}
	return "Script"
}

//go:embed templates/recipe_msi.xml templates/recipe_script.xml
var defaultTemplates embed.FS

// Templates holds the two parsed base documents. The base trees are
// never mutated; NewDocument copies a fresh tree per record.
type Templates struct {
	msi    *etree.Document
	script *etree.Document
}

// LoadTemplates parses both base documents. msiPath and scriptPath
// override the embedded defaults when non-empty. Any failure here
// aborts the run before a single record is processed.
func LoadTemplates(msiPath, scriptPath string) (*Templates, error) {
	msi, err := loadTemplate(msiPath, "templates/recipe_msi.xml")
	if err != nil {
		return nil, &models.GenError{
			Kind: models.ErrStartup,
			Err:  fmt.Errorf("failed to load MSI template: %w", err),
		}
	}

	script, err := loadTemplate(scriptPath, "templates/recipe_script.xml")
	if err != nil {
		return nil, &models.GenError{
			Kind: models.ErrStartup,
			Err:  fmt.Errorf("failed to load Script template: %w", err),
		}
	}

	return &Templates{msi: msi, script: script}, nil
}

func loadTemplate(path, embedded string) (*etree.Document, error) {
	var data []byte
	var err error

	if path != "" {
		data, err = os.ReadFile(path)
	} else {
		data, err = defaultTemplates.ReadFile(embedded)
	}
	if err != nil {
		return nil, err
	}

	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, err
	}
	if doc.FindElement("/Recipe") == nil {
		return nil, fmt.Errorf("document root is not Recipe")
	}

	return doc, nil
}

// NewDocument returns a fresh mutable copy of the variant's base tree.
func (t *Templates) NewDocument(v Variant) *Document {
	base := t.script
	if v == VariantMSI {
		base = t.msi
	}
	return &Document{doc: base.Copy()}
}
