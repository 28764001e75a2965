// Package generator maps package-metadata records onto recipe
// documents. Each installer variant has its own generator; the
// selector collapses the raw installer-type string into one of the
// two document shapes, since downstream handling only differs along
// that line.
package generator

import (
	"fmt"
	"net/url"
	"path"
	"strings"

	"github.com/pkgsmith/recipegen/internal/models"
	"github.com/pkgsmith/recipegen/internal/recipe"
	"github.com/pkgsmith/recipegen/internal/utils"
)

// Generator interface for recipe generators
type Generator interface {
	// Populate applies all field values for the record to doc.
	Populate(doc *recipe.Document, rec models.PackageRecord) error

	// Variant returns the document shape this generator produces.
	Variant() recipe.Variant
}

// scriptTypes is the closed set of installer technologies that share
// the Script document shape.
var scriptTypes = map[string]bool{
	"exe":      true,
	"inno":     true,
	"nullsoft": true,
	"burn":     true,
	"wix":      true,
}

// SelectVariant classifies a raw installer-type string into one of
// the two document variants.
func SelectVariant(installerType string) (recipe.Variant, error) {
	t := strings.ToLower(strings.TrimSpace(installerType))
	switch {
	case t == "msi":
		return recipe.VariantMSI, nil
	case scriptTypes[t]:
		return recipe.VariantScript, nil
	default:
		return 0, &models.GenError{
			Kind: models.ErrUnsupportedType,
			Err:  fmt.Errorf("unsupported installer type %q", installerType),
		}
	}
}

// DownloadFileName derives the local installer file name: the basename
// of the installer URL's path when one is available, otherwise the
// sanitized record name with the installer type as extension.
func DownloadFileName(rec models.PackageRecord) string {
	if rec.InstallerURL.Present() {
		raw := rec.InstallerURL.Or("")
		if u, err := url.Parse(strings.TrimSpace(raw)); err == nil && u.Path != "" {
			return path.Base(u.Path)
		}
		return path.Base(raw)
	}
	ext := strings.ToLower(strings.TrimSpace(rec.InstallerType))
	return utils.Sanitize(rec.Name) + "." + ext
}

type fieldValue struct {
	field recipe.Field
	value string
}

// deploymentDefaults are identical for every generated recipe. The
// detection method itself stays blank for the operator to complete.
var deploymentDefaults = []fieldValue{
	{recipe.FieldCacheContent, "false"},
	{recipe.FieldBranchCache, "true"},
	{recipe.FieldContentFallback, "true"},
	{recipe.FieldOnSlowNetwork, "Download"},
	{recipe.FieldInstallationBehavior, "InstallForSystem"},
	{recipe.FieldLogonReqType, "WhetherOrNotUserLoggedOn"},
	{recipe.FieldUserInteractionMode, "Hidden"},
	{recipe.FieldEstRuntimeMins, "15"},
	{recipe.FieldMaxRuntimeMins, "30"},
	{recipe.FieldRebootBehavior, "BasedOnExitCode"},
	{recipe.FieldDetectionMethodType, "Custom"},
}

// ApplyCommonFields writes the variant-independent mapping: the
// application block, the download block's mutually exclusive
// prefetch/URL logic, and the fixed deployment defaults. prefetchFmt
// is the variant's version-resolution expression, parameterized by
// the record's API URL.
func ApplyCommonFields(doc *recipe.Document, rec models.PackageRecord, prefetchFmt string) error {
	sets := []fieldValue{
		{recipe.FieldAppName, rec.Name},
		{recipe.FieldAppDescription, rec.Description.Or(rec.Name)},
		{recipe.FieldAppPublisher, rec.Publisher.Or("Unknown")},
		{recipe.FieldAppUserDocumentation, rec.HomePage.Or("")},
		{recipe.FieldAppIcon, utils.Sanitize(rec.Name) + ".png"},
		{recipe.FieldDownloadFileName, DownloadFileName(rec)},
	}

	if rec.APIUrl.Present() {
		sets = append(sets,
			fieldValue{recipe.FieldPrefetchScript, fmt.Sprintf(prefetchFmt, rec.APIUrl.Or(""))},
			fieldValue{recipe.FieldDownloadURL, ""},
		)
	} else {
		sets = append(sets,
			fieldValue{recipe.FieldPrefetchScript, ""},
			fieldValue{recipe.FieldDownloadURL, rec.InstallerURL.Or("")},
		)
	}

	sets = append(sets, deploymentDefaults...)

	for _, s := range sets {
		if err := doc.SetField(s.field, s.value); err != nil {
			return err
		}
	}
	return nil
}
