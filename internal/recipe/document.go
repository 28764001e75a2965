package recipe

import (
	"fmt"

	"github.com/beevik/etree"
	"github.com/pkgsmith/recipegen/internal/models"
)

// Field identifies a document leaf the generators are allowed to set.
type Field string

const (
	FieldAppName              Field = "Application.Name"
	FieldAppDescription       Field = "Application.Description"
	FieldAppPublisher         Field = "Application.Publisher"
	FieldAppUserDocumentation Field = "Application.UserDocumentation"
	FieldAppIcon              Field = "Application.Icon"

	FieldPrefetchScript       Field = "Download.PrefetchScript"
	FieldDownloadURL          Field = "Download.URL"
	FieldDownloadFileName     Field = "Download.DownloadFileName"
	FieldDownloadVersionCheck Field = "Download.DownloadVersionCheck"

	FieldInstallationType     Field = "DeploymentType.InstallationType"
	FieldCacheContent         Field = "DeploymentType.CacheContent"
	FieldBranchCache          Field = "DeploymentType.BranchCache"
	FieldContentFallback      Field = "DeploymentType.ContentFallback"
	FieldOnSlowNetwork        Field = "DeploymentType.OnSlowNetwork"
	FieldInstallationBehavior Field = "DeploymentType.InstallationBehaviorType"
	FieldLogonReqType         Field = "DeploymentType.LogonReqType"
	FieldUserInteractionMode  Field = "DeploymentType.UserInteractionMode"
	FieldEstRuntimeMins       Field = "DeploymentType.EstRuntimeMins"
	FieldMaxRuntimeMins       Field = "DeploymentType.MaxRuntimeMins"
	FieldRebootBehavior       Field = "DeploymentType.RebootBehavior"
	FieldInstallProgram       Field = "DeploymentType.InstallProgram"
	FieldUninstallCmd         Field = "DeploymentType.UninstallCmd"
	FieldDetectionMethodType  Field = "DeploymentType.DetectionMethodType"
)

// fieldPaths is the closed table of document paths. Generators address
// the tree through Field keys only, never with raw path strings.
var fieldPaths = map[Field]etree.Path{
	FieldAppName:              etree.MustCompilePath("/Recipe/Application/Name"),
	FieldAppDescription:       etree.MustCompilePath("/Recipe/Application/Description"),
	FieldAppPublisher:         etree.MustCompilePath("/Recipe/Application/Publisher"),
	FieldAppUserDocumentation: etree.MustCompilePath("/Recipe/Application/UserDocumentation"),
	FieldAppIcon:              etree.MustCompilePath("/Recipe/Application/Icon"),

	FieldPrefetchScript:       etree.MustCompilePath("/Recipe/Download/PrefetchScript"),
	FieldDownloadURL:          etree.MustCompilePath("/Recipe/Download/URL"),
	FieldDownloadFileName:     etree.MustCompilePath("/Recipe/Download/DownloadFileName"),
	FieldDownloadVersionCheck: etree.MustCompilePath("/Recipe/Download/DownloadVersionCheck"),

	FieldInstallationType:     etree.MustCompilePath("/Recipe/DeploymentType/InstallationType"),
	FieldCacheContent:         etree.MustCompilePath("/Recipe/DeploymentType/CacheContent"),
	FieldBranchCache:          etree.MustCompilePath("/Recipe/DeploymentType/BranchCache"),
	FieldContentFallback:      etree.MustCompilePath("/Recipe/DeploymentType/ContentFallback"),
	FieldOnSlowNetwork:        etree.MustCompilePath("/Recipe/DeploymentType/OnSlowNetwork"),
	FieldInstallationBehavior: etree.MustCompilePath("/Recipe/DeploymentType/InstallationBehaviorType"),
	FieldLogonReqType:         etree.MustCompilePath("/Recipe/DeploymentType/LogonReqType"),
	FieldUserInteractionMode:  etree.MustCompilePath("/Recipe/DeploymentType/UserInteractionMode"),
	FieldEstRuntimeMins:       etree.MustCompilePath("/Recipe/DeploymentType/EstRuntimeMins"),
	FieldMaxRuntimeMins:       etree.MustCompilePath("/Recipe/DeploymentType/MaxRuntimeMins"),
	FieldRebootBehavior:       etree.MustCompilePath("/Recipe/DeploymentType/RebootBehavior"),
	FieldInstallProgram:       etree.MustCompilePath("/Recipe/DeploymentType/InstallProgram"),
	FieldUninstallCmd:         etree.MustCompilePath("/Recipe/DeploymentType/UninstallCmd"),
	FieldDetectionMethodType:  etree.MustCompilePath("/Recipe/DeploymentType/DetectionMethodType"),
}

// Document is one mutable recipe tree, copied from a base template for
// a single record and discarded after serialization.
type Document struct {
	doc *etree.Document
}

// SetField writes value as the leaf text of the element f maps to.
// Unknown fields and leaves missing from the template are structural
// errors.
func (d *Document) SetField(f Field, value string) error {
	p, ok := fieldPaths[f]
	if !ok {
		return &models.GenError{
			Kind: models.ErrStructural,
			Err:  fmt.Errorf("unknown recipe field %q", f),
		}
	}

	el := d.doc.FindElementPath(p)
	if el == nil {
		return &models.GenError{
			Kind: models.ErrStructural,
			Err:  fmt.Errorf("template has no element for field %q", f),
		}
	}

	el.SetText(value)
	return nil
}

// FieldValue returns the current leaf text of the element f maps to,
// or the empty string when the element is absent.
func (d *Document) FieldValue(f Field) string {
	p, ok := fieldPaths[f]
	if !ok {
		return ""
	}
	el := d.doc.FindElementPath(p)
	if el == nil {
		return ""
	}
	return el.Text()
}

// EnsureMSIFile guarantees an MSIFile element carrying the download
// file name immediately before InstallProgram. An MSIFile already in
// that position is updated in place; one found elsewhere is moved.
// Calling it twice never duplicates the element. A template without
// InstallProgram cannot anchor the insertion and fails the record.
func (d *Document) EnsureMSIFile(filename string) error {
	dt := d.doc.FindElement("/Recipe/DeploymentType")
	if dt == nil {
		return &models.GenError{
			Kind: models.ErrStructural,
			Err:  fmt.Errorf("template has no DeploymentType element"),
		}
	}

	anchor := dt.SelectElement("InstallProgram")
	if anchor == nil {
		return &models.GenError{
			Kind: models.ErrStructural,
			Err:  fmt.Errorf("template has no InstallProgram element to anchor MSIFile"),
		}
	}

	if existing := dt.SelectElement("MSIFile"); existing != nil {
		if precedesElement(dt, existing, anchor) {
			existing.SetText(filename)
			return nil
		}
		dt.RemoveChild(existing)
	}

	el := etree.NewElement("MSIFile")
	el.SetText(filename)
	dt.InsertChildAt(anchor.Index(), el)
	return nil
}

// precedesElement reports whether a is the element immediately before
// b among parent's child elements.
func precedesElement(parent, a, b *etree.Element) bool {
	children := parent.ChildElements()
	for i, el := range children {
		if el == b {
			return i > 0 && children[i-1] == a
		}
	}
	return false
}

// Bytes renders the document in the serialization format the
// deployment pipeline expects: tab indentation, CRLF line endings,
// UTF-8 with the template's XML declaration.
func (d *Document) Bytes() ([]byte, error) {
	settings := etree.NewIndentSettings()
	settings.UseTabs = true
	settings.UseCRLF = true
	d.doc.IndentWithSettings(settings)

	return d.doc.WriteToBytes()
}
