package models

import (
	"fmt"
	"strings"
)

// Unavailable is the reserved string the discovery tool emits when it
// cannot determine a field's value.
const Unavailable = "N/A"

// Optional is a metadata field that may be omitted from the record or
// explicitly reported unavailable by the discovery tool. Both states
// collapse to "not present" here, so mapping code never sees the
// sentinel string.
type Optional string

// Present reports whether the field carries a usable value.
func (o Optional) Present() bool {
	v := strings.TrimSpace(string(o))
	return v != "" && v != Unavailable
}

// Or returns the field's value when present, otherwise def.
func (o Optional) Or(def string) string {
	if o.Present() {
		return string(o)
	}
	return def
}

// PackageRecord is one package-metadata record as supplied by the
// external discovery tool.
type PackageRecord struct {
	Name                       string   `json:"name"`
	InstallerType              string   `json:"installerType"`
	Description                Optional `json:"description,omitempty"`
	Publisher                  Optional `json:"publisher,omitempty"`
	HomePage                   Optional `json:"homePage,omitempty"`
	InstallerURL               Optional `json:"installerUrl,omitempty"`
	APIUrl                     Optional `json:"apiUrl,omitempty"`
	SilentSwitches             Optional `json:"silentSwitches,omitempty"`
	SilentWithProgressSwitches Optional `json:"silentWithProgressSwitches,omitempty"`
}

// Validate checks the two mandatory fields. Every other field may be
// absent or unavailable.
func (r PackageRecord) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return &GenError{Kind: ErrValidation, Err: fmt.Errorf("record has no name")}
	}
	if strings.TrimSpace(r.InstallerType) == "" {
		return &GenError{Kind: ErrValidation, Record: r.Name, Err: fmt.Errorf("record has no installer type")}
	}
	return nil
}
