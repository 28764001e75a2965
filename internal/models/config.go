package models

// GeneratorConfig contains configuration for recipe generation
type GeneratorConfig struct {
	// Input/Output
	InputPath string
	OutputDir string

	// Template overrides; the embedded templates are used when empty
	MSITemplatePath    string
	ScriptTemplatePath string

	// Signing
	GPGKeyPath    string
	GPGPassphrase string

	// Checksum manifest over the recipes written in this run
	Manifest bool
}
