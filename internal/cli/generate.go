package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pkgsmith/recipegen/internal/generator"
	"github.com/pkgsmith/recipegen/internal/generator/msi"
	"github.com/pkgsmith/recipegen/internal/generator/script"
	"github.com/pkgsmith/recipegen/internal/loader"
	"github.com/pkgsmith/recipegen/internal/models"
	"github.com/pkgsmith/recipegen/internal/recipe"
	"github.com/pkgsmith/recipegen/internal/signer"
	"github.com/pkgsmith/recipegen/internal/utils"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// NewGenerateCmd creates the generate command
func NewGenerateCmd() *cobra.Command {
	var config models.GeneratorConfig

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate deployment recipes from a record file",
		Long: `Reads package-metadata records from a JSON file (optionally gzip-
or xz-compressed) and writes one XML recipe per record into the
output directory, selecting the MSI or Script document template
based on the installer technology.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Validate configuration
			if err := validateConfig(&config); err != nil {
				return err
			}

			logrus.Info("Starting recipe generation...")
			logrus.Debugf("Configuration: %+v", config)

			// Run generation
			return runGeneration(&config)
		},
	}

	// Input/Output flags
	cmd.Flags().StringVarP(&config.InputPath, "input", "i", "", "Record file produced by the discovery tool (.json, .json.gz, .json.xz)")
	cmd.Flags().StringVarP(&config.OutputDir, "output-dir", "o", "./Recipes", "Directory recipes are written to")

	// Template override flags
	cmd.Flags().StringVar(&config.MSITemplatePath, "msi-template", "", "Override the embedded MSI recipe template")
	cmd.Flags().StringVar(&config.ScriptTemplatePath, "script-template", "", "Override the embedded Script recipe template")

	// GPG signing flags
	cmd.Flags().StringVarP(&config.GPGKeyPath, "gpg-key", "k", "", "Path to GPG private key for recipe signatures")
	cmd.Flags().StringVarP(&config.GPGPassphrase, "gpg-passphrase", "p", "", "GPG key passphrase")

	// Manifest flag
	cmd.Flags().BoolVar(&config.Manifest, "manifest", false, "Write a SHA256SUMS manifest over the recipes written in this run")

	return cmd
}

func validateConfig(config *models.GeneratorConfig) error {
	if config.InputPath == "" {
		return &models.GenError{
			Kind: models.ErrStartup,
			Err:  fmt.Errorf("input is required"),
		}
	}

	if config.OutputDir == "" {
		return &models.GenError{
			Kind: models.ErrStartup,
			Err:  fmt.Errorf("output-dir is required"),
		}
	}

	return nil
}

func runGeneration(config *models.GeneratorConfig) error {
	// Step 1: Both templates must load before any record is touched.
	templates, err := recipe.LoadTemplates(config.MSITemplatePath, config.ScriptTemplatePath)
	if err != nil {
		return err
	}

	// Step 2: Initialize signer
	var gpgSigner signer.Signer
	if config.GPGKeyPath != "" {
		gpgSigner, err = signer.NewGPGSigner(config.GPGKeyPath, config.GPGPassphrase)
		if err != nil {
			return &models.GenError{
				Kind: models.ErrStartup,
				Err:  fmt.Errorf("failed to initialize GPG signer: %w", err),
			}
		}
		logrus.Info("GPG signer initialized")
	}

	// Step 3: Load records
	logrus.Infof("Reading records from: %s", config.InputPath)
	records, err := loader.LoadRecords(config.InputPath)
	if err != nil {
		return err
	}

	if len(records) == 0 {
		logrus.Warn("No records found in input file")
		return nil
	}

	logrus.Infof("Loaded %d records", len(records))

	if err := utils.EnsureDir(config.OutputDir); err != nil {
		return &models.GenError{
			Kind: models.ErrStartup,
			Err:  fmt.Errorf("failed to create output directory: %w", err),
		}
	}

	generators := map[recipe.Variant]generator.Generator{
		recipe.VariantMSI:    msi.New(),
		recipe.VariantScript: script.New(),
	}

	// Step 4: Process each record; one bad record never halts the rest.
	processed := 0
	var written []string

	for _, rec := range records {
		path, err := processRecord(config, templates, generators, gpgSigner, rec)
		if err != nil {
			logRecordError(rec, err)
			continue
		}

		logrus.Infof("Generated recipe for %s (%s)", rec.Name, filepath.Base(path))
		processed++
		written = append(written, path)
	}

	if config.Manifest && len(written) > 0 {
		if err := writeManifest(config.OutputDir, written); err != nil {
			logrus.Errorf("Failed to write checksum manifest: %v", err)
		}
	}

	logrus.Infof("Recipe generation completed: %d of %d records processed", processed, len(records))
	logrus.Infof("Output directory: %s", config.OutputDir)

	return nil
}

// processRecord runs one record through validation, variant selection,
// field mapping, and the writer. All failures come back as GenErrors
// for the batch loop to classify.
func processRecord(config *models.GeneratorConfig, templates *recipe.Templates,
	generators map[recipe.Variant]generator.Generator, gpgSigner signer.Signer,
	rec models.PackageRecord) (string, error) {

	if err := rec.Validate(); err != nil {
		return "", err
	}

	variant, err := generator.SelectVariant(rec.InstallerType)
	if err != nil {
		return "", err
	}

	gen := generators[variant]
	logrus.Debugf("Record %s classified as %s", rec.Name, gen.Variant())

	doc := templates.NewDocument(variant)
	if err := gen.Populate(doc, rec); err != nil {
		return "", err
	}

	path, err := recipe.Write(config.OutputDir, utils.Sanitize(rec.Name), doc)
	if err != nil {
		return "", err
	}

	if gpgSigner != nil {
		if err := signRecipe(gpgSigner, path); err != nil {
			return "", err
		}
	}

	return path, nil
}

// logRecordError classifies a per-record failure: expected skips are
// warnings, everything else is an error. Neither stops the batch.
func logRecordError(rec models.PackageRecord, err error) {
	name := rec.Name
	if strings.TrimSpace(name) == "" {
		name = "(unnamed record)"
	}

	var genErr *models.GenError
	if errors.As(err, &genErr) && genErr.Kind.Skippable() {
		logrus.Warnf("Skipping %s: %v", name, err)
		return
	}

	logrus.Errorf("Failed to generate recipe for %s: %v", name, err)
}

func signRecipe(s signer.Signer, recipePath string) error {
	data, err := os.ReadFile(recipePath)
	if err != nil {
		return &models.GenError{Kind: models.ErrFileOp, Err: err}
	}

	sig, err := s.SignDetached(data)
	if err != nil {
		return &models.GenError{
			Kind: models.ErrFileOp,
			Err:  fmt.Errorf("failed to sign recipe: %w", err),
		}
	}

	return utils.WriteFile(recipePath+".asc", sig, 0644)
}

// writeManifest emits a sha256sum-compatible listing of the recipes
// written in this run.
func writeManifest(outputDir string, paths []string) error {
	sort.Strings(paths)

	var b strings.Builder
	for _, p := range paths {
		sum, err := utils.SHA256File(p)
		if err != nil {
			return err
		}
		fmt.Fprintf(&b, "%s  %s\n", sum, filepath.Base(p))
	}

	return utils.WriteFile(filepath.Join(outputDir, "SHA256SUMS"), []byte(b.String()), 0644)
}
