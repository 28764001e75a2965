package cli

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "recipegen",
		Short: "Generate XML deployment recipes from package-metadata records",
		Long: `Recipegen reads package-metadata records produced by a discovery
tool and scaffolds one deployment recipe per record, ready for the
deployment pipeline to package and distribute.

Supported installer technologies:
  - Windows Installer (msi)
  - Script-driven installers (exe, inno, nullsoft, burn, wix)`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Setup logging
			verbose, _ := cmd.Flags().GetBool("verbose")
			if verbose {
				logrus.SetLevel(logrus.DebugLevel)
			} else {
				logrus.SetLevel(logrus.InfoLevel)
			}
		},
	}

	// Global flags
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")

	// Add subcommands
	rootCmd.AddCommand(NewGenerateCmd())

	return rootCmd
}
