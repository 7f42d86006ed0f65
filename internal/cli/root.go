package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/primekit/primer/pkg/version"
)

var rootCmd = &cobra.Command{
	Use:   "primer",
	Short: "primer: project scaffolder with editor and AI-context enhancement",
	Long: `primer scaffolds ready-to-use projects.

It delegates base-skeleton creation to an external template generator,
then overlays editor configuration, shared build properties, VS Code
settings, and AI-assistant context documents rendered from embedded
templates. Re-running primer never clobbers a customized .editorconfig
or Directory.Build.props, but always refreshes the generated documents.`,
	Version: version.GetVersion(),
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf("primer %s\n", version.GetVersion()))
}
