package commands

import (
	"github.com/spf13/cobra"

	"github.com/cleared-dev/ledgerform/internal/buildinfo"
	"github.com/cleared-dev/ledgerform/internal/config"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	var configPath string

	rootCmd := &cobra.Command{
		Use:     "ledgerform",
		Short:   "Bookkeeping entry form with CSV export",
		Version: buildinfo.String(),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().StringVar(&configPath, "config", config.FileName, "path to "+config.FileName)

	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newTemplateCommand(&configPath))
	rootCmd.AddCommand(newExportCommand(&configPath))
	rootCmd.AddCommand(newServeCommand(&configPath))

	return rootCmd
}
