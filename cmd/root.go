package cmd

import "github.com/spf13/cobra"

func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "assetfields",
		Short:         "Discover AtomicAssets templates and assets by immutable data fields",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	cmd.AddCommand(apiCmd())
	cmd.AddCommand(templatesCmd())
	cmd.AddCommand(schemasCmd())
	cmd.AddCommand(assetsCmd())
	cmd.AddCommand(filterCmd())
	cmd.AddCommand(versionCmd())

	return cmd
}
