package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.trai.ch/pybundle/internal/app"
)

func (c *CLI) newStageCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stage <source-dir>",
		Short: "Assemble the installable staging tree for an application",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			appName, _ := cmd.Flags().GetString("app-name")
			entryFile, _ := cmd.Flags().GetString("entry-file")
			version, _ := cmd.Flags().GetString("app-version")
			outDir, _ := cmd.Flags().GetString("out-dir")
			zip, _ := cmd.Flags().GetBool("zip")

			root, err := c.app.Stage(cmd.Context(), app.StageOptions{
				SourceDir: args[0],
				AppName:   appName,
				EntryFile: entryFile,
				Version:   version,
				OutDir:    outDir,
				Zip:       zip,
			})
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), root)
			return nil
		},
	}
	cmd.Flags().StringP("app-name", "n", "", "Application display name (defaults to the source directory name)")
	cmd.Flags().StringP("entry-file", "e", app.DefaultEntryFile, "Entry module path relative to the source directory")
	cmd.Flags().String("app-version", app.DefaultAppVersion, "Application version recorded in the build metadata")
	cmd.Flags().StringP("out-dir", "o", "_temp", "Directory the staging root is created in")
	cmd.Flags().BoolP("zip", "z", false, "Also produce a distributable archive next to the staging root")
	return cmd
}
