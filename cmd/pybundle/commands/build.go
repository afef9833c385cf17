package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/pybundle/internal/app"
)

func (c *CLI) newBuildCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build <source-dir>",
		Short: "Stage an application and compile it into an installer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			appName, _ := cmd.Flags().GetString("app-name")
			entryFile, _ := cmd.Flags().GetString("entry-file")
			version, _ := cmd.Flags().GetString("app-version")
			scriptPath, _ := cmd.Flags().GetString("script")
			outputName, _ := cmd.Flags().GetString("output-name")
			compilerPath, _ := cmd.Flags().GetString("compiler")

			return c.app.Build(cmd.Context(), app.BuildOptions{
				SourceDir:    args[0],
				AppName:      appName,
				EntryFile:    entryFile,
				Version:      version,
				ScriptPath:   scriptPath,
				OutputName:   outputName,
				CompilerPath: compilerPath,
			})
		},
	}
	cmd.Flags().StringP("app-name", "n", "", "Application display name (defaults to the source directory name)")
	cmd.Flags().StringP("entry-file", "e", app.DefaultEntryFile, "Entry module path relative to the source directory")
	cmd.Flags().String("app-version", app.DefaultAppVersion, "Application version recorded in the build metadata")
	cmd.Flags().StringP("script", "s", "installer.iss", "Installer compiler script to compile")
	cmd.Flags().String("output-name", "", "Base name of the produced installer (defaults to <app>_Setup)")
	cmd.Flags().String("compiler", "", "Path to the installer compiler (overrides discovery)")
	return cmd
}
