package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// RootCmd represents the base command when called without any subcommands.
var RootCmd = &cobra.Command{
	Use:   "hachure",
	Short: "build vector hachure maps from slope/aspect rasters",
	Long: `hachure builds cartographic hachure maps from a DEM-derived
slope/aspect raster pair and filled contour bands:
	- generate hachure lines, walking contours bottom-up,
	- tweak build settings (YAML files),
	- run the bundled synthetic demo scenarios.`,
}

// Execute adds all child commands to the root command and executes it.
// Called by main.main; only needs to run once.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
