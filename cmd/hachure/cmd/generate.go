package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arl/go-hachure"
	"github.com/arl/go-hachure/internal/demo"
)

var (
	generateCfgPath     string
	generateDemo        string
	generateRasterPath  string
	generateContourPath string
	generateOutPath     string
)

// generateCmd represents the generate command.
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "generate a hachure set from raster and contour input",
	Long: `Generate runs the spacing engine over a slope/aspect raster pair
and a set of filled contour bands, producing the final hachure polylines
as a GeoJSON FeatureCollection.

Pass --demo to run one of the bundled synthetic scenarios instead of
real raster input (useful for a quick smoke test of the pipeline).`,
	Run: func(cmd *cobra.Command, args []string) {
		if generateDemo != "" {
			runDemo(generateDemo)
			return
		}
		if generateRasterPath == "" || generateContourPath == "" {
			fmt.Println("no input source: pass --demo, or both --rasters and --contours")
			return
		}
		runFile(generateCfgPath, generateRasterPath, generateContourPath, generateOutPath)
	},
}

func init() {
	RootCmd.AddCommand(generateCmd)

	generateCmd.Flags().StringVar(&generateCfgPath, "config", "hachure.yml", "build settings")
	generateCmd.Flags().StringVar(&generateDemo, "demo", "", "run a bundled scenario instead of real input (flat-plate, uniform-slope, cone-peak, step-edge, ridge, bowl, all)")
	generateCmd.Flags().StringVar(&generateRasterPath, "rasters", "", "JSON file with the slope/aspect raster pair")
	generateCmd.Flags().StringVar(&generateContourPath, "contours", "", "GeoJSON FeatureCollection of filled contour polygons (ELEV_MIN property)")
	generateCmd.Flags().StringVar(&generateOutPath, "out", "hachures.geojson", "output GeoJSON FeatureCollection of hachure polylines")
}

func runFile(cfgPath, rasterPath, contourPath, outPath string) {
	cfg, err := hachure.LoadConfig(cfgPath)
	if err != nil {
		fmt.Printf("loading config %s: %v\n", cfgPath, err)
		return
	}
	rasters, err := hachure.LoadRasters(rasterPath)
	if err != nil {
		fmt.Printf("loading rasters %s: %v\n", rasterPath, err)
		return
	}
	bands, err := hachure.LoadBands(contourPath)
	if err != nil {
		fmt.Printf("loading contours %s: %v\n", contourPath, err)
		return
	}

	ctx := hachure.NewContext(true)
	res, err := hachure.Generate(ctx, cfg, rasters, bands, nil)
	if err != nil {
		fmt.Printf("generate: %v\n", err)
		return
	}
	if res.Warning != 0 {
		fmt.Printf("generate: %v\n", res.Warning)
	}

	if err := hachure.WriteHachuresGeoJSON(outPath, res.Hachures); err != nil {
		fmt.Printf("writing %s: %v\n", outPath, err)
		return
	}
	fmt.Printf("wrote %d hachures to %s\n", len(res.Hachures), outPath)
}

func runDemo(name string) {
	scenarios := demo.All()
	if name != "all" {
		var filtered []demo.Scenario
		for _, s := range scenarios {
			if s.Name == name {
				filtered = append(filtered, s)
			}
		}
		if len(filtered) == 0 {
			fmt.Printf("unknown scenario %q\n", name)
			return
		}
		scenarios = filtered
	}

	for _, s := range scenarios {
		ctx := hachure.NewContext(true)
		res, err := hachure.Generate(ctx, s.Config, s.Rasters, s.Bands, nil)
		if err != nil {
			fmt.Printf("%s: %v\n", s.Name, err)
			continue
		}
		fmt.Printf("%s: %d hachures", s.Name, len(res.Hachures))
		if res.Warning != 0 {
			fmt.Printf(" (%v)", res.Warning)
		}
		fmt.Println()
	}
}
