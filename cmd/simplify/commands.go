package main

import (
	"fmt"
	"image"
	"os"
	"path/filepath"

	"github.com/fogleman/gg"
	"github.com/osuushi/simplify"
	"github.com/osuushi/simplify/internal"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

const Version = "0.1.0"

// State shared by the commands of one invocation.
type app struct {
	log        *logrus.Logger
	configPath string
	verbose    bool
	// Bound to the flags. Only flags that were actually given are merged into
	// cfg, so the config file isn't overridden by flag defaults.
	flagCfg Config
	cfg     Config
}

func newRootCommand(log *logrus.Logger) *cobra.Command {
	a := &app{log: log, flagCfg: DefaultConfig()}

	root := &cobra.Command{
		Use:   "simplify",
		Short: "Simplify polygons and trace label rasters.",
		Long: `simplify removes polygon points cheapest first (Visvalingam's effective
area) until the next point would move the outline by more than --threshold.
It can also trace a raster of integer labels into one outline per label.

Defaults can be given in a TOML file with --config, using the keys threshold,
connectivity, scale, min_label and max_label. Flags override the file.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}
	root.PersistentFlags().StringVar(&a.configPath, "config", "", "TOML file with default settings")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "log every removed point")

	root.AddCommand(a.polygonCommand(), a.traceCommand(), versionCommand())
	return root
}

func (a *app) setup(cmd *cobra.Command, args []string) error {
	if a.verbose {
		a.log.SetLevel(logrus.DebugLevel)
	}
	cfg, err := LoadConfig(a.configPath)
	if err != nil {
		return err
	}
	cfg.mergeFlags(cmd.Flags(), a.flagCfg)
	a.cfg = cfg

	a.log.WithFields(logrus.Fields{
		"threshold":    cfg.Threshold,
		"connectivity": cfg.Connectivity,
		"scale":        cfg.Scale,
		"min_label":    cfg.MinLabel,
		"max_label":    cfg.MaxLabel,
	}).Debug("configuration")
	return nil
}

func versionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "simplify v%s\n", Version)
			return err
		},
	}
}

func (a *app) polygonCommand() *cobra.Command {
	var svgPath, pngPath string
	var show bool

	cmd := &cobra.Command{
		Use:   "polygon",
		Short: "Simplify polygons",
		Long: `polygon reads polygons from stdin (or --svg), simplifies each one and prints
the survivors in the same format.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			polygons, err := a.readPolygonInput(cmd, svgPath)
			if err != nil {
				return err
			}

			simplifier := simplify.Simplifier{AltitudeThreshold: a.cfg.Threshold, Log: a.log}
			result := make(simplify.PolygonList, len(polygons))
			for i, poly := range polygons {
				result[i] = poly.Copy()
				result[i].Points = simplifier.Run(result[i].Points)
				a.log.WithFields(logrus.Fields{
					"polygon": i,
					"before":  len(poly.Points),
					"after":   len(result[i].Points),
				}).Info("simplified polygon")
			}

			if err := writePolygons(cmd.OutOrStdout(), result); err != nil {
				return errors.Wrap(err, "writing polygons")
			}
			return a.render(func() image.Image {
				return internal.DrawPolygons(result, a.cfg.Scale)
			}, pngPath, show)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&svgPath, "svg", "", "read <polygon> elements from this SVG file instead of stdin")
	flags.Float64Var(&a.flagCfg.Threshold, "threshold", a.flagCfg.Threshold, "largest altitude a removed point may have")
	flags.Float64Var(&a.flagCfg.Scale, "scale", a.flagCfg.Scale, "pixels per unit when rendering")
	flags.StringVar(&pngPath, "png", "", "render the result to this PNG file")
	flags.BoolVar(&show, "imgcat", false, "show the rendering inline in the terminal (iTerm)")
	return cmd
}

func (a *app) readPolygonInput(cmd *cobra.Command, svgPath string) (simplify.PolygonList, error) {
	if svgPath == "" {
		return readPolygons(cmd.InOrStdin())
	}
	f, err := os.Open(svgPath)
	if err != nil {
		return nil, errors.Wrap(err, "opening svg")
	}
	defer f.Close()
	return simplify.ReadSVGPolygons(f)
}

func (a *app) traceCommand() *cobra.Command {
	var pngPath string
	var show, binary bool

	cmd := &cobra.Command{
		Use:   "trace",
		Short: "Trace a label raster into polygons",
		Long: `trace reads a raster of integer labels from stdin and prints one ring per
block, each headed by a comment naming its label and whether it is an outer
boundary or a hole. With --binary, the input is a mask whose connected
components are labeled first.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			raster, err := readRaster(cmd.InOrStdin())
			if err != nil {
				return err
			}
			connectivity := simplify.Connectivity(a.cfg.Connectivity)

			if binary {
				labels, count, err := simplify.Label(raster, connectivity)
				if err != nil {
					return errors.Wrap(err, "labeling mask")
				}
				a.log.WithField("components", count).Info("labeled mask")
				raster = labels
			}

			contours, err := simplify.TraceContours(raster, simplify.TraceOptions{
				Connectivity:      connectivity,
				MinLabel:          a.cfg.MinLabel,
				MaxLabel:          a.cfg.MaxLabel,
				SimplifyThreshold: a.cfg.Threshold,
			})
			if err != nil {
				return errors.Wrap(err, "tracing")
			}
			for _, contour := range contours {
				a.log.WithFields(logrus.Fields{
					"label": contour.Label,
					"rings": len(contour.Rings),
					"area":  contour.Area(),
				}).Debug(contour.String())
			}

			if err := writeContours(cmd.OutOrStdout(), contours); err != nil {
				return errors.Wrap(err, "writing contours")
			}
			return a.render(func() image.Image {
				return internal.DrawContours(contours, a.cfg.Scale)
			}, pngPath, show)
		},
	}

	flags := cmd.Flags()
	flags.IntVar(&a.flagCfg.Connectivity, "connectivity", a.flagCfg.Connectivity, "pixel connectivity, 4 or 8")
	flags.IntVar(&a.flagCfg.MinLabel, "min-label", a.flagCfg.MinLabel, "smallest label to trace")
	flags.IntVar(&a.flagCfg.MaxLabel, "max-label", a.flagCfg.MaxLabel, "largest label to trace, 0 for no limit")
	flags.Float64Var(&a.flagCfg.Threshold, "threshold", a.flagCfg.Threshold, "simplify traced rings with this altitude threshold, 0 to keep every corner")
	flags.Float64Var(&a.flagCfg.Scale, "scale", a.flagCfg.Scale, "pixels per raster cell when rendering")
	flags.BoolVar(&binary, "binary", false, "treat the input as a mask and label its components first")
	flags.StringVar(&pngPath, "png", "", "render the contours to this PNG file")
	flags.BoolVar(&show, "imgcat", false, "show the rendering inline in the terminal (iTerm)")
	return cmd
}

// Write the rendering to pngPath, and show it inline if asked. Showing without
// a path uses a temporary file.
func (a *app) render(draw func() image.Image, pngPath string, show bool) error {
	if pngPath == "" && !show {
		return nil
	}
	if pngPath == "" {
		pngPath = filepath.Join(os.TempDir(), "simplify.png")
	}

	img := draw()
	if show {
		return internal.ShowInTerminal(img, pngPath)
	}
	if err := gg.SavePNG(pngPath, img); err != nil {
		return errors.Wrapf(err, "saving %s", pngPath)
	}
	a.log.WithField("path", pngPath).Info("wrote image")
	return nil
}
