// Command simplify is a command-line interface for polygon simplification and
// label raster tracing.
//
// Polygons are read from stdin as newline separated points in the form "x y",
// with each polygon separated by an extra newline, or from the <polygon>
// elements of an SVG file. Rasters are read as rows of whitespace separated
// integer labels.
package main

import (
	"os"
	"time"

	"github.com/sirupsen/logrus"
)

func main() {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339Nano,
		DisableSorting:  true,
	})

	if err := newRootCommand(logger).Execute(); err != nil {
		logger.WithError(err).Error("simplify failed")
		os.Exit(1)
	}
}
