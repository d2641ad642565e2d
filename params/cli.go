package params

import (
	"github.com/rotblauer/ndstile/datum"
	"github.com/rotblauer/ndstile/nds"
)

// ConfigFileName is looked up in the home directory when no --config is given.
const ConfigFileName = ".ndstile"

// EnvPrefix prefixes environment overrides, eg. NDSTILE_LEVEL=10.
const EnvPrefix = "NDSTILE"

type CLIConfig struct {
	// Level is the default level for encoding and covering.
	Level nds.Level

	// Datum is the default datum for exported points.
	Datum datum.Datum

	// Dimension of exported WKT, 2 or 3.
	Dimension int

	// Format of exported geometries, "wkt" or "geojson".
	Format string

	// Precision is the number of decimals printed for degrees.
	// Negative prints the shortest exact representation.
	Precision int
}

func DefaultCLIConfig() *CLIConfig {
	return &CLIConfig{
		Level:     nds.Level13,
		Datum:     datum.WGS84,
		Dimension: 2,
		Format:    "wkt",
		Precision: -1,
	}
}
