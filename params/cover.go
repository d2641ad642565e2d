package params

import (
	"github.com/rotblauer/ndstile/datum"
	"runtime"
	"time"
)

type CoverConfig struct {
	// MaxCandidates bounds the id range the rasterizer will scan.
	// The range between the bounding box corner tiles is not tight;
	// a box that straddles a high-order Morton boundary can span a huge
	// number of ids. Zero disables the bound.
	MaxCandidates int64

	// Workers is the number of goroutines testing candidates.
	Workers int

	// Tolerance in degrees within which a tile touching the polygon
	// boundary is counted as intersecting.
	Tolerance float64

	// ProgressInterval is how often a running scan logs its progress.
	// Zero disables progress logging.
	ProgressInterval time.Duration

	// Datum of the tile outlines tested against the polygon.
	// Polygons drawn for Chinese map platforms are GCJ-02.
	Datum datum.Datum
}

func DefaultCoverConfig() *CoverConfig {
	return &CoverConfig{
		MaxCandidates: 1 << 20,
		Workers:       runtime.NumCPU(),
		Tolerance:     1e-9,
		Datum:         datum.GCJ02,
	}
}
