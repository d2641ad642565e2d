/*
Package cover enumerates the tiles that intersect a polygon.

The candidates are every TileID between the tiles of the polygon's bounding
box corners. Morton order is only roughly spatial, so the candidates are a
superset of the box: each one is tested against the polygon.
*/
package cover

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"github.com/paulmach/orb"
	"github.com/rotblauer/ndstile/nds"
	"github.com/rotblauer/ndstile/params"
	"golang.org/x/sync/errgroup"
	"log/slog"
	"math"
	"slices"
)

var ErrCandidateRangeTooLarge = errors.New("candidate tile range too large")

// checkEvery is how many candidates a worker tests between context checks.
const checkEvery = 1024

type Rasterizer struct {
	Geometry Geometry
	Config   *params.CoverConfig
}

// NewRasterizer returns a Rasterizer. A nil config uses params.DefaultCoverConfig.
func NewRasterizer(g Geometry, config *params.CoverConfig) *Rasterizer {
	if config == nil {
		config = params.DefaultCoverConfig()
	}
	return &Rasterizer{Geometry: g, Config: config}
}

// NewOrbRasterizer returns a Rasterizer backed by Orb with the config's tolerance.
func NewOrbRasterizer(config *params.CoverConfig) *Rasterizer {
	if config == nil {
		config = params.DefaultCoverConfig()
	}
	return NewRasterizer(Orb{Tolerance: config.Tolerance}, config)
}

// TilesIntersecting returns the tiles at level intersecting the WKT polygon,
// using the default configuration.
func TilesIntersecting(polygonWKT string, level nds.Level) ([]nds.TileID, error) {
	return NewOrbRasterizer(nil).Tiles(context.Background(), polygonWKT, level)
}

// Tiles parses polygonWKT and returns the tiles at level intersecting it, in ascending order.
func (r *Rasterizer) Tiles(ctx context.Context, polygonWKT string, level nds.Level) ([]nds.TileID, error) {
	poly, err := r.Geometry.Parse(polygonWKT)
	if err != nil {
		return nil, err
	}
	return r.TilesForPolygon(ctx, poly, level)
}

// Range is an inclusive run of consecutive TileIDs.
type Range struct {
	Min, Max nds.TileID
}

func (r Range) Len() int64 {
	return int64(r.Max-r.Min) + 1
}

// CandidateRange returns the smallest single TileID range covering every
// candidate scanned for poly at level.
func (r *Rasterizer) CandidateRange(poly orb.Polygon, level nds.Level) (minTile, maxTile nds.TileID, err error) {
	ranges, err := r.CandidateRanges(poly, level)
	if err != nil {
		return 0, 0, err
	}
	return ranges[0].Min, ranges[len(ranges)-1].Max, nil
}

// CandidateRanges returns the ascending, disjoint TileID ranges scanned for
// poly at level.
//
// Within one hemisphere Morton order is monotone in both coordinates, so the
// tiles of the bounding box corners delimit every tile of the box. Negative
// coordinates sort after positive ones, so a box across the equator or the
// prime meridian is split there and each piece contributes its own range.
func (r *Rasterizer) CandidateRanges(poly orb.Polygon, level nds.Level) ([]Range, error) {
	if !level.Valid() {
		return nil, fmt.Errorf("%w: %d", nds.ErrInvalidLevel, level)
	}
	b, err := r.Geometry.BoundingRect(poly)
	if err != nil {
		return nil, err
	}
	x0, y0, err := fixedPoint(b.Min)
	if err != nil {
		return nil, fmt.Errorf("bound min: %w", err)
	}
	x1, y1, err := fixedPoint(b.Max)
	if err != nil {
		return nil, fmt.Errorf("bound max: %w", err)
	}

	// 180° and 90° encode as -180° and -90°; clamp to the last cell before them.
	var ranges []Range
	for _, xs := range splitAtZero(x0, x1, math.MaxInt32) {
		for _, ys := range splitAtZero(y0, y1, 1<<30-1) {
			ranges = append(ranges, Range{
				Min: nds.FromFixed(xs[0], ys[0], level),
				Max: nds.FromFixed(xs[1], ys[1], level),
			})
		}
	}
	return mergeRanges(ranges), nil
}

func fixedPoint(pt orb.Point) (x, y int64, err error) {
	if x, err = nds.DegreesToFixed(pt.Lon()); err != nil {
		return 0, 0, fmt.Errorf("longitude: %w", err)
	}
	if y, err = nds.DegreesToFixed(pt.Lat()); err != nil {
		return 0, 0, fmt.Errorf("latitude: %w", err)
	}
	return x, y, nil
}

func splitAtZero(lo, hi, limit int64) [][2]int64 {
	lo, hi = min(lo, limit), min(hi, limit)
	if lo < 0 && hi >= 0 {
		return [][2]int64{{lo, -1}, {0, hi}}
	}
	return [][2]int64{{lo, hi}}
}

func mergeRanges(ranges []Range) []Range {
	slices.SortFunc(ranges, func(a, b Range) int {
		return cmp.Compare(a.Min, b.Min)
	})
	out := ranges[:1]
	for _, rg := range ranges[1:] {
		last := &out[len(out)-1]
		if rg.Min <= last.Max+1 {
			last.Max = max(last.Max, rg.Max)
			continue
		}
		out = append(out, rg)
	}
	return out
}

// TilesForPolygon returns the tiles at level intersecting poly, in ascending order.
func (r *Rasterizer) TilesForPolygon(ctx context.Context, poly orb.Polygon, level nds.Level) ([]nds.TileID, error) {
	ranges, err := r.CandidateRanges(poly, level)
	if err != nil {
		return nil, err
	}
	var n int64
	for _, rg := range ranges {
		n += rg.Len()
	}
	if r.Config.MaxCandidates > 0 && n > r.Config.MaxCandidates {
		return nil, fmt.Errorf("%w: %d candidates in %d ranges from %v, limit %d",
			ErrCandidateRangeTooLarge, n, len(ranges), ranges[0].Min, r.Config.MaxCandidates)
	}

	workers := int64(r.Config.Workers)
	if workers < 1 {
		workers = 1
	}
	if workers > n {
		workers = n
	}
	chunk := nds.TileID((n + workers - 1) / workers)

	var chunks []Range
	for _, rg := range ranges {
		for lo := rg.Min; lo <= rg.Max; lo += chunk {
			chunks = append(chunks, Range{Min: lo, Max: min(lo+chunk-1, rg.Max)})
		}
	}

	meter := newScanMeter(r.Config.ProgressInterval, int(level), n)
	defer meter.stop()

	results := make([][]nds.TileID, len(chunks))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(int(workers))
	for i, c := range chunks {
		g.Go(func() error {
			hits, err := r.scan(ctx, meter, poly, c.Min, c.Max)
			results[i] = hits
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var out []nds.TileID
	for _, hits := range results {
		out = append(out, hits...)
	}
	slog.Debug("Covered polygon", "level", level, "ranges", len(ranges),
		"candidates", n, "tiles", len(out))
	return out, nil
}

func (r *Rasterizer) scan(ctx context.Context, meter *scanMeter, poly orb.Polygon, lo, hi nds.TileID) ([]nds.TileID, error) {
	var hits []nds.TileID
	marked := 0
	for t := lo; t <= hi; t++ {
		if (t-lo)%checkEvery == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			if t > lo {
				meter.mark(checkEvery, int64(len(hits)-marked))
				marked = len(hits)
			}
		}
		if r.Geometry.Intersects(poly, t.Polygon(r.Config.Datum)) {
			hits = append(hits, t)
		}
	}
	meter.mark(int64((hi-lo)%checkEvery)+1, int64(len(hits)-marked))
	return hits, nil
}
