package nds

import (
	"github.com/paulmach/orb"
	"github.com/rotblauer/ndstile/datum"
	"math"
	"strconv"
	"strings"
	"testing"
)

const tile556236300WKT3D = "POLYGON Z ((111.84648227716731 30.62728190721755 -1000000, 111.84648417243615 30.649263977286452 -1000000, 111.86841269240549 30.649227710764272 -1000000, 111.86841080660852 30.62724564013721 -1000000, 111.84648227716731 30.62728190721755 -1000000))"

// parseRing reads the coordinates of a single-ring WKT polygon written by MarshalWKT.
func parseRing(t *testing.T, s string) [][]string {
	t.Helper()
	open := strings.Index(s, "((")
	if open < 0 || !strings.HasSuffix(s, "))") {
		t.Fatalf("Malformed WKT %q", s)
	}
	var out [][]string
	for _, tuple := range strings.Split(s[open+2:len(s)-2], ", ") {
		out = append(out, strings.Fields(tuple))
	}
	return out
}

func TestTileGeometry3D(t *testing.T) {
	got := TileID(556236300).Geometry(3)
	if !strings.HasPrefix(got, "POLYGON Z ((") {
		t.Fatalf("Expected POLYGON Z, got %q", got)
	}
	want := parseRing(t, tile556236300WKT3D)
	have := parseRing(t, got)
	if len(have) != len(want) {
		t.Fatalf("Expected %d points, got %d", len(want), len(have))
	}
	for i := range want {
		if len(have[i]) != 3 {
			t.Fatalf("Expected 3 ordinates, got %v", have[i])
		}
		if have[i][2] != "-1000000" {
			t.Errorf("Expected z -1000000, got %s", have[i][2])
		}
		for j := 0; j < 2; j++ {
			w, _ := strconv.ParseFloat(want[i][j], 64)
			h, err := strconv.ParseFloat(have[i][j], 64)
			if err != nil {
				t.Fatal(err)
			}
			if math.Abs(w-h) > 1e-9 {
				t.Errorf("Point %d ordinate %d: expected %v, got %v", i, j, w, h)
			}
		}
	}
	if have[0][0] != have[4][0] || have[0][1] != have[4][1] {
		t.Errorf("Ring is not closed: %v", have)
	}
}

func TestTileGeometry2D(t *testing.T) {
	id := TileID(556236300)
	got := id.Geometry(2)
	if !strings.HasPrefix(got, "POLYGON ((") {
		t.Fatalf("Expected POLYGON, got %q", got)
	}
	ring := parseRing(t, got)
	poly := id.Polygon(datum.GCJ02)
	for i, pt := range poly[0] {
		if len(ring[i]) != 2 {
			t.Fatalf("Expected 2 ordinates, got %v", ring[i])
		}
		// Shortest formatting parses back to the identical float.
		x, _ := strconv.ParseFloat(ring[i][0], 64)
		y, _ := strconv.ParseFloat(ring[i][1], 64)
		if x != pt.Lon() || y != pt.Lat() {
			t.Errorf("Point %d: expected %v, got (%v, %v)", i, pt, x, y)
		}
	}
}

func TestTilePolygonCorners(t *testing.T) {
	id := TileID(556236300)
	b := id.Bound()
	want := orb.Ring{
		{b.Left(), b.Bottom()},
		{b.Left(), b.Top()},
		{b.Right(), b.Top()},
		{b.Right(), b.Bottom()},
		{b.Left(), b.Bottom()},
	}
	got := id.Polygon(datum.WGS84)
	if len(got) != 1 || !got[0].Equal(want) {
		t.Errorf("Expected %v, got %v", want, got)
	}
}

func TestMarshalWKTNoExponent(t *testing.T) {
	p := orb.Polygon{orb.Ring{{1e-7, -1e-7}, {180, 90}, {1e-7, -1e-7}}}
	want := "POLYGON ((0.0000001 -0.0000001, 180 90, 0.0000001 -0.0000001))"
	if got := MarshalWKT(p, 2); got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
}

func TestTileFeature(t *testing.T) {
	f := TileID(67411448).Feature(datum.WGS84)
	if f.Properties.MustInt("level") != 10 {
		t.Errorf("Expected level 10, got %v", f.Properties["level"])
	}
	if f.Properties["tile_id"] != int64(67411448) {
		t.Errorf("Expected tile_id 67411448, got %v", f.Properties["tile_id"])
	}
	if f.Properties.MustString("datum") != "wgs84" {
		t.Errorf("Expected datum wgs84, got %v", f.Properties["datum"])
	}
	if _, ok := f.Geometry.(orb.Polygon); !ok {
		t.Errorf("Expected orb.Polygon, got %T", f.Geometry)
	}
}

func TestTileArea(t *testing.T) {
	cases := []struct {
		id   TileID
		want float64
	}{
		{556236300, 5136012.63},
		{67411448, 328592620.6},
	}
	for _, c := range cases {
		got := c.id.Area()
		if math.Abs(got-c.want)/c.want > 1e-6 {
			t.Errorf("%v: expected ~%v m², got %v", c.id, c.want, got)
		}
	}
	// Adjacent tiles at mid latitudes have nearly equal area.
	if r := TileID(556236300).Area() / TileID(556236300).Neighbor(Up).Area(); math.Abs(r-1) > 0.01 {
		t.Errorf("Expected neighbors of similar area, ratio %v", r)
	}
}
