package nds

import (
	"errors"
	"github.com/paulmach/orb"
	"github.com/rotblauer/ndstile/datum"
	"math"
	"testing"
)

func TestTileIDLevel(t *testing.T) {
	cases := []struct {
		id    TileID
		level Level
	}{
		{556610400, 13},
		{67424006, 10},
		{556236300, 13},
		{67411448, 10},
		{1 << 16, 0},
		{1<<31 | 1, 15},
	}
	for _, c := range cases {
		if got := c.id.Level(); got != c.level {
			t.Errorf("%v: expected level %d, got %d", c.id, c.level, got)
		}
	}
	if w := TileID(556610400).Width(); w != 262144 {
		t.Errorf("Expected width 262144, got %d", w)
	}
}

func TestTileIDValid(t *testing.T) {
	for _, id := range []TileID{0, -1, 1, 1 << 15, 1 << 40} {
		if id.Valid() {
			t.Errorf("Expected %d to be invalid", id)
		}
	}
	if !TileID(556236300).Valid() {
		t.Error("Expected 556236300 to be valid")
	}
}

func TestTileIDMorton(t *testing.T) {
	if m := TileID(556236300).Morton(); m != 1330779330149613568 {
		t.Errorf("Expected 1330779330149613568, got %d", m)
	}
	m, err := MortonFromDegrees(77.50886984831503, 43.13809797582891)
	if err != nil {
		t.Fatal(err)
	}
	if m != 557753618534958618 {
		t.Errorf("Expected 557753618534958618, got %d", m)
	}
	if m2 := MortonFromFixed(MustDegreesToFixed(77.50886984831503), MustDegreesToFixed(43.13809797582891)); m2 != m {
		t.Errorf("Expected %d, got %d", m, m2)
	}
}

func TestMortonRoundTrip(t *testing.T) {
	ids := []TileID{556236300, 67411448, 556610400, 67424006, 663557538, 68288251, 16839103}
	for l := MinLevel; l <= MaxLevel; l++ {
		for _, pt := range []orb.Point{{-93.2555, 44.9889}, {-70.6483, -33.4569}, {151.2093, -33.8688}, {111.85, 30.64}} {
			id, err := FromPoint(pt, l)
			if err != nil {
				t.Fatal(err)
			}
			ids = append(ids, id)
		}
	}
	for _, id := range ids {
		if got := FromMorton(id.Morton(), id.Level()); got != id {
			t.Errorf("FromMorton(Morton(%v)): expected %v, got %v", id, id, got)
		}
	}
}

func TestTileIDDegrees(t *testing.T) {
	lon, lat := TileID(556236300).Degrees()
	if lon != 111.8408203125 || lat != 30.6298828125 {
		t.Errorf("Expected (111.8408203125, 30.6298828125), got (%v, %v)", lon, lat)
	}
}

func TestFromDegrees(t *testing.T) {
	cases := []struct {
		lon, lat float64
		level    Level
		want     TileID
	}{
		{111.8408203125, 30.6298828125, 13, 556236300},
		{111.8408203125, 30.6298828125, 10, 67411448},
		{-70.6483, -33.4569, 13, 663557538},
		{-93.2555, 44.9889, 10, 68288251},
		{151.2093, -33.8688, 8, 16839103},
	}
	for _, c := range cases {
		got, err := FromDegrees(c.lon, c.lat, c.level)
		if err != nil {
			t.Fatal(err)
		}
		if got != c.want {
			t.Errorf("FromDegrees(%v, %v, %d): expected %v, got %v", c.lon, c.lat, c.level, c.want, got)
		}
	}

	if _, err := FromDegrees(181, 0, 13); !errors.Is(err, ErrDomain) {
		t.Errorf("Expected ErrDomain, got %v", err)
	}
	if _, err := FromDegrees(0, -180.5, 13); !errors.Is(err, ErrDomain) {
		t.Errorf("Expected ErrDomain, got %v", err)
	}
	if _, err := FromDegrees(0, 0, 16); !errors.Is(err, ErrInvalidLevel) {
		t.Errorf("Expected ErrInvalidLevel, got %v", err)
	}
}

// TestBoundContainsPoint checks sign restoration in every quadrant.
func TestBoundContainsPoint(t *testing.T) {
	points := []orb.Point{
		{-93.2555, 44.9889},
		{-70.6483, -33.4569},
		{151.2093, -33.8688},
		{111.85, 30.64},
		{-0.0001, -0.0001},
		{0, 0},
		{-180, -90},
	}
	for l := Level1; l <= MaxLevel; l++ {
		for _, pt := range points {
			id, err := FromPoint(pt, l)
			if err != nil {
				t.Fatal(err)
			}
			b := id.Bound()
			if pt.Lon() < b.Left() || pt.Lon() >= b.Right() || pt.Lat() < b.Bottom() || pt.Lat() >= b.Top() {
				t.Errorf("Level %d: %v not in bound %v of %v", l, pt, b, id)
			}
		}
	}
}

func TestTileIDBorder(t *testing.T) {
	cases := []struct {
		id   TileID
		want orb.Bound
	}{
		{556236300, orb.Bound{Min: orb.Point{111.8408203125, 30.6298828125}, Max: orb.Point{111.86279296875, 30.65185546875}}},
		{67411448, orb.Bound{Min: orb.Point{111.796875, 30.5859375}, Max: orb.Point{111.97265625, 30.76171875}}},
		{663557538, orb.Bound{Min: orb.Point{-70.6640625, -33.46435546875}, Max: orb.Point{-70.64208984375, -33.4423828125}}},
	}
	for _, c := range cases {
		if got := c.id.Bound(); got != c.want {
			t.Errorf("%v: expected %v, got %v", c.id, c.want, got)
		}
		b := c.id.Border()
		if b.Right-b.Left != c.id.Width() || b.Top-b.Bottom != c.id.Width() {
			t.Errorf("%v: border %+v is not %d wide", c.id, b, c.id.Width())
		}
	}
}

func TestTileIDCenter(t *testing.T) {
	cases := []struct {
		id       TileID
		lon, lat float64
	}{
		{556236300, 111.85744626366223, 30.63825364888663},
		{67411448, 111.89035707209221, 30.671186392934953},
	}
	for _, c := range cases {
		pt := c.id.CenterDegrees(datum.GCJ02)
		if math.Abs(pt.Lon()-c.lon) > 1e-9 || math.Abs(pt.Lat()-c.lat) > 1e-9 {
			t.Errorf("%v: expected (%v, %v), got %v", c.id, c.lon, c.lat, pt)
		}
	}

	pt := TileID(556236300).CenterDegrees(datum.WGS84)
	if pt != (orb.Point{111.851806640625, 30.640869140625}) {
		t.Errorf("Expected (111.851806640625, 30.640869140625), got %v", pt)
	}
}

func TestTileIDTransform(t *testing.T) {
	got, err := TileID(556236300).Transform(10)
	if err != nil {
		t.Fatal(err)
	}
	if got != 67411448 {
		t.Errorf("Expected 67411448, got %v", got)
	}
	if _, err := TileID(556236300).Transform(-1); !errors.Is(err, ErrInvalidLevel) {
		t.Errorf("Expected ErrInvalidLevel, got %v", err)
	}

	// The south-west child re-encodes back to its parent.
	child, err := got.Transform(13)
	if err != nil {
		t.Fatal(err)
	}
	parent, err := child.Transform(10)
	if err != nil {
		t.Fatal(err)
	}
	if parent != got {
		t.Errorf("Expected %v, got %v", got, parent)
	}
}
