package nds

import (
	"errors"
	"github.com/paulmach/orb/maptile"
	"testing"
)

func TestLevelWidthHalves(t *testing.T) {
	for l := MinLevel; l < MaxLevel; l++ {
		if l.Width() != 2*(l+1).Width() {
			t.Errorf("Level %d width %d is not twice level %d width %d", l, l.Width(), l+1, (l + 1).Width())
		}
	}
	if Level0.WidthDegrees() != 180 {
		t.Errorf("Expected 180, got %v", Level0.WidthDegrees())
	}
	if Level13.WidthDegrees() != 0.02197265625 {
		t.Errorf("Expected 0.02197265625, got %v", Level13.WidthDegrees())
	}
}

func TestParseLevel(t *testing.T) {
	for _, v := range []int{0, 10, 15} {
		l, err := ParseLevel(v)
		if err != nil {
			t.Fatal(err)
		}
		if int(l) != v {
			t.Errorf("Expected %d, got %d", v, l)
		}
	}
	for _, v := range []int{-1, 16, 31, 300} {
		if _, err := ParseLevel(v); !errors.Is(err, ErrInvalidLevel) {
			t.Errorf("ParseLevel(%d): expected ErrInvalidLevel, got %v", v, err)
		}
	}
}

func TestLevelSlippyZoom(t *testing.T) {
	for l := MinLevel; l <= MaxLevel; l++ {
		if z := l.SlippyZoom(); z != maptile.Zoom(l+1) {
			t.Errorf("Level %d: expected zoom %d, got %d", l, l+1, z)
		}
	}
}
