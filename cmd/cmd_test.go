package cmd

import (
	"bytes"
	"github.com/rotblauer/ndstile/testing/testdata"
	"io"
	"strings"
	"testing"
)

// run executes the root command. Flag values persist between runs,
// so every test passes the flags it depends on.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(io.Discard)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func mustRun(t *testing.T, args ...string) string {
	t.Helper()
	out, err := run(t, args...)
	if err != nil {
		t.Fatalf("%v: %v", args, err)
	}
	return out
}

func TestCommands(t *testing.T) {
	cases := []struct {
		args []string
		want string
	}{
		{[]string{"encode", "--level", "13", "--morton=false", "111.8408203125", "30.6298828125"}, "556236300\n"},
		{[]string{"encode", "--level", "10", "--morton=false", "--", "-93.2555", "44.9889"}, "68288251\n"},
		{[]string{"encode", "--level", "13", "--morton", "111.8408203125", "30.6298828125"}, "556236300 1330779330149613568\n"},
		{[]string{"decode", "--precision=-1", "556236300"}, "13 262144 111.8408203125 30.6298828125\n"},
		{[]string{"border", "--precision=-1", "--fixed=false", "556236300"}, "111.8408203125 30.6298828125 111.86279296875 30.65185546875\n"},
		{[]string{"border", "--fixed", "556236300"}, "1334312960 365428736 1334575104 365690880\n"},
		{[]string{"center", "--precision=-1", "--datum", "wgs84", "556236300"}, "111.851806640625 30.640869140625\n"},
		{[]string{"center", "--precision", "2", "--datum", "wgs84", "556236300"}, "111.85 30.64\n"},
		{[]string{"neighbors", "--direction", "up", "556236300"}, "556236302\n"},
		{[]string{"transform", "--to", "13", "67411448"}, "556236288\n"},
		{[]string{"transform", "--to", "10", "556236288"}, "67411448\n"},
	}
	for _, c := range cases {
		if got := mustRun(t, c.args...); got != c.want {
			t.Errorf("%v: expected %q, got %q", c.args, c.want, got)
		}
	}
}

func TestNeighborsCommand(t *testing.T) {
	got := strings.Fields(mustRun(t, "neighbors", "--direction", "", "556236300"))
	want := []string{"556236300", "556236302", "556236294", "556236297", "556236301", "556236299", "556236303", "556236291", "556236295"}
	if strings.Join(got, " ") != strings.Join(want, " ") {
		t.Errorf("Expected %v, got %v", want, got)
	}
}

func TestGeometryCommand(t *testing.T) {
	out := mustRun(t, "geometry", "--dimension", "3", "--format", "wkt", "--datum", "gcj02", "556236300", "67411448")
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 2 {
		t.Fatalf("Expected 2 lines, got %q", out)
	}
	for _, l := range lines {
		if !strings.HasPrefix(l, "POLYGON Z ((111.") || !strings.HasSuffix(l, " -1000000))") {
			t.Errorf("Unexpected geometry %q", l)
		}
	}

	out = mustRun(t, "geometry", "--format", "geojson", "--datum", "wgs84", "556236300")
	for _, s := range []string{`"FeatureCollection"`, `"tile_id":556236300`, `"level":13`, `"datum":"wgs84"`} {
		if !strings.Contains(out, s) {
			t.Errorf("Expected %s in %s", s, out)
		}
	}
}

func TestCoverCommand(t *testing.T) {
	polygon := "POLYGON ((111.84648227716731 30.62728190721755, 111.84648417243615 30.649263977286452, 111.86841269240549 30.649227710764272, 111.86841080660852 30.62724564013721, 111.84648227716731 30.62728190721755))"
	out := mustRun(t, "cover", "--level", "13", "--format", "id", "--datum", "gcj02",
		"--max-candidates", "1000", "--geojson", "", "--wkt", polygon)
	want := "556236294\n556236295\n556236297\n556236299\n556236300\n556236301\n"
	if out != want {
		t.Errorf("Expected %q, got %q", want, out)
	}

	out = mustRun(t, "cover", "--level", "13", "--format", "id", "--datum", "wgs84", "--max-candidates", "1000",
		"--wkt", "", "--geojson", testdata.Path(testdata.Source_Tile556236300GCJ02))
	if !strings.Contains(out, "556236300\n") {
		t.Errorf("Expected 556236300 in %q", out)
	}

	if _, err := run(t, "cover", "--level", "13", "--max-candidates", "4", "--geojson", "", "--wkt", polygon); err == nil {
		t.Error("Expected the candidate limit to be enforced")
	}
	if _, err := run(t, "cover", "--level", "13", "--wkt", "", "--geojson", ""); err == nil {
		t.Error("Expected an error without a polygon")
	}
}

func TestInfoCommand(t *testing.T) {
	out := mustRun(t, "info", "--precision=-1", "556236300")
	for _, s := range []string{"level", "13", "262,144 units", "111.851806640625 30.640869140625", "slippy", "14/"} {
		if !strings.Contains(out, s) {
			t.Errorf("Expected %q in:\n%s", s, out)
		}
	}
}

func TestInvalidArguments(t *testing.T) {
	for _, args := range [][]string{
		{"decode", "abc"},
		{"decode", "12"},
		{"encode", "--level", "16", "1", "2"},
		{"encode", "--level", "13", "200", "2"},
		{"neighbors", "--direction", "north", "556236300"},
		{"center", "--datum", "bd09", "556236300"},
	} {
		if _, err := run(t, args...); err == nil {
			t.Errorf("%v: expected an error", args)
		}
	}
}
