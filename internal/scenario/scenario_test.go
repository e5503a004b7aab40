package scenario

import (
	"os"
	"path/filepath"
	"slices"
	"testing"

	"sand-ca/internal/core"
)

const sample = `name: hourglass
terrain:
  seed: 7
  base: 10
  amplitude: 6
scatter:
  seed: 3
  count: 40
  max_y: 20
strokes:
  - {tick: 0, ticks: 3, x: 40, y: 10, buttons: 1}
  - {tick: 2, x: 50, y: 10, buttons: 4}
`

func TestParseDefaults(t *testing.T) {
	sc, err := Parse([]byte(sample))
	if err != nil {
		t.Fatal(err)
	}
	if sc.Name != "hourglass" || len(sc.Strokes) != 2 {
		t.Fatalf("scenario = %+v", sc)
	}
	if sc.Strokes[1].Ticks != 1 {
		t.Fatalf("stroke without ticks should last one tick, got %d", sc.Strokes[1].Ticks)
	}
	if sc.Terrain.Frequency <= 0 {
		t.Fatal("terrain frequency not defaulted")
	}
}

func TestParseRejectsNegativeTerrain(t *testing.T) {
	if _, err := Parse([]byte("terrain: {base: -1}\n")); err == nil {
		t.Fatal("expected error for negative base")
	}
}

func TestInputAt(t *testing.T) {
	sc, err := Parse([]byte(sample))
	if err != nil {
		t.Fatal(err)
	}
	cases := []struct {
		tick uint64
		want core.Input
	}{
		{0, core.Input{Buttons: core.ButtonPrimary, X: 40, Y: 10}},
		{1, core.Input{Buttons: core.ButtonPrimary, X: 40, Y: 10}},
		{2, core.Input{Buttons: core.ButtonMiddle, X: 50, Y: 10}},
		{3, core.Input{}},
	}
	for _, tc := range cases {
		if got := sc.InputAt(tc.tick); got != tc.want {
			t.Fatalf("InputAt(%d) = %+v, expected %+v", tc.tick, got, tc.want)
		}
	}
	if sc.LastTick() != 3 {
		t.Fatalf("LastTick = %d", sc.LastTick())
	}
}

func TestApplyIsDeterministic(t *testing.T) {
	sc, err := Parse([]byte(sample))
	if err != nil {
		t.Fatal(err)
	}
	a := core.NewPackedGrid(64)
	b := core.NewPackedGrid(64)
	sc.Apply(a)
	sc.Apply(b)
	if !slices.Equal(a.Bytes(), b.Bytes()) {
		t.Fatal("applying the same scenario twice differed")
	}
	if a.Count(core.CodeWall) == 0 || a.Count(core.CodeSand) == 0 {
		t.Fatalf("walls=%d sand=%d", a.Count(core.CodeWall), a.Count(core.CodeSand))
	}

	heights := sc.Terrain.Heights(64)
	for x, h := range heights {
		for y := 0; y < 64; y++ {
			isWall := a.Get(x, y) == core.CodeWall
			if want := y >= 64-h; isWall != want {
				t.Fatalf("column %d row %d wall=%v with height %d", x, y, isWall, h)
			}
		}
	}
}

func TestLoadMissing(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "none.yaml")); err == nil {
		t.Fatal("expected error")
	}
	path := filepath.Join(t.TempDir(), "ok.yaml")
	if err := os.WriteFile(path, []byte(sample), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err != nil {
		t.Fatal(err)
	}
}
