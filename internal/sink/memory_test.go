package sink

import (
	"testing"

	"github.com/nbtheme/jtplot/internal/rc"
)

func TestMemoryStoreMergeLastWriteWins(t *testing.T) {
	store := NewMemoryStore()

	store.Merge(rc.Params{"axes.facecolor": "#252b39"})
	store.Merge(rc.Params{"axes.facecolor": "#323a48"})

	if got := store.Snapshot().Str("axes.facecolor"); got != "#323a48" {
		t.Errorf("axes.facecolor = %q, want last write", got)
	}
}

func TestMemoryStoreSnapshotIsCopy(t *testing.T) {
	store := NewMemoryStore()

	snap := store.Snapshot()
	snap["axes.facecolor"] = "#000000"

	if got := store.Snapshot().Str("axes.facecolor"); got != "#ffffff" {
		t.Errorf("snapshot mutation leaked into store: axes.facecolor = %q", got)
	}
}

func TestMemoryStoreDefaultsAreIsolated(t *testing.T) {
	store := NewMemoryStore()

	d := store.Defaults()
	d["text.color"] = "#ff0000"

	if got := store.Defaults().Str("text.color"); got != "#000000" {
		t.Errorf("defaults mutation leaked: text.color = %q", got)
	}
}

func TestMemoryStoreReset(t *testing.T) {
	store := NewMemoryStore()

	// Dirty everything a style application touches.
	store.Merge(rc.Params{
		"figure.facecolor": "#252b39",
		"axes.facecolor":   "#252b39",
		"axes.grid":        true,
	})
	store.SetColorCycle([]string{"#d19a66"})
	for i := 0; i < len(ShortCodes); i++ {
		store.SetShortCode(ShortCodes[i], [3]float64{0.5, 0.5, 0.5})
	}

	store.Reset()

	params := store.Snapshot()
	if got := params.Str("figure.facecolor"); got != "#ffffff" {
		t.Errorf("figure.facecolor = %q, want white after reset", got)
	}
	if got := params.Str("axes.facecolor"); got != "#ffffff" {
		t.Errorf("axes.facecolor = %q, want white after reset", got)
	}
	if params.Bool("axes.grid") {
		t.Error("axes.grid still set after reset")
	}

	wantCodes := map[byte][3]float64{
		'b': {0, 0, 1},
		'g': {0, 0.5, 0},
		'r': {1, 0, 0},
		'm': {0.75, 0.75, 0},
		'y': {0.75, 0.75, 0},
		'c': {0, 0.75, 0.75},
		'k': {0, 0, 0},
	}
	for code, want := range wantCodes {
		got, ok := store.ShortCode(code)
		if !ok {
			t.Errorf("short code %q missing after reset", string(code))
			continue
		}
		if got != want {
			t.Errorf("short code %q = %v, want %v", string(code), got, want)
		}
	}

	if cycle := store.ColorCycle(); len(cycle) != len(defaultColorCycle) {
		t.Errorf("colour cycle length = %d, want %d", len(cycle), len(defaultColorCycle))
	}
}

func TestMemoryStoreColorCycleCopies(t *testing.T) {
	store := NewMemoryStore()

	in := []string{"#111111", "#222222"}
	store.SetColorCycle(in)
	in[0] = "#ffffff"

	if got := store.ColorCycle()[0]; got != "#111111" {
		t.Errorf("cycle[0] = %q, caller slice aliased into store", got)
	}

	out := store.ColorCycle()
	out[1] = "#000000"
	if got := store.ColorCycle()[1]; got != "#222222" {
		t.Errorf("cycle[1] = %q, returned slice aliased into store", got)
	}
}
