package rc

import (
	"errors"
	"math"
	"testing"
)

func TestSetContextScalesEveryBaseValue(t *testing.T) {
	tests := []struct {
		context Context
		scale   float64
	}{
		{ContextPaper, 0.8},
		{ContextNotebook, 1.0},
		{ContextTalk, 1.3},
		{ContextPoster, 1.6},
	}

	for _, tt := range tests {
		t.Run(string(tt.context), func(t *testing.T) {
			params, err := SetContext(tt.context, 1.0)
			if err != nil {
				t.Fatalf("SetContext(%q) unexpected error: %v", tt.context, err)
			}

			for key, base := range BaseContext() {
				want := base * tt.scale
				if got := params.Float(key); math.Abs(got-want) > 1e-9 {
					t.Errorf("%s = %v, want %v", key, got, want)
				}
			}

			size := params.Pair("figure.figsize")
			wantSize := [2]float64{BaseFigWidth * tt.scale, BaseFigHeight * tt.scale}
			if math.Abs(size[0]-wantSize[0]) > 1e-9 || math.Abs(size[1]-wantSize[1]) > 1e-9 {
				t.Errorf("figure.figsize = %v, want %v", size, wantSize)
			}
		})
	}
}

func TestSetContextFontsScaleIndependently(t *testing.T) {
	const fscale = 1.5

	for _, ctx := range Contexts() {
		t.Run(string(ctx), func(t *testing.T) {
			params, err := SetContext(ctx, fscale)
			if err != nil {
				t.Fatalf("SetContext(%q) unexpected error: %v", ctx, err)
			}

			// Font keys follow fscale only, whatever the context scale is.
			for key, base := range BaseFont() {
				want := base * fscale
				if got := params.Float(key); math.Abs(got-want) > 1e-9 {
					t.Errorf("%s = %v, want %v", key, got, want)
				}
			}
		})
	}
}

func TestSetContextUnknown(t *testing.T) {
	_, err := SetContext(Context("billboard"), 1.0)
	if err == nil {
		t.Fatal("SetContext with unknown context expected error")
	}
	if !errors.Is(err, ErrUnknownContext) {
		t.Errorf("error = %v, want ErrUnknownContext", err)
	}
}

func TestSetContextNoSideEffects(t *testing.T) {
	before := BaseContext()
	if _, err := SetContext(ContextPoster, 2.0); err != nil {
		t.Fatalf("SetContext unexpected error: %v", err)
	}
	after := BaseContext()

	for k, v := range before {
		if after[k] != v {
			t.Errorf("base table mutated: %s = %v, want %v", k, after[k], v)
		}
	}
}
