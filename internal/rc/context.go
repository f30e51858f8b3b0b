package rc

import (
	"errors"
	"fmt"
)

// Context is a named display-scale preset. Each context binds a fixed scalar
// multiplier applied to line widths, tick geometry and the figure size.
type Context string

const (
	ContextPaper    Context = "paper"
	ContextNotebook Context = "notebook"
	ContextTalk     Context = "talk"
	ContextPoster   Context = "poster"
)

// ErrUnknownContext is returned when a context name is not in the fixed table.
var ErrUnknownContext = errors.New("unknown display context")

var contextScales = map[Context]float64{
	ContextPaper:    0.8,
	ContextNotebook: 1.0,
	ContextTalk:     1.3,
	ContextPoster:   1.6,
}

// Contexts returns the known context names in presentation order.
func Contexts() []Context {
	return []Context{ContextPaper, ContextNotebook, ContextTalk, ContextPoster}
}

// Scale returns the fixed multiplier for the context.
func (c Context) Scale() (float64, error) {
	s, ok := contextScales[c]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownContext, string(c))
	}
	return s, nil
}

// SetContext builds the scaled context mapping: every base-context entry is
// multiplied by the context scale, the figure size is derived from the base
// (5.5 x 4.5) with the same scale, and every base-font entry is multiplied by
// the independent fscale factor and merged last. No side effects.
func SetContext(ctx Context, fscale float64) (Params, error) {
	scale, err := ctx.Scale()
	if err != nil {
		return nil, err
	}

	out := make(Params, len(baseContext)+len(baseFont)+1)
	for k, v := range baseContext {
		out[k] = v * scale
	}

	out["figure.figsize"] = [2]float64{BaseFigWidth * scale, BaseFigHeight * scale}

	for k, v := range baseFont {
		out[k] = v * fscale
	}

	return out, nil
}
