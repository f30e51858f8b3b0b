// Package rc models the host plotting library's flat rendering-configuration
// mapping: dot-namespaced parameter names bound to scalars, booleans, strings,
// colours or (width, height) pairs. It also owns the fixed base tables and the
// display-context scaling that derives a concrete mapping from them.
package rc

// Params is a flat configuration mapping. Values are float64, bool, string,
// []string or [2]float64 depending on the parameter.
type Params map[string]any

// Clone returns a shallow copy of the mapping.
func (p Params) Clone() Params {
	out := make(Params, len(p))
	for k, v := range p {
		out[k] = v
	}
	return out
}

// Merge copies every entry of other into p, overwriting on key collision.
// Later merges win; this is the only composition rule in the pipeline.
func (p Params) Merge(other Params) {
	for k, v := range other {
		p[k] = v
	}
}

// Float returns the float64 value for key, or 0 if absent or mistyped.
func (p Params) Float(key string) float64 {
	v, _ := p[key].(float64)
	return v
}

// Bool returns the bool value for key, or false if absent or mistyped.
func (p Params) Bool(key string) bool {
	v, _ := p[key].(bool)
	return v
}

// Str returns the string value for key, or "" if absent or mistyped.
func (p Params) Str(key string) string {
	v, _ := p[key].(string)
	return v
}

// Pair returns the [2]float64 value for key (e.g. figure.figsize).
func (p Params) Pair(key string) [2]float64 {
	v, _ := p[key].([2]float64)
	return v
}
