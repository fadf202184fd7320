package client

import "sync/atomic"

// Viewport scopes fetches to a view generation, the SDK analogue of the
// frontend discarding responses that resolve after the user navigated
// away. Begin starts a new generation, invalidating everything issued
// under older ones; Close invalidates all outstanding generations.
type Viewport struct {
	gen    atomic.Uint64
	closed atomic.Bool
}

func NewViewport() *Viewport { return &Viewport{} }

// Generation is the token a fetch holds while in flight.
type Generation struct {
	vp  *Viewport
	gen uint64
}

// Begin invalidates prior generations and returns the new token.
func (v *Viewport) Begin() Generation {
	return Generation{vp: v, gen: v.gen.Add(1)}
}

func (v *Viewport) Close() {
	v.closed.Store(true)
	v.gen.Add(1)
}

// Valid reports whether a result fetched under g may still be applied.
func (g Generation) Valid() bool {
	if g.vp == nil || g.vp.closed.Load() {
		return false
	}
	return g.vp.gen.Load() == g.gen
}

// Apply runs fn only if the generation is still current, so callers can
// guard state mutation with the staleness check in one step.
func (g Generation) Apply(fn func()) bool {
	if !g.Valid() {
		return false
	}
	fn()
	return true
}
