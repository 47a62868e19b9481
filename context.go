package knobs

// Context carries the two pass-scoped channels every build function receives:
// the read-only value snapshot broadcast down from the Panel, and the shared
// definition sink that aggregates site emissions upward. Every node built
// within one pass observes the same snapshot; it is never mutated mid-pass.
//
// A Context is only valid for the pass that created it. Retaining one past
// the pass is harmless but useless: emissions land in a sink the panel has
// already discarded, so they are never merged into a later pass.
type Context struct {
	values Values
	sink   *Definitions
}

// Detached returns a context with no enclosing Panel. Every tweak built under
// it resolves to its own default and all emissions are discarded. This is the
// graceful-degradation path for content rendered outside a collection root.
func Detached() *Context {
	return &Context{sink: NewDefinitions()}
}

// value reads the broadcast snapshot. A nil Context behaves as an empty table.
func (c *Context) value(key SiteKey) (any, bool) {
	if c == nil {
		return nil, false
	}
	return c.values.Get(key)
}

// emit records one site emission into the pass sink. No-op on a nil Context.
func (c *Context) emit(key SiteKey, desc Descriptor) {
	if c == nil || c.sink == nil {
		return
	}
	c.sink.Add(key, desc)
}
