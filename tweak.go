package knobs

// Tweak declares a tweakable parameter at the caller's source position.
//
// On every pass it (1) reads the current value for its site from the panel's
// broadcast snapshot, falling back to def when the site is absent or the
// stored value has a different type, (2) builds the wrapped content once with
// the resolved value, and (3) emits exactly one descriptor into the pass
// sink so the overlay shows an editor for it.
//
// Identity is the call site's file and line, so two Tweak calls on one source
// line share identity. content may be nil for value-only tweaks whose output
// is consumed elsewhere.
func Tweak[T any](ctx *Context, label string, def T, editor Editor[T], content func(value T) *Node) *Node {
	return tweakAt(ctx, callerSite(1), label, def, editor, content)
}

// TweakAt is [Tweak] with an explicit SiteKey. Use it from helpers that
// declare tweaks on behalf of their callers, where the helper's own source
// position would collapse every call into one site.
func TweakAt[T any](ctx *Context, key SiteKey, label string, def T, editor Editor[T], content func(value T) *Node) *Node {
	return tweakAt(ctx, key, label, def, editor, content)
}

// TweakBool declares a bool parameter edited with a [Checkbox].
func TweakBool(ctx *Context, label string, def bool, content func(value bool) *Node) *Node {
	return tweakAt(ctx, callerSite(1), label, def, Checkbox(), content)
}

// TweakFloat declares a float64 parameter edited with a [Slider] over
// [min, max].
func TweakFloat(ctx *Context, label string, def, min, max float64, content func(value float64) *Node) *Node {
	return tweakAt(ctx, callerSite(1), label, def, Slider(min, max), content)
}

// TweakInt declares an int parameter edited with a [Stepper] over [min, max].
func TweakInt(ctx *Context, label string, def, min, max int, content func(value int) *Node) *Node {
	return tweakAt(ctx, callerSite(1), label, def, Stepper(min, max), content)
}

// TweakColor declares a Color parameter edited with a [ColorPicker].
func TweakColor(ctx *Context, label string, def Color, content func(value Color) *Node) *Node {
	return tweakAt(ctx, callerSite(1), label, def, ColorPicker(), content)
}

func tweakAt[T any](ctx *Context, key SiteKey, label string, def T, editor Editor[T], content func(value T) *Node) *Node {
	v := def
	if raw, ok := ctx.value(key); ok {
		if typed, ok := raw.(T); ok {
			v = typed
		}
	}
	ctx.emit(key, NewDescriptor(label, def, editor))
	if content == nil {
		return nil
	}
	return content(v)
}
