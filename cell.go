package knobs

import "fmt"

// Cell is a read-write handle into a single slot of a Panel's value table.
// Editor widgets use it to read the current value and dispatch edits without
// touching the table itself. A Cell stays bound to its site across frames;
// writes targeting a site that has since unmounted are dropped silently.
type Cell struct {
	panel *Panel
	key   SiteKey
}

// Key returns the annotation site this cell is bound to.
func (c Cell) Key() SiteKey {
	return c.key
}

// Get returns the current value for the cell's site. The second return is
// false when the site is not live (no enclosing panel, or unmounted).
func (c Cell) Get() (any, bool) {
	if c.panel == nil {
		return nil, false
	}
	return c.panel.Value(c.key)
}

// Set dispatches an edit. The panel applies it to its value table so the next
// pass reflects the new value. Stale edits are dropped silently.
func (c Cell) Set(v any) {
	if c.panel == nil {
		return
	}
	c.panel.setValue(c.key, v)
}

// TypedCell is the typed view of a Cell that an [Editor] receives.
//
// Get panics when the stored value's underlying type differs from T. Correct
// programs never trigger this: it requires two annotations with different
// value types sharing one SiteKey.
type TypedCell[T any] struct {
	cell Cell
}

// Get returns the cell's current value, or the zero value of T if the site is
// no longer live.
func (c TypedCell[T]) Get() T {
	raw, ok := c.cell.Get()
	if !ok {
		var zero T
		return zero
	}
	v, ok := raw.(T)
	if !ok {
		panic(fmt.Sprintf("knobs: cell for %s holds %T, editor expects %T", c.cell.key, raw, *new(T)))
	}
	return v
}

// Set dispatches a typed edit through the underlying cell.
func (c TypedCell[T]) Set(v T) {
	c.cell.Set(v)
}
