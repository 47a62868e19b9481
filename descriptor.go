package knobs

// Editor builds the interactive widget for one tweakable value of type T.
// The returned node reads the cell's current value and writes edits back
// through the same cell. See editors.go for the stock set.
type Editor[T any] func(label string, cell TypedCell[T]) *Node

// Descriptor pairs a tweak's default value, display label, and editor builder
// so that heterogeneous value types can share one table. The builder is
// type-erased: it was constructed against a concrete value type and panics if
// the cell it receives ever holds a different one. That can only happen when
// two annotations with different value types collide on a single SiteKey.
type Descriptor struct {
	Default any
	Label   string
	build   func(cell Cell) *Node
}

// NewDescriptor wraps a typed editor into a type-erased Descriptor.
func NewDescriptor[T any](label string, def T, editor Editor[T]) Descriptor {
	d := Descriptor{Default: def, Label: label}
	if editor != nil {
		d.build = func(cell Cell) *Node {
			return editor(label, TypedCell[T]{cell: cell})
		}
	}
	return d
}

// BuildEditor instantiates the editor widget bound to the given cell.
// Returns nil if the descriptor carries no editor.
func (d Descriptor) BuildEditor(cell Cell) *Node {
	if d.build == nil {
		return nil
	}
	return d.build(cell)
}
