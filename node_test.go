package knobs

import "testing"

// --- Constructor defaults ---

func TestNewContainerDefaults(t *testing.T) {
	n := NewContainer("test")
	assertNodeDefaults(t, n, "test", NodeTypeContainer)
}

func TestNewRectDefaults(t *testing.T) {
	c := Color{0.5, 0.5, 0.5, 1}
	n := NewRect("box", 40, 20, c)
	assertNodeDefaults(t, n, "box", NodeTypeRect)
	if n.Width != 40 || n.Height != 20 {
		t.Errorf("size = (%v, %v), want (40, 20)", n.Width, n.Height)
	}
	if n.Color != c {
		t.Errorf("Color = %v, want %v", n.Color, c)
	}
}

func TestNewLabelDefaults(t *testing.T) {
	n := NewLabel("label", "hello")
	assertNodeDefaults(t, n, "label", NodeTypeText)
	if n.Text != "hello" {
		t.Errorf("Text = %q, want %q", n.Text, "hello")
	}
}

func assertNodeDefaults(t *testing.T, n *Node, name string, typ NodeType) {
	t.Helper()
	if n.ID == 0 {
		t.Error("ID should be non-zero")
	}
	if n.Name != name {
		t.Errorf("Name = %q, want %q", n.Name, name)
	}
	if n.Type != typ {
		t.Errorf("Type = %d, want %d", n.Type, typ)
	}
	if n.Alpha != 1 {
		t.Errorf("Alpha = %v, want 1", n.Alpha)
	}
	if !n.Visible {
		t.Error("Visible should be true")
	}
}

// --- Unique IDs ---

func TestUniqueIDs(t *testing.T) {
	a := NewContainer("a")
	b := NewContainer("b")
	c := NewRect("c", 1, 1, ColorWhite)
	if a.ID == b.ID || b.ID == c.ID || a.ID == c.ID {
		t.Errorf("IDs should be unique: %d, %d, %d", a.ID, b.ID, c.ID)
	}
}

// --- AddChild ---

func TestAddChildBasic(t *testing.T) {
	parent := NewContainer("parent")
	child := NewContainer("child")
	parent.AddChild(child)

	if child.Parent != parent {
		t.Error("child.Parent should be parent")
	}
	if parent.NumChildren() != 1 {
		t.Errorf("NumChildren = %d, want 1", parent.NumChildren())
	}
	if parent.ChildAt(0) != child {
		t.Error("ChildAt(0) should be child")
	}
}

func TestAddChildReparent(t *testing.T) {
	p1 := NewContainer("p1")
	p2 := NewContainer("p2")
	child := NewContainer("child")

	p1.AddChild(child)
	p2.AddChild(child)
	if p1.NumChildren() != 0 {
		t.Error("p1 should have 0 children after reparent")
	}
	if p2.NumChildren() != 1 {
		t.Error("p2 should have 1 child")
	}
	if child.Parent != p2 {
		t.Error("child.Parent should be p2")
	}
}

func TestAddChildCyclePanic(t *testing.T) {
	parent := NewContainer("parent")
	child := NewContainer("child")
	grandchild := NewContainer("grandchild")
	parent.AddChild(child)
	child.AddChild(grandchild)

	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic for cycle, got none")
		}
	}()
	grandchild.AddChild(parent) // should panic
}

func TestAddChildNilPanic(t *testing.T) {
	n := NewContainer("n")
	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic for nil child, got none")
		}
	}()
	n.AddChild(nil)
}

// --- RemoveChild ---

func TestRemoveChild(t *testing.T) {
	parent := NewContainer("parent")
	child := NewContainer("child")
	parent.AddChild(child)
	parent.RemoveChild(child)

	if parent.NumChildren() != 0 {
		t.Error("parent should have 0 children")
	}
	if child.Parent != nil {
		t.Error("child.Parent should be nil")
	}
}

func TestRemoveChildWrongParentPanic(t *testing.T) {
	parent := NewContainer("parent")
	other := NewContainer("other")
	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic for wrong parent, got none")
		}
	}()
	parent.RemoveChild(other)
}

func TestRemoveChildren(t *testing.T) {
	parent := NewContainer("parent")
	a := NewContainer("a")
	b := NewContainer("b")
	parent.AddChild(a)
	parent.AddChild(b)
	parent.RemoveChildren()

	if parent.NumChildren() != 0 {
		t.Error("parent should have 0 children")
	}
	if a.Parent != nil || b.Parent != nil {
		t.Error("children should be detached")
	}
}

// --- Dispose ---

func TestDisposeRecursive(t *testing.T) {
	parent := NewContainer("parent")
	child := NewContainer("child")
	grandchild := NewContainer("grandchild")
	parent.AddChild(child)
	child.AddChild(grandchild)

	parent.Dispose()
	if !parent.IsDisposed() || !child.IsDisposed() || !grandchild.IsDisposed() {
		t.Error("all descendants should be disposed")
	}
	if parent.NumChildren() != 0 {
		t.Error("disposed node should have no children")
	}
}

// --- Position helpers ---

func TestWorldPosition(t *testing.T) {
	root := NewContainer("root")
	root.X, root.Y = 100, 50
	child := NewContainer("child")
	child.X, child.Y = 10, 20
	root.AddChild(child)

	x, y := child.WorldPosition()
	if x != 110 || y != 70 {
		t.Errorf("WorldPosition = (%v, %v), want (110, 70)", x, y)
	}
}

func TestContainsGlobal(t *testing.T) {
	root := NewContainer("root")
	root.X = 100
	box := NewRect("box", 40, 20, ColorWhite)
	box.X, box.Y = 10, 10
	root.AddChild(box)

	tests := []struct {
		name string
		x, y float64
		want bool
	}{
		{"inside", 120, 20, true},
		{"top-left corner", 110, 10, true},
		{"bottom-right corner", 150, 30, true},
		{"outside left", 105, 20, false},
		{"outside below", 120, 35, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := box.containsGlobal(tt.x, tt.y); got != tt.want {
				t.Errorf("containsGlobal(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}
