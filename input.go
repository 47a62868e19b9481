package knobs

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

const dragDeadZone = 4.0 // pixels

// pointerState tracks the single mouse pointer across frames.
type pointerState struct {
	down     bool
	startX   float64
	startY   float64
	lastX    float64
	lastY    float64
	hitNode  *Node
	dragging bool
	button   MouseButton
}

// readModifiers reads the current keyboard modifier state.
func readModifiers() KeyModifiers {
	var mods KeyModifiers
	if ebiten.IsKeyPressed(ebiten.KeyShift) || ebiten.IsKeyPressed(ebiten.KeyShiftLeft) || ebiten.IsKeyPressed(ebiten.KeyShiftRight) {
		mods |= ModShift
	}
	if ebiten.IsKeyPressed(ebiten.KeyControl) || ebiten.IsKeyPressed(ebiten.KeyControlLeft) || ebiten.IsKeyPressed(ebiten.KeyControlRight) {
		mods |= ModCtrl
	}
	if ebiten.IsKeyPressed(ebiten.KeyAlt) || ebiten.IsKeyPressed(ebiten.KeyAltLeft) || ebiten.IsKeyPressed(ebiten.KeyAltRight) {
		mods |= ModAlt
	}
	if ebiten.IsKeyPressed(ebiten.KeyMeta) || ebiten.IsKeyPressed(ebiten.KeyMetaLeft) || ebiten.IsKeyPressed(ebiten.KeyMetaRight) {
		mods |= ModMeta
	}
	return mods
}

// processInput is called from Panel.Update to handle pointer input. Injected
// events take priority over the real mouse, one per frame.
func (p *Panel) processInput() {
	mods := readModifiers()
	if p.processInjectedInput(mods) {
		return
	}

	mx, my := ebiten.CursorPosition()

	// Detect which button is pressed. If the pointer is already down, the
	// stored button is used for the rest of the interaction.
	var pressed bool
	var button MouseButton
	left := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	right := ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight)
	middle := ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle)
	if left || right || middle {
		pressed = true
		if left {
			button = MouseButtonLeft
		} else if right {
			button = MouseButtonRight
		} else {
			button = MouseButtonMiddle
		}
	}

	p.processPointer(float64(mx), float64(my), pressed, button, mods)
}

// collectInteractable appends visible interactable nodes in painter order.
func collectInteractable(n *Node, buf []*Node) []*Node {
	if n == nil || !n.Visible {
		return buf
	}
	if n.Interactable {
		buf = append(buf, n)
	}
	for _, child := range n.children {
		buf = collectInteractable(child, buf)
	}
	return buf
}

// hitTest finds the topmost interactable node at (x, y) in screen space.
// The overlay draws above the content tree, so it wins overlapping hits.
// Returns nil if nothing is hit.
func (p *Panel) hitTest(x, y float64) *Node {
	p.hitBuf = collectInteractable(p.content, p.hitBuf[:0])
	p.hitBuf = collectInteractable(p.root, p.hitBuf)

	// Iterate backward (reverse painter order): topmost visual node first.
	for i := len(p.hitBuf) - 1; i >= 0; i-- {
		n := p.hitBuf[i]
		if n.containsGlobal(x, y) {
			return n
		}
	}
	return nil
}

// processPointer runs the pointer state machine for one sample.
func (p *Panel) processPointer(x, y float64, pressed bool, button MouseButton, mods KeyModifiers) {
	ps := &p.pointer

	var target *Node
	if ps.down && ps.hitNode != nil {
		// Mid-interaction: stay captured on the pressed node so drags keep
		// firing when the pointer leaves its bounds.
		target = ps.hitNode
	} else {
		target = p.hitTest(x, y)
	}

	switch {
	case pressed && !ps.down:
		// Just pressed: capture button for the duration of this interaction.
		ps.down = true
		ps.button = button
		ps.startX = x
		ps.startY = y
		ps.lastX = x
		ps.lastY = y
		ps.hitNode = target
		ps.dragging = false
		firePointerDown(target, x, y, ps.button, mods)

	case !pressed && ps.down:
		// Just released: use button from press start.
		if ps.dragging {
			fireDragEnd(ps.hitNode, x, y, ps.startX, ps.startY,
				x-ps.lastX, y-ps.lastY, ps.button, mods)
		} else if ps.hitNode != nil && ps.hitNode == p.hitTest(x, y) {
			fireClick(ps.hitNode, x, y, ps.button, mods)
		}
		firePointerUp(target, x, y, ps.button, mods)
		ps.down = false
		ps.hitNode = nil
		ps.dragging = false

	case pressed && ps.down:
		// Held down, possibly moved.
		if x != ps.lastX || y != ps.lastY {
			if !ps.dragging {
				dx := x - ps.startX
				dy := y - ps.startY
				if math.Sqrt(dx*dx+dy*dy) > dragDeadZone {
					ps.dragging = true
					fireDragStart(ps.hitNode, x, y, ps.startX, ps.startY,
						x-ps.startX, y-ps.startY, ps.button, mods)
				}
			}
			if ps.dragging {
				fireDrag(ps.hitNode, x, y, ps.startX, ps.startY,
					x-ps.lastX, y-ps.lastY, ps.button, mods)
			}
			ps.lastX = x
			ps.lastY = y
		}
	}
}

// --- Event dispatch ---

func firePointerDown(n *Node, gx, gy float64, button MouseButton, mods KeyModifiers) {
	if n == nil || n.OnPointerDown == nil {
		return
	}
	wx, wy := n.WorldPosition()
	n.OnPointerDown(PointerContext{
		Node: n, GlobalX: gx, GlobalY: gy,
		LocalX: gx - wx, LocalY: gy - wy,
		Button: button, Modifiers: mods,
	})
}

func firePointerUp(n *Node, gx, gy float64, button MouseButton, mods KeyModifiers) {
	if n == nil || n.OnPointerUp == nil {
		return
	}
	wx, wy := n.WorldPosition()
	n.OnPointerUp(PointerContext{
		Node: n, GlobalX: gx, GlobalY: gy,
		LocalX: gx - wx, LocalY: gy - wy,
		Button: button, Modifiers: mods,
	})
}

func fireClick(n *Node, gx, gy float64, button MouseButton, mods KeyModifiers) {
	if n == nil || n.OnClick == nil {
		return
	}
	wx, wy := n.WorldPosition()
	n.OnClick(ClickContext{
		Node: n, GlobalX: gx, GlobalY: gy,
		LocalX: gx - wx, LocalY: gy - wy,
		Button: button, Modifiers: mods,
	})
}

func fireDragStart(n *Node, gx, gy, sx, sy, dx, dy float64, button MouseButton, mods KeyModifiers) {
	if n == nil || n.OnDragStart == nil {
		return
	}
	wx, wy := n.WorldPosition()
	n.OnDragStart(DragContext{
		Node: n, GlobalX: gx, GlobalY: gy,
		LocalX: gx - wx, LocalY: gy - wy,
		StartX: sx, StartY: sy, DeltaX: dx, DeltaY: dy,
		Button: button, Modifiers: mods,
	})
}

func fireDrag(n *Node, gx, gy, sx, sy, dx, dy float64, button MouseButton, mods KeyModifiers) {
	if n == nil || n.OnDrag == nil {
		return
	}
	wx, wy := n.WorldPosition()
	n.OnDrag(DragContext{
		Node: n, GlobalX: gx, GlobalY: gy,
		LocalX: gx - wx, LocalY: gy - wy,
		StartX: sx, StartY: sy, DeltaX: dx, DeltaY: dy,
		Button: button, Modifiers: mods,
	})
}

func fireDragEnd(n *Node, gx, gy, sx, sy, dx, dy float64, button MouseButton, mods KeyModifiers) {
	if n == nil || n.OnDragEnd == nil {
		return
	}
	wx, wy := n.WorldPosition()
	n.OnDragEnd(DragContext{
		Node: n, GlobalX: gx, GlobalY: gy,
		LocalX: gx - wx, LocalY: gy - wy,
		StartX: sx, StartY: sy, DeltaX: dx, DeltaY: dy,
		Button: button, Modifiers: mods,
	})
}
