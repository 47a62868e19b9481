// Package knobs provides a live-tweak overlay for [Ebitengine] applications.
//
// A developer annotates points of a per-frame build function with tweakable
// parameters (named, typed values with a default and an inline editor)
// without maintaining a registry. Each annotation is identified by its source
// position. Every frame, all active annotations contribute their editor
// descriptions to a single panel, and edits made in the panel feed back into
// the tree so the next frame reflects the new value.
//
// # Quick start
//
// Wrap your per-frame build logic in a [Panel] and declare tweaks inline:
//
//	panel := knobs.NewPanel(func(ctx *knobs.Context) *knobs.Node {
//		root := knobs.NewContainer("app")
//		knobs.TweakFloat(ctx, "speed", 2.0, 0, 10, func(speed float64) *knobs.Node {
//			world.Speed = speed
//			return nil
//		})
//		knobs.TweakColor(ctx, "box color", knobs.ColorWhite, func(c knobs.Color) *knobs.Node {
//			box := knobs.NewRect("box", 40, 40, c)
//			root.AddChild(box)
//			return box
//		})
//		return root
//	})
//	knobs.Run(panel, knobs.RunConfig{Title: "My Game", Width: 640, Height: 480})
//
// For full control, implement [ebiten.Game] yourself and call [Panel.Update]
// and [Panel.Draw] directly:
//
//	type Game struct{ panel *knobs.Panel }
//
//	func (g *Game) Update() error              { g.panel.Update(); return nil }
//	func (g *Game) Draw(s *ebiten.Image)       { g.panel.Draw(s) }
//	func (g *Game) Layout(w, h int) (int, int) { return w, h }
//
// # How it works
//
// Each pass (frame), the panel broadcasts a read-only snapshot of its value
// table down through the [Context] handed to the build function. Every
// [Tweak] reads the value for its own site (falling back to its default),
// builds its content once with the resolved value, and emits its editor
// descriptor into the pass sink. The panel merges all emissions into a fresh
// definition table, derives the next value table (prior values retained,
// new sites default-initialized, unmounted sites dropped), and lists one
// editor per site sorted by source position.
//
// Identity is the annotation's call site: the same line always maps to the
// same editor, across frames, with no registration step. Helpers declaring
// tweaks for their callers can pass an explicit key via [TweakAt].
//
// A tweak built with no enclosing panel ([Detached] context, or a nil one)
// resolves to its default and is otherwise inert.
//
// Values are not persisted across restarts, and a panel's sites are not
// shared with other panels.
//
// # Editors
//
// Stock editors cover the common value types: [Checkbox] (bool), [Slider]
// (float64), [Stepper] (int), and [ColorPicker] ([Color]). Custom editors are
// plain functions from a label and a typed cell to a widget [Node]; they read
// the cell's current value and write edits back through the same cell.
//
// [Ebitengine]: https://ebitengine.org
package knobs
