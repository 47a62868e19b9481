package knobs

import (
	"fmt"
	"strconv"
)

// Editor widget metrics. Rows are editorRowHeight tall; every stock editor
// lays itself out within one row, with its own origin at the row's editor
// column.
const (
	editorRowHeight   = 22.0
	checkboxSize      = 14.0
	sliderTrackWidth  = 100.0
	sliderTrackHeight = 4.0
	sliderHandleSize  = 10.0
	stepperButtonSize = 14.0
	colorSwatchSize   = 14.0
	colorBarWidth     = 100.0
	colorBarHeight    = 3.0
)

// Editor palette.
var (
	colorFrame    = Color{0.35, 0.35, 0.42, 1}
	colorAccent   = Color{0.30, 0.65, 1, 1}
	colorTrack    = Color{0.22, 0.22, 0.28, 1}
	colorRedBar   = Color{0.85, 0.30, 0.30, 1}
	colorGreenBar = Color{0.30, 0.80, 0.35, 1}
	colorBlueBar  = Color{0.35, 0.45, 0.95, 1}
	colorAlphaBar = Color{0.65, 0.65, 0.65, 1}
)

// Checkbox returns an Editor[bool]: a clickable box with an accent fill when
// the value is true.
func Checkbox() Editor[bool] {
	return func(label string, cell TypedCell[bool]) *Node {
		root := NewContainer("checkbox:" + label)

		box := NewRect("box", checkboxSize, checkboxSize, colorFrame)
		box.Y = (editorRowHeight - checkboxSize) / 2
		box.Interactable = true
		box.OnClick = func(ClickContext) {
			cell.Set(!cell.Get())
		}

		fill := NewRect("fill", checkboxSize-6, checkboxSize-6, colorAccent)
		fill.X = 3
		fill.Y = 3
		fill.Visible = cell.Get()
		box.AddChild(fill)

		root.AddChild(box)
		return root
	}
}

// Slider returns an Editor[float64]: a horizontal track with a draggable
// handle mapping linearly onto [min, max], plus a numeric readout.
// Panics if max <= min.
func Slider(min, max float64) Editor[float64] {
	if max <= min {
		panic("knobs: slider range must have max > min")
	}
	return func(label string, cell TypedCell[float64]) *Node {
		root := NewContainer("slider:" + label)

		track := NewRect("track", sliderTrackWidth, sliderTrackHeight, colorTrack)
		track.Y = (editorRowHeight - sliderTrackHeight) / 2
		track.Interactable = true

		setFromGlobalX := func(gx float64) {
			tx, _ := track.WorldPosition()
			t := clamp01((gx - tx) / sliderTrackWidth)
			cell.Set(min + t*(max-min))
		}
		track.OnPointerDown = func(ctx PointerContext) { setFromGlobalX(ctx.GlobalX) }
		track.OnDrag = func(ctx DragContext) { setFromGlobalX(ctx.GlobalX) }
		track.OnDragEnd = func(ctx DragContext) { setFromGlobalX(ctx.GlobalX) }

		t := clamp01((cell.Get() - min) / (max - min))
		handle := NewRect("handle", sliderHandleSize, sliderHandleSize, colorAccent)
		handle.X = t * (sliderTrackWidth - sliderHandleSize)
		handle.Y = -(sliderHandleSize - sliderTrackHeight) / 2
		track.AddChild(handle)

		readout := NewLabel("value", fmt.Sprintf("%.2f", cell.Get()))
		readout.X = sliderTrackWidth + 6
		readout.Y = 4

		root.AddChild(track)
		root.AddChild(readout)
		return root
	}
}

// Stepper returns an Editor[int]: minus and plus buttons around a numeric
// readout, clamped to [min, max]. Panics if max < min.
func Stepper(min, max int) Editor[int] {
	if max < min {
		panic("knobs: stepper range must have max >= min")
	}
	return func(label string, cell TypedCell[int]) *Node {
		root := NewContainer("stepper:" + label)

		minus := stepperButton("minus", "-", func() {
			if v := cell.Get() - 1; v >= min {
				cell.Set(v)
			}
		})

		readout := NewLabel("value", strconv.Itoa(cell.Get()))
		readout.X = stepperButtonSize + 8
		readout.Y = 4

		plus := stepperButton("plus", "+", func() {
			if v := cell.Get() + 1; v <= max {
				cell.Set(v)
			}
		})
		plus.X = stepperButtonSize + 38

		root.AddChild(minus)
		root.AddChild(readout)
		root.AddChild(plus)
		return root
	}
}

// stepperButton builds one clickable square button with a glyph.
func stepperButton(name, glyph string, onClick func()) *Node {
	btn := NewRect(name, stepperButtonSize, stepperButtonSize, colorFrame)
	btn.Y = (editorRowHeight - stepperButtonSize) / 2
	btn.Interactable = true
	btn.OnClick = func(ClickContext) { onClick() }

	text := NewLabel(name+"-glyph", glyph)
	text.X = 4
	text.Y = -1
	btn.AddChild(text)
	return btn
}

// ColorPicker returns an Editor[Color]: a swatch showing the current color
// next to four draggable channel bars (R, G, B, A).
func ColorPicker() Editor[Color] {
	return func(label string, cell TypedCell[Color]) *Node {
		root := NewContainer("color:" + label)

		swatch := NewRect("swatch", colorSwatchSize, colorSwatchSize, cell.Get())
		swatch.Y = (editorRowHeight - colorSwatchSize) / 2
		root.AddChild(swatch)

		bars := []struct {
			name  string
			tint  Color
			read  func(Color) float64
			write func(*Color, float64)
		}{
			{"r", colorRedBar, func(c Color) float64 { return c.R }, func(c *Color, v float64) { c.R = v }},
			{"g", colorGreenBar, func(c Color) float64 { return c.G }, func(c *Color, v float64) { c.G = v }},
			{"b", colorBlueBar, func(c Color) float64 { return c.B }, func(c *Color, v float64) { c.B = v }},
			{"a", colorAlphaBar, func(c Color) float64 { return c.A }, func(c *Color, v float64) { c.A = v }},
		}

		for i, bar := range bars {
			track := NewRect("bar:"+bar.name, colorBarWidth, colorBarHeight, colorTrack)
			track.X = colorSwatchSize + 8
			track.Y = 1 + float64(i)*(colorBarHeight+2)
			track.Interactable = true

			level := NewRect("level:"+bar.name, clamp01(bar.read(cell.Get()))*colorBarWidth, colorBarHeight, bar.tint)
			track.AddChild(level)

			write := bar.write
			setFromGlobalX := func(gx float64) {
				tx, _ := track.WorldPosition()
				t := clamp01((gx - tx) / colorBarWidth)
				c := cell.Get()
				write(&c, t)
				cell.Set(c)
			}
			track.OnPointerDown = func(ctx PointerContext) { setFromGlobalX(ctx.GlobalX) }
			track.OnDrag = func(ctx DragContext) { setFromGlobalX(ctx.GlobalX) }
			track.OnDragEnd = func(ctx DragContext) { setFromGlobalX(ctx.GlobalX) }

			root.AddChild(track)
		}

		return root
	}
}
