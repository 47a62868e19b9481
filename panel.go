package knobs

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Panel chrome metrics and palette.
const (
	panelWidth        = 280.0
	panelPadding      = 8.0
	panelHeaderHeight = 24.0
	labelColumnWidth  = 104.0
	rowHeight         = editorRowHeight
	slideDuration     = 0.25 // seconds

	defaultScreenW = 640
	defaultScreenH = 480
)

var (
	colorPanelBG  = Color{0.09, 0.09, 0.12, 0.92}
	colorHeaderBG = Color{0.14, 0.14, 0.19, 1}
)

// passState tracks where the Panel is within one collection pass.
type passState uint8

const (
	passIdle       passState = iota // no pass has run yet
	passCollecting                  // build in progress, sink open
	passSettled                     // tables finalized for this pass
)

// BuildFunc produces the application's content tree for one pass. It is
// re-invoked every pass with a fresh Context; tweak values resolved inside it
// reflect the snapshot broadcast for that pass. The returned tree may be nil
// for applications that draw their own content and only want the overlay.
type BuildFunc func(ctx *Context) *Node

// Panel is the collection root. It owns the definition and value tables,
// drives the per-pass collect/derive cycle, and renders one editor per
// distinct annotation site, sorted by source position.
//
// A Panel is single-threaded: call Update and Draw from the host game loop
// only, like any other ebiten state.
type Panel struct {
	build BuildFunc

	// Pass state. Both tables are owned and mutated exclusively by the
	// Panel; descendants see value snapshots and write through Cells.
	state  passState
	pass   uint64
	defs   *Definitions
	values Values

	// Trees from the last settled pass.
	content *Node
	root    *Node

	// Overlay chrome
	open             bool
	slide            *gween.Tween
	slideX           float64 // 0 = fully open, panelWidth = fully hidden
	screenW, screenH int
	toggleKey        ebiten.Key
	toggleHeld       bool

	// Input
	pointer     pointerState
	hitBuf      []*Node
	injectQueue []syntheticPointerEvent

	debug bool
}

// NewPanel creates a collection root over the given build function.
// The overlay starts open and toggles with the Tab key.
func NewPanel(build BuildFunc) *Panel {
	return &Panel{
		build:     build,
		defs:      NewDefinitions(),
		open:      true,
		toggleKey: ebiten.KeyTab,
		screenW:   defaultScreenW,
		screenH:   defaultScreenH,
	}
}

// SetToggleKey changes the key that shows/hides the overlay.
func (p *Panel) SetToggleKey(key ebiten.Key) {
	p.toggleKey = key
}

// Value returns the current value stored for the given site, if it is live.
func (p *Panel) Value(key SiteKey) (any, bool) {
	return p.values.Get(key)
}

// Sites returns the live annotation sites in display order.
func (p *Panel) Sites() []SiteKey {
	return p.defs.Keys()
}

// Pass returns the number of completed passes.
func (p *Panel) Pass() uint64 {
	return p.pass
}

// setValue is the edit entry point used by Cells. Edits targeting a site no
// longer present in the value table are dropped silently: the site has
// unmounted and its editor will not reappear until remounted.
func (p *Panel) setValue(key SiteKey, v any) {
	if _, ok := p.values.Get(key); !ok {
		return
	}
	p.values.m[key] = v
}

// Rebuild runs one full collection pass: broadcast the current snapshot down
// through a fresh Context, invoke the build function, merge the emitted
// definitions, derive the next value table, and rebuild the overlay.
//
// Update calls this once per frame; call it directly for headless use.
func (p *Panel) Rebuild() {
	p.state = passCollecting
	p.pass++

	var stats passStats
	t0 := time.Now()

	sink := NewDefinitions()
	ctx := &Context{values: p.values, sink: sink}

	var content *Node
	if p.build != nil {
		content = p.build(ctx)
	}
	stats.buildTime = time.Since(t0)
	t0 = time.Now()

	p.defs = sink
	p.values = deriveValues(p.values, sink)
	p.content = content
	stats.deriveTime = time.Since(t0)
	t0 = time.Now()

	p.rebuildOverlay()
	p.state = passSettled

	stats.overlayTime = time.Since(t0)
	stats.siteCount = sink.Len()
	stats.collisionCount = sink.Collisions()
	p.debugLog(stats)
}

// rebuildOverlay builds the panel chrome and one editor row per site. The
// previous overlay tree is dropped, not disposed: an in-progress drag may
// still hold a node from it, and its cell callbacks stay valid.
func (p *Panel) rebuildOverlay() {
	keys := p.defs.Keys()

	totalHeight := panelHeaderHeight + 2*panelPadding + float64(len(keys))*rowHeight

	root := NewContainer("knobs-panel")
	root.X = float64(p.screenW) - panelWidth + p.slideX

	bg := NewRect("bg", panelWidth, totalHeight, colorPanelBG)
	root.AddChild(bg)

	header := NewRect("header", panelWidth, panelHeaderHeight, colorHeaderBG)
	header.Interactable = true
	header.OnClick = func(ClickContext) { p.Toggle() }
	title := NewLabel("title", "knobs")
	title.X = panelPadding
	title.Y = 4
	header.AddChild(title)
	root.AddChild(header)

	for i, key := range keys {
		desc, _ := p.defs.Get(key)

		row := NewContainer("row:" + desc.Label)
		row.Y = panelHeaderHeight + panelPadding + float64(i)*rowHeight

		label := NewLabel("label", desc.Label)
		label.X = panelPadding
		label.Y = 4
		row.AddChild(label)

		if editor := desc.BuildEditor(Cell{panel: p, key: key}); editor != nil {
			editor.X = labelColumnWidth
			row.AddChild(editor)
		}
		root.AddChild(row)
	}

	p.root = root
}

// --- Overlay visibility ---

// SetOpen shows or hides the overlay with a slide animation.
func (p *Panel) SetOpen(open bool) {
	if p.open == open {
		return
	}
	p.open = open
	to := float32(0)
	if !open {
		to = panelWidth
	}
	p.slide = gween.New(float32(p.slideX), to, slideDuration, ease.OutQuad)
}

// Toggle flips the overlay between open and hidden.
func (p *Panel) Toggle() {
	p.SetOpen(!p.open)
}

// IsOpen reports whether the overlay is open (or sliding open).
func (p *Panel) IsOpen() bool {
	return p.open
}

// --- Frame loop ---

// Update advances the panel by one frame: toggle key, pointer input, slide
// animation, and one full collection pass. Call once per ebiten Update.
func (p *Panel) Update() {
	p.processToggleKey()
	p.processInput()

	if p.slide != nil {
		dt := float32(1.0) / float32(ebiten.TPS())
		v, done := p.slide.Update(dt)
		p.slideX = float64(v)
		if done {
			p.slide = nil
		}
	}

	p.Rebuild()
}

// processToggleKey edge-detects the toggle key.
func (p *Panel) processToggleKey() {
	pressed := ebiten.IsKeyPressed(p.toggleKey)
	if pressed && !p.toggleHeld {
		p.Toggle()
	}
	p.toggleHeld = pressed
}

// Draw renders the content tree (if the build function returns one) and the
// overlay on top. Call once per ebiten Draw.
func (p *Panel) Draw(screen *ebiten.Image) {
	b := screen.Bounds()
	p.screenW, p.screenH = b.Dx(), b.Dy()

	if p.content != nil {
		drawNode(screen, p.content, 0, 0, 1)
	}
	if p.root != nil && p.slideX < panelWidth {
		p.root.X = float64(p.screenW) - panelWidth + p.slideX
		drawNode(screen, p.root, 0, 0, 1)
	}
}
