package knobs

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestIdempotentDefaulting(t *testing.T) {
	key := SiteAt("pad.go", 5, 0)
	var observed []float64
	p := NewPanel(func(ctx *Context) *Node {
		TweakAt(ctx, key, "padding", 10.0, Slider(0, 100), func(v float64) *Node {
			observed = append(observed, v)
			return nil
		})
		return nil
	})

	for i := 0; i < 3; i++ {
		p.Rebuild()
	}

	if diff := cmp.Diff([]float64{10, 10, 10}, observed); diff != "" {
		t.Errorf("resolved values (-want +got):\n%s", diff)
	}
}

func TestValueRetentionAcrossPasses(t *testing.T) {
	key := SiteAt("pad.go", 5, 0)
	var observed float64
	p := NewPanel(func(ctx *Context) *Node {
		TweakAt(ctx, key, "padding", 10.0, Slider(0, 100), func(v float64) *Node {
			observed = v
			return nil
		})
		return nil
	})

	p.Rebuild()
	if observed != 10 {
		t.Fatalf("initial value = %v, want default 10", observed)
	}

	Cell{panel: p, key: key}.Set(20.0)
	p.Rebuild()
	if observed != 20 {
		t.Errorf("value after edit = %v, want 20", observed)
	}
	if v, _ := p.Value(key); v != 20.0 {
		t.Errorf("stored value = %v, want 20", v)
	}

	// The edit survives further unedited passes.
	p.Rebuild()
	if observed != 20 {
		t.Errorf("value after another pass = %v, want 20", observed)
	}
}

func TestDropOnUnmount(t *testing.T) {
	key := SiteAt("pad.go", 5, 0)
	mounted := true
	var observed float64
	p := NewPanel(func(ctx *Context) *Node {
		if mounted {
			TweakAt(ctx, key, "padding", 10.0, Slider(0, 100), func(v float64) *Node {
				observed = v
				return nil
			})
		}
		return nil
	})

	// Pass 1: mounted, edited.
	p.Rebuild()
	Cell{panel: p, key: key}.Set(99.0)

	// Pass 2: unmounted, entry dropped from both tables.
	mounted = false
	p.Rebuild()
	if len(p.Sites()) != 0 {
		t.Errorf("definition table has %d sites after unmount, want 0", len(p.Sites()))
	}
	if _, ok := p.Value(key); ok {
		t.Error("value table should drop an unmounted site")
	}

	// Pass 3: remounted, reset to default, edit forgotten.
	mounted = true
	p.Rebuild()
	if observed != 10 {
		t.Errorf("remounted value = %v, want default 10", observed)
	}
}

func TestMissingRootFallback(t *testing.T) {
	var observed float64
	content := Tweak(Detached(), "padding", 10.0, Slider(0, 100), func(v float64) *Node {
		observed = v
		return NewContainer("content")
	})
	if observed != 10 {
		t.Errorf("detached value = %v, want default 10", observed)
	}
	if content == nil || content.Name != "content" {
		t.Error("content should still be built without a root")
	}

	observed = 0
	Tweak(nil, "padding", 25.0, Slider(0, 100), func(v float64) *Node {
		observed = v
		return nil
	})
	if observed != 25 {
		t.Errorf("nil-context value = %v, want default 25", observed)
	}
}

func TestTypeMismatchFallsBackToDefault(t *testing.T) {
	key := SiteAt("pad.go", 5, 0)
	useString := true
	var observedInt int
	p := NewPanel(func(ctx *Context) *Node {
		if useString {
			TweakAt(ctx, key, "mode", "fast", nil, func(string) *Node { return nil })
		} else {
			TweakAt(ctx, key, "count", 3, Stepper(0, 9), func(v int) *Node {
				observedInt = v
				return nil
			})
		}
		return nil
	})

	// Pass 1 stores a string at the key.
	p.Rebuild()

	// Pass 2 reads the same key as int: the stored string must not leak
	// through; the annotation falls back to its own default.
	useString = false
	p.Rebuild()
	if observedInt != 3 {
		t.Errorf("mismatched read = %d, want default 3", observedInt)
	}
}

func TestEmissionEveryPass(t *testing.T) {
	key := SiteAt("pad.go", 5, 0)
	p := NewPanel(func(ctx *Context) *Node {
		TweakAt(ctx, key, "padding", 10.0, Slider(0, 100), nil)
		return nil
	})

	for i := 0; i < 3; i++ {
		p.Rebuild()
		if len(p.Sites()) != 1 {
			t.Fatalf("pass %d: %d sites, want 1 (table is rebuilt each pass)", i+1, len(p.Sites()))
		}
	}
}

func TestDisplayOrderIgnoresEmissionOrder(t *testing.T) {
	early := SiteAt("a.x", 5, 1)
	late := SiteAt("a.x", 10, 2)
	p := NewPanel(func(ctx *Context) *Node {
		// Emitted in reverse source order on purpose.
		TweakAt(ctx, late, "late", 1.0, Slider(0, 10), nil)
		TweakAt(ctx, early, "early", 2.0, Slider(0, 10), nil)
		return nil
	})
	p.Rebuild()

	want := []SiteKey{early, late}
	if diff := cmp.Diff(want, p.Sites()); diff != "" {
		t.Errorf("display order (-want +got):\n%s", diff)
	}
}

func TestTweakScenario(t *testing.T) {
	padKey := SiteAt("demo.go", 5, 0)
	colorKey := SiteAt("demo.go", 9, 0)

	var gotPadding float64
	var gotColor Color
	p := NewPanel(func(ctx *Context) *Node {
		TweakAt(ctx, padKey, "padding", 10.0, Slider(0, 100), func(v float64) *Node {
			gotPadding = v
			return nil
		})
		TweakAt(ctx, colorKey, "color", ColorWhite, ColorPicker(), func(c Color) *Node {
			gotColor = c
			return nil
		})
		return nil
	})

	// Initial render: two definitions, both values at defaults.
	p.Rebuild()
	if len(p.Sites()) != 2 {
		t.Fatalf("sites = %d, want 2", len(p.Sites()))
	}
	if gotPadding != 10 || gotColor != ColorWhite {
		t.Fatalf("defaults = (%v, %v), want (10, white)", gotPadding, gotColor)
	}

	// Edit padding, re-render: padding at 20, color untouched.
	Cell{panel: p, key: padKey}.Set(20.0)
	p.Rebuild()
	if gotPadding != 20 {
		t.Errorf("padding = %v, want 20", gotPadding)
	}
	if gotColor != ColorWhite {
		t.Errorf("color = %v, want white", gotColor)
	}
}

func TestTweakAutoSiteIdentity(t *testing.T) {
	var count int
	p := NewPanel(func(ctx *Context) *Node {
		// One static call site executed three times: one shared identity.
		for i := 0; i < 3; i++ {
			TweakBool(ctx, "flag", false, func(bool) *Node {
				count++
				return nil
			})
		}
		return nil
	})
	p.Rebuild()

	if len(p.Sites()) != 1 {
		t.Errorf("sites = %d, want 1 shared site", len(p.Sites()))
	}
	if count != 3 {
		t.Errorf("content built %d times, want 3", count)
	}
	if p.defs.Collisions() != 2 {
		t.Errorf("collisions = %d, want 2", p.defs.Collisions())
	}
}
