package knobs

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// drawNode renders n and its subtree into screen in painter order (self first,
// then children front to back). Rectangles are drawn by scaling the shared
// WhitePixel; text uses ebiten's debug font, which ignores Alpha and Color.
func drawNode(screen *ebiten.Image, n *Node, parentX, parentY, parentAlpha float64) {
	if n == nil || !n.Visible {
		return
	}
	x := parentX + n.X
	y := parentY + n.Y
	alpha := parentAlpha * n.Alpha

	switch n.Type {
	case NodeTypeRect:
		if n.Width > 0 && n.Height > 0 && alpha > 0 {
			op := &ebiten.DrawImageOptions{}
			op.GeoM.Scale(n.Width, n.Height)
			op.GeoM.Translate(x, y)
			op.ColorScale.Scale(
				float32(n.Color.R), float32(n.Color.G),
				float32(n.Color.B), float32(n.Color.A),
			)
			op.ColorScale.ScaleAlpha(float32(alpha))
			screen.DrawImage(WhitePixel, op)
		}
	case NodeTypeText:
		if n.Text != "" {
			ebitenutil.DebugPrintAt(screen, n.Text, int(x), int(y))
		}
	}

	for _, child := range n.children {
		drawNode(screen, child, x, y, alpha)
	}
}
