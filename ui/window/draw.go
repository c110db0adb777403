package window

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/plus3/blockfall/piece"
	"github.com/plus3/blockfall/playfield"
	"github.com/plus3/blockfall/ui"
)

const (
	CellSize     = 28
	boardX       = 20
	boardY       = 20
	panelX       = boardX + playfield.Width*CellSize + 30
	previewCell  = 20
	ScreenWidth  = panelX + 5*previewCell + 20
	ScreenHeight = boardY*2 + ui.VisibleRows*CellSize
	ghostAlpha   = 0x50
)

var (
	background = color.RGBA{24, 24, 32, 255}
	gridColor  = color.RGBA{40, 40, 52, 255}
	frameColor = color.RGBA{120, 120, 140, 255}
	shadeColor = color.RGBA{0, 0, 0, 0xb0}
)

// cellOrigin is the top-left pixel of board cell (x, y), with y counted from the top
// visible row.
func cellOrigin(x, y int) (float32, float32) {
	return float32(boardX + x*CellSize), float32(boardY + y*CellSize)
}

func ghostColor(c color.RGBA) color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: ghostAlpha}
}

func drawScene(screen *ebiten.Image, sc ui.Scene) {
	screen.Fill(background)

	for y := range ui.VisibleRows {
		for x, t := range sc.Tiles[y] {
			px, py := cellOrigin(x, y)
			switch t.Layer {
			case ui.LayerLocked, ui.LayerActive:
				vector.DrawFilledRect(screen, px+1, py+1, CellSize-2, CellSize-2, t.Kind.Color(), false)
			case ui.LayerGhost:
				vector.DrawFilledRect(screen, px+1, py+1, CellSize-2, CellSize-2, ghostColor(t.Kind.Color()), false)
			default:
				vector.StrokeRect(screen, px, py, CellSize, CellSize, 1, gridColor, false)
			}
		}
	}
	vector.StrokeRect(screen, boardX-1, boardY-1, playfield.Width*CellSize+2, ui.VisibleRows*CellSize+2, 2, frameColor, false)

	ebitenutil.DebugPrintAt(screen, "NEXT", panelX, boardY)
	drawPreview(screen, panelX, boardY+20, sc.Next, 255)

	ebitenutil.DebugPrintAt(screen, "HOLD", panelX, boardY+120)
	if sc.HasHeld {
		alpha := uint8(255)
		if !sc.CanHold {
			alpha = ghostAlpha
		}
		drawPreview(screen, panelX, boardY+140, sc.Held, alpha)
	}

	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("LEVEL %d\nLINES %d", sc.Level, sc.Lines), panelX, boardY+240)

	if sc.GameOver {
		vector.DrawFilledRect(screen, boardX, boardY, playfield.Width*CellSize, ui.VisibleRows*CellSize, shadeColor, false)
		ebitenutil.DebugPrintAt(screen, "GAME OVER\n\nR to restart\nEsc to quit", boardX+CellSize*3, boardY+CellSize*9)
	}
}

func drawPreview(screen *ebiten.Image, x, y int, p piece.Piece, alpha uint8) {
	shape := p.Shape()
	c := p.Color()
	fill := color.NRGBA{R: c.R, G: c.G, B: c.B, A: alpha}
	for r := range shape.Size() {
		for col := range shape.Size() {
			if shape.At(col, r) {
				px := float32(x + col*previewCell)
				py := float32(y + r*previewCell)
				vector.DrawFilledRect(screen, px+1, py+1, previewCell-2, previewCell-2, fill, false)
			}
		}
	}
}
