package terminal

import (
	"fmt"
	"image/color"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/blockfall/piece"
	"github.com/plus3/blockfall/playfield"
	"github.com/plus3/blockfall/ui"
)

const (
	originX = 2
	originY = 1
	// Each board cell is two terminal columns wide so cells look square.
	cellWidth = 2
	panelX    = originX + playfield.Width*cellWidth + 3
)

var (
	borderStyle = tcell.StyleDefault.Foreground(tcell.ColorGray)
	textStyle   = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	emptyStyle  = tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
	overStyle   = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
)

func styleOf(c color.RGBA) tcell.Style {
	return tcell.StyleDefault.Foreground(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B)))
}

// drawScene paints sc onto screen and shows it.
func drawScene(screen tcell.Screen, sc ui.Scene) {
	screen.Clear()

	for y := range ui.VisibleRows {
		row := originY + y
		screen.SetContent(originX-1, row, '│', nil, borderStyle)
		screen.SetContent(originX+playfield.Width*cellWidth, row, '│', nil, borderStyle)
		for x, t := range sc.Tiles[y] {
			drawTile(screen, originX+x*cellWidth, row, t)
		}
	}
	bottom := originY + ui.VisibleRows
	screen.SetContent(originX-1, bottom, '└', nil, borderStyle)
	screen.SetContent(originX+playfield.Width*cellWidth, bottom, '┘', nil, borderStyle)
	for x := range playfield.Width * cellWidth {
		screen.SetContent(originX+x, bottom, '─', nil, borderStyle)
	}

	drawText(screen, panelX, originY, textStyle, "NEXT")
	drawPreview(screen, panelX, originY+1, sc.Next)

	holdStyle := textStyle
	if !sc.CanHold {
		holdStyle = emptyStyle
	}
	drawText(screen, panelX, originY+6, holdStyle, "HOLD")
	if sc.HasHeld {
		drawPreview(screen, panelX, originY+7, sc.Held)
	}

	drawText(screen, panelX, originY+12, textStyle, fmt.Sprintf("LEVEL %d", sc.Level))
	drawText(screen, panelX, originY+13, textStyle, fmt.Sprintf("LINES %d", sc.Lines))

	if sc.GameOver {
		drawText(screen, panelX, originY+15, overStyle, "GAME OVER")
		drawText(screen, panelX, originY+16, textStyle, "R to restart, Esc to quit")
	}

	screen.Show()
}

func drawTile(screen tcell.Screen, x, y int, t ui.Tile) {
	switch t.Layer {
	case ui.LayerLocked, ui.LayerActive:
		style := styleOf(t.Kind.Color())
		screen.SetContent(x, y, '█', nil, style)
		screen.SetContent(x+1, y, '█', nil, style)
	case ui.LayerGhost:
		style := styleOf(t.Kind.Color())
		screen.SetContent(x, y, '[', nil, style)
		screen.SetContent(x+1, y, ']', nil, style)
	default:
		screen.SetContent(x, y, ' ', nil, emptyStyle)
		screen.SetContent(x+1, y, '.', nil, emptyStyle)
	}
}

// drawPreview draws the shape of p with its top-left corner at (x, y).
func drawPreview(screen tcell.Screen, x, y int, p piece.Piece) {
	shape := p.Shape()
	style := styleOf(p.Color())
	for r := range shape.Size() {
		for c := range shape.Size() {
			if shape.At(c, r) {
				screen.SetContent(x+c*cellWidth, y+r, '█', nil, style)
				screen.SetContent(x+c*cellWidth+1, y+r, '█', nil, style)
			}
		}
	}
}

func drawText(screen tcell.Screen, x, y int, style tcell.Style, text string) {
	for i, r := range []rune(text) {
		screen.SetContent(x+i, y, r, nil, style)
	}
}
