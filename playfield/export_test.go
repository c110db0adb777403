package playfield

import "github.com/plus3/blockfall/piece"

// Fill marks cells as locked, bypassing the lock path.
func (p *Playfield) Fill(cells ...piece.Point) {
	for _, pt := range cells {
		p.board[pt.Y][pt.X] = filledCell(piece.Z)
	}
}

// FillRow locks every cell of row except the listed columns.
func (p *Playfield) FillRow(row int, except ...int) {
	skip := make(map[int]bool, len(except))
	for _, x := range except {
		skip[x] = true
	}
	for x := range Width {
		if !skip[x] {
			p.board[row][x] = filledCell(piece.Z)
		}
	}
}
