package playfield_test

import (
	"fmt"

	"github.com/plus3/blockfall/piece"
	"github.com/plus3/blockfall/playfield"
)

type only piece.Kind

func (o only) Next() piece.Kind { return piece.Kind(o) }

func printRow(pf *playfield.Playfield, y int) {
	row := make([]byte, playfield.Width)
	for x := range row {
		row[x] = '.'
		if k, ok := pf.Tile(x, y).Kind(); ok {
			row[x] = k.String()[0]
		}
	}
	fmt.Println(string(row))
}

// ExamplePlayfield drives a playfield that only ever deals I pieces: two of them are shifted
// against opposite walls and dropped.
func ExamplePlayfield() {
	pf := playfield.New(only(piece.I))

	for range 3 {
		pf.MoveLeft()
	}
	pf.HardDrop()

	for range 3 {
		pf.MoveRight()
	}
	pf.HardDrop()

	printRow(pf, 21)
	fmt.Println("lines:", pf.Lines())
	// Output:
	// IIII..IIII
	// lines: 0
}

// ExamplePlayfield_IncrementLevel shows the level-up charge: five lines per level.
func ExamplePlayfield_IncrementLevel() {
	pf := playfield.New(only(piece.O))
	pf.SetLevel(2)
	pf.IncrementLevel()
	fmt.Println(pf.Level(), pf.Lines())
	// Output:
	// 3 -10
}
