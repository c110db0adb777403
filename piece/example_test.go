package piece_test

import (
	"fmt"

	"github.com/plus3/blockfall/piece"
)

// ExampleShape_Clockwise shows the occupancy grid of a T before and after a quarter turn.
// Rotation returns a new Shape and leaves the receiver untouched.
func ExampleShape_Clockwise() {
	shape := piece.MustNew(piece.T).Shape()
	fmt.Println(shape)
	fmt.Println(shape.Clockwise())
	fmt.Println(shape.Clockwise().CounterClockwise() == shape)
	// Output:
	// .#./###/...
	// .#./.##/.#.
	// true
}

func ExampleParseKind() {
	k, err := piece.ParseKind('s')
	if err != nil {
		panic(err)
	}
	p := piece.MustNew(k)
	fmt.Println(k, p.Cells())
	// Output:
	// S [{3 1} {4 0} {4 1} {5 0}]
}
