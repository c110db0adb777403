package playfield_test

import (
	"math/rand/v2"
	"testing"

	"github.com/plus3/blockfall/piece"
	"github.com/plus3/blockfall/playfield"
	"github.com/stretchr/testify/assert"
)

func TestBagCoversEveryKindPerSeven(t *testing.T) {
	bag := playfield.NewBag(rand.New(rand.NewPCG(1, 2)))

	for round := range 500 {
		seen := make(map[piece.Kind]int)
		for range len(piece.Kinds) {
			k := bag.Next()
			assert.True(t, k.Valid())
			seen[k]++
		}
		for _, k := range piece.Kinds {
			if !assert.Equal(t, 1, seen[k], "round %d kind %s", round, k) {
				return
			}
		}
	}
}

func TestSeededBagIsDeterministic(t *testing.T) {
	a := playfield.NewSeededBag(42)
	b := playfield.NewSeededBag(42)
	c := playfield.NewSeededBag(43)

	var fromA, fromB, fromC []piece.Kind
	for range 70 {
		fromA = append(fromA, a.Next())
		fromB = append(fromB, b.Next())
		fromC = append(fromC, c.Next())
	}

	assert.Equal(t, fromA, fromB)
	assert.NotEqual(t, fromA, fromC)
}

func TestSeededPlayfieldsMatch(t *testing.T) {
	a := playfield.NewSeeded(7)
	b := playfield.NewSeeded(7)

	for range 30 {
		a.HardDrop()
		b.HardDrop()
	}

	assert.Equal(t, a.Board(), b.Board())
	assert.Equal(t, a.Active(), b.Active())
	assert.Equal(t, a.GameOver(), b.GameOver())
}
