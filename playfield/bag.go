package playfield

import (
	"math/rand/v2"

	"github.com/plus3/blockfall/piece"
)

// Randomizer supplies the kinds of upcoming pieces.
type Randomizer interface {
	Next() piece.Kind
}

// Bag is the 7-bag randomizer: every run of seven draws starting on a bag boundary holds
// each kind exactly once.
type Bag struct {
	rng       *rand.Rand
	order     [len(piece.Kinds)]piece.Kind
	remaining int
}

// NewBag returns a bag drawing from rng.
func NewBag(rng *rand.Rand) *Bag {
	return &Bag{rng: rng, order: piece.Kinds}
}

// NewSeededBag returns a bag whose sequence is fully determined by seed.
func NewSeededBag(seed uint64) *Bag {
	return NewBag(rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)))
}

func (b *Bag) shuffle() {
	b.order = piece.Kinds
	b.rng.Shuffle(len(b.order), func(i, j int) {
		b.order[i], b.order[j] = b.order[j], b.order[i]
	})
	b.remaining = len(b.order)
}

// Next draws from the end of the current permutation, reshuffling once it is exhausted.
func (b *Bag) Next() piece.Kind {
	if b.remaining == 0 {
		b.shuffle()
	}
	b.remaining--
	return b.order[b.remaining]
}
