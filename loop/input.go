package loop

import (
	"math/rand/v2"
)

// InputSource hands over the commands a frontend collected since the last frame. Poll is
// called from the scheduler goroutine.
type InputSource interface {
	Poll() []Command
}

// InputSystem queues everything its source produced this frame.
type InputSystem struct {
	Source InputSource
}

func (s *InputSystem) Execute(frame *UpdateFrame) {
	if s.Source == nil {
		return
	}
	for _, cmd := range s.Source.Poll() {
		frame.Commands.Push(cmd)
	}
}

// ChannelInput is an InputSource fed from another goroutine, such as a terminal event
// reader.
type ChannelInput struct {
	ch chan Command
}

func NewChannelInput(buffer int) *ChannelInput {
	return &ChannelInput{ch: make(chan Command, buffer)}
}

// Send queues cmd without blocking and reports whether it fit in the buffer.
func (c *ChannelInput) Send(cmd Command) bool {
	select {
	case c.ch <- cmd:
		return true
	default:
		return false
	}
}

func (c *ChannelInput) Poll() []Command {
	var out []Command
	for {
		select {
		case cmd := <-c.ch:
			out = append(out, cmd)
		default:
			return out
		}
	}
}

// RandomInput plays by pressing random keys. It is used by the stress run.
type RandomInput struct {
	rng *rand.Rand
	// MaxPerFrame bounds how many commands one Poll returns.
	MaxPerFrame int
	// DropChance is the probability that a frame ends with a hard drop.
	DropChance float64
}

func NewRandomInput(rng *rand.Rand) *RandomInput {
	return &RandomInput{rng: rng, MaxPerFrame: 2, DropChance: 0.05}
}

func (r *RandomInput) Poll() []Command {
	n := r.rng.IntN(r.MaxPerFrame + 1)
	out := make([]Command, 0, n+1)
	for range n {
		// Hard drop is left out here so games do not end in a handful of frames.
		switch cmd := PlayerCommands[r.rng.IntN(len(PlayerCommands))]; cmd {
		case HardDrop:
			out = append(out, Tick)
		default:
			out = append(out, cmd)
		}
	}
	if r.rng.Float64() < r.DropChance {
		out = append(out, HardDrop)
	}
	return out
}
