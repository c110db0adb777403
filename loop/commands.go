package loop

import "github.com/plus3/blockfall/playfield"

// Commands buffers the actions queued by systems during a frame. They are applied to the
// playfield in queue order when the frame ends, so every system in a frame sees the same
// state.
type Commands struct {
	queue  []Command
	defers []func()
}

func newCommands() *Commands {
	return &Commands{}
}

// Push queues a command.
func (c *Commands) Push(cmd Command) {
	c.queue = append(c.queue, cmd)
}

// Defer queues a function to run after every queued command has been applied.
func (c *Commands) Defer(fn func()) {
	c.defers = append(c.defers, fn)
}

// Len is the number of queued commands.
func (c *Commands) Len() int {
	return len(c.queue)
}

// Flush applies the queued commands to pf, runs the deferred functions and resets the
// buffer. It returns the locks the commands caused, oldest first.
func (c *Commands) Flush(pf *playfield.Playfield) []playfield.LockEvent {
	var locks []playfield.LockEvent

	for _, cmd := range c.queue {
		before, _ := pf.LastLock()
		cmd.Apply(pf)
		if ev, ok := pf.LastLock(); ok && ev.Seq != before.Seq {
			locks = append(locks, ev)
		}
	}

	for _, fn := range c.defers {
		fn()
	}

	c.queue = c.queue[:0]
	c.defers = c.defers[:0]
	return locks
}
