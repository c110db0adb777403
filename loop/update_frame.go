package loop

import "github.com/plus3/blockfall/playfield"

type UpdateFrame struct {
	DeltaTime float64
	Commands  *Commands
	Field     *playfield.Playfield
	// Locks are the locks caused by the previous frame's commands.
	Locks []playfield.LockEvent
}

func newUpdateFrame(dt float64, field *playfield.Playfield, locks []playfield.LockEvent) *UpdateFrame {
	return &UpdateFrame{
		DeltaTime: dt,
		Commands:  newCommands(),
		Field:     field,
		Locks:     locks,
	}
}
