package loop

// System is one step of the frame. Systems read the playfield through the frame and queue
// their changes on frame.Commands; they may keep their own state between frames.
type System interface {
	Execute(frame *UpdateFrame)
}
