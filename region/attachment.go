package region

import "github.com/garaekz/agentfx/action"

// Attachment is the primary entry point for composite UI: given a
// Region (which it may re-split internally), it produces some
// Output.
type Attachment[Output any] interface {
	Attach(r Region) Output
}

// RawAttachment is the primitive form: given an Action and a
// ScreenView it produces Output directly, without access to Region's
// splitting machinery. Any func(action.Action, ScreenView) Output
// serves as one via Raw.
type RawAttachment[Output any] func(a action.Action, v ScreenView) Output

// Attach adapts a RawAttachment into the Attachment interface by
// extracting the Region's own action and view.
func (f RawAttachment[Output]) Attach(r Region) Output {
	return f(r.Action(), r.View())
}

// AttachmentFunc adapts a plain func(Region) Output into an
// Attachment, for attachments that want to re-split internally rather
// than work at the raw (Action, ScreenView) level.
type AttachmentFunc[Output any] func(r Region) Output

// Attach calls f(r).
func (f AttachmentFunc[Output]) Attach(r Region) Output {
	return f(r)
}

// Run is a convenience that attaches a to r and returns the result,
// useful when a is held as the Attachment interface rather than a
// concrete function type.
func Run[Output any](a Attachment[Output], r Region) Output {
	return a.Attach(r)
}
