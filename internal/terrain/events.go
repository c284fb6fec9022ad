package terrain

// The engine consumes UI input as plain signals so the windowing layer
// stays an external collaborator: pointer events carry a button id and a
// screen position, key events a key id. One event per external frame tick.

// EventKind discriminates the event union.
type EventKind int

const (
	EventPointerMove EventKind = iota
	EventPointerDown
	EventPointerUp
	EventKeyDown
	EventKeyUp
)

// Button identifies a pointer button or wheel direction.
type Button int

const (
	ButtonLeft Button = iota + 1
	ButtonRight
	ButtonWheelUp
	ButtonWheelDown
)

// Key identifies the keyboard signals the engine reacts to.
type Key int

const (
	// KeyModifier is the selection modifier (control on desktop).
	KeyModifier Key = iota + 1
	KeyDelete
)

// Event is one discrete input signal.
type Event struct {
	Kind   EventKind
	Button Button
	Key    Key
	X, Y   float64
}
