package core

import (
	"fmt"
	"sort"
	"strings"
)

// Action represents a logical input action, abstracted from physical key presses.
// This allows the demo to work with intents rather than raw keys.
type Action int

const (
	ActionUp    Action = iota // W, Up arrow
	ActionDown                // S, Down arrow
	ActionLeft                // A, Left arrow
	ActionRight               // D, Right arrow
	ActionRun                 // Space - accelerate toward max velocity

	actionCount
)

// AllActions returns every logical action in declaration order.
func AllActions() []Action {
	actions := make([]Action, 0, actionCount)
	for a := Action(0); a < actionCount; a++ {
		actions = append(actions, a)
	}
	return actions
}

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionRun:
		return "Run"
	default:
		return "Unknown"
	}
}

// Valid reports whether a is one of the declared actions.
func (a Action) Valid() bool {
	return a >= 0 && a < actionCount
}

// ParseAction resolves an action name case-insensitively.
func ParseAction(name string) (Action, error) {
	for _, a := range AllActions() {
		if strings.EqualFold(a.String(), strings.TrimSpace(name)) {
			return a, nil
		}
	}
	return 0, fmt.Errorf("core: unknown action %q", name)
}

// KeyState holds one "currently held" flag per logical action.
// The zero value has every action released.
type KeyState struct {
	held [actionCount]bool
}

// Press marks an action as held.
func (k *KeyState) Press(a Action) {
	if a.Valid() {
		k.held[a] = true
	}
}

// Release marks an action as not held.
func (k *KeyState) Release(a Action) {
	if a.Valid() {
		k.held[a] = false
	}
}

// Held returns true if the action is currently held.
func (k KeyState) Held(a Action) bool {
	if !a.Valid() {
		return false
	}
	return k.held[a]
}

// Reset releases every action.
func (k *KeyState) Reset() {
	k.held = [actionCount]bool{}
}

// KeyBind maps physical key names to logical actions.
// Several keys may map to the same action; a key maps to at most one action.
type KeyBind struct {
	keys map[string]Action
}

// NewKeyBind creates an empty key binding table.
func NewKeyBind() *KeyBind {
	return &KeyBind{keys: make(map[string]Action)}
}

// DefaultKeyBind returns WASD plus arrow keys for movement and space for Run.
func DefaultKeyBind() *KeyBind {
	b := NewKeyBind()
	b.Bind("w", ActionUp)
	b.Bind("up", ActionUp)
	b.Bind("s", ActionDown)
	b.Bind("down", ActionDown)
	b.Bind("a", ActionLeft)
	b.Bind("left", ActionLeft)
	b.Bind("d", ActionRight)
	b.Bind("right", ActionRight)
	b.Bind("space", ActionRun)
	return b
}

// Bind maps key to action, replacing any previous action for that key.
func (b *KeyBind) Bind(key string, a Action) {
	if b.keys == nil {
		b.keys = make(map[string]Action)
	}
	b.keys[key] = a
}

// Lookup returns the action bound to key.
func (b *KeyBind) Lookup(key string) (Action, bool) {
	if b == nil || b.keys == nil {
		return 0, false
	}
	a, ok := b.keys[key]
	return a, ok
}

// Keys returns the keys bound to an action, sorted by name.
func (b *KeyBind) Keys(a Action) []string {
	var keys []string
	for k, bound := range b.keys {
		if bound == a {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys
}

// Len returns the number of bound keys.
func (b *KeyBind) Len() int {
	return len(b.keys)
}

// EventKind identifies a raw window notification.
type EventKind int

const (
	KeyPressed EventKind = iota
	KeyReleased
	WindowClosed
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case KeyPressed:
		return "KeyPressed"
	case KeyReleased:
		return "KeyReleased"
	case WindowClosed:
		return "WindowClosed"
	default:
		return "Unknown"
	}
}

// Event is a raw notification from the window collaborator.
// Key is the physical key name and is empty for WindowClosed.
type Event struct {
	Kind EventKind
	Key  string
}

// EventQueue buffers window events until the loop drains them once per iteration.
type EventQueue struct {
	events []Event
}

// Push appends an event to the queue.
func (q *EventQueue) Push(ev Event) {
	q.events = append(q.events, ev)
}

// Len returns the number of queued events.
func (q *EventQueue) Len() int {
	return len(q.events)
}

// Drain returns all queued events in arrival order and empties the queue.
func (q *EventQueue) Drain() []Event {
	if len(q.events) == 0 {
		return nil
	}
	out := q.events
	q.events = nil
	return out
}
