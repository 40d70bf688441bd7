// Package turbostreams composes Turbo Stream responses: bodies of one or more
// <turbo-stream> DOM mutation instructions, emitted either eagerly from
// already-rendered content or lazily after a template engine renders the
// content.
package turbostreams

import (
	"github.com/pkg/errors"
)

// Action is the Turbo Stream action.
type Action string

// Standard Turbo Stream actions.
const (
	ActionAppend  Action = "append"
	ActionPrepend Action = "prepend"
	ActionReplace Action = "replace"
	ActionUpdate  Action = "update"
	ActionRemove  Action = "remove"
	ActionBefore  Action = "before"
	ActionAfter   Action = "after"
)

// Valid reports whether the action is one of the standard Turbo Stream
// actions.
func (a Action) Valid() bool {
	switch a {
	case ActionAppend, ActionPrepend, ActionReplace, ActionUpdate,
		ActionRemove, ActionBefore, ActionAfter:
		return true
	}
	return false
}

// String returns the action's wire representation.
func (a Action) String() string {
	return string(a)
}

// ParseAction checks a raw string against the standard actions, rejecting
// anything outside the set.
func ParseAction(raw string) (Action, error) {
	action := Action(raw)
	if !action.Valid() {
		return "", errors.Errorf("unknown turbo stream action %s", raw)
	}
	return action, nil
}
