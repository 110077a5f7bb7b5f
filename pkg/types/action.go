// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownAction is returned when an action string is not one of the four
// amendment actions.
var ErrUnknownAction = errors.New("unknown amendment action")

// Action is the kind of change an Amendment makes to a Section. The set is
// closed: amend, repeal, reserve, add.
type Action string

const (
	ActionAmend   Action = "amend"
	ActionRepeal  Action = "repeal"
	ActionReserve Action = "reserve"
	ActionAdd     Action = "add"
)

// Actions lists every valid Action in canonical order.
var Actions = []Action{ActionAmend, ActionRepeal, ActionReserve, ActionAdd}

// ParseAction converts s (case-insensitive, surrounding space ignored) to an
// Action. Anything outside the closed set yields ErrUnknownAction.
func ParseAction(s string) (Action, error) {
	a := Action(strings.ToLower(strings.TrimSpace(s)))
	if !a.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownAction, s)
	}
	return a, nil
}

// Valid reports whether a is one of the four known actions.
func (a Action) Valid() bool {
	switch a {
	case ActionAmend, ActionRepeal, ActionReserve, ActionAdd:
		return true
	}
	return false
}

func (a Action) String() string { return string(a) }

// UnmarshalText rejects unknown actions so that decoded amendments never carry
// an action the applier cannot handle.
func (a *Action) UnmarshalText(text []byte) error {
	parsed, err := ParseAction(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// MarshalText writes the action as its lowercase name.
func (a Action) MarshalText() ([]byte, error) {
	return []byte(a), nil
}
