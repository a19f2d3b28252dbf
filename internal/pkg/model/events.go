package model

import (
	"fmt"
	"strings"
)

type Event string

func (e Event) String() string {
	return string(e)
}

const (
	EventTurnOn   Event = "turn_on"
	EventTurnOff  Event = "turn_off"
	EventFlash    Event = "flash"
	EventReset    Event = "reset"
	EventSetColor Event = "set_color"
)

var events = map[Event]struct{}{
	EventTurnOn:   {},
	EventTurnOff:  {},
	EventFlash:    {},
	EventReset:    {},
	EventSetColor: {},
}

// ParseEvent normalises an event name to lowercase and validates it against
// the known set. Validation happens before any remote call is issued.
func ParseEvent(name string) (Event, error) {
	event := Event(strings.ToLower(strings.TrimSpace(name)))
	if _, ok := events[event]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownEvent, name)
	}
	return event, nil
}

// EventRequest is one caller intent, constructed per invocation and never
// persisted.
type EventRequest struct {
	Event           string `json:"event"`
	Hex             string `json:"hex,omitempty"`
	PreventOverride bool   `json:"preventOverride,omitempty"`
}
