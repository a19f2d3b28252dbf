package model

import "errors"

var (
	// ErrMissingParameter is returned when a required parameter is absent
	// for the requested event.
	ErrMissingParameter = errors.New("missing required parameter")
	// ErrUnknownEvent is returned for event names outside the known set.
	ErrUnknownEvent = errors.New("unknown event")
	// ErrTransport wraps network or HTTP level failures talking to the
	// vendor API.
	ErrTransport = errors.New("transport failure")
	// ErrProtocol wraps responses that cannot be interpreted as a
	// capability list.
	ErrProtocol = errors.New("unexpected response from device api")
)
