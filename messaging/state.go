package messaging

import (
	"context"

	"github.com/looplab/fsm"
)

// Link states.
const (
	StateDisconnected = "disconnected"
	StateConnecting   = "connecting"
	StateConnected    = "connected"
)

const (
	eventDial     = "dial"
	eventUp       = "up"
	eventDown     = "down"
	eventDialFail = "dial_fail"
)

// newLinkFSM tracks the broker link. onChange runs after every transition.
func newLinkFSM(onChange func(from, to string)) *fsm.FSM {
	return fsm.NewFSM(
		StateDisconnected,
		fsm.Events{
			{Name: eventDial, Src: []string{StateDisconnected}, Dst: StateConnecting},
			{Name: eventUp, Src: []string{StateConnecting, StateDisconnected}, Dst: StateConnected},
			{Name: eventDialFail, Src: []string{StateConnecting}, Dst: StateDisconnected},
			{Name: eventDown, Src: []string{StateConnected, StateConnecting}, Dst: StateDisconnected},
		},
		fsm.Callbacks{
			"enter_state": func(_ context.Context, e *fsm.Event) {
				if onChange != nil {
					onChange(e.Src, e.Dst)
				}
			},
		},
	)
}
