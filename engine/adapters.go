package engine

import "fleetdash/livestate"

// liveEmitter bridges the livestate manager's emitter interface to the EventBus.
type liveEmitter struct {
	bus *EventBus
}

func (e *liveEmitter) EmitLiveTick(s *livestate.Snapshot) {
	e.bus.Emit(Event{Type: EventLiveTick, Payload: LiveTickEvent{Snapshot: s}})
}
