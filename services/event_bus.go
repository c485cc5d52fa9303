package services

type eventDeps struct {
	rt *RealtimeHub
}

var _events eventDeps

func InitEventFeed(rt *RealtimeHub) {
	_events = eventDeps{rt: rt}
}

// EmitEvent pushes a typed event to the user's open event sockets. Safe to
// call before InitEventFeed; it just drops the event.
func EmitEvent(userID uint, kind string, payload any) {
	if _events.rt == nil {
		return
	}
	_events.rt.Broadcast(userID, Event{Kind: kind, Payload: payload})
}
