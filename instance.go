package hsm

// StateInstance holds the currently active handler and owns the event
// queue that feeds it. It is the unit the HSM engine drives: one
// StateInstance per controller instance. Its handler field is mutated in
// place both by the engine (during transitions and hierarchy discovery)
// and by application handlers themselves; that in-band write is how a
// handler expresses "change to this state" before returning Changed or
// DoSuperstate (see ChangeState/Superstate).
type StateInstance struct {
	handler Handler
	queue   *EventQueue
}

// NewStateInstance returns a StateInstance with its own event queue of
// the given capacity (DefaultQueueCapacity if capacity <= 0). The
// instance's handler is nil until SetInitialState runs on it.
func NewStateInstance(capacity int) *StateInstance {
	return &StateInstance{queue: NewEventQueue(capacity)}
}

// Post pushes a new event with the given signal onto the instance's
// queue. Returns false if the queue was full. Safe to call from a
// different goroutine than the one calling Process.
func (si *StateInstance) Post(signal Signal) bool {
	return si.queue.Push(Event{Signal: signal})
}

// PostPayload is like Post but attaches an application-defined payload.
func (si *StateInstance) PostPayload(signal Signal, payload any) bool {
	return si.queue.Push(Event{Signal: signal, Payload: payload})
}

// Pop removes and returns the oldest queued event. The second return
// value is false if the queue was empty.
func (si *StateInstance) Pop() (Event, bool) {
	return si.queue.Pop()
}

// CurrentHandler returns the instance's active handler.
func (si *StateInstance) CurrentHandler() Handler {
	return si.handler
}

// SetHandler installs h as the instance's active handler. Application
// handlers call this on themselves to express a transition or
// delegation; the engine also calls it while discovering hierarchy and
// executing transitions.
func (si *StateInstance) SetHandler(h Handler) {
	si.handler = h
}
