package hsm

// MaxHierarchyDepth bounds how many ancestors hierarchy discovery will
// walk before giving up, matching the original firmware's
// STATE_DEPTH_MAX. A hierarchy deeper than this truncates silently, per
// spec.md §3/§4.4.5; this engine has no dynamic allocation to grow the
// scratch path beyond a fixed bound.
const MaxHierarchyDepth = 10

// HSM drives a single StateInstance through the hierarchical dispatch and
// transition algorithm: hierarchy discovery, the initial-transition
// cascade, and event processing with full entry/exit ordering across the
// least common ancestor of any transition.
type HSM struct {
	instance *StateInstance
}

// New returns an HSM driving the given instance. The instance's handler
// is nil until SetInitialState is called.
func New(instance *StateInstance) *HSM {
	return &HSM{instance: instance}
}

// Instance returns the StateInstance this HSM drives.
func (h *HSM) Instance() *StateInstance {
	return h.instance
}

// CurrentHandler returns the instance's active handler.
func (h *HSM) CurrentHandler() Handler {
	return h.instance.CurrentHandler()
}

// callHandler invokes the handler currently installed on si with e,
// tracing the dispatch, and returns the result. It is the sole place
// handler functions are ever invoked from.
func (h *HSM) callHandler(si *StateInstance, e *Event) HandlerResult {
	invoked := si.handler
	result := invoked(si, e)
	traceDispatch(handlerName(invoked), e, result)
	// Only a nil handler is caught here: a Changed result with no
	// SetHandler call leaves the invoking handler installed, which looks
	// the same as a self-transition and is not detected.
	if result == Changed || result == DoSuperstate {
		debugAssert(si.handler != nil, "handler %s returned %s and left no handler installed", handlerName(invoked), result)
	}
	debugAssert(!(sameHandler(invoked, RootHandler) && result == DoSuperstate),
		"RootHandler must never return DO_SUPERSTATE")
	return result
}

// discoverToRoot repeatedly dispatches SignalSilent to a scratch
// StateInstance seeded at start, recording each visited handler until the
// handler stops advancing (root reached) or MaxHierarchyDepth is hit.
// The returned path is deepest-first: path[0] == start,
// path[len(path)-1] == the hierarchy's root handler.
func (h *HSM) discoverToRoot(start Handler) []Handler {
	scratch := &StateInstance{handler: start}
	path := make([]Handler, 0, MaxHierarchyDepth)
	for {
		path = append(path, scratch.CurrentHandler())
		result := h.callHandler(scratch, &silentEvent)
		if result != DoSuperstate || len(path) >= MaxHierarchyDepth {
			break
		}
	}
	return path
}

// discoverBetween is like discoverToRoot but stops once the probed
// handler equals top (exclusive of top). The returned path is bottom-up:
// path[0] == bottom, path[len(path)-1] == the child of top nearest the
// root side of bottom's chain.
func (h *HSM) discoverBetween(top, bottom Handler) []Handler {
	scratch := &StateInstance{handler: bottom}
	path := make([]Handler, 0, MaxHierarchyDepth)
	for len(path) < MaxHierarchyDepth && !sameHandler(scratch.CurrentHandler(), top) {
		path = append(path, scratch.CurrentHandler())
		h.callHandler(scratch, &silentEvent)
	}
	return path
}

// findInPath returns the index in path whose handler equals target, or
// -1 if target does not appear in path.
func findInPath(target Handler, path []Handler) int {
	for i, candidate := range path {
		if sameHandler(target, candidate) {
			return i
		}
	}
	return -1
}

// SetInitialState installs target as the instance's active handler,
// delivering ENTRY from the root down to target, then cascading INITIAL
// from target through any composite descendants until a leaf accepts it.
// See spec.md §4.4.2.
func (h *HSM) SetInitialState(target Handler) {
	// Step 1: extensibility hook, dispatch INITIAL to the root handler.
	// RootHandler ignores it; a custom root could react here.
	rootScratch := &StateInstance{handler: RootHandler}
	h.callHandler(rootScratch, &initialEvent)

	// Step 2: install target.
	h.instance.SetHandler(target)

	top := Handler(RootHandler)
	current := target
	for {
		// Step 3: walk down from top to current delivering ENTRY,
		// top-down.
		path := h.discoverBetween(top, current)
		for i := len(path) - 1; i >= 0; i-- {
			h.instance.SetHandler(path[i])
			h.callHandler(h.instance, &entryEvent)
		}
		h.instance.SetHandler(current)

		// Step 4: cascade INITIAL. A composite state's INITIAL handler
		// sets the instance's handler to its default child and returns
		// Changed; a leaf returns anything else and the cascade ends.
		if h.callHandler(h.instance, &initialEvent) != Changed {
			h.instance.SetHandler(current)
			break
		}
		top = current
		current = h.instance.CurrentHandler()
	}
}

// Process drains the instance's event queue, running the full
// dispatch/transition cycle (spec.md §4.4.3) for each event in FIFO
// order. Not reentrant: the caller must not invoke Process concurrently
// with itself for the same HSM.
func (h *HSM) Process() {
	for {
		e, ok := h.instance.queue.Pop()
		if !ok {
			return
		}
		h.dispatch(&e)
	}
}

// dispatch runs Phase A (bubbling dispatch), Phase B (reaction), and,
// for a Changed result, Phase C (transition execution) for a single
// event.
func (h *HSM) dispatch(e *Event) {
	si := h.instance
	initial := si.CurrentHandler()
	last := initial

	var stateHandlingEvent Handler
	var result HandlerResult
	selfTrans := false

	// Phase A: dispatch with bubbling.
	for {
		stateHandlingEvent = si.CurrentHandler()
		result = h.callHandler(si, e)
		selfTrans = sameHandler(si.CurrentHandler(), last)
		last = si.CurrentHandler()
		if result != DoSuperstate {
			break
		}
	}

	backToSelfTop := sameHandler(si.CurrentHandler(), initial) &&
		!sameHandler(si.CurrentHandler(), stateHandlingEvent)

	// Phase B: reaction. DoSuperstate cannot reach here; it is what
	// keeps the Phase A loop going.
	if result == Handled || result == Ignored {
		si.SetHandler(initial)
		return
	}

	// Phase C: transition execution, result == Changed.
	dest := &StateInstance{handler: si.CurrentHandler()}
	si.SetHandler(initial)

	backToSelfBottom := false
	processing := true

	for processing {
		path := h.discoverToRoot(dest.CurrentHandler())

	inner:
		for {
			index := findInPath(si.CurrentHandler(), path)
			switch {
			case index == 0:
				switch {
				case selfTrans:
					h.callHandler(si, &exitEvent)
					// no break: falls through to the SILENT probe below,
					// which bubbles si up one level so the entry chain
					// below can re-enter this same state.
				case backToSelfTop:
					dest.SetHandler(stateHandlingEvent)
					backToSelfTop = false
					backToSelfBottom = true
					break inner
				case backToSelfBottom:
					dest.SetHandler(last)
					backToSelfBottom = false
					break inner
				default:
					if h.callHandler(dest, &initialEvent) != Changed {
						si.SetHandler(path[0])
						processing = false
					}
					break inner
				}
			case index > 0:
				for entryIdx := index - 1; entryIdx >= 0; entryIdx-- {
					si.SetHandler(path[entryIdx])
					h.callHandler(si, &entryEvent)
				}
				si.SetHandler(path[0])
				if h.callHandler(si, &initialEvent) == Changed {
					dest.SetHandler(si.CurrentHandler())
					stateHandlingEvent = path[0]
				} else {
					processing = false
				}
				si.SetHandler(path[0])
				break inner
			default: // index < 0: si is not yet in path.
				h.callHandler(si, &exitEvent)
			}

			if h.callHandler(si, &silentEvent) != DoSuperstate {
				break inner
			}
		}
	}
}
