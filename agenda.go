package histrion

// Agenda is an actor's pending-task slot plus its signal listeners. At
// most one QueuedTask may be parked in Next at a time; a listener is
// removed from Listening the instant it is moved into Next.
type Agenda struct {
	Next      *QueuedTask
	Listening map[string]listenEntry
}

type listenEntry struct {
	Signal  Signal
	Waiting Waiting
}

// NewAgenda returns an empty agenda.
func NewAgenda() *Agenda {
	return &Agenda{Listening: make(map[string]listenEntry)}
}

// listen registers fiber to resume when sig is transmitted, overwriting
// any prior listener for the exact same signal.
func (a *Agenda) listen(sig Signal, guid uint64, fiber *Fiber) {
	a.Listening[sig.Key()] = listenEntry{Signal: sig, Waiting: Waiting{Guid: guid, Fiber: fiber}}
}

// fulfil removes the listener for sig, if any, and reports whether one
// was found.
func (a *Agenda) fulfil(sig Signal) (Waiting, bool) {
	key := sig.Key()
	entry, ok := a.Listening[key]
	if !ok {
		return Waiting{}, false
	}
	delete(a.Listening, key)
	return entry.Waiting, true
}
