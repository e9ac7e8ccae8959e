package histrion

// findNextTask scans every actor's agenda for the minimum SortToken under
// (eta, guid) ordering, removes it, and returns the eta to advance to and
// the fiber to resume. If no task is parked anywhere, it synthesizes a
// terminal Halt task on the supervisor at now + 1 second.
//
// The design notes call out this O(n)-per-dispatch scan as a valid
// trade-off versus a priority queue keyed by SortToken; histrion keeps
// the scan because the population of actors this simulator targets is
// small and it keeps listener-fulfilment (which inserts with eta = now,
// out of order with respect to a heap's invariant) trivially correct.
func (w *World) findNextTask() (Instant, *Fiber) {
	var bestHandle ActorHandle
	var bestToken SortToken
	found := false

	for handle, agenda := range w.store.agenda {
		if agenda.Next == nil {
			continue
		}
		token := agenda.Next.Token
		if !found || token.Less(bestToken) {
			bestHandle = handle
			bestToken = token
			found = true
		}
	}

	if !found {
		w.logger.Log(LevelDebug, CatScheduler, "agenda empty, synthesizing halt at %s", w.now.Add(Sec))
		return w.now.Add(Sec), NewFiber(w.supervisor, []Action{Halt{}}, nil)
	}

	task := w.store.agenda[bestHandle].Next
	w.store.agenda[bestHandle].Next = nil
	w.logger.Log(LevelDebug, CatScheduler, "dispatching %s eta=%s guid=%d", w.store.name(bestHandle), task.Token.Eta, task.Token.Guid)
	return task.Token.Eta, task.Fiber
}
