package histrion

// supervisorName is the synthetic root actor used when a script runs with
// no implicit actor.
const supervisorName = "Everything"

// World holds the component store, the supervisor actor, globals, the
// method table, the monotone guid counter, and the current instant.
// Exposes Perform, Update, Simulate, HasHalted, Now and Snapshot; the
// rest is interpreter-internal.
type World struct {
	store       *store
	now         Instant
	hasHalted   bool
	globals     map[string]ActorHandle
	methods     map[string]*Method
	supervisor  ActorHandle
	taskCounter uint64
	logger      *Logger
}

// New constructs an empty world: supervisor named "Everything", now = 0
// (or cfg.InitialNow).
func New(cfg *Config) *World {
	if cfg == nil {
		cfg = &Config{}
	}

	s := newStore()
	supervisor := s.createActor(supervisorName, Instant(cfg.InitialNow), FixedTrajectory{})

	globals := make(map[string]ActorHandle)
	globals[supervisorName] = supervisor

	logger := NewLogger(cfg.Debug, cfg.TraceWriter)
	for _, cat := range cfg.LogCategories {
		logger.EnableCategory(cat)
	}

	return &World{
		store:      s,
		now:        Instant(cfg.InitialNow),
		globals:    globals,
		methods:    make(map[string]*Method),
		supervisor: supervisor,
		logger:     logger,
	}
}

// HasHalted reports whether the world has executed a Halt action.
func (w *World) HasHalted() bool {
	return w.hasHalted
}

// Now returns the world's current simulated instant.
func (w *World) Now() Instant {
	return w.now
}

// Perform runs script under the supervisor at the current instant.
func (w *World) Perform(script []Action) error {
	return w.run(NewFiber(w.supervisor, script, nil))
}

// Update advances to the next scheduled task and resumes it. Time may
// never go backwards; a violation is a fatal invariant break, consistent
// with the teacher's treatment of state corruption as unrecoverable.
func (w *World) Update() error {
	eta, fiber := w.findNextTask()
	if eta.Less(w.now) {
		panic("histrion: time went backwards")
	}
	w.now = eta
	w.store.clearPositionCache()
	return w.run(fiber)
}

// Simulate drains scheduled tasks until HasHalted (or the agendas are
// empty, in which case the scheduler synthesizes a Halt).
func (w *World) Simulate() error {
	for !w.hasHalted {
		if err := w.Update(); err != nil {
			return err
		}
	}
	return nil
}

// nextGuid returns the next value from the world's monotone task
// counter, used to break (eta, guid) ties deterministically by creation
// order.
func (w *World) nextGuid() uint64 {
	guid := w.taskCounter
	w.taskCounter++
	return guid
}

func (w *World) position(id ActorHandle) Position {
	return w.store.position(id, w.now)
}
