package histrion

import (
	"sort"

	"github.com/google/uuid"
	"golang.org/x/exp/maps"
)

// store is the entity-component container keying actor handles to
// components: Name, CreationDate, Trajectory, a per-instant Position
// cache, Agenda, and Liveness. Modeled as parallel maps rather than a
// generic ECS — the design notes call both equally valid as long as each
// field is independently present/optional.
//
// The world is mutated only by the interpreter, from a single logical
// executor (spec §5): there is no concurrent access to guard against, so
// unlike the teacher's Executor these maps carry no mutex.
type store struct {
	names       map[ActorHandle]string
	creation    map[ActorHandle]Instant
	trajectory  map[ActorHandle]Trajectory
	agenda      map[ActorHandle]*Agenda
	alive       map[ActorHandle]bool
	positionCache map[ActorHandle]Position
}

func newStore() *store {
	return &store{
		names:         make(map[ActorHandle]string),
		creation:      make(map[ActorHandle]Instant),
		trajectory:    make(map[ActorHandle]Trajectory),
		agenda:        make(map[ActorHandle]*Agenda),
		alive:         make(map[ActorHandle]bool),
		positionCache: make(map[ActorHandle]Position),
	}
}

// createActor allocates a fresh handle and populates every component.
func (s *store) createActor(name string, now Instant, traj Trajectory) ActorHandle {
	handle := uuid.New()
	s.names[handle] = name
	s.creation[handle] = now
	s.trajectory[handle] = traj
	s.agenda[handle] = NewAgenda()
	s.alive[handle] = true
	return handle
}

func (s *store) name(id ActorHandle) string {
	return s.names[id]
}

func (s *store) setAlive(id ActorHandle, alive bool) {
	s.alive[id] = alive
}

func (s *store) isAlive(id ActorHandle) bool {
	return s.alive[id]
}

func (s *store) agendaOf(id ActorHandle) *Agenda {
	return s.agenda[id]
}

// setTrajectory overwrites an actor's trajectory component. Per the
// lifecycle rules, actors are only ever created with an agenda already
// present, so a missing agenda here is a fatal invariant violation rather
// than an expected error path.
func (s *store) setTrajectory(id ActorHandle, traj Trajectory) error {
	if _, ok := s.agenda[id]; !ok {
		return errCouldNotWrite(s.names[id])
	}
	s.trajectory[id] = traj
	return nil
}

// position returns the actor's position at now, computing and memoising
// it on first access this instant (spec invariant: two reads of the same
// instant return the identical value).
func (s *store) position(id ActorHandle, now Instant) Position {
	if p, ok := s.positionCache[id]; ok {
		return p
	}
	traj, ok := s.trajectory[id]
	if !ok {
		traj = defaultTrajectory()
	}
	p := traj.PositionAt(now)
	s.positionCache[id] = p
	return p
}

// clearPositionCache drops every cached sample. Called once per
// dispatched step, before the chosen fiber resumes, so stale reads across
// an instant boundary are impossible.
func (s *store) clearPositionCache() {
	for k := range s.positionCache {
		delete(s.positionCache, k)
	}
}

// actorNamesSorted returns every known actor handle, ordered by actor name
// (ties broken by handle string), for deterministic diagnostic output
// (world snapshots, tests).
func (s *store) actorNamesSorted() []ActorHandle {
	handles := maps.Keys(s.names)
	sort.Slice(handles, func(i, j int) bool {
		ni, nj := s.names[handles[i]], s.names[handles[j]]
		if ni != nj {
			return ni < nj
		}
		return handles[i].String() < handles[j].String()
	})
	return handles
}
