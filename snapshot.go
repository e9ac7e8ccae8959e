package histrion

import "gopkg.in/yaml.v3"

// ActorSnapshot is the YAML-serializable view of one actor, used by
// WorldSnapshot for golden-file test fixtures and diagnostic dumps.
type ActorSnapshot struct {
	Name     string  `yaml:"name"`
	Alive    bool    `yaml:"alive"`
	Position Vec3    `yaml:"position"`
	Velocity Vec3    `yaml:"velocity"`
}

// WorldSnapshot is a deterministic, name-sorted dump of every actor in a
// World at its current instant.
type WorldSnapshot struct {
	Now    float64         `yaml:"now"`
	Actors []ActorSnapshot `yaml:"actors"`
}

// Snapshot captures the world's current state for comparison in tests or
// for human-readable diagnostics, using the yaml.v3 tags above.
func (w *World) Snapshot() WorldSnapshot {
	handles := w.store.actorNamesSorted()
	actors := make([]ActorSnapshot, 0, len(handles))
	for _, h := range handles {
		traj, ok := w.store.trajectory[h]
		if !ok {
			traj = defaultTrajectory()
		}
		actors = append(actors, ActorSnapshot{
			Name:     w.store.name(h),
			Alive:    w.store.isAlive(h),
			Position: Vec3(w.position(h)),
			Velocity: traj.VelocityAt(w.now),
		})
	}
	return WorldSnapshot{Now: float64(w.now), Actors: actors}
}

// YAML marshals the snapshot with yaml.v3, for use in golden test
// fixtures.
func (s WorldSnapshot) YAML() (string, error) {
	out, err := yaml.Marshal(s)
	if err != nil {
		return "", err
	}
	return string(out), nil
}
