package histrion

import "io"

// Config configures a new World, mirroring the teacher's
// New(&Config{...}) construction style.
type Config struct {
	// Debug enables verbose interpreter/scheduler logging.
	Debug bool
	// TraceWriter receives the "<now>: <action>" trace lines described in
	// spec §6. Defaults to os.Stderr when nil.
	TraceWriter io.Writer
	// InitialNow seeds the world's starting Instant, for deterministic
	// replay in tests that need a non-zero epoch.
	InitialNow float64
	// LogCategories enables LevelDebug/LevelWarn logging for specific
	// subsystems without turning on Debug globally.
	LogCategories []LogCategory
}
