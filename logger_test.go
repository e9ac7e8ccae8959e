package histrion

import (
	"bytes"
	"strings"
	"testing"
)

func TestLogSuppressesDebugByDefault(t *testing.T) {
	buf := &bytes.Buffer{}
	l := NewLogger(false, buf)

	l.Log(LevelDebug, CatScheduler, "should not appear")
	if buf.Len() != 0 {
		t.Errorf("expected no output, got %q", buf.String())
	}
}

func TestLogDebugModeEnablesEveryCategory(t *testing.T) {
	buf := &bytes.Buffer{}
	l := NewLogger(true, buf)

	l.Log(LevelDebug, CatSignal, "transmitting %s", "ping")
	if !strings.Contains(buf.String(), "transmitting ping") {
		t.Errorf("expected debug output under global debug mode, got %q", buf.String())
	}
}

func TestEnableCategoryScopesDebugWithoutGlobalDebug(t *testing.T) {
	buf := &bytes.Buffer{}
	l := NewLogger(false, buf)

	l.Log(LevelDebug, CatTrajectory, "suppressed")
	if buf.Len() != 0 {
		t.Fatalf("expected no output before EnableCategory, got %q", buf.String())
	}

	l.EnableCategory(CatTrajectory)
	l.Log(LevelDebug, CatTrajectory, "accel set")
	if !strings.Contains(buf.String(), "accel set") {
		t.Errorf("expected output after EnableCategory, got %q", buf.String())
	}

	l.Log(LevelDebug, CatScheduler, "still suppressed")
	if strings.Contains(buf.String(), "still suppressed") {
		t.Errorf("enabling one category should not enable others, got %q", buf.String())
	}
}

func TestDisableCategoryResuppressesDebug(t *testing.T) {
	buf := &bytes.Buffer{}
	l := NewLogger(false, buf)

	l.EnableCategory(CatInterpreter)
	l.Log(LevelDebug, CatInterpreter, "frame pushed")
	if !strings.Contains(buf.String(), "frame pushed") {
		t.Fatalf("expected output while category enabled, got %q", buf.String())
	}

	l.DisableCategory(CatInterpreter)
	buf.Reset()
	l.Log(LevelDebug, CatInterpreter, "frame pushed again")
	if buf.Len() != 0 {
		t.Errorf("expected no output after DisableCategory, got %q", buf.String())
	}
}

func TestLogErrorAlwaysShows(t *testing.T) {
	buf := &bytes.Buffer{}
	l := NewLogger(false, buf)

	l.Log(LevelError, CatSignal, "boom")
	if !strings.Contains(buf.String(), "boom") {
		t.Errorf("expected LevelError to bypass category gating, got %q", buf.String())
	}
}

func TestLogWarnRequiresDebugOrCategory(t *testing.T) {
	buf := &bytes.Buffer{}
	l := NewLogger(false, buf)

	l.Log(LevelWarn, CatSignal, "suppressed warning")
	if buf.Len() != 0 {
		t.Fatalf("expected warning suppressed, got %q", buf.String())
	}

	l.EnableCategory(CatSignal)
	l.Log(LevelWarn, CatSignal, "visible warning")
	if !strings.Contains(buf.String(), "visible warning") {
		t.Errorf("expected warning once category enabled, got %q", buf.String())
	}
}

func TestConfigLogCategoriesWireEnableCategory(t *testing.T) {
	buf := &bytes.Buffer{}
	w := New(&Config{TraceWriter: &bytes.Buffer{}, LogCategories: []LogCategory{CatScheduler}})

	debugBuf := &bytes.Buffer{}
	w.logger.out = debugBuf
	w.logger.Log(LevelDebug, CatScheduler, "scoped debug")
	if !strings.Contains(debugBuf.String(), "scoped debug") {
		t.Errorf("expected Config.LogCategories to enable CatScheduler debug output, got %q", debugBuf.String())
	}
	_ = buf
}

func TestTraceStepAndTraceExprFormat(t *testing.T) {
	buf := &bytes.Buffer{}
	l := NewLogger(false, buf)

	l.TraceStep(Instant(12), "halt")
	l.TraceExpr("x", "7")

	out := buf.String()
	if !strings.Contains(out, "halt") {
		t.Errorf("expected TraceStep to write the action, got %q", out)
	}
	if !strings.Contains(out, "> x = 7") {
		t.Errorf("expected TraceExpr line, got %q", out)
	}
}
