package mathil

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func TestDiscardHandler(t *testing.T) {
	h := discardHandler{}
	for _, level := range []slog.Level{slog.LevelDebug, slog.LevelInfo, slog.LevelWarn, slog.LevelError} {
		if h.Enabled(context.Background(), level) {
			t.Errorf("discardHandler.Enabled(%v) = true, want false", level)
		}
	}
	if err := h.Handle(context.Background(), slog.Record{}); err != nil {
		t.Errorf("discardHandler.Handle() = %v, want nil", err)
	}
	if _, ok := h.WithAttrs(nil).(discardHandler); !ok {
		t.Error("WithAttrs() did not return a discardHandler")
	}
	if _, ok := h.WithGroup("g").(discardHandler); !ok {
		t.Error("WithGroup() did not return a discardHandler")
	}
}

func TestSetLogger(t *testing.T) {
	t.Cleanup(func() { SetLogger(nil) })

	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))

	dir := t.TempDir()
	gen := func(float64, int, float64) *Screen { return pixelGrid(1, 1) }
	if err := Animate(gen, 0.25, 4, dir); err != nil {
		t.Fatalf("Animate() error = %v", err)
	}
	out := buf.String()
	for _, want := range []string{"rendering scene", "frame written"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q:\n%s", want, out)
		}
	}

	SetLogger(nil)
	if Logger().Enabled(context.Background(), slog.LevelError) {
		t.Error("SetLogger(nil) did not restore the silent logger")
	}
}
