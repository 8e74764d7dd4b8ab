// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package sierpinski

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"sync"
	"testing"
)

func TestLoggerDefaultSilent(t *testing.T) {
	l := Logger()
	if l == nil {
		t.Fatal("Logger() returned nil")
	}
	for _, level := range []slog.Level{slog.LevelDebug, slog.LevelInfo, slog.LevelWarn, slog.LevelError} {
		if l.Enabled(context.Background(), level) {
			t.Errorf("default logger should not be enabled for %v", level)
		}
	}
}

func TestSetLogger(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	var buf bytes.Buffer
	custom := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	SetLogger(custom)

	if Logger() != custom {
		t.Error("Logger() did not return the custom logger set via SetLogger")
	}

	c := &recorder{}
	tri := Tri(Pt(0, 4), Pt(2, 0), Pt(4, 4))
	if err := Subdivide(c, tri, WithVisualization(false)); err != nil {
		t.Fatalf("Subdivide() error = %v", err)
	}

	out := buf.String()
	for _, want := range []string{"subdivide done", "leaves=9", "holes=4", "depth=2", "options.threshold=2"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q: %s", want, out)
		}
	}
}

func TestSetLoggerNilRestoresSilent(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	SetLogger(slog.Default())
	SetLogger(nil)

	if Logger().Enabled(context.Background(), slog.LevelError) {
		t.Error("SetLogger(nil) should restore the silent logger")
	}
}

func TestLoggerConcurrent(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			SetLogger(slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)))
		}()
		go func() {
			defer wg.Done()
			Logger().Debug("concurrent")
		}()
	}
	wg.Wait()
}
