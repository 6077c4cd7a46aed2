package clipboard

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestSystemCopy(t *testing.T) {
	var got string
	s := NewSystem(time.Second, nil)
	s.write = func(text string) error {
		got = text
		return nil
	}

	if !s.Copy(context.Background(), "#AABBCC") {
		t.Fatal("Copy reported failure")
	}
	if got != "#AABBCC" {
		t.Errorf("wrote %q, want #AABBCC", got)
	}
}

func TestSystemCopyError(t *testing.T) {
	s := NewSystem(time.Second, nil)
	s.write = func(string) error { return errors.New("xclip not found") }

	if s.Copy(context.Background(), "x") {
		t.Error("Copy reported success on write error")
	}
}

func TestSystemCopyTimeout(t *testing.T) {
	release := make(chan struct{})
	defer close(release)

	s := NewSystem(20*time.Millisecond, nil)
	s.write = func(string) error {
		<-release
		return nil
	}

	start := time.Now()
	if s.Copy(context.Background(), "x") {
		t.Error("Copy reported success after timeout")
	}
	if elapsed := time.Since(start); elapsed > time.Second {
		t.Errorf("Copy took %v, expected to give up near the timeout", elapsed)
	}
}

func TestSystemCopyCancelled(t *testing.T) {
	release := make(chan struct{})
	defer close(release)

	s := NewSystem(time.Minute, nil)
	s.write = func(string) error {
		<-release
		return nil
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if s.Copy(ctx, "x") {
		t.Error("Copy reported success with cancelled context")
	}
}

func TestMemory(t *testing.T) {
	m := &Memory{}
	if !m.Copy(context.Background(), "a") || !m.Copy(context.Background(), "b") {
		t.Fatal("Memory.Copy reported failure")
	}
	if m.Last() != "b" || m.Count() != 2 {
		t.Errorf("Last = %q, Count = %d", m.Last(), m.Count())
	}

	m.Fail = true
	if m.Copy(context.Background(), "c") {
		t.Error("Copy succeeded with Fail set")
	}
	if m.Last() != "b" {
		t.Errorf("failed copy changed Last to %q", m.Last())
	}
}

func TestDisabled(t *testing.T) {
	if (Disabled{}).Copy(context.Background(), "x") {
		t.Error("Disabled.Copy reported success")
	}
}
