package clock

import (
	"testing"
	"time"
)

func TestFixed_Elapsed(t *testing.T) {
	t.Parallel()
	c := Fixed(100 * time.Millisecond)
	for i := 0; i < 3; i++ {
		if got := c.Elapsed(); got != 100*time.Millisecond {
			t.Fatalf("Elapsed() = %v, want 100ms", got)
		}
	}
}

func TestWall_Elapsed(t *testing.T) {
	t.Parallel()
	base := time.Unix(0, 0)
	samples := []time.Time{base, base.Add(16 * time.Millisecond), base.Add(48 * time.Millisecond), base.Add(40 * time.Millisecond)}
	i := 0
	w := NewWall(2)
	w.now = func() time.Time {
		s := samples[i]
		i++
		return s
	}

	want := []time.Duration{0, 32 * time.Millisecond, 64 * time.Millisecond, 0}
	for n, expected := range want {
		if got := w.Elapsed(); got != expected {
			t.Errorf("sample %d: Elapsed() = %v, want %v", n, got, expected)
		}
	}
}

func TestWall_Restart(t *testing.T) {
	t.Parallel()
	now := time.Unix(100, 0)
	w := NewWall(0)
	w.now = func() time.Time {
		now = now.Add(time.Second)
		return now
	}
	w.Elapsed()
	if got := w.Elapsed(); got != time.Second {
		t.Fatalf("Elapsed() = %v, want 1s", got)
	}
	w.Restart()
	if got := w.Elapsed(); got != 0 {
		t.Errorf("Elapsed() after Restart = %v, want 0", got)
	}
}
