package bouncer

import (
	"math/rand"
	"testing"
)

func testField() Field {
	f := NewField(640, 384)
	f.Refresh()
	return f
}

func zeroAngle() float64 { return 0 }

func TestRegistrySpawnCap(t *testing.T) {
	r := NewRegistry(1, 8, 16)
	if !r.RequestSpawn() {
		t.Fatal("first spawn should be accepted")
	}
	if r.FlushOneSpawn(testField(), zeroAngle, 1) == nil {
		t.Fatal("flush should activate the pending ball")
	}

	if r.RequestSpawn() {
		t.Error("spawn beyond the cap should be rejected")
	}
	if r.Pending() != 0 {
		t.Errorf("pending = %d, want 0", r.Pending())
	}
}

func TestRegistryNeverExceedsCap(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	r := NewRegistry(3, 8, 16)
	field := testField()

	for i := range 500 {
		switch rng.Intn(3) {
		case 0:
			r.RequestSpawn()
		case 1:
			r.FlushOneSpawn(field, zeroAngle, 1)
		case 2:
			if active := r.Active(); len(active) > 0 {
				r.RequestRemoval(active[rng.Intn(len(active))])
				r.FlushRemovals()
			}
		}
		if n := len(r.Active()) + r.Pending(); n > r.MaxBalls {
			t.Fatalf("step %d: %d balls exceed cap %d", i, n, r.MaxBalls)
		}
	}
}

func TestRegistryFlushIsLIFO(t *testing.T) {
	r := NewRegistry(5, 8, 16)
	for range 3 {
		r.RequestSpawn()
	}

	field := testField()
	for _, want := range []int{3, 2, 1} {
		b := r.FlushOneSpawn(field, zeroAngle, 1)
		if b == nil || b.ID != want {
			t.Fatalf("flushed %v, want ball %d", b, want)
		}
	}
	if r.FlushOneSpawn(field, zeroAngle, 1) != nil {
		t.Error("flush on an empty queue should return nil")
	}
}

func TestRegistryFlushPlacesBall(t *testing.T) {
	r := NewRegistry(5, 8, 16)
	r.RequestSpawn()

	calls := 0
	angle := func() float64 { calls++; return 0 }
	b := r.FlushOneSpawn(testField(), angle, 0.5)

	if b.State != BallActive {
		t.Errorf("state = %v, want active", b.State)
	}
	if b.X != 316 || b.Y != 184 || b.NextX != 316 || b.NextY != 184 {
		t.Errorf("position = (%v, %v) -> (%v, %v), want centered (316, 184)", b.X, b.Y, b.NextX, b.NextY)
	}
	if b.DX != 1 || b.DY != 0 || b.Speed != 0.5 {
		t.Errorf("velocity = (%v, %v) * %v", b.DX, b.DY, b.Speed)
	}
	if calls != 1 {
		t.Errorf("angle called %d times, want 1", calls)
	}

	r.FlushOneSpawn(testField(), angle, 0.5)
	if calls != 1 {
		t.Error("angle must not be drawn when nothing is pending")
	}
}

func TestRegistryRemoval(t *testing.T) {
	r := NewRegistry(5, 8, 16)
	field := testField()
	r.RequestSpawn()
	r.RequestSpawn()
	first := r.FlushOneSpawn(field, zeroAngle, 1)
	second := r.FlushOneSpawn(field, zeroAngle, 1)

	r.RequestRemoval(first)
	r.RequestRemoval(first)
	if len(r.Active()) != 2 {
		t.Fatal("removal must wait for the flush")
	}

	removed := r.FlushRemovals()
	if len(removed) != 1 || removed[0] != first {
		t.Fatalf("removed = %v, want only the first ball", removed)
	}
	if first.State != BallRemoved {
		t.Errorf("state = %v, want removed", first.State)
	}
	if active := r.Active(); len(active) != 1 || active[0] != second {
		t.Errorf("active = %v, want only the second ball", active)
	}
	if r.FlushRemovals() != nil {
		t.Error("second flush should find nothing")
	}
}

func TestRegistryIgnoresPendingRemoval(t *testing.T) {
	r := NewRegistry(5, 8, 16)
	r.RequestSpawn()
	pending := NewBall(99, 8, 16)
	r.RequestRemoval(pending)
	if got := r.FlushRemovals(); got != nil {
		t.Errorf("pending ball was removed: %v", got)
	}
}

func TestRegistryReset(t *testing.T) {
	r := NewRegistry(5, 8, 16)
	r.RequestSpawn()
	r.RequestSpawn()
	r.FlushOneSpawn(testField(), zeroAngle, 1)
	r.Reset()

	if !r.Empty() {
		t.Error("registry should be empty after reset")
	}
	r.RequestSpawn()
	if b := r.FlushOneSpawn(testField(), zeroAngle, 1); b.ID != 1 {
		t.Errorf("first ID after reset = %d, want 1", b.ID)
	}
}
