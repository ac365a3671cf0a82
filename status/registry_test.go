package status

import (
	"sync"
	"testing"

	"github.com/lixenwraith/edgecam/vmath"
)

func TestMetricPointerIsCached(t *testing.T) {
	r := NewRegistry()
	a := r.Floats.Get(KeyCameraX)
	b := r.Floats.Get(KeyCameraX)
	if a != b {
		t.Error("Expected same pointer for repeated Get")
	}
	a.Set(-12.5)
	if b.Get() != -12.5 {
		t.Errorf("Expected -12.5, got %v", b.Get())
	}
}

func TestSnapshot(t *testing.T) {
	r := NewRegistry()
	r.Bools.Get(KeyPlacementResolved).Store(true)
	r.Ints.Get(KeyCameraClamps).Store(3)
	r.Floats.Get(KeyCameraZoom).Set(7.25)
	r.Strings.Get(KeyPlacementTeam).Store("red")
	r.Vectors.Get(KeyCameraPosition).Set(vmath.Vec3F{X: 50, Z: -12.5})

	snap := r.Snapshot()
	want := map[string]string{
		KeyPlacementResolved: "true",
		KeyCameraClamps:      "3",
		KeyCameraZoom:        "7.25",
		KeyPlacementTeam:     "red",
		KeyCameraPosition:    "50.00,0.00,-12.50",
	}
	for k, v := range want {
		if snap[k] != v {
			t.Errorf("%s = %q, want %q", k, snap[k], v)
		}
	}
	if r.TotalCount() != 5 {
		t.Errorf("Expected 5 metrics, got %d", r.TotalCount())
	}
}

func TestLookupDoesNotRegister(t *testing.T) {
	r := NewRegistry()
	if _, ok := r.Ints.Lookup(KeyMatchPlayers); ok {
		t.Fatal("Lookup found unregistered key")
	}
	if r.Ints.Count() != 0 {
		t.Error("Lookup must not register")
	}
	r.Ints.Get(KeyMatchPlayers).Store(2)
	if p, ok := r.Ints.Lookup(KeyMatchPlayers); !ok || p.Load() != 2 {
		t.Error("Expected registered metric")
	}
}

func TestAtomicStringTruncates(t *testing.T) {
	var s AtomicString
	long := "0123456789012345678901234567890123456789"
	s.Store(long)
	if got := s.Load(); len(got) != MaxStringLen {
		t.Errorf("Expected truncation to %d, got %d", MaxStringLen, len(got))
	}
}

func TestConcurrentRegistration(t *testing.T) {
	m := NewMetricMap[AtomicFloat]()
	var wg sync.WaitGroup
	ptrs := make([]*AtomicFloat, 16)
	for i := range ptrs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			ptrs[i] = m.Get("k")
		}(i)
	}
	wg.Wait()
	for _, p := range ptrs[1:] {
		if p != ptrs[0] {
			t.Fatal("Concurrent Get returned different pointers")
		}
	}
}

func TestAtomicVec3ZeroValue(t *testing.T) {
	var v AtomicVec3
	if v.Get() != (vmath.Vec3F{}) {
		t.Error("Zero value should read as origin")
	}
	v.Set(vmath.Vec3F{X: 1, Y: 2, Z: 3})
	if v.Get() != (vmath.Vec3F{X: 1, Y: 2, Z: 3}) {
		t.Errorf("Unexpected %+v", v.Get())
	}
}
