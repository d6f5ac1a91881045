package pool

import "testing"

func TestAllocateFirstFreeSlot(t *testing.T) {
	p := New[int](3, nil)

	for want := 0; want < 3; want++ {
		idx, ok := p.Allocate(want * 10)
		if !ok || idx != want {
			t.Fatalf("Allocate() = (%d, %v), expected (%d, true)", idx, ok, want)
		}
	}
	if p.Len() != 3 {
		t.Errorf("Len() = %d, expected 3", p.Len())
	}

	p.Free(1)
	idx, ok := p.Allocate(99)
	if !ok || idx != 1 {
		t.Errorf("Allocate() after Free(1) = (%d, %v), expected (1, true)", idx, ok)
	}
	if got := *p.Get(1); got != 99 {
		t.Errorf("Get(1) = %d, expected 99", got)
	}
}

func TestAllocateWhenFullIsNoOp(t *testing.T) {
	var released []int
	p := New[int](2, func(v *int) { released = append(released, *v) })

	p.Allocate(1)
	p.Allocate(2)

	idx, ok := p.Allocate(3)
	if ok || idx != -1 {
		t.Errorf("Allocate() on full pool = (%d, %v), expected (-1, false)", idx, ok)
	}
	if p.Len() != 2 {
		t.Errorf("Len() = %d, expected 2", p.Len())
	}
	if *p.Get(0) != 1 || *p.Get(1) != 2 {
		t.Errorf("full pool contents changed: %d, %d", *p.Get(0), *p.Get(1))
	}
	if len(released) != 1 || released[0] != 3 {
		t.Errorf("released = %v, expected [3]", released)
	}
}

func TestNeverExceedsCapacity(t *testing.T) {
	p := New[int](5, nil)
	for i := 0; i < 50; i++ {
		p.Allocate(i)
		if p.Len() > p.Cap() {
			t.Fatalf("Len() = %d exceeds Cap() = %d", p.Len(), p.Cap())
		}
	}

	p.Free(3)
	if !p.HasFree() {
		t.Fatal("HasFree() = false after Free")
	}
	if _, ok := p.Allocate(100); !ok {
		t.Error("Allocate() after Free should succeed")
	}
	if _, ok := p.Allocate(101); ok {
		t.Error("second Allocate() after a single Free should be dropped")
	}
}

func TestFreeReleases(t *testing.T) {
	var released []string
	p := New[string](2, func(v *string) { released = append(released, *v) })

	idx, _ := p.Allocate("a")
	p.Free(idx)
	p.Free(idx) // already empty

	if len(released) != 1 || released[0] != "a" {
		t.Errorf("released = %v, expected [a]", released)
	}
	if p.Get(idx) != nil {
		t.Error("Get() on freed slot should return nil")
	}
	if p.Get(-1) != nil || p.Get(5) != nil {
		t.Error("Get() out of range should return nil")
	}
}

func TestAllIteratesLiveSlotsInOrder(t *testing.T) {
	p := New[int](5, nil)
	for i := 0; i < 5; i++ {
		p.Allocate(i)
	}
	p.Free(1)
	p.Free(3)

	var got []int
	for i, v := range p.All() {
		if i != *v {
			t.Errorf("slot %d holds %d", i, *v)
		}
		got = append(got, i)
	}
	expected := []int{0, 2, 4}
	if len(got) != len(expected) {
		t.Fatalf("All() = %v, expected %v", got, expected)
	}
	for i := range expected {
		if got[i] != expected[i] {
			t.Errorf("All()[%d] = %d, expected %d", i, got[i], expected[i])
		}
	}

	// Restartable
	count := 0
	for range p.All() {
		count++
	}
	if count != 3 {
		t.Errorf("second pass saw %d slots, expected 3", count)
	}
}

func TestAllAllowsFreeDuringIteration(t *testing.T) {
	p := New[int](4, nil)
	for i := 0; i < 4; i++ {
		p.Allocate(i)
	}

	visited := 0
	for i := range p.All() {
		visited++
		p.Free(i)
		if i == 0 {
			p.Free(2) // ahead of the cursor: must be skipped
		}
	}

	if visited != 3 {
		t.Errorf("visited %d slots, expected 3", visited)
	}
	if p.Len() != 0 {
		t.Errorf("Len() = %d, expected 0", p.Len())
	}
}

func TestClear(t *testing.T) {
	released := 0
	p := New[int](3, func(*int) { released++ })
	p.Allocate(1)
	p.Allocate(2)

	p.Clear()

	if p.Len() != 0 {
		t.Errorf("Len() = %d, expected 0", p.Len())
	}
	if released != 2 {
		t.Errorf("released %d values, expected 2", released)
	}
}
