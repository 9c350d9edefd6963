package ecs_test

import (
	"testing"

	"github.com/brindlework/ecs"
)

// go test -run ^TestSparseSetInsertAndContains$ . -count 1
func TestSparseSetInsertAndContains(t *testing.T) {
	s := ecs.NewSparseSet[uint32](0)

	if s.Contains(5) {
		t.Fatal("empty set reported containing 5")
	}
	s.Insert(5)
	if !s.Contains(5) {
		t.Fatal("set did not contain 5 after Insert")
	}
	if s.Len() != 1 {
		t.Errorf("expected Len 1, got %d", s.Len())
	}
}

// go test -run ^TestSparseSetInsertIsIdempotent$ . -count 1
func TestSparseSetInsertIsIdempotent(t *testing.T) {
	// Regression test for the source design's insert-via-vec.insert bug:
	// inserting an already-contained value must never shift or duplicate
	// any element, only no-op.
	s := ecs.NewSparseSet[uint32](0)
	s.Insert(1)
	s.Insert(2)
	s.Insert(3)

	s.Insert(2) // already present

	if s.Len() != 3 {
		t.Fatalf("expected Len 3 after re-inserting an existing member, got %d", s.Len())
	}
	values := s.Values()
	seen := map[uint32]int{}
	for _, v := range values {
		seen[v]++
	}
	for _, v := range []uint32{1, 2, 3} {
		if seen[v] != 1 {
			t.Errorf("expected exactly one occurrence of %d, got %d", v, seen[v])
		}
	}
}

// go test -run ^TestSparseSetErase$ . -count 1
func TestSparseSetErase(t *testing.T) {
	s := ecs.NewSparseSet[uint32](0)
	s.Insert(1)
	s.Insert(2)
	s.Insert(3)

	s.Erase(2)
	if s.Contains(2) {
		t.Fatal("2 still reported contained after Erase")
	}
	if s.Len() != 2 {
		t.Fatalf("expected Len 2 after erase, got %d", s.Len())
	}
	if !s.Contains(1) || !s.Contains(3) {
		t.Fatal("erase disturbed an unrelated member")
	}

	// Erasing an absent value is a documented no-op.
	s.Erase(99)
	if s.Len() != 2 {
		t.Fatalf("erase of absent value changed Len to %d", s.Len())
	}
}

// go test -run ^TestSparseSetValuesBoundedBySize$ . -count 1
func TestSparseSetValuesBoundedBySize(t *testing.T) {
	// Regression test for the source design's "end() == dense.end() +
	// size" bug: Values() must be bounded exactly by size, never beyond.
	s := ecs.NewSparseSet[uint32](0)
	for i := uint32(0); i < 5; i++ {
		s.Insert(i)
	}
	s.Erase(2)
	if got := len(s.Values()); got != 4 {
		t.Fatalf("expected Values() length 4 after one erase, got %d", got)
	}
}

// go test -run ^TestSparseSetClear$ . -count 1
func TestSparseSetClear(t *testing.T) {
	s := ecs.NewSparseSet[uint32](0)
	s.Insert(1)
	s.Insert(2)
	s.Clear()
	if s.Len() != 0 {
		t.Fatalf("expected Len 0 after Clear, got %d", s.Len())
	}
	if s.Contains(1) {
		t.Fatal("Clear did not remove membership")
	}
}

// go test -run ^TestSparseSetReserveNeverShrinks$ . -count 1
func TestSparseSetReserveNeverShrinks(t *testing.T) {
	s := ecs.NewSparseSet[uint32](16)
	before := s.Cap()
	s.Reserve(4)
	if s.Cap() != before {
		t.Fatalf("Reserve with a smaller cap shrank the set: before %d, after %d", before, s.Cap())
	}
}
