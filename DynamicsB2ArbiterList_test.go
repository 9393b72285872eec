package box2dlite_test

import (
	"testing"

	"github.com/ByteArena/box2dlite"
)

func TestArbiterList(t *testing.T) {
	a := makeBox(0.0, 0.0, 1.0, 1.0, 1.0)
	b := makeBox(0.5, 0.0, 1.0, 1.0, 1.0)
	c := makeBox(0.0, 0.5, 1.0, 1.0, 1.0)
	registerBodies(t, a, b, c)

	ab, _ := box2dlite.NewB2Arbiter(a, b)
	ac, _ := box2dlite.NewB2Arbiter(a, c)
	bc, _ := box2dlite.NewB2Arbiter(b, c)

	list := box2dlite.NewB2ArbiterList()
	list.Add(ab)
	list.Add(ac)

	if list.GetLength() != 2 {
		t.Fatalf("length: %d", list.GetLength())
	}

	// The pair is unordered: a probe built the other way round finds the entry.
	probe := &box2dlite.B2Arbiter{Body1: a, Body2: b}
	if index, ok := list.GetIndex(probe); !ok || index != 0 || list.Get(index) != ab {
		t.Fatalf("GetIndex(b, a): %d %v", index, ok)
	}

	if index, ok := list.GetIndex(bc); ok || index != -1 {
		t.Fatalf("GetIndex of a missing pair: %d %v", index, ok)
	}

	if list.Get(2) != nil || list.Get(-1) != nil {
		t.Fatalf("Get out of range should be nil")
	}

	if list.Remove(bc) {
		t.Fatalf("removing a missing pair should report false")
	}

	list.Add(bc)
	if !list.Remove(probe) {
		t.Fatalf("Remove(b, a) failed")
	}

	if list.GetLength() != 2 || list.Get(0) != ac || list.Get(1) != bc {
		t.Fatalf("remove should keep the order of the others")
	}

	list.Clear()
	if list.GetLength() != 0 {
		t.Fatalf("Clear left %d arbiters", list.GetLength())
	}
}
