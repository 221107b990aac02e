package script

import (
	"testing"

	"github.com/milk9111/danmaku/ecs"
)

func TestRNGDeterministicSequence(t *testing.T) {
	a := NewRNG(1234)
	b := NewRNG(1234)
	for i := 0; i < 100; i++ {
		if av, bv := a.Float(), b.Float(); av != bv {
			t.Fatalf("draw %d diverged: %v != %v", i, av, bv)
		}
	}
	if a.Position() != 100 {
		t.Fatalf("expected position 100, got %d", a.Position())
	}
}

func TestRNGSeedsDiffer(t *testing.T) {
	a := NewRNG(1)
	b := NewRNG(2)
	same := true
	for i := 0; i < 10; i++ {
		if a.Float() != b.Float() {
			same = false
		}
	}
	if same {
		t.Fatalf("different seeds produced identical draws")
	}
}

func TestRNGRangeBounds(t *testing.T) {
	r := NewRNG(99)
	for i := 0; i < 1000; i++ {
		v := r.Range(-5, 5)
		if v < -5 || v >= 5 {
			t.Fatalf("draw %d out of range: %v", i, v)
		}
	}
}

// Child contexts share the parent's RNG instance, so a parent-then-child
// draw ordering consumes one underlying sequence. Replays depend on this.
func TestChildContextSharesRandomSequence(t *testing.T) {
	w := ecs.NewWorld()
	parent := NewContext(w, 0, NewRNG(42))
	child := parent.Child(ecs.CreateEntity(w))

	var interleaved []float64
	for i := 0; i < 4; i++ {
		interleaved = append(interleaved, parent.Random(), child.Random())
	}

	ref := NewRNG(42)
	for i, v := range interleaved {
		if want := ref.Float(); v != want {
			t.Fatalf("interleaved draw %d = %v, want %v", i, v, want)
		}
	}
	if parent.Rng != child.Rng {
		t.Fatalf("child must share the parent RNG instance")
	}
}
