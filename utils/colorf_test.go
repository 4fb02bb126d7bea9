package utils

import "testing"

func TestColorFloatAddScale(t *testing.T) {
	a := NewColorFloat([]float32{1, 0, 0})
	b := NewColorFloat([]float32{0, 0.5, 0})

	sum := a.Add(b)
	if sum != (ColorFloat{1, 0.5, 0, 2}) {
		t.Errorf("Add gave %v", sum)
	}

	avg := sum.Scale(0.5)
	if avg != (ColorFloat{0.5, 0.25, 0, 1}) {
		t.Errorf("Scale gave %v", avg)
	}
}

func TestVec3Array32to64(t *testing.T) {
	out := Vec3Array32to64(nil)
	if len(out) != 0 {
		t.Errorf("nil input gave %d elements", len(out))
	}
}

func TestFloatArray32to64(t *testing.T) {
	out := FloatArray32to64([]float32{1, 2.5, -3})
	want := []float64{1, 2.5, -3}
	if len(out) != len(want) {
		t.Fatalf("length %d; expected %d", len(out), len(want))
	}
	for i := range want {
		if out[i] != want[i] {
			t.Errorf("element %d is %v; expected %v", i, out[i], want[i])
		}
	}
}

func TestRandomNameGeneratorUnique(t *testing.T) {
	rng := NewRandomNameGenerator(0)
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		name := rng.RandomName()
		if name == "" {
			t.Fatalf("empty generated name")
		}
		if seen[name] {
			t.Fatalf("duplicate generated name %q", name)
		}
		seen[name] = true
	}
}

func TestRandomNameGeneratorSeeded(t *testing.T) {
	first := NewRandomNameGenerator(42).RandomName()
	second := NewRandomNameGenerator(42).RandomName()
	if first != second {
		t.Errorf("same seed gave %q and %q", first, second)
	}
}
