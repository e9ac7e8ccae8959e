package histrion

import (
	"math"
	"testing"

	"github.com/google/uuid"
)

func TestNewNumRejectsNaN(t *testing.T) {
	if _, err := NewNum(math.NaN()); err == nil {
		t.Error("expected error constructing Num from NaN")
	}

	n, err := NewNum(3.5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if float64(n) != 3.5 {
		t.Errorf("n = %v, want 3.5", n)
	}
}

func TestSignalKeyStructuralEquality(t *testing.T) {
	h := uuid.New()

	a := Signal{Head: "arrived", Body: []Value{NumValue{N: 1}, ActorValue{Handle: h}}}
	b := Signal{Head: "arrived", Body: []Value{NumValue{N: 1}, ActorValue{Handle: h}}}
	c := Signal{Head: "arrived", Body: []Value{NumValue{N: 2}, ActorValue{Handle: h}}}

	if a.Key() != b.Key() {
		t.Errorf("structurally equal signals should share a key: %q vs %q", a.Key(), b.Key())
	}
	if a.Key() == c.Key() {
		t.Errorf("structurally distinct signals should not share a key")
	}
}

func TestStructValueDisplayIsNameSorted(t *testing.T) {
	v := StructValue{Fields: map[string]Value{
		"z": NumValue{N: 3},
		"x": NumValue{N: 1},
		"y": NumValue{N: 2},
	}}

	want := "{ x = 1; y = 2; z = 3; }"
	if got := v.String(); got != want {
		t.Errorf("StructValue.String() = %q, want %q", got, want)
	}
}

func TestPositionValueFields(t *testing.T) {
	pos := Position{X: 1, Y: 2, Z: 3}
	v := positionValue(pos)

	sv, ok := v.(StructValue)
	if !ok {
		t.Fatalf("positionValue returned %T, want StructValue", v)
	}
	for name, want := range map[string]float64{"x": 1, "y": 2, "z": 3} {
		got, ok := sv.Fields[name].(NumValue)
		if !ok {
			t.Fatalf("field %s missing or wrong type", name)
		}
		if float64(got.N) != want {
			t.Errorf("field %s = %v, want %v", name, got.N, want)
		}
	}
}
