package histrion

import "testing"

func TestInstantOrdering(t *testing.T) {
	a := Instant(1)
	b := Instant(2)

	if !a.Less(b) {
		t.Errorf("expected %v < %v", a, b)
	}
	if b.Less(a) {
		t.Errorf("expected %v not < %v", b, a)
	}
}

func TestIntervalArithmetic(t *testing.T) {
	start := Instant(10)
	got := start.Add(Interval(5))
	if got != Instant(15) {
		t.Errorf("start.Add(5) = %v, want 15", got)
	}

	delta := Instant(15).Sub(start)
	if delta != Interval(5) {
		t.Errorf("delta = %v, want 5", delta)
	}
}

func TestTimeUnits(t *testing.T) {
	cases := []struct {
		name string
		got  Interval
		want float64
	}{
		{"Min", Min, 60},
		{"Hour", Hour, 3600},
		{"Day", Day, 86400},
		{"Week", Week, 604800},
		{"Year", Year, 31_556_952},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if float64(c.got) != c.want {
				t.Errorf("%s = %v, want %v", c.name, float64(c.got), c.want)
			}
		})
	}
}

func TestAccelUnits(t *testing.T) {
	if CeePerSec != 1.0 {
		t.Errorf("CeePerSec = %v, want 1.0", CeePerSec)
	}
	want := 9.81 / 299_792_458.0
	if Gee != want {
		t.Errorf("Gee = %v, want %v", Gee, want)
	}
}
