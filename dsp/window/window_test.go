package window

import (
	"errors"
	"math"
	"testing"
)

func TestGenerateAllTypes(t *testing.T) {
	for typ := range names {
		t.Run(typ.String(), func(t *testing.T) {
			w := Generate(typ, 64)
			if len(w) != 64 {
				t.Fatalf("len=%d, want 64", len(w))
			}

			for i, v := range w {
				if math.IsNaN(v) || math.IsInf(v, 0) {
					t.Fatalf("coefficient[%d] invalid: %v", i, v)
				}
			}
		})
	}
}

func TestGenerateNonPositiveLength(t *testing.T) {
	if w := Generate(TypeHann, 0); w != nil {
		t.Fatalf("Generate(0) = %v, want nil", w)
	}
}

func TestAtCenterAndEdges(t *testing.T) {
	tests := []struct {
		typ    Type
		center float64
		edge   float64
	}{
		{typ: TypeRectangular, center: 1, edge: 1},
		{typ: TypeHann, center: 1, edge: 0},
		{typ: TypeHamming, center: 1, edge: 0.08},
		{typ: TypeBlackman, center: 1, edge: 0},
		{typ: TypeWelch, center: 1, edge: 0},
		{typ: TypeLanczos, center: 1, edge: 0},
	}

	for _, tc := range tests {
		t.Run(tc.typ.String(), func(t *testing.T) {
			if got := At(tc.typ, 0.5); math.Abs(got-tc.center) > 1e-12 {
				t.Fatalf("At(0.5) = %v, want %v", got, tc.center)
			}
			if got := At(tc.typ, 0); math.Abs(got-tc.edge) > 1e-12 {
				t.Fatalf("At(0) = %v, want %v", got, tc.edge)
			}
		})
	}
}

func TestAtClampsOutsideRange(t *testing.T) {
	if got := At(TypeHann, -0.5); math.Abs(got) > 1e-12 {
		t.Fatalf("At(-0.5) = %v, want 0", got)
	}
	if got := At(TypeHann, 1.5); math.Abs(got) > 1e-12 {
		t.Fatalf("At(1.5) = %v, want 0", got)
	}
}

func TestHannMatchesRaisedCosine(t *testing.T) {
	// Hann at 0.5+d/n equals 0.5+0.5cos(2*pi*d/n), the classic sinc taper.
	const n = 8.0
	for _, d := range []float64{-3.5, -2.25, -0.5, 0, 0.75, 1.5, 3.9} {
		want := 0.5 + 0.5*math.Cos(2*math.Pi*d/n)
		if got := At(TypeHann, 0.5+d/n); math.Abs(got-want) > 1e-12 {
			t.Fatalf("d=%v: got %v want %v", d, got, want)
		}
	}
}

func TestKaiserBeta(t *testing.T) {
	flat := At(TypeKaiser, 0.1, WithAlpha(0))
	if flat != 1 {
		t.Fatalf("Kaiser beta=0 = %v, want 1", flat)
	}

	steep := At(TypeKaiser, 0.1, WithAlpha(8))
	if steep <= 0 || steep >= 1 {
		t.Fatalf("Kaiser beta=8 at 0.1 = %v, want in (0,1)", steep)
	}
}

func TestEvaluatorMatchesAt(t *testing.T) {
	eval := Evaluator(TypeKaiser, WithAlpha(6))
	for _, x := range []float64{0, 0.2, 0.5, 0.9} {
		if got, want := eval(x), At(TypeKaiser, x, WithAlpha(6)); got != want {
			t.Fatalf("x=%v: Evaluator=%v At=%v", x, got, want)
		}
	}
}

func TestPeriodicDiffersFromSymmetric(t *testing.T) {
	sym := Generate(TypeHann, 8)
	per := Generate(TypeHann, 8, WithPeriodic())
	if sym[7] != 0 {
		t.Fatalf("symmetric last = %v, want 0", sym[7])
	}
	if per[7] == 0 {
		t.Fatal("periodic last coefficient should be non-zero")
	}
}

func TestApply(t *testing.T) {
	buf := []float64{2, 2, 2, 2}
	Apply(TypeHann, buf)

	want := []float64{0, 1.5, 1.5, 0}
	for i := range want {
		if math.Abs(buf[i]-want[i]) > 1e-12 {
			t.Fatalf("index %d: got %v want %v", i, buf[i], want[i])
		}
	}
}

func TestCoherentGain(t *testing.T) {
	g, err := CoherentGain(Generate(TypeHann, 4096, WithPeriodic()))
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(g-0.5) > 1e-9 {
		t.Fatalf("Hann coherent gain = %v, want 0.5", g)
	}

	if _, err := CoherentGain(nil); !errors.Is(err, errEmptyCoeffs) {
		t.Fatalf("err = %v, want errEmptyCoeffs", err)
	}
}

func TestParse(t *testing.T) {
	for typ, name := range names {
		got, err := Parse(" " + name + " ")
		if err != nil {
			t.Fatalf("Parse(%q) error = %v", name, err)
		}
		if got != typ {
			t.Fatalf("Parse(%q) = %v, want %v", name, got, typ)
		}
	}

	if _, err := Parse("nope"); !errors.Is(err, errUnknownType) {
		t.Fatalf("err = %v, want errUnknownType", err)
	}
}
