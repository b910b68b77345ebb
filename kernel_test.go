package mandel

import (
	"math"
	"math/cmplx"
	"testing"
)

func TestEscape(t *testing.T) {
	tests := []struct {
		name    string
		c       complex128
		n       int
		maxIter int
		want    EscapeResult
	}{
		{"origin", 0, 2, 100, Bounded},
		{"far outside", 3, 2, 100, EscapedAt(0)},
		// |z|^2 == 4 on the first step is not an escape
		{"radius boundary", 2, 2, 100, EscapedAt(1)},
		{"radius boundary, one iteration", 2, 2, 1, Bounded},
		{"tip of the needle", -2, 2, 1000, Bounded},
		{"period two cycle", 1i, 2, 100, Bounded},
		{"cusp neighbourhood", 0.5, 2, 100, EscapedAt(4)},
		{"diagonal", 1 + 1i, 2, 10, EscapedAt(1)},
		{"cubic one", 1, 3, 100, EscapedAt(2)},
		{"cubic minus one", -1, 3, 100, EscapedAt(2)},
		{"cubic half", 0.5, 3, 50, EscapedAt(5)},
		{"quartic diagonal", 1 + 1i, 4, 10, EscapedAt(1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Escape(tt.c, tt.n, tt.maxIter)
			if got != tt.want {
				t.Errorf("Escape(%v, %d, %d) = %v, want %v", tt.c, tt.n, tt.maxIter, got, tt.want)
			}
		})
	}
}

func TestEscapeDeterministic(t *testing.T) {
	points := []complex128{-0.75 + 0.1i, 0.26, -1.25 + 0.02i, 0.3 - 0.5i}
	for _, c := range points {
		for n := 2; n <= 5; n++ {
			first := Escape(c, n, 200)
			for range 5 {
				if got := Escape(c, n, 200); got != first {
					t.Fatalf("Escape(%v, %d) changed between calls: %v then %v", c, n, first, got)
				}
			}
		}
	}
}

func TestBoundedIsDistinct(t *testing.T) {
	if EscapedAt(0) == Bounded {
		t.Fatal("EscapedAt(0) must differ from Bounded")
	}
	if !Bounded.IsBounded() || EscapedAt(0).IsBounded() {
		t.Fatal("IsBounded mixed up")
	}
	if k, ok := EscapedAt(7).Iterations(); k != 7 || !ok {
		t.Errorf("EscapedAt(7).Iterations() = %d, %v", k, ok)
	}
	if _, ok := Bounded.Iterations(); ok {
		t.Error("Bounded reports an escape")
	}
	// a cap of 1 must still tell bounded points from points escaping on iteration 0
	if Escape(0, 2, 1) == Escape(5, 2, 1) {
		t.Error("cap of 1 aliases bounded and escaped")
	}
	if Bounded.String() != "bounded" || EscapedAt(3).String() != "escaped(3)" {
		t.Errorf("String: %q %q", Bounded, EscapedAt(3))
	}
}

func TestEscapedAtSaturates(t *testing.T) {
	if k, _ := EscapedAt(math.MaxInt32 + 10).Iterations(); k != math.MaxInt32 {
		t.Errorf("EscapedAt past int32 = %d, want %d", k, math.MaxInt32)
	}
	if k, _ := EscapedAt(-3).Iterations(); k != 0 {
		t.Errorf("EscapedAt(-3) = %d, want 0", k)
	}
}

func TestIpow(t *testing.T) {
	zs := []complex128{0, 1, -1, 1i, 0.5 - 0.25i, -1.3 + 0.7i}
	for _, z := range zs {
		for n := 0; n <= 7; n++ {
			got := ipow(z, n)
			want := cmplx.Pow(z, complex(float64(n), 0))
			if n == 0 {
				want = 1
			}
			if cmplx.Abs(got-want) > 1e-12*math.Max(1, cmplx.Abs(want)) {
				t.Errorf("ipow(%v, %d) = %v, want %v", z, n, got, want)
			}
		}
	}
}

func BenchmarkEscape(b *testing.B) {
	for b.Loop() {
		Escape(-0.75+0.1i, 2, 1000)
	}
}
