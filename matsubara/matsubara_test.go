package matsubara_test

import (
	"errors"
	"math"
	"testing"

	"flexkit/matsubara"
)

// TestWindowValidate verifies ordering and parity rules for both statistics.
func TestWindowValidate(t *testing.T) {
	cases := []struct {
		name string
		w    matsubara.Window
		s    matsubara.Statistic
		err  error
	}{
		{"FermionicDefault", matsubara.Window{Lower: -1, Upper: 1}, matsubara.Fermionic, nil},
		{"FermionicWide", matsubara.Window{Lower: -31, Upper: 31}, matsubara.Fermionic, nil},
		{"BosonicDefault", matsubara.Window{Lower: 0, Upper: 0}, matsubara.Bosonic, nil},
		{"BosonicWide", matsubara.Window{Lower: -30, Upper: 30}, matsubara.Bosonic, nil},
		{"Inverted", matsubara.Window{Lower: 1, Upper: -1}, matsubara.Fermionic, matsubara.ErrWindowOrder},
		{"FermionicEvenBound", matsubara.Window{Lower: -2, Upper: 1}, matsubara.Fermionic, matsubara.ErrWindowParity},
		{"BosonicOddBound", matsubara.Window{Lower: 0, Upper: 3}, matsubara.Bosonic, matsubara.ErrWindowParity},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if err := tc.w.Validate(tc.s); !errors.Is(err, tc.err) {
				t.Errorf("Validate(%v, %v) = %v; want %v", tc.w, tc.s, err, tc.err)
			}
		})
	}
}

// TestWindowNumEnergies checks the stride-2 sample count.
func TestWindowNumEnergies(t *testing.T) {
	cases := []struct {
		w    matsubara.Window
		want int
	}{
		{matsubara.Window{Lower: -1, Upper: 1}, 2},
		{matsubara.Window{Lower: 0, Upper: 0}, 1},
		{matsubara.Window{Lower: -15, Upper: 15}, 16},
		{matsubara.Window{Lower: -14, Upper: 14}, 15},
	}
	for _, tc := range cases {
		if got := tc.w.NumEnergies(); got != tc.want {
			t.Errorf("NumEnergies(%v) = %d; want %d", tc.w, got, tc.want)
		}
	}
}

// TestAxis checks index/energy evaluation and metadata equality.
func TestAxis(t *testing.T) {
	const fundamental = 0.01
	a := matsubara.NewAxis(matsubara.Window{Lower: -3, Upper: 3}, fundamental)

	if got := a.NumEnergies(); got != 4 {
		t.Fatalf("NumEnergies() = %d; want 4", got)
	}
	wantIdx := []int{-3, -1, 1, 3}
	for n, want := range wantIdx {
		if got := a.Index(n); got != want {
			t.Errorf("Index(%d) = %d; want %d", n, got, want)
		}
		if got := a.Energy(n); math.Abs(got-float64(want)*fundamental) > 1e-15 {
			t.Errorf("Energy(%d) = %g; want %g", n, got, float64(want)*fundamental)
		}
	}

	if !a.Equal(a) {
		t.Error("Equal(self) = false; want true")
	}
	b := a
	b.Fundamental = 0.02
	if a.Equal(b) {
		t.Error("Equal with different spacing = true; want false")
	}
	if got := a.Window(); got != (matsubara.Window{Lower: -3, Upper: 3}) {
		t.Errorf("Window() = %v", got)
	}
}

// TestFundamentalEnergy pins π·k_B·T.
func TestFundamentalEnergy(t *testing.T) {
	got := matsubara.FundamentalEnergy(100)
	want := math.Pi * matsubara.Boltzmann * 100
	if math.Abs(got-want) > 1e-18 {
		t.Errorf("FundamentalEnergy(100) = %g; want %g", got, want)
	}
}
