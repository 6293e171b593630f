package pim_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/piqs/pim"
)

const tauTol = 1e-6 // absolute tolerance of the reference fixtures

// unitRates switches every channel on with rate 1 — the reference fixture
// configuration.
func unitRates() pim.Rates {
	return pim.Rates{Emission: 1, Loss: 1, Dephasing: 1, Pumping: 1, CollectivePumping: 1}
}

// TestTau_ReferenceFixtures pins all nine coefficients for N = 6, all rates
// 1, at the 3×3 neighborhood of |2, 0⟩:
//
//	| 3, 3⟩
//	| 3, 2⟩ | 2, 2⟩
//	| 3, 1⟩ | 2, 1⟩ | 1, 1⟩
//	| 3, 0⟩ | 2, 0⟩ | 1, 0⟩ | 0, 0⟩
//	| 3,-1⟩ | 2,-1⟩ | 1,-1⟩
//	| 3,-2⟩ | 2,-2⟩
//	| 3,-3⟩
func TestTau_ReferenceFixtures(t *testing.T) {
	g, err := pim.New(6, unitRates())
	require.NoError(t, err)

	cases := []struct {
		name string
		fn   func(float64, float64) (float64, error)
		j, m float64
		want float64
	}{
		{"Tau3", g.Tau3, 3, 1, 2.0},
		{"Tau2", g.Tau2, 2, 1, 8.0},
		{"Tau4", g.Tau4, 1, 1, 0.333333},
		{"Tau5", g.Tau5, 3, 0, 1.5},
		{"Tau1", g.Tau1, 2, 0, -19.5},
		{"Tau6", g.Tau6, 1, 0, 0.666667},
		{"Tau7", g.Tau7, 3, -1, 2.0},
		{"Tau8", g.Tau8, 2, -1, 8.0},
		{"Tau9", g.Tau9, 1, -1, 0.333333},
	}

	for _, tc := range cases {
		got, err := tc.fn(tc.j, tc.m)
		require.NoError(t, err, "%s(%v, %v)", tc.name, tc.j, tc.m)
		assert.InDelta(t, tc.want, got, tauTol, "%s(%v, %v)", tc.name, tc.j, tc.m)
	}
}

// TestTau_SignStructure verifies Tau1 ≤ 0 (negative total outflow) and
// Tau2..Tau9 ≥ 0 (inflows) across the whole N = 7 space with uneven rates.
func TestTau_SignStructure(t *testing.T) {
	g, err := pim.New(7, pim.Rates{Emission: 2.5, Loss: 0.3, Dephasing: 1.1, Pumping: 0.8, CollectivePumping: 0})
	require.NoError(t, err)

	inflows := []struct {
		name string
		fn   func(float64, float64) (float64, error)
	}{
		{"Tau2", g.Tau2}, {"Tau3", g.Tau3}, {"Tau4", g.Tau4}, {"Tau5", g.Tau5},
		{"Tau6", g.Tau6}, {"Tau7", g.Tau7}, {"Tau8", g.Tau8}, {"Tau9", g.Tau9},
	}

	for _, el := range g.Space().Elements() {
		t1, err := g.Tau1(el.J, el.M)
		require.NoError(t, err)
		assert.LessOrEqual(t, t1, 0.0, "Tau1%v must not be positive", el)

		for _, in := range inflows {
			v, err := in.fn(el.J, el.M)
			require.NoError(t, err, "%s%v", in.name, el)
			assert.GreaterOrEqual(t, v, 0.0, "%s%v must not be negative", in.name, el)
		}
	}
}

// TestTau_ReflectionSymmetry verifies the m → −m mirror pairing
// {(Tau3,Tau7), (Tau2,Tau8), (Tau4,Tau9)} for a rate set symmetric under
// population inversion (collective emission ↔ collective pumping,
// loss ↔ pumping), with dephasing free.
func TestTau_ReflectionSymmetry(t *testing.T) {
	for _, n := range []int{4, 6, 7} {
		g, err := pim.New(n, pim.Rates{
			Emission:          0.7,
			CollectivePumping: 0.7,
			Loss:              1.3,
			Pumping:           1.3,
			Dephasing:         0.9,
		})
		require.NoError(t, err)

		for _, el := range g.Space().Elements() {
			t3, err := g.Tau3(el.J, el.M)
			require.NoError(t, err)
			t7, err := g.Tau7(el.J, -el.M)
			require.NoError(t, err)
			assert.InDelta(t, t3, t7, tauTol, "N=%d Tau3%v vs Tau7 mirror", n, el)

			t2, err := g.Tau2(el.J, el.M)
			require.NoError(t, err)
			t8, err := g.Tau8(el.J, -el.M)
			require.NoError(t, err)
			assert.InDelta(t, t2, t8, tauTol, "N=%d Tau2%v vs Tau8 mirror", n, el)

			t4, err := g.Tau4(el.J, el.M)
			require.NoError(t, err)
			t9, err := g.Tau9(el.J, -el.M)
			require.NoError(t, err)
			assert.InDelta(t, t4, t9, tauTol, "N=%d Tau4%v vs Tau9 mirror", n, el)
		}
	}
}

// TestTau_BoundaryZeros verifies the j = 0 guards: every off-diagonal
// coefficient vanishes at |0, 0⟩ (no ladder below, nothing to slide), and
// the diagonal reduces to the pure dephasing + local terms.
func TestTau_BoundaryZeros(t *testing.T) {
	g, err := pim.New(6, unitRates())
	require.NoError(t, err)

	for _, fn := range []func(float64, float64) (float64, error){
		g.Tau2, g.Tau3, g.Tau5, g.Tau7, g.Tau8,
	} {
		v, err := fn(0, 0)
		require.NoError(t, err)
		assert.Zero(t, v, "same/upper-ladder channels must vanish at |0, 0⟩")
	}

	// γL·N/2 + γP·N/2 + γD·N/4 = 3 + 3 + 1.5 at unit rates, N = 6.
	t1, err := g.Tau1(0, 0)
	require.NoError(t, err)
	assert.InDelta(t, -7.5, t1, tauTol)
}

// TestTau_InvalidElement rejects labels outside the instance's space on
// every public coefficient.
func TestTau_InvalidElement(t *testing.T) {
	g, err := pim.New(6, unitRates())
	require.NoError(t, err)

	taus := []func(float64, float64) (float64, error){
		g.Tau1, g.Tau2, g.Tau3, g.Tau4, g.Tau5, g.Tau6, g.Tau7, g.Tau8, g.Tau9,
	}
	for i, fn := range taus {
		_, err = fn(4, 4) // above the top ladder of N = 6
		assert.ErrorIs(t, err, pim.ErrInvalidParameter, "Tau%d(4, 4) must reject", i+1)

		_, err = fn(2.5, 0.5) // parity mismatch
		assert.ErrorIs(t, err, pim.ErrInvalidParameter, "Tau%d(2.5, 0.5) must reject", i+1)
	}
}
