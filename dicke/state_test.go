package dicke_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/piqs/dicke"
)

// TestInitialPopulation_TopOfTopLadder verifies unit mass at |N/2, N/2⟩
// (flat index 0) and nothing anywhere else, for both parities.
func TestInitialPopulation_TopOfTopLadder(t *testing.T) {
	for _, n := range []int{1, 2, 5, 6, 10} {
		p, err := dicke.InitialPopulation(n)
		require.NoError(t, err, "InitialPopulation(%d)", n)

		size, err := dicke.NumStates(n)
		require.NoError(t, err)
		require.Len(t, p, size)

		assert.Equal(t, 1.0, p[0], "N=%d: mass at the top", n)
		for k := 1; k < len(p); k++ {
			assert.Zero(t, p[k], "N=%d: index %d must be empty", n, k)
		}
	}
}

// TestInitialState_ArbitraryElement places mass at |1, 0⟩ for N = 6, which
// sits at flat index 13 in the canonical order.
func TestInitialState_ArbitraryElement(t *testing.T) {
	p, err := dicke.InitialState(6, 1, 0)
	require.NoError(t, err)
	require.Len(t, p, 16)

	for k, v := range p {
		if k == 13 {
			assert.Equal(t, 1.0, v)
		} else {
			assert.Zero(t, v, "index %d", k)
		}
	}
}

// TestInitialState_Invalid rejects bad N and labels outside the space.
func TestInitialState_Invalid(t *testing.T) {
	_, err := dicke.InitialState(0, 0, 0)
	assert.ErrorIs(t, err, dicke.ErrInvalidParameter)

	_, err = dicke.InitialState(6, 4, 4)
	assert.ErrorIs(t, err, dicke.ErrInvalidParameter)

	_, err = dicke.InitialState(6, 2, 1.5)
	assert.ErrorIs(t, err, dicke.ErrInvalidParameter)

	_, err = dicke.InitialPopulation(-3)
	assert.ErrorIs(t, err, dicke.ErrInvalidParameter)
}
