package vectors

import (
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/stretchr/testify/require"
)

func TestPairingProd2SelfConsistency(t *testing.T) {
	for seed := uint64(0); seed < 10; seed++ {
		a1, a2, b1, b2, err := pairingProd2Points(seed)
		require.NoError(t, err, "seed=%d", seed)

		// the encoded convention: e(a1,a2) * e(-b1,b2) == 1
		var negB1 bn254.G1Affine
		negB1.Neg(&b1)
		ok, err := bn254.PairingCheck(
			[]bn254.G1Affine{a1, negB1},
			[]bn254.G2Affine{a2, b2},
		)
		require.NoError(t, err, "seed=%d", seed)

		if seed%2 == 0 {
			// even seeds double b2, the product check must fail
			require.False(t, ok, "seed=%d", seed)
		} else {
			require.True(t, ok, "seed=%d", seed)
		}
	}
}

func TestPairingProd2Layout(t *testing.T) {
	out, err := PairingProd2(1)
	require.NoError(t, err)
	// (G1, G2, G1, G2): 12 static words, 384 bytes
	require.Len(t, out, 384*2)
}
