package vectors

import (
	"fmt"
	"math/big"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"

	"github.com/consensys/bn254-difftest/encoding"
	"github.com/consensys/bn254-difftest/wire"
)

// msmPairs draws count (base, scalar) pairs from the fixed-key stream and
// computes their multi-scalar product. count 0 yields empty slices and the
// identity.
func msmPairs(count uint64) ([]bn254.G1Affine, []fr.Element, bn254.G1Affine, error) {
	s := newMSMStream()
	bases := make([]bn254.G1Affine, 0, count)
	scalars := make([]fr.Element, 0, count)
	for i := uint64(0); i < count; i++ {
		bases = append(bases, s.g1())
		scalars = append(scalars, s.fr())
	}

	// zero value of G1Affine is the point at infinity
	var prod bn254.G1Affine
	if count > 0 {
		if _, err := prod.MultiExp(bases, scalars, ecc.MultiExpConfig{}); err != nil {
			return nil, nil, prod, fmt.Errorf("msm: %w", err)
		}
	}
	return bases, scalars, prod, nil
}

// MSM encodes (G1Point[], uint256[], G1Point): the drawn bases and scalars
// followed by their multi-scalar product.
func MSM(count uint64) (string, error) {
	bases, scalars, prod, err := msmPairs(count)
	if err != nil {
		return "", err
	}
	wireBases := make([]wire.G1Point, len(bases))
	for i := range bases {
		wireBases[i] = wire.G1ToWire(&bases[i])
	}
	wireScalars := make([]*big.Int, len(scalars))
	for i := range scalars {
		wireScalars[i] = wire.FrToU256(&scalars[i])
	}
	return encoding.MSM(wireBases, wireScalars, wire.G1ToWire(&prod))
}
