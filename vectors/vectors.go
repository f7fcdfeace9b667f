// Package vectors implements the deterministic test-vector generators. Each
// action is a pure function from its (optional) argument to the hex string of
// the ABI-encoded output tuple; identical arguments reproduce identical bytes.
//
// Every failure here is terminal for the caller: a fixture generator that
// emits unchecked output is worse than one that aborts, so internal
// self-checks return errors instead of degrading.
package vectors

import (
	"errors"
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/consensys/gnark-crypto/ecc/bn254/fp"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"

	"github.com/consensys/bn254-difftest/encoding"
	"github.com/consensys/bn254-difftest/logger"
	"github.com/consensys/bn254-difftest/wire"
)

// G2Gen returns the encoded BN254 G2 generator.
func G2Gen() (string, error) {
	_, _, _, g2 := bn254.Generators()
	return encoding.G2(wire.G2ToWire(&g2))
}

// G1FromScalar computes generator*scalar. The scalar is reduced modulo the
// group order first, like every uint256 argument.
func G1FromScalar(scalar *big.Int) (string, error) {
	s := wire.U256ToFr(scalar)
	var p bn254.G1Affine
	p.ScalarMultiplicationBase(s.BigInt(new(big.Int)))
	return encoding.G1(wire.G1ToWire(&p))
}

// G1IsOnCurve decodes a hex wire record and evaluates curve membership. The
// all-zero record is the group identity and counts as on the curve.
func G1IsOnCurve(hexPoint string) (string, error) {
	w, err := encoding.UnpackG1(hexPoint)
	if err != nil {
		return "", err
	}
	onCurve := true
	if !w.IsInfinity() {
		p := wire.WireToG1(w)
		onCurve = p.IsOnCurve()
	}
	return encoding.Bool(onCurve)
}

// ScalarInv computes the multiplicative inverse in the scalar field. The zero
// scalar has no inverse and is rejected.
func ScalarInv(scalar *big.Int) (string, error) {
	s := wire.U256ToFr(scalar)
	if s.IsZero() {
		return "", errors.New("zero scalar has no inverse")
	}
	var inv fr.Element
	inv.Inverse(&s)
	return encoding.U256(wire.FrToU256(&inv))
}

// ScalarNeg computes the additive inverse in the scalar field.
func ScalarNeg(scalar *big.Int) (string, error) {
	s := wire.U256ToFr(scalar)
	var neg fr.Element
	neg.Neg(&s)
	return encoding.U256(wire.FrToU256(&neg))
}

// G1Add draws two points from the seeded stream and returns both operands and
// their sum as three consecutive G1 records.
func G1Add(seed uint64) (string, error) {
	s := newStream(seed)
	a := s.g1()
	b := s.g1()
	var sum bn254.G1Affine
	sum.Add(&a, &b)
	return encoding.G1Triple(wire.G1ToWire(&a), wire.G1ToWire(&b), wire.G1ToWire(&sum))
}

// G1Neg draws one point from the seeded stream and returns it with its
// negation.
func G1Neg(seed uint64) (string, error) {
	s := newStream(seed)
	a := s.g1()
	var neg bn254.G1Affine
	neg.Neg(&a)
	return encoding.G1Pair(wire.G1ToWire(&a), wire.G1ToWire(&neg))
}

// quadraticResidue draws a base-field element and extracts its canonical
// square root when one exists: the root whose integer representative is at
// most (p-1)/2. Non-residues get the zero element as placeholder.
func quadraticResidue(seed uint64) (x, root fp.Element, isQR bool, err error) {
	s := newStream(seed)
	x = s.fp()
	a := new(fp.Element).Sqrt(&x)
	if a == nil {
		log := logger.Logger()
		log.Debug().Uint64("seed", seed).Msg("drew a non-residue")
		return x, root, false, nil
	}
	half := new(big.Int).Rsh(new(big.Int).Sub(fp.Modulus(), big.NewInt(1)), 1)
	if a.BigInt(new(big.Int)).Cmp(half) > 0 {
		a.Neg(a)
	}
	var sq fp.Element
	sq.Square(a)
	if !sq.Equal(&x) {
		return x, root, false, errors.New("square-root self-check failed")
	}
	return x, *a, true, nil
}

// QuadraticResidue encodes (x, canonical root or zero, isQuadraticResidue).
func QuadraticResidue(seed uint64) (string, error) {
	x, root, isQR, err := quadraticResidue(seed)
	if err != nil {
		return "", err
	}
	return encoding.QR(wire.FpToU256(&x), wire.FpToU256(&root), isQR)
}
