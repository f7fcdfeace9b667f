// Package wire converts between gnark-crypto BN254 values and the fixed-width
// coordinate records consumed by the Solidity reference implementation.
//
// The all-zero G1 record encodes the point at infinity. That convention comes
// from the BN256 precompiles, not from affine geometry: (0,0) is not on the
// curve, so the encoding is unambiguous.
package wire

import (
	"fmt"
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/consensys/gnark-crypto/ecc/bn254/fp"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

// G1Point mirrors the Solidity struct { uint256 x; uint256 y }.
type G1Point struct {
	X *big.Int
	Y *big.Int
}

// G2Point mirrors { uint256 x0; uint256 x1; uint256 y0; uint256 y1 }, each
// extension-field coordinate laid out as its (c0, c1) pair.
type G2Point struct {
	X0 *big.Int
	X1 *big.Int
	Y0 *big.Int
	Y1 *big.Int
}

// NewG1Point returns the default record, i.e. the point at infinity.
func NewG1Point() G1Point {
	return G1Point{X: new(big.Int), Y: new(big.Int)}
}

// Equal reports structural coordinate equality.
func (p G1Point) Equal(q G1Point) bool {
	return p.X.Cmp(q.X) == 0 && p.Y.Cmp(q.Y) == 0
}

// IsInfinity reports whether p is the all-zero infinity record.
func (p G1Point) IsInfinity() bool {
	return p.X.Sign() == 0 && p.Y.Sign() == 0
}

// Equal reports structural coordinate equality.
func (p G2Point) Equal(q G2Point) bool {
	return p.X0.Cmp(q.X0) == 0 && p.X1.Cmp(q.X1) == 0 &&
		p.Y0.Cmp(q.Y0) == 0 && p.Y1.Cmp(q.Y1) == 0
}

// mustFit256 enforces the static precondition on the field choice. The BN254
// moduli are 254 bits so this never fires in practice; it is rechecked on
// every conversion rather than once at startup.
func mustFit256(mod *big.Int) {
	if mod.BitLen() > 256 {
		panic(fmt.Sprintf("cannot represent a %d-bit field element as uint256", mod.BitLen()))
	}
}

// FpToU256 returns the canonical representative of f as an unsigned 256-bit
// integer. Panics if the base-field modulus exceeds 256 bits.
func FpToU256(f *fp.Element) *big.Int {
	mustFit256(fp.Modulus())
	return f.BigInt(new(big.Int))
}

// FrToU256 is FpToU256 for the scalar field.
func FrToU256(f *fr.Element) *big.Int {
	mustFit256(fr.Modulus())
	return f.BigInt(new(big.Int))
}

// U256ToFp reduces x modulo the base-field order. Total on [0, 2^256): every
// input yields an element, callers bound x when parsing.
func U256ToFp(x *big.Int) fp.Element {
	mustFit256(fp.Modulus())
	var e fp.Element
	e.SetBigInt(x)
	return e
}

// U256ToFr is U256ToFp for the scalar field.
func U256ToFr(x *big.Int) fr.Element {
	mustFit256(fr.Modulus())
	var e fr.Element
	e.SetBigInt(x)
	return e
}

// ParseU256 parses a decimal unsigned integer and rejects anything that does
// not fit in 256 bits.
func ParseU256(s string) (*big.Int, error) {
	x, ok := new(big.Int).SetString(s, 10)
	if !ok || x.Sign() < 0 {
		return nil, fmt.Errorf("invalid uint256 %q", s)
	}
	if x.BitLen() > 256 {
		return nil, fmt.Errorf("%q overflows uint256", s)
	}
	return x, nil
}

// G1ToWire encodes an affine G1 point. p must already be affine: Jacobian
// results from gnark-crypto go through FromJacobian before this call, never
// after.
func G1ToWire(p *bn254.G1Affine) G1Point {
	if p.IsInfinity() {
		return NewG1Point()
	}
	return G1Point{X: FpToU256(&p.X), Y: FpToU256(&p.Y)}
}

// WireToG1 rebuilds the affine point without an on-curve check; curve
// membership is a separate explicit operation, not implied by decoding.
func WireToG1(w G1Point) bn254.G1Affine {
	var p bn254.G1Affine
	if w.IsInfinity() {
		// zero value of G1Affine is the point at infinity
		return p
	}
	p.X = U256ToFp(w.X)
	p.Y = U256ToFp(w.Y)
	return p
}

// G2ToWire encodes an affine G2 point componentwise. There is no infinity
// convention on G2: callers never pass the G2 identity through the codec.
func G2ToWire(p *bn254.G2Affine) G2Point {
	return G2Point{
		X0: FpToU256(&p.X.A0),
		X1: FpToU256(&p.X.A1),
		Y0: FpToU256(&p.Y.A0),
		Y1: FpToU256(&p.Y.A1),
	}
}

// WireToG2 rebuilds the affine point, again without an on-curve check.
func WireToG2(w G2Point) bn254.G2Affine {
	var p bn254.G2Affine
	p.X.A0 = U256ToFp(w.X0)
	p.X.A1 = U256ToFp(w.X1)
	p.Y.A0 = U256ToFp(w.Y0)
	p.Y.A1 = U256ToFp(w.Y1)
	return p
}
