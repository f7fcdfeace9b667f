// Package encoding packs action outputs into the contract-ABI layout the
// Solidity side decodes. The tuple shapes below are part of the observable
// contract of the tool: field order and 32-byte word widths are frozen.
package encoding

import (
	"encoding/hex"
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"

	"github.com/consensys/bn254-difftest/wire"
)

var (
	uint256T      abi.Type
	uint256SliceT abi.Type
	boolT         abi.Type
	g1T           abi.Type
	g1SliceT      abi.Type
	g2T           abi.Type
)

var g1Components = []abi.ArgumentMarshaling{
	{Name: "x", Type: "uint256"},
	{Name: "y", Type: "uint256"},
}

var g2Components = []abi.ArgumentMarshaling{
	{Name: "x0", Type: "uint256"},
	{Name: "x1", Type: "uint256"},
	{Name: "y0", Type: "uint256"},
	{Name: "y1", Type: "uint256"},
}

func init() {
	uint256T = mustType("uint256", nil)
	uint256SliceT = mustType("uint256[]", nil)
	boolT = mustType("bool", nil)
	g1T = mustType("tuple", g1Components)
	g1SliceT = mustType("tuple[]", g1Components)
	g2T = mustType("tuple", g2Components)
}

func mustType(t string, components []abi.ArgumentMarshaling) abi.Type {
	ty, err := abi.NewType(t, "", components)
	if err != nil {
		panic(fmt.Sprintf("abi type %s: %v", t, err))
	}
	return ty
}

func packHex(args abi.Arguments, values ...interface{}) (string, error) {
	b, err := args.Pack(values...)
	if err != nil {
		return "", fmt.Errorf("abi pack: %w", err)
	}
	return hex.EncodeToString(b), nil
}

// G1 encodes a single 64-byte G1 record.
func G1(p wire.G1Point) (string, error) {
	return packHex(abi.Arguments{{Type: g1T}}, p)
}

// G2 encodes a single 128-byte G2 record.
func G2(p wire.G2Point) (string, error) {
	return packHex(abi.Arguments{{Type: g2T}}, p)
}

// Bool encodes one 32-byte boolean word.
func Bool(b bool) (string, error) {
	return packHex(abi.Arguments{{Type: boolT}}, b)
}

// U256 encodes one 32-byte big-endian word.
func U256(x *big.Int) (string, error) {
	return packHex(abi.Arguments{{Type: uint256T}}, x)
}

// PairingPairs encodes the (G1, G2, G1, G2) quadruple of the pairing action.
func PairingPairs(a1 wire.G1Point, a2 wire.G2Point, b1 wire.G1Point, b2 wire.G2Point) (string, error) {
	args := abi.Arguments{{Type: g1T}, {Type: g2T}, {Type: g1T}, {Type: g2T}}
	return packHex(args, a1, a2, b1, b2)
}

// MSM encodes (G1Point[], uint256[], G1Point): two dynamic arrays followed by
// the product record.
func MSM(bases []wire.G1Point, scalars []*big.Int, prod wire.G1Point) (string, error) {
	args := abi.Arguments{{Type: g1SliceT}, {Type: uint256SliceT}, {Type: g1T}}
	return packHex(args, bases, scalars, prod)
}

// G1Triple encodes three consecutive G1 records (operands and their sum).
func G1Triple(a, b, c wire.G1Point) (string, error) {
	args := abi.Arguments{{Type: g1T}, {Type: g1T}, {Type: g1T}}
	return packHex(args, a, b, c)
}

// G1Pair encodes two consecutive G1 records (a point and its negation).
func G1Pair(a, b wire.G1Point) (string, error) {
	args := abi.Arguments{{Type: g1T}, {Type: g1T}}
	return packHex(args, a, b)
}

// QR encodes (uint256, uint256, bool) for the quadratic-residue action.
func QR(x, root *big.Int, isQR bool) (string, error) {
	args := abi.Arguments{{Type: uint256T}, {Type: uint256T}, {Type: boolT}}
	return packHex(args, x, root, isQR)
}

// UnpackG1 decodes one hex-encoded 64-byte G1 record, with or without a 0x
// prefix. This is the inverse of G1 and the input format of the on-curve
// action.
func UnpackG1(s string) (wire.G1Point, error) {
	b, err := hex.DecodeString(strings.TrimPrefix(s, "0x"))
	if err != nil {
		return wire.G1Point{}, fmt.Errorf("invalid hex point: %w", err)
	}
	// Unpack tolerates trailing words; a record is exactly two of them
	if len(b) != 64 {
		return wire.G1Point{}, fmt.Errorf("expected a 64-byte G1 record, got %d bytes", len(b))
	}
	vals, err := abi.Arguments{{Type: g1T}}.Unpack(b)
	if err != nil {
		return wire.G1Point{}, fmt.Errorf("abi unpack: %w", err)
	}
	rec := abi.ConvertType(vals[0], new(struct {
		X *big.Int
		Y *big.Int
	})).(*struct {
		X *big.Int
		Y *big.Int
	})
	return wire.G1Point{X: rec.X, Y: rec.Y}, nil
}
