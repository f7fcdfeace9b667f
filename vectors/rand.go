package vectors

import (
	"encoding/binary"
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/consensys/gnark-crypto/ecc/bn254/fp"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"golang.org/x/crypto/sha3"
)

// stream derives field and group elements from a 64-bit seed. SHAKE128 gives
// a platform-independent byte stream; each draw takes 48 bytes so the value
// reduced by SetBytes is statistically uniform over the 254-bit fields.
type stream struct {
	h sha3.ShakeHash
}

func newStream(seed uint64) *stream {
	h := sha3.NewShake128()
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], seed)
	h.Write(buf[:])
	return &stream{h: h}
}

// msmStreamSeed keys the stream of the MSM action, which takes a count
// instead of a seed: per-count reproducibility comes from this fixed key.
const msmStreamSeed uint64 = 0

func newMSMStream() *stream {
	return newStream(msmStreamSeed)
}

func (s *stream) draw() []byte {
	var buf [48]byte
	s.h.Read(buf[:])
	return buf[:]
}

func (s *stream) fr() fr.Element {
	var e fr.Element
	e.SetBytes(s.draw())
	return e
}

func (s *stream) fp() fp.Element {
	var e fp.Element
	e.SetBytes(s.draw())
	return e
}

// g1 draws a uniform G1 element: a fresh scalar times the generator. The G1
// cofactor is 1, so scalar multiples of the generator cover the whole curve.
func (s *stream) g1() bn254.G1Affine {
	k := s.fr()
	var p bn254.G1Affine
	p.ScalarMultiplicationBase(k.BigInt(new(big.Int)))
	return p
}
