package object

import (
	"encoding/binary"
	"math/big"
)

// NewInt returns x as an arbitrary-precision integer value.
func NewInt(x int64) *big.Int {
	return big.NewInt(x)
}

// Uint32Words returns the 32-bit words of |x|, least significant first.
// Zero yields an empty slice. The order does not depend on host byte order.
func Uint32Words(x *big.Int) []uint32 {
	if x == nil || x.Sign() == 0 {
		return nil
	}
	b := new(big.Int).Abs(x).Bytes()
	pad := (4 - len(b)%4) % 4
	be := make([]byte, pad+len(b))
	copy(be[pad:], b)

	n := len(be) / 4
	words := make([]uint32, n)
	for i := 0; i < n; i++ {
		off := len(be) - 4*(i+1)
		words[i] = binary.BigEndian.Uint32(be[off : off+4])
	}
	return words
}

// IntFromUint32Words builds a non-negative integer from 32-bit words given
// least significant first.
func IntFromUint32Words(words []uint32) *big.Int {
	be := make([]byte, 4*len(words))
	for i, w := range words {
		off := len(be) - 4*(i+1)
		binary.BigEndian.PutUint32(be[off:off+4], w)
	}
	return new(big.Int).SetBytes(be)
}
