package random

import (
	"encoding/binary"

	"golang.org/x/crypto/chacha20"
)

const (
	chachaBufSize = 256
	// Rekey well before the 32-bit block counter of a single key wraps.
	chachaRekeyBlocks = 1 << 24
)

// chachaSource turns a ChaCha20 keystream into 32-bit words.
type chachaSource struct {
	cipher *chacha20.Cipher
	buf    [chachaBufSize]byte
	off    int
	blocks int
}

func newChachaSource(key [chacha20.KeySize]byte) (*chachaSource, error) {
	s := &chachaSource{}
	if err := s.rekey(key[:]); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *chachaSource) rekey(key []byte) error {
	var nonce [chacha20.NonceSize]byte
	c, err := chacha20.NewUnauthenticatedCipher(key, nonce[:])
	if err != nil {
		return err
	}
	s.cipher = c
	s.blocks = 0
	s.off = chachaBufSize
	return nil
}

func (s *chachaSource) refill() {
	if s.blocks >= chachaRekeyBlocks {
		var next [chacha20.KeySize]byte
		s.cipher.XORKeyStream(next[:], next[:])
		// A fresh 32-byte key with a zero nonce cannot fail.
		_ = s.rekey(next[:])
	}
	clear(s.buf[:])
	s.cipher.XORKeyStream(s.buf[:], s.buf[:])
	s.blocks += chachaBufSize / 64
	s.off = 0
}

// Uint32 returns the next keystream word.
func (s *chachaSource) Uint32() uint32 {
	if s.off+4 > chachaBufSize {
		s.refill()
	}
	w := binary.LittleEndian.Uint32(s.buf[s.off:])
	s.off += 4
	return w
}
