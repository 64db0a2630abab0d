package random

const (
	mtN         = 624
	mtM         = 397
	mtMatrixA   = 0x9908b0df
	mtUpperMask = 0x80000000
	mtLowerMask = 0x7fffffff
)

// mt19937 is the 32-bit Mersenne Twister.
type mt19937 struct {
	mt  [mtN]uint32
	mti int
}

// newMT19937 seeds a generator from key words, least significant first.
// An empty key is treated as a single zero word.
func newMT19937(key []uint32) *mt19937 {
	if len(key) == 0 {
		key = []uint32{0}
	}
	m := &mt19937{}
	m.seedArray(key)
	return m
}

func (m *mt19937) seedScalar(s uint32) {
	m.mt[0] = s
	for i := 1; i < mtN; i++ {
		prev := m.mt[i-1]
		m.mt[i] = 1812433253*(prev^(prev>>30)) + uint32(i)
	}
	m.mti = mtN
}

func (m *mt19937) seedArray(key []uint32) {
	m.seedScalar(19650218)

	i, j := 1, 0
	for k := max(mtN, len(key)); k > 0; k-- {
		prev := m.mt[i-1]
		m.mt[i] = (m.mt[i] ^ ((prev ^ (prev >> 30)) * 1664525)) + key[j] + uint32(j)
		i++
		j++
		if i >= mtN {
			m.mt[0] = m.mt[mtN-1]
			i = 1
		}
		if j >= len(key) {
			j = 0
		}
	}
	for k := mtN - 1; k > 0; k-- {
		prev := m.mt[i-1]
		m.mt[i] = (m.mt[i] ^ ((prev ^ (prev >> 30)) * 1566083941)) - uint32(i)
		i++
		if i >= mtN {
			m.mt[0] = m.mt[mtN-1]
			i = 1
		}
	}
	m.mt[0] = 0x80000000
}

func (m *mt19937) twist() {
	mag01 := [2]uint32{0, mtMatrixA}
	var kk int
	for ; kk < mtN-mtM; kk++ {
		y := (m.mt[kk] & mtUpperMask) | (m.mt[kk+1] & mtLowerMask)
		m.mt[kk] = m.mt[kk+mtM] ^ (y >> 1) ^ mag01[y&1]
	}
	for ; kk < mtN-1; kk++ {
		y := (m.mt[kk] & mtUpperMask) | (m.mt[kk+1] & mtLowerMask)
		m.mt[kk] = m.mt[kk+mtM-mtN] ^ (y >> 1) ^ mag01[y&1]
	}
	y := (m.mt[mtN-1] & mtUpperMask) | (m.mt[0] & mtLowerMask)
	m.mt[mtN-1] = m.mt[mtM-1] ^ (y >> 1) ^ mag01[y&1]
	m.mti = 0
}

// Uint32 returns the next tempered word.
func (m *mt19937) Uint32() uint32 {
	if m.mti >= mtN {
		m.twist()
	}
	y := m.mt[m.mti]
	m.mti++

	y ^= y >> 11
	y ^= (y << 7) & 0x9d2c5680
	y ^= (y << 15) & 0xefc60000
	y ^= y >> 18
	return y
}
