// Package mtrand is a 32-bit Mersenne Twister (MT19937) seeded and sampled the
// way CPython's random module does it, so that integer-seeded draws match a
// Python process bit for bit.
package mtrand

import "math/bits"

const (
	n         = 624
	m         = 397
	matrixA   = 0x9908b0df
	upperMask = 0x80000000
	lowerMask = 0x7fffffff
)

// Source is a Mersenne Twister state. It is not safe for concurrent use;
// construct one per derivation.
type Source struct {
	mt  [n]uint32
	mti int
}

// New returns a Source seeded like random.seed(seed) for a non-negative int.
func New(seed uint64) *Source {
	key := []uint32{uint32(seed)}
	if hi := uint32(seed >> 32); hi != 0 {
		key = append(key, hi)
	}
	s := &Source{}
	s.initByArray(key)
	return s
}

// NewWithKey seeds from an explicit key array (mt19937ar init_by_array).
func NewWithKey(key []uint32) *Source {
	s := &Source{}
	s.initByArray(key)
	return s
}

func (s *Source) initGenrand(seed uint32) {
	s.mt[0] = seed
	for i := 1; i < n; i++ {
		s.mt[i] = 1812433253*(s.mt[i-1]^(s.mt[i-1]>>30)) + uint32(i)
	}
	s.mti = n
}

func (s *Source) initByArray(key []uint32) {
	if len(key) == 0 {
		key = []uint32{0}
	}
	s.initGenrand(19650218)
	i, j := 1, 0
	k := max(n, len(key))
	for ; k > 0; k-- {
		s.mt[i] = (s.mt[i] ^ ((s.mt[i-1] ^ (s.mt[i-1] >> 30)) * 1664525)) + key[j] + uint32(j)
		i++
		j++
		if i >= n {
			s.mt[0] = s.mt[n-1]
			i = 1
		}
		if j >= len(key) {
			j = 0
		}
	}
	for k = n - 1; k > 0; k-- {
		s.mt[i] = (s.mt[i] ^ ((s.mt[i-1] ^ (s.mt[i-1] >> 30)) * 1566083941)) - uint32(i)
		i++
		if i >= n {
			s.mt[0] = s.mt[n-1]
			i = 1
		}
	}
	s.mt[0] = 0x80000000
}

func (s *Source) generate() {
	mag := func(y uint32) uint32 {
		if y&1 == 1 {
			return matrixA
		}
		return 0
	}
	var kk int
	for ; kk < n-m; kk++ {
		y := (s.mt[kk] & upperMask) | (s.mt[kk+1] & lowerMask)
		s.mt[kk] = s.mt[kk+m] ^ (y >> 1) ^ mag(y)
	}
	for ; kk < n-1; kk++ {
		y := (s.mt[kk] & upperMask) | (s.mt[kk+1] & lowerMask)
		s.mt[kk] = s.mt[kk+(m-n)] ^ (y >> 1) ^ mag(y)
	}
	y := (s.mt[n-1] & upperMask) | (s.mt[0] & lowerMask)
	s.mt[n-1] = s.mt[m-1] ^ (y >> 1) ^ mag(y)
	s.mti = 0
}

// Uint32 returns the next tempered 32-bit output.
func (s *Source) Uint32() uint32 {
	if s.mti >= n {
		s.generate()
	}
	y := s.mt[s.mti]
	s.mti++
	y ^= y >> 11
	y ^= (y << 7) & 0x9d2c5680
	y ^= (y << 15) & 0xefc60000
	y ^= y >> 18
	return y
}

// Bits returns k random bits, 0 < k <= 32, as random.getrandbits(k).
func (s *Source) Bits(k int) uint32 {
	return s.Uint32() >> (32 - k)
}

// Intn returns a uniform int in [0, bound) using CPython's _randbelow
// rejection scheme. Intn panics if bound <= 0 or bound >= 1<<32.
func (s *Source) Intn(bound int) int {
	if bound <= 0 || uint64(bound) > 1<<32-1 {
		panic("mtrand: invalid bound")
	}
	k := bits.Len(uint(bound))
	r := s.Bits(k)
	for int(r) >= bound {
		r = s.Bits(k)
	}
	return int(r)
}

// Float64 returns a float in [0, 1) as random.random().
func (s *Source) Float64() float64 {
	a := s.Uint32() >> 5
	b := s.Uint32() >> 6
	return (float64(a)*67108864.0 + float64(b)) * (1.0 / 9007199254740992.0)
}
