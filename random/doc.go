// Package random implements the seeded pseudo-random engine of the runtime.
//
// An Engine runs one of two algorithms, chosen when it is seeded:
//
//   - GeneralPurpose: a ChaCha20 keystream keyed from the host entropy
//     source. Not reproducible.
//   - Deterministic: MT19937 keyed from the 32-bit words of an integer seed's
//     magnitude. The same seed always produces the same draws, bit for bit,
//     on every host.
//
// Every draw and reseed runs under the engine's mutex, so draws from many
// goroutines never interleave at the word level.
//
// # Usage
//
//	eng := random.NewSeeded(big.NewInt(42))
//	x := eng.Float64()          // 0.6394267984578837
//	b, err := eng.Bits(100)     // *big.Int in [0, 2^100)
//
// Bits accepts 0 <= k <= MaxBits (or the smaller bound set with WithMaxBits).
package random
