// Package rng provides the deterministic pseudo-random generator used for
// spawn-time randomness. The same seed always reproduces the same stream,
// so whole sessions can be replayed from their seed and inputs.
package rng

import "math/bits"

// DefaultSeed is the fixed seed a session starts from.
var DefaultSeed = [4]uint32{1014776995, 476057059, 3301633994, 706340607}

// Xorshift is a four-word xorshift-family generator.
type Xorshift struct {
	state [4]uint32
}

// New creates a generator with the given state. An all-zero state would only
// ever produce zeros, so it is replaced with DefaultSeed.
func New(seed [4]uint32) *Xorshift {
	if seed == [4]uint32{} {
		seed = DefaultSeed
	}
	return &Xorshift{state: seed}
}

// FromSeed expands a single integer seed into a full state with splitmix64.
// Zero selects DefaultSeed.
func FromSeed(seed int64) *Xorshift {
	if seed == 0 {
		return New(DefaultSeed)
	}

	x := uint64(seed)
	var state [4]uint32
	for i := 0; i < 4; i += 2 {
		x += 0x9e3779b97f4a7c15
		z := x
		z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
		z = (z ^ (z >> 27)) * 0x94d049bb133111eb
		z ^= z >> 31
		state[i] = uint32(z)
		state[i+1] = uint32(z >> 32)
	}
	return New(state)
}

// Next advances the state and returns the next 32-bit value.
func (r *Xorshift) Next() int32 {
	s := &r.state
	result := bits.RotateLeft32(s[0]+s[3], 7) * 9
	t := s[1] >> 9

	s[2] ^= s[0]
	s[3] ^= s[1]
	s[1] ^= s[2]
	s[0] ^= s[3]

	s[2] ^= t
	s[3] = bits.RotateLeft32(s[3], 11)

	return int32(result)
}

// State returns a copy of the current state.
func (r *Xorshift) State() [4]uint32 {
	return r.state
}
