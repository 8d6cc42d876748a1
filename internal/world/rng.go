package world

// xorshift64 advances a generator state by one step. Every generator threads
// its state explicitly so identical seeds reproduce identical maps.
//
// A zero state is a fixed point, so callers seed with seedState.
func xorshift64(state uint64) uint64 {
	state ^= state << 13
	state ^= state >> 7
	state ^= state << 17
	return state
}

// seedState maps a user seed to a usable generator state.
func seedState(seed uint64) uint64 {
	if seed == 0 {
		return 0x9E3779B97F4A7C15
	}
	return seed
}

// nextPct advances state and returns it with a roll in [0, 100).
func nextPct(state uint64) (uint64, uint64) {
	state = xorshift64(state)
	return state, state % 100
}

// signedMod reduces the low 32 bits of state, read as a signed integer,
// modulo n and returns the absolute value. n must be positive.
func signedMod(state uint64, n int) int {
	return abs(int(int32(uint32(state))) % n)
}

// lcgStep is the multiplier step used to derive per-dungeon seeds from the
// world seed.
func lcgStep(state uint64) uint64 {
	return state*6364136223846793005 + 1
}
