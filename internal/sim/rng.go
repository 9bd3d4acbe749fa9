package sim

// SimpleRNG is a deterministic pseudo-random number generator.
// Uses a simple LCG (Linear Congruential Generator).
type SimpleRNG struct {
	state uint64
}

// NewSimpleRNG creates a new RNG with the given seed.
func NewSimpleRNG(seed int64) *SimpleRNG {
	s := uint64(seed) //#nosec G115 -- intentional conversion for RNG seeding
	if s == 0 {
		s = 1
	}
	return &SimpleRNG{state: s}
}

// Next generates the next random uint64.
func (r *SimpleRNG) Next() uint64 {
	r.state = r.state*6364136223846793005 + 1442695040888963407
	return r.state
}

// Intn returns a random int in [0, n).
func (r *SimpleRNG) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.Next() % uint64(n)) //#nosec G115 -- n is always positive
}

// Range returns a random int in [lo, hi] inclusive.
func (r *SimpleRNG) Range(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + r.Intn(hi-lo+1)
}

// Fixed returns a random fixed-point value in [lo, hi].
func (r *SimpleRNG) Fixed(lo, hi Fixed) Fixed {
	if hi <= lo {
		return lo
	}
	return lo + Fixed(r.Intn(int(hi-lo)+1))
}

// Pick returns a random index weighted by the given weights.
// Zero-weight entries are never picked. Returns -1 if all weights are zero.
func (r *SimpleRNG) Pick(weights []int) int {
	total := 0
	for _, w := range weights {
		if w > 0 {
			total += w
		}
	}
	if total <= 0 {
		return -1
	}
	roll := r.Intn(total)
	cumulative := 0
	for i, w := range weights {
		if w <= 0 {
			continue
		}
		cumulative += w
		if roll < cumulative {
			return i
		}
	}
	return -1
}

// State returns the internal RNG state for snapshots.
func (r *SimpleRNG) State() uint64 {
	return r.state
}

// SetState restores the internal RNG state from a snapshot.
func (r *SimpleRNG) SetState(s uint64) {
	if s == 0 {
		s = 1
	}
	r.state = s
}
