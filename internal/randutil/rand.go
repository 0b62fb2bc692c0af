package randutil

import rand "math/rand/v2"

const (
	goldenRatio64 = 0x9e3779b97f4a7c15
)

// New returns a *rand.Rand seeded deterministically from the provided int64.
// The helper centralises how we derive the two 64-bit seeds required by rand/v2
// so that all call sites get reproducible sequences.
func New(seed int64) *rand.Rand {
	u := uint64(seed)
	return rand.New(rand.NewPCG(mix(u), mix(u+goldenRatio64)))
}

// Stream returns the generator for one worker of a parallel job. Each worker
// index gets its own PCG state derived from the job seed, so workers never
// share a generator and a given (seed, worker) pair always replays the same
// sequence.
func Stream(seed int64, worker int) *rand.Rand {
	u := mix(uint64(seed)) ^ mix(uint64(worker)+1)*goldenRatio64
	return rand.New(rand.NewPCG(mix(u), mix(u+goldenRatio64)))
}

// Seed draws a fresh seed for callers that did not ask for reproducibility.
func Seed() int64 {
	return rand.Int64()
}

func mix(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}
