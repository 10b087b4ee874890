// Package testutil provides testing utilities for assoc.
//
// This package is intended for use in tests and benchmarks only.
// It provides a deterministic, thread-safe RNG and generators for keys and
// operation streams.
//
// # Keys
//
//	rng := testutil.NewRNG(seed)
//	k := rng.Key(16)             // 16 random bytes, may contain any byte value
//	ks := rng.Keys(1000, 8)      // 1000 distinct random keys
//	seq := testutil.SeqKeys("k", 3) // ["k0", "k1", "k2"]
//
// # Skewed Access
//
//	i := rng.Zipf(len(ks), 1.2) // hot keys are picked far more often
package testutil
