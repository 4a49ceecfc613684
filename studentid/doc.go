// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package studentid generates unique 8-digit student identifiers.

# Rejection Sampling

A Generator draws a uniformly random id in [10000000, 99999999] and asks
its Exists callback whether the id is already stored. The first free id is
returned:

	gen := studentid.Generator{
		Exists:      repo.StudentIDExists,
		MaxAttempts: 32,
	}
	id, err := gen.Generate(ctx)

Each attempt costs one storage read and no write.

# Termination

The loop is bounded. After MaxAttempts collisions Generate fails with an
error wrapping ErrExhausted:

	if errors.Is(err, studentid.ErrExhausted) {
		// id space is effectively full
	}

The id space is never widened, so every id stays 8 digits long.

# Randomness

Candidates come from crypto/rand unless Generator.Rand is set (tests use a
fixed reader). Random and Valid are exported for callers that need a single
draw or a format check.
*/
package studentid
