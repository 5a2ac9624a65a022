// SPDX-License-Identifier: MIT

// Package randx models randomness as data: a Draw is a pending
// computation that needs a random source to produce its value, and
// resolving it is the only way randomness enters an evaluation.
//
// Goals:
//   - Determinism: same source state ⇒ identical results across platforms.
//   - Explicitness: no time-based or global sources hidden anywhere; the
//     caller always supplies (or derives) the stream.
//   - Safety: no panics or logging.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Do not share a *rand.Rand
//     across goroutines; use DeriveRNG to create independent streams for
//     parallel workers, then resolve each worker's draws against its own
//     stream.
package randx
