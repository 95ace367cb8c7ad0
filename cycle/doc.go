// Package cycle detects when a deterministic step function re-enters an
// earlier configuration and extrapolates an accumulated measure to tick
// counts far beyond what can be simulated.
//
// What
//
//   - Detect: steps a system from its initial state, feeding each tick's
//     snapshot key into a Cache, until a key repeats.
//   - Cycle.At: returns the measure at tick n. Ticks already simulated are
//     answered from the recorded history; later ticks are extrapolated.
//   - Cache: the periodicity cache itself (snapshot key → first step and
//     measure), usable directly by callers that drive their own loop.
//   - Fingerprint / FingerprintInts: xxhash digests that turn a structural
//     snapshot (e.g. a per-column depth profile) into a compact comparable key.
//
// Extrapolation
//
//	Let (t0, m0) be the first occurrence of a key and (t1, m1) its first
//	repeat. Then L = t1 - t0, G = m1 - m0 and for n > t1:
//
//	    At(n) = ((n - t0) / L) * G + measure(t0 + (n - t0) % L)
//
// Snapshot keys
//
//	The step function must be deterministic given the state and any finite
//	repeating driver (e.g. a jet pattern). Keys should include the driver
//	indices plus a canonical view of the state that is injective enough to
//	avoid false repeats; a profile of "depth to first obstruction per
//	column" is the classic choice.
//
// Errors
//
//   - ErrNoCycle          no key repeated within WithMaxSteps ticks.
//   - ErrNegativeTarget   At was asked for a negative tick.
//   - ErrNilStep          Detect was given a nil step function.
//   - ErrOptionViolation  an invalid Option was supplied.
package cycle
