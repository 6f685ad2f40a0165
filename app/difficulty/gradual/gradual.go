// Package gradual implements spec.md §4.H's resumable per-object difficulty
// iterator, one type per mode. Each iterator retains the prepared
// diff-object buffer, the mode's skill states, and an object index idx; Next
// processes diff-object idx, advances idx, and returns a freshly finalized
// Attributes snapshot built from the skills' state as it stands after that
// object — the same Base.AllPeaks snapshot shape the batch Calculate path
// consumes once at the end, so gradual and batch agree by construction
// (spec.md §8 invariant "gradual == batch"), grounded on
// original_source/src/any/difficulty/gradual.rs's driving shape.
package gradual
