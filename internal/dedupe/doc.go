// Package dedupe reduces a filtered snapshot to its canonical record set.
//
// The reduction runs three keep-first stages in a fixed order: exact
// (identity, contact) pairs, then identity keys alone, then contact keys
// alone. Each stage operates on the survivors of the previous one and the
// earliest input row always wins, so the result is order dependent on
// purpose. Callers wanting a different winner pre-sort the input before
// handing it over.
package dedupe
