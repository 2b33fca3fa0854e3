// Package safe provides panic-free helpers for integer and decimal math.
//
// Core APIs include overflow-checked int64 arithmetic (AddInt64, SubInt64,
// MulInt64, NegateInt64), decimal division helpers guarded against zero
// denominators (Divide, QuoRem) and range-checked conversion back to int64
// (DecimalToInt64).
//
// Functions that can fail return explicit errors instead of panicking or
// silently wrapping, so callers can handle failures predictably.
package safe
