// Package split plans how a money total is divided among named parts.
//
// Core flow:
//   - Each Part declares exactly one strategy: a fixed Amount, a Ratio, or
//     Remainder.
//   - Plan takes fixed amounts first, allocates what is left across ratio
//     parts with Money.Allocate, and gives the rest to the remainder part.
//   - The planned shares always sum to the total; violations are reported as
//     typed DomainError values.
package split
