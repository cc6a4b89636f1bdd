// Package primes provides the number-theory helpers shared by the prime
// visualizations:
//
//   - [IsPrime]: deterministic 6k±1 trial division
//   - [Pairs]: Goldbach decompositions of an even number
//   - [Upto], [Count]: prime listing and counting
package primes
