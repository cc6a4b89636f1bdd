package primes

// Pair is a Goldbach decomposition P+Q of an even number with P <= Q.
type Pair struct {
	P, Q int
}

// Pairs returns every prime pair summing to n, ordered by ascending P.
// Odd n and n < 4 yield no pairs.
func Pairs(n int) []Pair {
	pairs := make([]Pair, 0)
	if n < 4 || n%2 != 0 {
		return pairs
	}
	for p := 2; p <= n/2; p++ {
		if IsPrime(p) && IsPrime(n-p) {
			pairs = append(pairs, Pair{P: p, Q: n - p})
		}
	}
	return pairs
}

// PairCounts maps every even n in [4, max] to its number of Goldbach pairs.
// The result is indexed by n; odd and small indices hold zero.
func PairCounts(max int) []int {
	if max < 0 {
		max = 0
	}
	counts := make([]int, max+1)
	for n := 4; n <= max; n += 2 {
		counts[n] = len(Pairs(n))
	}
	return counts
}
