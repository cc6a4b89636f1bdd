package primes

// IsPrime reports whether n is prime using 6k±1 trial division.
func IsPrime(n int) bool {
	if n <= 1 {
		return false
	}
	if n <= 3 {
		return true
	}
	if n%2 == 0 || n%3 == 0 {
		return false
	}
	for i := 5; i*i <= n; i += 6 {
		if n%i == 0 || n%(i+2) == 0 {
			return false
		}
	}
	return true
}

// Upto returns every prime p with p <= n in ascending order.
func Upto(n int) []int {
	out := make([]int, 0)
	for i := 2; i <= n; i++ {
		if IsPrime(i) {
			out = append(out, i)
		}
	}
	return out
}

// Count returns pi(n), the number of primes not exceeding n.
func Count(n int) int {
	c := 0
	for i := 2; i <= n; i++ {
		if IsPrime(i) {
			c++
		}
	}
	return c
}
