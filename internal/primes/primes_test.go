package primes

import (
	"reflect"
	"testing"
)

func naivePrime(n int) bool {
	if n < 2 {
		return false
	}
	for d := 2; d < n; d++ {
		if n%d == 0 {
			return false
		}
	}
	return true
}

func TestIsPrimeMatchesTrialDivision(t *testing.T) {
	for n := 0; n <= 10000; n++ {
		if got, want := IsPrime(n), naivePrime(n); got != want {
			t.Fatalf("IsPrime(%d) = %v, want %v", n, got, want)
		}
	}
}

func TestIsPrimeEdges(t *testing.T) {
	tests := []struct {
		n    int
		want bool
	}{
		{-7, false},
		{0, false},
		{1, false},
		{2, true},
		{3, true},
		{4, false},
		{25, false},
		{49, false},
		{97, true},
		{7919, true},
	}
	for _, tt := range tests {
		if got := IsPrime(tt.n); got != tt.want {
			t.Errorf("IsPrime(%d) = %v, want %v", tt.n, got, tt.want)
		}
	}
}

func TestUptoAndCount(t *testing.T) {
	want := []int{2, 3, 5, 7, 11, 13, 17, 19, 23, 29}
	if got := Upto(30); !reflect.DeepEqual(got, want) {
		t.Errorf("Upto(30) = %v, want %v", got, want)
	}
	if got := Count(100); got != 25 {
		t.Errorf("Count(100) = %d, want 25", got)
	}
	if got := Count(1); got != 0 {
		t.Errorf("Count(1) = %d, want 0", got)
	}
}

func TestPairs(t *testing.T) {
	if got := Pairs(4); !reflect.DeepEqual(got, []Pair{{2, 2}}) {
		t.Errorf("Pairs(4) = %v", got)
	}
	if got := Pairs(10); !reflect.DeepEqual(got, []Pair{{3, 7}, {5, 5}}) {
		t.Errorf("Pairs(10) = %v", got)
	}
	if got := Pairs(9); len(got) != 0 {
		t.Errorf("Pairs(9) should be empty, got %v", got)
	}
	if got := Pairs(2); len(got) != 0 {
		t.Errorf("Pairs(2) should be empty, got %v", got)
	}
}

func TestPairsHoldGoldbachUpTo100(t *testing.T) {
	for n := 4; n <= 100; n += 2 {
		pairs := Pairs(n)
		if len(pairs) == 0 {
			t.Fatalf("no Goldbach pair for %d", n)
		}
		for _, p := range pairs {
			if p.P+p.Q != n || p.P > p.Q || !IsPrime(p.P) || !IsPrime(p.Q) {
				t.Errorf("invalid pair %v for %d", p, n)
			}
		}
	}
}

func TestPairCounts(t *testing.T) {
	counts := PairCounts(20)
	if len(counts) != 21 {
		t.Fatalf("expected 21 entries, got %d", len(counts))
	}
	// 20 = 3+17 = 7+13
	if counts[20] != 2 {
		t.Errorf("expected 2 pairs for 20, got %d", counts[20])
	}
	if counts[5] != 0 {
		t.Errorf("odd index should be zero, got %d", counts[5])
	}
}
