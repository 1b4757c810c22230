package sieve

import (
	"fmt"
	"math"
)

type Strategy string

const (
	// StrategyMultiplier sieves up to N*2, N*3, ... until enough primes fit.
	StrategyMultiplier Strategy = "multiplier"
	// StrategyEstimate sizes the sieve from an upper bound on the (N+1)-th prime.
	StrategyEstimate Strategy = "estimate"
)

func ParseStrategy(name string) (Strategy, error) {
	switch Strategy(name) {
	case "", StrategyMultiplier:
		return StrategyMultiplier, nil
	case StrategyEstimate:
		return StrategyEstimate, nil
	default:
		return "", fmt.Errorf("unknown sieve strategy %q", name)
	}
}

// Finder resolves indices to primes. The zero value uses StrategyMultiplier
// and is safe for concurrent use.
type Finder struct {
	Strategy Strategy
	// Logf, when set, receives one line per sizing attempt.
	Logf func(format string, args ...any)
}

var defaultFinder Finder

// Nth returns the n-th prime, counting from 0 (Nth(0) == 2).
func Nth(n int) (int, error) {
	return defaultFinder.Nth(n)
}

func (f Finder) Nth(n int) (int, error) {
	if err := validateIndex(n); err != nil {
		return 0, err
	}
	switch f.Strategy {
	case "", StrategyMultiplier:
		return f.byMultiplier(n), nil
	case StrategyEstimate:
		return f.byEstimate(n), nil
	default:
		return 0, fmt.Errorf("unknown sieve strategy %q", f.Strategy)
	}
}

func (f Finder) byMultiplier(n int) int {
	multiplier := 2
	bound := n * multiplier
	primes := []int{2}
	for len(primes) <= n {
		primes = f.attempt(bound)
		multiplier++
		bound = n * multiplier
	}
	return primes[n]
}

func (f Finder) byEstimate(n int) int {
	bound := upperBound(n + 1)
	primes := f.attempt(bound)
	for len(primes) <= n {
		bound *= 2
		primes = f.attempt(bound)
	}
	return primes[n]
}

func (f Finder) attempt(bound int) []int {
	primes := Primes(bound)
	if f.Logf != nil {
		f.Logf("sieve bound %d: %d primes", bound, len(primes))
	}
	return primes
}

// upperBound returns a sieve bound that holds at least k primes, using
// p_k < k(ln k + ln ln k) for k >= 6.
func upperBound(k int) int {
	if k < 6 {
		return 14
	}
	x := float64(k)
	return int(math.Ceil(x*(math.Log(x)+math.Log(math.Log(x))))) + 1
}

// estimateCount over-approximates the number of primes below bound.
func estimateCount(bound int) int {
	if bound < 17 {
		return bound / 2
	}
	x := float64(bound)
	return int(1.25506*x/math.Log(x)) + 1
}
