package sieve

// Primes returns every prime strictly less than bound, in increasing order.
// Slot i of the working sieve stands for the number i.
func Primes(bound int) []int {
	if bound < 3 {
		return []int{}
	}
	candidates := make([]bool, bound)
	for i := range candidates {
		candidates[i] = true
	}
	primes := make([]int, 0, estimateCount(bound))
	for i := 2; i < bound; i++ {
		if !candidates[i] {
			continue
		}
		primes = append(primes, i)
		markMultiples(candidates, i)
	}
	return primes
}

// markMultiples clears p*p, p*(p+1), ... below len(candidates). Smaller
// multiples of p already have a smaller prime factor.
func markMultiples(candidates []bool, p int) {
	size := len(candidates)
	for j := p; j <= (size-1)/p; j++ {
		candidates[j*p] = false
	}
}
