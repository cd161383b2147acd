// Package sampling implements the demo renderer's logic: drawing a random
// subset of each list and flattening the grouped structure into an ordered
// stream of render instructions. The random source is injected so tests
// and the CLI can be deterministic; presentation (HTML, text, JSON) is the
// caller's concern.
package sampling

import (
	"math/rand"
	"strconv"
)

const (
	// MinSize and MaxSize bound the user-adjustable sample size.
	MinSize = 1
	MaxSize = 20

	// DefaultSize is the sample size used before the user changes it.
	DefaultSize = 3
)

// ClampSize bounds a requested sample size to [MinSize, MaxSize].
// Zero or negative input falls back to MinSize rather than failing.
func ClampSize(k int) int {
	if k < MinSize {
		return MinSize
	}
	if k > MaxSize {
		return MaxSize
	}
	return k
}

// ParseSize coerces free-form user input into a usable sample size.
// Non-numeric input falls back to MinSize.
func ParseSize(s string) int {
	k, err := strconv.Atoi(s)
	if err != nil {
		return MinSize
	}
	return ClampSize(k)
}

// Sample draws min(k, len(items)) items uniformly at random without
// replacement, using a partial Fisher-Yates shuffle over a copy. The
// input slice is never mutated.
func Sample(items []string, k int, rng *rand.Rand) []string {
	n := len(items)
	if k > n {
		k = n
	}
	if k <= 0 {
		return []string{}
	}

	pool := make([]string, n)
	copy(pool, items)
	for i := 0; i < k; i++ {
		j := i + rng.Intn(n-i)
		pool[i], pool[j] = pool[j], pool[i]
	}
	return pool[:k]
}
