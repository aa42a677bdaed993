package sample

import (
	"errors"
	"fmt"
	"math/rand"
)

var ErrSampleTooLarge = errors.New("sample size exceeds population")

// Pick returns k elements drawn uniformly at random from items, without
// replacement. It shuffles a private copy with the Fisher-Yates algorithm
// and returns the first k entries, so the caller's slice is never reordered.
func Pick[T any](items []T, k int) ([]T, error) {
	if k < 0 || k > len(items) {
		return nil, fmt.Errorf("%w: k=%d, population=%d", ErrSampleTooLarge, k, len(items))
	}

	pool := make([]T, len(items))
	copy(pool, items)

	for i := len(pool) - 1; i >= 1; i-- {
		j := rand.Intn(i + 1)
		pool[i], pool[j] = pool[j], pool[i]
	}

	return pool[:k], nil
}
