package domain

import "math"

// Sample draws k distinct elements from population without replacement,
// in draw order. It follows CPython's random.sample so that a generator
// reproducing CPython's _randbelow yields the same selection: small
// populations use a partial swap-remove pool, large ones rejection-sample
// indices into a set.
func Sample[T any](population []T, k int, rng RNG) ([]T, error) {
	n := len(population)
	if k < 0 || k > n {
		return nil, ErrSampleTooLarge
	}

	result := make([]T, k)

	setsize := 21
	if k > 5 {
		setsize += int(math.Pow(4, math.Ceil(math.Log(float64(k*3))/math.Log(4))))
	}

	if n <= setsize {
		pool := make([]T, n)
		copy(pool, population)
		for i := 0; i < k; i++ {
			j := rng.Intn(n - i)
			result[i] = pool[j]
			pool[j] = pool[n-i-1]
		}
		return result, nil
	}

	selected := make(map[int]struct{}, k)
	for i := 0; i < k; i++ {
		j := rng.Intn(n)
		for {
			if _, dup := selected[j]; !dup {
				break
			}
			j = rng.Intn(n)
		}
		selected[j] = struct{}{}
		result[i] = population[j]
	}
	return result, nil
}
