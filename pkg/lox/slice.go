package lox

// Map как lo.Map, но без индекса в iteratee, чтобы передавать конвертеры
// напрямую.
func Map[T, R any](collection []T, iteratee func(item T) R) []R {
	result := make([]R, len(collection))

	for i, item := range collection {
		result[i] = iteratee(item)
	}

	return result
}
