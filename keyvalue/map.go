package keyvalue

// Predicate allows to filter key value pairs
type Predicate[K comparable, V any] func(k K, v V) bool

// Filter a map by key and value
func Filter[K comparable, V any](
	in map[K]V,
	pred Predicate[K, V],
) map[K]V {
	result := make(map[K]V, len(in))
	for k, v := range in {
		if pred(k, v) {
			result[k] = v
		}
	}
	return result
}
