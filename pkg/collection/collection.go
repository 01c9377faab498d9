package collection

func Map[S ~[]E, E, T any](s S, mapper func(e E) T) []T {
	out := make([]T, 0, len(s))
	for _, v := range s {
		out = append(out, mapper(v))
	}
	return out
}

// Keys in no particular order.
func Keys[K comparable, V any](m map[K]V) []K {
	out := make([]K, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}
