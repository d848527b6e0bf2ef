package utils

// SliceToMap transforms a slice into a map by applying a key function to each element.
//
// The function takes a slice of type T and a key extraction function that returns a comparable key of type K.
// Each element from the slice becomes a value in the resulting map, indexed by the key derived from the element.
//
// If multiple elements produce the same key, the last one encountered in the slice will overwrite previous ones.
//
// param s the input slice to convert
// param key a function that extracts a comparable key from each element
// return a map[K]T representing the slice keyed by the extracted value
func SliceToMap[T any, K comparable](s []T, key func(T) K) map[K]T {
	m := make(map[K]T)

	for _, v := range s {
		m[key(v)] = v
	}

	return m
}
