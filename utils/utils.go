package utils

func GetZero[T any]() T {
	var result T
	return result
}

// IsZero reports whether v equals the zero value of its type.
func IsZero[T comparable](v T) bool {
	return v == GetZero[T]()
}
