// Package common provides small helpers shared across client components.
package common

// WipeBytes overwrites the contents of the provided byte slice with zeros.
// This is used to remove sensitive data such as passwords from memory
// after use.
//
// If the slice is nil, the function does nothing.
func WipeBytes(b []byte) {
	if b == nil {
		return
	}
	for i := range b {
		b[i] = 0
	}
}
