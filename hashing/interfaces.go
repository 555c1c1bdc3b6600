// Package hashing provides hashing algorithms and keys identifying argument lists.
package hashing

import "io"

// IHash computes the digest of a stream.
type IHash interface {
	// Calculate returns the hexadecimal digest of everything read from reader.
	Calculate(reader io.Reader) (string, error)
	GetType() string
}
