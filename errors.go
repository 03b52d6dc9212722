package mlkem

import "errors"

var (
	// ErrInvalidKey is returned when an encoded key does not have the
	// length its parameter set requires, or fails a modulus check.
	ErrInvalidKey = errors.New("mlkem: invalid key")

	// ErrInvalidCiphertext is returned when an encoded ciphertext does
	// not have the length its parameter set requires.
	ErrInvalidCiphertext = errors.New("mlkem: invalid ciphertext")
)
