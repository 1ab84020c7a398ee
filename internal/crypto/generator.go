package crypto

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"math/big"
)

const (
	letterChars  = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"
	digitChars   = "0123456789"
	specialChars = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

	MinLength     = 8
	DefaultLength = 12
)

var (
	ErrInvalidConstraint = errors.New("invalid password constraint")
	ErrLengthTooShort    = fmt.Errorf("%w: password length must be at least %d", ErrInvalidConstraint, MinLength)
	ErrNoCharacterTypes  = fmt.Errorf("%w: digits or special characters must be enabled", ErrInvalidConstraint)
)

// randReader is the secure random source. Tests replace it to exercise failures.
var randReader io.Reader = rand.Reader

// GeneratorOptions configures the password generator.
// Letters are always part of the alphabet.
type GeneratorOptions struct {
	Length  int
	Digits  bool
	Special bool
}

// DefaultOptions returns 12 characters with digits and special characters enabled.
func DefaultOptions() GeneratorOptions {
	return GeneratorOptions{
		Length:  DefaultLength,
		Digits:  true,
		Special: true,
	}
}

// Alphabet returns the characters eligible for selection under opts.
func Alphabet(opts GeneratorOptions) string {
	pool := letterChars
	if opts.Digits {
		pool += digitChars
	}
	if opts.Special {
		pool += specialChars
	}
	return pool
}

// Generate creates a cryptographically secure random password based on the given options.
// Every character is drawn independently and uniformly from Alphabet(opts), so a
// password may by chance omit an enabled character class.
func Generate(opts GeneratorOptions) (string, error) {
	if !opts.Digits && !opts.Special {
		return "", ErrNoCharacterTypes
	}
	if opts.Length < MinLength {
		return "", ErrLengthTooShort
	}

	pool := Alphabet(opts)
	result := make([]byte, opts.Length)
	for i := range result {
		ch, err := randChar(pool)
		if err != nil {
			return "", fmt.Errorf("reading secure random source: %w", err)
		}
		result[i] = ch
	}

	return string(result), nil
}

// randChar picks a random character from charset using the secure source.
func randChar(charset string) (byte, error) {
	n, err := rand.Int(randReader, big.NewInt(int64(len(charset))))
	if err != nil {
		return 0, err
	}
	return charset[n.Int64()], nil
}
