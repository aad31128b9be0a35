// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"crypto/rand"
	"fmt"
	"io"
	"math/big"
	"strings"
)

const (
	MinGeneratedLength     = 8
	MaxGeneratedLength     = 64
	DefaultGeneratedLength = 20

	lowerChars  = "abcdefghijklmnopqrstuvwxyz"
	upperChars  = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	digitChars  = "0123456789"
	symbolChars = "!@#$%^&*()-_=+[]{};:,.<>?"
)

// PasswordOptions selects the length and character classes of a generated
// password. Every selected class is guaranteed to appear at least once.
type PasswordOptions struct {
	Length  int
	Lower   bool
	Upper   bool
	Digits  bool
	Symbols bool
}

// DefaultPasswordOptions enables all classes at the default length.
func DefaultPasswordOptions() PasswordOptions {
	return PasswordOptions{Length: DefaultGeneratedLength, Lower: true, Upper: true, Digits: true, Symbols: true}
}

func (o PasswordOptions) classes() []string {
	var classes []string
	if o.Lower {
		classes = append(classes, lowerChars)
	}
	if o.Upper {
		classes = append(classes, upperChars)
	}
	if o.Digits {
		classes = append(classes, digitChars)
	}
	if o.Symbols {
		classes = append(classes, symbolChars)
	}
	return classes
}

// PasswordGenerator draws characters from a cryptographic random source.
type PasswordGenerator struct {
	random io.Reader
}

// NewPasswordGenerator returns a generator reading from crypto/rand.
func NewPasswordGenerator() *PasswordGenerator {
	return &PasswordGenerator{random: rand.Reader}
}

// Generate returns a password satisfying opts.
func (g *PasswordGenerator) Generate(opts PasswordOptions) (string, error) {
	if opts.Length < MinGeneratedLength || opts.Length > MaxGeneratedLength {
		return "", fmt.Errorf("%w: %d not in [%d, %d]", ErrInvalidPasswordLength, opts.Length, MinGeneratedLength, MaxGeneratedLength)
	}
	classes := opts.classes()
	if len(classes) == 0 {
		return "", ErrNoCharacterClasses
	}

	out := make([]byte, 0, opts.Length)
	for _, class := range classes {
		c, err := g.pick(class)
		if err != nil {
			return "", err
		}
		out = append(out, c)
	}

	alphabet := strings.Join(classes, "")
	for len(out) < opts.Length {
		c, err := g.pick(alphabet)
		if err != nil {
			return "", err
		}
		out = append(out, c)
	}

	// Fisher-Yates, so the guaranteed characters are not always in front
	for i := len(out) - 1; i > 0; i-- {
		j, err := g.intn(i + 1)
		if err != nil {
			return "", err
		}
		out[i], out[j] = out[j], out[i]
	}

	return string(out), nil
}

func (g *PasswordGenerator) pick(alphabet string) (byte, error) {
	i, err := g.intn(len(alphabet))
	if err != nil {
		return 0, err
	}
	return alphabet[i], nil
}

func (g *PasswordGenerator) intn(n int) (int, error) {
	v, err := rand.Int(g.random, big.NewInt(int64(n)))
	if err != nil {
		return 0, fmt.Errorf("error reading random source: %w", err)
	}
	return int(v.Int64()), nil
}
