// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordGenerator_Generate(t *testing.T) {
	g := NewPasswordGenerator()

	tests := []struct {
		name string
		opts PasswordOptions
	}{
		{name: "defaults", opts: DefaultPasswordOptions()},
		{name: "minimum length all classes", opts: PasswordOptions{Length: MinGeneratedLength, Lower: true, Upper: true, Digits: true, Symbols: true}},
		{name: "maximum length", opts: PasswordOptions{Length: MaxGeneratedLength, Lower: true, Digits: true}},
		{name: "digits only", opts: PasswordOptions{Length: 12, Digits: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			password, err := g.Generate(tt.opts)
			require.NoError(t, err)
			assert.Len(t, password, tt.opts.Length)

			assert.Equal(t, tt.opts.Lower, strings.ContainsAny(password, lowerChars))
			assert.Equal(t, tt.opts.Upper, strings.ContainsAny(password, upperChars))
			assert.Equal(t, tt.opts.Digits, strings.ContainsAny(password, digitChars))
			assert.Equal(t, tt.opts.Symbols, strings.ContainsAny(password, symbolChars))
		})
	}
}

func TestPasswordGenerator_Distinct(t *testing.T) {
	g := NewPasswordGenerator()
	seen := make(map[string]struct{})
	for range 50 {
		password, err := g.Generate(DefaultPasswordOptions())
		require.NoError(t, err)
		seen[password] = struct{}{}
	}
	assert.Len(t, seen, 50)
}

func TestPasswordGenerator_InvalidOptions(t *testing.T) {
	g := NewPasswordGenerator()

	_, err := g.Generate(PasswordOptions{Length: MinGeneratedLength - 1, Lower: true})
	assert.ErrorIs(t, err, ErrInvalidPasswordLength)

	_, err = g.Generate(PasswordOptions{Length: MaxGeneratedLength + 1, Lower: true})
	assert.ErrorIs(t, err, ErrInvalidPasswordLength)

	_, err = g.Generate(PasswordOptions{Length: 16})
	assert.ErrorIs(t, err, ErrNoCharacterClasses)
}

type brokenReader struct{}

func (brokenReader) Read([]byte) (int, error) { return 0, errors.New("entropy exhausted") }

func TestPasswordGenerator_RandomFailure(t *testing.T) {
	g := &PasswordGenerator{random: brokenReader{}}

	_, err := g.Generate(DefaultPasswordOptions())
	assert.ErrorContains(t, err, "entropy exhausted")
}

func TestItemIDs_Generate(t *testing.T) {
	g := NewItemIDs()

	first, err := uuid.Parse(g.Generate())
	require.NoError(t, err)
	second, err := uuid.Parse(g.Generate())
	require.NoError(t, err)

	assert.Equal(t, uuid.Version(7), first.Version())
	assert.NotEqual(t, first, second)
	assert.Less(t, first.String(), second.String())
}
