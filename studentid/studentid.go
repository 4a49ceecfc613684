// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package studentid

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"math/big"
	"strconv"
)

// Bounds of the student id space (inclusive)
const (
	Min = 10000000
	Max = 99999999

	// Length of every generated id
	Length = 8

	DefaultMaxAttempts = 32
)

var (
	ErrExhausted     = errors.New("student id space exhausted")
	ErrNoExistsCheck = errors.New("student id existence check not configured")
)

// ExistsFunc reports whether a student id is already stored
type ExistsFunc func(ctx context.Context, id string) (bool, error)

// Generator draws random ids until one is not taken.
// It gives up after MaxAttempts collisions instead of looping forever.
type Generator struct {
	Exists      ExistsFunc
	MaxAttempts int
	// Rand defaults to crypto/rand.Reader
	Rand io.Reader
}

// Generate returns the first random id that Exists reports as free
func (g Generator) Generate(ctx context.Context) (string, error) {
	if g.Exists == nil {
		return "", ErrNoExistsCheck
	}

	attempts := g.MaxAttempts
	if attempts <= 0 {
		attempts = DefaultMaxAttempts
	}

	for i := 0; i < attempts; i++ {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		candidate, err := Random(g.reader())
		if err != nil {
			return "", err
		}

		taken, err := g.Exists(ctx, candidate)
		if err != nil {
			return "", fmt.Errorf("failed to check student id: %w", err)
		}
		if !taken {
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w after %d attempts", ErrExhausted, attempts)
}

func (g Generator) reader() io.Reader {
	if g.Rand != nil {
		return g.Rand
	}
	return rand.Reader
}

// Random draws one id uniformly from [Min, Max]
func Random(r io.Reader) (string, error) {
	n, err := rand.Int(r, big.NewInt(Max-Min+1))
	if err != nil {
		return "", fmt.Errorf("failed to generate student id: %w", err)
	}
	return strconv.FormatInt(n.Int64()+Min, 10), nil
}

// Valid checks that id is an 8-digit number within [Min, Max]
func Valid(id string) bool {
	if len(id) != Length {
		return false
	}
	for i := 0; i < len(id); i++ {
		if id[i] < '0' || id[i] > '9' {
			return false
		}
	}
	// Eight digits with no leading zero is exactly [Min, Max]
	return id[0] != '0'
}
