// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package generator

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"

	"github.com/spaolacci/murmur3"
)

// NewSeed reads a seed from the operating system's entropy source.
func NewSeed() (uint64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}
	return binary.LittleEndian.Uint64(b[:]), nil
}

// SeedFromPhrase deterministically derives a seed from a human readable
// phrase, so that runs can be reproduced by name.
func SeedFromPhrase(phrase string) uint64 {
	return murmur3.Sum64([]byte(phrase))
}
