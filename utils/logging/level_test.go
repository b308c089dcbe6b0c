// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package logging

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAlignedString(t *testing.T) {
	levels := []Level{Off, Fatal, Error, Warn, Info, Debug, Verbo}
	for _, l := range levels {
		as := l.AlignedString()
		assert.Len(t, as, alignedStringLen)
		s := l.String()
		switch {
		case len(s) >= alignedStringLen:
			assert.Equal(t, s[:alignedStringLen], as)
		default:
			assert.Equal(t, s, as[:len(s)])
			assert.Equal(t, as[len(s):], strings.Repeat(" ", alignedStringLen-len(s)))
		}
	}
}

func TestToLevel(t *testing.T) {
	require := require.New(t)

	for _, l := range []Level{Off, Fatal, Error, Warn, Info, Debug, Verbo} {
		parsed, err := ToLevel(strings.ToLower(l.String()))
		require.NoError(err)
		require.Equal(l, parsed)
	}

	_, err := ToLevel("loud")
	require.Error(err) //nolint:forbidigo // no sentinel error
}

func TestLevelOrdering(t *testing.T) {
	require := require.New(t)

	require.Less(Verbo, Debug)
	require.Less(Debug, Info)
	require.Less(Info, Warn)
	require.Less(Warn, Error)
	require.Less(Error, Fatal)
	require.Less(Fatal, Off)
}

func TestLevelJSON(t *testing.T) {
	require := require.New(t)

	b, err := json.Marshal(Warn)
	require.NoError(err)
	require.Equal(`"WARN"`, string(b))

	var l Level
	require.NoError(json.Unmarshal([]byte(`"debug"`), &l))
	require.Equal(Debug, l)
}
