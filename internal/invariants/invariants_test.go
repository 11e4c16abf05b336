// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package invariants

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSometimes(t *testing.T) {
	if !Enabled {
		for range 100 {
			require.False(t, Sometimes(100))
		}
		return
	}
	for range 100 {
		require.True(t, Sometimes(100))
		require.False(t, Sometimes(0))
	}
}

func TestCheckBounds(t *testing.T) {
	CheckBounds(0, 1)
	CheckBounds(4, 5)
	if Enabled {
		require.Panics(t, func() { CheckBounds(5, 5) })
		require.Panics(t, func() { CheckBounds(-1, 5) })
	}
}
