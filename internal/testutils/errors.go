// Copyright 2024 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package testutils

// CheckErr can be used to simplify test code that expects no errors.
// Instead of:
//
//	enc, err := render.EncodeFrames(frames, render.Snappy)
//	require.NoError(t, err)
//
// we can use:
//
//	enc := testutils.CheckErr(render.EncodeFrames(frames, render.Snappy))
//
// A non-nil error panics, failing the test.
func CheckErr[V any](v V, err error) V {
	if err != nil {
		panic(err)
	}
	return v
}
