// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

// Package testutils contains helpers shared by the structviz tests.
package testutils

import "testing"

// Logger routes structure log output to a testing.TB, so that it only shows
// up for failing or verbose tests. Errors are logged with an "error: "
// prefix; Fatalf fails the test.
type Logger struct {
	T testing.TB
}

func (l Logger) Infof(format string, args ...any) {
	l.T.Helper()
	l.T.Logf(format, args...)
}

func (l Logger) Errorf(format string, args ...any) {
	l.T.Helper()
	l.T.Logf("error: "+format, args...)
}

func (l Logger) Fatalf(format string, args ...any) {
	l.T.Helper()
	l.T.Fatalf(format, args...)
}
