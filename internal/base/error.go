// Copyright 2011 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package base

import "github.com/cockroachdb/errors"

// ErrUnknownCommand is returned when a command line names no operation of the
// target structure.
var ErrUnknownCommand = errors.New("structviz: unknown command")

// ErrUnknownKind is returned when a structure kind cannot be parsed.
var ErrUnknownKind = errors.New("structviz: unknown structure kind")

// MarkUnknownCommand wraps ErrUnknownCommand with the offending command.
func MarkUnknownCommand(cmd string) error {
	return errors.Wrapf(ErrUnknownCommand, "%q", errors.Safe(cmd))
}
