// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package structviz

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/cockroachdb/crlib/crstrings"
	"github.com/cockroachdb/datadriven"
	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/require"
)

// TestScript runs command scripts against structures. The directives are:
//
//	new kind=<kind>
//	exec
//	<command lines>
//	model
//	commands
func TestScript(t *testing.T) {
	datadriven.Walk(t, "testdata/script", func(t *testing.T, path string) {
		var s Structure
		var events testEvents
		datadriven.RunTest(t, path, func(t *testing.T, td *datadriven.TestData) string {
			switch td.Cmd {
			case "new":
				var name string
				td.ScanArgs(t, "kind", &name)
				kind, err := ParseKind(name)
				if err != nil {
					return err.Error()
				}
				events.take()
				s = New(kind, testOptions(t, &events))
				return ""

			case "exec":
				var buf strings.Builder
				for line := range crstrings.LinesSeq(td.Input) {
					if err := Exec(s, line); err != nil {
						if errors.Is(err, ErrUnknownCommand) {
							fmt.Fprintf(&buf, "%s: unknown command\n", line)
						} else {
							fmt.Fprintf(&buf, "error: %v\n", err)
						}
					}
					buf.WriteString(events.take())
				}
				if !s.Initialized() {
					buf.WriteString("uninitialized")
					return buf.String()
				}
				requireValid(t, s)
				buf.WriteString(describe(s))
				return buf.String()

			case "model":
				return s.Snapshot().String()

			case "commands":
				return strings.Join(Commands(s.Kind()), "\n")

			default:
				return fmt.Sprintf("unknown command: %s", td.Cmd)
			}
		})
	})
}

func TestRandomScript(t *testing.T) {
	for _, k := range Kinds() {
		rng := rand.New(rand.NewPCG(1, uint64(k)))
		script := RandomScript(k, rng, 200)
		require.Len(t, script, 201)
		require.Equal(t, "init", script[0])

		s := New(k, testOptions(t, nil))
		for _, line := range script {
			require.NoError(t, Exec(s, line), "%s: %s", k, line)
		}
		requireValid(t, s)
		require.Zero(t, s.Metrics().Ops.Rejected)
	}
}

func TestExecScriptSeparators(t *testing.T) {
	var events testEvents
	s := New(KindStack, testOptions(t, &events))
	require.NoError(t, ExecScript(s, "init capacity=2; push a\n# comment\n\npush b;top"))
	require.Equal(t, "[stack] stack.top value=b\n", events.take())

	// Execution stops at the first error.
	err := ExecScript(s, "pop; dequeue; pop")
	require.ErrorIs(t, err, ErrUnknownCommand)
	require.Equal(t, []string{"a"}, s.(*Stack).Values())
}
