// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package render

import (
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/pmezard/go-difflib/difflib"
)

// DiffFrames returns a unified diff of the drawings of two frames, or "" if
// the drawings are identical.
func DiffFrames(a, b Frame, opts ASCIIOptions) (string, error) {
	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(ASCII(a, opts) + "\n"),
		B:        difflib.SplitLines(ASCII(b, opts) + "\n"),
		FromFile: fmt.Sprintf("frame %d", a.Seq),
		ToFile:   fmt.Sprintf("frame %d", b.Seq),
		Context:  1,
	})
	if err != nil {
		return "", errors.Wrap(err, "diffing frames")
	}
	return diff, nil
}

// DiffFrameSeq returns the diffs between consecutive frames, skipping frames
// that draw the same as their predecessor.
func DiffFrameSeq(frames []Frame, opts ASCIIOptions) (string, error) {
	var buf strings.Builder
	for i := 1; i < len(frames); i++ {
		d, err := DiffFrames(frames[i-1], frames[i], opts)
		if err != nil {
			return "", err
		}
		buf.WriteString(d)
	}
	return buf.String(), nil
}
