// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package structviz

import "github.com/cockroachdb/structviz/internal/graph"

// ID exports the graph.ID type.
type ID = graph.ID

// Node exports the graph.Node type.
type Node = graph.Node

// Edge exports the graph.Edge type.
type Edge = graph.Edge

// Class exports the graph.Class type.
type Class = graph.Class

// Model exports the graph.Model type.
type Model = graph.Model

// Element exports the graph.Element type.
type Element = graph.Element

// Box exports the graph.Box type.
type Box = graph.Box

// IndexID exports the graph.Index function.
func IndexID(i int) ID { return graph.Index(i) }

// KeyID exports the graph.Key function.
func KeyID(k int) ID { return graph.Key(k) }

// MarkerID exports the graph.Marker function.
func MarkerID(name string) ID { return graph.Marker(name) }
