// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package structviz

import (
	"math/rand/v2"
	"strconv"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/structviz/internal/graph"
	"github.com/cockroachdb/structviz/internal/invariants"
)

// arrayStore is the slot row shared by the array-backed structures. Slot i
// has the id Index(i) and sits at x = i*NodeSpacing.
type arrayStore struct {
	core
	slots int
}

// capacityOf returns the capacity requested by cfg, clamped to
// Options.MaxCapacity.
func (a *arrayStore) capacityOf(cfg Config) int {
	if cfg.Capacity > 0 {
		return min(cfg.Capacity, a.opts.MaxCapacity)
	}
	return a.opts.DefaultCapacity
}

func (a *arrayStore) createSlots(n int) {
	a.slots = n
	for i := 0; i < n; i++ {
		a.model.AddNode(graph.Node{
			ID:      graph.Index(i),
			X:       a.slotX(i),
			Class:   graph.ClassSlot,
			Opacity: 1,
		})
	}
}

func (a *arrayStore) slotX(i int) float64 { return float64(i) * a.opts.NodeSpacing }

func (a *arrayStore) slotValue(i int) string {
	invariants.CheckBounds(i, a.slots)
	return a.mustNode(graph.Index(i)).Value
}

// setSlot writes a slot value and waits for the change to be shown.
func (a *arrayStore) setSlot(i int, v string) {
	invariants.CheckBounds(i, a.slots)
	a.setValue(graph.Index(i), v)
	a.refresh()
	a.wait(1)
}

// classifySlots sets the class of every slot from the filled predicate.
func (a *arrayStore) classifySlots(filled func(i int) bool, top int) {
	for i := 0; i < a.slots; i++ {
		n := a.model.NodeAt(i)
		switch {
		case i == top:
			n.Class = graph.ClassSlotTop
		case filled(i):
			n.Class = graph.ClassSlotFilled
		default:
			n.Class = graph.ClassSlot
		}
	}
	a.model.Touch()
}

// randomCapacity returns the capacity of a random instance.
func randomCapacity(rng *rand.Rand) Config {
	return Config{Capacity: 5 + rng.IntN(6)}
}

func randomValue(rng *rand.Rand) string { return strconv.Itoa(rng.IntN(100)) }

// checkSlots verifies that the slots are intact and that the free slots hold
// no value.
func (a *arrayStore) checkSlots(filled func(i int) bool) error {
	for i := 0; i < a.slots; i++ {
		if i >= a.model.NumNodes() {
			return errors.AssertionFailedf("missing slot %d", i)
		}
		n := a.model.NodeAt(i)
		if n.ID != graph.Index(i) {
			return errors.AssertionFailedf("slot %d has id %s", i, n.ID)
		}
		if !filled(i) && n.Value != "" {
			return errors.AssertionFailedf("free slot %d holds %q", i, n.Value)
		}
	}
	return nil
}

// flashMarker shows a temporary marker above slot i while the result of a
// query is reported.
func (a *arrayStore) flashMarker(name string, i int, report func()) {
	id := graph.Marker(name)
	a.addAndFadeIn([]graph.Node{{
		ID:    id,
		Value: name,
		X:     a.slotX(i),
		Y:     -a.opts.MarkerOffset,
		Class: graph.ClassMarker,
	}}, []graph.Edge{{Source: id, Target: graph.Index(i), Class: graph.ClassMarkerEdge}})
	report()
	a.wait(1)
	a.fadeOutAndRemove([]graph.ID{id}, a.model.EdgesOf(id))
}

func (a *arrayStore) setOpacity(graph.Element, float64) bool { return false }
