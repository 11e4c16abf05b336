// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package structviz

import (
	randv1 "math/rand"
	"math/rand/v2"
	"slices"
	"sort"
	"strconv"
	"testing"

	"github.com/cockroachdb/metamorphic"
	"github.com/stretchr/testify/require"
)

const metamorphicOps = 300

// listRef is a reference model of a linked list.
type listRef struct {
	values   []string
	active   int
	circular bool
}

func (r *listRef) insert(p int, v string) {
	r.values = slices.Insert(r.values, p, v)
	if r.active >= p {
		r.active++
	}
}

func (r *listRef) delete(p int) {
	r.values = slices.Delete(r.values, p, p+1)
	switch {
	case r.active == p:
		r.active = -1
	case r.active > p:
		r.active--
	}
}

func listValues(l *linkedList) []string {
	res := make([]string, 0, l.size())
	for p := 0; p < l.size(); p++ {
		res = append(res, l.value(p))
	}
	return res
}

func listOf(s Structure) (*linkedList, *DoublyLinkedList) {
	switch x := s.(type) {
	case *SinglyLinkedList:
		return &x.linkedList, nil
	case *CircularLinkedList:
		return &x.linkedList, nil
	case *DoublyLinkedList:
		return &x.linkedList, x
	}
	panic("not a list")
}

func TestListMetamorphic(t *testing.T) {
	kinds := []Kind{KindSinglyLinkedList, KindDoublyLinkedList, KindCircularLinkedList}
	for _, kind := range kinds {
		t.Run(kind.String(), func(t *testing.T) {
			for seed := uint64(1); seed <= 3; seed++ {
				runListMetamorphic(t, kind, seed)
			}
		})
	}
}

func runListMetamorphic(t *testing.T, kind Kind, seed uint64) {
	rng := rand.New(rand.NewPCG(seed, uint64(kind)))
	s := New(kind, testOptions(t, nil))
	s.Init(Config{})
	l, d := listOf(s)
	ref := listRef{active: -1, circular: kind == KindCircularLinkedList}
	val := func() string { return strconv.Itoa(rng.IntN(100)) }

	ops := metamorphic.Weighted[func()]{
		{Weight: 4, Item: func() {
			v := val()
			l.InsertFirst(v)
			ref.insert(0, v)
		}},
		{Weight: 4, Item: func() {
			v := val()
			l.InsertAfterActive(v)
			if ref.active >= 0 {
				ref.insert(ref.active+1, v)
			}
		}},
		{Weight: 2, Item: func() {
			l.DeleteFirst()
			if len(ref.values) > 0 {
				ref.delete(0)
			}
		}},
		{Weight: 2, Item: func() {
			l.DeleteAfterActive()
			n := len(ref.values)
			switch {
			case ref.active < 0:
			case ref.active < n-1:
				ref.delete(ref.active + 1)
			case ref.circular && n >= 2:
				ref.delete(0)
			}
		}},
		{Weight: 2, Item: func() {
			l.ActivateFirst()
			if len(ref.values) > 0 {
				ref.active = 0
			}
		}},
		{Weight: 3, Item: func() {
			l.ActivateNext()
			switch {
			case ref.active < 0:
			case ref.active < len(ref.values)-1:
				ref.active++
			case ref.circular:
				ref.active = 0
			default:
				ref.active = -1
			}
		}},
		{Weight: 1, Item: func() {
			v := val()
			l.SetActiveValue(v)
			if ref.active >= 0 {
				ref.values[ref.active] = v
			}
		}},
		{Weight: 1, Item: func() {
			v, ok := l.GetFirstValue()
			require.Equal(t, len(ref.values) > 0, ok)
			if ok {
				require.Equal(t, ref.values[0], v)
			}
		}},
		{Weight: 1, Item: func() {
			v, ok := l.GetActiveValue()
			require.Equal(t, ref.active >= 0, ok)
			if ok {
				require.Equal(t, ref.values[ref.active], v)
			}
		}},
	}
	if d != nil {
		ops = append(ops, metamorphic.Weighted[func()]{
			{Weight: 4, Item: func() {
				v := val()
				d.InsertLast(v)
				ref.insert(len(ref.values), v)
			}},
			{Weight: 3, Item: func() {
				v := val()
				d.InsertBeforeActive(v)
				if ref.active >= 0 {
					ref.insert(ref.active, v)
				}
			}},
			{Weight: 2, Item: func() {
				d.DeleteLast()
				if n := len(ref.values); n > 0 {
					ref.delete(n - 1)
				}
			}},
			{Weight: 2, Item: func() {
				d.DeleteBeforeActive()
				if ref.active > 0 {
					ref.delete(ref.active - 1)
				}
			}},
			{Weight: 2, Item: func() {
				d.ActivateLast()
				if n := len(ref.values); n > 0 {
					ref.active = n - 1
				}
			}},
			{Weight: 3, Item: func() {
				d.ActivatePrevious()
				if ref.active >= 0 {
					ref.active--
				}
			}},
			{Weight: 1, Item: func() {
				v, ok := d.GetLastValue()
				require.Equal(t, len(ref.values) > 0, ok)
				if ok {
					require.Equal(t, ref.values[len(ref.values)-1], v)
				}
			}},
		}...)
	}

	nextOp := ops.RandomDeck(randv1.New(randv1.NewSource(rng.Int64())))
	for i := 0; i < metamorphicOps; i++ {
		nextOp()()
		requireValid(t, s)
		require.True(t, slices.Equal(ref.values, listValues(l)), "seed %d op %d: %q != %q", seed, i, ref.values, listValues(l))
		require.Equal(t, ref.active, l.Active(), "seed %d op %d", seed, i)
		if d != nil {
			requireDoublySymmetric(t, d)
		}
	}
}

func TestStackMetamorphic(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	s := NewStack(testOptions(t, nil))
	s.Init(Config{Capacity: 4})
	var ref []string

	nextOp := metamorphic.Weighted[func()]{
		{Weight: 3, Item: func() {
			v := strconv.Itoa(rng.IntN(100))
			s.Push(v)
			if len(ref) < 4 {
				ref = append(ref, v)
			}
		}},
		{Weight: 2, Item: func() {
			v, ok := s.Pop()
			require.Equal(t, len(ref) > 0, ok)
			if ok {
				require.Equal(t, ref[len(ref)-1], v)
				ref = ref[:len(ref)-1]
			}
		}},
		{Weight: 1, Item: func() {
			v, ok := s.Top()
			require.Equal(t, len(ref) > 0, ok)
			if ok {
				require.Equal(t, ref[len(ref)-1], v)
			}
		}},
		{Weight: 1, Item: func() { require.Equal(t, len(ref) == 4, s.IsFull()) }},
		{Weight: 1, Item: func() { require.Equal(t, len(ref) == 0, s.IsEmpty()) }},
	}.RandomDeck(randv1.New(randv1.NewSource(rng.Int64())))

	for i := 0; i < metamorphicOps; i++ {
		nextOp()()
		requireValid(t, s)
		require.Equal(t, len(ref)-1, s.TopIndex())
		require.True(t, slices.Equal(ref, s.Values()), "%q != %q", ref, s.Values())
	}
}

func TestQueueMetamorphic(t *testing.T) {
	for capacity := 1; capacity <= 4; capacity++ {
		rng := rand.New(rand.NewPCG(uint64(capacity), 3))
		q := NewQueue(testOptions(t, nil))
		q.Init(Config{Capacity: capacity})
		var ref []string

		nextOp := metamorphic.Weighted[func()]{
			{Weight: 3, Item: func() {
				v := strconv.Itoa(rng.IntN(100))
				q.Enqueue(v)
				if len(ref) < capacity {
					ref = append(ref, v)
				}
			}},
			{Weight: 2, Item: func() {
				v, ok := q.Dequeue()
				require.Equal(t, len(ref) > 0, ok)
				if ok {
					require.Equal(t, ref[0], v)
					ref = ref[1:]
				}
			}},
			{Weight: 1, Item: func() {
				q.Remove()
				if len(ref) > 0 {
					ref = ref[1:]
				}
			}},
			{Weight: 1, Item: func() {
				v, ok := q.Front()
				require.Equal(t, len(ref) > 0, ok)
				if ok {
					require.Equal(t, ref[0], v)
				}
			}},
			{Weight: 1, Item: func() { require.Equal(t, len(ref) == capacity, q.IsFull()) }},
			{Weight: 1, Item: func() { require.Equal(t, len(ref) == 0, q.IsEmpty()) }},
		}.RandomDeck(randv1.New(randv1.NewSource(rng.Int64())))

		for i := 0; i < metamorphicOps; i++ {
			nextOp()()
			requireValid(t, q)
			require.Equal(t, len(ref), q.Len())
			require.True(t, slices.Equal(ref, q.Values()), "%q != %q", ref, q.Values())
		}
	}
}

func TestTreeMetamorphic(t *testing.T) {
	for seed := uint64(1); seed <= 3; seed++ {
		rng := rand.New(rand.NewPCG(seed, 4))
		b := NewBinarySearchTree(testOptions(t, nil))
		b.Init(Config{})
		ref := map[int]bool{}
		keys := func() []int {
			res := make([]int, 0, len(ref))
			for k := range ref {
				res = append(res, k)
			}
			sort.Ints(res)
			return res
		}

		nextOp := metamorphic.Weighted[func()]{
			{Weight: 5, Item: func() {
				k := rng.IntN(30)
				b.Insert(k)
				ref[k] = true
			}},
			{Weight: 3, Item: func() {
				k := rng.IntN(30)
				b.Remove(k)
				delete(ref, k)
			}},
			{Weight: 1, Item: func() {
				k := rng.IntN(30)
				require.Equal(t, ref[k], b.Search(k))
			}},
			{Weight: 1, Item: func() {
				if len(ref) == 0 {
					require.Nil(t, b.InOrder())
					return
				}
				require.Equal(t, keys(), b.InOrder())
			}},
			{Weight: 1, Item: func() {
				k, ok := b.Min()
				require.Equal(t, len(ref) > 0, ok)
				if ok {
					require.Equal(t, keys()[0], k)
				}
			}},
		}.RandomDeck(randv1.New(randv1.NewSource(rng.Int64())))

		for i := 0; i < metamorphicOps; i++ {
			nextOp()()
			requireValid(t, b)
			require.True(t, slices.Equal(keys(), b.Keys()), "%v != %v", keys(), b.Keys())
		}
	}
}
