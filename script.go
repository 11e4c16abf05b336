// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package structviz

import (
	"math/rand/v2"
	"slices"
	"strconv"
	"strings"

	"github.com/cockroachdb/crlib/crstrings"
	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/structviz/internal/base"
	"github.com/cockroachdb/structviz/internal/strparse"
)

// ErrUnknownCommand is returned by Exec for a command the structure does not
// support.
var ErrUnknownCommand = base.ErrUnknownCommand

type listOps interface {
	InsertFirst(v string)
	InsertAfterActive(v string)
	DeleteFirst()
	DeleteAfterActive()
	ActivateFirst()
	ActivateNext()
	GetFirstValue() (string, bool)
	GetActiveValue() (string, bool)
	SetActiveValue(v string)
	IsActive() bool
}

type capacityOps interface {
	IsEmpty() bool
	IsFull() bool
}

// argKind is the kind of argument a command takes.
type argKind int8

const (
	argNone argKind = iota
	// argValue is a single string value.
	argValue
	// argKeys is one or more integer keys.
	argKeys
)

// command is the implementation of a command for one structure family. bind
// parses the arguments for s and returns a function running the command; it
// returns false if s does not belong to the family.
type command struct {
	arg  argKind
	bind func(s Structure, p *strparse.Parser) (run func(), ok bool)
}

func withValue[T any](fn func(T, string)) command {
	return command{arg: argValue, bind: func(s Structure, p *strparse.Parser) (func(), bool) {
		x, ok := s.(T)
		if !ok {
			return nil, false
		}
		v := p.Value()
		return func() { fn(x, v) }, true
	}}
}

func withKeys[T any](fn func(T, int)) command {
	return command{arg: argKeys, bind: func(s Structure, p *strparse.Parser) (func(), bool) {
		x, ok := s.(T)
		if !ok {
			return nil, false
		}
		keys := p.Ints()
		if len(keys) == 0 {
			p.Errf("expected a key")
		}
		return func() {
			for _, k := range keys {
				fn(x, k)
			}
		}, true
	}}
}

func noArgs[T any](fn func(T)) command {
	return command{arg: argNone, bind: func(s Structure, _ *strparse.Parser) (func(), bool) {
		x, ok := s.(T)
		if !ok {
			return nil, false
		}
		return func() { fn(x) }, true
	}}
}

// commands maps command names to their implementations; a name can have one
// implementation per structure family.
var commands = map[string][]command{
	"insert-first": {withValue(listOps.InsertFirst)},
	"insert-after": {withValue(listOps.InsertAfterActive)},
	"delete-first": {noArgs(listOps.DeleteFirst)},
	"delete-after": {noArgs(listOps.DeleteAfterActive)},
	"set-active":   {withValue(listOps.SetActiveValue)},
	"get-first":    {noArgs(func(l listOps) { l.GetFirstValue() })},
	"get-active":   {noArgs(func(l listOps) { l.GetActiveValue() })},
	"is-active":    {noArgs(func(l listOps) { l.IsActive() })},

	"activate-first": {noArgs(listOps.ActivateFirst)},
	"activate-next":  {noArgs(listOps.ActivateNext)},

	"insert-last":   {withValue((*DoublyLinkedList).InsertLast)},
	"insert-before": {withValue((*DoublyLinkedList).InsertBeforeActive)},
	"delete-last":   {noArgs((*DoublyLinkedList).DeleteLast)},
	"delete-before": {noArgs((*DoublyLinkedList).DeleteBeforeActive)},
	"get-last":      {noArgs(func(l *DoublyLinkedList) { l.GetLastValue() })},

	"activate-last":     {noArgs((*DoublyLinkedList).ActivateLast)},
	"activate-previous": {noArgs((*DoublyLinkedList).ActivatePrevious)},

	"push":     {withValue((*Stack).Push)},
	"pop":      {noArgs(func(s *Stack) { s.Pop() })},
	"top":      {noArgs(func(s *Stack) { s.Top() })},
	"enqueue":  {withValue((*Queue).Enqueue)},
	"dequeue":  {noArgs(func(q *Queue) { q.Dequeue() })},
	"front":    {noArgs(func(q *Queue) { q.Front() })},
	"is-empty": {noArgs(func(c capacityOps) { c.IsEmpty() })},
	"is-full":  {noArgs(func(c capacityOps) { c.IsFull() })},

	"insert": {withKeys((*BinarySearchTree).Insert)},
	"remove": {
		withKeys((*BinarySearchTree).Remove),
		noArgs((*Queue).Remove),
	},
	"search":      {withKeys(func(b *BinarySearchTree, k int) { b.Search(k) })},
	"pre-order":   {noArgs(func(b *BinarySearchTree) { b.PreOrder() })},
	"in-order":    {noArgs(func(b *BinarySearchTree) { b.InOrder() })},
	"post-order":  {noArgs(func(b *BinarySearchTree) { b.PostOrder() })},
	"level-order": {noArgs(func(b *BinarySearchTree) { b.LevelOrder() })},
	"height":      {noArgs(func(b *BinarySearchTree) { b.Height() })},
	"min":         {noArgs(func(b *BinarySearchTree) { b.Min() })},
	"max":         {noArgs(func(b *BinarySearchTree) { b.Max() })},
}

// Commands returns the sorted names of the operations Exec accepts for the
// given kind. The init, reset and random commands are accepted for every kind
// and are not included.
func Commands(kind Kind) []string {
	s := New(kind, nil)
	var res []string
	for name := range commands {
		if _, ok := lookup(s, name); ok {
			res = append(res, name)
		}
	}
	slices.Sort(res)
	return res
}

// lookup returns the implementation of the named command for s.
func lookup(s Structure, name string) (command, bool) {
	for _, c := range commands[name] {
		p := strparse.MakeParser("", "1")
		if _, ok := c.bind(s, &p); ok {
			return c, true
		}
	}
	return command{}, false
}

// RandomScript returns n random command lines for the given kind, starting
// with "init". Values are in [0, 100) and keys in [0, 50).
func RandomScript(kind Kind, rng *rand.Rand, n int) []string {
	s := New(kind, nil)
	names := Commands(kind)
	res := make([]string, 0, n+1)
	res = append(res, "init")
	for i := 0; i < n; i++ {
		name := names[rng.IntN(len(names))]
		c, _ := lookup(s, name)
		switch c.arg {
		case argValue:
			name += " " + strconv.Itoa(rng.IntN(100))
		case argKeys:
			name += " " + strconv.Itoa(rng.IntN(50))
		}
		res = append(res, name)
	}
	return res
}

// Exec parses a command line and runs it on s. Empty lines and lines
// starting with '#' are ignored. Besides the operations of s (e.g.
// "insert-first 5", "push x", "insert 5 3 8"), the following commands are
// accepted:
//
//	init [capacity=<n>]
//	reset
//	random
//
// Exec returns an error if the line cannot be parsed or names a command s
// does not support; in that case nothing runs. Inapplicable operations are not
// errors; they are reported through the EventListener.
func Exec(s Structure, line string) error {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return nil
	}
	p := strparse.MakeParser("=", line)
	cmd := p.Next()
	var run func()
	switch cmd {
	case "init":
		var cfg Config
		err := strparse.Catch(func() {
			if v, ok := p.TryArg("capacity"); ok {
				n, err := strconv.Atoi(v)
				if err != nil || n <= 0 {
					p.Errf("invalid capacity %q", v)
				}
				if limit := s.Options().MaxCapacity; n > limit {
					p.Errf("capacity %d exceeds the maximum of %d", n, limit)
				}
				cfg.Capacity = n
			}
			p.ExpectDone()
		})
		if err != nil {
			return err
		}
		run = func() { s.Init(cfg) }
	case "reset", "random":
		if err := strparse.Catch(p.ExpectDone); err != nil {
			return err
		}
		run = s.Reset
		if cmd == "random" {
			run = s.Random
		}
	default:
		impls, ok := commands[cmd]
		if !ok {
			return base.MarkUnknownCommand(cmd)
		}
		err := strparse.Catch(func() {
			for _, c := range impls {
				if r, ok := c.bind(s, &p); ok {
					p.ExpectDone()
					run = r
					return
				}
			}
		})
		if err != nil {
			return err
		}
		if run == nil {
			return errors.Wrapf(base.MarkUnknownCommand(cmd), "for %s", s.Kind())
		}
	}
	run()
	return nil
}

// ExecScript runs every command of a script. Commands are separated by
// newlines or semicolons. Execution stops at the first error.
func ExecScript(s Structure, script string) error {
	for line := range crstrings.LinesSeq(script) {
		for _, cmd := range strings.Split(line, ";") {
			if err := Exec(s, cmd); err != nil {
				return err
			}
		}
	}
	return nil
}
