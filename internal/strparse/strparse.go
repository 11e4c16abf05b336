// Copyright 2024 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

// Package strparse provides facilities for parsing command lines and test
// input.
package strparse

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/cockroachdb/errors"
)

// Parser splits a command line into tokens and consumes them. It backs
// structviz.Exec and the datadriven test commands.
//
// Tokens are separated by whitespace, and every rune of the separators given
// to MakeParser is a token of its own: with the separators "=", the line
// `init capacity=5` yields `init`, `capacity`, `=` and `5`.
//
// Parse failures panic through Errf; wrap the parsing code in Catch to get an
// error back.
type Parser struct {
	original  string
	tokens    []token
	lastToken token
}

// token is a token and its byte offset in the original input.
type token struct {
	tok    string
	offset int
}

// MakeParser tokenizes input.
func MakeParser(separators string, input string) Parser {
	p := Parser{original: input}
	start := -1
	flush := func(end int) {
		if start >= 0 {
			p.tokens = append(p.tokens, token{tok: input[start:end], offset: start})
			start = -1
		}
	}
	for i, r := range input {
		switch {
		case unicode.IsSpace(r):
			flush(i)
		case strings.ContainsRune(separators, r):
			flush(i)
			p.tokens = append(p.tokens, token{tok: input[i : i+utf8.RuneLen(r)], offset: i})
		case start < 0:
			start = i
		}
	}
	flush(len(input))
	return p
}

// Done returns true if there are no more tokens.
func (p *Parser) Done() bool {
	return len(p.tokens) == 0
}

// Offset returns the offset of the next token.
func (p *Parser) Offset() int {
	if p.Done() {
		return len(p.original)
	}
	return p.tokens[0].offset
}

// Peek returns the next token, without consuming the token. Returns "" if there
// are no more tokens.
func (p *Parser) Peek() string {
	if p.Done() {
		p.lastToken = token{}
		return ""
	}
	p.lastToken = p.tokens[0]
	return p.tokens[0].tok
}

// Next returns the next token, or "" if there are no more tokens.
func (p *Parser) Next() string {
	res := p.Peek()
	if res != "" {
		p.tokens = p.tokens[1:]
	}
	return res
}

// Remaining consumes the remaining tokens and returns them joined by single
// spaces.
func (p *Parser) Remaining() string {
	parts := make([]string, len(p.tokens))
	for i := range p.tokens {
		parts[i] = p.tokens[i].tok
	}
	p.tokens = nil
	return strings.Join(parts, " ")
}

// Expect consumes the next tokens, verifying that they exactly match the
// arguments.
func (p *Parser) Expect(tokens ...string) {
	for _, tok := range tokens {
		if res := p.Next(); res != tok {
			p.Errf("expected %q, got %q", tok, res)
		}
	}
}

// Int parses the next token as an integer.
func (p *Parser) Int() int {
	x, err := strconv.Atoi(p.Next())
	if err != nil {
		p.Errf("cannot parse number: %v", err)
	}
	return x
}

// Ints parses all the remaining tokens as integers.
func (p *Parser) Ints() []int {
	var res []int
	for !p.Done() {
		res = append(res, p.Int())
	}
	return res
}

// Value returns the next token, which must exist.
func (p *Parser) Value() string {
	if p.Done() {
		p.Errf("expected a value")
	}
	return p.Next()
}

// TryArg tries to parse the next tokens as an argument of the form
// `name=value`. This requires "=" to be among the separators. If successful,
// the tokens are consumed and the value is returned.
func (p *Parser) TryArg(name string) (string, bool) {
	if len(p.tokens) < 3 || p.tokens[0].tok != name || p.tokens[1].tok != "=" {
		return "", false
	}
	p.Expect(name, "=")
	return p.Next(), true
}

// ExpectDone verifies that all tokens were consumed.
func (p *Parser) ExpectDone() {
	if !p.Done() {
		p.Errf("unexpected trailing input %q", p.Remaining())
	}
}

// Catch runs fn and converts a panic raised by Errf into an error.
func Catch(fn func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			e, ok := r.(parseError)
			if !ok {
				panic(r)
			}
			err = e.error
		}
	}()
	fn()
	return nil
}

type parseError struct {
	error
}

// Errf panics with an error which includes the original string and the last
// token.
func (p *Parser) Errf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	panic(parseError{errors.Errorf("error parsing %q at token %q: %s", p.original, p.lastToken.tok, msg)})
}
