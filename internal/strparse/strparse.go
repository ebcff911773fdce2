// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

// Package strparse parses command lines and scripts for the visualizer:
// an operation word followed by arguments, typically keys separated by
// whitespace or commas.
package strparse

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/cockroachdb/errors"
)

// Parser splits an input line into tokens. Tokens are separated by
// whitespace; commas are treated as whitespace so that "8, 3, 10" and
// "8 3 10" parse identically (the input style the visualizer accepts).
//
// Parser methods panic with an error instead of returning one; callers
// recover via Catch.
type Parser struct {
	original string
	tokens   []string
}

// MakeParser tokenizes the input line.
func MakeParser(input string) Parser {
	fields := strings.FieldsFunc(input, func(r rune) bool {
		return unicode.IsSpace(r) || r == ','
	})
	return Parser{original: input, tokens: fields}
}

// Done returns true if there are no more tokens.
func (p *Parser) Done() bool {
	return len(p.tokens) == 0
}

// Peek returns the next token without consuming it, or "" if there are no
// more tokens.
func (p *Parser) Peek() string {
	if p.Done() {
		return ""
	}
	return p.tokens[0]
}

// Next returns the next token, or "" if there are no more tokens.
func (p *Parser) Next() string {
	res := p.Peek()
	if res != "" {
		p.tokens = p.tokens[1:]
	}
	return res
}

// Remaining returns all remaining tokens, separated by spaces.
func (p *Parser) Remaining() string {
	res := strings.Join(p.tokens, " ")
	p.tokens = nil
	return res
}

// Key parses the next token as an int64 key.
func (p *Parser) Key() int64 {
	tok := p.Next()
	if tok == "" {
		p.Errf("expected a key")
	}
	v, err := strconv.ParseInt(tok, 10, 64)
	if err != nil {
		p.Errf("invalid key %q", tok)
	}
	return v
}

// Keys parses all remaining tokens as int64 keys. At least one key is
// required.
func (p *Parser) Keys() []int64 {
	if p.Done() {
		p.Errf("expected at least one key")
	}
	keys := make([]int64, 0, len(p.tokens))
	for !p.Done() {
		keys = append(keys, p.Key())
	}
	return keys
}

// Int parses the next token as an int.
func (p *Parser) Int() int {
	tok := p.Next()
	if tok == "" {
		p.Errf("expected an integer")
	}
	v, err := strconv.Atoi(tok)
	if err != nil {
		p.Errf("invalid integer %q", tok)
	}
	return v
}

// Float parses the next token as a float64.
func (p *Parser) Float() float64 {
	tok := p.Next()
	if tok == "" {
		p.Errf("expected a number")
	}
	v, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		p.Errf("invalid number %q", tok)
	}
	return v
}

// Errf panics with an error that includes the original input line. Catch
// converts the panic back into an error.
func (p *Parser) Errf(format string, args ...any) {
	panic(parseErr{errors.Wrapf(errors.Newf(format, args...), "parsing %q", p.original)})
}

type parseErr struct {
	err error
}

// Catch recovers a panic thrown by Parser methods and converts it to an
// error. Any other panic is propagated. Use with defer:
//
//	defer strparse.Catch(&err)
func Catch(err *error) {
	r := recover()
	if r == nil {
		return
	}
	pe, ok := r.(parseErr)
	if !ok {
		panic(r)
	}
	*err = pe.err
}
