// This file is part of cmdparse.
//
// Copyright (C) 2024-2026  Argmill Developers
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package cmdparse

import (
	"fmt"
	"strings"

	"github.com/argmill/cmdparse/internal/sliceiterator"
	"github.com/argmill/cmdparse/internal/strutil"
	"github.com/argmill/cmdparse/text"
)

// isOptionPrefix - Tells if the token opens an option segment.
func isOptionPrefix(s string) bool {
	return strings.HasPrefix(s, "-")
}

// parse - Walks the raw arguments segment by segment.
//
// A segment runs from one option-prefix token up to (not including) the next
// one, e.g.:
//
//	{"--firstOption", "=1234", "-s", "--secondOp"}
//	 ^----------------------^
//	         segment
//
// The tokens of a segment are concatenated with no separator before
// tokenizing, so a logical option split across argv elements by shell quoting
// (`--OutputFile=` followed by `"C://Temp//"`) is reassembled. Tokens before
// the first option-prefix token take no part in option matching; they remain
// available verbatim through Arguments.
func (p *Parser) parse() bool {
	iter := sliceiterator.New(p.arguments)
	for iter.Next() {
		if !isOptionPrefix(iter.Value()) {
			continue
		}
		segment := iter.Value()
		for {
			next, ok := iter.PeekNextValue()
			if !ok || isOptionPrefix(next) {
				break
			}
			iter.Next()
			segment += next
		}
		if !p.applySegment(segment) {
			return false
		}
	}
	return true
}

// applySegment - Tokenizes one concatenated segment and updates the registry.
//
// `--` introduces a long name, a single `-` a short alias. The name ends at
// the first of space, ':' or '='; everything after is the value. A segment
// with no delimiter leaves the assigned value empty and the default applies
// at read time. Values lose surrounding whitespace and one layer of double
// quotes.
func (p *Parser) applySegment(segment string) bool {
	Debug.Printf("segment: %q", segment)
	longForm := strings.HasPrefix(segment, "--")
	stripped := strings.TrimLeft(segment, "-")

	name := stripped
	value := ""
	if i := strings.IndexAny(stripped, " :="); i >= 0 {
		name = stripped[:i]
		value = stripped[i+1:]
	}
	name = strings.TrimSpace(name)
	value = strutil.Unquote(strings.TrimSpace(value))

	if !longForm {
		long, ok := p.registry.ResolveShort(name)
		if !ok {
			p.logError(fmt.Sprintf(text.ErrorOptionNotFound, name))
			return false
		}
		name = long
	}

	if !p.registry.SetValue(name, value) {
		p.logError(fmt.Sprintf(text.ErrorOptionNotFound, name))
		return false
	}
	return true
}
