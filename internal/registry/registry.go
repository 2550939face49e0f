// This file is part of cmdparse.
//
// Copyright (C) 2024-2026  Argmill Developers
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package registry - the set of declared options, keyed by case-insensitive long name.
package registry

import (
	"fmt"

	orderedmap "github.com/wk8/go-ordered-map"

	"github.com/argmill/cmdparse/internal/option"
	"github.com/argmill/cmdparse/internal/strutil"
	"github.com/argmill/cmdparse/text"
)

// Registry - unique mapping from canonical (case-folded) long name to option.
//
// The map preserves insertion order for deterministic iteration; alphabetical
// order for help output comes from Sorted.
type Registry struct {
	options *orderedmap.OrderedMap
}

// New - Returns an empty registry.
func New() *Registry {
	return &Registry{options: orderedmap.New()}
}

// Add - Inserts a declared option.
// Declaring a long name that is already taken (under case-insensitive
// comparison) fails and leaves the existing entry untouched.
func (r *Registry) Add(opt *option.Option) error {
	key := opt.Key()
	if _, ok := r.options.Get(key); ok {
		return fmt.Errorf(text.ErrorOptionExists, opt.LongName)
	}
	r.options.Set(key, opt)
	return nil
}

// Count - Number of declared options.
func (r *Registry) Count() int {
	return r.options.Len()
}

// Contains - Tells if an option with the given long name is declared.
func (r *Registry) Contains(name string) bool {
	_, ok := r.options.Get(strutil.Fold(name))
	return ok
}

// Get - Returns the option matching the given long name.
func (r *Registry) Get(name string) (*option.Option, bool) {
	v, ok := r.options.Get(strutil.Fold(name))
	if !ok {
		return nil, false
	}
	return v.(*option.Option), true
}

// ResolveShort - Returns the long name of the option whose short name matches
// the given token. Short names match exactly, casing included.
// Linear scan, option counts are expected to stay in the tens.
func (r *Registry) ResolveShort(short string) (string, bool) {
	for pair := r.options.Oldest(); pair != nil; pair = pair.Next() {
		opt := pair.Value.(*option.Option)
		if opt.ShortName == short {
			return opt.LongName, true
		}
	}
	return "", false
}

// SetValue - Updates the value of the option with the given long name.
// The record is mutated in place; the key never changes so no reinsertion is
// needed to keep iteration consistent.
func (r *Registry) SetValue(name, value string) bool {
	opt, ok := r.Get(name)
	if !ok {
		return false
	}
	opt.SetValue(value)
	return true
}

// Sorted - Returns the declared options in alphabetical order by
// case-insensitive long name.
func (r *Registry) Sorted() []*option.Option {
	list := make([]*option.Option, 0, r.options.Len())
	for pair := r.options.Oldest(); pair != nil; pair = pair.Next() {
		list = append(list, pair.Value.(*option.Option))
	}
	option.Sort(list)
	return list
}
