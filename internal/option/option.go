// This file is part of cmdparse.
//
// Copyright (C) 2024-2026  Argmill Developers
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package option - internal option record and typed value conversion.
package option

import (
	"fmt"
	"io"
	"log"
	"sort"
	"strconv"

	"github.com/argmill/cmdparse/internal/strutil"
	"github.com/argmill/cmdparse/text"
)

// Logger instance set to `io.Discard` by default.
// Enable debug logging by setting: `Logger.SetOutput(os.Stderr)`.
var Logger = log.New(io.Discard, "DEBUG: ", log.Ldate|log.Ltime|log.Lshortfile)

// Option - one declared command-line option.
//
// LongName keeps the casing used at declaration time for display; matching is
// always done on the case-folded form (see Key).
type Option struct {
	LongName  string
	ShortName string // defaults to LongName when not provided
	Default   string // text default used when the option is never matched
	Value     string // text captured from argv; empty until matched
	Called    bool   // indicates the option was matched on the command line
}

// New - Returns a new option record.
// A blank short name falls back to the long name so the field is never empty.
func New(longName, defaultValue, shortName string) *Option {
	if strutil.IsBlank(shortName) {
		shortName = longName
	}
	return &Option{
		LongName:  longName,
		ShortName: shortName,
		Default:   defaultValue,
	}
}

// Key - Canonical registry key for the option.
func (opt *Option) Key() string {
	return strutil.Fold(opt.LongName)
}

// SetValue - Stores the value captured from argv and marks the option as called.
func (opt *Option) SetValue(value string) *Option {
	Logger.Printf("name: %s, value: %q\n", opt.LongName, value)
	opt.Value = value
	opt.Called = true
	return opt
}

// Text - Returns the option's value, falling back to the default when parsing
// assigned nothing (option never matched, or matched with no explicit value).
func (opt *Option) Text() string {
	if opt.Value == "" {
		return opt.Default
	}
	return opt.Value
}

// Int - Returns the option's value converted to int.
func (opt *Option) Int() (int, error) {
	s := opt.Text()
	i, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf(text.ErrorConvertToInt, opt.LongName, s)
	}
	return i, nil
}

// Float64 - Returns the option's value converted to float64.
func (opt *Option) Float64() (float64, error) {
	s := opt.Text()
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf(text.ErrorConvertToFloat64, opt.LongName, s)
	}
	return f, nil
}

// Bool - Returns the option's value converted to bool.
// Accepts true/yes/1 and false/no/0 in any casing.
func (opt *Option) Bool() (bool, error) {
	s := opt.Text()
	b, ok := strutil.ToBool(s)
	if !ok {
		return false, fmt.Errorf(text.ErrorConvertToBool, opt.LongName, s)
	}
	return b, nil
}

// Sort - Sorts the list alphabetically by case-insensitive long name.
func Sort(list []*Option) {
	sort.Slice(list, func(i, j int) bool {
		return list[i].Key() < list[j].Key()
	})
}
