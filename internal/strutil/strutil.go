// This file is part of cmdparse.
//
// Copyright (C) 2024-2026  Argmill Developers
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package strutil - stateless string helpers shared by the parser packages.
package strutil

import "strings"

// IsBlank - Tells if the given string is empty or contains only whitespace.
func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// Fold - Returns the canonical (case-folded) form of an option name.
func Fold(s string) string {
	return strings.ToLower(s)
}

// Unquote - Strips one layer of surrounding double quotes.
// A single leading quote and a single trailing quote are each stripped
// independently so unbalanced input like `"C://Temp` still loses its quote.
func Unquote(s string) string {
	if strings.HasPrefix(s, `"`) {
		s = s[1:]
	}
	if strings.HasSuffix(s, `"`) {
		s = s[:len(s)-1]
	}
	return s
}

// ToBool - Converts boolean-like text to its value.
// Accepts true/yes/1 and false/no/0 in any casing and with surrounding
// whitespace. The second return value reports whether a conversion happened.
func ToBool(s string) (bool, bool) {
	switch Fold(strings.TrimSpace(s)) {
	case "true", "yes", "1":
		return true, true
	case "false", "no", "0":
		return false, true
	}
	return false, false
}
