// This file is part of cmdparse.
//
// Copyright (C) 2024-2026  Argmill Developers
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package strutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsBlank(t *testing.T) {
	assert.True(t, IsBlank(""))
	assert.True(t, IsBlank("   "))
	assert.True(t, IsBlank("\t\n"))
	assert.False(t, IsBlank(" x "))
}

func TestFold(t *testing.T) {
	assert.Equal(t, "buffersize", Fold("BufferSize"))
	assert.Equal(t, "buffersize", Fold("BUFFERSIZE"))
	assert.Equal(t, "buffersize", Fold("buffersize"))
}

func TestUnquote(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{`"C://Temp//"`, "C://Temp//"},
		{"C://Temp//", "C://Temp//"},
		{`"unterminated`, "unterminated"},
		{`trailing"`, "trailing"},
		{`""`, ""},
		{`"`, ""},
		{"", ""},
		// Only one layer comes off.
		{`""nested""`, `"nested"`},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Unquote(tt.in), tt.in)
	}
}

func TestToBool(t *testing.T) {
	for _, s := range []string{"true", "TRUE", "yes", "Yes", "1", " true "} {
		v, ok := ToBool(s)
		assert.True(t, ok, s)
		assert.True(t, v, s)
	}
	for _, s := range []string{"false", "FALSE", "no", "No", "0", " no "} {
		v, ok := ToBool(s)
		assert.True(t, ok, s)
		assert.False(t, v, s)
	}
	for _, s := range []string{"", "2", "maybe", "truthy"} {
		_, ok := ToBool(s)
		assert.False(t, ok, s)
	}
}
