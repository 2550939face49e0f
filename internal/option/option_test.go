// This file is part of cmdparse.
//
// Copyright (C) 2024-2026  Argmill Developers
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package option

import (
	"fmt"
	"testing"

	"github.com/argmill/cmdparse/text"
)

func TestNew(t *testing.T) {
	opt := New("BufferSize", "1000", "b")
	if opt.LongName != "BufferSize" || opt.ShortName != "b" || opt.Default != "1000" {
		t.Errorf("wrong option: %#v", opt)
	}
	if opt.Key() != "buffersize" {
		t.Errorf("wrong key: %s", opt.Key())
	}
	if opt.Called {
		t.Errorf("new option marked as called")
	}

	// Blank short names fall back to the long name so the field is never empty.
	for _, short := range []string{"", "   "} {
		opt = New("OutputFile", "output.txt", short)
		if opt.ShortName != "OutputFile" {
			t.Errorf("short name not defaulted: %q", opt.ShortName)
		}
	}
}

func TestSetValue(t *testing.T) {
	opt := New("BufferSize", "1000", "b")
	opt.SetValue("23")
	if opt.Value != "23" {
		t.Errorf("got = %q, want %q", opt.Value, "23")
	}
	if !opt.Called {
		t.Errorf("option not marked as called")
	}
	if opt.Default != "1000" {
		t.Errorf("default changed: %q", opt.Default)
	}
}

func TestTypedAccessors(t *testing.T) {
	tests := []struct {
		name    string
		option  *Option
		text    string
		intVal  int
		intErr  error
		f64Val  float64
		f64Err  error
		boolVal bool
		boolErr error
	}{
		{"default applies", New("BufferSize", "1000", "b"),
			"1000", 1000, nil, 1000, nil,
			false, fmt.Errorf(text.ErrorConvertToBool, "BufferSize", "1000")},
		{"assigned int", New("BufferSize", "1000", "b").SetValue("23"),
			"23", 23, nil, 23, nil,
			false, fmt.Errorf(text.ErrorConvertToBool, "BufferSize", "23")},
		{"assigned float", New("optionB", "45.6", "b").SetValue("6.3"),
			"6.3", 0, fmt.Errorf(text.ErrorConvertToInt, "optionB", "6.3"), 6.3, nil,
			false, fmt.Errorf(text.ErrorConvertToBool, "optionB", "6.3")},
		{"text value", New("OutputFile", "output.txt", "o").SetValue("C://Temp//"),
			"C://Temp//",
			0, fmt.Errorf(text.ErrorConvertToInt, "OutputFile", "C://Temp//"),
			0, fmt.Errorf(text.ErrorConvertToFloat64, "OutputFile", "C://Temp//"),
			false, fmt.Errorf(text.ErrorConvertToBool, "OutputFile", "C://Temp//")},
		{"bool yes", New("Verbose", "false", "v").SetValue("YES"),
			"YES", 0, fmt.Errorf(text.ErrorConvertToInt, "Verbose", "YES"),
			0, fmt.Errorf(text.ErrorConvertToFloat64, "Verbose", "YES"),
			true, nil},
		{"bool numeric zero", New("Verbose", "false", "v").SetValue("0"),
			"0", 0, nil, 0, nil, false, nil},
		// Matched with no explicit value: assigned stays empty, default applies at read time.
		{"flag only", New("BufferSize", "1000", "b").SetValue(""),
			"1000", 1000, nil, 1000, nil,
			false, fmt.Errorf(text.ErrorConvertToBool, "BufferSize", "1000")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.option.Text(); got != tt.text {
				t.Errorf("Text() got = %q, want %q", got, tt.text)
			}
			i, err := tt.option.Int()
			checkValue(t, "Int", i, tt.intVal, err, tt.intErr)
			f, err := tt.option.Float64()
			checkValue(t, "Float64", f, tt.f64Val, err, tt.f64Err)
			b, err := tt.option.Bool()
			checkValue(t, "Bool", b, tt.boolVal, err, tt.boolErr)
		})
	}
}

func checkValue[T comparable](t *testing.T, accessor string, got, want T, err, wantErr error) {
	t.Helper()
	if err == nil && wantErr != nil {
		t.Errorf("%s error got = '%#v', want '%#v'", accessor, err, wantErr)
	}
	if err != nil && wantErr == nil {
		t.Errorf("%s error got = '%#v', want '%#v'", accessor, err, wantErr)
	}
	if err != nil && wantErr != nil && err.Error() != wantErr.Error() {
		t.Errorf("%s error got = '%#v', want '%#v'", accessor, err, wantErr)
	}
	if err == nil && got != want {
		t.Errorf("%s got = '%#v', want '%#v'", accessor, got, want)
	}
}

func TestSort(t *testing.T) {
	list := []*Option{
		New("OutputFile", "", ""),
		New("bufferSize", "", ""),
		New("Append", "", ""),
	}
	Sort(list)
	want := []string{"Append", "bufferSize", "OutputFile"}
	for i, opt := range list {
		if opt.LongName != want[i] {
			t.Errorf("wrong order at %d: got = %q, want %q", i, opt.LongName, want[i])
		}
	}
}
