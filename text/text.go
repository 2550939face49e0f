// This file is part of cmdparse.
//
// Copyright (C) 2024-2026  Argmill Developers
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package text - user facing strings.
// Exported as variables so embedding applications can rebrand or translate them.
package text

// ErrorNoArguments - Error raised when Init receives an empty argument list.
var ErrorNoArguments = "No arguments given to application"

// ErrorOptionExists - Error raised when declaring an option whose long name is taken.
// It has a string placeholder '%s' for the long name of the option.
var ErrorOptionExists = "Option already exists: %s"

// ErrorOptionNotFound - Error raised when a parsed token names an undeclared option.
// It has a string placeholder '%s' for the name as given on the command line.
var ErrorOptionNotFound = "Option not found: %s"

// ErrorConvertToInt - Error raised when the value of an option can't be parsed as an int.
// It has two string placeholders '%s'. The first one for the name of the
// option and the second one for the value that failed to parse.
var ErrorConvertToInt = "Can not convert value of option '%s' to int: '%s'"

// ErrorConvertToFloat64 - Error raised when the value of an option can't be parsed as a float64.
// It has two string placeholders '%s'. The first one for the name of the
// option and the second one for the value that failed to parse.
var ErrorConvertToFloat64 = "Can not convert value of option '%s' to float64: '%s'"

// ErrorConvertToBool - Error raised when the value of an option can't be read as a boolean.
// It has two string placeholders '%s'. The first one for the name of the
// option and the second one for the value that failed to parse.
var ErrorConvertToBool = "Can not convert value of option '%s' to bool: '%s'"

// HelpUsageSuffix - Printed after the executable name in the help string.
var HelpUsageSuffix = "[options]"

// HelpOptionsHeader - Header line for the option list in the help string.
var HelpOptionsHeader = "where options are:"

// HelpVersionFooter - Trailing line of the help string.
var HelpVersionFooter = "(version 1.0)"
