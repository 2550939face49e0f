// This file is part of cmdparse.
//
// Copyright (C) 2024-2026  Argmill Developers
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

/*
Package cmdparse - basic command-line option parser for embedding in Go
applications that don't need a full framework.

Callers declare the options the application supports, each with a long name,
a default value and an optional short alias, then hand over the raw argument
list. The parser matches option tokens against the declarations and exposes
typed accessors and a generated help string.

# Usage

	p := cmdparse.New()

	// Declare supported options
	p.AddOption("BufferSize", "1000", "b")
	p.AddOption("OutputFile", "output.txt", "o")

	// Initialize with the program arguments
	if !p.Init(os.Args) {
		for _, e := range p.Errors() {
			fmt.Fprintln(os.Stderr, e)
		}
		os.Exit(1)
	}

	size, err := p.Int("BufferSize")

Recognized syntax: `--name=value`, `--name:value`, `--name value` and
`--name`, plus the same forms through the short alias (`-b=value`, ...).
Long names match case-insensitively; short aliases match exactly.
A value split across adjacent argv elements by shell quoting is reassembled
as long as the continuation does not itself start with '-'.

Structural problems (duplicate declaration, unknown option, empty argument
list) are reported through boolean returns and an accumulated error list;
value conversion problems are returned from the typed accessor call itself.
An unknown option aborts the parse, but options matched by earlier tokens of
the same call keep their values.
*/
package cmdparse

import (
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/google/shlex"

	"github.com/argmill/cmdparse/internal/help"
	"github.com/argmill/cmdparse/internal/option"
	"github.com/argmill/cmdparse/internal/registry"
	"github.com/argmill/cmdparse/text"
)

// Debug Logger instance set to `io.Discard` by default.
// Enable debug logging by setting: `Debug.SetOutput(os.Stderr)`
var Debug = log.New(io.Discard, "DEBUG: ", log.Ldate|log.Ltime|log.Lshortfile)

// Option - caller-facing view of a declared option.
// Lookups return copies; mutating one has no effect on the parser.
type Option struct {
	LongName  string
	ShortName string
	Default   string
	Value     string // text captured from argv, empty until matched
	Called    bool   // the option was matched on the command line
}

// Parser - main struct holding the declared options and the parse results.
//
// Not safe for concurrent use; serialize externally when shared.
type Parser struct {
	exeName   string
	arguments []string
	registry  *registry.Registry
	errors    []string
}

// New - Returns an empty parser.
// Options can be declared up front:
//
//	p := cmdparse.New(
//		cmdparse.Option{LongName: "optionA", Default: "10", ShortName: "a"},
//		cmdparse.Option{LongName: "backColour", Default: "#FFFFFF", ShortName: "b"},
//	)
func New(specs ...Option) *Parser {
	p := &Parser{registry: registry.New()}
	for _, s := range specs {
		p.AddOption(s.LongName, s.Default, s.ShortName)
	}
	return p
}

// AddOption - Declares a command-line option the application supports.
// Declare all options before calling Init.
//
// Returns false if the long name is already taken under case-insensitive
// comparison; the conflict is recorded in the error list and the previous
// declaration is kept. Pass an empty shortName for an option that is only
// addressable by its long name.
func (p *Parser) AddOption(longName, defaultValue, shortName string) bool {
	err := p.registry.Add(option.New(longName, defaultValue, shortName))
	if err != nil {
		p.logError(err.Error())
		return false
	}
	return true
}

// Init - Parses the given argument list.
// args[0] is taken as the executable name, the rest as the raw arguments.
//
// Returns false when the list is empty or when a token names an undeclared
// option; details land in the error list. An empty argument list is an error
// in its own right, distinct from parsing zero options.
func (p *Parser) Init(args []string) bool {
	Debug.Printf("args: %v", args)
	if len(args) <= 0 {
		p.logError(text.ErrorNoArguments)
		return false
	}

	p.exeName = args[0]
	p.arguments = make([]string, 0, len(args)-1)
	for _, arg := range args[1:] {
		p.arguments = append(p.arguments, strings.TrimSpace(arg))
	}

	return p.parse()
}

// InitString - Splits a full command line following shell quoting rules and
// parses the result. The first word is the executable name, as with Init.
func (p *Parser) InitString(line string) bool {
	args, err := shlex.Split(line)
	if err != nil {
		p.logError(err.Error())
		return false
	}
	return p.Init(args)
}

// OptionCount - Number of declared options.
func (p *Parser) OptionCount() int {
	return p.registry.Count()
}

// HasOption - Tells if an option with the given long name has been declared.
// Matching is case-insensitive and considers long names only.
func (p *Parser) HasOption(name string) bool {
	return p.registry.Contains(name)
}

// Option - Returns a copy of the option matching the given long name, or a
// zero Option when it isn't declared. Check HasOption to tell the two apart.
func (p *Parser) Option(name string) Option {
	opt, ok := p.registry.Get(name)
	if !ok {
		return Option{}
	}
	return Option{
		LongName:  opt.LongName,
		ShortName: opt.ShortName,
		Default:   opt.Default,
		Value:     opt.Value,
		Called:    opt.Called,
	}
}

// Called - Tells if the option was matched on the command line.
func (p *Parser) Called(name string) bool {
	opt, ok := p.registry.Get(name)
	return ok && opt.Called
}

// Text - Returns the option's value as text.
// Falls back to the declared default when parsing assigned nothing; returns
// an empty string for undeclared names.
func (p *Parser) Text(name string) string {
	opt, ok := p.registry.Get(name)
	if !ok {
		return ""
	}
	return opt.Text()
}

// Int - Returns the option's value converted to int.
// The error is local to this call and is not added to the error list.
func (p *Parser) Int(name string) (int, error) {
	opt, ok := p.registry.Get(name)
	if !ok {
		return 0, fmt.Errorf(text.ErrorOptionNotFound, name)
	}
	return opt.Int()
}

// Float64 - Returns the option's value converted to float64.
// The error is local to this call and is not added to the error list.
func (p *Parser) Float64(name string) (float64, error) {
	opt, ok := p.registry.Get(name)
	if !ok {
		return 0, fmt.Errorf(text.ErrorOptionNotFound, name)
	}
	return opt.Float64()
}

// Bool - Returns the option's value converted to bool.
// Accepts true/yes/1 and false/no/0 in any casing. The error is local to
// this call and is not added to the error list.
func (p *Parser) Bool(name string) (bool, error) {
	opt, ok := p.registry.Get(name)
	if !ok {
		return false, fmt.Errorf(text.ErrorOptionNotFound, name)
	}
	return opt.Bool()
}

// Arguments - Returns the raw arguments given to the application, surrounding
// whitespace trimmed. The executable name is not included.
func (p *Parser) Arguments() []string {
	out := make([]string, len(p.arguments))
	copy(out, p.arguments)
	return out
}

// ExecutableName - Name the application was invoked with (args[0] of the last
// Init call).
func (p *Parser) ExecutableName() string {
	return p.exeName
}

// Help - Returns a short overview of the declared options, listed in
// alphabetical order by long name regardless of declaration order.
func (p *Parser) Help() string {
	return help.Render(p.exeName, p.registry.Sorted())
}

// HasErrors - Tells if any errors have accumulated.
func (p *Parser) HasErrors() bool {
	return len(p.errors) > 0
}

// Errors - Returns the accumulated error list.
// Clear the list with ClearErrors after reading it.
func (p *Parser) Errors() []string {
	out := make([]string, len(p.errors))
	copy(out, p.errors)
	return out
}

// ClearErrors - Clears the accumulated error list.
func (p *Parser) ClearErrors() {
	p.errors = nil
}

func (p *Parser) logError(msg string) {
	Debug.Printf("error: %s", msg)
	p.errors = append(p.errors, msg)
}
