// This file is part of cmdparse.
//
// Copyright (C) 2024-2026  Argmill Developers
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package help - renders the option overview for the application.
package help

import (
	"fmt"
	"strings"

	"github.com/argmill/cmdparse/internal/option"
	"github.com/argmill/cmdparse/text"
)

// Padding - spaces before each option line.
var Padding = 4

// Render - Returns the help string for the given executable and options.
// Options are listed in alphabetical order by case-insensitive long name:
//
//	Sample.exe [options]
//	where options are:
//	    -b, --BufferSize
//	    -o, --OutputFile
//
//	(version 1.0)
func Render(executableName string, options []*option.Option) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%s %s\n", executableName, text.HelpUsageSuffix))
	sb.WriteString(text.HelpOptionsHeader + "\n")

	sorted := make([]*option.Option, len(options))
	copy(sorted, options)
	option.Sort(sorted)
	pad := strings.Repeat(" ", Padding)
	for _, opt := range sorted {
		sb.WriteString(fmt.Sprintf("%s-%s, --%s\n", pad, opt.ShortName, opt.LongName))
	}

	sb.WriteString("\n" + text.HelpVersionFooter)
	return sb.String()
}
