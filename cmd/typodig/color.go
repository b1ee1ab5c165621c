// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package main

import "github.com/muesli/termenv"

var (
	domainStyle   = termenv.Style{}.Bold()
	addressStyle  = termenv.Style{}.Foreground(termenv.ANSIGreen)
	progressStyle = termenv.Style{}.Foreground(termenv.ANSIYellow)
)
