package commands

import "github.com/mgutz/ansi"

var (
	red    = ansi.ColorFunc("red+b")
	yellow = ansi.ColorFunc("yellow+b")
	green  = ansi.ColorFunc("green+b")
	cyan   = ansi.ColorFunc("cyan")
)
