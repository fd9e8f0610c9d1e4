package main

import (
	"fmt"
	"os"

	"github.com/jessevdk/go-flags"
	"github.com/mgutz/ansi"

	"github.com/devscope/devscope/commands"
)

func main() {
	parser := flags.NewParser(&commands.Devscope, flags.HelpFlag|flags.PassDoubleDash)
	parser.Name = "devscope"

	_, err := parser.Parse()
	if err == nil {
		return
	}

	if flagsErr, ok := err.(*flags.Error); ok {
		if flagsErr.Type == flags.ErrHelp {
			fmt.Fprintln(os.Stdout, flagsErr.Message)
			os.Exit(0)
		}

		fmt.Fprintln(os.Stderr, flagsErr.Message)
		os.Exit(1)
	}

	fmt.Fprintln(os.Stderr, ansi.Color("[ERROR]", "red+b"), err)
	os.Exit(1)
}
