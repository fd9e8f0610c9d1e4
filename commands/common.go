package commands

import (
	"fmt"
	"io"
	"os"
	"time"

	"code.cloudfoundry.org/lager"
	"github.com/hashicorp/go-multierror"

	"github.com/devscope/devscope/log"
)

// Output is where human-facing command output goes.
var Output io.Writer = os.Stdout

func newLogger(component string, debug bool) lager.Logger {
	return log.NewLogger(component, Output, debug)
}

func validationError(errs []error) error {
	if len(errs) == 0 {
		return nil
	}
	return multierror.Append(nil, errs...)
}

func sayf(format string, args ...interface{}) {
	fmt.Fprintf(Output, format, args...)
}

func say(args ...interface{}) {
	fmt.Fprintln(Output, args...)
}

func orNone(s string) string {
	if s == "" {
		return "None"
	}
	return s
}

func warnIfOldExecutable() {
	const twoWeeks = 14 * 24 * time.Hour

	exePath, err := os.Executable()
	if err != nil {
		return
	}

	info, err := os.Stat(exePath)
	if err != nil {
		return
	}

	if time.Since(info.ModTime()) > twoWeeks {
		fmt.Fprintln(os.Stderr, yellow("[WARN]"), "Executable is old! Please consider running `devscope update`.")
	}
}
