package apply

import (
	"fmt"
	"io"

	"code.cloudfoundry.org/lager"
	update "github.com/inconshreveable/go-update"
	"github.com/kardianos/osext"
)

// Apply replaces the running executable with the binary read from r.
func Apply(logger lager.Logger, r io.Reader) error {
	target, err := osext.Executable()
	if err != nil {
		return err
	}

	return ApplyTo(logger, r, target)
}

// ApplyTo replaces the file at target, restoring it when the swap fails
// half way.
func ApplyTo(logger lager.Logger, r io.Reader, target string) error {
	logger = logger.Session("apply-update", lager.Data{"target": target})
	logger.Info("starting")

	opts := update.Options{TargetPath: target}
	if err := opts.CheckPermissions(); err != nil {
		logger.Error("failed", err)
		return fmt.Errorf("cannot replace %s: %w", target, err)
	}

	if err := update.Apply(r, opts); err != nil {
		if rerr := update.RollbackError(err); rerr != nil {
			logger.Error("failed-to-roll-back", rerr)
			return fmt.Errorf("update failed and could not be rolled back: %w", rerr)
		}

		logger.Error("failed", err)
		return err
	}

	logger.Info("done")
	return nil
}
