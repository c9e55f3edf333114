package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rshade/jable/internal/logging"
)

// setupLogging configures logging from the loaded config and CLI flags.
func (a *app) setupLogging(cmd *cobra.Command) {
	loggingCfg := a.cfg.Logging

	debug, _ := cmd.Flags().GetBool("debug")
	if debug {
		loggingCfg.Level = "debug"
		loggingCfg.Format = logging.FormatConsole
		loggingCfg.File = ""
	}
	if caller, _ := cmd.Flags().GetBool("log-caller"); caller {
		loggingCfg.Caller = true
	}

	if loggingCfg.File != "" {
		if err := a.cfg.EnsureLogDir(); err != nil {
			_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Warning: could not create log directory: %v\n", err)
		}
	}

	result := logging.NewLoggerWithPath(loggingCfg.ToLoggingConfig())
	a.logResult = &result
	a.logger = logging.ComponentLogger(result.Logger, "cli")

	if result.UsingFile {
		logging.PrintLogPathMessage(cmd.ErrOrStderr(), result.FilePath)
	} else if result.FallbackUsed {
		logging.PrintFallbackWarning(cmd.ErrOrStderr(), result.FallbackReason)
	}

	a.logger.Debug().Str("command", cmd.Name()).Msg("command started")
}

// cleanupLogging closes the log file handle, if any.
func (a *app) cleanupLogging() error {
	if a.logResult == nil {
		return nil
	}
	return a.logResult.Close()
}
