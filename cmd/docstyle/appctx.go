package main

import (
	"context"
	"fmt"
	"os"
	"runtime"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"docstyle/config"
	"docstyle/misc"
	"docstyle/state"
)

// initializeAppContext runs after command line has been parsed and before any
// command: it loads configuration, opens debug report and sets up logging.
func initializeAppContext(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	if cmd.NArg() == 0 {
		// help will be shown, nothing to prepare
		return ctx, nil
	}

	env := state.EnvFromContext(ctx)
	configFile := cmd.String("config")

	var err error
	if env.Cfg, err = config.LoadConfiguration(configFile); err != nil {
		return ctx, fmt.Errorf("unable to prepare configuration: %w", err)
	}
	if cmd.Bool("debug") {
		if env.Rpt, err = openReport(env.Cfg, configFile); err != nil {
			return ctx, err
		}
	}
	if env.Log, err = env.Cfg.Logging.Prepare(env.Rpt); err != nil {
		return ctx, fmt.Errorf("unable to prepare logs: %w", err)
	}
	env.RedirectStdLog()

	env.Log.Debug("Program started",
		zap.Strings("args", os.Args),
		zap.String("ver", misc.GetVersion()),
		zap.String("runtime", runtime.Version()),
		zap.String("hash", misc.GetGitHash()))
	if env.Rpt != nil {
		env.Log.Info("Creating debug report", zap.String("location", env.Rpt.Name()))
	}
	if len(configFile) == 0 {
		// STDOUT may carry resolved styles, keep it clean
		env.Log.Debug("Using defaults (no configuration file)")
	}
	return ctx, nil
}

// openReport creates debug report and stores effective configuration
// (defaults included) in it.
func openReport(cfg *config.Config, configFile string) (*config.Report, error) {
	rpt, err := cfg.Reporting.Prepare()
	if err != nil {
		return nil, fmt.Errorf("unable to prepare debug reporter: %w", err)
	}
	name := "default.yaml"
	if len(configFile) > 0 {
		name = configFile
	}
	if data, err := config.Dump(cfg); err == nil {
		rpt.StoreData(config.EntryName("config", name), data)
	}
	return rpt, nil
}

// destroyAppContext flushes log, finalizes debug report and cleans after
// crash capture. Logging is not available when it returns errors, they are
// printed to stderr on exit.
func destroyAppContext(ctx context.Context, cmd *cli.Command) (err error) {
	env := state.EnvFromContext(ctx)

	if env.Log != nil {
		env.Log.Debug("Program ended", zap.Duration("elapsed", env.Uptime()), zap.Strings("parsed args", cmd.Args().Slice()))
	}
	env.RestoreStdLog()

	// report includes the log, so it goes after log is synced
	if er := env.Rpt.Close(); er != nil {
		err = multierr.Append(err, fmt.Errorf("unable to close debug report: %w", er))
	}
	if env.Cfg != nil {
		err = multierr.Append(err, env.Cfg.Logging.ReleasePanicLog())
	}
	return err
}

// errWasHandled is set when the final error has been logged, so main does
// not print it again. urfave/cli exit codes are not used: commands return
// regular errors.
var errWasHandled bool

// exitErrHandler is called before destroyAppContext while log is still open.
func exitErrHandler(ctx context.Context, _ *cli.Command, err error) {
	if env := state.EnvFromContext(ctx); env.Log != nil {
		env.Log.Error("Program ended with error", zap.Error(err))
		errWasHandled = true
	}
}

// usageErrorHandler passes usage errors through, they are reported the same
// way as any other error.
func usageErrorHandler(_ context.Context, _ *cli.Command, err error, _ bool) error {
	return err
}

func subcommandNotFoundHandler(ctx context.Context, _ *cli.Command, name string) {
	state.EnvFromContext(ctx).Named("cli").Warn("Unknown command, nothing to do", zap.String("command", name))
}
