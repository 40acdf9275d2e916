package main

import (
	"context"
	"fmt"
	"io"
	"os"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"docstyle/config"
	"docstyle/convert"
	"docstyle/state"
)

func outputConfiguration(ctx context.Context, cmd *cli.Command) (err error) {

	env := state.EnvFromContext(ctx)
	log := env.Named("dumpconfig")
	if cmd.Args().Len() > 1 {
		log.Warn("Malformed command line, too many destinations", zap.Strings("ignoring", cmd.Args().Slice()[1:]))
	}

	var (
		data []byte
		what = "actual"
	)
	if cmd.Bool("default") {
		what = "default"
		data, err = config.Prepare()
	} else {
		data, err = config.Dump(env.Cfg)
	}
	if err != nil {
		return fmt.Errorf("unable to get configuration: %w", err)
	}

	fname := cmd.Args().Get(0)
	var out io.Writer = os.Stdout
	if len(fname) > 0 && fname != convert.StdStream {
		f, er := os.Create(fname)
		if er != nil {
			return fmt.Errorf("unable to create destination file '%s': %w", fname, er)
		}
		defer func() {
			if er := f.Close(); er != nil && err == nil {
				err = fmt.Errorf("unable to write configuration: %w", er)
			}
		}()
		out = f
		log.Info("Outputting configuration", zap.String("state", what), zap.String("file", fname))
	} else {
		log.Debug("Outputting configuration", zap.String("state", what), zap.String("file", "STDOUT"))
	}

	if _, err = out.Write(data); err != nil {
		return fmt.Errorf("unable to write configuration: %w", err)
	}
	return nil
}
