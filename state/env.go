// Package state defines program state shared by commands through context.
package state

import (
	"context"
	"time"

	"go.uber.org/zap"
	"golang.org/x/text/encoding"

	"docstyle/config"
)

type envKey struct{}

// LocalEnv is created once before any command runs and destroyed after the
// last one.
type LocalEnv struct {
	Cfg *config.Config
	Rpt *config.Report
	Log *zap.Logger

	// resolve command settings which do not belong to configuration
	Overwrite bool
	// CodePage decodes inputs without unicode BOM, nil for UTF-8
	CodePage encoding.Encoding

	start         time.Time
	restoreStdLog func()
}

// EnvFromContext panics when ctx was not created by ContextWithEnv.
func EnvFromContext(ctx context.Context) *LocalEnv {
	env, ok := ctx.Value(envKey{}).(*LocalEnv)
	if !ok {
		panic("local environment is missing from context")
	}
	return env
}

func ContextWithEnv(ctx context.Context) context.Context {
	return context.WithValue(ctx, envKey{}, newLocalEnv())
}

// Named returns component logger, it is safe to call before logging is
// set up.
func (e *LocalEnv) Named(name string) *zap.Logger {
	if e.Log == nil {
		return zap.NewNop()
	}
	return e.Log.Named(name)
}

func (e *LocalEnv) Uptime() time.Duration {
	return time.Since(e.start)
}

// RedirectStdLog sends standard library log output to the program log until
// RestoreStdLog is called.
func (e *LocalEnv) RedirectStdLog() {
	if e.Log != nil {
		e.restoreStdLog = zap.RedirectStdLog(e.Log)
	}
}

// RestoreStdLog flushes the program log and undoes RedirectStdLog.
func (e *LocalEnv) RestoreStdLog() {
	if e.Log != nil {
		_ = e.Log.Sync()
	}
	if e.restoreStdLog != nil {
		e.restoreStdLog()
		e.restoreStdLog = nil
	}
}
