package state

import (
	"context"
	"log"
	"testing"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestEnvFromContext(t *testing.T) {
	t.Run("valid context", func(t *testing.T) {
		env := EnvFromContext(ContextWithEnv(context.Background()))
		if env == nil {
			t.Fatal("Expected non-nil environment")
		}
		if env.start.IsZero() {
			t.Error("Environment start time not set")
		}
		if env.Uptime() < 0 || env.Uptime() > time.Minute {
			t.Errorf("Uptime() = %v", env.Uptime())
		}
	})

	t.Run("panic on missing env", func(t *testing.T) {
		defer func() {
			if r := recover(); r == nil {
				t.Error("Expected panic when env not in context")
			}
		}()
		EnvFromContext(context.Background())
	})
}

func TestLocalEnv_Named(t *testing.T) {
	env := newLocalEnv()
	// no logger yet
	env.Named("resolve").Info("dropped")

	core, logs := observer.New(zapcore.DebugLevel)
	env.Log = zap.New(core)
	env.Named("resolve").Info("kept")

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(entries))
	}
	if entries[0].LoggerName != "resolve" || entries[0].Message != "kept" {
		t.Errorf("unexpected entry %+v", entries[0].Entry)
	}
}

func TestLocalEnv_RedirectStdLog(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	env := &LocalEnv{Log: zap.New(core)}

	for i := range 2 {
		env.RedirectStdLog()
		if env.restoreStdLog == nil {
			t.Fatalf("Iteration %d: restoreStdLog not set", i)
		}
		log.Print("from standard logger")
		env.RestoreStdLog()
		if env.restoreStdLog != nil {
			t.Errorf("Iteration %d: restoreStdLog not cleared", i)
		}
	}
	if got := logs.FilterMessage("from standard logger").Len(); got != 2 {
		t.Errorf("redirected messages = %d, want 2", got)
	}
}

func TestLocalEnv_NilLogger(t *testing.T) {
	env := &LocalEnv{}
	env.RedirectStdLog()
	if env.restoreStdLog != nil {
		t.Error("Expected restoreStdLog to remain nil")
	}
	env.RestoreStdLog()
}

func TestLocalEnv_SetCodePage(t *testing.T) {
	env := newLocalEnv()

	if err := env.SetCodePage("windows-1251"); err != nil {
		t.Fatalf("SetCodePage() error = %v", err)
	}
	if env.CodePage == nil {
		t.Fatal("Expected CodePage to be set")
	}
	if got := env.CodePageName(); got != "windows-1251" {
		t.Errorf("CodePageName() = %q, want windows-1251", got)
	}

	env.CodePage = nil
	if err := env.SetCodePage("cp1251"); err != nil {
		t.Fatalf("SetCodePage(cp1251) error = %v", err)
	}
	if got := env.CodePageName(); got != "windows-1251" {
		t.Errorf("CodePageName() = %q, want windows-1251 for WHATWG label", got)
	}

	if err := env.SetCodePage("no-such-charset"); err == nil {
		t.Error("Expected error for unknown character set")
	}
	if env.CodePage == nil {
		t.Error("Failed SetCodePage() must keep previous value")
	}

	if err := env.SetCodePage(""); err != nil {
		t.Fatalf("SetCodePage(\"\") error = %v", err)
	}
	if env.CodePage != nil || env.CodePageName() != "" {
		t.Error("Expected CodePage to be reset")
	}
}
