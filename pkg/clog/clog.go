package clog

import (
	"io"
	"sync"

	"github.com/apex/log"
)

// ContextLogger routes log entries through a shared Handler. Each named
// context can carry its own level so that, for example, storage debugging
// can be turned on without flooding the console context.
type ContextLogger struct {
	handler        *Handler
	GlobalLogger   *log.Logger
	ContextLoggers sync.Map
}

const (
	GlobalLoggerCtx = "global"
	StorageCtx      = "storage"
	ConsoleCtx      = "console"
)

func NewContextLogger(w io.Writer) *ContextLogger {
	h := NewHandler(w)
	return &ContextLogger{
		handler: h,
		GlobalLogger: &log.Logger{
			Handler: h,
			Level:   log.InfoLevel,
		},
	}
}

// AddLoggingContext registers ctx with its own level. Re-adding an existing
// context only changes its level.
func (l *ContextLogger) AddLoggingContext(ctx string, level log.Level) {
	if logger := l.getContextLogger(ctx); logger != nil {
		logger.Level = level
		return
	}

	l.ContextLoggers.Store(ctx, &log.Logger{Handler: l.handler, Level: level})
}

func (l *ContextLogger) SetLevel(ctx string, level log.Level) {
	if ctx == GlobalLoggerCtx {
		l.GlobalLogger.Level = level
		return
	}

	l.AddLoggingContext(ctx, level)
}

func (l *ContextLogger) SetLevelFromString(ctx, s string) error {
	level, err := log.ParseLevel(s)
	if err != nil {
		return err
	}

	l.SetLevel(ctx, level)
	return nil
}

// SetAllLevelsFromString sets the global level and the level of every
// registered context.
func (l *ContextLogger) SetAllLevelsFromString(s string) error {
	level, err := log.ParseLevel(s)
	if err != nil {
		return err
	}

	l.GlobalLogger.Level = level
	l.ContextLoggers.Range(func(_, value any) bool {
		if logger, ok := value.(*log.Logger); ok {
			logger.Level = level
		}
		return true
	})

	return nil
}

func (l *ContextLogger) SetOutput(w io.Writer) {
	l.handler.SetOutput(w)
}

func (l *ContextLogger) UsingCtx(ctx string) *log.Entry {
	logger := l.getContextLogger(ctx)
	if logger == nil {
		return l.GlobalLogger.WithField("ctx", ctx)
	}

	return logger.WithField("ctx", ctx)
}

func (l *ContextLogger) Global() *log.Entry {
	return l.UsingCtx(GlobalLoggerCtx)
}

func (l *ContextLogger) getContextLogger(ctx string) *log.Logger {
	logger, ok := l.ContextLoggers.Load(ctx)
	if !ok {
		return nil
	}

	clogger, ok := logger.(*log.Logger)
	if !ok {
		return nil
	}

	return clogger
}
