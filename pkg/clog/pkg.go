package clog

import (
	"io"
	"os"

	"github.com/apex/log"
)

var clogger = newDefaultLogger()

func newDefaultLogger() *ContextLogger {
	l := NewContextLogger(os.Stderr)
	l.AddLoggingContext(StorageCtx, log.InfoLevel)
	l.AddLoggingContext(ConsoleCtx, log.InfoLevel)
	return l
}

func SetLevelFromString(ctx, s string) error {
	return clogger.SetLevelFromString(ctx, s)
}

func SetAllLevelsFromString(s string) error {
	return clogger.SetAllLevelsFromString(s)
}

func SetOutput(w io.Writer) {
	clogger.SetOutput(w)
}

func Global() *log.Entry {
	return clogger.Global()
}

func Storage() *log.Entry {
	return clogger.UsingCtx(StorageCtx)
}

func Console() *log.Entry {
	return clogger.UsingCtx(ConsoleCtx)
}
