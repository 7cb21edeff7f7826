package clog

import (
	"os"

	"github.com/materials-commons/hbnb/pkg/config"
	"github.com/pkg/errors"
)

const (
	KeyLogLevel        = "HBNB_LOG_LEVEL"
	KeyStorageLogLevel = "HBNB_STORAGE_LOG_LEVEL"
	KeyConsoleLogLevel = "HBNB_CONSOLE_LOG_LEVEL"
	KeyLogFile         = "HBNB_LOG_FILE"
)

// Configure applies the logging keys in c to the package logger.
// HBNB_LOG_LEVEL sets every context, then the per context keys override it.
// HBNB_LOG_FILE sends log output to a file, appending, instead of stderr.
func Configure(c config.Configer) error {
	if level := c.GetKey(KeyLogLevel); level != "" {
		if err := SetAllLevelsFromString(level); err != nil {
			return errors.Wrapf(err, "%s", KeyLogLevel)
		}
	}

	for key, ctx := range map[string]string{KeyStorageLogLevel: StorageCtx, KeyConsoleLogLevel: ConsoleCtx} {
		if level := c.GetKey(key); level != "" {
			if err := SetLevelFromString(ctx, level); err != nil {
				return errors.Wrapf(err, "%s", key)
			}
		}
	}

	if path := c.GetKey(KeyLogFile); path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return errors.Wrapf(err, "opening log file %s", path)
		}
		SetOutput(f)
	}

	return nil
}
