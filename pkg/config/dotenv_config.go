package config

import (
	"os"

	"github.com/subosito/gotenv"
)

// DotenvConfig reads keys from the process environment, optionally seeded
// from a dotenv file. Values already present in the environment win.
type DotenvConfig struct {
	DotenvPath string
}

func NewDotenvConfig(path string) *DotenvConfig {
	return &DotenvConfig{DotenvPath: path}
}

func (c *DotenvConfig) Load() error {
	if c.DotenvPath == "" {
		return nil
	}

	return gotenv.Load(c.DotenvPath)
}

func (c *DotenvConfig) GetKey(key string) string {
	return os.Getenv(key)
}

func (c *DotenvConfig) GetKeyWithDefault(key, defaultValue string) string {
	return keyLookup(c.GetKey).withDefault(key, defaultValue)
}

func (c *DotenvConfig) GetIntKeyWithDefault(key string, defaultValue int) int {
	return keyLookup(c.GetKey).intWithDefault(key, defaultValue)
}

func (c *DotenvConfig) GetBoolKey(key string) bool {
	return keyLookup(c.GetKey).boolKey(key)
}
