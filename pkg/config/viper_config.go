package config

import (
	"github.com/spf13/viper"
	"github.com/subosito/gotenv"
)

// ViperConfig resolves keys through viper, so command line flags bound with
// BindPFlag take precedence over the environment, which in turn takes
// precedence over the dotenv file loaded by Load.
type ViperConfig struct {
	V          *viper.Viper
	DotenvPath string
}

func NewViperConfig(v *viper.Viper, dotenvPath string) *ViperConfig {
	return &ViperConfig{V: v, DotenvPath: dotenvPath}
}

func (c *ViperConfig) Load() error {
	if c.DotenvPath != "" {
		if err := gotenv.Load(c.DotenvPath); err != nil {
			return err
		}
	}

	c.V.AutomaticEnv()
	return nil
}

func (c *ViperConfig) GetKey(key string) string {
	return c.V.GetString(key)
}

func (c *ViperConfig) GetKeyWithDefault(key, defaultValue string) string {
	return keyLookup(c.GetKey).withDefault(key, defaultValue)
}

func (c *ViperConfig) GetIntKeyWithDefault(key string, defaultValue int) int {
	return keyLookup(c.GetKey).intWithDefault(key, defaultValue)
}

func (c *ViperConfig) GetBoolKey(key string) bool {
	return keyLookup(c.GetKey).boolKey(key)
}
