package config

import "sync"

// MapConfig is a fixed set of keys, used by tests to avoid touching the
// environment.
type MapConfig struct {
	configValues sync.Map
}

func NewMapConfig(entries map[string]string) *MapConfig {
	c := &MapConfig{}

	for key, entry := range entries {
		c.configValues.Store(key, entry)
	}

	return c
}

func (c *MapConfig) Load() error {
	return nil
}

func (c *MapConfig) GetKey(key string) string {
	v, ok := c.configValues.Load(key)
	if !ok || v == nil {
		return ""
	}

	return v.(string)
}

func (c *MapConfig) GetKeyWithDefault(key, defaultValue string) string {
	return keyLookup(c.GetKey).withDefault(key, defaultValue)
}

func (c *MapConfig) GetIntKeyWithDefault(key string, defaultValue int) int {
	return keyLookup(c.GetKey).intWithDefault(key, defaultValue)
}

func (c *MapConfig) GetBoolKey(key string) bool {
	return keyLookup(c.GetKey).boolKey(key)
}
