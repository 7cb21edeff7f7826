package config

import "github.com/spf13/cast"

// Configer is the read side of a configuration source. Keys are the
// environment style names (HBNB_TYPE_STORAGE, HBNB_MYSQL_HOST, ...).
type Configer interface {
	Load() error
	GetKey(key string) string
	GetKeyWithDefault(key, defaultValue string) string
	GetIntKeyWithDefault(key string, defaultValue int) int
	GetBoolKey(key string) bool
}

// keyLookup holds the conversions shared by every Configer. Implementations
// only supply how a raw string value is found.
type keyLookup func(key string) string

func (get keyLookup) withDefault(key, defaultValue string) string {
	if val := get(key); val != "" {
		return val
	}

	return defaultValue
}

func (get keyLookup) intWithDefault(key string, defaultValue int) int {
	val := get(key)
	if val == "" {
		return defaultValue
	}

	intVal, err := cast.ToIntE(val)
	if err != nil {
		return defaultValue
	}

	return intVal
}

func (get keyLookup) boolKey(key string) bool {
	return cast.ToBool(get(key))
}
