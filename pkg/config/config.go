// Package config handles application configuration.
// Values are resolved from environment variables (optionally loaded from a
// .env file) with per-area defaults registered via Add().
package config

import (
	"os"

	"github.com/spf13/cast"
	viperlib "github.com/spf13/viper"
)

// viper instance shared by the whole application
var viper *viperlib.Viper

// ConfigFunc builds the default value map for one configuration area
type ConfigFunc func() map[string]interface{}

// ConfigFuncs holds every registered area, loaded by InitConfig
var ConfigFuncs map[string]ConfigFunc

func init() {
	viper = viperlib.New()

	// Configuration is environment driven
	viper.SetConfigType("env")
	viper.AddConfigPath(".")
	viper.SetEnvPrefix("appenv")
	viper.AutomaticEnv()

	ConfigFuncs = make(map[string]ConfigFunc)
}

// InitConfig loads the .env file and every registered configuration area.
// env selects an environment specific file, e.g. --env=testing loads
// .env.testing on top of .env.
func InitConfig(env string) {
	loadEnv(env)
	loadConfig()
}

func loadConfig() {
	for name, fn := range ConfigFuncs {
		viper.Set(name, fn())
	}
}

func loadEnv(envSuffix string) {
	envPath := ".env"
	if len(envSuffix) > 0 {
		filepath := ".env." + envSuffix
		if _, err := os.Stat(filepath); err == nil {
			envPath = filepath
		}
	}

	// A missing .env is fine, values then come from the real environment
	viper.SetConfigName(envPath)
	if err := viper.ReadInConfig(); err == nil {
		viper.WatchConfig()
	}
}

// Env reads an environment variable with an optional default value
func Env(envName string, defaultValue ...interface{}) interface{} {
	if len(defaultValue) > 0 {
		return internalGet(envName, defaultValue[0])
	}
	return internalGet(envName)
}

// Add registers a configuration area
func Add(name string, configFn ConfigFunc) {
	ConfigFuncs[name] = configFn
}

func internalGet(path string, defaultValue ...interface{}) interface{} {
	if !viper.IsSet(path) || isEmpty(viper.Get(path)) {
		if len(defaultValue) > 0 {
			return defaultValue[0]
		}
		return nil
	}
	return viper.Get(path)
}

func isEmpty(value interface{}) bool {
	str, ok := value.(string)
	return ok && str == ""
}

// Get reads a configuration value, supporting dot notation like
// "app.name". The second parameter is an optional default.
func Get(path string, defaultValue ...interface{}) string {
	return GetString(path, defaultValue...)
}

// GetString reads a string value
func GetString(path string, defaultValue ...interface{}) string {
	return cast.ToString(internalGet(path, defaultValue...))
}

// GetInt reads an int value
func GetInt(path string, defaultValue ...interface{}) int {
	return cast.ToInt(internalGet(path, defaultValue...))
}

// GetInt64 reads an int64 value
func GetInt64(path string, defaultValue ...interface{}) int64 {
	return cast.ToInt64(internalGet(path, defaultValue...))
}

// GetBool reads a bool value
func GetBool(path string, defaultValue ...interface{}) bool {
	return cast.ToBool(internalGet(path, defaultValue...))
}

// Set overrides a configuration value, mainly used by tests
func Set(path string, value interface{}) {
	viper.Set(path, value)
}
