package env

import (
	"os"

	"github.com/spf13/viper"
)

// PodName example: otc-market-api-6868d88fbd-bz8zv
func PodName() string {
	return os.Getenv("PODNAME")
}

// EnvName is the env_name config key, falling back to ENV_NAME
func EnvName() string {
	return lookup("env_name", "ENV_NAME")
}

// AppName is the app_name config key, falling back to APP_NAME
func AppName() string {
	return lookup("app_name", "APP_NAME")
}

func lookup(key, envKey string) string {
	if v := viper.GetString(key); v != "" {
		return v
	}
	return os.Getenv(envKey)
}
