// Package config provides configuration functionality for the n8n-cli application
package config

import (
	"fmt"
	"os"

	"github.com/spf13/viper"
)

// Initialize reads in config file and ENV variables if set
func Initialize() {
	LoadEnvFile()

	v := viper.GetViper()
	v.SetEnvPrefix("N8N")
	v.AutomaticEnv()

	BindEnvSafely(v, "api_key", "N8N_API_KEY")
	BindEnvSafely(v, "api_key", "API_N8N")
	BindEnvSafely(v, "instance_url", "N8N_INSTANCE_URL")
	BindEnvSafely(v, "instance_url", "N8N_URL")
	BindEnvSafely(v, "basic_auth_user", "N8N_BASIC_AUTH_USER")
	BindEnvSafely(v, "basic_auth_password", "N8N_BASIC_AUTH_PASSWORD")

	v.SetDefault("instance_url", "http://localhost:5678")
	v.SetDefault("api_key", "")
	v.SetDefault("basic_auth_user", "")
	v.SetDefault("basic_auth_password", "")
	v.SetDefault("workflows_dir", "./workflows")
	v.SetDefault("poll_interval", 10)
	v.SetDefault("conflict_resolution", "ask")

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("$HOME/.n8n")
	v.AddConfigPath(".")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			fmt.Fprintf(os.Stderr, "Warning: Config file error: %v\n", err)
		}
	}
}

// HasAPIKey reports whether an API key is configured, which takes
// precedence over Basic Auth credentials when both are present.
func HasAPIKey() bool {
	return viper.GetString("api_key") != ""
}

// HasBasicAuth reports whether Basic Auth credentials are configured.
func HasBasicAuth() bool {
	return viper.GetString("basic_auth_user") != "" || viper.GetString("basic_auth_password") != ""
}

// BindEnvSafely binds an environment variable and logs errors without crashing
func BindEnvSafely(v *viper.Viper, key, envVar string) {
	if err := v.BindEnv(key, envVar); err != nil {
		fmt.Fprintf(os.Stderr, "Error binding environment variable %s: %v\n", envVar, err)
	}
}
