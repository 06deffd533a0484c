// Package config loads run settings from the environment and an optional .env file.
package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/ukaji3/statesjson/pkg/statesjson/publish"
)

// Config holds settings not given on the command line.
type Config struct {
	LogLevel string
	Publish  publish.Config
}

// Load reads .env (if present) and the process environment.
func Load() (*Config, error) {
	_ = godotenv.Load()
	return FromEnv()
}

// FromEnv reads settings from the process environment only.
func FromEnv() (*Config, error) {
	driver, err := publish.ParseDriver(os.Getenv("STATESJSON_PUBLISH_DRIVER"))
	if err != nil {
		return nil, err
	}

	return &Config{
		LogLevel: getEnv("LOG_LEVEL", "info"),
		Publish: publish.Config{
			Driver:    driver,
			Bucket:    getEnv("STATESJSON_PUBLISH_BUCKET", ""),
			Key:       getEnv("STATESJSON_PUBLISH_KEY", "states_data.json"),
			Region:    getEnv("STATESJSON_PUBLISH_REGION", "us-east-1"),
			Endpoint:  getEnv("STATESJSON_PUBLISH_ENDPOINT", ""),
			AccessKey: firstNonEmpty(getEnv("STATESJSON_PUBLISH_ACCESS_KEY", ""), getEnv("MINIO_ROOT_USER", "")),
			SecretKey: firstNonEmpty(getEnv("STATESJSON_PUBLISH_SECRET_KEY", ""), getEnv("MINIO_ROOT_PASSWORD", "")),
			UseSSL:    getBool("STATESJSON_PUBLISH_USE_SSL", true),
			PathStyle: getBool("STATESJSON_PUBLISH_PATH_STYLE", false),
		},
	}, nil
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func getBool(key string, fallback bool) bool {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return fallback
	}
	return v
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
