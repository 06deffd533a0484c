// Package publish uploads the produced JSON document to an object store so the
// site can fetch it. Only one document is ever written per run.
package publish

import (
	"context"
	"fmt"
	"strings"
)

// Driver names an object store backend.
type Driver string

const (
	DriverNone  Driver = "none"
	DriverS3    Driver = "s3"
	DriverMinIO Driver = "minio"
)

// ParseDriver validates a driver name. Empty means DriverNone.
func ParseDriver(s string) (Driver, error) {
	switch d := Driver(strings.ToLower(strings.TrimSpace(s))); d {
	case "", DriverNone:
		return DriverNone, nil
	case DriverS3, DriverMinIO:
		return d, nil
	default:
		return "", fmt.Errorf("invalid publish driver %q (must be none, s3, or minio)", s)
	}
}

// Config holds object store parameters.
type Config struct {
	Driver    Driver
	Bucket    string
	Key       string
	Region    string
	Endpoint  string // optional for s3, required for minio
	AccessKey string // optional for s3 (falls back to the default credentials chain)
	SecretKey string
	UseSSL    bool
	PathStyle bool
}

// Publisher stores a document under key and returns its location.
type Publisher interface {
	Publish(ctx context.Context, key string, body []byte) (string, error)
}

// New returns the Publisher selected by cfg.Driver, or nil for DriverNone.
func New(ctx context.Context, cfg Config) (Publisher, error) {
	switch cfg.Driver {
	case "", DriverNone:
		return nil, nil
	case DriverS3:
		return NewS3(ctx, cfg)
	case DriverMinIO:
		return NewMinIO(cfg)
	default:
		return nil, fmt.Errorf("unknown publish driver %q", cfg.Driver)
	}
}

func contentType() string {
	return "application/json; charset=utf-8"
}
