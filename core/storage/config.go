package storage

import (
	"fmt"
	"net/url"
	"strings"
	"time"
)

// Config holds configuration for the storage provider.
type Config struct {
	// Endpoint is the URL of the storage service (e.g. https://s3.eu-west-1.amazonaws.com).
	Endpoint string `mapstructure:"endpoint" default:"localhost:9000"`
	// PublicURL is an optional base URL used to build public object links.
	// When empty, links are built by inserting the bucket into the endpoint host.
	PublicURL string `mapstructure:"public_url" default:""`
	// AccessKey is the access key ID for authentication.
	AccessKey string `mapstructure:"access_key" default:""`
	// SecretKey is the secret access key for authentication.
	SecretKey string `mapstructure:"secret_key" default:""`
	// UseSSL indicates whether to use SSL/TLS for connections.
	// An https:// endpoint always enables it.
	UseSSL bool `mapstructure:"use_ssl" default:"false"`
	// Bucket is the name of the bucket uploads go to.
	Bucket string `mapstructure:"bucket" default:""`
	// Region is the location of the bucket (e.g., us-east-1).
	Region string `mapstructure:"region" default:""`
	// KeyPrefix is prepended to every generated object key.
	KeyPrefix string `mapstructure:"key_prefix" default:""`
	// CacheControl is the Cache-Control header stored with uploaded objects.
	CacheControl string `mapstructure:"cache_control" default:"max-age=31536000"`
	// PresignTTLSeconds is the lifetime of presigned download URLs.
	PresignTTLSeconds int `mapstructure:"presign_ttl_seconds" default:"60"`
	// TimeoutSeconds is the connection timeout in seconds.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
}

// PresignTTL returns the presigned URL lifetime, defaulting to 60 seconds.
func (c Config) PresignTTL() time.Duration {
	if c.PresignTTLSeconds <= 0 {
		return 60 * time.Second
	}
	return time.Duration(c.PresignTTLSeconds) * time.Second
}

// Secure reports whether requests should go over TLS.
func (c Config) Secure() bool {
	return c.UseSSL || strings.HasPrefix(c.Endpoint, "https://")
}

// Validate checks that the settings required to reach the bucket are present.
func (c Config) Validate() error {
	var missing []string
	if c.Endpoint == "" {
		missing = append(missing, "endpoint")
	}
	if c.Bucket == "" {
		missing = append(missing, "bucket")
	}
	if c.AccessKey == "" {
		missing = append(missing, "access_key")
	}
	if c.SecretKey == "" {
		missing = append(missing, "secret_key")
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing storage settings: %s", strings.Join(missing, ", "))
	}
	return nil
}

// baseURL returns the endpoint with an explicit scheme and no trailing slash.
func (c Config) baseURL() string {
	endpoint := strings.TrimRight(c.Endpoint, "/")
	if strings.HasPrefix(endpoint, "http://") || strings.HasPrefix(endpoint, "https://") {
		return endpoint
	}
	if c.UseSSL {
		return "https://" + endpoint
	}
	return "http://" + endpoint
}

// ObjectURL returns the public link for key.
// With a configured PublicURL the key is appended to it, otherwise the bucket is
// inserted as the first host label of the endpoint (https://bucket.host/key).
func (c Config) ObjectURL(key string) string {
	if c.PublicURL != "" {
		return strings.TrimRight(c.PublicURL, "/") + "/" + key
	}

	u, err := url.Parse(c.baseURL())
	if err != nil || u.Host == "" {
		return c.baseURL() + "/" + c.Bucket + "/" + key
	}
	u.Host = c.Bucket + "." + u.Host
	u.Path = strings.TrimRight(u.Path, "/") + "/" + key
	return u.String()
}

// PathStyleURL returns the link for key in path style (endpoint/bucket/key).
func (c Config) PathStyleURL(key string) string {
	return c.baseURL() + "/" + c.Bucket + "/" + key
}
