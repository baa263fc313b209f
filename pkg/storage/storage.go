package storage

import (
	"context"
	"path"
	"strings"
)

// Storage defines the file operations needed to publish sitemap files.
// Keys are slash-separated paths relative to the public root,
// e.g. "sitemap.xml" or "sitemap_files/Post.xml".
type Storage interface {
	// Put writes data under key, replacing any existing file.
	// Missing parent directories are created.
	Put(ctx context.Context, key string, data []byte, opts ...Option) error

	// Get reads the file stored under key.
	// Returns ErrNotFound if it does not exist.
	Get(ctx context.Context, key string) ([]byte, error)

	// List returns the names of the regular files directly inside dir,
	// sorted by name. Dot files are skipped. A missing dir yields an empty list.
	List(ctx context.Context, dir string) ([]string, error)

	// Clear removes everything inside dir but keeps dir itself.
	Clear(ctx context.Context, dir string) error
}

// Config holds S3-compatible storage configuration.
type Config struct {
	// Bucket is the S3 bucket name (required).
	Bucket string `yaml:"bucket" env:"STORAGE_BUCKET"`

	// AccessKey is the AWS access key ID (required).
	AccessKey string `yaml:"access_key" env:"STORAGE_ACCESS_KEY"`

	// SecretKey is the AWS secret access key (required).
	SecretKey string `yaml:"secret_key" env:"STORAGE_SECRET_KEY"`

	// Endpoint is the custom S3 endpoint URL (optional, for MinIO or other S3-compatible services).
	Endpoint string `yaml:"endpoint" env:"STORAGE_ENDPOINT"`

	// Region is the AWS region (default: us-east-1).
	Region string `yaml:"region" env:"STORAGE_REGION"`

	// Prefix is prepended to every key, letting several sites share a bucket.
	Prefix string `yaml:"prefix" env:"STORAGE_PREFIX"`

	// DefaultACL is the default ACL for uploaded files (default: public-read).
	// Sitemaps are meant to be fetched by crawlers.
	DefaultACL ACL `yaml:"acl" env:"STORAGE_DEFAULT_ACL"`

	// PathStyle enables path-style URLs (required for MinIO).
	PathStyle bool `yaml:"path_style" env:"STORAGE_PATH_STYLE"`
}

// ACL represents access control levels for stored files.
type ACL string

const (
	// ACLPrivate makes the file accessible only with credentials.
	ACLPrivate ACL = "private"

	// ACLPublicRead makes the file publicly readable.
	ACLPublicRead ACL = "public-read"
)

// Default configuration values.
const (
	DefaultRegion      = "us-east-1"
	DefaultContentType = "application/xml; charset=utf-8"
)

// applyDefaults fills in default values for empty config fields.
func (c *Config) applyDefaults() {
	if c.Region == "" {
		c.Region = DefaultRegion
	}
	if c.DefaultACL == "" {
		c.DefaultACL = ACLPublicRead
	}
	c.Prefix = strings.Trim(c.Prefix, "/")
}

// validate checks that required configuration fields are set.
func (c *Config) validate() error {
	if c.Bucket == "" {
		return ErrInvalidConfig
	}
	if c.AccessKey == "" {
		return ErrInvalidConfig
	}
	if c.SecretKey == "" {
		return ErrInvalidConfig
	}
	return nil
}

// cleanKey normalizes a storage key and rejects keys escaping the root.
// An empty key (or ".") refers to the root itself.
func cleanKey(key string) (string, error) {
	key = strings.ReplaceAll(strings.TrimSpace(key), "\\", "/")
	for seg := range strings.SplitSeq(key, "/") {
		if seg == ".." {
			return "", ErrInvalidKey
		}
	}
	key = strings.Trim(path.Clean("/"+key), "/")
	return key, nil
}
