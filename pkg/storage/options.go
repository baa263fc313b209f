package storage

// Option configures Put operations.
type Option func(*putOptions)

// putOptions holds configuration for Put operations.
type putOptions struct {
	contentType  string // Defaults to DefaultContentType
	cacheControl string // Cache-Control header (S3 only)
	acl          ACL    // Override default ACL (S3 only)
}

func newPutOptions(opts ...Option) *putOptions {
	o := &putOptions{contentType: DefaultContentType}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// WithContentType overrides the stored content type.
func WithContentType(ct string) Option {
	return func(o *putOptions) {
		if ct != "" {
			o.contentType = ct
		}
	}
}

// WithCacheControl sets the Cache-Control header served with the object.
// Ignored by the disk backend.
func WithCacheControl(v string) Option {
	return func(o *putOptions) {
		o.cacheControl = v
	}
}

// WithACL overrides the default ACL for this upload.
// Ignored by the disk backend.
func WithACL(acl ACL) Option {
	return func(o *putOptions) {
		o.acl = acl
	}
}
