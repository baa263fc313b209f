// Package storage publishes generated sitemap files.
//
// Two backends implement the [Storage] interface: [Disk] writes into a local
// public directory served by the web server, and [S3Storage] uploads to an
// S3-compatible bucket (AWS, MinIO, R2) fronted by a CDN.
//
// Keys are slash-separated paths relative to the public root. Keys that try to
// escape the root with ".." are rejected with [ErrInvalidKey].
//
// # Local Disk
//
//	store, err := storage.NewDisk("public")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	err = store.Put(ctx, "sitemap_files/Post.xml", data)
//	names, err := store.List(ctx, "sitemap_files") // ["Post.xml"]
//	err = store.Clear(ctx, "sitemap_files")
//
// # S3-Compatible Storage
//
//	store, err := storage.New(storage.Config{
//		Bucket:    "my-site",
//		Region:    "eu-central-1",
//		AccessKey: os.Getenv("STORAGE_ACCESS_KEY"),
//		SecretKey: os.Getenv("STORAGE_SECRET_KEY"),
//		Prefix:    "public",
//	})
//
//	err = store.Put(ctx, "sitemap.xml", data,
//		storage.WithCacheControl("public, max-age=3600"),
//	)
//
// Uploaded objects default to [ACLPublicRead], since crawlers fetch them
// anonymously. The content type defaults to [DefaultContentType].
//
// # Configuration
//
// The Config struct supports environment variables:
//
//	type Config struct {
//		Bucket     string // STORAGE_BUCKET
//		AccessKey  string // STORAGE_ACCESS_KEY
//		SecretKey  string // STORAGE_SECRET_KEY
//		Endpoint   string // STORAGE_ENDPOINT (for MinIO/custom S3)
//		Region     string // STORAGE_REGION (default: us-east-1)
//		Prefix     string // STORAGE_PREFIX
//		DefaultACL ACL    // STORAGE_DEFAULT_ACL (default: public-read)
//		PathStyle  bool   // STORAGE_PATH_STYLE (for MinIO)
//	}
package storage
