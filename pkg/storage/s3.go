package storage

import (
	"bytes"
	"context"
	"io"
	"path"
	"sort"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
)

// maxDeleteBatch is the DeleteObjects per-request limit.
const maxDeleteBatch = 1000

// S3Storage implements Storage using S3-compatible object storage.
type S3Storage struct {
	client *s3.Client
	cfg    Config
}

// New creates a new S3Storage with the given configuration.
func New(cfg Config) (*S3Storage, error) {
	cfg.applyDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	opts := []func(*s3.Options){
		func(o *s3.Options) {
			o.Region = cfg.Region
			o.Credentials = credentials.NewStaticCredentialsProvider(
				cfg.AccessKey,
				cfg.SecretKey,
				"",
			)
		},
	}

	if cfg.Endpoint != "" {
		opts = append(opts, func(o *s3.Options) {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = cfg.PathStyle
		})
	}

	return &S3Storage{
		client: s3.New(s3.Options{}, opts...),
		cfg:    cfg,
	}, nil
}

// Put uploads data to S3 under key.
func (s *S3Storage) Put(ctx context.Context, key string, data []byte, opts ...Option) error {
	fullKey, err := s.objectKey(key)
	if err != nil {
		return err
	}
	if fullKey == s.cfg.Prefix {
		return ErrInvalidKey
	}

	o := newPutOptions(opts...)
	if o.acl == "" {
		o.acl = s.cfg.DefaultACL
	}

	var acl types.ObjectCannedACL
	switch o.acl {
	case ACLPublicRead:
		acl = types.ObjectCannedACLPublicRead
	default:
		acl = types.ObjectCannedACLPrivate
	}

	input := &s3.PutObjectInput{
		Bucket:        aws.String(s.cfg.Bucket),
		Key:           aws.String(fullKey),
		Body:          bytes.NewReader(data),
		ContentLength: aws.Int64(int64(len(data))),
		ContentType:   aws.String(o.contentType),
		ACL:           acl,
	}
	if o.cacheControl != "" {
		input.CacheControl = aws.String(o.cacheControl)
	}

	if _, err := s.client.PutObject(ctx, input); err != nil {
		return wrapS3Error(err, ErrWriteFailed)
	}
	return nil
}

// Get downloads the object stored under key.
func (s *S3Storage) Get(ctx context.Context, key string) ([]byte, error) {
	fullKey, err := s.objectKey(key)
	if err != nil {
		return nil, err
	}

	output, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.cfg.Bucket),
		Key:    aws.String(fullKey),
	})
	if err != nil {
		return nil, wrapS3Error(err, ErrReadFailed)
	}
	defer output.Body.Close()

	data, err := io.ReadAll(output.Body)
	if err != nil {
		return nil, wrapS3Error(err, ErrReadFailed)
	}
	return data, nil
}

// List returns object names directly under dir, sorted by name.
func (s *S3Storage) List(ctx context.Context, dir string) ([]string, error) {
	prefix, err := s.dirPrefix(dir)
	if err != nil {
		return nil, err
	}

	paginator := s3.NewListObjectsV2Paginator(s.client, &s3.ListObjectsV2Input{
		Bucket:    aws.String(s.cfg.Bucket),
		Prefix:    aws.String(prefix),
		Delimiter: aws.String("/"),
	})

	names := []string{}
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, wrapS3Error(err, ErrListFailed)
		}
		for _, obj := range page.Contents {
			name := path.Base(aws.ToString(obj.Key))
			if name == "" || strings.HasPrefix(name, ".") {
				continue
			}
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names, nil
}

// Clear deletes every object under dir.
func (s *S3Storage) Clear(ctx context.Context, dir string) error {
	if clean, err := cleanKey(dir); err != nil || clean == "" {
		return ErrInvalidKey
	}
	prefix, err := s.dirPrefix(dir)
	if err != nil {
		return err
	}

	paginator := s3.NewListObjectsV2Paginator(s.client, &s3.ListObjectsV2Input{
		Bucket: aws.String(s.cfg.Bucket),
		Prefix: aws.String(prefix),
	})

	var batch []types.ObjectIdentifier
	flush := func() error {
		if len(batch) == 0 {
			return nil
		}
		out, err := s.client.DeleteObjects(ctx, &s3.DeleteObjectsInput{
			Bucket: aws.String(s.cfg.Bucket),
			Delete: &types.Delete{Objects: batch, Quiet: aws.Bool(true)},
		})
		if err != nil {
			return wrapS3Error(err, ErrDeleteFailed)
		}
		if len(out.Errors) > 0 {
			e := out.Errors[0]
			return wrapS3Error(&smithy.GenericAPIError{
				Code:    aws.ToString(e.Code),
				Message: aws.ToString(e.Message),
				Fault:   smithy.FaultServer,
			}, ErrDeleteFailed)
		}
		batch = batch[:0]
		return nil
	}

	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return wrapS3Error(err, ErrListFailed)
		}
		for _, obj := range page.Contents {
			batch = append(batch, types.ObjectIdentifier{Key: obj.Key})
			if len(batch) == maxDeleteBatch {
				if err := flush(); err != nil {
					return err
				}
			}
		}
	}
	return flush()
}

// objectKey joins the configured prefix and a cleaned key.
func (s *S3Storage) objectKey(key string) (string, error) {
	clean, err := cleanKey(key)
	if err != nil {
		return "", err
	}
	switch {
	case s.cfg.Prefix == "":
		return clean, nil
	case clean == "":
		return s.cfg.Prefix, nil
	default:
		return s.cfg.Prefix + "/" + clean, nil
	}
}

// dirPrefix returns the listing prefix for dir, always ending in "/"
// unless it addresses the bucket root.
func (s *S3Storage) dirPrefix(dir string) (string, error) {
	key, err := s.objectKey(dir)
	if err != nil {
		return "", err
	}
	if key == "" {
		return "", nil
	}
	return key + "/", nil
}

// Ensure S3Storage implements Storage.
var _ Storage = (*S3Storage)(nil)
