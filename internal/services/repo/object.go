package repo

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/leonf08/building-metrics.git/internal/models"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

const objectScheme = "s3"

var _ Source = (*ObjectSource)(nil)

// ObjectConfig holds connection settings of an S3-compatible storage.
type ObjectConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	UseSSL    bool
}

// ObjectSource loads a CSV or XLSX dataset stored as an object in a bucket.
type ObjectSource struct {
	client *minio.Client
	bucket string
	object string
}

// IsObjectURI reports whether uri points to an object storage, e.g. s3://bucket/key.csv.
func IsObjectURI(uri string) bool {
	return strings.HasPrefix(uri, objectScheme+"://")
}

// ParseObjectURI splits s3://bucket/key into bucket and object key.
func ParseObjectURI(uri string) (bucket, object string, err error) {
	u, err := url.Parse(uri)
	if err != nil {
		return "", "", err
	}

	if u.Scheme != objectScheme {
		return "", "", fmt.Errorf("unsupported scheme %q", u.Scheme)
	}

	bucket = u.Host
	object = strings.TrimPrefix(u.Path, "/")
	if bucket == "" || object == "" {
		return "", "", fmt.Errorf("invalid object uri %q", uri)
	}

	return bucket, object, nil
}

// NewObjectSource creates a source reading the object uri points to.
func NewObjectSource(cfg ObjectConfig, uri string) (*ObjectSource, error) {
	bucket, object, err := ParseObjectURI(uri)
	if err != nil {
		return nil, &LoadError{Source: uri, Err: err}
	}

	if _, err = tableReader(object); err != nil {
		return nil, &LoadError{Source: uri, Err: err}
	}

	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, &LoadError{Source: uri, Err: err}
	}

	return &ObjectSource{
		client: client,
		bucket: bucket,
		object: object,
	}, nil
}

// Load downloads and parses the object.
func (s *ObjectSource) Load(ctx context.Context) ([]models.MetricRecord, error) {
	name := objectScheme + "://" + s.bucket + "/" + s.object

	obj, err := s.client.GetObject(ctx, s.bucket, s.object, minio.GetObjectOptions{})
	if err != nil {
		return nil, &LoadError{Source: name, Err: err}
	}
	defer obj.Close()

	records, err := readTable(s.object, obj)
	if err != nil {
		return nil, &LoadError{Source: name, Err: err}
	}

	return records, nil
}
