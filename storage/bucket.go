package storage

import (
	"context"
	"errors"
	"fmt"
	"io"

	gcs "cloud.google.com/go/storage"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"
)

var ErrObjectNotFound = errors.New("object not found")

//go:generate counterfeiter . Bucket

type Bucket interface {
	NewWriter(ctx context.Context, object, contentType string) io.WriteCloser
	NewReader(ctx context.Context, object string) (io.ReadCloser, error)
	Objects(ctx context.Context, prefix string) ([]string, error)
	Delete(ctx context.Context, object string) error
}

type GCSBucket struct {
	client *gcs.Client
	handle *gcs.BucketHandle
}

func NewGCSBucket(ctx context.Context, name string, opts ...option.ClientOption) (*GCSBucket, error) {
	client, err := gcs.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %w", err)
	}

	return &GCSBucket{
		client: client,
		handle: client.Bucket(name),
	}, nil
}

func (b *GCSBucket) NewWriter(ctx context.Context, object, contentType string) io.WriteCloser {
	w := b.handle.Object(object).NewWriter(ctx)
	w.ContentType = contentType
	return w
}

func (b *GCSBucket) NewReader(ctx context.Context, object string) (io.ReadCloser, error) {
	return b.handle.Object(object).NewReader(ctx)
}

func (b *GCSBucket) Objects(ctx context.Context, prefix string) ([]string, error) {
	it := b.handle.Objects(ctx, &gcs.Query{Prefix: prefix})

	names := []string{}
	for {
		attrs, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}
		names = append(names, attrs.Name)
	}

	return names, nil
}

func (b *GCSBucket) Delete(ctx context.Context, object string) error {
	err := b.handle.Object(object).Delete(ctx)
	if errors.Is(err, gcs.ErrObjectNotExist) {
		return ErrObjectNotFound
	}
	return err
}

func (b *GCSBucket) Close() error {
	return b.client.Close()
}
