// Package storage wraps the S3-compatible bucket that holds banner and
// profile images. Clients normally upload directly through pre-signed URLs;
// the server only uploads profile images submitted with the settings form.
package storage

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"blogfolio/config"
)

// uploadURLExpiry matches the lifetime the web client expects for a
// pre-signed upload URL.
const uploadURLExpiry = 1000 * time.Second

type Client struct {
	mc     *minio.Client
	bucket string
}

// NewClient initializes the bucket client from config.
func NewClient(cfg config.StorageConfig) (*Client, error) {
	mc, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("init storage client: %w", err)
	}

	return &Client{mc: mc, bucket: cfg.Bucket}, nil
}

// PresignedUploadURL returns a time-limited URL the client can PUT a jpeg to
// without routing the bytes through the API server.
func (c *Client) PresignedUploadURL(ctx context.Context) (string, error) {
	u, err := c.mc.PresignedPutObject(ctx, c.bucket, objectKey(), uploadURLExpiry)
	if err != nil {
		return "", fmt.Errorf("presign upload url: %w", err)
	}
	return u.String(), nil
}

// UploadImage stores an image server-side and returns its public URL.
func (c *Client) UploadImage(ctx context.Context, r io.Reader, size int64) (string, error) {
	key := objectKey()
	_, err := c.mc.PutObject(ctx, c.bucket, key, r, size, minio.PutObjectOptions{
		ContentType: "image/jpeg",
	})
	if err != nil {
		return "", fmt.Errorf("upload image: %w", err)
	}
	return fmt.Sprintf("%s/%s/%s", c.mc.EndpointURL(), c.bucket, key), nil
}

// objectKey builds a collision-resistant jpeg key, random prefix plus the
// current timestamp.
func objectKey() string {
	b := make([]byte, 8)
	if _, err := rand.Read(b); err != nil {
		return fmt.Sprintf("%d.jpeg", time.Now().UnixNano())
	}
	return fmt.Sprintf("%s-%d.jpeg", hex.EncodeToString(b), time.Now().UnixMilli())
}
