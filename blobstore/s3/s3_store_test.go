package s3

import (
	"bytes"
	"context"
	"crypto/rand"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/hupe1980/kohonen/blobstore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntegration_S3Store(t *testing.T) {
	bucket := os.Getenv("S3_BUCKET")
	if bucket == "" {
		t.Skip("Skipping S3 integration test: S3_BUCKET not set")
	}

	ctx := context.Background()
	cfg, err := config.LoadDefaultConfig(ctx)
	require.NoError(t, err)

	client := s3.NewFromConfig(cfg)

	prefix := fmt.Sprintf("test-kohonen-%d/", time.Now().UnixNano())
	store := NewStore(client, bucket, prefix, WithPartSize(5*1024*1024))

	name := "test.blob"
	data := make([]byte, 12*1024*1024)
	_, _ = rand.Read(data)

	_, err = manager.NewUploader(client).Upload(ctx, &s3.PutObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(prefix + name),
		Body:   bytes.NewReader(data),
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		_, _ = client.DeleteObject(ctx, &s3.DeleteObjectInput{
			Bucket: aws.String(bucket),
			Key:    aws.String(prefix + name),
		})
	})

	blobs, err := store.List(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, []string{name}, blobs)

	r, err := store.Open(ctx, name)
	require.NoError(t, err)
	assert.Equal(t, int64(len(data)), r.Size())

	buf := make([]byte, 100)
	n, err := r.ReadAt(ctx, buf, 1024)
	require.NoError(t, err)
	assert.Equal(t, 100, n)
	assert.Equal(t, data[1024:1124], buf)
	require.NoError(t, r.Close())

	// Spans several parts.
	all, err := store.Fetch(ctx, name)
	require.NoError(t, err)
	assert.Equal(t, data, all)

	_, err = store.Open(ctx, "nonexistent")
	assert.ErrorIs(t, err, blobstore.ErrNotFound)
}
