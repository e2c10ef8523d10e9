package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateContentType(t *testing.T) {
	assert.NoError(t, validateContentType("text/html; charset=utf-8"))
	assert.NoError(t, validateContentType("image/svg+xml"))
	assert.NoError(t, validateContentType("application/json"))
	assert.Error(t, validateContentType("audio/wav"))
}

func TestCacheControl(t *testing.T) {
	assert.Equal(t, "no-cache", cacheControl("text/html; charset=utf-8"))
	assert.Equal(t, "public, max-age=86400", cacheControl("image/svg+xml"))
}

func TestNewS3ServiceRequiresBucket(t *testing.T) {
	_, err := NewS3Service(context.Background(), S3Config{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "S3_BUCKET")
}

func TestPutObjectRejectsUnknownContentType(t *testing.T) {
	store, err := NewS3Service(context.Background(), S3Config{
		Bucket:    "codesigma-test",
		Endpoint:  "localhost:9000",
		AccessKey: "minioadmin",
		SecretKey: "minioadmin",
	})
	require.NoError(t, err)

	// Validation happens before any request is sent.
	err = store.PutObject(context.Background(), "audio.wav", "audio/wav", []byte("x"))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid content type")
}
