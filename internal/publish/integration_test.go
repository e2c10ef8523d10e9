package publish

import (
	"context"
	"io"
	"net/http"
	"testing"

	"github.com/google/uuid"
	miniogo "github.com/minio/minio-go/v7"
	miniocreds "github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go/modules/minio"

	"github.com/RMahshie/codesigma/internal/site"
	"github.com/RMahshie/codesigma/internal/storage"
)

// TestContainer holds test infrastructure
type TestContainer struct {
	minioContainer *minio.MinioContainer
	minioURL       string
	bucketName     string
	client         *miniogo.Client
}

// SetupIntegrationTest starts MinIO and creates an empty bucket
func SetupIntegrationTest(t *testing.T) *TestContainer {
	t.Helper()
	ctx := context.Background()

	minioContainer, err := minio.Run(ctx,
		"minio/minio:RELEASE.2024-10-29T16-01-48Z",
		minio.WithUsername("minioadmin"),
		minio.WithPassword("minioadmin"),
	)
	require.NoError(t, err)

	minioURL, err := minioContainer.ConnectionString(ctx)
	require.NoError(t, err)

	client, err := miniogo.New(minioURL, &miniogo.Options{
		Creds:  miniocreds.NewStaticV4("minioadmin", "minioadmin", ""),
		Secure: false,
	})
	require.NoError(t, err)

	bucketName := "codesigma-test-" + uuid.New().String()[:8]
	require.NoError(t, client.MakeBucket(ctx, bucketName, miniogo.MakeBucketOptions{}))

	return &TestContainer{
		minioContainer: minioContainer,
		minioURL:       minioURL,
		bucketName:     bucketName,
		client:         client,
	}
}

// CleanupIntegrationTest cleans up test containers
func (tc *TestContainer) CleanupIntegrationTest(t *testing.T) {
	t.Helper()
	if tc.minioContainer != nil {
		require.NoError(t, tc.minioContainer.Terminate(context.Background()))
	}
}

func TestPublishToMinio_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	tc := SetupIntegrationTest(t)
	defer tc.CleanupIntegrationTest(t)

	ctx := context.Background()

	store, err := storage.NewS3Service(ctx, storage.S3Config{
		Bucket:    tc.bucketName,
		Endpoint:  tc.minioURL,
		AccessKey: "minioadmin",
		SecretKey: "minioadmin",
	})
	require.NoError(t, err)

	renderer, err := site.NewRenderer("https://codesigma.example")
	require.NoError(t, err)

	svc := NewPublishService(store, renderer, "preview")
	manifest, err := svc.Publish(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, manifest.Files)

	for _, f := range manifest.Files {
		info, err := tc.client.StatObject(ctx, tc.bucketName, f.Key, miniogo.StatObjectOptions{})
		require.NoError(t, err, f.Key)
		assert.Equal(t, int64(f.Size), info.Size, f.Key)
		assert.Equal(t, f.ContentType, info.ContentType, f.Key)
	}
	_, err = tc.client.StatObject(ctx, tc.bucketName, "preview/"+ManifestKey, miniogo.StatObjectOptions{})
	require.NoError(t, err)

	previewURL, err := svc.PreviewURL(ctx)
	require.NoError(t, err)
	resp, err := http.Get(previewURL)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), "CodeSigma")
}
