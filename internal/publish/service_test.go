package publish

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/RMahshie/codesigma/internal/site"
)

// MockObjectStore implements storage.ObjectStore for testing
type MockObjectStore struct {
	mock.Mock
}

func (m *MockObjectStore) PutObject(ctx context.Context, key string, contentType string, body []byte) error {
	args := m.Called(ctx, key, contentType, body)
	return args.Error(0)
}

func (m *MockObjectStore) GenerateDownloadURL(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *MockObjectStore) DeleteFile(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

type staticSource []site.Artifact

func (s staticSource) Artifacts() ([]site.Artifact, error) { return s, nil }

var testArtifacts = staticSource{
	{Key: "index.html", ContentType: "text/html; charset=utf-8", Body: []byte("<html></html>")},
	{Key: "charts/wifi.svg", ContentType: "image/svg+xml", Body: []byte("<svg></svg>")},
}

func TestPublish(t *testing.T) {
	store := &MockObjectStore{}
	store.On("PutObject", mock.Anything, "release/index.html", "text/html; charset=utf-8", mock.Anything).Return(nil).Once()
	store.On("PutObject", mock.Anything, "release/charts/wifi.svg", "image/svg+xml", mock.Anything).Return(nil).Once()
	store.On("PutObject", mock.Anything, "release/build.json", "application/json", mock.Anything).Return(nil).Once()

	svc := NewPublishService(store, testArtifacts, "release")
	manifest, err := svc.Publish(context.Background())
	require.NoError(t, err)

	_, err = uuid.Parse(manifest.BuildID)
	assert.NoError(t, err)
	assert.Equal(t, []File{
		{Key: "release/index.html", ContentType: "text/html; charset=utf-8", Size: 13},
		{Key: "release/charts/wifi.svg", ContentType: "image/svg+xml", Size: 11},
	}, manifest.Files)
	store.AssertExpectations(t)

	// The manifest is uploaded last and matches the returned value.
	calls := store.Calls
	last := calls[len(calls)-1]
	assert.Equal(t, "release/build.json", last.Arguments.String(1))
	var uploaded Manifest
	require.NoError(t, json.Unmarshal(last.Arguments.Get(3).([]byte), &uploaded))
	assert.Equal(t, manifest.BuildID, uploaded.BuildID)
}

func TestPublishRollsBackOnFailure(t *testing.T) {
	// liveContext matches contexts that can still reach the store.
	liveContext := mock.MatchedBy(func(ctx context.Context) bool { return ctx.Err() == nil })

	tests := []struct {
		name        string
		mockSetup   func(store *MockObjectStore, cancel context.CancelFunc)
		wantErr     string
		wantDeleted []string
	}{
		{
			name: "artifact upload fails",
			mockSetup: func(store *MockObjectStore, _ context.CancelFunc) {
				store.On("PutObject", mock.Anything, "site/index.html", mock.Anything, mock.Anything).Return(nil).Once()
				store.On("PutObject", mock.Anything, "site/charts/wifi.svg", mock.Anything, mock.Anything).Return(fmt.Errorf("bucket unavailable")).Once()
				store.On("DeleteFile", liveContext, "site/index.html").Return(nil).Once()
			},
			wantErr:     "bucket unavailable",
			wantDeleted: []string{"site/index.html"},
		},
		{
			name: "manifest upload fails",
			mockSetup: func(store *MockObjectStore, _ context.CancelFunc) {
				store.On("PutObject", mock.Anything, "site/index.html", mock.Anything, mock.Anything).Return(nil).Once()
				store.On("PutObject", mock.Anything, "site/charts/wifi.svg", mock.Anything, mock.Anything).Return(nil).Once()
				store.On("PutObject", mock.Anything, "site/build.json", "application/json", mock.Anything).Return(fmt.Errorf("boom")).Once()
				store.On("DeleteFile", liveContext, "site/index.html").Return(nil).Once()
				store.On("DeleteFile", liveContext, "site/charts/wifi.svg").Return(nil).Once()
			},
			wantErr:     "failed to publish manifest: boom",
			wantDeleted: []string{"site/index.html", "site/charts/wifi.svg"},
		},
		{
			name: "publish cancelled mid upload",
			mockSetup: func(store *MockObjectStore, cancel context.CancelFunc) {
				store.On("PutObject", mock.Anything, "site/index.html", mock.Anything, mock.Anything).Return(nil).Once()
				store.On("PutObject", mock.Anything, "site/charts/wifi.svg", mock.Anything, mock.Anything).
					Run(func(mock.Arguments) { cancel() }).
					Return(context.Canceled).Once()
				store.On("DeleteFile", liveContext, "site/index.html").Return(nil).Once()
			},
			wantErr:     context.Canceled.Error(),
			wantDeleted: []string{"site/index.html"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()

			store := &MockObjectStore{}
			tt.mockSetup(store, cancel)

			svc := NewPublishService(store, testArtifacts, "site")
			manifest, err := svc.Publish(ctx)
			require.Error(t, err)
			assert.Nil(t, manifest)
			assert.Contains(t, err.Error(), tt.wantErr)

			store.AssertExpectations(t)
			store.AssertNumberOfCalls(t, "DeleteFile", len(tt.wantDeleted))
		})
	}
}

func TestPublishDoesNotWriteManifestAfterFailedUpload(t *testing.T) {
	store := &MockObjectStore{}
	store.On("PutObject", mock.Anything, "index.html", mock.Anything, mock.Anything).Return(nil)
	store.On("PutObject", mock.Anything, "charts/wifi.svg", mock.Anything, mock.Anything).Return(fmt.Errorf("bucket unavailable"))
	store.On("DeleteFile", mock.Anything, "index.html").Return(nil)

	_, err := NewPublishService(store, testArtifacts, "").Publish(context.Background())
	require.Error(t, err)

	store.AssertNotCalled(t, "PutObject", mock.Anything, ManifestKey, mock.Anything, mock.Anything)
	store.AssertNotCalled(t, "DeleteFile", mock.Anything, "charts/wifi.svg")
	store.AssertCalled(t, "DeleteFile", mock.Anything, "index.html")
}

func TestPreviewURL(t *testing.T) {
	store := &MockObjectStore{}
	store.On("GenerateDownloadURL", mock.Anything, "site/index.html").Return("https://bucket.example/site/index.html?sig", nil)

	url, err := NewPublishService(store, testArtifacts, "site").PreviewURL(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "https://bucket.example/site/index.html?sig", url)
}

func TestWriteDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, WriteDir(dir, testArtifacts))

	page, err := os.ReadFile(filepath.Join(dir, "index.html"))
	require.NoError(t, err)
	assert.Equal(t, "<html></html>", string(page))

	chart, err := os.ReadFile(filepath.Join(dir, "charts", "wifi.svg"))
	require.NoError(t, err)
	assert.Equal(t, "<svg></svg>", string(chart))
}
