package publish

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/RMahshie/codesigma/internal/site"
	"github.com/RMahshie/codesigma/internal/storage"
)

// ManifestKey is the object written last, once every file of a build is in place.
const ManifestKey = "build.json"

// maxUploads bounds the concurrent PutObject calls of one build.
const maxUploads = 4

// rollbackTimeout bounds the cleanup of a failed build. Cleanup outlives the
// publish context so a cancelled run still removes its files.
const rollbackTimeout = 30 * time.Second

// ArtifactSource produces the files of the static site.
type ArtifactSource interface {
	Artifacts() ([]site.Artifact, error)
}

// Manifest describes one published build.
type Manifest struct {
	BuildID     string    `json:"build_id"`
	PublishedAt time.Time `json:"published_at"`
	Files       []File    `json:"files"`
}

// File is one published object.
type File struct {
	Key         string `json:"key"`
	ContentType string `json:"content_type"`
	Size        int    `json:"size"`
}

type PublishService interface {
	Publish(ctx context.Context) (*Manifest, error)
	PreviewURL(ctx context.Context) (string, error)
}

type publishService struct {
	store  storage.ObjectStore
	source ArtifactSource
	prefix string
	now    func() time.Time
}

func NewPublishService(store storage.ObjectStore, source ArtifactSource, prefix string) PublishService {
	return &publishService{
		store:  store,
		source: source,
		prefix: prefix,
		now:    time.Now,
	}
}

// Publish uploads every artifact, then the manifest. When any upload fails,
// the manifest included, the files already uploaded by this run are removed
// again.
func (s *publishService) Publish(ctx context.Context) (*Manifest, error) {
	artifacts, err := s.source.Artifacts()
	if err != nil {
		return nil, fmt.Errorf("failed to render site: %w", err)
	}

	manifest := &Manifest{
		BuildID:     uuid.New().String(),
		PublishedAt: s.now().UTC(),
	}
	logger := log.With().Str("buildID", manifest.BuildID).Str("prefix", s.prefix).Logger()
	logger.Info().Int("files", len(artifacts)).Msg("Publishing site")

	var (
		mu       sync.Mutex
		uploaded []string
	)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxUploads)
	for _, a := range artifacts {
		a := a
		g.Go(func() error {
			key := s.key(a.Key)
			if err := s.store.PutObject(gctx, key, a.ContentType, a.Body); err != nil {
				return err
			}
			logger.Debug().Str("key", key).Int("size", len(a.Body)).Msg("Uploaded file")

			mu.Lock()
			uploaded = append(uploaded, key)
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		logger.Error().Err(err).Int("uploaded", len(uploaded)).Msg("Publish failed, removing uploaded files")
		s.rollback(ctx, uploaded)
		return nil, fmt.Errorf("failed to publish site: %w", err)
	}

	for _, a := range artifacts {
		manifest.Files = append(manifest.Files, File{Key: s.key(a.Key), ContentType: a.ContentType, Size: len(a.Body)})
	}
	body, err := json.MarshalIndent(manifest, "", "  ")
	if err != nil {
		s.rollback(ctx, uploaded)
		return nil, fmt.Errorf("failed to marshal manifest: %w", err)
	}
	if err := s.store.PutObject(ctx, s.key(ManifestKey), "application/json", body); err != nil {
		logger.Error().Err(err).Msg("Manifest upload failed, removing uploaded files")
		s.rollback(ctx, uploaded)
		return nil, fmt.Errorf("failed to publish manifest: %w", err)
	}

	logger.Info().Msg("Site published")
	return manifest, nil
}

// PreviewURL returns a pre-signed link to the published page.
func (s *publishService) PreviewURL(ctx context.Context) (string, error) {
	return s.store.GenerateDownloadURL(ctx, s.key("index.html"))
}

func (s *publishService) rollback(ctx context.Context, keys []string) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), rollbackTimeout)
	defer cancel()

	for _, key := range keys {
		if err := s.store.DeleteFile(ctx, key); err != nil {
			log.Warn().Err(err).Str("key", key).Msg("Failed to remove partially published file")
		}
	}
}

func (s *publishService) key(name string) string {
	if s.prefix == "" {
		return name
	}
	return path.Join(s.prefix, name)
}

// WriteDir writes the artifacts under dir, creating subdirectories as needed.
func WriteDir(dir string, source ArtifactSource) error {
	artifacts, err := source.Artifacts()
	if err != nil {
		return fmt.Errorf("failed to render site: %w", err)
	}
	for _, a := range artifacts {
		dest := filepath.Join(dir, filepath.FromSlash(a.Key))
		if err := os.MkdirAll(filepath.Dir(dest), 0755); err != nil {
			return fmt.Errorf("failed to create directory for %s: %w", a.Key, err)
		}
		if err := os.WriteFile(dest, a.Body, 0644); err != nil {
			return fmt.Errorf("failed to write %s: %w", a.Key, err)
		}
	}
	log.Info().Str("dir", dir).Int("files", len(artifacts)).Msg("Site written")
	return nil
}
