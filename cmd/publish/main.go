package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/RMahshie/codesigma/internal/config"
	"github.com/RMahshie/codesigma/internal/publish"
	"github.com/RMahshie/codesigma/internal/site"
	"github.com/RMahshie/codesigma/internal/storage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}
	cfg.SetupLogger()

	dir := flag.String("dir", cfg.Publish.Dir, "write the site to this directory instead of the bucket")
	flag.Parse()

	renderer, err := site.NewRenderer(cfg.Site.BaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to prepare site renderer")
	}

	if *dir != "" {
		if err := publish.WriteDir(*dir, renderer); err != nil {
			log.Fatal().Err(err).Msg("Failed to write site")
		}
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithTimeout(ctx, 5*time.Minute)
	defer cancel()

	store, err := storage.NewS3Service(ctx, storage.S3Config{
		Bucket:    cfg.AWS.S3Bucket,
		Endpoint:  cfg.AWS.S3Endpoint,
		Region:    cfg.AWS.Region,
		AccessKey: cfg.AWS.AccessKeyID,
		SecretKey: cfg.AWS.SecretAccessKey,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize S3 service")
	}

	svc := publish.NewPublishService(store, renderer, cfg.Publish.Prefix)
	manifest, err := svc.Publish(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to publish site")
	}

	previewURL, err := svc.PreviewURL(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("Failed to generate preview URL")
	}
	log.Info().
		Str("buildID", manifest.BuildID).
		Int("files", len(manifest.Files)).
		Str("bucket", cfg.AWS.S3Bucket).
		Str("preview", previewURL).
		Msg("Publish complete")
}
