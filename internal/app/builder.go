package app

import (
	"context"

	"storyboard/internal/gemini"
	"storyboard/internal/storage"
	"storyboard/pkg/config"
	"storyboard/pkg/prompts"
)

func BuildStudio(ctx context.Context, cfg *config.Config) (*Studio, error) {
	p, err := loadPrompts(cfg.Gemini.PromptsPath)
	if err != nil {
		return nil, err
	}

	client, err := gemini.NewClient(ctx, cfg.APIKey, gemini.Options{
		VisionModel:  cfg.Gemini.VisionModel,
		OutlineModel: cfg.Gemini.OutlineModel,
		ImageModel:   cfg.Gemini.ImageModel,
		AudioModel:   cfg.Gemini.AudioModel,
		Prompts:      p,
	})
	if err != nil {
		return nil, err
	}

	store, err := buildStore(ctx, cfg)
	if err != nil {
		return nil, err
	}

	return NewStudio(StudioOptions{
		Config: cfg,
		Client: client,
		Store:  store,
	}), nil
}

func loadPrompts(path string) (*prompts.Prompts, error) {
	if path == "" {
		return prompts.Load()
	}
	return prompts.LoadFrom(path)
}

func buildStore(ctx context.Context, cfg *config.Config) (storage.Store, error) {
	if cfg.GCS.Enabled && cfg.GCSBucket != "" {
		return storage.NewGCSStorage(ctx, cfg.GCSBucket, cfg.GCS.Prefix)
	}
	return storage.NewLocalStorage(cfg.Output.Dir), nil
}
