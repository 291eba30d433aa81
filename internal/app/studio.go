package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"

	"storyboard/internal/gemini"
	"storyboard/internal/shots"
	"storyboard/internal/storage"
	"storyboard/pkg/config"
	"storyboard/pkg/datauri"
)

type Studio struct {
	cfg    *config.Config
	client *gemini.Client
	store  storage.Store
}

type StudioOptions struct {
	Config *config.Config
	Client *gemini.Client
	Store  storage.Store
}

type OutlineResult struct {
	Text    string
	Outline *shots.Outline
}

func NewStudio(opts StudioOptions) *Studio {
	return &Studio{
		cfg:    opts.Config,
		client: opts.Client,
		store:  opts.Store,
	}
}

func (s *Studio) Config() *config.Config {
	return s.cfg
}

func (s *Studio) Client() *gemini.Client {
	return s.client
}

func (s *Studio) Store() storage.Store {
	return s.store
}

// Extract reads a reference image from disk and describes its visual features.
func (s *Studio) Extract(ctx context.Context, imagePath, role, intent string, lang gemini.Language) (string, error) {
	image, err := loadImage(imagePath)
	if err != nil {
		return "", err
	}

	slog.Debug("Extracting visual features", "path", imagePath, "mime", image.MIMEType)
	return s.client.ExtractVisualFeatures(ctx, image.String(), role, intent, lang)
}

func (s *Studio) Outline(ctx context.Context, visualContext string, shotCount int, lang gemini.Language) (*OutlineResult, error) {
	text, err := s.client.GenerateStoryboard(ctx, visualContext, shotCount, lang)
	if err != nil {
		return nil, err
	}

	outline := shots.Parse(text)
	if outline.Len() != shotCount {
		slog.Warn("Outline shot count differs from request", "requested", shotCount, "parsed", outline.Len())
	}

	return &OutlineResult{Text: text, Outline: outline}, nil
}

// RenderShot generates one frame and stores it under name. It returns an
// empty location when the model produced no image.
func (s *Studio) RenderShot(ctx context.Context, req gemini.ImageRequest, name string) (string, error) {
	uri, err := s.client.GenerateImage(ctx, req)
	if err != nil {
		return "", err
	}
	if uri == "" {
		slog.Warn("Model returned no image", "name", name)
		return "", nil
	}

	img, err := datauri.Parse(uri)
	if err != nil {
		return "", fmt.Errorf("parse generated image: %w", err)
	}

	location, err := s.store.Save(ctx, name, img)
	if err != nil {
		return "", fmt.Errorf("save image: %w", err)
	}
	return location, nil
}

func (s *Studio) SyncAudio(ctx context.Context, req gemini.AudioRequest) (*gemini.AudioSuggestion, error) {
	return s.client.SyncAudio(ctx, req)
}

func (s *Studio) Frames(ctx context.Context) ([]string, error) {
	return s.store.List(ctx)
}

// Close releases the store's client when it holds one.
func (s *Studio) Close() error {
	if closer, ok := s.store.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}

func loadImage(path string) (*datauri.DataURI, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read image: %w", err)
	}
	return datauri.FromBytes(http.DetectContentType(data), data), nil
}
