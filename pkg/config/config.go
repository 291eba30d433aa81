package config

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	defaultConfigPath  = "config.yaml"
	defaultOutputDir   = "./output"
	defaultLanguage    = "en"
	defaultShotCount   = 6
	defaultStyle       = "Cinematic storyboard sketch"
	defaultAspectRatio = "16:9"
	defaultFontColor   = "#FFFFFF"
	defaultGCSPrefix   = "frames"
)

var defaultTypographyPresets = []string{
	"Bold sans-serif headline",
	"Handwritten brush script",
	"Classic serif subtitle",
	"Comic lettering",
	"Minimal monospace caption",
}

type Config struct {
	APIKey       string
	APIKeySecret string
	GCPProject   string
	GCSBucket    string

	Gemini     GeminiConfig     `yaml:"gemini"`
	Storyboard StoryboardConfig `yaml:"storyboard"`
	Overlay    OverlayConfig    `yaml:"overlay"`
	Output     OutputConfig     `yaml:"output"`
	GCS        GCSConfig        `yaml:"gcs"`
}

// Empty model names fall back to the client's built-in defaults.
type GeminiConfig struct {
	VisionModel  string `yaml:"vision_model"`
	OutlineModel string `yaml:"outline_model"`
	ImageModel   string `yaml:"image_model"`
	AudioModel   string `yaml:"audio_model"`
	PromptsPath  string `yaml:"prompts_path"`
}

type StoryboardConfig struct {
	Language    string `yaml:"language"`
	ShotCount   int    `yaml:"shot_count"`
	Style       string `yaml:"style"`
	AspectRatio string `yaml:"aspect_ratio"`
}

type OverlayConfig struct {
	Color             string   `yaml:"color"`
	TypographyPresets []string `yaml:"typography_presets"`
}

type OutputConfig struct {
	Dir string `yaml:"dir"`
}

type GCSConfig struct {
	Enabled bool   `yaml:"enabled"`
	Prefix  string `yaml:"prefix"`
}

func Load(ctx context.Context) (*Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Debug("No .env file found, relying on environment variables")
	}

	cfg := &Config{
		APIKey:       getEnvOrDefault("API_KEY", os.Getenv("GEMINI_API_KEY")),
		APIKeySecret: os.Getenv("API_KEY_SECRET"),
		GCPProject:   os.Getenv("GOOGLE_CLOUD_PROJECT"),
		GCSBucket:    os.Getenv("GCS_BUCKET"),
	}

	if err := loadYAMLConfig(cfg, defaultConfigPath); err != nil {
		return nil, err
	}
	applyDefaults(cfg)

	if cfg.APIKey == "" && cfg.APIKeySecret != "" {
		key, err := fetchSecret(ctx, cfg.GCPProject, cfg.APIKeySecret)
		if err != nil {
			return nil, fmt.Errorf("load api key secret: %w", err)
		}
		cfg.APIKey = key
	}

	return cfg, nil
}

func loadYAMLConfig(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		slog.Debug("No config.yaml found, using defaults", "path", path)
		return nil
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}

func applyDefaults(cfg *Config) {
	applyStoryboardDefaults(cfg)
	applyOverlayDefaults(cfg)
	applyOutputDefaults(cfg)
	applyGCSDefaults(cfg)
}

func applyStoryboardDefaults(cfg *Config) {
	if cfg.Storyboard.Language == "" {
		cfg.Storyboard.Language = defaultLanguage
	}
	if cfg.Storyboard.ShotCount == 0 {
		cfg.Storyboard.ShotCount = defaultShotCount
	}
	if cfg.Storyboard.Style == "" {
		cfg.Storyboard.Style = defaultStyle
	}
	if cfg.Storyboard.AspectRatio == "" {
		cfg.Storyboard.AspectRatio = defaultAspectRatio
	}
}

func applyOverlayDefaults(cfg *Config) {
	if cfg.Overlay.Color == "" {
		cfg.Overlay.Color = defaultFontColor
	}
	if len(cfg.Overlay.TypographyPresets) == 0 {
		cfg.Overlay.TypographyPresets = append([]string(nil), defaultTypographyPresets...)
	}
}

func applyOutputDefaults(cfg *Config) {
	if cfg.Output.Dir == "" {
		cfg.Output.Dir = defaultOutputDir
	}
}

func applyGCSDefaults(cfg *Config) {
	if cfg.GCS.Prefix == "" {
		cfg.GCS.Prefix = defaultGCSPrefix
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
