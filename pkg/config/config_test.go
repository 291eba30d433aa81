package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func chdirTemp(t *testing.T) string {
	t.Helper()
	tmp := t.TempDir()
	orig, _ := os.Getwd()
	t.Cleanup(func() { _ = os.Chdir(orig) })
	if err := os.Chdir(tmp); err != nil {
		t.Fatal(err)
	}
	return tmp
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"API_KEY", "GEMINI_API_KEY", "API_KEY_SECRET", "GOOGLE_CLOUD_PROJECT", "GCS_BUCKET"} {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	chdirTemp(t)
	clearEnv(t)

	cfg, err := Load(context.Background())
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.Storyboard.Language != "en" {
		t.Errorf("Storyboard.Language = %q, want en", cfg.Storyboard.Language)
	}
	if cfg.Storyboard.ShotCount != 6 {
		t.Errorf("Storyboard.ShotCount = %d, want 6", cfg.Storyboard.ShotCount)
	}
	if cfg.Storyboard.AspectRatio != "16:9" {
		t.Errorf("Storyboard.AspectRatio = %q, want 16:9", cfg.Storyboard.AspectRatio)
	}
	if cfg.Output.Dir != "./output" {
		t.Errorf("Output.Dir = %q, want ./output", cfg.Output.Dir)
	}
	if diff := cmp.Diff(defaultTypographyPresets, cfg.Overlay.TypographyPresets); diff != "" {
		t.Errorf("TypographyPresets mismatch (-want +got):\n%s", diff)
	}
	if cfg.Gemini.ImageModel != "" {
		t.Errorf("Gemini.ImageModel = %q, want empty so the client default applies", cfg.Gemini.ImageModel)
	}
}

func TestLoadFromYAML(t *testing.T) {
	tmp := chdirTemp(t)
	clearEnv(t)

	yaml := `
gemini:
  image_model: test-image-model
storyboard:
  language: zh
  shot_count: 8
overlay:
  color: "#FF0000"
  typography_presets: ["Serif", "Mono"]
gcs:
  enabled: true
`
	_ = os.WriteFile(filepath.Join(tmp, "config.yaml"), []byte(yaml), 0644)

	cfg, err := Load(context.Background())
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.Gemini.ImageModel != "test-image-model" {
		t.Errorf("Gemini.ImageModel = %q, want test-image-model", cfg.Gemini.ImageModel)
	}
	if cfg.Storyboard.Language != "zh" {
		t.Errorf("Storyboard.Language = %q, want zh", cfg.Storyboard.Language)
	}
	if cfg.Storyboard.ShotCount != 8 {
		t.Errorf("Storyboard.ShotCount = %d, want 8", cfg.Storyboard.ShotCount)
	}
	if cfg.Overlay.Color != "#FF0000" {
		t.Errorf("Overlay.Color = %q, want #FF0000", cfg.Overlay.Color)
	}
	if diff := cmp.Diff([]string{"Serif", "Mono"}, cfg.Overlay.TypographyPresets); diff != "" {
		t.Errorf("TypographyPresets mismatch (-want +got):\n%s", diff)
	}
	if !cfg.GCS.Enabled || cfg.GCS.Prefix != "frames" {
		t.Errorf("GCS = %+v, want enabled with default prefix", cfg.GCS)
	}
}

func TestLoadFromEnv(t *testing.T) {
	chdirTemp(t)
	clearEnv(t)

	t.Setenv("API_KEY", "test-key")
	t.Setenv("GOOGLE_CLOUD_PROJECT", "test-project")
	t.Setenv("GCS_BUCKET", "test-bucket")

	cfg, err := Load(context.Background())
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.APIKey != "test-key" {
		t.Errorf("APIKey = %q, want test-key", cfg.APIKey)
	}
	if cfg.GCPProject != "test-project" {
		t.Errorf("GCPProject = %q, want test-project", cfg.GCPProject)
	}
	if cfg.GCSBucket != "test-bucket" {
		t.Errorf("GCSBucket = %q, want test-bucket", cfg.GCSBucket)
	}
}

func TestLoadGeminiAPIKeyFallback(t *testing.T) {
	chdirTemp(t)
	clearEnv(t)

	t.Setenv("GEMINI_API_KEY", "gemini-key")

	cfg, err := Load(context.Background())
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.APIKey != "gemini-key" {
		t.Errorf("APIKey = %q, want gemini-key", cfg.APIKey)
	}
}

func TestLoadDotEnv(t *testing.T) {
	tmp := chdirTemp(t)
	clearEnv(t)

	_ = os.WriteFile(filepath.Join(tmp, ".env"), []byte("GCS_BUCKET=dotenv-bucket\n"), 0644)
	t.Cleanup(func() { _ = os.Unsetenv("GCS_BUCKET") })
	_ = os.Unsetenv("GCS_BUCKET")

	cfg, err := Load(context.Background())
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.GCSBucket != "dotenv-bucket" {
		t.Errorf("GCSBucket = %q, want dotenv-bucket", cfg.GCSBucket)
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	tmp := chdirTemp(t)
	clearEnv(t)

	_ = os.WriteFile(filepath.Join(tmp, "config.yaml"), []byte("storyboard: [unclosed"), 0644)

	if _, err := Load(context.Background()); err == nil {
		t.Error("Load() should fail on invalid config.yaml")
	}
}

func TestSecretResourceName(t *testing.T) {
	tests := []struct {
		name    string
		project string
		secret  string
		want    string
		wantErr bool
	}{
		{
			name:    "bareID",
			project: "p1",
			secret:  "gemini-key",
			want:    "projects/p1/secrets/gemini-key/versions/latest",
		},
		{
			name:   "fullNameWithoutVersion",
			secret: "projects/p2/secrets/k",
			want:   "projects/p2/secrets/k/versions/latest",
		},
		{
			name:   "fullNameWithVersion",
			secret: "projects/p2/secrets/k/versions/3",
			want:   "projects/p2/secrets/k/versions/3",
		},
		{
			name:    "bareIDWithoutProject",
			secret:  "gemini-key",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := secretResourceName(tt.project, tt.secret)
			if (err != nil) != tt.wantErr {
				t.Fatalf("secretResourceName() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("secretResourceName() = %q, want %q", got, tt.want)
			}
		})
	}
}
