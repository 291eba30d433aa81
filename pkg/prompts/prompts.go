package prompts

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"text/template"

	"gopkg.in/yaml.v3"
)

const defaultPromptsPath = "prompts.yaml"

//go:embed defaults.yaml
var defaultPromptsYAML []byte

type Prompts struct {
	Visual  string `yaml:"visual"`
	Outline string `yaml:"outline"`
	Image   string `yaml:"image"`
	Audio   string `yaml:"audio"`
}

type VisualParams struct {
	Role     string
	Intent   string
	Language string
}

type OutlineParams struct {
	Context   string
	ShotCount int
	Language  string
}

type ImageParams struct {
	Style   string
	Scene   string
	Overlay OverlayParams
}

type OverlayParams struct {
	Enabled    bool
	Content    string
	Typography string
	Color      string
}

type AudioParams struct {
	Action   string
	Duration float64
	BGM      string
	Dialog   string
	Language string
}

// Default returns the templates bundled with the binary.
func Default() *Prompts {
	var p Prompts
	if err := yaml.Unmarshal(defaultPromptsYAML, &p); err != nil {
		panic(fmt.Sprintf("prompts: embedded defaults: %v", err))
	}
	return &p
}

// Load reads prompts.yaml from the working directory, falling back to the
// bundled templates when the file does not exist.
func Load() (*Prompts, error) {
	p, err := LoadFrom(defaultPromptsPath)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	return p, err
}

// LoadFrom reads a prompts file. Entries missing from the file keep their
// bundled value.
func LoadFrom(path string) (*Prompts, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read prompts file: %w", err)
	}

	p := Default()
	if err := yaml.Unmarshal(data, p); err != nil {
		return nil, fmt.Errorf("failed to parse prompts file: %w", err)
	}

	return p, nil
}

func (p *Prompts) RenderVisual(params VisualParams) (string, error) {
	return render(p.Visual, params)
}

func (p *Prompts) RenderOutline(params OutlineParams) (string, error) {
	return render(p.Outline, params)
}

func (p *Prompts) RenderImage(params ImageParams) (string, error) {
	return render(p.Image, params)
}

func (p *Prompts) RenderAudio(params AudioParams) (string, error) {
	return render(p.Audio, params)
}

func render(tmpl string, data any) (string, error) {
	t, err := template.New("prompt").Parse(tmpl)
	if err != nil {
		return "", fmt.Errorf("failed to parse template: %w", err)
	}

	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute template: %w", err)
	}

	return buf.String(), nil
}
