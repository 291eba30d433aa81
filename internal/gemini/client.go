package gemini

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"storyboard/pkg/prompts"
)

const (
	DefaultVisionModel  = "gemini-3-flash-preview"
	DefaultOutlineModel = "gemini-3-pro-preview"
	DefaultImageModel   = "gemini-2.5-flash-image"
	DefaultAudioModel   = "gemini-3-flash-preview"
)

// Generator is the subset of genai.Models the client needs.
type Generator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

type Client struct {
	models       Generator
	prompts      *prompts.Prompts
	visionModel  string
	outlineModel string
	imageModel   string
	audioModel   string
}

type Options struct {
	VisionModel  string
	OutlineModel string
	ImageModel   string
	AudioModel   string
	Prompts      *prompts.Prompts
}

// NewClient connects to the Gemini API with an explicit key.
func NewClient(ctx context.Context, apiKey string, opts Options) (*Client, error) {
	if apiKey == "" {
		return nil, errors.New("gemini api key is required")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}

	return New(client.Models, opts), nil
}

func New(models Generator, opts Options) *Client {
	c := &Client{
		models:       models,
		prompts:      opts.Prompts,
		visionModel:  opts.VisionModel,
		outlineModel: opts.OutlineModel,
		imageModel:   opts.ImageModel,
		audioModel:   opts.AudioModel,
	}
	if c.prompts == nil {
		c.prompts = prompts.Default()
	}
	if c.visionModel == "" {
		c.visionModel = DefaultVisionModel
	}
	if c.outlineModel == "" {
		c.outlineModel = DefaultOutlineModel
	}
	if c.imageModel == "" {
		c.imageModel = DefaultImageModel
	}
	if c.audioModel == "" {
		c.audioModel = DefaultAudioModel
	}
	return c
}

func (c *Client) ImageModel() string {
	return c.imageModel
}

func (c *Client) call(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	resp, err := c.models.GenerateContent(ctx, model, contents, config)
	if err != nil {
		return nil, fmt.Errorf("generate: %w", err)
	}
	return resp, nil
}

// firstParts returns the content parts of the first candidate, or nil when the
// response carries no candidates.
func firstParts(resp *genai.GenerateContentResponse) []*genai.Part {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0] == nil || resp.Candidates[0].Content == nil {
		return nil
	}
	return resp.Candidates[0].Content.Parts
}

func responseText(resp *genai.GenerateContentResponse) string {
	var sb strings.Builder
	for _, part := range firstParts(resp) {
		if part == nil || part.Thought {
			continue
		}
		sb.WriteString(part.Text)
	}
	return sb.String()
}
