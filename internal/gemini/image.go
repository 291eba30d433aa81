package gemini

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"storyboard/internal/field"
	"storyboard/pkg/datauri"
	"storyboard/pkg/prompts"
)

const defaultAspectRatio = "1:1"

// TextOverlay describes an optional caption rendered into a generated frame.
type TextOverlay struct {
	Enabled bool
	Content string
	Style   field.State
	Color   string
}

type ImageRequest struct {
	Prompt      string
	Style       string
	AspectRatio string // "W:H"
	Overlay     TextOverlay
	Model       string // empty uses the client's image model
}

// normalizeAspectRatio passes anything containing ':' through unchanged and
// turns everything else into a square frame.
func normalizeAspectRatio(ratio string) string {
	if strings.Contains(ratio, ":") {
		return ratio
	}
	return defaultAspectRatio
}

func (c *Client) buildImagePrompt(req ImageRequest) (string, error) {
	params := prompts.ImageParams{
		Style: req.Style,
		Scene: req.Prompt,
	}
	if req.Overlay.Enabled {
		params.Overlay = prompts.OverlayParams{
			Enabled:    true,
			Content:    req.Overlay.Content,
			Typography: req.Overlay.Style.Value(),
			Color:      req.Overlay.Color,
		}
	}
	return c.prompts.RenderImage(params)
}

// GenerateImage renders one storyboard frame and returns it as a data URI.
// An empty string means the response held no inline image.
func (c *Client) GenerateImage(ctx context.Context, req ImageRequest) (string, error) {
	prompt, err := c.buildImagePrompt(req)
	if err != nil {
		return "", fmt.Errorf("render prompt: %w", err)
	}

	model := req.Model
	if model == "" {
		model = c.imageModel
	}

	config := &genai.GenerateContentConfig{
		ImageConfig: &genai.ImageConfig{
			AspectRatio: normalizeAspectRatio(req.AspectRatio),
		},
	}

	resp, err := c.call(ctx, model, genai.Text(prompt), config)
	if err != nil {
		return "", err
	}

	for _, part := range firstParts(resp) {
		if part != nil && part.InlineData != nil {
			return datauri.Encode(part.InlineData.MIMEType, part.InlineData.Data), nil
		}
	}
	return "", nil
}
