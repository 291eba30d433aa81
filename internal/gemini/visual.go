package gemini

import (
	"context"
	"fmt"

	"google.golang.org/genai"

	"storyboard/pkg/datauri"
	"storyboard/pkg/prompts"
)

// ExtractVisualFeatures describes a reference image for later storyboard
// prompts. image must be a data URI. An empty string means the model
// returned no text.
func (c *Client) ExtractVisualFeatures(ctx context.Context, image, role, intent string, lang Language) (string, error) {
	uri, err := datauri.Parse(image)
	if err != nil {
		return "", err
	}
	data, err := uri.Bytes()
	if err != nil {
		return "", fmt.Errorf("image: %w", err)
	}

	instruction, err := c.prompts.RenderVisual(prompts.VisualParams{
		Role:     role,
		Intent:   intent,
		Language: lang.DisplayName(),
	})
	if err != nil {
		return "", fmt.Errorf("render prompt: %w", err)
	}

	contents := []*genai.Content{
		genai.NewContentFromParts([]*genai.Part{
			genai.NewPartFromBytes(data, uri.MIMEType),
			genai.NewPartFromText(instruction),
		}, genai.RoleUser),
	}

	resp, err := c.call(ctx, c.visionModel, contents, nil)
	if err != nil {
		return "", err
	}
	return responseText(resp), nil
}
