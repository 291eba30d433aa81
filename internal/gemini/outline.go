package gemini

import (
	"context"
	"fmt"

	"google.golang.org/genai"

	"storyboard/pkg/prompts"
)

// GenerateStoryboard asks for a shotCount-shot outline built on the given
// visual context. The text is returned as-is; see package shots for parsing.
func (c *Client) GenerateStoryboard(ctx context.Context, visualContext string, shotCount int, lang Language) (string, error) {
	if shotCount < 1 {
		return "", fmt.Errorf("shot count must be positive, got %d", shotCount)
	}

	prompt, err := c.prompts.RenderOutline(prompts.OutlineParams{
		Context:   visualContext,
		ShotCount: shotCount,
		Language:  lang.DisplayName(),
	})
	if err != nil {
		return "", fmt.Errorf("render prompt: %w", err)
	}

	resp, err := c.call(ctx, c.outlineModel, genai.Text(prompt), nil)
	if err != nil {
		return "", err
	}
	return responseText(resp), nil
}
