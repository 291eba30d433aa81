package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"google.golang.org/genai"

	"storyboard/pkg/prompts"
)

const noReference = "None"

var audioSuggestionSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"audio":  {Type: genai.TypeString, Description: "Ambient audio description"},
		"sfx":    {Type: genai.TypeString, Description: "Sound effects"},
		"bgm":    {Type: genai.TypeString, Description: "Background music direction"},
		"dialog": {Type: genai.TypeString, Description: "Dialog tweak"},
	},
	Required: []string{"audio", "sfx", "bgm", "dialog"},
}

type AudioSuggestion struct {
	Audio  string `json:"audio"`
	SFX    string `json:"sfx"`
	BGM    string `json:"bgm"`
	Dialog string `json:"dialog"`
}

type AudioRequest struct {
	Action   string
	Duration float64 // seconds
	Language Language
	BGM      string // previous background music reference, optional
	Dialog   string // previous dialog reference, optional
}

// SyncAudio suggests ambient audio, SFX, BGM and dialog for a shot. It returns
// nil without an error when the model sends no text or text that is not valid
// JSON; those failures are logged rather than surfaced.
func (c *Client) SyncAudio(ctx context.Context, req AudioRequest) (*AudioSuggestion, error) {
	prompt, err := c.prompts.RenderAudio(prompts.AudioParams{
		Action:   req.Action,
		Duration: req.Duration,
		BGM:      orNone(req.BGM),
		Dialog:   orNone(req.Dialog),
		Language: req.Language.DisplayName(),
	})
	if err != nil {
		return nil, fmt.Errorf("render prompt: %w", err)
	}

	config := &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   audioSuggestionSchema,
	}

	resp, err := c.call(ctx, c.audioModel, genai.Text(prompt), config)
	if err != nil {
		return nil, err
	}

	return parseAudioSuggestion(responseText(resp)), nil
}

func parseAudioSuggestion(text string) *AudioSuggestion {
	if text == "" {
		slog.Debug("Audio sync returned no text")
		return nil
	}

	// a JSON null leaves suggestion nil
	var suggestion *AudioSuggestion
	if err := json.Unmarshal([]byte(text), &suggestion); err != nil {
		slog.Error("Failed to parse audio sync JSON", "error", err)
		return nil
	}
	return suggestion
}

func orNone(s string) string {
	if s == "" {
		return noReference
	}
	return s
}
