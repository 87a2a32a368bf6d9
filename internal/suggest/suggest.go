// Package suggest talks to the Gemini generateContent API to produce recipe
// ideas and cooking tips for the storefront. It is a best-effort
// collaborator: any failure, including simply not having an API key, degrades
// to a fixed display-ready string and never touches store state.
package suggest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

const defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"

// Fallback strings returned when the service is disabled, unreachable or
// gives an empty answer.
const (
	fallbackRecipeDisabled = "AI features are disabled (Missing API Key). Try making a simple salad!"
	fallbackRecipeEmpty    = "Could not generate a recipe at this time."
	fallbackRecipeError    = "Sorry, I couldn't cook up a recipe right now. Please try again later."
	fallbackTipDisabled    = "Great choice for your kitchen!"
	fallbackTipError       = "Fresh and healthy!"
)

// Client is a one-attempt, bounded-time Gemini client. An empty API key is a
// valid configuration meaning "disabled".
type Client struct {
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client
	logger     zerolog.Logger
}

func NewClient(apiKey, model string, timeout time.Duration, logger zerolog.Logger) *Client {
	if model == "" {
		model = "gemini-2.5-flash"
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		apiKey:     apiKey,
		model:      model,
		baseURL:    defaultBaseURL,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

// Enabled reports whether an API key is configured.
func (c *Client) Enabled() bool {
	return c.apiKey != ""
}

// RecipeSuggestion returns a short recipe for the given ingredient names, or
// a fallback string. It never returns an error to the caller.
func (c *Client) RecipeSuggestion(ctx context.Context, ingredients []string) string {
	if !c.Enabled() {
		return fallbackRecipeDisabled
	}

	prompt := fmt.Sprintf(
		"I have the following ingredients: %s. Suggest a simple, delicious recipe I can make with these "+
			"(and common pantry staples like salt, oil, spices). Keep the response concise, under 200 words, "+
			"formatted as a markdown list of steps.",
		strings.Join(ingredients, ", "),
	)

	text, err := c.generate(ctx, prompt)
	if err != nil {
		c.logger.Warn().Err(err).Msg("recipe suggestion failed")
		return fallbackRecipeError
	}
	if text == "" {
		return fallbackRecipeEmpty
	}
	return text
}

// CookingTip returns a one-sentence usage idea for a product, or a fallback.
func (c *Client) CookingTip(ctx context.Context, productName string) string {
	if !c.Enabled() {
		return fallbackTipDisabled
	}

	prompt := fmt.Sprintf("Give me one quick, unique 1-sentence cooking tip or usage idea for %s.", productName)

	text, err := c.generate(ctx, prompt)
	if err != nil {
		c.logger.Warn().Err(err).Msg("cooking tip failed")
		return fallbackTipError
	}
	if text == "" {
		return fallbackTipError
	}
	return text
}

type generateRequest struct {
	Contents []content `json:"contents"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

// generate performs a single generateContent call. No retries: the UI shows a
// fallback instead of waiting.
func (c *Client) generate(ctx context.Context, prompt string) (string, error) {
	reqBody := generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
	}
	payload, err := json.Marshal(reqBody)
	if err != nil {
		return "", err
	}

	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", c.baseURL, c.model, c.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("gemini status %d", resp.StatusCode)
	}

	var parsed generateResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", err
	}
	if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 {
		return "", nil
	}
	return strings.TrimSpace(parsed.Candidates[0].Content.Parts[0].Text), nil
}
