package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/oshocredit/khata_backend/internal/apperrors"
	portssvc "github.com/oshocredit/khata_backend/internal/core/ports/services"
	"github.com/oshocredit/khata_backend/internal/dto"
)

const defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"

// Client calls the Generative Language API to turn ledger digests into a
// short business summary.
type Client struct {
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client
}

// NewClient builds an advisor client. An empty apiKey is allowed; calls
// then fail with apperrors.ErrNoAPIKey so the caller can degrade to its
// fixed fallback message.
func NewClient(apiKey, model string) *Client {
	return &Client{
		apiKey:     apiKey,
		model:      model,
		baseURL:    defaultBaseURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

var _ portssvc.SummaryAdvisor = (*Client)(nil)

type generateContentRequest struct {
	Contents []content `json:"contents"`
	Config   genConfig `json:"generationConfig"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type genConfig struct {
	Temperature float64 `json:"temperature"`
}

type generateContentResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// BusinessSummary asks the model for a short Hinglish summary of the
// shopkeeper's ledger: outstandings, top dues and a tip for the day.
func (c *Client) BusinessSummary(ctx context.Context, digests []dto.PartyDigest) (string, error) {
	if c.apiKey == "" {
		return "", apperrors.ErrNoAPIKey
	}

	data, err := json.Marshal(digests)
	if err != nil {
		return "", fmt.Errorf("failed to encode ledger digest: %w", err)
	}

	prompt := fmt.Sprintf(`Analyze this shopkeeper's ledger data:
%s

Provide a short, encouraging business summary in Hinglish (Hindi + English).
Highlight the most critical recovery needed and the overall health of the business.
Format:
- Total Outstandings (Paisa lene wala)
- Top 3 due customers
- Motivational tip for the day`, string(data))

	reqBody, err := json.Marshal(generateContentRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
		Config:   genConfig{Temperature: 0.7},
	})
	if err != nil {
		return "", fmt.Errorf("failed to encode request: %w", err)
	}

	endpoint := fmt.Sprintf("%s/models/%s:generateContent?key=%s", c.baseURL, c.model, c.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(reqBody))
	if err != nil {
		return "", fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("summary request failed: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(res.Body, 1024))
		return "", fmt.Errorf("summary request returned status %d: %s", res.StatusCode, string(body))
	}

	var parsed generateContentResponse
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("failed to decode summary response: %w", err)
	}
	if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("summary response contained no text")
	}
	return parsed.Candidates[0].Content.Parts[0].Text, nil
}
