package nutrition

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/Rhysnute92/fitlog/internal/models"
)

const visionPrompt = `Identify the food in this image. Return ONLY a JSON object with: { "name": string, "calories": number, "protein": number, "carbs": number, "fat": number }. Estimate portions for a single serving.`

const defaultVisionBaseURL = "https://generativelanguage.googleapis.com/v1beta"

// VisionClient asks a generative model for a best-effort nutrition estimate
// of a meal photo. The estimate gets no special trust: it always goes through
// the same manual-confirmation path as a barcode hit.
type VisionClient struct {
	baseURL    string
	apiKey     string
	model      string
	httpClient *http.Client
}

func NewVisionClient(apiKey, model string) *VisionClient {
	return &VisionClient{
		baseURL: defaultVisionBaseURL,
		apiKey:  apiKey,
		model:   model,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

type generateRequest struct {
	Contents []struct {
		Parts []generatePart `json:"parts"`
	} `json:"contents"`
}

type generatePart struct {
	Text       string      `json:"text,omitempty"`
	InlineData *inlineData `json:"inline_data,omitempty"`
}

type inlineData struct {
	MimeType string `json:"mime_type"`
	Data     string `json:"data"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// AnalyzeMeal sends a base64 JPEG to the model and decodes its macro
// estimate.
func (c *VisionClient) AnalyzeMeal(ctx context.Context, imageBase64 string) (*models.Product, error) {
	if c.apiKey == "" {
		return nil, errors.New("no vision API key configured")
	}

	var reqBody generateRequest
	reqBody.Contents = append(reqBody.Contents, struct {
		Parts []generatePart `json:"parts"`
	}{
		Parts: []generatePart{
			{Text: visionPrompt},
			{InlineData: &inlineData{MimeType: "image/jpeg", Data: imageBase64}},
		},
	})

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return nil, err
	}

	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", c.baseURL, c.model, c.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to reach vision API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("vision API returned %s", resp.Status)
	}

	var gr generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&gr); err != nil {
		return nil, fmt.Errorf("failed to decode vision response: %w", err)
	}
	if len(gr.Candidates) == 0 || len(gr.Candidates[0].Content.Parts) == 0 {
		return nil, errors.New("vision API returned no candidates")
	}

	return parseEstimate(gr.Candidates[0].Content.Parts[0].Text)
}

// parseEstimate decodes the model's JSON, tolerating the markdown fences it
// likes to wrap answers in.
func parseEstimate(text string) (*models.Product, error) {
	text = strings.ReplaceAll(text, "```json", "")
	text = strings.ReplaceAll(text, "```", "")
	text = strings.TrimSpace(text)

	var p models.Product
	if err := json.Unmarshal([]byte(text), &p); err != nil {
		return nil, fmt.Errorf("unparsable estimate from model: %w", err)
	}
	if p.Name == "" {
		return nil, errors.New("model estimate has no food name")
	}
	return &p, nil
}
