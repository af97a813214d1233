package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
)

const (
	defaultAPIURL         = "https://api.openai.com/v1"
	defaultChatModel      = "gpt-4o-mini"
	defaultTranscribeModel = "gpt-4o-mini-transcribe"
)

// Client is an OpenAI-compatible API client covering the two endpoints
// the service needs: chat completions and audio transcription.
type Client struct {
	apiKey          string
	apiURL          string
	chatModel       string
	transcribeModel string
	httpClient      *http.Client
}

// NewClient creates a new client with the given API key.
func NewClient(apiKey string) *Client {
	return &Client{
		apiKey:          apiKey,
		apiURL:          defaultAPIURL,
		chatModel:       defaultChatModel,
		transcribeModel: defaultTranscribeModel,
		httpClient:      &http.Client{},
	}
}

// SetAPIURL overrides the API base URL, for tests or compatible gateways.
func (c *Client) SetAPIURL(url string) {
	c.apiURL = strings.TrimSuffix(url, "/")
}

// SetChatModel overrides the chat completion model.
func (c *Client) SetChatModel(model string) {
	if model != "" {
		c.chatModel = model
	}
}

// SetTranscribeModel overrides the transcription model.
func (c *Client) SetTranscribeModel(model string) {
	if model != "" {
		c.transcribeModel = model
	}
}

// ChatCompletion sends a chat completion request.
func (c *Client) ChatCompletion(ctx context.Context, req ChatRequest) (*ChatResponse, error) {
	if req.Model == "" {
		req.Model = c.chatModel
	}

	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("openai: failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.apiURL+"/chat/completions", bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("openai: failed to create request: %w", err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("openai: API call failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("openai: API error %d: %s", resp.StatusCode, string(raw))
	}

	var out ChatResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("openai: failed to decode response: %w", err)
	}
	return &out, nil
}

// Transcribe uploads audio bytes to the transcription endpoint and
// returns the plain-text transcript.
func (c *Client) Transcribe(ctx context.Context, filename string, audio []byte) (string, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	part, err := mw.CreateFormFile("file", filename)
	if err != nil {
		return "", fmt.Errorf("openai: failed to build upload: %w", err)
	}
	if _, err := part.Write(audio); err != nil {
		return "", fmt.Errorf("openai: failed to build upload: %w", err)
	}
	_ = mw.WriteField("model", c.transcribeModel)
	_ = mw.WriteField("response_format", "text")
	if err := mw.Close(); err != nil {
		return "", fmt.Errorf("openai: failed to finalize upload: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.apiURL+"/audio/transcriptions", &buf)
	if err != nil {
		return "", fmt.Errorf("openai: failed to create request: %w", err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)
	httpReq.Header.Set("Content-Type", mw.FormDataContentType())

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("openai: transcription call failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("openai: transcription error %d: %s", resp.StatusCode, string(raw))
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("openai: failed to read transcript: %w", err)
	}
	return strings.TrimSpace(string(raw)), nil
}
