package extract

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"

	"github.com/jroosing/mailreply/internal/config"
)

// Provider sends a prompt to a language model and returns its text answer.
type Provider interface {
	Name() string
	Complete(ctx context.Context, prompt string) (string, error)
}

// ErrMissingAPIKey is returned when the configured key variable is unset.
var ErrMissingAPIKey = errors.New("missing provider API key")

const (
	geminiEndpointFmt = "https://generativelanguage.googleapis.com/v1beta/models/%s:generateContent"
	openaiEndpoint    = "https://api.openai.com/v1/chat/completions"
	ollamaEndpoint    = "http://localhost:11434/v1/chat/completions"

	// Low temperature keeps the JSON shape stable between calls.
	temperature = 0.1
)

type adapter struct {
	buildRequest  func(cfg config.ProviderConfig, prompt string) ([]byte, error)
	parseResponse func(body []byte) (string, error)
	setHeaders    func(req *http.Request, apiKey string)
}

type httpProvider struct {
	name       string
	endpoint   string
	apiKey     string
	cfg        config.ProviderConfig
	httpClient *http.Client
	adapter    adapter
}

// NewProvider builds the provider named in cfg. cfg must already be validated.
// A nil client gets one with cfg.TimeoutDuration.
func NewProvider(cfg config.ProviderConfig, client *http.Client) (Provider, error) {
	if client == nil {
		client = &http.Client{Timeout: cfg.TimeoutDuration}
	}

	apiKey := ""
	if cfg.APIKeyEnv != "" {
		apiKey = strings.TrimSpace(os.Getenv(cfg.APIKeyEnv))
	}

	p := &httpProvider{
		name:       cfg.Name,
		endpoint:   cfg.Endpoint,
		apiKey:     apiKey,
		cfg:        cfg,
		httpClient: client,
	}

	switch cfg.Name {
	case config.ProviderGemini:
		if p.endpoint == "" {
			p.endpoint = fmt.Sprintf(geminiEndpointFmt, url.PathEscape(cfg.Model))
		}
		p.adapter = geminiAdapter()
	case config.ProviderOpenAI:
		if p.endpoint == "" {
			p.endpoint = openaiEndpoint
		}
		p.adapter = chatCompletionAdapter()
	case config.ProviderOllama:
		if p.endpoint == "" {
			p.endpoint = ollamaEndpoint
		}
		p.adapter = chatCompletionAdapter()
	default:
		return nil, fmt.Errorf("unsupported provider: %s", cfg.Name)
	}

	if apiKey == "" && cfg.Name != config.ProviderOllama {
		return nil, fmt.Errorf("%w: set %s", ErrMissingAPIKey, cfg.APIKeyEnv)
	}

	return p, nil
}

func (p *httpProvider) Name() string {
	return p.name
}

func (p *httpProvider) Complete(ctx context.Context, prompt string) (string, error) {
	body, err := p.adapter.buildRequest(p.cfg, prompt)
	if err != nil {
		return "", fmt.Errorf("%s: build request: %w", p.name, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("%s: create request: %w", p.name, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	p.adapter.setHeaders(req, p.apiKey)

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%s: http request: %w", p.name, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", fmt.Errorf("%s: read response: %w", p.name, err)
	}

	if resp.StatusCode >= 400 {
		snippet := raw
		if len(snippet) > 256 {
			snippet = snippet[:256]
		}
		return "", fmt.Errorf("%s: unexpected status %d: %s", p.name, resp.StatusCode, strings.TrimSpace(string(snippet)))
	}

	text, err := p.adapter.parseResponse(raw)
	if err != nil {
		return "", fmt.Errorf("%s: decode response: %w", p.name, err)
	}
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("%s: empty completion", p.name)
	}
	return text, nil
}

// ============================================================================
// Gemini generateContent
// ============================================================================

func geminiAdapter() adapter {
	return adapter{
		buildRequest:  buildGeminiRequest,
		parseResponse: parseGeminiResponse,
		setHeaders: func(req *http.Request, apiKey string) {
			req.Header.Set("x-goog-api-key", apiKey)
		},
	}
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiContent struct {
	Role  string       `json:"role,omitempty"`
	Parts []geminiPart `json:"parts"`
}

type geminiRequest struct {
	Contents         []geminiContent `json:"contents"`
	GenerationConfig struct {
		Temperature     float64 `json:"temperature"`
		MaxOutputTokens int     `json:"maxOutputTokens,omitempty"`
	} `json:"generationConfig"`
}

func buildGeminiRequest(cfg config.ProviderConfig, prompt string) ([]byte, error) {
	var r geminiRequest
	r.Contents = []geminiContent{{Role: "user", Parts: []geminiPart{{Text: prompt}}}}
	r.GenerationConfig.Temperature = temperature
	r.GenerationConfig.MaxOutputTokens = cfg.MaxTokens
	return json.Marshal(r)
}

func parseGeminiResponse(body []byte) (string, error) {
	var response struct {
		Candidates []struct {
			Content geminiContent `json:"content"`
		} `json:"candidates"`
	}
	if err := json.Unmarshal(body, &response); err != nil {
		return "", err
	}
	if len(response.Candidates) == 0 {
		return "", nil
	}

	var sb strings.Builder
	for _, part := range response.Candidates[0].Content.Parts {
		sb.WriteString(part.Text)
	}
	return strings.TrimSpace(sb.String()), nil
}

// ============================================================================
// OpenAI-compatible chat completions (OpenAI, Ollama)
// ============================================================================

func chatCompletionAdapter() adapter {
	return adapter{
		buildRequest:  buildChatCompletionRequest,
		parseResponse: parseChatCompletionResponse,
		setHeaders: func(req *http.Request, apiKey string) {
			if apiKey != "" {
				req.Header.Set("Authorization", "Bearer "+apiKey)
			}
		},
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	MaxTokens   int           `json:"max_tokens,omitempty"`
	Temperature float64       `json:"temperature"`
}

func buildChatCompletionRequest(cfg config.ProviderConfig, prompt string) ([]byte, error) {
	return json.Marshal(chatCompletionRequest{
		Model: cfg.Model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: prompt},
		},
		MaxTokens:   cfg.MaxTokens,
		Temperature: temperature,
	})
}

func parseChatCompletionResponse(body []byte) (string, error) {
	var response struct {
		Choices []struct {
			Message chatMessage `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(body, &response); err != nil {
		return "", err
	}
	if len(response.Choices) == 0 {
		return "", nil
	}
	return strings.TrimSpace(response.Choices[0].Message.Content), nil
}
