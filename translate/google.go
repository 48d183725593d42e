package translate

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// DefaultGoogleBaseURL is the Cloud Translation v2 endpoint.
const DefaultGoogleBaseURL = "https://translation.googleapis.com/language/translate/v2"

// GoogleAPI is the remote batch capability backed by the Google Cloud
// Translation v2 REST API with API-key authentication.
type GoogleAPI struct {
	// APIKey is the Cloud Translation API key.
	APIKey string
	// BaseURL overrides the API endpoint (tests, proxies).
	BaseURL string
	// SourceLang and TargetLang are the language pair (default zh-CN → en).
	SourceLang string
	TargetLang string
	// Client is the HTTP client (default: 60s timeout).
	Client *http.Client
}

// NewGoogleAPI returns a zh-CN → en client for the given API key.
func NewGoogleAPI(apiKey string) *GoogleAPI {
	return &GoogleAPI{
		APIKey:     apiKey,
		BaseURL:    DefaultGoogleBaseURL,
		SourceLang: "zh-CN",
		TargetLang: "en",
		Client:     &http.Client{Timeout: 60 * time.Second},
	}
}

// Name implements Remote.
func (g *GoogleAPI) Name() string { return "google" }

// Verify checks the API key with a one-string probe request.
// Returns ErrUnavailable (wrapped) when the key is rejected.
func (g *GoogleAPI) Verify(ctx context.Context) error {
	probe := &GoogleAPI{
		APIKey:     g.APIKey,
		BaseURL:    g.BaseURL,
		SourceLang: "en",
		TargetLang: "es",
		Client:     g.Client,
	}
	if _, err := probe.TranslateBatch(ctx, []string{"test"}); err != nil {
		return fmt.Errorf("%w: API key validation failed: %v", ErrUnavailable, err)
	}
	return nil
}

// googleResponse mirrors the v2 API response shape.
type googleResponse struct {
	Data struct {
		Translations []struct {
			TranslatedText string `json:"translatedText"`
		} `json:"translations"`
	} `json:"data"`
}

// TranslateBatch implements Remote. A non-2xx status fails the whole batch.
func (g *GoogleAPI) TranslateBatch(ctx context.Context, texts []string) ([]string, error) {
	if g.APIKey == "" {
		return nil, ErrUnavailable
	}

	form := url.Values{
		"source": {g.SourceLang},
		"target": {g.TargetLang},
		"format": {"text"},
	}
	for _, t := range texts {
		form.Add("q", t)
	}

	endpoint := g.BaseURL + "?key=" + url.QueryEscape(g.APIKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	client := g.Client
	if client == nil {
		client = &http.Client{Timeout: 60 * time.Second}
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("calling translation API: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("reading API response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("translation API returned %s: %s", resp.Status, strings.TrimSpace(string(body)))
	}

	var parsed googleResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("parsing API response: %w", err)
	}
	if len(parsed.Data.Translations) != len(texts) {
		return nil, fmt.Errorf("API returned %d translations for %d inputs",
			len(parsed.Data.Translations), len(texts))
	}

	out := make([]string, len(texts))
	for i, tr := range parsed.Data.Translations {
		out[i] = tr.TranslatedText
	}
	return out, nil
}
