package semantic

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/signbridge-labs/signbridge-core/internal/config"
)

type geminiResolver struct {
	endpoint    string
	model       string
	apiKey      string
	temperature float64
	httpClient  *http.Client
}

// NewGeminiResolver builds the hosted intent backend. The endpoint is the
// API base URL without a trailing path.
func NewGeminiResolver(cfg config.SemanticConfig, apiKey string) Resolver {
	timeout := time.Duration(cfg.TimeoutMS) * time.Millisecond
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &geminiResolver{
		endpoint:    strings.TrimRight(cfg.Endpoint, "/"),
		model:       cfg.Model,
		apiKey:      apiKey,
		temperature: cfg.Temperature,
		httpClient:  &http.Client{Timeout: timeout},
	}
}

type geminiRequest struct {
	Contents         []geminiContent `json:"contents"`
	GenerationConfig geminiGenConfig `json:"generationConfig"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiGenConfig struct {
	Temperature float64 `json:"temperature,omitempty"`
}

type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []geminiPart `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

func (g *geminiResolver) Resolve(ctx context.Context, text string, vocabulary []string) ([]Candidate, error) {
	prompt, err := buildPrompt(text, vocabulary)
	if err != nil {
		return nil, err
	}
	payload := geminiRequest{
		Contents:         []geminiContent{{Parts: []geminiPart{{Text: prompt}}}},
		GenerationConfig: geminiGenConfig{Temperature: g.temperature},
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal gemini request: %w", err)
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent", g.endpoint, g.model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create gemini request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", g.apiKey)

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("gemini request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read gemini response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("gemini returned status %d: %s", resp.StatusCode, string(respBody))
	}

	var parsed geminiResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return nil, fmt.Errorf("parse gemini response: %w", err)
	}
	if parsed.Error != nil {
		return nil, fmt.Errorf("gemini error: %s", parsed.Error.Message)
	}
	if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 {
		return nil, fmt.Errorf("gemini returned no candidates")
	}

	return parseCandidates(parsed.Candidates[0].Content.Parts[0].Text)
}

func buildPrompt(text string, vocabulary []string) (string, error) {
	vocabJSON, err := json.Marshal(vocabulary)
	if err != nil {
		return "", fmt.Errorf("marshal vocabulary: %w", err)
	}
	return fmt.Sprintf(`You are an assistant that maps spoken text to sign language vocabulary.

Given the input text, identify which words from the available vocabulary should be used to represent the meaning.

Available vocabulary: %s

Input text: %q

Rules:
1. Only return words that are in the available vocabulary list
2. Consider synonyms and semantic meaning (e.g., "I don't get it" should match "confused")
3. Return words in the order they should be signed
4. Include a confidence score (0.0-1.0) for each match
5. For words with no good match, skip them

Return a JSON array of objects with format:
[{"word": "vocabulary_word", "confidence": 0.95, "matched_from": "original_word_or_phrase"}]

Only return the JSON array, no other text.`, vocabJSON, text), nil
}

// parseCandidates decodes a model reply, tolerating a markdown code fence
// around the JSON array.
func parseCandidates(reply string) ([]Candidate, error) {
	reply = strings.TrimSpace(reply)
	if strings.HasPrefix(reply, "```") {
		lines := strings.Split(reply, "\n")
		if len(lines) >= 2 {
			reply = strings.Join(lines[1:len(lines)-1], "\n")
		}
	}
	var out []Candidate
	if err := json.Unmarshal([]byte(reply), &out); err != nil {
		return nil, fmt.Errorf("decode candidates: %w", err)
	}
	return out, nil
}
