// Package ranking ranks transcript keywords with an LLM via OpenRouter.
//
// OpenRouter provides a unified API for multiple LLM providers (OpenAI,
// Anthropic, Google, etc.) using a single API key. The request format
// follows the OpenAI chat completions standard.
//
// The service implements the exercise engine's Ranker interface. Any
// error here makes the engine fall back to local frequency ranking, so
// failures are reported, never swallowed.
package ranking

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"
	"unicode"
)

// Limits on how much text we feed the model. Long lectures would blow
// past token limits otherwise; the opening minutes carry the topic.
const (
	maxTranscriptChars = 3000
	maxAuxiliaryChars  = 1000
)

// Service ranks keywords through OpenRouter chat completions.
type Service struct {
	apiKey     string
	model      string
	httpClient *http.Client
}

// New creates a new ranking service.
func New(apiKey, model string) *Service {
	return &Service{
		apiKey: apiKey,
		model:  model,
		// Go Pattern: Always configure timeouts on HTTP clients.
		// The default http.Client has NO timeout — requests can hang forever!
		httpClient: &http.Client{
			Timeout: 120 * time.Second, // LLMs can be slow
		},
	}
}

// IsConfigured returns true if the OpenRouter API key is set.
func (s *Service) IsConfigured() bool {
	return s.apiKey != ""
}

// --- OpenRouter API types ---
// These match the OpenAI chat completions format used by OpenRouter.

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
		Code    int    `json:"code"`
	} `json:"error"`
}

// Rank asks the model for the most important listening-comprehension
// keywords in the transcript. Implements exercise.Ranker.
func (s *Service) Rank(ctx context.Context, transcript, auxiliary string, target int) ([]string, error) {
	if !s.IsConfigured() {
		return nil, fmt.Errorf("OpenRouter API key not configured; set OPENROUTER_API_KEY")
	}

	prompt := buildPrompt(transcript, auxiliary, target)

	log.Printf("🤖 Ranking keywords with %s (target %d)", s.model, target)

	reqBody := chatRequest{
		Model: s.model,
		Messages: []chatMessage{
			{
				Role:    "system",
				Content: "You are a language-learning assistant. You pick the content words a listener most needs to catch to understand a spoken passage.",
			},
			{
				Role:    "user",
				Content: prompt,
			},
		},
	}

	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST",
		"https://openrouter.ai/api/v1/chat/completions",
		bytes.NewReader(jsonBody),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+s.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("OpenRouter request failed: %w", err)
	}
	defer resp.Body.Close() // Go Pattern: ALWAYS close response bodies!

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("OpenRouter returned %d: %s", resp.StatusCode, string(body))
	}

	var chatResp chatResponse
	if err := json.Unmarshal(body, &chatResp); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	if chatResp.Error != nil {
		return nil, fmt.Errorf("OpenRouter error: %s", chatResp.Error.Message)
	}

	if len(chatResp.Choices) == 0 {
		return nil, fmt.Errorf("no response from model")
	}

	words := parseWordList(chatResp.Choices[0].Message.Content, target)
	if len(words) == 0 {
		return nil, fmt.Errorf("model response contained no usable keywords")
	}

	return words, nil
}

// buildPrompt constructs the keyword ranking prompt.
func buildPrompt(transcript, auxiliary string, target int) string {
	if len(transcript) > maxTranscriptChars {
		transcript = transcript[:maxTranscriptChars]
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, `Select the %d most important keywords from this listening transcript.

Pick content words (nouns, verbs, adjectives) that carry the meaning of the passage. Skip function words. Respond with one lowercase word per line and nothing else — no numbering, no explanations.

Transcript:
%s`, target, transcript)

	if auxiliary != "" {
		if len(auxiliary) > maxAuxiliaryChars {
			auxiliary = auxiliary[:maxAuxiliaryChars]
		}
		fmt.Fprintf(&sb, "\n\nThe exercise questions below show what the learner will be asked about; weight words relevant to them:\n%s", auxiliary)
	}

	return sb.String()
}

// parseWordList extracts words from the model output, tolerating the
// numbering and punctuation models add despite instructions.
func parseWordList(content string, target int) []string {
	seen := make(map[string]bool)
	var words []string

	for _, line := range strings.Split(content, "\n") {
		// Strip enumeration ("1.", "- ", "* ") and punctuation
		word := strings.ToLower(strings.TrimFunc(line, func(r rune) bool {
			return !unicode.IsLetter(r)
		}))
		// Lines with multiple tokens are chatter, not keywords
		if strings.ContainsAny(word, " \t") {
			continue
		}
		if len(word) <= 2 || seen[word] {
			continue
		}
		seen[word] = true
		words = append(words, word)
		if len(words) == target {
			break
		}
	}

	return words
}
