// Package speech provides audio transcription via the SiliconFlow API.
//
// Go Pattern: We use the standard net/http package to make API calls.
// Unlike JavaScript's fetch, Go's http.Client gives us full control
// over timeouts, retries, and connection reuse.
//
// The SiliconFlow transcription endpoint accepts multipart form uploads
// (audio files) and returns transcribed text. When no API key is
// configured, or the API call fails, callers should fall back to
// SampleTranscript so the rest of the pipeline stays usable offline.
package speech

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"
)

// DefaultModel is SiliconFlow's recommended speech recognition model.
const DefaultModel = "FunAudioLLM/SenseVoiceSmall"

const transcriptionURL = "https://api.siliconflow.cn/v1/audio/transcriptions"

// Result holds the output of a transcription call.
type Result struct {
	Text     string  `json:"text"`
	Duration float64 `json:"duration"` // seconds; estimated when the API omits it
}

// apiResponse covers the response shapes SiliconFlow has been observed
// to return. Some deployments use "text", others "transcription".
type apiResponse struct {
	Text          string  `json:"text"`
	Transcription string  `json:"transcription"`
	Duration      float64 `json:"duration"`
}

// Transcriber handles audio transcription via the SiliconFlow API.
type Transcriber struct {
	apiKey     string
	model      string
	httpClient *http.Client
}

// NewTranscriber creates a new Transcriber. An empty model selects
// DefaultModel.
func NewTranscriber(apiKey, model string) *Transcriber {
	if model == "" {
		model = DefaultModel
	}
	return &Transcriber{
		apiKey: apiKey,
		model:  model,
		httpClient: &http.Client{
			// Transcription can take a while for long audio files
			Timeout: 5 * time.Minute,
		},
	}
}

// IsConfigured returns true if the SiliconFlow API key is set.
func (t *Transcriber) IsConfigured() bool {
	return t.apiKey != ""
}

// Transcribe sends an audio file to the SiliconFlow API and returns the
// transcription.
//
// Go Pattern: We build a multipart form body manually. In Go,
// multipart.Writer handles the boundary generation and MIME encoding —
// similar to FormData in JS.
func (t *Transcriber) Transcribe(ctx context.Context, audioData io.Reader, filename string) (*Result, error) {
	if !t.IsConfigured() {
		return nil, fmt.Errorf("SiliconFlow API key not configured; set SILICONFLOW_API_KEY environment variable")
	}

	// Build multipart form body
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	if err := writer.WriteField("model", t.model); err != nil {
		return nil, fmt.Errorf("failed to write model field: %w", err)
	}

	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return nil, fmt.Errorf("failed to create form file: %w", err)
	}

	if _, err := io.Copy(part, audioData); err != nil {
		return nil, fmt.Errorf("failed to copy audio data: %w", err)
	}

	// Close the writer to finalize the multipart body
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("failed to close multipart writer: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", transcriptionURL, &body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+t.apiKey)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := t.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("SiliconFlow API request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("SiliconFlow API returned status %d: %s", resp.StatusCode, string(respBody))
	}

	return parseResponse(respBody)
}

// parseResponse extracts the transcript text from whichever response
// shape the API used.
func parseResponse(respBody []byte) (*Result, error) {
	var apiResp apiResponse
	if err := json.Unmarshal(respBody, &apiResp); err != nil {
		// Some error paths return a bare JSON string
		var plain string
		if jsonErr := json.Unmarshal(respBody, &plain); jsonErr == nil && plain != "" {
			return &Result{Text: plain, Duration: EstimateDuration(plain)}, nil
		}
		return nil, fmt.Errorf("failed to parse SiliconFlow response: %w", err)
	}

	text := apiResp.Text
	if text == "" {
		text = apiResp.Transcription
	}
	if text == "" {
		return nil, fmt.Errorf("SiliconFlow response contained no transcript text")
	}

	duration := apiResp.Duration
	if duration <= 0 {
		duration = EstimateDuration(text)
	}

	return &Result{Text: text, Duration: duration}, nil
}

// EstimateDuration approximates audio length in seconds from transcript
// word count, assuming a typical lecture pace of 150 words per minute.
func EstimateDuration(text string) float64 {
	words := len(strings.Fields(text))
	if words == 0 {
		return 0
	}
	return float64(words) / 2.5
}
