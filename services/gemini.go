package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"

	"pitchcraft-server/apperr"
)

// PitchContent holds the seven generated fields of a pitch.
type PitchContent struct {
	ProjectName            string `json:"projectName"`
	Tagline                string `json:"tagline"`
	ProblemStatement       string `json:"problemStatement"`
	Solution               string `json:"solution"`
	UniqueValueProposition string `json:"uniqueValueProposition"`
	TargetAudience         string `json:"targetAudience"`
	MarketOpportunity      string `json:"marketOpportunity"`
	PitchContent           string `json:"pitchContent"`
}

// GenerateResult tags the produced content so callers can tell real model
// output from the canned fallback without matching on its text.
type GenerateResult struct {
	Content  PitchContent
	Fallback bool
}

// PitchGenerator is the contract the lifecycle service depends on.
type PitchGenerator interface {
	GeneratePitch(ctx context.Context, ideaDescription string) GenerateResult
	ImprovePitch(ctx context.Context, currentPitch, improvements string) (string, error)
}

// GeminiClient calls the Gemini generateContent endpoint. The HTTP client
// and endpoint URL are injected so tests can substitute a local server.
type GeminiClient struct {
	apiKey     string
	apiURL     string
	httpClient *http.Client
}

func NewGeminiClient(apiKey, apiURL string, httpClient *http.Client) *GeminiClient {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &GeminiClient{
		apiKey:     apiKey,
		apiURL:     apiURL,
		httpClient: httpClient,
	}
}

type geminiRequest struct {
	Contents         []geminiContent  `json:"contents"`
	GenerationConfig generationConfig `json:"generationConfig"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type generationConfig struct {
	Temperature     float64 `json:"temperature"`
	TopK            int     `json:"topK"`
	TopP            float64 `json:"topP"`
	MaxOutputTokens int     `json:"maxOutputTokens"`
}

type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []geminiPart `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

const generatePromptTemplate = `You are an expert startup pitch consultant. Based on the following idea, create a comprehensive and compelling pitch deck content.

Idea Description: %s

Please provide a structured response in the following JSON format:
{
  "projectName": "An innovative and catchy name for the project",
  "tagline": "A short, memorable tagline (max 10 words)",
  "problemStatement": "Clearly describe the problem this idea solves (2-3 sentences)",
  "solution": "Explain how this idea solves the problem (3-4 sentences)",
  "uniqueValueProposition": "What makes this solution unique and better than alternatives (2-3 sentences)",
  "targetAudience": "Who will benefit from this solution (1-2 sentences)",
  "marketOpportunity": "Brief overview of market size and potential (2-3 sentences)",
  "pitchContent": "A complete elevator pitch (100-150 words) that can be presented to investors"
}

Make it professional, persuasive, and investor-ready. Use clear, engaging language.`

const improvePromptTemplate = `You are an expert pitch consultant. Improve the following pitch based on these specific requirements:

Current Pitch Content: %s

Improvements Needed: %s

Please provide an improved version that addresses these requirements while maintaining professionalism and persuasiveness. Return only the improved pitch content (no JSON, just the text).`

// GeneratePitch asks the model for the seven pitch fields. On any failure
// (network, non-2xx, missing candidate, malformed or absent JSON) it returns
// the fixed fallback payload instead of an error, tagged Fallback.
func (c *GeminiClient) GeneratePitch(ctx context.Context, ideaDescription string) GenerateResult {
	prompt := fmt.Sprintf(generatePromptTemplate, ideaDescription)

	text, err := c.complete(ctx, prompt, 2048)
	if err != nil {
		log.Printf("Gemini API error: %v, using fallback pitch content", err)
		return GenerateResult{Content: fallbackPitch, Fallback: true}
	}

	raw, ok := extractJSONObject(text)
	if !ok {
		log.Println("Gemini reply contained no JSON object, using fallback pitch content")
		return GenerateResult{Content: fallbackPitch, Fallback: true}
	}

	var content PitchContent
	if err := json.Unmarshal([]byte(raw), &content); err != nil {
		log.Printf("failed to parse Gemini JSON: %v, using fallback pitch content", err)
		return GenerateResult{Content: fallbackPitch, Fallback: true}
	}

	return GenerateResult{Content: content}
}

// ImprovePitch rewrites the pitch body per the instructions. Unlike
// GeneratePitch there is no fallback: failures surface as errors.
func (c *GeminiClient) ImprovePitch(ctx context.Context, currentPitch, improvements string) (string, error) {
	prompt := fmt.Sprintf(improvePromptTemplate, currentPitch, improvements)

	text, err := c.complete(ctx, prompt, 1024)
	if err != nil {
		log.Printf("Gemini API error: %v", err)
		return "", apperr.External("Failed to improve pitch. Please try again later.", err)
	}

	return strings.TrimSpace(text), nil
}

// complete performs one generateContent round trip and returns the first
// candidate's text.
func (c *GeminiClient) complete(ctx context.Context, prompt string, maxOutputTokens int) (string, error) {
	reqBody := geminiRequest{
		Contents: []geminiContent{
			{Parts: []geminiPart{{Text: prompt}}},
		},
		GenerationConfig: generationConfig{
			Temperature:     0.7,
			TopK:            40,
			TopP:            0.95,
			MaxOutputTokens: maxOutputTokens,
		},
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return "", err
	}

	url := c.apiURL + "?key=" + c.apiKey
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

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("generation endpoint returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var geminiResp geminiResponse
	if err := json.Unmarshal(body, &geminiResp); err != nil {
		return "", fmt.Errorf("malformed generation response: %w", err)
	}

	if len(geminiResp.Candidates) == 0 || len(geminiResp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("generation response contained no candidates")
	}

	return geminiResp.Candidates[0].Content.Parts[0].Text, nil
}

// extractJSONObject returns the first balanced {...} substring of text.
// Brace characters inside JSON strings are accounted for.
func extractJSONObject(text string) (string, bool) {
	start := strings.IndexByte(text, '{')
	if start < 0 {
		return "", false
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(text); i++ {
		ch := text[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case ch == '\\':
				escaped = true
			case ch == '"':
				inString = false
			}
			continue
		}
		switch ch {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return text[start : i+1], true
			}
		}
	}
	return "", false
}
