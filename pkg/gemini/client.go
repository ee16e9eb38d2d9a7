package gemini

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"mm-voicenote-be/internal/entity"
	"mm-voicenote-be/internal/pkg/apperrors"
)

const defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta/models"

type InlineData struct {
	MimeType string `json:"mime_type"`
	Data     string `json:"data"` // base64
}

type Part struct {
	Text       string      `json:"text,omitempty"`
	InlineData *InlineData `json:"inline_data,omitempty"`
}

type Content struct {
	Parts []*Part `json:"parts"`
	Role  string  `json:"role,omitempty"`
}

type Schema struct {
	Type       string             `json:"type"`
	Items      *Schema            `json:"items,omitempty"`
	Properties map[string]*Schema `json:"properties,omitempty"`
	Required   []string           `json:"required,omitempty"`
}

type GenerationConfig struct {
	ResponseMimeType string  `json:"response_mime_type,omitempty"`
	ResponseSchema   *Schema `json:"response_schema,omitempty"`
}

type GenerateRequest struct {
	Contents         []*Content        `json:"contents"`
	GenerationConfig *GenerationConfig `json:"generationConfig,omitempty"`
}

type Candidate struct {
	Content *Content `json:"content"`
}

type GenerateResponse struct {
	Candidates []*Candidate `json:"candidates"`
}

// Client talks to the Generative Language API over plain HTTP with the
// response constrained to JSON by a schema, so the decoded shape is stable.
type Client struct {
	apiKey     string
	noteModel  string
	baseURL    string
	httpClient *http.Client
}

func NewClient(apiKey, noteModel string) *Client {
	return &Client{
		apiKey:    apiKey,
		noteModel: noteModel,
		baseURL:   defaultBaseURL,
		httpClient: &http.Client{
			Timeout: 120 * time.Second, // audio processing is slow
		},
	}
}

const audioPrompt = `You are an elite Myanmar executive assistant.
Task:
1. Transcribe the audio precisely into Myanmar Unicode (Pyidaungsu font compatible).
2. Rewrite the transcript into a professional, formal, and concise version suitable for business reports. Remove fillers and stuttering.
3. Provide a 1-sentence summary in Myanmar.
4. Extract 5 relevant keywords.
5. Categorize the note (Work, Personal, Education, Idea, General).
6. Generate a short, punchy title in Myanmar.

Return strictly in JSON format.`

func (c *Client) ProcessAudio(ctx context.Context, audio []byte, mimeType string) (*NoteAnalysis, error) {
	req := &GenerateRequest{
		Contents: []*Content{{
			Parts: []*Part{
				{InlineData: &InlineData{
					MimeType: mimeType,
					Data:     base64.StdEncoding.EncodeToString(audio),
				}},
				{Text: audioPrompt},
			},
		}},
		GenerationConfig: &GenerationConfig{
			ResponseMimeType: "application/json",
			ResponseSchema: &Schema{
				Type: "OBJECT",
				Properties: map[string]*Schema{
					"originalText": {Type: "STRING"},
					"refinedText":  {Type: "STRING"},
					"summary":      {Type: "STRING"},
					"keywords":     {Type: "ARRAY", Items: &Schema{Type: "STRING"}},
					"category":     {Type: "STRING"},
					"title":        {Type: "STRING"},
				},
				Required: []string{"originalText", "refinedText", "summary", "keywords", "category", "title"},
			},
		},
	}

	var analysis NoteAnalysis
	if err := c.generate(ctx, req, &analysis); err != nil {
		return nil, apperrors.Gateway("process audio", err)
	}
	return &analysis, nil
}

func (c *Client) GenerateReport(ctx context.Context, notes []*entity.VoiceNote, period entity.ReportPeriod) (*ReportAnalysis, error) {
	blocks := make([]string, 0, len(notes))
	for _, n := range notes {
		blocks = append(blocks, fmt.Sprintf("Title: %s\nContent: %s\nSummary: %s", n.Title, n.RefinedText, n.Summary))
	}

	prompt := fmt.Sprintf(`Analyze these %d Myanmar voice notes from a %s period.
Create a professional summary report in Myanmar language including:
- Top Topics (as a list)
- Key Insights (behavioral patterns, productivity, progress)
- Strategic Recommendations for the user.

Notes:
%s

Return strictly in JSON format.`, len(notes), period, strings.Join(blocks, "\n---\n"))

	req := &GenerateRequest{
		Contents: []*Content{{
			Parts: []*Part{{Text: prompt}},
		}},
		GenerationConfig: &GenerationConfig{
			ResponseMimeType: "application/json",
			ResponseSchema: &Schema{
				Type: "OBJECT",
				Properties: map[string]*Schema{
					"topTopics":       {Type: "ARRAY", Items: &Schema{Type: "STRING"}},
					"insights":        {Type: "STRING"},
					"recommendations": {Type: "STRING"},
				},
				Required: []string{"topTopics", "insights", "recommendations"},
			},
		},
	}

	var analysis ReportAnalysis
	if err := c.generate(ctx, req, &analysis); err != nil {
		return nil, apperrors.Gateway("generate report", err)
	}
	return &analysis, nil
}

// generate posts the request and decodes the first candidate's text into out.
func (c *Client) generate(ctx context.Context, payload *GenerateRequest, out interface{}) error {
	payloadJson, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	url := fmt.Sprintf("%s/%s:generateContent", c.baseURL, c.noteModel)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(payloadJson))
	if err != nil {
		return err
	}
	req.Header.Set("x-goog-api-key", c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	res, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	resBody, err := io.ReadAll(res.Body)
	if err != nil {
		return err
	}

	if res.StatusCode != http.StatusOK {
		return fmt.Errorf(
			"status error, got status %d. with response body %s",
			res.StatusCode,
			string(resBody),
		)
	}

	var geminiRes GenerateResponse
	if err := json.Unmarshal(resBody, &geminiRes); err != nil {
		return err
	}
	if len(geminiRes.Candidates) == 0 || geminiRes.Candidates[0].Content == nil || len(geminiRes.Candidates[0].Content.Parts) == 0 {
		return fmt.Errorf("empty candidate response: %s", string(resBody))
	}

	return json.Unmarshal([]byte(geminiRes.Candidates[0].Content.Parts[0].Text), out)
}
