package gemini

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mm-voicenote-be/internal/entity"
	"mm-voicenote-be/internal/pkg/apperrors"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c := NewClient("test-key", "test-model")
	c.baseURL = srv.URL
	return c
}

func candidateBody(t *testing.T, payload interface{}) []byte {
	t.Helper()
	inner, err := json.Marshal(payload)
	require.NoError(t, err)

	body, err := json.Marshal(GenerateResponse{
		Candidates: []*Candidate{{
			Content: &Content{Parts: []*Part{{Text: string(inner)}}},
		}},
	})
	require.NoError(t, err)
	return body
}

func TestProcessAudioDecodesSchema(t *testing.T) {
	want := NoteAnalysis{
		OriginalText: "raw",
		RefinedText:  "refined",
		Summary:      "sum",
		Keywords:     []string{"a", "b"},
		Category:     "Work",
		Title:        "Title",
	}

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-key", r.Header.Get("x-goog-api-key"))
		assert.Equal(t, http.MethodPost, r.Method)

		var req GenerateRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Len(t, req.Contents, 1)
		require.Len(t, req.Contents[0].Parts, 2)
		assert.NotNil(t, req.Contents[0].Parts[0].InlineData)
		assert.Equal(t, "audio/webm", req.Contents[0].Parts[0].InlineData.MimeType)

		w.Write(candidateBody(t, want))
	})

	got, err := client.ProcessAudio(context.Background(), []byte("opus frames"), "audio/webm")
	require.NoError(t, err)
	assert.Equal(t, &want, got)
}

func TestGenerateReportDecodesSchema(t *testing.T) {
	want := ReportAnalysis{
		TopTopics:       []string{"t1"},
		Insights:        "i",
		Recommendations: "r",
	}

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write(candidateBody(t, want))
	})

	notes := []*entity.VoiceNote{{Title: "n", RefinedText: "text", Summary: "s"}}
	got, err := client.GenerateReport(context.Background(), notes, entity.PeriodWeekly)
	require.NoError(t, err)
	assert.Equal(t, &want, got)
}

func TestClientNon200IsGatewayError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	})

	_, err := client.ProcessAudio(context.Background(), []byte("x"), "audio/webm")
	assert.True(t, errors.Is(err, apperrors.ErrGateway))
}

func TestClientEmptyCandidatesIsGatewayError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"candidates":[]}`))
	})

	_, err := client.GenerateReport(context.Background(), []*entity.VoiceNote{{}}, entity.PeriodDaily)
	assert.True(t, errors.Is(err, apperrors.ErrGateway))
}
