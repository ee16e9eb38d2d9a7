package service

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/stretchr/testify/require"

	"mm-voicenote-be/internal/entity"
	"mm-voicenote-be/internal/pkg/logger"
	"mm-voicenote-be/internal/repository/contract"
	"mm-voicenote-be/internal/repository/implementation"
	"mm-voicenote-be/pkg/gemini"
	"mm-voicenote-be/pkg/kv"
)

// stubGateway counts calls and serves canned analyses, so tests can assert
// that validation failures never reach the AI service.
type stubGateway struct {
	processCalls int
	reportCalls  int
	fail         bool

	noteAnalysis   gemini.NoteAnalysis
	reportAnalysis gemini.ReportAnalysis
}

var errStubGateway = errors.New("stub gateway down")

func (g *stubGateway) ProcessAudio(_ context.Context, _ []byte, _ string) (*gemini.NoteAnalysis, error) {
	g.processCalls++
	if g.fail {
		return nil, errStubGateway
	}
	analysis := g.noteAnalysis
	return &analysis, nil
}

func (g *stubGateway) GenerateReport(_ context.Context, _ []*entity.VoiceNote, _ entity.ReportPeriod) (*gemini.ReportAnalysis, error) {
	g.reportCalls++
	if g.fail {
		return nil, errStubGateway
	}
	analysis := g.reportAnalysis
	return &analysis, nil
}

type testEnv struct {
	store      kv.Store
	log        logger.ILogger
	noteRepo   contract.NoteRepository
	reportRepo contract.ReportRepository
	publisher  IPublisherService
	gateway    *stubGateway
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	dir := t.TempDir()

	store, err := kv.NewFileStore(filepath.Join(dir, "store.json"))
	require.NoError(t, err)

	log := logger.NewZapLogger(filepath.Join(dir, "test.log"), false)
	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NewStdLogger(false, false))

	return &testEnv{
		store:      store,
		log:        log,
		noteRepo:   implementation.NewNoteRepository(store, log),
		reportRepo: implementation.NewReportRepository(store, log),
		publisher:  NewPublisherService(pubSub, "TEST_ACTIVITY"),
		gateway: &stubGateway{
			noteAnalysis: gemini.NoteAnalysis{
				OriginalText: "original transcript",
				RefinedText:  "refined text",
				Summary:      "summary",
				Keywords:     []string{"one", "two"},
				Category:     "Work",
				Title:        "Stub Title",
			},
			reportAnalysis: gemini.ReportAnalysis{
				TopTopics:       []string{"topic-a", "topic-b"},
				Insights:        "insights",
				Recommendations: "recommendations",
			},
		},
	}
}
