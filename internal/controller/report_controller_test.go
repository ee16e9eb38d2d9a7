package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mm-voicenote-be/internal/entity"
	"mm-voicenote-be/internal/pkg/logger"
	"mm-voicenote-be/internal/pkg/serverutils"
	"mm-voicenote-be/internal/repository/implementation"
	"mm-voicenote-be/internal/service"
	"mm-voicenote-be/pkg/events"
	"mm-voicenote-be/pkg/gemini"
	"mm-voicenote-be/pkg/kv"
)

type noopGateway struct{}

func (noopGateway) ProcessAudio(ctx context.Context, audio []byte, mimeType string) (*gemini.NoteAnalysis, error) {
	return &gemini.NoteAnalysis{}, nil
}

func (noopGateway) GenerateReport(ctx context.Context, notes []*entity.VoiceNote, period entity.ReportPeriod) (*gemini.ReportAnalysis, error) {
	return &gemini.ReportAnalysis{}, nil
}

type noopPublisher struct{}

func (noopPublisher) Publish(ctx context.Context, event events.Event) error { return nil }

func newReportApp(t *testing.T, userId string, seed []*entity.Report) *fiber.App {
	t.Helper()
	dir := t.TempDir()

	store, err := kv.NewFileStore(filepath.Join(dir, "store.json"))
	require.NoError(t, err)
	log := logger.NewZapLogger(filepath.Join(dir, "test.log"), false)
	noteRepo := implementation.NewNoteRepository(store, log)
	reportRepo := implementation.NewReportRepository(store, log)
	for _, r := range seed {
		require.NoError(t, reportRepo.Save(context.Background(), r))
	}

	svc := service.NewReportService(noteRepo, reportRepo, noopGateway{}, noopPublisher{}, log)

	app := fiber.New()
	app.Use(serverutils.ErrorHandlerMiddleware())
	auth := func(c *fiber.Ctx) error {
		c.Locals("user_id", userId)
		return c.Next()
	}
	NewReportController(svc).RegisterRoutes(app.Group("/api"), auth)
	return app
}

func seedReport(userId string, period entity.ReportPeriod) *entity.Report {
	return &entity.Report{
		Id:        "report-" + string(period),
		UserId:    userId,
		Period:    period,
		NoteCount: 1,
		Timestamp: time.Now().UnixMilli(),
	}
}

func listReports(t *testing.T, app *fiber.App, query string) (*http.Response, []*entity.Report) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/api/report/v1"+query, nil)
	res, err := app.Test(req)
	require.NoError(t, err)

	var body struct {
		Success bool `json:"success"`
		Data    struct {
			Reports []*entity.Report `json:"reports"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(res.Body).Decode(&body))
	return res, body.Data.Reports
}

func TestReportControllerListAll(t *testing.T) {
	app := newReportApp(t, "u1", []*entity.Report{
		seedReport("u1", entity.PeriodDaily),
		seedReport("u1", entity.PeriodWeekly),
	})

	res, reports := listReports(t, app, "")
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Len(t, reports, 2)
}

func TestReportControllerListFiltersByPeriod(t *testing.T) {
	app := newReportApp(t, "u1", []*entity.Report{
		seedReport("u1", entity.PeriodDaily),
		seedReport("u1", entity.PeriodWeekly),
	})

	res, reports := listReports(t, app, "?period=daily")
	assert.Equal(t, http.StatusOK, res.StatusCode)
	require.Len(t, reports, 1)
	assert.Equal(t, entity.PeriodDaily, reports[0].Period)
}

func TestReportControllerListRejectsUnknownPeriod(t *testing.T) {
	app := newReportApp(t, "u1", []*entity.Report{
		seedReport("u1", entity.PeriodDaily),
	})

	// An unrecognized period is a client error, not an empty result.
	res, _ := listReports(t, app, "?period=yearly")
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
}
