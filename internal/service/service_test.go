package service

import (
	"bytes"
	"context"
	"fmt"
	"mime/multipart"
	"net/textproto"
	"testing"
	"time"

	"smart-summary-be/internal/constant"
	"smart-summary-be/internal/entity"
	"smart-summary-be/internal/repository/memory"
	"smart-summary-be/pkg/store"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type testLogger struct{}

func (testLogger) Debug(module, message string, details map[string]interface{}) {}
func (testLogger) Info(module, message string, details map[string]interface{})  {}
func (testLogger) Warn(module, message string, details map[string]interface{})  {}
func (testLogger) Error(module, message string, details map[string]interface{}) {}
func (testLogger) Sync() error                                                  { return nil }

// seedSession puts a fresh session for userId into the repository and
// returns it, mirroring what SessionService.Create produces.
func seedSession(repo *memory.SessionRepository, userId string) *store.ReportSession {
	session := &store.ReportSession{
		ID:         uuid.NewString(),
		UserID:     userId,
		Template:   constant.DefaultTemplateLabel,
		Indicators: append([]string{}, constant.DefaultIndicators...),
		CreatedAt:  time.Now(),
	}
	repo.Save(session)
	return session
}

// fileHeader builds a real multipart.FileHeader the way Fiber hands
// one to a controller.
func fileHeader(t *testing.T, filename, contentType string, data []byte) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename="%s"`, filename))
	if contentType != "" {
		h.Set("Content-Type", contentType)
	}
	part, err := w.CreatePart(h)
	require.NoError(t, err)
	_, err = part.Write(data)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	form, err := multipart.NewReader(&buf, w.Boundary()).ReadForm(32 << 20)
	require.NoError(t, err)
	require.Len(t, form.File["file"], 1)
	return form.File["file"][0]
}

type fakeReportRepo struct {
	records []entity.ReportRecord
	failing bool
}

func (r *fakeReportRepo) CreateReport(ctx context.Context, record *entity.ReportRecord) error {
	if r.failing {
		return fmt.Errorf("database unavailable")
	}
	record.Id = uint(len(r.records) + 1)
	r.records = append(r.records, *record)
	return nil
}

func (r *fakeReportRepo) GetReportsByUserID(ctx context.Context, userID string, limit, offset int) ([]entity.ReportRecord, int64, error) {
	var mine []entity.ReportRecord
	for _, rec := range r.records {
		if rec.UserId == userID {
			mine = append(mine, rec)
		}
	}
	total := int64(len(mine))
	if offset >= len(mine) {
		return nil, total, nil
	}
	mine = mine[offset:]
	if limit < len(mine) {
		mine = mine[:limit]
	}
	return mine, total, nil
}

func (r *fakeReportRepo) GetReportByID(ctx context.Context, userID string, id uint) (*entity.ReportRecord, error) {
	for _, rec := range r.records {
		if rec.UserId == userID && rec.Id == id {
			out := rec
			return &out, nil
		}
	}
	return nil, nil
}
