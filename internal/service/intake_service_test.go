package service

import (
	"context"
	"encoding/base64"
	"mime/multipart"
	"strings"
	"testing"
	"time"

	"smart-summary-be/internal/constant"
	"smart-summary-be/internal/repository/memory"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntakeAssignSlot(t *testing.T) {
	repo := memory.NewSessionRepository(time.Hour)
	svc := NewIntakeService(repo, testLogger{})
	session := seedSession(repo, "user-1")

	info, err := svc.AssignSlot(context.Background(), "user-1", session.ID, "balance_sheet",
		fileHeader(t, "balance.csv", "text/csv", []byte("a,b\n1,2\n")))
	require.NoError(t, err)
	assert.Equal(t, "balance_sheet", info.Key)
	assert.Equal(t, "balance.csv", info.Filename)

	// A second file for the same slot replaces the first
	_, err = svc.AssignSlot(context.Background(), "user-1", session.ID, "balance_sheet",
		fileHeader(t, "balance_v2.csv", "text/csv", []byte("a,b\n3,4\n")))
	require.NoError(t, err)

	stored, found := repo.Get(session.ID)
	require.True(t, found)
	require.Len(t, stored.Uploads, 1)
	assert.Equal(t, "balance_v2.csv", stored.Uploads[0].Filename)
}

func TestIntakeRejectedUploadEvictsSlot(t *testing.T) {
	repo := memory.NewSessionRepository(time.Hour)
	svc := NewIntakeService(repo, testLogger{})
	session := seedSession(repo, "user-1")

	_, err := svc.AssignSlot(context.Background(), "user-1", session.ID, "workforce",
		fileHeader(t, "staff.csv", "text/csv", []byte("a\n")))
	require.NoError(t, err)

	// A rejected replacement clears the slot instead of keeping the
	// old file
	_, err = svc.AssignSlot(context.Background(), "user-1", session.ID, "workforce",
		fileHeader(t, "staff.pdf", "application/pdf", []byte("x")))
	require.Error(t, err)

	stored, _ := repo.Get(session.ID)
	assert.Nil(t, stored.UploadFor("workforce"))
}

func TestIntakeAssignSlotUnknownSlot(t *testing.T) {
	repo := memory.NewSessionRepository(time.Hour)
	svc := NewIntakeService(repo, testLogger{})
	session := seedSession(repo, "user-1")

	_, err := svc.AssignSlot(context.Background(), "user-1", session.ID, "tax_returns",
		fileHeader(t, "taxes.csv", "text/csv", []byte("a\n")))

	var fe *fiber.Error
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, fiber.StatusBadRequest, fe.Code)
}

func TestIntakeAssignSlotSessionNotFound(t *testing.T) {
	repo := memory.NewSessionRepository(time.Hour)
	svc := NewIntakeService(repo, testLogger{})
	seedSession(repo, "user-1")

	_, err := svc.AssignSlot(context.Background(), "user-2", "nope", "balance_sheet",
		fileHeader(t, "balance.csv", "text/csv", []byte("a\n")))

	var fe *fiber.Error
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, fiber.StatusNotFound, fe.Code)
}

func TestIntakeFileValidation(t *testing.T) {
	tests := []struct {
		name        string
		filename    string
		contentType string
		wantOK      bool
	}{
		{"csv mime", "report.csv", "text/csv", true},
		{"xlsx mime", "report.xlsx", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", true},
		{"legacy xls mime", "report.xls", "application/vnd.ms-excel", true},
		{"suffix rescues odd mime", "report.csv", "application/x-whatever", true},
		{"no mime at all", "report.xlsx", "", true},
		{"pdf rejected", "report.pdf", "application/pdf", false},
		{"uppercase suffix rejected", "REPORT.CSV", "", false},
		{"extension buried mid-name", "report.csv.pdf", "application/pdf", false},
	}

	repo := memory.NewSessionRepository(time.Hour)
	svc := NewIntakeService(repo, testLogger{})
	session := seedSession(repo, "user-1")

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.AssignSlot(context.Background(), "user-1", session.ID, "executive_summary",
				fileHeader(t, tt.filename, tt.contentType, []byte("x")))
			if tt.wantOK {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "Please upload a CSV or Excel file")
			}
		})
	}
}

func TestIntakeAssignBatch(t *testing.T) {
	repo := memory.NewSessionRepository(time.Hour)
	svc := NewIntakeService(repo, testLogger{})
	session := seedSession(repo, "user-1")

	res, err := svc.AssignBatch(context.Background(), "user-1", session.ID, []*multipart.FileHeader{
		fileHeader(t, "q1.csv", "text/csv", []byte("a\n")),
		fileHeader(t, "notes.txt", "text/plain", []byte("hello")),
		fileHeader(t, "q2.xlsx", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", []byte("x")),
	})
	require.NoError(t, err)

	require.Len(t, res.Accepted, 2)
	assert.Equal(t, constant.BatchKeyPrefix+"q1.csv", res.Accepted[0].Key)
	assert.Equal(t, constant.BatchKeyPrefix+"q2.xlsx", res.Accepted[1].Key)

	require.Len(t, res.Rejected, 1)
	assert.Contains(t, res.Rejected["notes.txt"], "Please upload a CSV or Excel file")

	stored, _ := repo.Get(session.ID)
	assert.Len(t, stored.Uploads, 2)
}

func TestIntakeRemove(t *testing.T) {
	repo := memory.NewSessionRepository(time.Hour)
	svc := NewIntakeService(repo, testLogger{})
	session := seedSession(repo, "user-1")

	_, err := svc.AssignSlot(context.Background(), "user-1", session.ID, "cash_flow",
		fileHeader(t, "cf.csv", "text/csv", []byte("a\n")))
	require.NoError(t, err)

	require.NoError(t, svc.Remove(context.Background(), "user-1", session.ID, "cash_flow"))

	err = svc.Remove(context.Background(), "user-1", session.ID, "cash_flow")
	var fe *fiber.Error
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, fiber.StatusNotFound, fe.Code)
}

func TestIntakeEncodeAll(t *testing.T) {
	repo := memory.NewSessionRepository(time.Hour)
	svc := NewIntakeService(repo, testLogger{})
	session := seedSession(repo, "user-1")

	content := []byte("year,revenue\n2023,100\n")
	_, err := svc.AssignSlot(context.Background(), "user-1", session.ID, "income_statement_yoy",
		fileHeader(t, "income.csv", "text/csv", content))
	require.NoError(t, err)

	session, _ = repo.Get(session.ID)
	files := svc.EncodeAll(session)
	require.Len(t, files, 1)

	payload := files["income_statement_yoy"]
	assert.Equal(t, "income.csv", payload.Filename)
	assert.Equal(t, "text/csv", payload.Type)
	require.True(t, strings.HasPrefix(payload.Content, "data:text/csv;base64,"))

	decoded, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(payload.Content, "data:text/csv;base64,"))
	require.NoError(t, err)
	assert.Equal(t, content, decoded)
}

func TestIntakeEncodeAllEmpty(t *testing.T) {
	repo := memory.NewSessionRepository(time.Hour)
	svc := NewIntakeService(repo, testLogger{})
	session := seedSession(repo, "user-1")

	assert.Nil(t, svc.EncodeAll(session))
}
