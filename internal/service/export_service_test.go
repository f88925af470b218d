package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"smart-summary-be/internal/dto"
	"smart-summary-be/internal/repository/memory"
	"smart-summary-be/pkg/render"
	"smart-summary-be/pkg/store"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeEmailService struct {
	sent     []string
	lastPDF  []byte
	lastHTML string
	failing  bool
}

func (m *fakeEmailService) SendReport(toEmail, companyName, htmlBody string, pdf []byte) error {
	if m.failing {
		return fmt.Errorf("smtp down")
	}
	m.sent = append(m.sent, toEmail)
	m.lastHTML = htmlBody
	m.lastPDF = pdf
	return nil
}

func (m *fakeEmailService) SendReportFailure(toEmail, companyName, reason string) error {
	return nil
}

func seedSessionWithReport(repo *memory.SessionRepository, userId string) *store.ReportSession {
	session := seedSession(repo, userId)
	session.Profile.CompanyName = "Acme Stores"
	session.Report = &store.Report{
		Summary: "**Overview**\n\nRevenue is stable.",
		UserTables: []render.Table{
			{Title: "Your Company Data", Columns: []string{"Year", "Revenue"}, Rows: [][]string{{"2023", "100"}}},
		},
		Industry: []store.IndustryTables{
			{
				Name: "Tapestry Inc.",
				Cik:  "0001116132",
				Tables: []render.Table{
					{Title: "Income Statement", Columns: []string{"Year"}, Rows: [][]string{{"2023"}}},
				},
			},
		},
		GeneratedAt: time.Now(),
	}
	repo.Save(session)
	return session
}

func TestExportArtifacts(t *testing.T) {
	repo := memory.NewSessionRepository(time.Hour)
	svc := NewExportService(repo, &fakeEmailService{}, testLogger{})
	session := seedSessionWithReport(repo, "user-1")

	pdf, err := svc.PDF(context.Background(), "user-1", session.ID)
	require.NoError(t, err)
	assert.Equal(t, "application/pdf", pdf.ContentType)
	assert.True(t, len(pdf.Data) > 0)

	docx, err := svc.DOCX(context.Background(), "user-1", session.ID)
	require.NoError(t, err)
	assert.Equal(t, "smart-summary-report.docx", docx.Filename)
	assert.True(t, len(docx.Data) > 0)

	xlsx, err := svc.XLSX(context.Background(), "user-1", session.ID)
	require.NoError(t, err)
	assert.True(t, len(xlsx.Data) > 0)
}

func TestExportClipboard(t *testing.T) {
	repo := memory.NewSessionRepository(time.Hour)
	svc := NewExportService(repo, &fakeEmailService{}, testLogger{})
	session := seedSessionWithReport(repo, "user-1")

	plain, err := svc.Clipboard(context.Background(), "user-1", session.ID, "")
	require.NoError(t, err)
	assert.Equal(t, "text/plain; charset=utf-8", plain.ContentType)
	assert.Contains(t, string(plain.Data), "Smart Summary: Acme Stores")
	// Industry table titles carry the company they came from
	assert.Contains(t, string(plain.Data), "Tapestry Inc. (CIK: 0001116132) / Income Statement")

	rich, err := svc.Clipboard(context.Background(), "user-1", session.ID, "rich")
	require.NoError(t, err)
	assert.Equal(t, "text/html; charset=utf-8", rich.ContentType)
	assert.Contains(t, string(rich.Data), "<table")

	_, err = svc.Clipboard(context.Background(), "user-1", session.ID, "fancy")
	var fe *fiber.Error
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, fiber.StatusBadRequest, fe.Code)
}

func TestExportWithoutReport(t *testing.T) {
	repo := memory.NewSessionRepository(time.Hour)
	svc := NewExportService(repo, &fakeEmailService{}, testLogger{})
	session := seedSession(repo, "user-1")

	_, err := svc.PDF(context.Background(), "user-1", session.ID)
	var fe *fiber.Error
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, fiber.StatusNotFound, fe.Code)
}

func TestExportEmail(t *testing.T) {
	repo := memory.NewSessionRepository(time.Hour)
	mail := &fakeEmailService{}
	svc := NewExportService(repo, mail, testLogger{})
	session := seedSessionWithReport(repo, "user-1")

	err := svc.Email(context.Background(), "user-1", session.ID, &dto.EmailReportRequest{To: "owner@acme.example"})
	require.NoError(t, err)
	require.Len(t, mail.sent, 1)
	assert.Equal(t, "owner@acme.example", mail.sent[0])
	assert.Contains(t, mail.lastHTML, "Revenue is stable.")
	assert.True(t, len(mail.lastPDF) > 0)
}

func TestExportEmailSendFailure(t *testing.T) {
	repo := memory.NewSessionRepository(time.Hour)
	svc := NewExportService(repo, &fakeEmailService{failing: true}, testLogger{})
	session := seedSessionWithReport(repo, "user-1")

	err := svc.Email(context.Background(), "user-1", session.ID, &dto.EmailReportRequest{To: "owner@acme.example"})
	var fe *fiber.Error
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, fiber.StatusBadGateway, fe.Code)
}
