package service

import (
	"context"
	"fmt"

	"smart-summary-be/internal/dto"
	"smart-summary-be/internal/pkg/logger"
	"smart-summary-be/internal/pkg/mailer"
	"smart-summary-be/internal/repository/memory"
	"smart-summary-be/pkg/export"
	"smart-summary-be/pkg/store"

	"github.com/gofiber/fiber/v2"
)

// Artifact is one downloadable rendition of the report.
type Artifact struct {
	Filename    string
	ContentType string
	Data        []byte
}

type IExportService interface {
	PDF(ctx context.Context, userId, sessionId string) (*Artifact, error)
	DOCX(ctx context.Context, userId, sessionId string) (*Artifact, error)
	XLSX(ctx context.Context, userId, sessionId string) (*Artifact, error)
	Clipboard(ctx context.Context, userId, sessionId, mode string) (*Artifact, error)
	Email(ctx context.Context, userId, sessionId string, req *dto.EmailReportRequest) error
}

type exportService struct {
	sessionRepo  *memory.SessionRepository
	emailService mailer.IEmailService
	log          logger.ILogger
}

func NewExportService(
	sessionRepo *memory.SessionRepository,
	emailService mailer.IEmailService,
	log logger.ILogger,
) IExportService {
	return &exportService{
		sessionRepo:  sessionRepo,
		emailService: emailService,
		log:          log,
	}
}

// loadDocument gathers the rendered report into the exporter input.
func (s *exportService) loadDocument(userId, sessionId string) (export.Document, *store.ReportSession, error) {
	session, err := loadSession(s.sessionRepo, userId, sessionId)
	if err != nil {
		return export.Document{}, nil, err
	}
	s.sessionRepo.Lock(session.ID)
	defer s.sessionRepo.Unlock(session.ID)
	if session.Report == nil {
		return export.Document{}, nil, fiber.NewError(fiber.StatusNotFound, "no report generated yet")
	}

	report := session.Report
	doc := export.Document{
		Title:   exportTitle(session),
		Summary: report.Summary,
	}
	doc.Tables = append(doc.Tables, report.UserTables...)
	for _, group := range report.Industry {
		for _, t := range group.Tables {
			t.Title = fmt.Sprintf("%s (CIK: %s) / %s", group.Name, group.Cik, t.Title)
			doc.Tables = append(doc.Tables, t)
		}
	}
	doc.Tables = append(doc.Tables, report.Indicators.Flatten()...)
	doc.Tables = append(doc.Tables, report.Trends.Flatten()...)

	return doc, session, nil
}

func exportTitle(session *store.ReportSession) string {
	if session.Profile.CompanyName != "" {
		return "Smart Summary: " + session.Profile.CompanyName
	}
	return "Smart Summary Report"
}

func (s *exportService) PDF(ctx context.Context, userId, sessionId string) (*Artifact, error) {
	doc, _, err := s.loadDocument(userId, sessionId)
	if err != nil {
		return nil, err
	}
	data, err := export.PDF(doc)
	if err != nil {
		return nil, err
	}
	return &Artifact{
		Filename:    "smart-summary-report.pdf",
		ContentType: "application/pdf",
		Data:        data,
	}, nil
}

func (s *exportService) DOCX(ctx context.Context, userId, sessionId string) (*Artifact, error) {
	doc, _, err := s.loadDocument(userId, sessionId)
	if err != nil {
		return nil, err
	}
	data, err := export.DOCX(doc)
	if err != nil {
		return nil, err
	}
	return &Artifact{
		Filename:    "smart-summary-report.docx",
		ContentType: "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
		Data:        data,
	}, nil
}

func (s *exportService) XLSX(ctx context.Context, userId, sessionId string) (*Artifact, error) {
	doc, _, err := s.loadDocument(userId, sessionId)
	if err != nil {
		return nil, err
	}
	data, err := export.XLSX(doc)
	if err != nil {
		return nil, err
	}
	return &Artifact{
		Filename:    "smart-summary-report.xlsx",
		ContentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		Data:        data,
	}, nil
}

func (s *exportService) Clipboard(ctx context.Context, userId, sessionId, mode string) (*Artifact, error) {
	doc, _, err := s.loadDocument(userId, sessionId)
	if err != nil {
		return nil, err
	}

	switch mode {
	case "", "plain":
		return &Artifact{
			Filename:    "smart-summary-report.txt",
			ContentType: "text/plain; charset=utf-8",
			Data:        []byte(export.PlainText(doc)),
		}, nil
	case "rich":
		html, err := export.HTML(doc)
		if err != nil {
			return nil, err
		}
		return &Artifact{
			Filename:    "smart-summary-report.html",
			ContentType: "text/html; charset=utf-8",
			Data:        []byte(html),
		}, nil
	default:
		return nil, fiber.NewError(fiber.StatusBadRequest, "mode must be rich or plain")
	}
}

func (s *exportService) Email(ctx context.Context, userId, sessionId string, req *dto.EmailReportRequest) error {
	doc, session, err := s.loadDocument(userId, sessionId)
	if err != nil {
		return err
	}

	html, err := export.HTML(doc)
	if err != nil {
		return err
	}
	pdf, err := export.PDF(doc)
	if err != nil {
		s.log.Warn("export", "pdf attachment failed, sending body only", map[string]interface{}{
			"session_id": sessionId,
			"error":      err.Error(),
		})
		pdf = nil
	}

	s.sessionRepo.Lock(sessionId)
	companyName := session.Profile.CompanyName
	s.sessionRepo.Unlock(sessionId)
	if companyName == "" {
		companyName = "your company"
	}
	if err := s.emailService.SendReport(req.To, companyName, html, pdf); err != nil {
		return fiber.NewError(fiber.StatusBadGateway, "failed to send email")
	}
	return nil
}
