package service

import (
	"context"
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"smart-summary-be/internal/constant"
	"smart-summary-be/internal/dto"
	"smart-summary-be/internal/entity"
	"smart-summary-be/internal/pkg/logger"
	"smart-summary-be/internal/repository"
	"smart-summary-be/internal/repository/cache"
	"smart-summary-be/internal/repository/memory"
	"smart-summary-be/pkg/events"
	pktNats "smart-summary-be/pkg/nats"
	"smart-summary-be/pkg/render"
	"smart-summary-be/pkg/store"
	"smart-summary-be/pkg/trends"

	"github.com/gofiber/fiber/v2"
)

// Failure text shown in place of the narrative when the backend call
// does not come back clean. Existing tables stay on screen.
const backendFailureSummary = "Error retrieving summary from backend."

type IReportService interface {
	Suggestions(ctx context.Context, userId, sessionId string) (*dto.SuggestionsResponse, error)
	Generate(ctx context.Context, userId, sessionId string) (*dto.GenerateReportResponse, error)
	Show(ctx context.Context, userId, sessionId string) (*dto.ShowReportResponse, error)
	History(ctx context.Context, userId string, limit, offset int) (*dto.ReportHistoryResponse, error)
	HistoryDetail(ctx context.Context, userId string, id uint) (*dto.ReportHistoryDetail, error)
}

type reportService struct {
	sessionRepo     *memory.SessionRepository
	reportRepo      repository.ReportRepository
	intakeService   IIntakeService
	client          *trends.Client
	suggestionCache *cache.SuggestionCache
	eventPublisher  *pktNats.Publisher
	log             logger.ILogger
}

func NewReportService(
	sessionRepo *memory.SessionRepository,
	reportRepo repository.ReportRepository,
	intakeService IIntakeService,
	client *trends.Client,
	suggestionCache *cache.SuggestionCache,
	eventPublisher *pktNats.Publisher,
	log logger.ILogger,
) IReportService {
	return &reportService{
		sessionRepo:     sessionRepo,
		reportRepo:      reportRepo,
		intakeService:   intakeService,
		client:          client,
		suggestionCache: suggestionCache,
		eventPublisher:  eventPublisher,
		log:             log,
	}
}

func (s *reportService) Suggestions(ctx context.Context, userId, sessionId string) (*dto.SuggestionsResponse, error) {
	session, err := loadSession(s.sessionRepo, userId, sessionId)
	if err != nil {
		return nil, err
	}

	s.sessionRepo.Lock(session.ID)
	naics := strings.TrimSpace(session.Profile.NAICSCode)
	state := session.Profile.State
	keywords := session.Profile.Keywords
	s.sessionRepo.Unlock(session.ID)

	if naics == "" {
		return nil, fiber.NewError(fiber.StatusBadRequest, "NAICS code is required")
	}

	if cached, found := s.suggestionCache.Get(ctx, naics, state, keywords); found {
		return &dto.SuggestionsResponse{Suggestions: cached, Cached: true}, nil
	}

	companies, err := s.client.CompanySuggestions(ctx, naics, state, keywords)
	if err != nil {
		s.log.Error("report", "competitor lookup failed", map[string]interface{}{
			"session_id": sessionId,
			"error":      err.Error(),
		})
		return nil, fiber.NewError(fiber.StatusBadGateway, "competitor lookup failed")
	}

	suggestions := store.SuggestionsFromBackend(companies)
	s.suggestionCache.Set(ctx, naics, state, keywords, suggestions)

	return &dto.SuggestionsResponse{Suggestions: suggestions}, nil
}

func (s *reportService) Generate(ctx context.Context, userId, sessionId string) (*dto.GenerateReportResponse, error) {
	session, err := loadSession(s.sessionRepo, userId, sessionId)
	if err != nil {
		return nil, err
	}

	if !s.sessionRepo.TryBeginGenerate(session) {
		return nil, fiber.NewError(fiber.StatusConflict, "report generation already in progress")
	}
	defer s.sessionRepo.EndGenerate(session)

	s.sessionRepo.Lock(session.ID)
	request, err := s.composeRequest(session)
	companyName := session.Profile.CompanyName
	s.sessionRepo.Unlock(session.ID)
	if err != nil {
		return nil, err
	}

	s.publishEvent(ctx, events.NewReportRequested(session.ID, userId, companyName))

	requestJSON, err := json.Marshal(request)
	if err != nil {
		return nil, err
	}

	response, rawBody, err := s.client.GetTrends(ctx, request)
	if err != nil {
		s.log.Error("report", "trends call failed", map[string]interface{}{
			"session_id": sessionId,
			"error":      err.Error(),
		})
		return s.finishFailed(ctx, session, request.NaicsCode, requestJSON, rawBody, err.Error()), nil
	}

	report := renderReport(response)
	s.sessionRepo.Lock(session.ID)
	session.Report = report
	session.Failed = false
	s.sessionRepo.Save(session)
	s.sessionRepo.Unlock(session.ID)

	record := &entity.ReportRecord{
		UserId:      userId,
		SessionId:   session.ID,
		CompanyName: companyName,
		NaicsCode:   request.NaicsCode,
		Succeeded:   true,
		Request:     requestJSON,
		Response:    rawBody,
		CreatedAt:   time.Now(),
	}
	if err := s.reportRepo.CreateReport(ctx, record); err != nil {
		s.log.Error("report", "failed to archive report", map[string]interface{}{
			"session_id": sessionId,
			"error":      err.Error(),
		})
	}

	s.publishEvent(ctx, events.NewReportCompleted(session.ID, userId, companyName, record.Id))

	return &dto.GenerateReportResponse{
		ReportId: record.Id,
		Report:   report,
	}, nil
}

// finishFailed swaps the narrative for the failure text but leaves any
// previously rendered tables in place, so the user keeps what they
// had before the retry.
func (s *reportService) finishFailed(ctx context.Context, session *store.ReportSession, naicsCode int, requestJSON, rawBody []byte, reason string) *dto.GenerateReportResponse {
	s.sessionRepo.Lock(session.ID)
	failed := &store.Report{}
	if session.Report != nil {
		// Swap in a fresh report value so a concurrent reader never
		// sees the narrative half-replaced
		copied := *session.Report
		failed = &copied
	}
	failed.Summary = backendFailureSummary
	failed.GeneratedAt = time.Now()
	session.Report = failed
	session.Failed = true
	s.sessionRepo.Save(session)
	companyName := session.Profile.CompanyName
	s.sessionRepo.Unlock(session.ID)

	record := &entity.ReportRecord{
		UserId:      session.UserID,
		SessionId:   session.ID,
		CompanyName: companyName,
		NaicsCode:   naicsCode,
		Succeeded:   false,
		Request:     requestJSON,
		Response:    rawBody,
		CreatedAt:   time.Now(),
	}
	if err := s.reportRepo.CreateReport(ctx, record); err != nil {
		s.log.Error("report", "failed to archive failed run", map[string]interface{}{
			"session_id": session.ID,
			"error":      err.Error(),
		})
	}

	s.publishEvent(ctx, events.NewReportFailed(session.ID, session.UserID, companyName, reason))

	return &dto.GenerateReportResponse{
		Report: failed,
		Failed: true,
	}
}

func (s *reportService) Show(ctx context.Context, userId, sessionId string) (*dto.ShowReportResponse, error) {
	session, err := loadSession(s.sessionRepo, userId, sessionId)
	if err != nil {
		return nil, err
	}
	s.sessionRepo.Lock(session.ID)
	defer s.sessionRepo.Unlock(session.ID)
	if session.Report == nil {
		return nil, fiber.NewError(fiber.StatusNotFound, "no report generated yet")
	}
	return &dto.ShowReportResponse{Report: session.Report, Failed: session.Failed}, nil
}

func (s *reportService) History(ctx context.Context, userId string, limit, offset int) (*dto.ReportHistoryResponse, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	records, total, err := s.reportRepo.GetReportsByUserID(ctx, userId, limit, offset)
	if err != nil {
		return nil, err
	}

	items := make([]dto.ReportHistoryItem, 0, len(records))
	for _, r := range records {
		items = append(items, dto.ReportHistoryItem{
			Id:          r.Id,
			CompanyName: r.CompanyName,
			NaicsCode:   r.NaicsCode,
			Succeeded:   r.Succeeded,
			CreatedAt:   r.CreatedAt,
		})
	}
	return &dto.ReportHistoryResponse{Items: items, Total: total}, nil
}

func (s *reportService) HistoryDetail(ctx context.Context, userId string, id uint) (*dto.ReportHistoryDetail, error) {
	record, err := s.reportRepo.GetReportByID(ctx, userId, id)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, fiber.NewError(fiber.StatusNotFound, "report not found")
	}

	detail := &dto.ReportHistoryDetail{
		Id:          record.Id,
		CompanyName: record.CompanyName,
		NaicsCode:   record.NaicsCode,
		Succeeded:   record.Succeeded,
		CreatedAt:   record.CreatedAt,
	}
	// Archived payloads are raw JSON, re-expose them as-is
	if len(record.Request) > 0 {
		detail.Request = json.RawMessage(record.Request)
	}
	if len(record.Response) > 0 {
		detail.Response = json.RawMessage(record.Response)
	}
	return detail, nil
}

// composeRequest assembles the single analysis payload from everything
// the session collected.
func (s *reportService) composeRequest(session *store.ReportSession) (*trends.Request, error) {
	profile := session.Profile

	// Two independent guards, both checked before any network call
	if strings.TrimSpace(profile.CompanyName) == "" &&
		strings.TrimSpace(profile.NAICSCode) == "" &&
		strings.TrimSpace(profile.State) == "" &&
		strings.TrimSpace(profile.Keywords) == "" {
		return nil, fiber.NewError(fiber.StatusBadRequest, "fill in the company details before generating a report")
	}
	if len(session.Uploads) == 0 {
		return nil, fiber.NewError(fiber.StatusBadRequest, "upload at least one financial file before generating a report")
	}

	naicsCode, err := strconv.Atoi(strings.TrimSpace(profile.NAICSCode))
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "NAICS code must be a number")
	}

	request := &trends.Request{
		NaicsCode:       naicsCode,
		FredDataKeys:    session.Indicators,
		FredDataState:   profile.State,
		CompanyName:     profile.CompanyName,
		CompanyKeywords: splitKeywords(profile.Keywords),
		FormatExample:   resolveFormatExample(session),
		Files:           s.intakeService.EncodeAll(session),
	}

	for _, c := range profile.Competitors {
		ref := trends.CompanyRef{Cik: c.Cik}
		if c.Name != "" {
			name := c.Name
			ref.Name = &name
		}
		request.CompanyCiks = append(request.CompanyCiks, ref)
	}

	if opinion := strings.TrimSpace(profile.ExpertOpinion); opinion != "" {
		request.ExpertOpinion = opinion
	}
	if name := strings.TrimSpace(profile.ExpertName); name != "" {
		request.ExpertName = name
	}

	return request, nil
}

// resolveFormatExample picks what travels as format_example: the
// placeholder rendition for canned templates, the user's raw text for
// custom ones.
func resolveFormatExample(session *store.ReportSession) string {
	if session.Template != constant.CustomTemplateLabel {
		if tpl, found := constant.FindTemplate(session.Template); found {
			return tpl.Backend
		}
	}
	return session.CustomText
}

func splitKeywords(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// renderReport turns the wire response into display-ready tables.
func renderReport(response *trends.Response) *store.Report {
	report := &store.Report{
		Summary:     response.Summary,
		GeneratedAt: time.Now(),
	}

	if t := render.RenderFlatTable(response.UserData, "Your Company Data"); t != nil {
		report.UserTables = append(report.UserTables, *t)
	}

	for _, entry := range response.IndustryTables {
		group := store.IndustryTables{Name: entry.Name, Cik: entry.Cik}
		for _, named := range entry.Data.Entries {
			if t := render.RenderFlatTable(named.Rows, named.Name); t != nil {
				group.Tables = append(group.Tables, *t)
			}
		}
		report.Industry = append(report.Industry, group)
	}

	report.Indicators = render.RenderTimeSeries(response.FredData, "Economic Indicators (FRED)")
	report.Trends = render.RenderTimeSeries(response.Trends, "Google Search Trends")

	return report
}

func (s *reportService) publishEvent(ctx context.Context, evt events.Event) {
	if s.eventPublisher == nil {
		return
	}
	if err := s.eventPublisher.Publish(ctx, evt); err != nil {
		s.log.Warn("report", "failed to publish event", map[string]interface{}{
			"event": evt.EventType(),
			"error": err.Error(),
		})
	}
}
