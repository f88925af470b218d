package service

import (
	"context"
	"time"

	"smart-summary-be/internal/constant"
	"smart-summary-be/internal/dto"
	"smart-summary-be/internal/pkg/logger"
	"smart-summary-be/internal/repository/memory"
	"smart-summary-be/pkg/identity"
	"smart-summary-be/pkg/store"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ISessionService interface {
	Create(ctx context.Context, userId string) (*dto.CreateSessionResponse, error)
	Show(ctx context.Context, userId, sessionId string) (*dto.ShowSessionResponse, error)
	UpdateTemplate(ctx context.Context, userId, sessionId string, req *dto.UpdateTemplateRequest) error
}

type sessionService struct {
	sessionRepo    *memory.SessionRepository
	identityClient *identity.Client
	log            logger.ILogger
}

func NewSessionService(
	sessionRepo *memory.SessionRepository,
	identityClient *identity.Client,
	log logger.ILogger,
) ISessionService {
	return &sessionService{
		sessionRepo:    sessionRepo,
		identityClient: identityClient,
		log:            log,
	}
}

// loadSession fetches a session and enforces ownership. Shared by all
// services touching the working state.
func loadSession(repo *memory.SessionRepository, userId, sessionId string) (*store.ReportSession, error) {
	session, found := repo.Get(sessionId)
	if !found || session.UserID != userId {
		return nil, fiber.NewError(fiber.StatusNotFound, "session not found")
	}
	return session, nil
}

func (s *sessionService) Create(ctx context.Context, userId string) (*dto.CreateSessionResponse, error) {
	session := &store.ReportSession{
		ID:         uuid.NewString(),
		UserID:     userId,
		Template:   constant.DefaultTemplateLabel,
		Indicators: append([]string{}, constant.DefaultIndicators...),
		CreatedAt:  time.Now(),
	}

	// Preload the saved form fields from the identity provider's
	// metadata bag. Best effort: a cold start without them is fine.
	if s.identityClient != nil {
		meta, err := s.identityClient.LoadMetadata(ctx, userId)
		if err != nil {
			s.log.Warn("session", "failed to load profile metadata", map[string]interface{}{
				"user_id": userId,
				"error":   err.Error(),
			})
		} else {
			session.Profile.CompanyName = metaString(meta, identity.KeyCompanyName)
			session.Profile.NAICSCode = metaString(meta, identity.KeyNAICSCode)
			session.Profile.State = metaString(meta, identity.KeySelectedState)
			session.Profile.Keywords = metaString(meta, identity.KeyKeywords)
		}
	}

	s.sessionRepo.Save(session)

	s.log.Info("session", "session created", map[string]interface{}{
		"session_id": session.ID,
		"user_id":    userId,
	})
	return &dto.CreateSessionResponse{Id: session.ID}, nil
}

func (s *sessionService) Show(ctx context.Context, userId, sessionId string) (*dto.ShowSessionResponse, error) {
	session, err := loadSession(s.sessionRepo, userId, sessionId)
	if err != nil {
		return nil, err
	}
	s.sessionRepo.Lock(session.ID)
	defer s.sessionRepo.Unlock(session.ID)
	return sessionToResponse(session), nil
}

func (s *sessionService) UpdateTemplate(ctx context.Context, userId, sessionId string, req *dto.UpdateTemplateRequest) error {
	session, err := loadSession(s.sessionRepo, userId, sessionId)
	if err != nil {
		return err
	}

	if req.Label != constant.CustomTemplateLabel {
		if _, found := constant.FindTemplate(req.Label); !found {
			return fiber.NewError(fiber.StatusBadRequest, "unknown template label")
		}
	}

	s.sessionRepo.Lock(session.ID)
	session.Template = req.Label
	session.CustomText = req.CustomText
	s.sessionRepo.Save(session)
	s.sessionRepo.Unlock(session.ID)
	return nil
}

func sessionToResponse(session *store.ReportSession) *dto.ShowSessionResponse {
	uploads := make([]dto.UploadInfo, 0, len(session.Uploads))
	for _, u := range session.Uploads {
		uploads = append(uploads, dto.UploadInfo{
			Key:      u.Key,
			Filename: u.Filename,
			Size:     u.Size,
		})
	}

	return &dto.ShowSessionResponse{
		Id:         session.ID,
		Profile:    session.Profile,
		Template:   session.Template,
		CustomText: session.CustomText,
		Indicators: session.Indicators,
		Uploads:    uploads,
		Loading:    session.Loading,
		Failed:     session.Failed,
		HasReport:  session.Report != nil,
		CreatedAt:  session.CreatedAt,
		UpdatedAt:  session.UpdatedAt,
	}
}

func metaString(meta map[string]interface{}, key string) string {
	if v, ok := meta[key].(string); ok {
		return v
	}
	return ""
}
