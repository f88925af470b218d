package service

import (
	"context"
	"encoding/json"
	"strings"

	"smart-summary-be/internal/constant"
	"smart-summary-be/internal/dto"
	"smart-summary-be/internal/pkg/logger"
	"smart-summary-be/internal/repository/memory"
	"smart-summary-be/pkg/store"

	"github.com/gofiber/fiber/v2"
)

type IProfileService interface {
	UpdateProfile(ctx context.Context, userId, sessionId string, req *dto.UpdateProfileRequest) (*dto.ShowSessionResponse, error)
}

type profileService struct {
	sessionRepo      *memory.SessionRepository
	publisherService IPublisherService
	log              logger.ILogger
}

func NewProfileService(
	sessionRepo *memory.SessionRepository,
	publisherService IPublisherService,
	log logger.ILogger,
) IProfileService {
	return &profileService{
		sessionRepo:      sessionRepo,
		publisherService: publisherService,
		log:              log,
	}
}

func (s *profileService) UpdateProfile(ctx context.Context, userId, sessionId string, req *dto.UpdateProfileRequest) (*dto.ShowSessionResponse, error) {
	session, err := loadSession(s.sessionRepo, userId, sessionId)
	if err != nil {
		return nil, err
	}

	state := strings.ToUpper(strings.TrimSpace(req.State))
	if !constant.IsStateAbbr(state) {
		return nil, fiber.NewError(fiber.StatusBadRequest, "unknown state abbreviation")
	}

	competitors := make([]store.CompanyRef, 0, len(req.Competitors))
	for _, c := range req.Competitors {
		competitors = append(competitors, store.CompanyRef{Name: c.Name, Cik: c.Cik})
	}

	s.sessionRepo.Lock(session.ID)
	session.Profile = store.Profile{
		CompanyName:   strings.TrimSpace(req.CompanyName),
		NAICSCode:     strings.TrimSpace(req.NaicsCode),
		State:         state,
		Keywords:      req.Keywords,
		ExpertOpinion: req.ExpertOpinion,
		ExpertName:    req.ExpertName,
		Competitors:   competitors,
	}
	s.sessionRepo.Save(session)
	res := sessionToResponse(session)
	s.sessionRepo.Unlock(session.ID)

	// Persisting to the identity provider happens off the request
	// path; the queue consumer picks this up.
	if req.SaveToProfile && s.publisherService != nil {
		msg := dto.SaveProfileMessage{
			UserId:      userId,
			CompanyName: res.Profile.CompanyName,
			NaicsCode:   res.Profile.NAICSCode,
			State:       res.Profile.State,
			Keywords:    res.Profile.Keywords,
		}
		payload, err := json.Marshal(msg)
		if err != nil {
			return nil, err
		}
		if err := s.publisherService.Publish(ctx, payload); err != nil {
			s.log.Warn("profile", "failed to publish profile save message", map[string]interface{}{
				"user_id": userId,
				"error":   err.Error(),
			})
		}
	}

	return res, nil
}
