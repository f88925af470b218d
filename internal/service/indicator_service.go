package service

import (
	"context"

	"smart-summary-be/internal/constant"
	"smart-summary-be/internal/pkg/logger"
	"smart-summary-be/internal/repository/memory"
)

type IIndicatorService interface {
	Add(ctx context.Context, userId, sessionId string, labels []string) ([]string, error)
	Remove(ctx context.Context, userId, sessionId, label string) ([]string, error)
}

type indicatorService struct {
	sessionRepo *memory.SessionRepository
	log         logger.ILogger
}

func NewIndicatorService(sessionRepo *memory.SessionRepository, log logger.ILogger) IIndicatorService {
	return &indicatorService{
		sessionRepo: sessionRepo,
		log:         log,
	}
}

// Add appends new labels and then clamps the selection to the maximum.
// Labels already selected or not in the catalog are skipped.
func (s *indicatorService) Add(ctx context.Context, userId, sessionId string, labels []string) ([]string, error) {
	session, err := loadSession(s.sessionRepo, userId, sessionId)
	if err != nil {
		return nil, err
	}

	s.sessionRepo.Lock(session.ID)
	defer s.sessionRepo.Unlock(session.ID)

	selected := make(map[string]bool, len(session.Indicators))
	for _, l := range session.Indicators {
		selected[l] = true
	}

	for _, label := range labels {
		if selected[label] {
			continue
		}
		if !constant.InCatalog(label) {
			s.log.Warn("indicator", "label not in catalog", map[string]interface{}{
				"session_id": sessionId,
				"label":      label,
			})
			continue
		}
		session.Indicators = append(session.Indicators, label)
		selected[label] = true
	}

	if len(session.Indicators) > constant.MaxIndicators {
		session.Indicators = session.Indicators[:constant.MaxIndicators]
	}

	s.sessionRepo.Save(session)
	return session.Indicators, nil
}

func (s *indicatorService) Remove(ctx context.Context, userId, sessionId, label string) ([]string, error) {
	session, err := loadSession(s.sessionRepo, userId, sessionId)
	if err != nil {
		return nil, err
	}

	s.sessionRepo.Lock(session.ID)
	defer s.sessionRepo.Unlock(session.ID)

	kept := session.Indicators[:0]
	for _, l := range session.Indicators {
		if l != label {
			kept = append(kept, l)
		}
	}
	session.Indicators = kept

	s.sessionRepo.Save(session)
	return session.Indicators, nil
}
