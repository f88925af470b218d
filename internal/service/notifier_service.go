package service

import (
	"context"
	"fmt"

	"smart-summary-be/internal/pkg/logger"
	"smart-summary-be/internal/pkg/mailer"
	"smart-summary-be/pkg/events"
	"smart-summary-be/pkg/identity"
	pktNats "smart-summary-be/pkg/nats" // Renamed to avoid collision
)

// NotifierService listens for report lifecycle events and emails the
// user when a run finishes without them waiting on the page. The
// backend can take minutes on a cold start, so this is the out-of-band
// completion channel.
type NotifierService struct {
	subscriber     *pktNats.Subscriber
	emailService   mailer.IEmailService
	identityClient *identity.Client
	logger         logger.ILogger
}

func NewNotifierService(
	sub *pktNats.Subscriber,
	emailService mailer.IEmailService,
	identityClient *identity.Client,
	log logger.ILogger,
) *NotifierService {
	return &NotifierService{
		subscriber:     sub,
		emailService:   emailService,
		identityClient: identityClient,
		logger:         log,
	}
}

// Start begins listening to the event bus.
func (s *NotifierService) Start() {
	// Listen broadly and filter in the handler; report events are the
	// only ones on this bus today.
	err := s.subscriber.Subscribe("events.>", "report-notifier-worker", s.handleEvent)
	if err != nil {
		s.logger.Error("NotifierService", "Failed to start report notifier subscriber", map[string]interface{}{"error": err})
		return
	}
	s.logger.Info("NotifierService", "Report notifier started, listening to events.>", nil)
}

func (s *NotifierService) handleEvent(ctx context.Context, event events.Event) error {
	s.logger.Info("NotifierService", fmt.Sprintf("Processing event: %s", event.EventType()), map[string]interface{}{"type": event.EventType()})

	payload := event.Payload()
	userId, _ := payload["user_id"].(string)
	companyName, _ := payload["company_name"].(string)
	if userId == "" {
		return nil
	}

	email := s.lookupEmail(ctx, userId)
	if email == "" {
		s.logger.Warn("NotifierService", "No email on file, skipping notification", map[string]interface{}{"user_id": userId})
		return nil
	}

	switch event.EventType() {
	case events.TypeReportFailed:
		reason, _ := payload["reason"].(string)
		return s.emailService.SendReportFailure(email, companyName, reason)
	case events.TypeReportCompleted:
		// Completion notice only; the report body travels through the
		// explicit email export, not here.
		return s.emailService.SendReport(email, companyName,
			"<p>Open Smart Summary to view and export the full report.</p>", nil)
	default:
		return nil
	}
}

func (s *NotifierService) lookupEmail(ctx context.Context, userId string) string {
	if s.identityClient == nil {
		return ""
	}
	meta, err := s.identityClient.LoadMetadata(ctx, userId)
	if err != nil {
		s.logger.Warn("NotifierService", "Failed to load user metadata", map[string]interface{}{
			"user_id": userId,
			"error":   err.Error(),
		})
		return ""
	}
	email, _ := meta["notificationEmail"].(string)
	return email
}
