package service

import (
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"mime/multipart"
	"strings"

	"smart-summary-be/internal/constant"
	"smart-summary-be/internal/dto"
	"smart-summary-be/internal/pkg/logger"
	"smart-summary-be/internal/repository/memory"
	"smart-summary-be/pkg/store"
	"smart-summary-be/pkg/trends"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IIntakeService interface {
	AssignSlot(ctx context.Context, userId, sessionId, slot string, file *multipart.FileHeader) (*dto.UploadInfo, error)
	AssignBatch(ctx context.Context, userId, sessionId string, files []*multipart.FileHeader) (*dto.BatchUploadResponse, error)
	Remove(ctx context.Context, userId, sessionId, key string) error
	EncodeAll(session *store.ReportSession) map[string]trends.FilePayload
}

type intakeService struct {
	sessionRepo *memory.SessionRepository
	log         logger.ILogger
}

func NewIntakeService(sessionRepo *memory.SessionRepository, log logger.ILogger) IIntakeService {
	return &intakeService{
		sessionRepo: sessionRepo,
		log:         log,
	}
}

// acceptUpload validates the file and reads it into the session arena.
func acceptUpload(key string, file *multipart.FileHeader) (*store.Upload, error) {
	contentType := file.Header.Get("Content-Type")
	if !allowedUpload(contentType, file.Filename) {
		return nil, fmt.Errorf("%s", constant.UploadErrorMessage)
	}

	src, err := file.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open upload: %w", err)
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return nil, fmt.Errorf("failed to read upload: %w", err)
	}

	return &store.Upload{
		ID:       uuid.NewString(),
		Key:      key,
		Filename: file.Filename,
		MIMEType: contentType,
		Size:     file.Size,
		Data:     data,
	}, nil
}

// allowedUpload mirrors the accepted spreadsheet set: a recognized
// MIME type, or a filename ending with a known extension. The suffix
// match is case sensitive.
func allowedUpload(contentType, filename string) bool {
	for _, mt := range constant.AllowedUploadMIMETypes {
		if contentType == mt {
			return true
		}
	}
	for _, ext := range constant.AllowedUploadExtensions {
		if strings.HasSuffix(filename, ext) {
			return true
		}
	}
	return false
}

func (s *intakeService) AssignSlot(ctx context.Context, userId, sessionId, slot string, file *multipart.FileHeader) (*dto.UploadInfo, error) {
	session, err := loadSession(s.sessionRepo, userId, sessionId)
	if err != nil {
		return nil, err
	}

	if !constant.IsReportSlot(slot) {
		return nil, fiber.NewError(fiber.StatusBadRequest, "unknown report slot")
	}

	s.sessionRepo.Lock(session.ID)
	defer s.sessionRepo.Unlock(session.ID)

	upload, err := acceptUpload(slot, file)
	if err != nil {
		// A rejected upload also evicts the slot's previous occupant:
		// the user replaced it on purpose, keeping the old file would
		// silently submit data they meant to swap out.
		if session.RemoveUpload(slot) {
			s.sessionRepo.Save(session)
		}
		return nil, fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	// A new file replaces whatever was in the slot
	session.RemoveUpload(slot)
	session.Uploads = append(session.Uploads, *upload)
	s.sessionRepo.Save(session)

	return &dto.UploadInfo{
		Key:      upload.Key,
		Filename: upload.Filename,
		Size:     upload.Size,
	}, nil
}

func (s *intakeService) AssignBatch(ctx context.Context, userId, sessionId string, files []*multipart.FileHeader) (*dto.BatchUploadResponse, error) {
	session, err := loadSession(s.sessionRepo, userId, sessionId)
	if err != nil {
		return nil, err
	}

	s.sessionRepo.Lock(session.ID)
	defer s.sessionRepo.Unlock(session.ID)

	res := &dto.BatchUploadResponse{}
	for _, file := range files {
		key := constant.BatchKeyPrefix + file.Filename
		upload, err := acceptUpload(key, file)
		if err != nil {
			if res.Rejected == nil {
				res.Rejected = map[string]string{}
			}
			res.Rejected[file.Filename] = err.Error()
			continue
		}

		session.RemoveUpload(key)
		session.Uploads = append(session.Uploads, *upload)
		res.Accepted = append(res.Accepted, dto.UploadInfo{
			Key:      upload.Key,
			Filename: upload.Filename,
			Size:     upload.Size,
		})
	}

	s.sessionRepo.Save(session)
	return res, nil
}

func (s *intakeService) Remove(ctx context.Context, userId, sessionId, key string) error {
	session, err := loadSession(s.sessionRepo, userId, sessionId)
	if err != nil {
		return err
	}
	s.sessionRepo.Lock(session.ID)
	defer s.sessionRepo.Unlock(session.ID)
	if !session.RemoveUpload(key) {
		return fiber.NewError(fiber.StatusNotFound, "no upload for key")
	}
	s.sessionRepo.Save(session)
	return nil
}

// EncodeAll turns the upload arena into the data URL map the analysis
// backend expects. Uploads with no bytes are dropped, the rest of the
// batch still goes out.
func (s *intakeService) EncodeAll(session *store.ReportSession) map[string]trends.FilePayload {
	if len(session.Uploads) == 0 {
		return nil
	}

	out := make(map[string]trends.FilePayload, len(session.Uploads))
	for _, upload := range session.Uploads {
		if len(upload.Data) == 0 {
			s.log.Warn("intake", "skipping empty upload", map[string]interface{}{
				"session_id": session.ID,
				"key":        upload.Key,
				"filename":   upload.Filename,
			})
			continue
		}

		mimeType := upload.MIMEType
		if mimeType == "" {
			mimeType = "application/octet-stream"
		}

		out[upload.Key] = trends.FilePayload{
			Filename: upload.Filename,
			Type:     mimeType,
			Content:  "data:" + mimeType + ";base64," + base64.StdEncoding.EncodeToString(upload.Data),
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
