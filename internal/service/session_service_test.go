package service

import (
	"context"
	"testing"
	"time"

	"smart-summary-be/internal/constant"
	"smart-summary-be/internal/dto"
	"smart-summary-be/internal/repository/memory"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionCreateAndShow(t *testing.T) {
	repo := memory.NewSessionRepository(time.Hour)
	svc := NewSessionService(repo, nil, testLogger{})

	created, err := svc.Create(context.Background(), "user-1")
	require.NoError(t, err)
	require.NotEmpty(t, created.Id)

	shown, err := svc.Show(context.Background(), "user-1", created.Id)
	require.NoError(t, err)
	assert.Equal(t, constant.DefaultTemplateLabel, shown.Template)
	assert.Equal(t, constant.DefaultIndicators, shown.Indicators)
	assert.False(t, shown.HasReport)
	assert.Empty(t, shown.Uploads)
}

func TestSessionShowEnforcesOwnership(t *testing.T) {
	repo := memory.NewSessionRepository(time.Hour)
	svc := NewSessionService(repo, nil, testLogger{})

	created, err := svc.Create(context.Background(), "user-1")
	require.NoError(t, err)

	_, err = svc.Show(context.Background(), "user-2", created.Id)
	var fe *fiber.Error
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, fiber.StatusNotFound, fe.Code)
}

func TestSessionUpdateTemplate(t *testing.T) {
	repo := memory.NewSessionRepository(time.Hour)
	svc := NewSessionService(repo, nil, testLogger{})

	created, err := svc.Create(context.Background(), "user-1")
	require.NoError(t, err)

	err = svc.UpdateTemplate(context.Background(), "user-1", created.Id, &dto.UpdateTemplateRequest{
		Label: "Narrative style (Formal, personable letter)",
	})
	require.NoError(t, err)

	err = svc.UpdateTemplate(context.Background(), "user-1", created.Id, &dto.UpdateTemplateRequest{
		Label:      constant.CustomTemplateLabel,
		CustomText: "Keep it short.",
	})
	require.NoError(t, err)

	shown, err := svc.Show(context.Background(), "user-1", created.Id)
	require.NoError(t, err)
	assert.Equal(t, constant.CustomTemplateLabel, shown.Template)
	assert.Equal(t, "Keep it short.", shown.CustomText)

	err = svc.UpdateTemplate(context.Background(), "user-1", created.Id, &dto.UpdateTemplateRequest{
		Label: "No Such Template",
	})
	var fe *fiber.Error
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, fiber.StatusBadRequest, fe.Code)
}
