package service

import (
	"context"
	"testing"
	"time"

	"smart-summary-be/internal/constant"
	"smart-summary-be/internal/repository/memory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIndicatorAdd(t *testing.T) {
	repo := memory.NewSessionRepository(time.Hour)
	svc := NewIndicatorService(repo, testLogger{})
	session := seedSession(repo, "user-1")

	selected, err := svc.Add(context.Background(), "user-1", session.ID, []string{
		"Consumer Price Index (CPI-U)",
		"Real GDP", // already in the default selection
		"Not An Indicator",
	})
	require.NoError(t, err)

	assert.Contains(t, selected, "Consumer Price Index (CPI-U)")
	assert.NotContains(t, selected, "Not An Indicator")
	assert.Len(t, selected, len(constant.DefaultIndicators)+1)
}

func TestIndicatorAddClampsToMax(t *testing.T) {
	repo := memory.NewSessionRepository(time.Hour)
	svc := NewIndicatorService(repo, testLogger{})
	session := seedSession(repo, "user-1")

	selected, err := svc.Add(context.Background(), "user-1", session.ID, []string{
		"Consumer Price Index (CPI-U)",
		"Effective Federal Funds Rate",
		"Trade Balance",
	})
	require.NoError(t, err)
	assert.Len(t, selected, constant.MaxIndicators)

	// Earlier selections win when the cap cuts
	assert.Contains(t, selected, "Consumer Price Index (CPI-U)")
	assert.NotContains(t, selected, "Trade Balance")
}

func TestIndicatorRemove(t *testing.T) {
	repo := memory.NewSessionRepository(time.Hour)
	svc := NewIndicatorService(repo, testLogger{})
	session := seedSession(repo, "user-1")

	selected, err := svc.Remove(context.Background(), "user-1", session.ID, "Real GDP")
	require.NoError(t, err)
	assert.NotContains(t, selected, "Real GDP")
	assert.Len(t, selected, len(constant.DefaultIndicators)-1)

	// Removing something absent is a no-op
	selected, err = svc.Remove(context.Background(), "user-1", session.ID, "Real GDP")
	require.NoError(t, err)
	assert.Len(t, selected, len(constant.DefaultIndicators)-1)
}
