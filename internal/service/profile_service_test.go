package service

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"smart-summary-be/internal/dto"
	"smart-summary-be/internal/repository/memory"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePublisher struct {
	published [][]byte
}

func (p *fakePublisher) Publish(ctx context.Context, payload []byte) error {
	p.published = append(p.published, payload)
	return nil
}

func TestUpdateProfile(t *testing.T) {
	repo := memory.NewSessionRepository(time.Hour)
	pub := &fakePublisher{}
	svc := NewProfileService(repo, pub, testLogger{})
	session := seedSession(repo, "user-1")

	res, err := svc.UpdateProfile(context.Background(), "user-1", session.ID, &dto.UpdateProfileRequest{
		CompanyName: "  Acme Stores  ",
		NaicsCode:   "448120",
		State:       "fl",
		Keywords:    "clothing, retail",
		Competitors: []dto.CompetitorItem{
			{Name: "Tapestry Inc.", Cik: "0001116132"},
			{Cik: "0000896878"},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "Acme Stores", res.Profile.CompanyName)
	assert.Equal(t, "FL", res.Profile.State)
	require.Len(t, res.Profile.Competitors, 2)
	assert.Equal(t, "0001116132", res.Profile.Competitors[0].Cik)
	assert.Empty(t, pub.published)
}

func TestUpdateProfileUnknownState(t *testing.T) {
	repo := memory.NewSessionRepository(time.Hour)
	svc := NewProfileService(repo, &fakePublisher{}, testLogger{})
	session := seedSession(repo, "user-1")

	_, err := svc.UpdateProfile(context.Background(), "user-1", session.ID, &dto.UpdateProfileRequest{
		CompanyName: "Acme",
		NaicsCode:   "448120",
		State:       "ZZ",
	})

	var fe *fiber.Error
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, fiber.StatusBadRequest, fe.Code)
}

func TestUpdateProfileSaveToProfilePublishes(t *testing.T) {
	repo := memory.NewSessionRepository(time.Hour)
	pub := &fakePublisher{}
	svc := NewProfileService(repo, pub, testLogger{})
	session := seedSession(repo, "user-1")

	_, err := svc.UpdateProfile(context.Background(), "user-1", session.ID, &dto.UpdateProfileRequest{
		CompanyName:   "Acme Stores",
		NaicsCode:     "448120",
		State:         "FL",
		Keywords:      "clothing",
		SaveToProfile: true,
	})
	require.NoError(t, err)
	require.Len(t, pub.published, 1)

	var msg dto.SaveProfileMessage
	require.NoError(t, json.Unmarshal(pub.published[0], &msg))
	assert.Equal(t, "user-1", msg.UserId)
	assert.Equal(t, "Acme Stores", msg.CompanyName)
	assert.Equal(t, "448120", msg.NaicsCode)
	assert.Equal(t, "FL", msg.State)
	assert.Equal(t, "clothing", msg.Keywords)
}
