package usecase

import (
	"testing"
	"time"

	"github.com/Modr3d/Seven-Knights-Rebirth-GBRS/internal/pkg/models"
	"github.com/Modr3d/Seven-Knights-Rebirth-GBRS/services/guild/mocks"
	"github.com/golang/mock/gomock"
)

type (
	mocksRepo = mocks.MockGuildRepo
	mocksGW   = mocks.MockGuildGW
)

var fixedNow = time.Now().UTC().Truncate(time.Second)

func testConfig() *models.Config {
	return &models.Config{
		JWT: models.JWTConfig{
			Secret:     "test-secret",
			Expiration: 15,
			Issuer:     "test-issuer",
		},
		OTP: models.OTPConfig{
			TTL:      time.Hour,
			Cooldown: 8 * time.Hour,
		},
	}
}

func setupGuildUC(t *testing.T) (*GuildUC, *mocks.MockGuildRepo, *mocks.MockGuildGW) {
	ctrl := gomock.NewController(t)

	mockRepo := mocks.NewMockGuildRepo(ctrl)
	mockGW := mocks.NewMockGuildGW(ctrl)

	uc := NewGuildUC(mockRepo, mockGW, testConfig(), nil)
	uc.now = func() time.Time { return fixedNow }
	uc.generateCode = func() (string, error) { return "482913", nil }

	return uc, mockRepo, mockGW
}
