package guild

import (
	"context"

	"github.com/Modr3d/Seven-Knights-Rebirth-GBRS/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/Modr3d/Seven-Knights-Rebirth-GBRS/services/guild GuildUC

// GuildUC represents the guild usecase interface. Errors carry apperror kinds.
type GuildUC interface {
	// authentication
	RequestOTP(ctx context.Context, character string) error
	VerifyOTP(ctx context.Context, character, code string) (*models.TokenResponse, error)

	// scores
	SubmitScore(ctx context.Context, guildMemberID int64, req *models.SubmitScoreRequest) error

	// read views
	ListCharacters(ctx context.Context) ([]string, error)
	ListScores(ctx context.Context, season *int) ([]models.ScoreView, error)
	ListAttackOrders(ctx context.Context, season *int) ([]models.MemberAttack, error)
	ActiveSeason(ctx context.Context) (*models.Season, error)
}
