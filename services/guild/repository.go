package guild

import (
	"context"
	"time"

	"github.com/Modr3d/Seven-Knights-Rebirth-GBRS/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/Modr3d/Seven-Knights-Rebirth-GBRS/services/guild GuildRepo

// GuildRepo defines the persistence operations of the guild service.
// Single-row lookups return (nil, nil) when nothing matches.
type GuildRepo interface {
	// members
	GetMemberByName(ctx context.Context, name string) (*models.GuildMember, error)
	ListMemberNames(ctx context.Context) ([]string, error)

	// one-time passcodes
	DeleteExpiredOTPs(ctx context.Context, now time.Time) (int64, error)
	GetOTP(ctx context.Context, character, code string) (*models.OTP, error)
	CreateOTP(ctx context.Context, otp *models.OTP) error
	DeleteOTP(ctx context.Context, id int64) error

	// seasons
	GetActiveSeason(ctx context.Context) (*models.Season, error)
	GetSeason(ctx context.Context, number int) (*models.Season, error)

	// scores and attack orders
	UpsertScore(ctx context.Context, sub models.ScoreSubmission) error
	ListScores(ctx context.Context, season *int) ([]models.ScoreView, error)
	ListAttackOrders(ctx context.Context, season int) ([]models.AttackOrder, error)
}
