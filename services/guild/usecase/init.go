package usecase

import (
	"time"

	"github.com/Modr3d/Seven-Knights-Rebirth-GBRS/internal/pkg/metrics"
	"github.com/Modr3d/Seven-Knights-Rebirth-GBRS/internal/pkg/models"
	"github.com/Modr3d/Seven-Knights-Rebirth-GBRS/internal/utils"
	"github.com/Modr3d/Seven-Knights-Rebirth-GBRS/services/guild"
)

// GuildUC implements guild.GuildUC
type GuildUC struct {
	guildRepo guild.GuildRepo
	guildGW   guild.GuildGW
	cfg       *models.Config
	metrics   *metrics.Metrics

	now          func() time.Time
	generateCode func() (string, error)
}

// NewGuildUC creates a new guild usecase instance. m may be nil.
func NewGuildUC(
	guildRepo guild.GuildRepo,
	guildGW guild.GuildGW,
	cfg *models.Config,
	m *metrics.Metrics,
) *GuildUC {
	return &GuildUC{
		guildRepo:    guildRepo,
		guildGW:      guildGW,
		cfg:          cfg,
		metrics:      m,
		now:          time.Now,
		generateCode: utils.GenerateOTP,
	}
}
