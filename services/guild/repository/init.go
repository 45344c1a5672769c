package repository

import (
	"github.com/Modr3d/Seven-Knights-Rebirth-GBRS/internal/pkg/models"
	"github.com/jmoiron/sqlx"
)

// GuildRepo implements guild.GuildRepo on PostgreSQL
type GuildRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewGuildRepo creates a new guild repository
func NewGuildRepo(cfg *models.Config, db *sqlx.DB) *GuildRepo {
	return &GuildRepo{
		cfg: cfg,
		db:  db,
	}
}
