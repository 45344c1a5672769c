package repository

import (
	"context"
	"fmt"

	"github.com/Modr3d/Seven-Knights-Rebirth-GBRS/internal/pkg/models"
)

// ListAttackOrders returns a season's attack slots ordered by member then slot
func (r *GuildRepo) ListAttackOrders(ctx context.Context, season int) ([]models.AttackOrder, error) {
	query := `
		SELECT a.member_id, m.name, a.boss_id, a.season_number, a.attack_order
		FROM boss_attack_orders a
		JOIN tbl_guildmember m ON m.id = a.member_id
		WHERE a.season_number = $1
		ORDER BY a.member_id, a.attack_order
	`

	orders := []models.AttackOrder{}
	if err := r.db.SelectContext(ctx, &orders, query, season); err != nil {
		return nil, fmt.Errorf("failed to list attack orders: %w", err)
	}

	return orders, nil
}
