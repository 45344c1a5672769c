package gateway

import (
	"context"
	"errors"

	"github.com/Modr3d/Seven-Knights-Rebirth-GBRS/internal/pkg/discord"
	"github.com/Modr3d/Seven-Knights-Rebirth-GBRS/internal/pkg/retry"
)

// DirectMessageSender delivers a plain-text direct message to a Discord user
type DirectMessageSender interface {
	SendDirectMessage(ctx context.Context, discordID string, content string) error
}

// GuildGW implements guild.GuildGW
type GuildGW struct {
	discord DirectMessageSender
	retrier *retry.Retrier
}

// NewGuildGW creates a new gateway backed by a Discord sender. A nil retrier
// sends each message once.
func NewGuildGW(sender DirectMessageSender, retrier *retry.Retrier) *GuildGW {
	if retrier == nil {
		retrier = retry.New(retry.Config{}, nil)
	}
	return &GuildGW{discord: sender, retrier: retrier}
}

// DeliveryRetryConfig backs off on transient Discord failures but gives up
// immediately on ids that can never be messaged.
func DeliveryRetryConfig() retry.Config {
	cfg := retry.DefaultConfig()
	cfg.Retryable = func(err error) bool {
		return retry.NotCanceled(err) && !errors.Is(err, discord.ErrInvalidDiscordID)
	}
	return cfg
}
