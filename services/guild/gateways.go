package guild

import "context"

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/Modr3d/Seven-Knights-Rebirth-GBRS/services/guild GuildGW

// GuildGW defines the outbound integrations of the guild service
type GuildGW interface {
	// SendOTP delivers a passcode to the Discord account that owns a character
	SendOTP(ctx context.Context, discordID, code string) error
}
