package gateway

import (
	"context"
	"fmt"
)

const otpMessageFormat = "Your OTP: **%s**"

// SendOTP sends the passcode to the member's Discord account
func (g *GuildGW) SendOTP(ctx context.Context, discordID, code string) error {
	content := fmt.Sprintf(otpMessageFormat, code)
	err := g.retrier.Execute(ctx, func(ctx context.Context) error {
		return g.discord.SendDirectMessage(ctx, discordID, content)
	})
	if err != nil {
		return fmt.Errorf("failed to deliver OTP: %w", err)
	}
	return nil
}
