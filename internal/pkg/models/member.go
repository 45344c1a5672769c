package models

import "time"

// GuildMember is a registered character and the Discord account that owns it
type GuildMember struct {
	ID        int64     `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	DiscordID string    `json:"discord_id" db:"discord_id"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	// LastOTPAt is when the member was last sent a passcode, nil if never
	LastOTPAt *time.Time `json:"-" db:"last_otp_at"`
}

// OTPCooldownRemaining returns how long the member must wait before another
// passcode may be issued at now
func (m *GuildMember) OTPCooldownRemaining(now time.Time, cooldown time.Duration) time.Duration {
	if m.LastOTPAt == nil {
		return 0
	}
	remaining := cooldown - now.Sub(*m.LastOTPAt)
	if remaining < 0 {
		return 0
	}
	return remaining
}

// CharactersResponse lists member display names
type CharactersResponse struct {
	Characters []string `json:"characters"`
}

// SessionUser is the identity carried by a session token
type SessionUser struct {
	Character     string `json:"character"`
	GuildMemberID int64  `json:"guildmember_id"`
}
