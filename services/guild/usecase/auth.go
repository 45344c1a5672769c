package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Modr3d/Seven-Knights-Rebirth-GBRS/internal/pkg/apperror"
	jwtpkg "github.com/Modr3d/Seven-Knights-Rebirth-GBRS/internal/pkg/jwt"
	"github.com/Modr3d/Seven-Knights-Rebirth-GBRS/internal/pkg/logger"
	"github.com/Modr3d/Seven-Knights-Rebirth-GBRS/internal/pkg/models"
)

// otpCooldownMessage renders the cooldown as "8 hours" style text
func otpCooldownMessage(cooldown time.Duration) string {
	window := cooldown.String()
	if hours := int64(cooldown / time.Hour); hours > 0 && cooldown%time.Hour == 0 {
		window = fmt.Sprintf("%d hours", hours)
		if hours == 1 {
			window = "hour"
		}
	}
	return "You can request OTP only once every " + window
}

// RequestOTP issues a passcode for a character and DMs it to the owner.
// A character may receive at most one code per cooldown window.
func (u *GuildUC) RequestOTP(ctx context.Context, character string) error {
	if character == "" {
		return apperror.BadRequest("Missing character")
	}

	member, err := u.guildRepo.GetMemberByName(ctx, character)
	if err != nil {
		return apperror.Internal("failed to look up character", err)
	}
	if member == nil {
		u.metrics.ObserveOTPRequest("unknown_character")
		return apperror.NotFound("Character not found")
	}

	now := u.now()

	// housekeeping only; a failure here must not block the request
	if deleted, err := u.guildRepo.DeleteExpiredOTPs(ctx, now); err != nil {
		logger.Warn("Failed to delete expired OTPs", logger.ErrorField(err))
	} else if deleted > 0 {
		logger.Debug("Deleted expired OTPs", logger.Int64("count", deleted))
	}

	if remaining := member.OTPCooldownRemaining(now, u.cfg.OTP.Cooldown); remaining > 0 {
		u.metrics.ObserveOTPRequest("rate_limited")
		return &apperror.RateLimitError{
			Message:    otpCooldownMessage(u.cfg.OTP.Cooldown),
			RetryAfter: remaining,
		}
	}

	code, err := u.generateCode()
	if err != nil {
		return apperror.Internal("failed to generate OTP", err)
	}

	if err := u.guildGW.SendOTP(ctx, member.DiscordID, code); err != nil {
		u.metrics.ObserveOTPRequest("delivery_failed")
		return apperror.Internal("failed to send OTP", err)
	}

	otp := &models.OTP{
		DiscordID: member.DiscordID,
		Character: character,
		Code:      code,
		CreatedAt: now,
		ExpiresAt: now.Add(u.cfg.OTP.TTL),
	}
	if err := u.guildRepo.CreateOTP(ctx, otp); err != nil {
		return apperror.Internal("failed to store OTP", err)
	}

	u.metrics.ObserveOTPRequest("sent")
	logger.Info("OTP sent",
		logger.String("character", character),
		logger.Int64("guildmember_id", member.ID))

	return nil
}

// VerifyOTP consumes a passcode and returns a session token
func (u *GuildUC) VerifyOTP(ctx context.Context, character, code string) (*models.TokenResponse, error) {
	if character == "" || code == "" {
		return nil, apperror.BadRequest(models.MissingVerifyFieldsMessage)
	}

	otp, err := u.guildRepo.GetOTP(ctx, character, code)
	if err != nil {
		return nil, apperror.Internal("failed to look up OTP", err)
	}
	if otp == nil {
		u.metrics.ObserveOTPVerification("invalid")
		return nil, apperror.InvalidCredential("Invalid OTP")
	}

	now := u.now()
	if otp.IsExpired(now) {
		if err := u.guildRepo.DeleteOTP(ctx, otp.ID); err != nil {
			logger.Warn("Failed to delete expired OTP",
				logger.Int64("otp_id", otp.ID),
				logger.ErrorField(err))
		}
		u.metrics.ObserveOTPVerification("expired")
		return nil, apperror.Expired("OTP expired")
	}

	if err := u.guildRepo.DeleteOTP(ctx, otp.ID); err != nil {
		return nil, apperror.Internal("failed to consume OTP", err)
	}

	member, err := u.guildRepo.GetMemberByName(ctx, character)
	if err != nil {
		return nil, apperror.Internal("failed to look up character", err)
	}
	if member == nil {
		return nil, apperror.Internal("failed to look up character", errors.New("member missing for a verified OTP"))
	}

	token, _, err := jwtpkg.GenerateToken(character, member.ID, u.cfg.JWT, now)
	if err != nil {
		return nil, apperror.Internal("failed to issue token", err)
	}

	u.metrics.ObserveOTPVerification("ok")
	logger.Info("OTP verified",
		logger.String("character", character),
		logger.Int64("guildmember_id", member.ID))

	return &models.TokenResponse{Token: token}, nil
}
