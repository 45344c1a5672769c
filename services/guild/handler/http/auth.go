package http

import (
	"net/http"

	"github.com/Modr3d/Seven-Knights-Rebirth-GBRS/internal/pkg/models"
	"github.com/Modr3d/Seven-Knights-Rebirth-GBRS/internal/utils"
	"github.com/Modr3d/Seven-Knights-Rebirth-GBRS/services/guild"
	"github.com/labstack/echo/v4"
)

// AuthHandler handles the OTP login flow
type AuthHandler struct {
	guildUC guild.GuildUC
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(guildUC guild.GuildUC) *AuthHandler {
	return &AuthHandler{guildUC: guildUC}
}

// RequestOTP handles POST /auth/request-otp
func (h *AuthHandler) RequestOTP(c echo.Context) error {
	var req models.OTPRequest
	if ok, err := bindAndValidate(c, &req, "RequestOTP", ""); !ok {
		return err
	}

	if err := h.guildUC.RequestOTP(c.Request().Context(), req.Character); err != nil {
		return utils.HandleError(c, "RequestOTP", err)
	}

	return c.JSON(http.StatusOK, models.StatusResponse{Status: "otp_sent"})
}

// VerifyOTP handles POST /auth/verify-otp
func (h *AuthHandler) VerifyOTP(c echo.Context) error {
	var req models.VerifyRequest
	if ok, err := bindAndValidate(c, &req, "VerifyOTP", models.MissingVerifyFieldsMessage); !ok {
		return err
	}

	resp, err := h.guildUC.VerifyOTP(c.Request().Context(), req.Character, req.OTP)
	if err != nil {
		return utils.HandleError(c, "VerifyOTP", err)
	}

	return c.JSON(http.StatusOK, resp)
}
