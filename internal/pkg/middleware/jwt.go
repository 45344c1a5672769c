package middleware

import (
	"strings"

	jwtpkg "github.com/Modr3d/Seven-Knights-Rebirth-GBRS/internal/pkg/jwt"
	"github.com/Modr3d/Seven-Knights-Rebirth-GBRS/internal/pkg/models"
	"github.com/Modr3d/Seven-Knights-Rebirth-GBRS/internal/utils"
	"github.com/labstack/echo/v4"
)

// Context keys set by JWTAuthMiddleware
const (
	ContextKeyGuildMemberID = "guildmember_id"
	ContextKeyCharacter     = "character"
	ContextKeySessionUser   = "session_user"
)

// JWTAuthMiddleware creates a middleware for JWT authentication
func JWTAuthMiddleware(config models.JWTConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
			if authHeader == "" {
				return utils.UnauthorizedResponse(c, "Authorization header is required")
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
				return utils.UnauthorizedResponse(c, "Invalid authorization format")
			}

			claims, err := jwtpkg.ValidateToken(parts[1], config.Secret)
			if err != nil {
				return utils.UnauthorizedResponse(c, "Invalid token")
			}

			user := claims.SessionUser()
			c.Set(ContextKeyGuildMemberID, user.GuildMemberID)
			c.Set(ContextKeyCharacter, user.Character)
			c.Set(ContextKeySessionUser, user)

			return next(c)
		}
	}
}

// SessionUser returns the authenticated caller stored by JWTAuthMiddleware
func SessionUser(c echo.Context) (models.SessionUser, bool) {
	user, ok := c.Get(ContextKeySessionUser).(models.SessionUser)
	return user, ok
}
