package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/Modr3d/Seven-Knights-Rebirth-GBRS/internal/pkg/models"
	"github.com/golang-jwt/jwt/v4"
)

var (
	ErrInvalidToken  = errors.New("invalid token")
	ErrMissingClaims = errors.New("token is missing session claims")
)

// Claims carries the session identity plus standard JWT claims
type Claims struct {
	Character     string `json:"character"`
	GuildMemberID int64  `json:"guildmember_id"`
	jwt.RegisteredClaims
}

// GenerateToken signs a session token for the given member. It returns the
// token and its expiry as a unix timestamp.
func GenerateToken(character string, guildMemberID int64, cfg models.JWTConfig, now time.Time) (string, int64, error) {
	expirationTime := now.Add(time.Duration(cfg.Expiration) * time.Minute)

	claims := Claims{
		Character:     character,
		GuildMemberID: guildMemberID,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    cfg.Issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expirationTime),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(cfg.Secret))
	if err != nil {
		return "", 0, fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, expirationTime.Unix(), nil
}

// ValidateToken parses and verifies a session token
func ValidateToken(tokenString string, secret string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !token.Valid {
		return nil, ErrInvalidToken
	}
	if claims.Character == "" || claims.GuildMemberID == 0 {
		return nil, ErrMissingClaims
	}

	return claims, nil
}

// SessionUser returns the identity carried by the claims
func (c *Claims) SessionUser() models.SessionUser {
	return models.SessionUser{
		Character:     c.Character,
		GuildMemberID: c.GuildMemberID,
	}
}
