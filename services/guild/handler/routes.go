package handler

import (
	"net/http"

	"github.com/Modr3d/Seven-Knights-Rebirth-GBRS/internal/pkg/middleware"
	"github.com/Modr3d/Seven-Knights-Rebirth-GBRS/internal/pkg/models"
	guildhttp "github.com/Modr3d/Seven-Knights-Rebirth-GBRS/services/guild/handler/http"
	"github.com/go-redis/redis/v8"
	"github.com/labstack/echo/v4"
)

// Handler coordinates the HTTP handlers of the guild service
type Handler struct {
	authHandler   *guildhttp.AuthHandler
	scoreHandler  *guildhttp.ScoreHandler
	rosterHandler *guildhttp.RosterHandler
	redisClient   *redis.Client
	cfg           *models.Config
}

// NewHandler creates and initializes all handlers. redisClient may be nil,
// in which case auth routes are not rate limited.
func NewHandler(
	authHandler *guildhttp.AuthHandler,
	scoreHandler *guildhttp.ScoreHandler,
	rosterHandler *guildhttp.RosterHandler,
	redisClient *redis.Client,
	cfg *models.Config,
) *Handler {
	return &Handler{
		authHandler:   authHandler,
		scoreHandler:  scoreHandler,
		rosterHandler: rosterHandler,
		redisClient:   redisClient,
		cfg:           cfg,
	}
}

// RegisterRoutes registers all guild routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	e.GET("/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, models.StatusResponse{Status: "ok"})
	})

	// auth
	authGroup := e.Group("/auth")
	if h.redisClient != nil {
		authGroup.Use(middleware.IPRateLimiter(h.cfg.RateLimit.Limit, h.cfg.RateLimit.Period, h.redisClient))
	}
	authGroup.POST("/request-otp", h.authHandler.RequestOTP)
	authGroup.POST("/verify-otp", h.authHandler.VerifyOTP)

	// public views
	e.GET("/characters", h.rosterHandler.ListCharacters)
	e.GET("/bosses", h.rosterHandler.ListBosses)
	e.GET("/seasons/active", h.rosterHandler.ActiveSeason)

	// authenticated routes
	jwtMiddleware := middleware.JWTAuthMiddleware(h.cfg.JWT)

	scoreGroup := e.Group("/scores", jwtMiddleware)
	scoreGroup.GET("/list", h.scoreHandler.ListScores)
	scoreGroup.POST("/submit", h.scoreHandler.SubmitScore)

	e.GET("/attackorders", h.rosterHandler.ListAttackOrders, jwtMiddleware)
}
