package http

import (
	"net/http"

	"github.com/Modr3d/Seven-Knights-Rebirth-GBRS/internal/pkg/middleware"
	"github.com/Modr3d/Seven-Knights-Rebirth-GBRS/internal/pkg/models"
	"github.com/Modr3d/Seven-Knights-Rebirth-GBRS/internal/utils"
	"github.com/Modr3d/Seven-Knights-Rebirth-GBRS/services/guild"
	"github.com/labstack/echo/v4"
)

// ScoreHandler handles score submission and listing
type ScoreHandler struct {
	guildUC guild.GuildUC
}

// NewScoreHandler creates a new score handler
func NewScoreHandler(guildUC guild.GuildUC) *ScoreHandler {
	return &ScoreHandler{guildUC: guildUC}
}

// SubmitScore handles POST /scores/submit for the authenticated member
func (h *ScoreHandler) SubmitScore(c echo.Context) error {
	user, ok := middleware.SessionUser(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var req models.SubmitScoreRequest
	if ok, err := bindAndValidate(c, &req, "SubmitScore", ""); !ok {
		return err
	}

	if err := h.guildUC.SubmitScore(c.Request().Context(), user.GuildMemberID, &req); err != nil {
		return utils.HandleError(c, "SubmitScore", err)
	}

	return c.JSON(http.StatusOK, models.StatusResponse{Status: "saved"})
}

// ListScores handles GET /scores/list
func (h *ScoreHandler) ListScores(c echo.Context) error {
	season, ok := seasonQuery(c)
	if !ok {
		return utils.BadRequestResponse(c, "Invalid season_number")
	}

	scores, err := h.guildUC.ListScores(c.Request().Context(), season)
	if err != nil {
		return utils.HandleError(c, "ListScores", err)
	}

	return c.JSON(http.StatusOK, scores)
}
