package http

import (
	"net/http"

	"github.com/Modr3d/Seven-Knights-Rebirth-GBRS/internal/pkg/models"
	"github.com/Modr3d/Seven-Knights-Rebirth-GBRS/internal/utils"
	"github.com/Modr3d/Seven-Knights-Rebirth-GBRS/services/guild"
	"github.com/labstack/echo/v4"
)

// RosterHandler serves the read-only guild views
type RosterHandler struct {
	guildUC guild.GuildUC
}

// NewRosterHandler creates a new roster handler
func NewRosterHandler(guildUC guild.GuildUC) *RosterHandler {
	return &RosterHandler{guildUC: guildUC}
}

// ListCharacters handles GET /characters
func (h *RosterHandler) ListCharacters(c echo.Context) error {
	names, err := h.guildUC.ListCharacters(c.Request().Context())
	if err != nil {
		return utils.HandleError(c, "ListCharacters", err)
	}

	return c.JSON(http.StatusOK, models.CharactersResponse{Characters: names})
}

// ListBosses handles GET /bosses
func (h *RosterHandler) ListBosses(c echo.Context) error {
	return c.JSON(http.StatusOK, models.BossesResponse{Bosses: models.Bosses})
}
