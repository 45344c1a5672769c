package http

import (
	"net/http"

	"github.com/Modr3d/Seven-Knights-Rebirth-GBRS/internal/pkg/models"
	"github.com/Modr3d/Seven-Knights-Rebirth-GBRS/internal/utils"
	"github.com/labstack/echo/v4"
)

// ActiveSeason handles GET /seasons/active
func (h *RosterHandler) ActiveSeason(c echo.Context) error {
	season, err := h.guildUC.ActiveSeason(c.Request().Context())
	if err != nil {
		return utils.HandleError(c, "ActiveSeason", err)
	}

	return c.JSON(http.StatusOK, models.ActiveSeasonResponse{SeasonNumber: season.Number})
}
