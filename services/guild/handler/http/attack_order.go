package http

import (
	"net/http"

	"github.com/Modr3d/Seven-Knights-Rebirth-GBRS/internal/pkg/models"
	"github.com/Modr3d/Seven-Knights-Rebirth-GBRS/internal/utils"
	"github.com/labstack/echo/v4"
)

// ListAttackOrders handles GET /attackorders
func (h *RosterHandler) ListAttackOrders(c echo.Context) error {
	season, ok := seasonQuery(c)
	if !ok {
		return utils.BadRequestResponse(c, "Invalid season_number")
	}

	attacks, err := h.guildUC.ListAttackOrders(c.Request().Context(), season)
	if err != nil {
		return utils.HandleError(c, "ListAttackOrders", err)
	}

	return c.JSON(http.StatusOK, models.AttackOrdersResponse{MemberAttacks: attacks})
}
