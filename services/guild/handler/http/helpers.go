package http

import (
	"strconv"

	"github.com/Modr3d/Seven-Knights-Rebirth-GBRS/internal/pkg/logger"
	"github.com/Modr3d/Seven-Knights-Rebirth-GBRS/internal/utils"
	"github.com/labstack/echo/v4"
)

const seasonQueryParam = "season_number"

// bindAndValidate decodes the JSON body into req and runs struct validation.
// On failure it writes the 400 response and returns false. A non-empty
// invalidMsg replaces the generated validation message.
func bindAndValidate(c echo.Context, req interface{}, endpoint, invalidMsg string) (bool, error) {
	if err := c.Bind(req); err != nil {
		logger.Warn("Invalid request payload",
			logger.ErrorField(err),
			logger.String("endpoint", endpoint),
		)
		return false, utils.BadRequestResponse(c, "Invalid request payload")
	}
	if err := c.Validate(req); err != nil {
		if invalidMsg == "" {
			invalidMsg = utils.ValidationMessage(err)
		}
		return false, utils.BadRequestResponse(c, invalidMsg)
	}
	return true, nil
}

// seasonQuery reads the optional season_number query parameter
func seasonQuery(c echo.Context) (*int, bool) {
	raw := c.QueryParam(seasonQueryParam)
	if raw == "" {
		return nil, true
	}
	season, err := strconv.Atoi(raw)
	if err != nil {
		return nil, false
	}
	return &season, true
}
