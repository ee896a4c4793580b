// Package forecasthdl - Handler proxy dự báo.
package forecasthdl

import (
	"strconv"

	basehdl "campus_mess/internal/api/base/handler"
	forecastsvc "campus_mess/internal/api/forecast/service"

	"github.com/gofiber/fiber/v3"
)

// ForecastHandler xử lý các route /admin/forecast/*.
type ForecastHandler struct {
	Client *forecastsvc.ForecastClient
}

// NewForecastHandler tạo ForecastHandler mới.
func NewForecastHandler() *ForecastHandler {
	return &ForecastHandler{Client: forecastsvc.NewForecastClient()}
}

// HandleWeeklyForecast xử lý GET /admin/forecast/weekly?weeks=.
func (h *ForecastHandler) HandleWeeklyForecast(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		weeks := 1
		if s := c.Query("weeks"); s != "" {
			if n, err := strconv.Atoi(s); err == nil && n > 0 {
				weeks = n
			}
		}

		data, err := h.Client.WeeklyForecast(c.Context(), weeks)
		if err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}
		basehdl.HandleResponse(c, data, nil)
		return nil
	})
}

// HandleIngredientForecast xử lý GET /admin/forecast/ingredients.
func (h *ForecastHandler) HandleIngredientForecast(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		data, err := h.Client.IngredientForecast(c.Context())
		if err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}
		basehdl.HandleResponse(c, data, nil)
		return nil
	})
}
