// Package router đăng ký các route thuộc domain forecast (proxy).
package router

import (
	"github.com/gofiber/fiber/v3"

	forecasthdl "campus_mess/internal/api/forecast/handler"
	"campus_mess/internal/api/middleware"
	apirouter "campus_mess/internal/api/router"
)

// Register đăng ký tất cả route forecast lên v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	forecastHandler := forecasthdl.NewForecastHandler()

	sessionMiddleware := middleware.SessionMiddleware()
	sessionOnly := []fiber.Handler{sessionMiddleware}

	// GET /admin/forecast/weekly?weeks= — dự báo số suất ăn các tuần tới
	apirouter.RegisterRouteWithMiddleware(v1, "/admin", "GET", "/forecast/weekly", sessionOnly, forecastHandler.HandleWeeklyForecast)

	// GET /admin/forecast/ingredients — dự báo nhu cầu nguyên liệu
	apirouter.RegisterRouteWithMiddleware(v1, "/admin", "GET", "/forecast/ingredients", sessionOnly, forecastHandler.HandleIngredientForecast)

	return nil
}
