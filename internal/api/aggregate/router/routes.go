// Package router đăng ký các route thuộc domain aggregate (kích hoạt thủ công).
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	aggregatehdl "campus_mess/internal/api/aggregate/handler"
	"campus_mess/internal/api/middleware"
	apirouter "campus_mess/internal/api/router"
)

// Register đăng ký tất cả route aggregate lên v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	aggregateHandler, err := aggregatehdl.NewAggregateHandler()
	if err != nil {
		return fmt.Errorf("tạo AggregateHandler: %w", err)
	}

	sessionMiddleware := middleware.SessionMiddleware()
	sessionOnly := []fiber.Handler{sessionMiddleware}

	// POST /admin/aggregate-daily — tổng hợp nhu cầu theo ngày
	apirouter.RegisterRouteWithMiddleware(v1, "/admin", "POST", "/aggregate-daily", sessionOnly, aggregateHandler.HandleAggregateDaily)

	// POST /admin/aggregate-weekly — tổng hợp nhu cầu theo tuần
	apirouter.RegisterRouteWithMiddleware(v1, "/admin", "POST", "/aggregate-weekly", sessionOnly, aggregateHandler.HandleAggregateWeekly)

	return nil
}
