// Package router đăng ký các route thuộc domain order: tạo đơn, chốt đơn sau thanh toán.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	"campus_mess/internal/api/middleware"
	orderhdl "campus_mess/internal/api/order/handler"
	apirouter "campus_mess/internal/api/router"
)

// Register đăng ký tất cả route order lên v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	orderHandler, err := orderhdl.NewOrderHandler()
	if err != nil {
		return fmt.Errorf("tạo OrderHandler: %w", err)
	}

	sessionMiddleware := middleware.SessionMiddleware()
	sessionOnly := []fiber.Handler{sessionMiddleware}

	// POST /user/create-order — tạo đơn chờ thanh toán từ bảng chọn suất ăn
	apirouter.RegisterRouteWithMiddleware(v1, "/user", "POST", "/create-order", sessionOnly, orderHandler.HandleCreateOrder)

	// POST /user/check-order — xác minh chữ ký thanh toán rồi chốt đơn
	apirouter.RegisterRouteWithMiddleware(v1, "/user", "POST", "/check-order", sessionOnly, orderHandler.HandleCheckOrder)

	// GET /admin/orders — liệt kê đơn hàng có phân trang cho admin
	apirouter.RegisterRouteWithMiddleware(v1, "/admin", "GET", "/orders", sessionOnly, orderHandler.HandleListOrders)

	return nil
}
