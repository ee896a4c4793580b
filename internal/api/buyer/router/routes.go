// Package router đăng ký các route thuộc domain buyer: trạng thái phiếu ăn, duyệt phiếu.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	buyerhdl "campus_mess/internal/api/buyer/handler"
	"campus_mess/internal/api/middleware"
	apirouter "campus_mess/internal/api/router"
)

// Register đăng ký tất cả route buyer lên v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	buyerHandler, err := buyerhdl.NewBuyerHandler()
	if err != nil {
		return fmt.Errorf("tạo BuyerHandler: %w", err)
	}

	// POST /user/check-coupon — quầy ăn duyệt phiếu bằng email + secret, không cần phiên.
	// PHẢI đăng ký trước các route có session: middleware .Use() áp theo prefix /user,
	// route đăng ký trước sẽ khớp trước và không đi qua middleware đăng ký sau.
	apirouter.RegisterRouteWithMiddleware(v1, "/user", "POST", "/check-coupon", nil, buyerHandler.HandleCheckCoupon)

	sessionMiddleware := middleware.SessionMiddleware()
	sessionOnly := []fiber.Handler{sessionMiddleware}

	// GET /user/data — trạng thái phiếu ăn, tạo bản ghi khi lần đầu truy cập
	apirouter.RegisterRouteWithMiddleware(v1, "/user", "GET", "/data", sessionOnly, buyerHandler.HandleGetData)

	// GET /user/reset-secret — cấp secret mới
	apirouter.RegisterRouteWithMiddleware(v1, "/user", "GET", "/reset-secret", sessionOnly, buyerHandler.HandleResetSecret)

	// GET /user/bought-next-week — cờ đã mua suất tuần kế
	apirouter.RegisterRouteWithMiddleware(v1, "/user", "GET", "/bought-next-week", sessionOnly, buyerHandler.HandleBoughtNextWeek)

	return nil
}
