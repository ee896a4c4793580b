// Package router đăng ký các route thuộc domain menu.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	menuhdl "campus_mess/internal/api/menu/handler"
	"campus_mess/internal/api/middleware"
	apirouter "campus_mess/internal/api/router"
)

// Register đăng ký tất cả route menu lên v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	menuHandler, err := menuhdl.NewMenuHandler()
	if err != nil {
		return fmt.Errorf("tạo MenuHandler: %w", err)
	}

	// GET /menu — thực đơn tuần, công khai.
	// Đăng ký trước route có session (middleware .Use áp theo prefix /menu).
	// Path rỗng để route nằm đúng tại prefix (StrictRouting phân biệt /menu và /menu/).
	apirouter.RegisterRouteWithMiddleware(v1, "/menu", "GET", "", nil, menuHandler.HandleGetMenu)

	// POST /menu — thay thực đơn tuần, cần phiên
	sessionMiddleware := middleware.SessionMiddleware()
	apirouter.RegisterRouteWithMiddleware(v1, "/menu", "POST", "", []fiber.Handler{sessionMiddleware}, menuHandler.HandleSetMenu)

	return nil
}
