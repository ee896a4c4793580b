package basehdl

import (
	"context"
	"time"

	"campus_mess/internal/global"

	"github.com/gofiber/fiber/v3"
)

// SystemHandler xử lý các endpoint hệ thống (health check)
type SystemHandler struct{}

// NewSystemHandler tạo mới SystemHandler
func NewSystemHandler() *SystemHandler {
	return &SystemHandler{}
}

// HandleHealth kiểm tra tình trạng server và kết nối MongoDB.
// Trả về 503 nếu không ping được database.
func (h *SystemHandler) HandleHealth(c fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	dbStatus := "up"
	statusCode := 200
	if global.MongoDB_Session == nil || global.MongoDB_Session.Ping(ctx, nil) != nil {
		dbStatus = "down"
		statusCode = 503
	}

	return JSONResponse(c, statusCode, fiber.Map{
		"status":   "ok",
		"database": dbStatus,
		"time":     time.Now().UnixMilli(),
	})
}
