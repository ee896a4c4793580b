// Package router đăng ký các route thuộc domain rating.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	"campus_mess/internal/api/middleware"
	ratinghdl "campus_mess/internal/api/rating/handler"
	apirouter "campus_mess/internal/api/router"
)

// Register đăng ký tất cả route rating lên v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	ratingHandler, err := ratinghdl.NewRatingHandler()
	if err != nil {
		return fmt.Errorf("tạo RatingHandler: %w", err)
	}

	sessionMiddleware := middleware.SessionMiddleware()
	sessionOnly := []fiber.Handler{sessionMiddleware}

	// GET /rating?day=&mealType= — số sao đã đánh giá.
	// Path rỗng để route nằm đúng tại prefix (StrictRouting phân biệt /rating và /rating/).
	apirouter.RegisterRouteWithMiddleware(v1, "/rating", "GET", "", sessionOnly, ratingHandler.HandleGetRating)

	// POST /rating — ghi đánh giá
	apirouter.RegisterRouteWithMiddleware(v1, "/rating", "POST", "", sessionOnly, ratingHandler.HandleRate)

	return nil
}
