// Package ratinghdl - Handler đánh giá món ăn.
package ratinghdl

import (
	"fmt"

	basehdl "campus_mess/internal/api/base/handler"
	"campus_mess/internal/api/middleware"
	ratingdto "campus_mess/internal/api/rating/dto"
	ratingsvc "campus_mess/internal/api/rating/service"
	"campus_mess/internal/common"
	"campus_mess/internal/global"

	"github.com/gofiber/fiber/v3"
)

// RatingHandler xử lý các route /rating.
type RatingHandler struct {
	RatingService *ratingsvc.RatingService
}

// NewRatingHandler tạo RatingHandler mới.
func NewRatingHandler() (*RatingHandler, error) {
	svc, err := ratingsvc.NewRatingService()
	if err != nil {
		return nil, fmt.Errorf("tạo RatingService: %w", err)
	}
	return &RatingHandler{RatingService: svc}, nil
}

// HandleGetRating xử lý GET /rating?day=&mealType=: số sao đã đánh giá, 0 nếu chưa.
func (h *RatingHandler) HandleGetRating(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		email := middleware.EmailFromContext(c)
		day := c.Query("day")
		meal := c.Query("mealType")
		if day == "" || meal == "" {
			basehdl.HandleResponse(c, nil, common.ErrRequiredField)
			return nil
		}

		stars, err := h.RatingService.GetRating(c.Context(), email, day, meal)
		if err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}
		basehdl.HandleResponse(c, ratingdto.RatingResponse{Rating: stars}, nil)
		return nil
	})
}

// HandleRate xử lý POST /rating: ghi đánh giá cho một bữa của một thứ.
func (h *RatingHandler) HandleRate(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		email := middleware.EmailFromContext(c)

		var input ratingdto.RateInput
		if err := c.Bind().Body(&input); err != nil {
			basehdl.HandleResponse(c, nil, common.ErrInvalidFormat)
			return nil
		}
		if err := global.Validate.Struct(input); err != nil {
			basehdl.HandleResponse(c, nil, common.NewError(
				common.ErrCodeValidationInput, "Đánh giá gửi lên không hợp lệ", common.StatusBadRequest, err.Error()))
			return nil
		}

		if err := h.RatingService.Rate(c.Context(), email, input.Day, input.MealType, input.Rating); err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}
		basehdl.HandleResponse(c, nil, nil)
		return nil
	})
}
