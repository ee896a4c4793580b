// Package buyerhdl - Handler trạng thái phiếu ăn của người mua.
package buyerhdl

import (
	"fmt"

	basehdl "campus_mess/internal/api/base/handler"
	buyerdto "campus_mess/internal/api/buyer/dto"
	buyermodels "campus_mess/internal/api/buyer/models"
	buyersvc "campus_mess/internal/api/buyer/service"
	"campus_mess/internal/api/middleware"
	"campus_mess/internal/common"
	"campus_mess/internal/global"
	"campus_mess/internal/logger"

	"github.com/gofiber/fiber/v3"
)

// BuyerHandler xử lý các route /user liên quan đến phiếu ăn.
type BuyerHandler struct {
	BuyerService *buyersvc.BuyerService
}

// NewBuyerHandler tạo BuyerHandler mới.
func NewBuyerHandler() (*BuyerHandler, error) {
	svc, err := buyersvc.NewBuyerService()
	if err != nil {
		return nil, fmt.Errorf("tạo BuyerService: %w", err)
	}
	return &BuyerHandler{BuyerService: svc}, nil
}

// HandleGetData xử lý GET /user/data: trả về bản ghi phiếu ăn, tạo mới nếu chưa có.
func (h *BuyerHandler) HandleGetData(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		email := middleware.EmailFromContext(c)
		record, err := h.BuyerService.GetOrCreate(c.Context(), email)
		if err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}
		basehdl.HandleResponse(c, toBuyerResponse(record), nil)
		return nil
	})
}

// HandleResetSecret xử lý GET /user/reset-secret: cấp secret mới.
func (h *BuyerHandler) HandleResetSecret(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		email := middleware.EmailFromContext(c)
		record, err := h.BuyerService.ResetSecret(c.Context(), email)
		if err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}
		basehdl.HandleResponse(c, toBuyerResponse(record), nil)
		return nil
	})
}

// HandleBoughtNextWeek xử lý GET /user/bought-next-week.
func (h *BuyerHandler) HandleBoughtNextWeek(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		email := middleware.EmailFromContext(c)
		bought, err := h.BuyerService.BoughtNextWeek(c.Context(), email)
		if err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}
		basehdl.HandleResponse(c, buyerdto.BoughtResponse{Bought: bought}, nil)
		return nil
	})
}

// HandleCheckCoupon xử lý POST /user/check-coupon: quầy ăn duyệt và tiêu phiếu.
// Kết quả luôn là một boolean duy nhất, không phân biệt lý do phiếu không hợp lệ.
func (h *BuyerHandler) HandleCheckCoupon(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		var input buyerdto.CheckCouponInput
		if err := c.Bind().Body(&input); err != nil {
			basehdl.HandleResponse(c, nil, common.ErrInvalidFormat)
			return nil
		}
		if err := global.Validate.Struct(input); err != nil {
			// Day/meal lạ hay secret sai độ dài: phiếu không hợp lệ, không lộ lý do
			logger.WithRequest(c).WithError(err).Warn("Phiếu trình lên không đúng định dạng")
			basehdl.HandleResponse(c, buyerdto.CheckCouponResponse{Valid: false}, nil)
			return nil
		}

		valid, err := h.BuyerService.RedeemCoupon(c.Context(), input.Email, input.Secret, input.Day, input.MealType)
		if err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}
		basehdl.HandleResponse(c, buyerdto.CheckCouponResponse{Valid: valid}, nil)
		return nil
	})
}

func toBuyerResponse(r *buyermodels.BuyerRecord) *buyerdto.BuyerResponse {
	if r == nil {
		return nil
	}
	return &buyerdto.BuyerResponse{
		Email:  r.Email,
		Secret: r.Secret,
		Bought: r.Bought,
		This:   r.This,
		Next:   r.Next,
	}
}
