// Package orderhdl - Handler đơn hàng mua suất ăn tuần.
package orderhdl

import (
	"errors"
	"fmt"
	"strconv"

	basehdl "campus_mess/internal/api/base/handler"
	buyermodels "campus_mess/internal/api/buyer/models"
	buyersvc "campus_mess/internal/api/buyer/service"
	"campus_mess/internal/api/middleware"
	orderdto "campus_mess/internal/api/order/dto"
	ordersvc "campus_mess/internal/api/order/service"
	"campus_mess/internal/common"
	"campus_mess/internal/global"
	"campus_mess/internal/logger"

	"github.com/gofiber/fiber/v3"
)

// OrderHandler xử lý các route /user/create-order, /user/check-order và /admin/orders.
type OrderHandler struct {
	OrderService *ordersvc.OrderService
	BuyerService *buyersvc.BuyerService
}

// NewOrderHandler tạo OrderHandler mới.
func NewOrderHandler() (*OrderHandler, error) {
	orderSvc, err := ordersvc.NewOrderService()
	if err != nil {
		return nil, fmt.Errorf("tạo OrderService: %w", err)
	}
	buyerSvc, err := buyersvc.NewBuyerService()
	if err != nil {
		return nil, fmt.Errorf("tạo BuyerService: %w", err)
	}
	return &OrderHandler{OrderService: orderSvc, BuyerService: buyerSvc}, nil
}

// HandleCreateOrder xử lý POST /user/create-order: chuẩn hóa bảng chọn và tạo đơn chờ thanh toán.
func (h *OrderHandler) HandleCreateOrder(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		email := middleware.EmailFromContext(c)

		var input orderdto.CreateOrderInput
		if err := c.Bind().Body(&input); err != nil {
			basehdl.HandleResponse(c, nil, common.ErrInvalidFormat)
			return nil
		}
		if len(input.Selected) == 0 {
			basehdl.HandleResponse(c, nil, common.ErrRequiredField)
			return nil
		}

		// Key lạ trong bảng chọn bị chặn ngay tại đây
		grid, err := buyermodels.GridFromMap(input.Selected)
		if err != nil {
			basehdl.HandleResponse(c, nil, common.NewError(
				common.ErrCodeValidationInput, err.Error(), common.StatusBadRequest, nil))
			return nil
		}

		order, err := h.OrderService.CreateOrder(c.Context(), email, grid)
		if err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		return basehdl.JSONResponse(c, 201, fiber.Map{
			"code":    201,
			"message": common.MsgSuccess,
			"data":    orderdto.CreateOrderResponse{OrderID: order.OrderID},
			"status":  "success",
		})
	})
}

// HandleCheckOrder xử lý POST /user/check-order: xác minh chữ ký thanh toán rồi chốt đơn.
// Chốt đơn ghi đè nguyên bảng tuần hiện tại của người mua và bật cờ bought.
func (h *OrderHandler) HandleCheckOrder(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		email := middleware.EmailFromContext(c)

		var input orderdto.CheckOrderInput
		if err := c.Bind().Body(&input); err != nil {
			basehdl.HandleResponse(c, nil, common.ErrInvalidFormat)
			return nil
		}
		if err := global.Validate.Struct(input); err != nil {
			basehdl.HandleResponse(c, nil, common.ErrRequiredField)
			return nil
		}

		if !ordersvc.VerifyPaymentSignature(input.OrderID, input.PaymentID, input.Signature, global.ServerConfig.PaymentSecret) {
			logger.WithRequest(c).WithField("orderId", input.OrderID).Warn("Chữ ký thanh toán không hợp lệ")
			basehdl.HandleResponse(c, nil, common.NewError(
				common.ErrCodeBusinessOperation, "Chữ ký thanh toán không hợp lệ", common.StatusBadRequest, nil))
			return nil
		}

		order, err := h.OrderService.GetOrder(c.Context(), input.OrderID)
		if err != nil {
			if errors.Is(err, common.ErrNotFound) {
				basehdl.HandleResponse(c, nil, common.NewError(
					common.ErrCodeDatabaseQuery, "Không tìm thấy đơn hàng", common.StatusNotFound, nil))
				return nil
			}
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		// Đơn phải thuộc về phiên hiện tại
		if email != "" && order.Email != email {
			basehdl.HandleResponse(c, nil, common.NewError(
				common.ErrCodeBusinessOperation, "Đơn hàng không thuộc về người dùng", common.StatusForbidden, nil))
			return nil
		}

		// Chốt đơn: ghi đè bảng tuần hiện tại, bật cờ bought
		if err := h.BuyerService.SaveOrder(c.Context(), order.Email, order.Selected); err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.OrderService.MarkPaid(c.Context(), order.OrderID); err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		basehdl.HandleResponse(c, orderdto.CheckOrderResponse{Settled: true}, nil)
		return nil
	})
}

// HandleListOrders xử lý GET /admin/orders: liệt kê đơn hàng có phân trang.
// Query params: page (mặc định 1), limit (mặc định 20), email, status (lọc tùy chọn).
func (h *OrderHandler) HandleListOrders(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		page, err := strconv.ParseInt(c.Query("page", "1"), 10, 64)
		if err != nil {
			basehdl.HandleResponse(c, nil, common.ErrInvalidFormat)
			return nil
		}
		limit, err := strconv.ParseInt(c.Query("limit", "20"), 10, 64)
		if err != nil {
			basehdl.HandleResponse(c, nil, common.ErrInvalidFormat)
			return nil
		}

		result, err := h.OrderService.ListOrders(c.Context(), c.Query("email"), c.Query("status"), page, limit)
		if err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		basehdl.HandleResponse(c, result, nil)
		return nil
	})
}
