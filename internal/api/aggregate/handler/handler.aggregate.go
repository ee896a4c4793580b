// Package aggregatehdl - Handler kích hoạt tổng hợp nhu cầu thủ công.
package aggregatehdl

import (
	"fmt"

	aggregatesvc "campus_mess/internal/api/aggregate/service"
	basehdl "campus_mess/internal/api/base/handler"

	"github.com/gofiber/fiber/v3"
)

// AggregateHandler xử lý các route /admin/aggregate-*.
type AggregateHandler struct {
	AggregationService *aggregatesvc.AggregationService
}

// NewAggregateHandler tạo AggregateHandler mới.
func NewAggregateHandler() (*AggregateHandler, error) {
	svc, err := aggregatesvc.NewAggregationService()
	if err != nil {
		return nil, fmt.Errorf("tạo AggregationService: %w", err)
	}
	return &AggregateHandler{AggregationService: svc}, nil
}

// HandleAggregateDaily xử lý POST /admin/aggregate-daily.
func (h *AggregateHandler) HandleAggregateDaily(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		if err := h.AggregationService.AggregateDaily(c.Context()); err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}
		basehdl.HandleResponse(c, nil, nil)
		return nil
	})
}

// HandleAggregateWeekly xử lý POST /admin/aggregate-weekly.
func (h *AggregateHandler) HandleAggregateWeekly(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		if err := h.AggregationService.AggregateWeekly(c.Context()); err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}
		basehdl.HandleResponse(c, nil, nil)
		return nil
	})
}
