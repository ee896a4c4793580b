// Package menuhdl - Handler thực đơn tuần.
package menuhdl

import (
	"fmt"

	basehdl "campus_mess/internal/api/base/handler"
	menudto "campus_mess/internal/api/menu/dto"
	menumodels "campus_mess/internal/api/menu/models"
	menusvc "campus_mess/internal/api/menu/service"
	"campus_mess/internal/common"
	"campus_mess/internal/global"

	"github.com/gofiber/fiber/v3"
)

// MenuHandler xử lý các route /menu.
type MenuHandler struct {
	MenuService *menusvc.MenuService
}

// NewMenuHandler tạo MenuHandler mới.
func NewMenuHandler() (*MenuHandler, error) {
	svc, err := menusvc.NewMenuService()
	if err != nil {
		return nil, fmt.Errorf("tạo MenuService: %w", err)
	}
	return &MenuHandler{MenuService: svc}, nil
}

// HandleGetMenu xử lý GET /menu: trả về thực đơn tuần theo thứ tự chuẩn.
func (h *MenuHandler) HandleGetMenu(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		entries, err := h.MenuService.GetMenu(c.Context())
		if err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		data := make([]menudto.MenuEntryResponse, 0, len(entries))
		for _, e := range entries {
			data = append(data, menudto.MenuEntryResponse{
				Day:       e.Day,
				Breakfast: e.Breakfast,
				Lunch:     e.Lunch,
				Dinner:    e.Dinner,
			})
		}
		basehdl.HandleResponse(c, data, nil)
		return nil
	})
}

// HandleSetMenu xử lý POST /menu: thay thế toàn bộ thực đơn tuần.
func (h *MenuHandler) HandleSetMenu(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		var input menudto.SetMenuInput
		if err := c.Bind().Body(&input); err != nil {
			basehdl.HandleResponse(c, nil, common.ErrInvalidFormat)
			return nil
		}
		if err := global.Validate.Struct(input); err != nil {
			basehdl.HandleResponse(c, nil, common.NewError(
				common.ErrCodeValidationInput, "Thực đơn gửi lên không hợp lệ", common.StatusBadRequest, err.Error()))
			return nil
		}

		entries := make([]menumodels.MenuEntry, 0, len(input.Entries))
		for _, e := range input.Entries {
			entries = append(entries, menumodels.MenuEntry{
				Day:       e.Day,
				Breakfast: e.Breakfast,
				Lunch:     e.Lunch,
				Dinner:    e.Dinner,
			})
		}

		if err := h.MenuService.SetMenu(c.Context(), entries); err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}
		basehdl.HandleResponse(c, nil, nil)
		return nil
	})
}
