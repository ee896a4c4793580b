// Package menusvc - Service thực đơn tuần (menu_items).
package menusvc

import (
	"context"
	"fmt"
	"strings"

	basesvc "campus_mess/internal/api/base/service"
	buyermodels "campus_mess/internal/api/buyer/models"
	menumodels "campus_mess/internal/api/menu/models"
	"campus_mess/internal/common"
	"campus_mess/internal/global"
	"campus_mess/internal/logger"

	"go.mongodb.org/mongo-driver/bson"
)

// MenuService xử lý đọc và thay thực đơn tuần.
type MenuService struct {
	*basesvc.BaseServiceMongoImpl[menumodels.MenuEntry]
}

// NewMenuService tạo MenuService mới.
func NewMenuService() (*MenuService, error) {
	coll, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.MenuItems)
	if !exist {
		return nil, fmt.Errorf("không tìm thấy collection %s: %w", global.MongoDB_ColNames.MenuItems, common.ErrNotFound)
	}
	return &MenuService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[menumodels.MenuEntry](coll),
	}, nil
}

// SortEntries sắp xếp các thực đơn theo thứ tự chuẩn của tuần (thứ hai đứng đầu),
// không phân biệt hoa thường. Document có day lạ bị đẩy xuống cuối.
func SortEntries(entries []menumodels.MenuEntry) []menumodels.MenuEntry {
	order := make(map[string]int, len(buyermodels.WeekdayOrder))
	for i, d := range buyermodels.WeekdayOrder {
		order[d] = i
	}

	sorted := make([]menumodels.MenuEntry, 0, len(entries))
	sorted = append(sorted, entries...)
	// Insertion sort là đủ cho tối đa 7 phần tử
	for i := 1; i < len(sorted); i++ {
		for j := i; j > 0; j-- {
			a, aOK := order[strings.ToLower(sorted[j-1].Day)]
			b, bOK := order[strings.ToLower(sorted[j].Day)]
			if !aOK {
				a = len(buyermodels.WeekdayOrder)
			}
			if !bOK {
				b = len(buyermodels.WeekdayOrder)
			}
			if b < a {
				sorted[j-1], sorted[j] = sorted[j], sorted[j-1]
			}
		}
	}
	return sorted
}

// GetMenu trả về toàn bộ thực đơn tuần theo thứ tự chuẩn.
func (s *MenuService) GetMenu(ctx context.Context) ([]menumodels.MenuEntry, error) {
	entries, err := s.Find(ctx, bson.M{}, nil)
	if err != nil {
		return nil, err
	}
	return SortEntries(entries), nil
}

// SetMenu thay thế toàn bộ thực đơn tuần: xóa hết rồi ghi bộ mới.
func (s *MenuService) SetMenu(ctx context.Context, entries []menumodels.MenuEntry) error {
	if len(entries) == 0 {
		return common.ErrRequiredField
	}

	// Chuẩn hóa day về lowercase trước khi ghi
	for i := range entries {
		entries[i].Day = strings.ToLower(entries[i].Day)
		if !buyermodels.IsValidDay(entries[i].Day) {
			return common.NewError(common.ErrCodeValidationInput,
				fmt.Sprintf("Thứ không hợp lệ: %q", entries[i].Day), common.StatusBadRequest, nil)
		}
	}

	if _, err := s.DeleteMany(ctx, bson.M{}); err != nil {
		return err
	}
	if _, err := s.InsertMany(ctx, entries); err != nil {
		return err
	}

	logger.GetAuditLogger().WithField("entries", len(entries)).Info("Đã thay thực đơn tuần")
	return nil
}

// DishFor trả về tên món của (day, meal). ErrDishNotFound nếu thứ đó chưa có
// thực đơn hoặc bữa đó không có món.
func (s *MenuService) DishFor(ctx context.Context, day, meal string) (string, error) {
	day = strings.ToLower(day)
	meal = strings.ToLower(meal)
	if !buyermodels.IsValidDay(day) || !buyermodels.IsValidMeal(meal) {
		return "", common.ErrDishNotFound
	}

	entry, err := s.FindOne(ctx, bson.M{"day": day}, nil)
	if err != nil {
		return "", common.ErrDishNotFound
	}

	dish := entry.Dish(meal)
	if dish == "" {
		return "", common.ErrDishNotFound
	}
	return dish, nil
}
