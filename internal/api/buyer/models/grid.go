package models

import (
	"fmt"
	"strings"
)

// GridFromMap chuẩn hóa bảng chọn suất ăn nhận từ client thành WeekGrid đầy đủ 7x3.
// Ngày hoặc bữa không có trong input được coi là false; key lạ bị từ chối ngay tại biên.
func GridFromMap(input map[string]map[string]bool) (WeekGrid, error) {
	var grid WeekGrid
	for day, meals := range input {
		dayKey := strings.ToLower(day)
		if !IsValidDay(dayKey) {
			return WeekGrid{}, fmt.Errorf("thứ không hợp lệ: %q", day)
		}
		var flags MealFlags
		for meal, selected := range meals {
			switch strings.ToLower(meal) {
			case MealBreakfast:
				flags.Breakfast = selected
			case MealLunch:
				flags.Lunch = selected
			case MealDinner:
				flags.Dinner = selected
			default:
				return WeekGrid{}, fmt.Errorf("bữa ăn không hợp lệ: %q", meal)
			}
		}
		grid.setDay(dayKey, flags)
	}
	return grid, nil
}

// GridFieldPath trả về đường dẫn bson của một ô trong bảng tuần hiện tại,
// ví dụ "this.monday.breakfast". Trả về lỗi nếu day/meal không hợp lệ.
func GridFieldPath(prefix, day, meal string) (string, error) {
	day = strings.ToLower(day)
	meal = strings.ToLower(meal)
	if !IsValidDay(day) {
		return "", fmt.Errorf("thứ không hợp lệ: %q", day)
	}
	if !IsValidMeal(meal) {
		return "", fmt.Errorf("bữa ăn không hợp lệ: %q", meal)
	}
	return prefix + "." + day + "." + meal, nil
}
