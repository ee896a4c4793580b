// Package models - Test chuẩn hóa bảng chọn suất ăn và đường dẫn bson của từng ô.
package models

import (
	"testing"
)

func TestGridFromMap_FullWeek(t *testing.T) {
	input := map[string]map[string]bool{
		"monday": {"breakfast": true, "lunch": false, "dinner": true},
		"friday": {"lunch": true},
	}
	grid, err := GridFromMap(input)
	if err != nil {
		t.Fatalf("GridFromMap trả về lỗi với input hợp lệ: %v", err)
	}
	if !grid.Monday.Breakfast || grid.Monday.Lunch || !grid.Monday.Dinner {
		t.Errorf("Monday không đúng: %+v", grid.Monday)
	}
	if !grid.Friday.Lunch {
		t.Errorf("Friday.Lunch phải là true: %+v", grid.Friday)
	}
	// Ngày không có trong input phải là false toàn bộ
	if grid.Sunday != (MealFlags{}) {
		t.Errorf("Sunday không có trong input phải là zero: %+v", grid.Sunday)
	}
}

func TestGridFromMap_CaseInsensitive(t *testing.T) {
	input := map[string]map[string]bool{
		"Monday": {"Breakfast": true},
	}
	grid, err := GridFromMap(input)
	if err != nil {
		t.Fatalf("GridFromMap phải chấp nhận key viết hoa: %v", err)
	}
	if !grid.Monday.Breakfast {
		t.Error("Monday.Breakfast phải là true khi key viết hoa")
	}
}

func TestGridFromMap_UnknownDay(t *testing.T) {
	input := map[string]map[string]bool{
		"someday": {"breakfast": true},
	}
	if _, err := GridFromMap(input); err == nil {
		t.Error("GridFromMap phải từ chối tên thứ lạ")
	}
}

func TestGridFromMap_UnknownMeal(t *testing.T) {
	input := map[string]map[string]bool{
		"monday": {"brunch": true},
	}
	if _, err := GridFromMap(input); err == nil {
		t.Error("GridFromMap phải từ chối tên bữa ăn lạ")
	}
}

func TestGridFieldPath(t *testing.T) {
	path, err := GridFieldPath("this", "Monday", "BREAKFAST")
	if err != nil {
		t.Fatalf("GridFieldPath trả về lỗi với input hợp lệ: %v", err)
	}
	if path != "this.monday.breakfast" {
		t.Errorf("đường dẫn sai: %q", path)
	}

	if _, err := GridFieldPath("this", "someday", "breakfast"); err == nil {
		t.Error("GridFieldPath phải từ chối thứ không hợp lệ")
	}
	if _, err := GridFieldPath("this", "monday", "brunch"); err == nil {
		t.Error("GridFieldPath phải từ chối bữa ăn không hợp lệ")
	}
}

func TestWeekGrid_DayRoundTrip(t *testing.T) {
	var g WeekGrid
	g.setDay(DayWednesday, MealFlags{Lunch: true})
	flags := g.Day("wednesday")
	if !flags.Lunch || flags.Breakfast || flags.Dinner {
		t.Errorf("Day(wednesday) không khớp với setDay: %+v", flags)
	}
	if g.Day("someday") != (MealFlags{}) {
		t.Error("Day với thứ không hợp lệ phải trả về zero value")
	}
}
