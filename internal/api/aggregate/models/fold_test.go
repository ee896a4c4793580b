// Package models - Test ánh xạ thứ sang ngày dương lịch và cộng dồn bảng chọn suất.
package models

import (
	"testing"
	"time"

	buyermodels "campus_mess/internal/api/buyer/models"
)

// thứ tư 2026-01-07
var wednesday = time.Date(2026, 1, 7, 10, 0, 0, 0, time.UTC)

func TestNextDateFor(t *testing.T) {
	cases := []struct {
		day  string
		want string
	}{
		{buyermodels.DayWednesday, "2026-01-07"}, // trùng thứ → chính ngày đó
		{buyermodels.DayThursday, "2026-01-08"},
		{buyermodels.DaySunday, "2026-01-11"},
		{buyermodels.DayMonday, "2026-01-12"},
		{buyermodels.DayTuesday, "2026-01-13"},
	}
	for _, c := range cases {
		got := NextDateFor(c.day, wednesday).Format(DateLayout)
		if got != c.want {
			t.Errorf("NextDateFor(%s) = %s, muốn %s", c.day, got, c.want)
		}
	}
	if !NextDateFor("someday", wednesday).IsZero() {
		t.Error("NextDateFor với thứ không hợp lệ phải trả về zero time")
	}
}

func TestMostRecentSunday(t *testing.T) {
	got := MostRecentSunday(wednesday).Format(DateLayout)
	if got != "2026-01-04" {
		t.Errorf("MostRecentSunday(thứ tư 2026-01-07) = %s, muốn 2026-01-04", got)
	}

	// Chủ nhật phải trả về chính nó
	sunday := time.Date(2026, 1, 4, 8, 0, 0, 0, time.UTC)
	if got := MostRecentSunday(sunday).Format(DateLayout); got != "2026-01-04" {
		t.Errorf("MostRecentSunday(chủ nhật) = %s, muốn 2026-01-04", got)
	}
}

func TestFoldDaily(t *testing.T) {
	buyers := []buyermodels.BuyerRecord{
		{This: buyermodels.WeekGrid{
			Monday: buyermodels.MealFlags{Breakfast: true, Lunch: true},
			Sunday: buyermodels.MealFlags{Dinner: true},
		}},
		{This: buyermodels.WeekGrid{
			Monday: buyermodels.MealFlags{Breakfast: true},
		}},
		{}, // người mua chưa chọn gì → không đóng góp
	}

	result := FoldDaily(buyers, wednesday)

	mon := result["2026-01-12"]
	if mon.Breakfast != 2 || mon.Lunch != 1 || mon.Dinner != 0 {
		t.Errorf("ngày thứ hai cộng dồn sai: %+v", mon)
	}
	sun := result["2026-01-11"]
	if sun.Dinner != 1 {
		t.Errorf("ngày chủ nhật cộng dồn sai: %+v", sun)
	}
	// Ngày không ai chọn không được xuất hiện
	if _, ok := result["2026-01-08"]; ok {
		t.Error("ngày không ai chọn không được có trong kết quả")
	}
	if len(result) != 2 {
		t.Errorf("kết quả phải có đúng 2 ngày, có %d", len(result))
	}
}

func TestFoldWeekly(t *testing.T) {
	buyers := []buyermodels.BuyerRecord{
		{This: buyermodels.WeekGrid{
			Monday: buyermodels.MealFlags{Breakfast: true, Dinner: true},
			Friday: buyermodels.MealFlags{Lunch: true},
		}},
		{This: buyermodels.WeekGrid{
			Monday: buyermodels.MealFlags{Breakfast: true},
		}},
	}

	total := FoldWeekly(buyers)
	if total.Monday.Breakfast != 2 {
		t.Errorf("Monday.Breakfast = %d, muốn 2", total.Monday.Breakfast)
	}
	if total.Monday.Dinner != 1 {
		t.Errorf("Monday.Dinner = %d, muốn 1", total.Monday.Dinner)
	}
	if total.Friday.Lunch != 1 {
		t.Errorf("Friday.Lunch = %d, muốn 1", total.Friday.Lunch)
	}
	if total.Sunday != (MealCounts{}) {
		t.Errorf("Sunday không ai chọn phải là zero: %+v", total.Sunday)
	}
}

func TestFoldWeekly_Empty(t *testing.T) {
	total := FoldWeekly(nil)
	if total != (WeekCounts{}) {
		t.Errorf("FoldWeekly không có người mua phải trả về zero: %+v", total)
	}
}
