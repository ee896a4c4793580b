package models

import (
	"time"

	buyermodels "campus_mess/internal/api/buyer/models"
)

// dayNumbers ánh xạ tên thứ sang số thứ trong tuần theo chuẩn time.Weekday
// (chủ nhật = 0).
var dayNumbers = map[string]int{
	buyermodels.DaySunday:    0,
	buyermodels.DayMonday:    1,
	buyermodels.DayTuesday:   2,
	buyermodels.DayWednesday: 3,
	buyermodels.DayThursday:  4,
	buyermodels.DayFriday:    5,
	buyermodels.DaySaturday:  6,
}

// NextDateFor trả về ngày dương lịch kế tiếp rơi vào thứ day, tính từ now
// (now tính là "kế tiếp" nếu trùng thứ). Trả về zero time nếu day không hợp lệ.
func NextDateFor(day string, now time.Time) time.Time {
	target, ok := dayNumbers[day]
	if !ok {
		return time.Time{}
	}
	delta := (target - int(now.Weekday()) + 7) % 7
	return now.AddDate(0, 0, delta)
}

// MostRecentSunday trả về ngày chủ nhật gần nhất trước hoặc trùng now,
// dùng làm khóa tuần cho weekly_selections.
func MostRecentSunday(now time.Time) time.Time {
	return now.AddDate(0, 0, -int(now.Weekday()))
}

// FoldDaily cộng dồn các cờ chọn bữa trong tuần hiện tại của tất cả người mua
// thành số suất theo từng ngày dương lịch kế tiếp. Mỗi cờ true được đếm đúng
// một lần; ngày không ai chọn không xuất hiện trong kết quả.
func FoldDaily(buyers []buyermodels.BuyerRecord, now time.Time) map[string]MealCounts {
	result := map[string]MealCounts{}
	for _, b := range buyers {
		for _, day := range buyermodels.WeekdayOrder {
			flags := b.This.Day(day)
			if !flags.Breakfast && !flags.Lunch && !flags.Dinner {
				continue
			}
			date := NextDateFor(day, now).Format(DateLayout)
			counts := result[date]
			if flags.Breakfast {
				counts.Breakfast++
			}
			if flags.Lunch {
				counts.Lunch++
			}
			if flags.Dinner {
				counts.Dinner++
			}
			result[date] = counts
		}
	}
	return result
}

// FoldWeekly cộng dồn tất cả bảng tuần hiện tại của người mua thành một bảng
// 7x3 số suất ăn.
func FoldWeekly(buyers []buyermodels.BuyerRecord) WeekCounts {
	var total WeekCounts
	for _, b := range buyers {
		addDay(&total.Monday, b.This.Monday)
		addDay(&total.Tuesday, b.This.Tuesday)
		addDay(&total.Wednesday, b.This.Wednesday)
		addDay(&total.Thursday, b.This.Thursday)
		addDay(&total.Friday, b.This.Friday)
		addDay(&total.Saturday, b.This.Saturday)
		addDay(&total.Sunday, b.This.Sunday)
	}
	return total
}

func addDay(counts *MealCounts, flags buyermodels.MealFlags) {
	if flags.Breakfast {
		counts.Breakfast++
	}
	if flags.Lunch {
		counts.Lunch++
	}
	if flags.Dinner {
		counts.Dinner++
	}
}
