// Package models - BuyerRecord và WeekGrid thuộc domain buyer (buyers).
// Mỗi người mua được định danh duy nhất bằng email.
package models

import (
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Các thứ trong tuần theo thứ tự chuẩn của thực đơn (thứ hai đứng đầu).
const (
	DayMonday    = "monday"
	DayTuesday   = "tuesday"
	DayWednesday = "wednesday"
	DayThursday  = "thursday"
	DayFriday    = "friday"
	DaySaturday  = "saturday"
	DaySunday    = "sunday"
)

// Các bữa ăn trong ngày.
const (
	MealBreakfast = "breakfast"
	MealLunch     = "lunch"
	MealDinner    = "dinner"
)

// WeekdayOrder là thứ tự chuẩn của 7 thứ, dùng cho sắp xếp thực đơn và bảng tổng hợp.
var WeekdayOrder = []string{
	DayMonday, DayTuesday, DayWednesday, DayThursday, DayFriday, DaySaturday, DaySunday,
}

// MealOrder là thứ tự chuẩn của 3 bữa ăn.
var MealOrder = []string{MealBreakfast, MealLunch, MealDinner}

// IsValidDay kiểm tra day có phải một trong 7 thứ chuẩn (không phân biệt hoa thường).
func IsValidDay(day string) bool {
	day = strings.ToLower(day)
	for _, d := range WeekdayOrder {
		if day == d {
			return true
		}
	}
	return false
}

// IsValidMeal kiểm tra meal có phải một trong 3 bữa chuẩn (không phân biệt hoa thường).
func IsValidMeal(meal string) bool {
	meal = strings.ToLower(meal)
	for _, m := range MealOrder {
		if meal == m {
			return true
		}
	}
	return false
}

// MealFlags là 3 cờ chọn bữa ăn của một ngày.
type MealFlags struct {
	Breakfast bool `json:"breakfast" bson:"breakfast"`
	Lunch     bool `json:"lunch" bson:"lunch"`
	Dinner    bool `json:"dinner" bson:"dinner"`
}

// Flag trả về cờ của một bữa ăn, false nếu meal không hợp lệ.
func (m MealFlags) Flag(meal string) bool {
	switch strings.ToLower(meal) {
	case MealBreakfast:
		return m.Breakfast
	case MealLunch:
		return m.Lunch
	case MealDinner:
		return m.Dinner
	}
	return false
}

// WeekGrid là bảng chọn suất ăn 7 ngày x 3 bữa, luôn đầy đủ cả 21 ô (không sparse).
type WeekGrid struct {
	Monday    MealFlags `json:"monday" bson:"monday"`
	Tuesday   MealFlags `json:"tuesday" bson:"tuesday"`
	Wednesday MealFlags `json:"wednesday" bson:"wednesday"`
	Thursday  MealFlags `json:"thursday" bson:"thursday"`
	Friday    MealFlags `json:"friday" bson:"friday"`
	Saturday  MealFlags `json:"saturday" bson:"saturday"`
	Sunday    MealFlags `json:"sunday" bson:"sunday"`
}

// Day trả về cờ chọn bữa của một thứ, zero value nếu day không hợp lệ.
func (g WeekGrid) Day(day string) MealFlags {
	switch strings.ToLower(day) {
	case DayMonday:
		return g.Monday
	case DayTuesday:
		return g.Tuesday
	case DayWednesday:
		return g.Wednesday
	case DayThursday:
		return g.Thursday
	case DayFriday:
		return g.Friday
	case DaySaturday:
		return g.Saturday
	case DaySunday:
		return g.Sunday
	}
	return MealFlags{}
}

// setDay gán cờ chọn bữa cho một thứ (day phải đã được chuẩn hóa lowercase).
func (g *WeekGrid) setDay(day string, flags MealFlags) {
	switch day {
	case DayMonday:
		g.Monday = flags
	case DayTuesday:
		g.Tuesday = flags
	case DayWednesday:
		g.Wednesday = flags
	case DayThursday:
		g.Thursday = flags
	case DayFriday:
		g.Friday = flags
	case DaySaturday:
		g.Saturday = flags
	case DaySunday:
		g.Sunday = flags
	}
}

// BuyerRecord lưu trạng thái phiếu ăn của một người mua (buyers).
// This là tuần hiện tại (các cờ true là phiếu chưa dùng), Next là tuần kế.
type BuyerRecord struct {
	ID     primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Email  string             `json:"email" bson:"email" index:"unique"`
	Secret string             `json:"secret" bson:"secret"`
	Bought bool               `json:"bought" bson:"bought"`
	This   WeekGrid           `json:"this" bson:"this"`
	Next   WeekGrid           `json:"next" bson:"next"`

	CreatedAt int64 `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"`
}
