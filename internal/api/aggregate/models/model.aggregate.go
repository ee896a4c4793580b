// Package models - DailySelection/WeeklySelection thuộc domain aggregate.
// Bảng tổng hợp nhu cầu suất ăn cho nhà bếp và dịch vụ dự báo.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DateLayout là định dạng ngày dùng làm khóa của daily_selections.
const DateLayout = "2006-01-02"

// DailySelection lưu số suất ăn dự kiến của một ngày cụ thể (daily_selections).
type DailySelection struct {
	ID        primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Date      string             `json:"date" bson:"date" index:"unique"`
	Breakfast int                `json:"breakfast" bson:"breakfast"`
	Lunch     int                `json:"lunch" bson:"lunch"`
	Dinner    int                `json:"dinner" bson:"dinner"`

	CreatedAt int64 `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"`
}

// MealCounts là số suất của 3 bữa trong một ngày.
type MealCounts struct {
	Breakfast int `json:"breakfast" bson:"breakfast"`
	Lunch     int `json:"lunch" bson:"lunch"`
	Dinner    int `json:"dinner" bson:"dinner"`
}

// WeekCounts là bảng 7 ngày x 3 bữa số suất ăn của một tuần.
type WeekCounts struct {
	Monday    MealCounts `json:"monday" bson:"monday"`
	Tuesday   MealCounts `json:"tuesday" bson:"tuesday"`
	Wednesday MealCounts `json:"wednesday" bson:"wednesday"`
	Thursday  MealCounts `json:"thursday" bson:"thursday"`
	Friday    MealCounts `json:"friday" bson:"friday"`
	Saturday  MealCounts `json:"saturday" bson:"saturday"`
	Sunday    MealCounts `json:"sunday" bson:"sunday"`
}

// WeeklySelection lưu bảng tổng hợp của một tuần, khóa theo ngày đầu tuần
// (chủ nhật gần nhất) để chạy lại trong tuần không tạo document trùng (weekly_selections).
type WeeklySelection struct {
	ID        primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	WeekStart string             `json:"weekStart" bson:"weekStart" index:"unique"`
	Data      WeekCounts         `json:"data" bson:"data"`

	CreatedAt int64 `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"`
}

// Ingredient là nguyên liệu theo món, dữ liệu tham chiếu cho dịch vụ dự báo
// nguyên liệu (ingredients).
type Ingredient struct {
	ID     primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Name   string             `json:"name" bson:"name" index:"unique"`
	Unit   string             `json:"unit" bson:"unit"`
	Dishes []string           `json:"dishes" bson:"dishes"`

	CreatedAt int64 `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"`
}
