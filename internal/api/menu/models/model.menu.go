// Package models - MenuEntry thuộc domain menu (menu_items).
// Mỗi thứ trong tuần có đúng một document thực đơn với 3 món cho 3 bữa.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MenuEntry lưu thực đơn của một thứ trong tuần (menu_items).
type MenuEntry struct {
	ID        primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Day       string             `json:"day" bson:"day" index:"unique"`
	Breakfast string             `json:"breakfast" bson:"breakfast"`
	Lunch     string             `json:"lunch" bson:"lunch"`
	Dinner    string             `json:"dinner" bson:"dinner"`

	CreatedAt int64 `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"`
}

// Dish trả về tên món của một bữa (meal đã chuẩn hóa lowercase), rỗng nếu không có.
func (m MenuEntry) Dish(meal string) string {
	switch meal {
	case "breakfast":
		return m.Breakfast
	case "lunch":
		return m.Lunch
	case "dinner":
		return m.Dinner
	}
	return ""
}
