// Package models - RatingDoc thuộc domain rating (ratings).
// Mỗi cặp (email, thứ) có đúng một document, mỗi bữa tối đa một entry.
package models

import (
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MealRating là đánh giá của một bữa ăn trong ngày.
type MealRating struct {
	MealType  string `json:"mealType" bson:"mealType"`
	DishName  string `json:"name" bson:"name"`
	Rating    int    `json:"rating" bson:"rating"`
	CreatedAt int64  `json:"createdAt" bson:"createdAt"`
}

// RatingDoc lưu các đánh giá của một người mua cho một thứ trong tuần (ratings).
type RatingDoc struct {
	ID    primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Email string             `json:"email" bson:"email" index:"compound:rating_email_day_unique"`
	Day   string             `json:"day" bson:"day" index:"compound:rating_email_day_unique"`
	Meals []MealRating       `json:"meals" bson:"meals"`

	CreatedAt int64 `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"`
}

// StarsFor trả về số sao đã đánh giá cho một bữa, 0 nếu chưa đánh giá.
func StarsFor(meals []MealRating, mealType string) int {
	mealType = strings.ToLower(mealType)
	for _, m := range meals {
		if strings.ToLower(m.MealType) == mealType {
			return m.Rating
		}
	}
	return 0
}

// ReplaceEntry trả về danh sách meals sau khi thay entry cùng mealType bằng entry
// mới (thay thế, không nối thêm). Dùng làm mô hình tham chiếu cho thao tác
// $pull + $push trên MongoDB.
func ReplaceEntry(meals []MealRating, entry MealRating) []MealRating {
	out := make([]MealRating, 0, len(meals)+1)
	for _, m := range meals {
		if strings.EqualFold(m.MealType, entry.MealType) {
			continue
		}
		out = append(out, m)
	}
	return append(out, entry)
}
