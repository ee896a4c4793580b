// Package dto - DTO cho domain rating.
package dto

// RateInput là đánh giá client gửi lên cho một bữa của một thứ.
type RateInput struct {
	Day      string `json:"day" validate:"required,weekday"`
	MealType string `json:"mealType" validate:"required,mealtype"`
	Rating   int    `json:"rating" validate:"required,min=1,max=5"`
}

// RatingResponse trả về số sao đã đánh giá, 0 nghĩa là chưa đánh giá.
type RatingResponse struct {
	Rating int `json:"rating"`
}
