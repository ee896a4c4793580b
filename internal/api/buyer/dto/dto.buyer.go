// Package dto - DTO cho domain buyer.
package dto

import (
	buyermodels "campus_mess/internal/api/buyer/models"
)

// CheckCouponInput là dữ liệu quầy ăn gửi lên khi người mua trình phiếu.
type CheckCouponInput struct {
	Email    string `json:"email" validate:"required,email"`
	Secret   string `json:"secret" validate:"required,len=4"`
	Day      string `json:"day" validate:"required,weekday"`
	MealType string `json:"mealType" validate:"required,mealtype"`
}

// CheckCouponResponse trả về kết quả duyệt phiếu: true nếu phiếu hợp lệ và vừa bị tiêu.
type CheckCouponResponse struct {
	Valid bool `json:"valid"`
}

// BuyerResponse là trạng thái phiếu ăn trả về cho người mua.
type BuyerResponse struct {
	Email  string               `json:"email"`
	Secret string               `json:"secret"`
	Bought bool                 `json:"bought"`
	This   buyermodels.WeekGrid `json:"this"`
	Next   buyermodels.WeekGrid `json:"next"`
}

// BoughtResponse trả về cờ đã mua suất tuần kế hay chưa.
type BoughtResponse struct {
	Bought bool `json:"bought"`
}
