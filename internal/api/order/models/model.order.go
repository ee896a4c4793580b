// Package models - Order thuộc domain order (orders).
// Đơn hàng được tạo trước khi thanh toán và chốt sau khi cổng thanh toán xác minh.
package models

import (
	buyermodels "campus_mess/internal/api/buyer/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Trạng thái đơn hàng.
const (
	OrderStatusCreated = "created" // Đã tạo, chờ thanh toán
	OrderStatusPaid    = "paid"    // Đã xác minh thanh toán và chốt vào tuần hiện tại
)

// Order lưu một đơn mua suất ăn tuần (orders).
type Order struct {
	ID       primitive.ObjectID   `json:"id,omitempty" bson:"_id,omitempty"`
	OrderID  string               `json:"orderId" bson:"orderId" index:"unique"`
	Email    string               `json:"email" bson:"email"`
	Selected buyermodels.WeekGrid `json:"selected" bson:"selected"`
	Status   string               `json:"status" bson:"status"`

	CreatedAt int64 `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"`
}
