// Package dto - DTO cho domain order.
package dto

// CreateOrderInput là bảng chọn suất ăn client gửi lên khi đặt mua.
// Dạng map để bắt được key lạ ngay tại biên trước khi chuẩn hóa thành WeekGrid.
type CreateOrderInput struct {
	Selected map[string]map[string]bool `json:"selected" validate:"required"`
}

// CreateOrderResponse trả về mã đơn hàng để client đưa sang cổng thanh toán.
type CreateOrderResponse struct {
	OrderID string `json:"orderId"`
}

// CheckOrderInput là dữ liệu cổng thanh toán trả về sau khi người mua thanh toán.
type CheckOrderInput struct {
	OrderID   string `json:"orderId" validate:"required"`
	PaymentID string `json:"paymentId" validate:"required"`
	Signature string `json:"signature" validate:"required"`
}

// CheckOrderResponse trả về kết quả chốt đơn.
type CheckOrderResponse struct {
	Settled bool `json:"settled"`
}
