// Package ordersvc - Service đơn hàng mua suất ăn tuần (orders).
package ordersvc

import (
	"context"
	"fmt"

	basemodels "campus_mess/internal/api/base/models"
	basesvc "campus_mess/internal/api/base/service"
	buyermodels "campus_mess/internal/api/buyer/models"
	ordermodels "campus_mess/internal/api/order/models"
	"campus_mess/internal/common"
	"campus_mess/internal/global"
	"campus_mess/internal/utility"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// OrderService xử lý tạo đơn và chốt đơn sau thanh toán.
type OrderService struct {
	*basesvc.BaseServiceMongoImpl[ordermodels.Order]
}

// NewOrderService tạo OrderService mới.
func NewOrderService() (*OrderService, error) {
	coll, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Orders)
	if !exist {
		return nil, fmt.Errorf("không tìm thấy collection %s: %w", global.MongoDB_ColNames.Orders, common.ErrNotFound)
	}
	return &OrderService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[ordermodels.Order](coll),
	}, nil
}

// CreateOrder lưu một đơn mới ở trạng thái chờ thanh toán và trả về mã đơn.
// Bảng chọn đã được chuẩn hóa đầy đủ 7x3 tại biên trước khi vào đây.
func (s *OrderService) CreateOrder(ctx context.Context, email string, selected buyermodels.WeekGrid) (*ordermodels.Order, error) {
	if err := utility.ValidateEmail(email); err != nil {
		return nil, err
	}

	doc := ordermodels.Order{
		OrderID:  "order_" + primitive.NewObjectID().Hex(),
		Email:    email,
		Selected: selected,
		Status:   ordermodels.OrderStatusCreated,
	}
	order, err := s.InsertOne(ctx, doc)
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// GetOrder tìm đơn theo mã đơn.
func (s *OrderService) GetOrder(ctx context.Context, orderID string) (*ordermodels.Order, error) {
	order, err := s.FindOne(ctx, bson.M{"orderId": orderID}, nil)
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// ListOrders liệt kê đơn hàng có phân trang, đơn mới nhất trước.
// email và status rỗng nghĩa là không lọc theo trường tương ứng.
func (s *OrderService) ListOrders(ctx context.Context, email, status string, page, limit int64) (*basemodels.PaginateResult[ordermodels.Order], error) {
	filter := bson.M{}
	if email != "" {
		filter["email"] = email
	}
	if status != "" {
		filter["status"] = status
	}

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	return s.FindWithPagination(ctx, filter, page, limit, opts)
}

// MarkPaid chuyển đơn sang trạng thái đã thanh toán.
func (s *OrderService) MarkPaid(ctx context.Context, orderID string) error {
	filter := bson.M{"orderId": orderID}
	update := bson.M{"$set": bson.M{"status": ordermodels.OrderStatusPaid}}
	_, err := s.UpdateOne(ctx, filter, update, nil)
	return err
}
