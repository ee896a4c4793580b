// Package buyersvc - Service trạng thái phiếu ăn của người mua (buyers).
package buyersvc

import (
	"context"
	"errors"
	"fmt"

	basesvc "campus_mess/internal/api/base/service"
	buyermodels "campus_mess/internal/api/buyer/models"
	"campus_mess/internal/common"
	"campus_mess/internal/global"
	"campus_mess/internal/logger"
	"campus_mess/internal/utility"

	"go.mongodb.org/mongo-driver/bson"
	mongoopts "go.mongodb.org/mongo-driver/mongo/options"
)

// BuyerService xử lý vòng đời phiếu ăn: cấp secret, duyệt phiếu, chốt đơn.
type BuyerService struct {
	*basesvc.BaseServiceMongoImpl[buyermodels.BuyerRecord]
}

// NewBuyerService tạo BuyerService mới.
func NewBuyerService() (*BuyerService, error) {
	coll, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Buyers)
	if !exist {
		return nil, fmt.Errorf("không tìm thấy collection %s: %w", global.MongoDB_ColNames.Buyers, common.ErrNotFound)
	}
	return &BuyerService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[buyermodels.BuyerRecord](coll),
	}, nil
}

// GetOrCreate trả về bản ghi của email, tạo mới nếu chưa có.
// Dùng một FindOneAndUpdate upsert với $setOnInsert: hai request cùng email
// chạy đồng thời vẫn chỉ tạo một bản ghi với đúng một secret.
func (s *BuyerService) GetOrCreate(ctx context.Context, email string) (*buyermodels.BuyerRecord, error) {
	if err := utility.ValidateEmail(email); err != nil {
		return nil, err
	}

	update := basesvc.UpdateData{
		SetOnInsert: map[string]interface{}{
			"bought":    false,
			"secret":    utility.GenerateSecret(),
			"this":      buyermodels.WeekGrid{},
			"next":      buyermodels.WeekGrid{},
			"createdAt": utility.CurrentTimeInMilli(),
		},
	}
	opts := mongoopts.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(mongoopts.After)

	record, err := s.FindOneAndUpdate(ctx, bson.M{"email": email}, update, opts)
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// ResetSecret cấp secret mới cho người mua. Trả về ErrNotFound nếu chưa có bản ghi.
func (s *BuyerService) ResetSecret(ctx context.Context, email string) (*buyermodels.BuyerRecord, error) {
	if err := utility.ValidateEmail(email); err != nil {
		return nil, err
	}

	secret := utility.GenerateSecret()
	opts := mongoopts.FindOneAndUpdate().SetReturnDocument(mongoopts.After)
	record, err := s.FindOneAndUpdate(ctx, bson.M{"email": email},
		bson.M{"$set": bson.M{"secret": secret}}, opts)
	if err != nil {
		return nil, err
	}

	logger.GetAuditLogger().WithField("email", email).Info("Đã cấp secret mới")
	return &record, nil
}

// AllBuyers trả về toàn bộ người mua, dùng cho tổng hợp nhu cầu.
// Quy mô nhà ăn trong khuôn viên nên quét cả collection là chấp nhận được.
func (s *BuyerService) AllBuyers(ctx context.Context) ([]buyermodels.BuyerRecord, error) {
	return s.Find(ctx, bson.M{}, nil)
}

// BoughtNextWeek trả về cờ đã mua suất tuần kế, tạo bản ghi nếu chưa có.
func (s *BuyerService) BoughtNextWeek(ctx context.Context, email string) (bool, error) {
	record, err := s.GetOrCreate(ctx, email)
	if err != nil {
		return false, err
	}
	return record.Bought, nil
}

// RedeemCoupon tiêu một phiếu (day, meal) của người mua.
// Toàn bộ nghiệp vụ nằm trong một FindOneAndUpdate duy nhất: filter khớp
// email + secret + cờ phiếu còn true, update hạ cờ xuống false. Hai quầy
// cùng quẹt một phiếu thì chỉ một lần khớp filter — phiếu chỉ tiêu được một lần.
// Sai secret, không có người mua hay phiếu đã tiêu đều trả về false như nhau.
func (s *BuyerService) RedeemCoupon(ctx context.Context, email, secret, day, meal string) (bool, error) {
	path, err := buyermodels.GridFieldPath("this", day, meal)
	if err != nil {
		// Day/meal lạ không phải lỗi hệ thống, phiếu đơn giản là không hợp lệ
		return false, nil
	}

	filter := bson.M{
		"email":  email,
		"secret": secret,
		path:     true,
	}
	update := bson.M{"$set": bson.M{path: false}}

	_, err = s.FindOneAndUpdate(ctx, filter, update, nil)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return false, nil
		}
		return false, err
	}

	logger.GetAuditLogger().WithFields(map[string]interface{}{
		"email": email,
		"day":   day,
		"meal":  meal,
	}).Info("Đã tiêu phiếu ăn")
	return true, nil
}

// SaveOrder chốt đơn sau khi thanh toán được xác minh: ghi đè nguyên bảng
// tuần hiện tại bằng bảng đã chọn và bật cờ bought. Upsert ghi đè toàn bộ,
// không merge, nên gọi lại với cùng dữ liệu không đổi kết quả.
func (s *BuyerService) SaveOrder(ctx context.Context, email string, grid buyermodels.WeekGrid) error {
	if err := utility.ValidateEmail(email); err != nil {
		return err
	}

	update := bson.M{"$set": bson.M{
		"this":   grid,
		"bought": true,
	}}
	_, err := s.Upsert(ctx, bson.M{"email": email}, update)
	if err != nil {
		return err
	}

	logger.GetAuditLogger().WithField("email", email).Info("Đã chốt đơn suất ăn tuần")
	return nil
}
