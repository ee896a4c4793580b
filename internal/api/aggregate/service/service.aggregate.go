// Package aggregatesvc - Service tổng hợp nhu cầu suất ăn (daily_selections, weekly_selections).
package aggregatesvc

import (
	"context"
	"fmt"
	"time"

	aggmodels "campus_mess/internal/api/aggregate/models"
	basesvc "campus_mess/internal/api/base/service"
	buyersvc "campus_mess/internal/api/buyer/service"
	"campus_mess/internal/common"
	"campus_mess/internal/global"
	"campus_mess/internal/logger"

	"go.mongodb.org/mongo-driver/bson"
)

// AggregationService quét toàn bộ người mua và ghi bảng tổng hợp nhu cầu.
// Kết quả là snapshot best-effort: không có bảo đảm thứ tự với traffic đang chạy.
type AggregationService struct {
	dailyCRUD    *basesvc.BaseServiceMongoImpl[aggmodels.DailySelection]
	weeklyCRUD   *basesvc.BaseServiceMongoImpl[aggmodels.WeeklySelection]
	buyerService *buyersvc.BuyerService
}

// NewAggregationService tạo AggregationService mới.
func NewAggregationService() (*AggregationService, error) {
	dailyColl, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.DailySelections)
	if !exist {
		return nil, fmt.Errorf("không tìm thấy collection %s: %w", global.MongoDB_ColNames.DailySelections, common.ErrNotFound)
	}
	weeklyColl, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.WeeklySelections)
	if !exist {
		return nil, fmt.Errorf("không tìm thấy collection %s: %w", global.MongoDB_ColNames.WeeklySelections, common.ErrNotFound)
	}
	buyerSvc, err := buyersvc.NewBuyerService()
	if err != nil {
		return nil, fmt.Errorf("tạo BuyerService: %w", err)
	}
	return &AggregationService{
		dailyCRUD:    basesvc.NewBaseServiceMongo[aggmodels.DailySelection](dailyColl),
		weeklyCRUD:   basesvc.NewBaseServiceMongo[aggmodels.WeeklySelection](weeklyColl),
		buyerService: buyerSvc,
	}, nil
}

// AggregateDaily tổng hợp số suất theo ngày dương lịch: mỗi thứ có cờ true
// được ánh xạ sang ngày kế tiếp rơi vào thứ đó, rồi upsert counter của từng
// ngày bằng $set — chạy lại trong cùng chu kỳ sẽ ghi đè chứ không đếm đôi.
func (s *AggregationService) AggregateDaily(ctx context.Context) error {
	buyers, err := s.buyerService.AllBuyers(ctx)
	if err != nil {
		return err
	}

	counts := aggmodels.FoldDaily(buyers, time.Now())
	for date, c := range counts {
		update := bson.M{"$set": bson.M{
			"breakfast": c.Breakfast,
			"lunch":     c.Lunch,
			"dinner":    c.Dinner,
		}}
		if _, err := s.dailyCRUD.Upsert(ctx, bson.M{"date": date}, update); err != nil {
			return err
		}
	}

	logger.GetAppLogger().WithField("days", len(counts)).Info("Đã tổng hợp nhu cầu theo ngày")
	return nil
}

// AggregateWeekly tổng hợp bảng 7x3 của tuần hiện tại, khóa theo chủ nhật gần
// nhất. Upsert chứ không insert: chạy lại trong tuần không tạo document trùng.
func (s *AggregationService) AggregateWeekly(ctx context.Context) error {
	buyers, err := s.buyerService.AllBuyers(ctx)
	if err != nil {
		return err
	}

	weekStart := aggmodels.MostRecentSunday(time.Now()).Format(aggmodels.DateLayout)
	data := aggmodels.FoldWeekly(buyers)

	update := bson.M{"$set": bson.M{"data": data}}
	if _, err := s.weeklyCRUD.Upsert(ctx, bson.M{"weekStart": weekStart}, update); err != nil {
		return err
	}

	logger.GetAppLogger().WithField("weekStart", weekStart).Info("Đã tổng hợp nhu cầu theo tuần")
	return nil
}
