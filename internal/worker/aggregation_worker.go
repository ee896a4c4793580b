// Package worker - AggregationWorker chạy tổng hợp nhu cầu suất ăn theo chu kỳ,
// bổ sung cho route kích hoạt thủ công của admin.
package worker

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	aggregatesvc "campus_mess/internal/api/aggregate/service"
	"campus_mess/internal/logger"
)

// AggregationWorker worker tổng hợp nhu cầu định kỳ.
type AggregationWorker struct {
	aggregationService *aggregatesvc.AggregationService
	interval           time.Duration // Khoảng thời gian giữa các lần chạy (vd: 24h)
}

// NewAggregationWorker tạo worker mới.
//
// Tham số:
//   - interval: Khoảng cách giữa các lần chạy (tối thiểu 1 phút, mặc định 24h)
func NewAggregationWorker(interval time.Duration) (*AggregationWorker, error) {
	aggregationService, err := aggregatesvc.NewAggregationService()
	if err != nil {
		return nil, err
	}
	if interval < time.Minute {
		interval = 24 * time.Hour
	}
	return &AggregationWorker{
		aggregationService: aggregationService,
		interval:           interval,
	}, nil
}

// Start chạy worker trong vòng lặp cho đến khi ctx bị hủy.
func (w *AggregationWorker) Start(ctx context.Context) {
	log := logger.GetAppLogger()

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	log.WithFields(map[string]interface{}{
		"interval": w.interval.String(),
	}).Info("Starting Aggregation Worker...")

	// Chạy lần đầu sau 1 phút (tránh chạy lúc startup), vẫn dừng được khi ctx bị hủy
	select {
	case <-ctx.Done():
		log.Info("Aggregation Worker stopped")
		return
	case <-time.After(time.Minute):
	}
	w.runOnce(ctx, log)

	for {
		select {
		case <-ctx.Done():
			log.Info("Aggregation Worker stopped")
			return
		case <-ticker.C:
			w.runOnce(ctx, log)
		}
	}
}

// runOnce chạy một chu kỳ tổng hợp, panic trong một chu kỳ không làm chết worker.
func (w *AggregationWorker) runOnce(ctx context.Context, log *logrus.Logger) {
	defer func() {
		if r := recover(); r != nil {
			log.WithField("panic", r).Error("Aggregation Worker: panic trong chu kỳ tổng hợp")
		}
	}()

	if err := w.aggregationService.AggregateDaily(ctx); err != nil {
		log.WithError(err).Error("Aggregation Worker: tổng hợp theo ngày thất bại")
	}
	if err := w.aggregationService.AggregateWeekly(ctx); err != nil {
		log.WithError(err).Error("Aggregation Worker: tổng hợp theo tuần thất bại")
	}
}
