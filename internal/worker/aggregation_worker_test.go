// Package worker - Test vòng đời của AggregationWorker.
package worker

import (
	"context"
	"testing"
	"time"
)

func TestAggregationWorker_StartStopsDuringWarmup(t *testing.T) {
	// Worker chưa chạy chu kỳ nào nên không cần service thật
	w := &AggregationWorker{interval: time.Hour}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	done := make(chan struct{})
	go func() {
		w.Start(ctx)
		close(done)
	}()

	// Ctx đã hủy thì Start phải thoát ngay trong phút chờ khởi động,
	// không được kẹt lại hết cả phút
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Start không dừng khi context bị hủy trong thời gian chờ khởi động")
	}
}
