package main

import (
	"context"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v3"

	"campus_mess/internal/global"
	"campus_mess/internal/logger"
	"campus_mess/internal/utility"
	"campus_mess/internal/worker"
)

// initLogger khởi tạo và cấu hình logger cho toàn bộ ứng dụng
func initLogger() {
	// Khởi tạo logger với cấu hình mặc định
	// Logger sẽ tự động đọc environment variables để cấu hình
	if err := logger.Init(nil); err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}

	// Log thông tin khởi tạo bằng logger mới
	log := logger.GetAppLogger()
	log.Info("Logger system initialized successfully")
}

// main_thread khởi tạo và chạy Fiber server
func main_thread() {
	// Khởi tạo app với cấu hình
	app := InitFiberApp()

	// Khởi động server với cấu hình listen
	cfg := global.ServerConfig
	address := cfg.Address

	log := logger.GetAppLogger()
	log.WithFields(map[string]interface{}{
		"address":  address,
		"protocol": "HTTP",
	}).Info("Starting Fiber server...")

	listenConfig := fiber.ListenConfig{}
	if err := app.Listen(address, listenConfig); err != nil {
		log.Fatalf("Error in Fiber Listen: %v", err)
	}
}

// Hàm main
func main() {
	// Khởi tạo logger
	initLogger()

	// Khởi tạo các biến toàn cục
	InitGlobal()

	// Khởi tạo registry
	InitRegistry()

	// Khởi tạo dữ liệu mặc định
	InitDefaultData()

	// Khởi tạo và chạy Aggregation Worker (background worker tổng hợp nhu cầu)
	log := logger.GetAppLogger()
	if global.ServerConfig.AggregateEnabled {
		interval := time.Duration(global.ServerConfig.AggregateInterval) * time.Minute
		aggWorker, err := worker.NewAggregationWorker(interval)
		if err != nil {
			log.WithError(err).Error("Failed to create aggregation worker, continuing without worker")
		} else {
			// Tạo context với cancel để có thể dừng worker khi cần
			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()

			// Chạy worker trong goroutine riêng với recover
			go utility.GoProtect(func() {
				aggWorker.Start(ctx)
				log.Warn("Aggregation worker đã dừng (có thể do context cancelled)")
			})

			log.Info("Aggregation worker started successfully")
		}
	} else {
		log.Info("Aggregation worker disabled")
	}

	// Chạy Fiber server trên main thread
	main_thread()
}
