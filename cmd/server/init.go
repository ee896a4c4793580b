package main

import (
	"context"

	"campus_mess/config"
	aggmodels "campus_mess/internal/api/aggregate/models"
	buyermodels "campus_mess/internal/api/buyer/models"
	menumodels "campus_mess/internal/api/menu/models"
	ordermodels "campus_mess/internal/api/order/models"
	ratingmodels "campus_mess/internal/api/rating/models"
	"campus_mess/internal/database"
	"campus_mess/internal/global"

	"github.com/sirupsen/logrus"
)

// Hàm khởi tạo các biến toàn cục
func InitGlobal() {
	initColNames()         // Khởi tạo tên các collection trong database
	initValidator()        // Khởi tạo validator
	initConfig()           // Khởi tạo cấu hình server
	initDatabase_MongoDB() // Khởi tạo kết nối database
}

// Hàm khởi tạo tên các collection trong database
func initColNames() {
	global.MongoDB_ColNames.Buyers = "buyers"
	global.MongoDB_ColNames.MenuItems = "menu_items"
	global.MongoDB_ColNames.Ratings = "ratings"
	global.MongoDB_ColNames.Orders = "orders"

	// Aggregation Collections (bảng tổng hợp nhu cầu cho nhà bếp / dự báo)
	global.MongoDB_ColNames.DailySelections = "daily_selections"
	global.MongoDB_ColNames.WeeklySelections = "weekly_selections"

	// Dữ liệu tham chiếu cho dịch vụ dự báo nguyên liệu
	global.MongoDB_ColNames.Ingredients = "ingredients"

	logrus.Info("Initialized collection names") // Ghi log thông báo đã khởi tạo tên các collection
}

// Hàm khởi tạo validator (dùng global.InitValidator để đăng ký custom validators: weekday, mealtype)
func initValidator() {
	global.InitValidator()
	logrus.Info("Initialized validator") // Ghi log thông báo đã khởi tạo validator
}

// Hàm khởi tạo cấu hình server
func initConfig() {
	global.ServerConfig = config.NewConfig()
	if global.ServerConfig == nil {
		logrus.Fatalf("Failed to initialize config: config is nil") // Ghi log lỗi nếu khởi tạo cấu hình thất bại
	}
	logrus.Info("Initialized server config") // Ghi log thông báo đã khởi tạo cấu hình server
}

// Hàm khởi tạo kết nối database
func initDatabase_MongoDB() {
	var err error
	global.MongoDB_Session, err = database.GetInstance(global.ServerConfig)
	if err != nil {
		logrus.Fatalf("Failed to get database instance: %v", err) // Ghi log lỗi nếu kết nối database thất bại
	}
	logrus.Info("Connected to MongoDB") // Ghi log thông báo đã kết nối database thành công

	// Khởi tạo các db và collections nếu chưa có
	database.EnsureDatabaseAndCollections(global.MongoDB_Session)
	logrus.Info("Ensured database and collections") // Ghi log thông báo đã đảm bảo database và các collection

	// Khơi tạo các index cho các collection
	dbName := global.ServerConfig.MongoDB_DBName
	db := global.MongoDB_Session.Database(dbName)
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.Buyers), buyermodels.BuyerRecord{})
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.MenuItems), menumodels.MenuEntry{})
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.Ratings), ratingmodels.RatingDoc{})
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.Orders), ordermodels.Order{})

	// Aggregation Indexes
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.DailySelections), aggmodels.DailySelection{})
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.WeeklySelections), aggmodels.WeeklySelection{})
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.Ingredients), aggmodels.Ingredient{})

	// Các index trên field lồng nhau không khai báo được bằng struct tag
	if err := database.CreateMessAdditionalIndexes(context.TODO(), db); err != nil {
		logrus.Errorf("Failed to create additional indexes: %v", err)
	}
}
