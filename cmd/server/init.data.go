package main

import (
	"context"

	aggmodels "campus_mess/internal/api/aggregate/models"
	basesvc "campus_mess/internal/api/base/service"
	buyermodels "campus_mess/internal/api/buyer/models"
	menumodels "campus_mess/internal/api/menu/models"
	menusvc "campus_mess/internal/api/menu/service"
	"campus_mess/internal/global"
	"campus_mess/internal/logger"

	"go.mongodb.org/mongo-driver/bson"
)

// InitDefaultData seed thực đơn và danh mục nguyên liệu mặc định khi chạy ở
// chế độ INITMODE. Chỉ seed khi collection còn trống để không ghi đè dữ liệu
// admin đã chỉnh.
func InitDefaultData() {
	log := logger.GetAppLogger()

	if !global.ServerConfig.InitMode {
		log.Info("InitMode disabled, skipping default data")
		return
	}
	log.Info("Starting InitDefaultData...")

	ctx := context.Background()

	// 1. Thực đơn mặc định cho cả tuần
	if err := initDefaultMenu(ctx); err != nil {
		log.WithError(err).Error("Failed to initialize default menu")
	} else {
		log.Info("Default menu initialized")
	}

	// 2. Danh mục nguyên liệu tham chiếu cho dịch vụ dự báo
	if err := initDefaultIngredients(ctx); err != nil {
		log.WithError(err).Error("Failed to initialize default ingredients")
	} else {
		log.Info("Default ingredients initialized")
	}

	log.Info("InitDefaultData completed")
}

// initDefaultMenu ghi thực đơn 7 ngày nếu menu_items còn trống.
func initDefaultMenu(ctx context.Context) error {
	menuService, err := menusvc.NewMenuService()
	if err != nil {
		return err
	}

	existing, err := menuService.GetMenu(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		logger.GetAppLogger().Info("Menu already present, skipping seed")
		return nil
	}

	entries := []menumodels.MenuEntry{
		{Day: buyermodels.DayMonday, Breakfast: "Phở bò", Lunch: "Cơm gà", Dinner: "Bún chả"},
		{Day: buyermodels.DayTuesday, Breakfast: "Bánh mì ốp la", Lunch: "Cơm sườn", Dinner: "Mì xào bò"},
		{Day: buyermodels.DayWednesday, Breakfast: "Xôi gà", Lunch: "Cơm cá kho", Dinner: "Bún bò Huế"},
		{Day: buyermodels.DayThursday, Breakfast: "Bánh cuốn", Lunch: "Cơm thịt kho trứng", Dinner: "Phở gà"},
		{Day: buyermodels.DayFriday, Breakfast: "Bún riêu", Lunch: "Cơm chay", Dinner: "Cơm tấm"},
		{Day: buyermodels.DaySaturday, Breakfast: "Bánh bao", Lunch: "Bún thịt nướng", Dinner: "Lẩu gà"},
		{Day: buyermodels.DaySunday, Breakfast: "Cháo gà", Lunch: "Cơm rang dưa bò", Dinner: "Bánh xèo"},
	}
	return menuService.SetMenu(ctx, entries)
}

// initDefaultIngredients ghi danh mục nguyên liệu nếu ingredients còn trống.
func initDefaultIngredients(ctx context.Context) error {
	coll, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Ingredients)
	if !exist {
		return nil
	}
	ingredientCRUD := basesvc.NewBaseServiceMongo[aggmodels.Ingredient](coll)

	count, err := ingredientCRUD.CountDocuments(ctx, bson.M{})
	if err != nil {
		return err
	}
	if count > 0 {
		logger.GetAppLogger().Info("Ingredients already present, skipping seed")
		return nil
	}

	ingredients := []aggmodels.Ingredient{
		{Name: "Gạo", Unit: "kg", Dishes: []string{"Cơm gà", "Cơm sườn", "Cơm cá kho", "Cơm thịt kho trứng", "Cơm chay", "Cơm tấm", "Cơm rang dưa bò", "Xôi gà", "Cháo gà"}},
		{Name: "Thịt bò", Unit: "kg", Dishes: []string{"Phở bò", "Mì xào bò", "Bún bò Huế", "Cơm rang dưa bò"}},
		{Name: "Thịt gà", Unit: "kg", Dishes: []string{"Cơm gà", "Xôi gà", "Phở gà", "Lẩu gà", "Cháo gà"}},
		{Name: "Thịt heo", Unit: "kg", Dishes: []string{"Bún chả", "Cơm sườn", "Cơm thịt kho trứng", "Bún thịt nướng", "Cơm tấm", "Bánh bao"}},
		{Name: "Trứng", Unit: "quả", Dishes: []string{"Bánh mì ốp la", "Cơm thịt kho trứng", "Bánh xèo"}},
		{Name: "Bánh phở", Unit: "kg", Dishes: []string{"Phở bò", "Phở gà"}},
		{Name: "Bún", Unit: "kg", Dishes: []string{"Bún chả", "Bún bò Huế", "Bún riêu", "Bún thịt nướng"}},
		{Name: "Rau xanh", Unit: "kg", Dishes: []string{"Cơm chay", "Lẩu gà", "Bún thịt nướng", "Bánh xèo"}},
	}

	_, err = ingredientCRUD.InsertMany(ctx, ingredients)
	return err
}
