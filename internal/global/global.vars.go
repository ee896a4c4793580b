package global

import (
	"campus_mess/config"
	"campus_mess/internal/registry"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoDB_CollectionName chứa tên các collection trong MongoDB
type MongoDB_CollectionName struct {
	Buyers           string // Tên collection cho người mua (secret, tuần hiện tại, tuần kế)
	MenuItems        string // Tên collection cho thực đơn theo thứ trong tuần
	Ratings          string // Tên collection cho đánh giá món ăn theo (email, thứ)
	Orders           string // Tên collection cho đơn hàng chờ xác minh thanh toán
	DailySelections  string // Tên collection cho số lượng suất ăn theo ngày (aggregation)
	WeeklySelections string // Tên collection cho bảng 7x3 suất ăn theo tuần (aggregation)
	Ingredients      string // Tên collection cho nguyên liệu theo món (forecast dùng)
}

// Các biến toàn cục
var Validate *validator.Validate               // Biến để xác thực dữ liệu
var MongoDB_Session *mongo.Client              // Phiên kết nối tới MongoDB
var ServerConfig *config.Configuration         // Cấu hình của server
var MongoDB_ColNames MongoDB_CollectionName    // Tên các collection

// Các Registry
var RegistryCollections = registry.NewRegistry[*mongo.Collection]() // Registry chứa các collections
