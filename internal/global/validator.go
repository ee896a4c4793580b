package global

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

// weekdays là danh sách 7 thứ trong tuần theo thứ tự chuẩn (dùng cho validator "weekday")
var weekdays = []string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"}

// mealTypes là danh sách 3 bữa ăn theo thứ tự chuẩn (dùng cho validator "mealtype")
var mealTypes = []string{"breakfast", "lunch", "dinner"}

// InitValidator khởi tạo và đăng ký các custom validator
func InitValidator() {
	// Khởi tạo validator
	Validate = validator.New()

	// Đăng ký các custom validator
	_ = Validate.RegisterValidation("weekday", validateWeekday)
	_ = Validate.RegisterValidation("mealtype", validateMealType)
}

// validateWeekday kiểm tra giá trị là một trong 7 thứ chuẩn (không phân biệt hoa thường)
func validateWeekday(fl validator.FieldLevel) bool {
	value := strings.ToLower(fl.Field().String())
	for _, d := range weekdays {
		if value == d {
			return true
		}
	}
	return false
}

// validateMealType kiểm tra giá trị là một trong 3 bữa ăn chuẩn
func validateMealType(fl validator.FieldLevel) bool {
	value := strings.ToLower(fl.Field().String())
	for _, m := range mealTypes {
		if value == m {
			return true
		}
	}
	return false
}
