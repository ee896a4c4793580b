// Package ratingsvc - Service đánh giá món ăn (ratings).
package ratingsvc

import (
	"context"
	"errors"
	"fmt"
	"strings"

	basesvc "campus_mess/internal/api/base/service"
	menusvc "campus_mess/internal/api/menu/service"
	ratingmodels "campus_mess/internal/api/rating/models"
	"campus_mess/internal/common"
	"campus_mess/internal/global"
	"campus_mess/internal/utility"

	"go.mongodb.org/mongo-driver/bson"
)

// RatingService xử lý ghi và đọc đánh giá món ăn theo (email, thứ).
type RatingService struct {
	*basesvc.BaseServiceMongoImpl[ratingmodels.RatingDoc]
	menuService *menusvc.MenuService
}

// NewRatingService tạo RatingService mới.
func NewRatingService() (*RatingService, error) {
	coll, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Ratings)
	if !exist {
		return nil, fmt.Errorf("không tìm thấy collection %s: %w", global.MongoDB_ColNames.Ratings, common.ErrNotFound)
	}
	menuSvc, err := menusvc.NewMenuService()
	if err != nil {
		return nil, fmt.Errorf("tạo MenuService: %w", err)
	}
	return &RatingService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[ratingmodels.RatingDoc](coll),
		menuService:          menuSvc,
	}, nil
}

// Rate ghi đánh giá cho một bữa: tra món trong thực đơn, rồi thay entry cùng
// bữa trên document (email, day) — $pull entry cũ, $push entry mới. Đánh giá
// lại cùng bữa luôn thay thế, không bao giờ nối thêm.
func (s *RatingService) Rate(ctx context.Context, email, day, meal string, stars int) error {
	if err := utility.ValidateEmail(email); err != nil {
		return err
	}
	if stars < 1 || stars > 5 {
		return common.NewError(common.ErrCodeValidationInput,
			"Số sao phải trong khoảng 1-5", common.StatusBadRequest, nil)
	}
	day = strings.ToLower(day)
	meal = strings.ToLower(meal)

	// Món phải có trong thực đơn của (day, meal)
	dish, err := s.menuService.DishFor(ctx, day, meal)
	if err != nil {
		return err
	}

	filter := bson.M{"email": email, "day": day}

	// Bước 1: đảm bảo document tồn tại và gỡ entry cũ của bữa này (nếu có)
	pull := basesvc.UpdateData{
		Pull: map[string]interface{}{
			"meals": bson.M{"mealType": meal},
		},
		SetOnInsert: map[string]interface{}{
			"email": email,
			"day":   day,
		},
	}
	if _, err := s.Upsert(ctx, filter, pull); err != nil {
		return err
	}

	// Bước 2: thêm entry mới
	entry := ratingmodels.MealRating{
		MealType:  meal,
		DishName:  dish,
		Rating:    stars,
		CreatedAt: utility.CurrentTimeInMilli(),
	}
	push := basesvc.UpdateData{
		Push: map[string]interface{}{
			"meals": entry,
		},
	}
	if _, err := s.UpdateOne(ctx, filter, push, nil); err != nil {
		return err
	}

	return nil
}

// GetRating trả về số sao đã đánh giá cho (email, day, meal), 0 nếu chưa đánh giá.
func (s *RatingService) GetRating(ctx context.Context, email, day, meal string) (int, error) {
	day = strings.ToLower(day)

	doc, err := s.FindOne(ctx, bson.M{"email": email, "day": day}, nil)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return 0, nil
		}
		return 0, err
	}
	return ratingmodels.StarsFor(doc.Meals, meal), nil
}
