// Package database - Index bổ sung cho nghiệp vụ nhà ăn (nested fields) không thể định nghĩa qua model tags.
package database

import (
	"context"
	"strings"

	"campus_mess/internal/global"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CreateMessAdditionalIndexes tạo các index bổ sung trên nested fields.
// Gọi sau CreateIndexes cho từng collection.
func CreateMessAdditionalIndexes(ctx context.Context, db *mongo.Database) error {
	// ratings: (day, meals.name) multikey — tra cứu điểm đánh giá theo món khi tổng hợp
	ratings := db.Collection(global.MongoDB_ColNames.Ratings)
	if _, err := ratings.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "day", Value: 1},
			{Key: "meals.name", Value: 1},
		},
		Options: options.Index().SetName("rating_day_dish"),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// orders: (email, createdAt) — liệt kê đơn hàng gần nhất của một người mua
	orders := db.Collection(global.MongoDB_ColNames.Orders)
	if _, err := orders.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "email", Value: 1},
			{Key: "createdAt", Value: -1},
		},
		Options: options.Index().SetName("order_email_created"),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	return nil
}

func isIndexExistsError(err error) bool {
	if err == nil {
		return false
	}
	s := err.Error()
	return strings.Contains(s, "already exists") || strings.Contains(s, "duplicate")
}
