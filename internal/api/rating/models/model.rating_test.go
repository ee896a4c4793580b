// Package models - Test tra cứu sao và thay thế entry đánh giá theo bữa.
package models

import (
	"testing"
)

func TestStarsFor(t *testing.T) {
	meals := []MealRating{
		{MealType: "breakfast", DishName: "Phở bò", Rating: 4},
		{MealType: "lunch", DishName: "Cơm gà", Rating: 5},
	}

	if got := StarsFor(meals, "breakfast"); got != 4 {
		t.Errorf("StarsFor(breakfast) = %d, muốn 4", got)
	}
	if got := StarsFor(meals, "LUNCH"); got != 5 {
		t.Errorf("StarsFor phải không phân biệt hoa thường, nhận %d", got)
	}
	// Chưa đánh giá → 0
	if got := StarsFor(meals, "dinner"); got != 0 {
		t.Errorf("StarsFor(dinner) chưa đánh giá phải là 0, nhận %d", got)
	}
	if got := StarsFor(nil, "breakfast"); got != 0 {
		t.Errorf("StarsFor với meals rỗng phải là 0, nhận %d", got)
	}
}

func TestReplaceEntry_ReplacesNotAppends(t *testing.T) {
	meals := []MealRating{
		{MealType: "breakfast", DishName: "Phở bò", Rating: 3},
		{MealType: "lunch", DishName: "Cơm gà", Rating: 5},
	}

	out := ReplaceEntry(meals, MealRating{MealType: "breakfast", DishName: "Phở bò", Rating: 4})
	if len(out) != 2 {
		t.Fatalf("đánh giá lại cùng bữa phải thay thế, không nối thêm: len = %d", len(out))
	}
	if got := StarsFor(out, "breakfast"); got != 4 {
		t.Errorf("sau khi thay thế breakfast phải là 4 sao, nhận %d", got)
	}
	// Bữa khác không bị ảnh hưởng
	if got := StarsFor(out, "lunch"); got != 5 {
		t.Errorf("lunch không được thay đổi, nhận %d", got)
	}
}

func TestReplaceEntry_NewMeal(t *testing.T) {
	meals := []MealRating{
		{MealType: "breakfast", DishName: "Phở bò", Rating: 3},
	}
	out := ReplaceEntry(meals, MealRating{MealType: "dinner", DishName: "Bún chả", Rating: 5})
	if len(out) != 2 {
		t.Fatalf("bữa mới phải được nối thêm: len = %d", len(out))
	}
	if got := StarsFor(out, "dinner"); got != 5 {
		t.Errorf("dinner phải là 5 sao, nhận %d", got)
	}
}

func TestReplaceEntry_Empty(t *testing.T) {
	out := ReplaceEntry(nil, MealRating{MealType: "lunch", Rating: 2})
	if len(out) != 1 || out[0].Rating != 2 {
		t.Errorf("ReplaceEntry trên danh sách rỗng phải trả về 1 entry: %+v", out)
	}
}
