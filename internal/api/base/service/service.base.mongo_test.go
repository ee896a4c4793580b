// Package basesvc - Test chuyển đổi update về UpdateData.
package basesvc

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson"
)

func TestToUpdateData_OperatorMap(t *testing.T) {
	update, err := ToUpdateData(bson.M{"$set": bson.M{"status": "paid"}})
	if err != nil {
		t.Fatalf("ToUpdateData trả về lỗi: %v", err)
	}
	if update.Set == nil || update.Set["status"] != "paid" {
		t.Errorf("$set bị mất khi chuyển đổi từ bson.M: %+v", update)
	}
}

func TestToUpdateData_OperatorMapNestedD(t *testing.T) {
	update, err := ToUpdateData(bson.M{"$set": bson.D{{Key: "breakfast", Value: 3}}})
	if err != nil {
		t.Fatalf("ToUpdateData trả về lỗi: %v", err)
	}
	if update.Set == nil || update.Set["breakfast"] != 3 {
		t.Errorf("$set dạng bson.D bị mất khi chuyển đổi: %+v", update)
	}
}

func TestToUpdateData_SetOnInsertOnly(t *testing.T) {
	update, err := ToUpdateData(bson.M{"$setOnInsert": bson.M{"secret": "abcd"}})
	if err != nil {
		t.Fatalf("ToUpdateData trả về lỗi: %v", err)
	}
	if update.SetOnInsert == nil || update.SetOnInsert["secret"] != "abcd" {
		t.Errorf("$setOnInsert bị mất: %+v", update)
	}
	if len(update.Set) != 0 {
		t.Errorf("không có $set trong input thì Set phải rỗng: %+v", update.Set)
	}
}

func TestToUpdateData_PlainMapWrapsInSet(t *testing.T) {
	update, err := ToUpdateData(map[string]interface{}{"bought": true})
	if err != nil {
		t.Fatalf("ToUpdateData trả về lỗi: %v", err)
	}
	if update.Set == nil || update.Set["bought"] != true {
		t.Errorf("map thường phải được wrap trong $set: %+v", update)
	}
}

func TestToUpdateData_Passthrough(t *testing.T) {
	in := UpdateData{Pull: map[string]interface{}{"meals": bson.M{"mealType": "lunch"}}}
	update, err := ToUpdateData(in)
	if err != nil {
		t.Fatalf("ToUpdateData trả về lỗi: %v", err)
	}
	if update.Pull == nil {
		t.Errorf("UpdateData truyền thẳng phải giữ nguyên $pull: %+v", update)
	}

	ptr := &UpdateData{Push: map[string]interface{}{"meals": 1}}
	update, err = ToUpdateData(ptr)
	if err != nil {
		t.Fatalf("ToUpdateData trả về lỗi: %v", err)
	}
	if update != ptr {
		t.Error("con trỏ UpdateData phải được trả về nguyên vẹn")
	}
}
