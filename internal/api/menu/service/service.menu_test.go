// Package menusvc - Test sắp xếp thực đơn theo thứ tự chuẩn của tuần.
package menusvc

import (
	"testing"

	menumodels "campus_mess/internal/api/menu/models"
)

func TestSortEntries(t *testing.T) {
	entries := []menumodels.MenuEntry{
		{Day: "sunday"},
		{Day: "wednesday"},
		{Day: "monday"},
		{Day: "friday"},
	}

	sorted := SortEntries(entries)
	want := []string{"monday", "wednesday", "friday", "sunday"}
	for i, w := range want {
		if sorted[i].Day != w {
			t.Errorf("vị trí %d: muốn %s, nhận %s", i, w, sorted[i].Day)
		}
	}

	// Slice gốc không bị thay đổi
	if entries[0].Day != "sunday" {
		t.Error("SortEntries không được thay đổi slice gốc")
	}
}

func TestSortEntries_CaseInsensitive(t *testing.T) {
	entries := []menumodels.MenuEntry{
		{Day: "Tuesday"},
		{Day: "MONDAY"},
	}
	sorted := SortEntries(entries)
	if sorted[0].Day != "MONDAY" || sorted[1].Day != "Tuesday" {
		t.Errorf("sắp xếp phải không phân biệt hoa thường: %v, %v", sorted[0].Day, sorted[1].Day)
	}
}

func TestSortEntries_UnknownDayLast(t *testing.T) {
	entries := []menumodels.MenuEntry{
		{Day: "someday"},
		{Day: "monday"},
	}
	sorted := SortEntries(entries)
	if sorted[0].Day != "monday" || sorted[1].Day != "someday" {
		t.Errorf("day lạ phải bị đẩy xuống cuối: %v, %v", sorted[0].Day, sorted[1].Day)
	}
}

func TestSortEntries_Empty(t *testing.T) {
	if got := SortEntries(nil); len(got) != 0 {
		t.Errorf("SortEntries(nil) phải trả về slice rỗng, nhận %d phần tử", len(got))
	}
}
