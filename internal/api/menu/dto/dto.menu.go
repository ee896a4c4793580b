// Package dto - DTO cho domain menu.
package dto

// MenuEntryInput là thực đơn một thứ client gửi lên khi thay thực đơn tuần.
type MenuEntryInput struct {
	Day       string `json:"day" validate:"required,weekday"`
	Breakfast string `json:"breakfast" validate:"required"`
	Lunch     string `json:"lunch" validate:"required"`
	Dinner    string `json:"dinner" validate:"required"`
}

// SetMenuInput là toàn bộ thực đơn tuần mới (thay thế nguyên bộ).
type SetMenuInput struct {
	Entries []MenuEntryInput `json:"entries" validate:"required,min=1,dive"`
}

// MenuEntryResponse là thực đơn một thứ trả về cho client.
type MenuEntryResponse struct {
	Day       string `json:"day"`
	Breakfast string `json:"breakfast"`
	Lunch     string `json:"lunch"`
	Dinner    string `json:"dinner"`
}
