package types

import "humana/constants"

// Viewer là ngữ cảnh truy vấn của request hiện tại, được resolve một lần
// từ token đã xác thực thay vì so sánh chuỗi role ở từng chỗ gọi.
type Viewer struct {
	UserID uint
	Role   int
}

// AllScope cho biết viewer được xem dữ liệu của mọi nhân viên.
func (v Viewer) AllScope() bool {
	return v.Role == constants.RoleAdmin
}

// CanView kiểm tra viewer có được xem dữ liệu gắn với userID không.
func (v Viewer) CanView(userID uint) bool {
	if v.AllScope() {
		return true
	}
	return v.UserID == userID
}
