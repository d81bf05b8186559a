package dto

import "time"

// AddDocumentRequest định nghĩa phần form của request thêm tài liệu
// (file nằm trong field "file")
type AddDocumentRequest struct {
	Label    string `form:"label"`
	Category string `form:"category"`
}

// DocumentResponse định nghĩa một mục trong danh mục hồ sơ
type DocumentResponse struct {
	ID           uint      `json:"id"`
	Label        string    `json:"label"`
	Category     string    `json:"category"`
	FileURL      string    `json:"fileUrl"`
	OriginalName string    `json:"originalName"`
	UploadedAt   time.Time `json:"uploadedAt"`
}

// ExpedienteInfo định nghĩa thông tin expediente hiện hành của nhân viên
type ExpedienteInfo struct {
	URL          string     `json:"url"`
	OriginalName string     `json:"originalName"`
	UploadedAt   *time.Time `json:"uploadedAt"`
}
