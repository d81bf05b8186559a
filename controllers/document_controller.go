package controllers

import (
	"strconv"

	"humana/dto"
	"humana/errors"
	"humana/response"
	"humana/services"
	"humana/validator"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type DocumentController struct {
	DB   *gorm.DB
	Docs *services.DocumentService
}

func NewDocumentController(db *gorm.DB, docs *services.DocumentService) DocumentController {
	return DocumentController{
		DB:   db,
		Docs: docs,
	}
}

// respondDocumentError giữ phân loại lỗi ở biên: not-found, lỗi kho lưu trữ
// bên ngoài và lỗi server không được gộp chung
func respondDocumentError(c *gin.Context, err error) {
	if appErr := errors.GetAppError(err); appErr != nil {
		switch appErr.Code {
		case errors.ErrCodeDocumentNotFound:
			response.NotFound(c)
			return
		case errors.ErrCodeStorageUpload, errors.ErrCodeStorageDelete:
			response.UpstreamError(c, appErr.Message)
			return
		}
	}
	response.ServerError(c)
}

// UploadExpediente thay hồ sơ tổng của nhân viên bằng file mới
func (d DocumentController) UploadExpediente(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		response.BadRequest(c, "Không có file")
		return
	}

	employee, err := findEmployeeByRef(d.DB, c.Param("id"))
	if err != nil {
		response.NotFound(c)
		return
	}

	src, err := file.Open()
	if err != nil {
		response.BadRequest(c, "Lỗi khi mở file")
		return
	}
	defer src.Close()

	doc, err := d.Docs.ReplaceExpediente(c.Request.Context(), employee, src, file.Filename)
	if err != nil {
		respondDocumentError(c, err)
		return
	}

	response.Success(c, dto.ExpedienteInfo{
		URL:          doc.FileURL,
		OriginalName: doc.OriginalName,
		UploadedAt:   &doc.UploadedAt,
	})
}

// AddDocument thêm một tài liệu mới vào danh mục hồ sơ của nhân viên
func (d DocumentController) AddDocument(c *gin.Context) {
	var req dto.AddDocumentRequest
	if err := c.ShouldBind(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := validator.ValidateDocumentLabel(req.Label); err != nil {
		response.ValidationError(c, err.Error())
		return
	}

	file, err := c.FormFile("file")
	if err != nil {
		response.BadRequest(c, "Không có file")
		return
	}

	employee, err := findEmployeeByRef(d.DB, c.Param("id"))
	if err != nil {
		response.NotFound(c)
		return
	}

	src, err := file.Open()
	if err != nil {
		response.BadRequest(c, "Lỗi khi mở file")
		return
	}
	defer src.Close()

	doc, err := d.Docs.AddDocument(c.Request.Context(), employee, req.Label, req.Category, src, file.Filename)
	if err != nil {
		respondDocumentError(c, err)
		return
	}

	response.Success(c, dto.DocumentResponse{
		ID:           doc.ID,
		Label:        doc.Label,
		Category:     doc.Category,
		FileURL:      doc.FileURL,
		OriginalName: doc.OriginalName,
		UploadedAt:   doc.UploadedAt,
	})
}

// DeleteDocument xóa một tài liệu khỏi danh mục hồ sơ
func (d DocumentController) DeleteDocument(c *gin.Context) {
	documentID, err := strconv.Atoi(c.Param("documentId"))
	if err != nil {
		response.BadRequest(c, "ID tài liệu không hợp lệ")
		return
	}

	employee, err := findEmployeeByRef(d.DB, c.Param("id"))
	if err != nil {
		response.NotFound(c)
		return
	}

	if err := d.Docs.DeleteDocument(c.Request.Context(), employee, uint(documentID)); err != nil {
		respondDocumentError(c, err)
		return
	}

	response.Success(c, gin.H{"deleted": documentID})
}
