package services

import (
	"context"
	"io"
	"time"

	"humana/constants"
	"humana/errors"
	"humana/models"
	"humana/services/logger"

	"gorm.io/gorm"
)

// DocumentService quản lý danh mục hồ sơ của nhân viên: upload, thay thế
// expediente và xóa tài liệu, giữ bảng employee_documents là nguồn sự thật.
type DocumentService struct {
	DB      *gorm.DB
	Storage AssetStorage
	Logger  logger.Logger
}

type DocumentServiceOptions struct {
	DB      *gorm.DB
	Storage AssetStorage
	Logger  logger.Logger
}

func NewDocumentService(opts DocumentServiceOptions) *DocumentService {
	return &DocumentService{
		DB:      opts.DB,
		Storage: opts.Storage,
		Logger:  opts.Logger,
	}
}

// ReplaceExpediente thay hồ sơ tổng của nhân viên: asset cũ bị xóa best-effort
// trước, sau đó danh mục chỉ còn đúng một mục category "expediente" trỏ tới
// asset mới.
func (s *DocumentService) ReplaceExpediente(ctx context.Context, employee *models.Employee, file io.Reader, originalName string) (*models.EmployeeDocument, error) {
	// Xóa asset expediente cũ nếu có, lỗi chỉ ghi cảnh báo
	CleanupAsset(ctx, s.Storage, s.Logger, employee.ExpedientePublicID)

	var oldDocs []models.EmployeeDocument
	if err := s.DB.Where("employee_id = ? AND category = ?", employee.ID, constants.DocumentCategoryExpediente).
		Find(&oldDocs).Error; err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Không đọc được danh mục hồ sơ", err)
	}
	for _, doc := range oldDocs {
		if doc.PublicID != employee.ExpedientePublicID {
			CleanupAsset(ctx, s.Storage, s.Logger, doc.PublicID)
		}
	}

	asset, err := s.Storage.UploadBuffer(ctx, file, FolderExpediente, AssetPublicID(employee.EmployeeCode))
	if err != nil {
		return nil, err
	}

	now := time.Now()
	newDoc := models.EmployeeDocument{
		EmployeeID:   employee.ID,
		Label:        "Expediente general",
		Category:     constants.DocumentCategoryExpediente,
		FileURL:      asset.URL,
		OriginalName: originalName,
		PublicID:     asset.PublicID,
		UploadedAt:   now,
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("employee_id = ? AND category = ?", employee.ID, constants.DocumentCategoryExpediente).
			Delete(&models.EmployeeDocument{}).Error; err != nil {
			return err
		}
		if err := tx.Create(&newDoc).Error; err != nil {
			return err
		}
		return tx.Model(&models.Employee{}).Where("id = ?", employee.ID).Updates(map[string]interface{}{
			"expediente_file":          asset.URL,
			"expediente_public_id":     asset.PublicID,
			"expediente_original_name": originalName,
			"expediente_uploaded_at":   now,
		}).Error
	})
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Không lưu được expediente", err)
	}

	employee.ExpedienteFile = asset.URL
	employee.ExpedientePublicID = asset.PublicID
	employee.ExpedienteOriginalName = originalName
	employee.ExpedienteUploadedAt = &now

	return &newDoc, nil
}

// AddDocument thêm một tài liệu mới vào danh mục, cho phép trùng label.
func (s *DocumentService) AddDocument(ctx context.Context, employee *models.Employee, label, category string, file io.Reader, originalName string) (*models.EmployeeDocument, error) {
	if category == "" {
		category = constants.DocumentCategoryGeneral
	}

	asset, err := s.Storage.UploadBuffer(ctx, file, FolderDocuments, AssetPublicID(employee.EmployeeCode))
	if err != nil {
		return nil, err
	}

	doc := models.EmployeeDocument{
		EmployeeID:   employee.ID,
		Label:        label,
		Category:     category,
		FileURL:      asset.URL,
		OriginalName: originalName,
		PublicID:     asset.PublicID,
		UploadedAt:   time.Now(),
	}

	if err := s.DB.Create(&doc).Error; err != nil {
		// Bản ghi không lưu được thì dọn asset vừa upload
		CleanupAsset(ctx, s.Storage, s.Logger, asset.PublicID)
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Không lưu được tài liệu", err)
	}

	return &doc, nil
}

// DeleteDocument xóa một mục khỏi danh mục, asset bên ngoài xóa best-effort.
func (s *DocumentService) DeleteDocument(ctx context.Context, employee *models.Employee, documentID uint) error {
	var doc models.EmployeeDocument
	if err := s.DB.Where("id = ? AND employee_id = ?", documentID, employee.ID).First(&doc).Error; err != nil {
		return errors.NewAppError(errors.ErrCodeDocumentNotFound, "Không tìm thấy tài liệu", err)
	}

	CleanupAsset(ctx, s.Storage, s.Logger, doc.PublicID)

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&doc).Error; err != nil {
			return err
		}
		if doc.Category == constants.DocumentCategoryExpediente && doc.PublicID == employee.ExpedientePublicID {
			return tx.Model(&models.Employee{}).Where("id = ?", employee.ID).Updates(map[string]interface{}{
				"expediente_file":          "",
				"expediente_public_id":     "",
				"expediente_original_name": "",
				"expediente_uploaded_at":   nil,
			}).Error
		}
		return nil
	})
	if err != nil {
		return errors.NewAppError(errors.ErrCodeDBError, "Không xóa được tài liệu", err)
	}

	return nil
}
