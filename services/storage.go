package services

import (
	"context"
	"fmt"
	"io"
	"time"

	"humana/errors"
	"humana/services/logger"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// Thư mục lưu trữ trên Cloudinary
const (
	FolderProfiles   = "humana/empleados/perfiles"
	FolderExpediente = "humana/empleados/expedientes"
	FolderDocuments  = "humana/empleados/documentos"
)

// UploadedAsset là kết quả của một lần upload thành công.
type UploadedAsset struct {
	URL      string
	PublicID string
}

// AssetStorage trừu tượng hóa kho lưu trữ file bên ngoài để service và test
// không phụ thuộc trực tiếp vào Cloudinary.
type AssetStorage interface {
	UploadBuffer(ctx context.Context, file io.Reader, folder, publicID string) (*UploadedAsset, error)
	// DeleteAsset xóa best-effort: lỗi được trả về để ghi log chứ không chặn nghiệp vụ.
	DeleteAsset(ctx context.Context, publicID string) error
}

// CloudinaryStorage implement AssetStorage bằng Cloudinary
type CloudinaryStorage struct {
	Client *cloudinary.Cloudinary
}

func NewCloudinaryStorage(client *cloudinary.Cloudinary) *CloudinaryStorage {
	return &CloudinaryStorage{Client: client}
}

func (s *CloudinaryStorage) UploadBuffer(ctx context.Context, file io.Reader, folder, publicID string) (*UploadedAsset, error) {
	resp, err := s.Client.Upload.Upload(ctx, file, uploader.UploadParams{
		Folder:       folder,
		PublicID:     publicID,
		ResourceType: "auto",
	})
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeStorageUpload, "Upload thất bại", err)
	}

	return &UploadedAsset{
		URL:      resp.SecureURL,
		PublicID: resp.PublicID,
	}, nil
}

func (s *CloudinaryStorage) DeleteAsset(ctx context.Context, publicID string) error {
	if publicID == "" {
		return nil
	}

	// Thử xóa theo resource_type raw trước, không được thì thử image
	_, err := s.Client.Upload.Destroy(ctx, uploader.DestroyParams{
		PublicID:     publicID,
		ResourceType: "raw",
	})
	if err == nil {
		return nil
	}

	_, err = s.Client.Upload.Destroy(ctx, uploader.DestroyParams{
		PublicID:     publicID,
		ResourceType: "image",
	})
	if err != nil {
		return errors.NewAppError(errors.ErrCodeStorageDelete, "Không thể xóa asset "+publicID, err)
	}
	return nil
}

// AssetPublicID sinh public id theo mã nhân viên và timestamp
func AssetPublicID(employeeCode string) string {
	return fmt.Sprintf("%s-%d", employeeCode, time.Now().UnixMilli())
}

// CleanupAsset xóa asset best-effort và ghi cảnh báo khi thất bại để asset
// mồ côi còn truy vết được.
func CleanupAsset(ctx context.Context, storage AssetStorage, log logger.Logger, publicID string) {
	if publicID == "" {
		return
	}
	if err := storage.DeleteAsset(ctx, publicID); err != nil {
		log.Warn("Không xóa được asset %s, có thể bị mồ côi: %v", publicID, err)
	}
}
