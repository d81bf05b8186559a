package services

import (
	"context"
	"fmt"
	"io"
	"strings"
	"testing"

	"humana/constants"
	"humana/models"
	"humana/services/logger"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// stubStorage ghi lại mọi lần upload và delete để test kiểm tra lifecycle
type stubStorage struct {
	uploads   int
	deleted   []string
	deleteErr error
}

func (s *stubStorage) UploadBuffer(ctx context.Context, file io.Reader, folder, publicID string) (*UploadedAsset, error) {
	s.uploads++
	return &UploadedAsset{
		URL:      fmt.Sprintf("https://cdn.test/%s/%s", folder, publicID),
		PublicID: publicID,
	}, nil
}

func (s *stubStorage) DeleteAsset(ctx context.Context, publicID string) error {
	s.deleted = append(s.deleted, publicID)
	return s.deleteErr
}

func setupDocTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("Không mở được database test: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.Department{}, &models.Employee{}, &models.EmployeeDocument{}); err != nil {
		t.Fatalf("Không migrate được schema test: %v", err)
	}
	return db
}

func seedDocEmployee(t *testing.T, db *gorm.DB) *models.Employee {
	t.Helper()

	user := models.User{Name: "Nhân viên test", Email: "emp001@humana.test"}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("Không tạo được user test: %v", err)
	}
	employee := models.Employee{
		UserID:       user.ID,
		EmployeeCode: "EMP001",
		BasicSalary:  10000,
		Status:       constants.EmployeeStatusActive,
	}
	if err := db.Create(&employee).Error; err != nil {
		t.Fatalf("Không tạo được employee test: %v", err)
	}
	return &employee
}

func newDocService(db *gorm.DB, storage AssetStorage) *DocumentService {
	return NewDocumentService(DocumentServiceOptions{
		DB:      db,
		Storage: storage,
		Logger:  logger.NewDefaultLogger(logger.ErrorLevel),
	})
}

func TestReplaceExpedienteChiConMotMuc(t *testing.T) {
	db := setupDocTestDB(t)
	employee := seedDocEmployee(t, db)
	storage := &stubStorage{}
	service := newDocService(db, storage)

	first, err := service.ReplaceExpediente(context.Background(), employee, strings.NewReader("pdf-1"), "expediente-v1.pdf")
	if err != nil {
		t.Fatalf("ReplaceExpediente lần một lỗi: %v", err)
	}

	second, err := service.ReplaceExpediente(context.Background(), employee, strings.NewReader("pdf-2"), "expediente-v2.pdf")
	if err != nil {
		t.Fatalf("ReplaceExpediente lần hai lỗi: %v", err)
	}

	var docs []models.EmployeeDocument
	if err := db.Where("employee_id = ? AND category = ?", employee.ID, constants.DocumentCategoryExpediente).
		Find(&docs).Error; err != nil {
		t.Fatalf("Không đọc được danh mục: %v", err)
	}
	if len(docs) != 1 {
		t.Fatalf("Số mục expediente = %d, muốn 1", len(docs))
	}
	if docs[0].PublicID != second.PublicID {
		t.Errorf("PublicID = %q, muốn asset mới %q", docs[0].PublicID, second.PublicID)
	}

	// Asset cũ phải được thử xóa
	found := false
	for _, deleted := range storage.deleted {
		if deleted == first.PublicID {
			found = true
		}
	}
	if !found {
		t.Errorf("Asset cũ %q chưa được thử xóa, deleted = %v", first.PublicID, storage.deleted)
	}

	var stored models.Employee
	if err := db.First(&stored, employee.ID).Error; err != nil {
		t.Fatalf("Không đọc lại được employee: %v", err)
	}
	if stored.ExpedientePublicID != second.PublicID {
		t.Errorf("ExpedientePublicID = %q, muốn %q", stored.ExpedientePublicID, second.PublicID)
	}
	if stored.ExpedienteOriginalName != "expediente-v2.pdf" {
		t.Errorf("ExpedienteOriginalName = %q, muốn expediente-v2.pdf", stored.ExpedienteOriginalName)
	}
}

func TestReplaceExpedienteXoaAssetLoiVanTiepTuc(t *testing.T) {
	db := setupDocTestDB(t)
	employee := seedDocEmployee(t, db)
	storage := &stubStorage{deleteErr: fmt.Errorf("storage không phản hồi")}
	service := newDocService(db, storage)

	if _, err := service.ReplaceExpediente(context.Background(), employee, strings.NewReader("pdf-1"), "v1.pdf"); err != nil {
		t.Fatalf("ReplaceExpediente lần một lỗi: %v", err)
	}

	// Xóa asset cũ thất bại không được chặn việc thay expediente
	doc, err := service.ReplaceExpediente(context.Background(), employee, strings.NewReader("pdf-2"), "v2.pdf")
	if err != nil {
		t.Fatalf("ReplaceExpediente lần hai lỗi: %v", err)
	}

	var count int64
	db.Model(&models.EmployeeDocument{}).
		Where("employee_id = ? AND category = ?", employee.ID, constants.DocumentCategoryExpediente).
		Count(&count)
	if count != 1 {
		t.Errorf("Số mục expediente = %d, muốn 1", count)
	}
	if doc.OriginalName != "v2.pdf" {
		t.Errorf("OriginalName = %q, muốn v2.pdf", doc.OriginalName)
	}
}

func TestAddDocumentChoPhepTrungLabel(t *testing.T) {
	db := setupDocTestDB(t)
	employee := seedDocEmployee(t, db)
	storage := &stubStorage{}
	service := newDocService(db, storage)

	for i := 0; i < 2; i++ {
		_, err := service.AddDocument(context.Background(), employee, "Contrato", "", strings.NewReader("pdf"), "contrato.pdf")
		if err != nil {
			t.Fatalf("AddDocument lỗi: %v", err)
		}
	}

	var docs []models.EmployeeDocument
	if err := db.Where("employee_id = ?", employee.ID).Find(&docs).Error; err != nil {
		t.Fatalf("Không đọc được danh mục: %v", err)
	}
	if len(docs) != 2 {
		t.Fatalf("Số tài liệu = %d, muốn 2", len(docs))
	}
	for _, doc := range docs {
		if doc.Category != constants.DocumentCategoryGeneral {
			t.Errorf("Category = %q, muốn %q", doc.Category, constants.DocumentCategoryGeneral)
		}
	}
}

func TestDeleteDocumentXoaMucVaThuXoaAsset(t *testing.T) {
	db := setupDocTestDB(t)
	employee := seedDocEmployee(t, db)
	storage := &stubStorage{}
	service := newDocService(db, storage)

	doc, err := service.AddDocument(context.Background(), employee, "Contrato", "", strings.NewReader("pdf"), "contrato.pdf")
	if err != nil {
		t.Fatalf("AddDocument lỗi: %v", err)
	}

	if err := service.DeleteDocument(context.Background(), employee, doc.ID); err != nil {
		t.Fatalf("DeleteDocument lỗi: %v", err)
	}

	var count int64
	db.Model(&models.EmployeeDocument{}).Where("employee_id = ?", employee.ID).Count(&count)
	if count != 0 {
		t.Errorf("Số tài liệu = %d, muốn 0", count)
	}

	found := false
	for _, deleted := range storage.deleted {
		if deleted == doc.PublicID {
			found = true
		}
	}
	if !found {
		t.Errorf("Asset %q chưa được thử xóa", doc.PublicID)
	}
}

func TestDeleteDocumentKhongTonTai(t *testing.T) {
	db := setupDocTestDB(t)
	employee := seedDocEmployee(t, db)
	service := newDocService(db, &stubStorage{})

	if err := service.DeleteDocument(context.Background(), employee, 9999); err == nil {
		t.Fatal("Muốn lỗi khi xóa tài liệu không tồn tại")
	}
}

func TestDeleteDocumentLaExpedienteHienHanh(t *testing.T) {
	db := setupDocTestDB(t)
	employee := seedDocEmployee(t, db)
	storage := &stubStorage{}
	service := newDocService(db, storage)

	doc, err := service.ReplaceExpediente(context.Background(), employee, strings.NewReader("pdf"), "expediente.pdf")
	if err != nil {
		t.Fatalf("ReplaceExpediente lỗi: %v", err)
	}

	if err := service.DeleteDocument(context.Background(), employee, doc.ID); err != nil {
		t.Fatalf("DeleteDocument lỗi: %v", err)
	}

	var stored models.Employee
	if err := db.First(&stored, employee.ID).Error; err != nil {
		t.Fatalf("Không đọc lại được employee: %v", err)
	}
	if stored.ExpedientePublicID != "" || stored.ExpedienteFile != "" {
		t.Errorf("Cột expediente chưa được dọn: file=%q publicID=%q", stored.ExpedienteFile, stored.ExpedientePublicID)
	}
}
