// file: internals/features/school/imports/service/store.go
package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	aModel "schoolku_backend/internals/features/school/academics/model"
	fModel "schoolku_backend/internals/features/school/families/model"
	iModel "schoolku_backend/internals/features/school/imports/model"
	sModel "schoolku_backend/internals/features/school/students/model"
)

// DuplicateQuery = kriteria pencarian kandidat duplikat student.
// Nama selalu diisi; code & DOB opsional (memperluas hasil, bukan menyaring).
type DuplicateQuery struct {
	FirstName   string
	LastName    string
	StudentCode string
	DateOfBirth *time.Time
}

// ImportStore mengabstraksi semua akses DB pipeline import supaya
// importer bisa dites dengan fake in-memory.
type ImportStore interface {
	AllGrades(ctx context.Context) ([]aModel.GradeModel, error)
	AllClasses(ctx context.Context) ([]aModel.ClassModel, error)

	FindDuplicateStudents(ctx context.Context, q DuplicateQuery) ([]sModel.StudentModel, error)

	FamilyByID(ctx context.Context, id uuid.UUID) (*fModel.FamilyModel, error)
	FindFamilyByNameAddress(ctx context.Context, name, address string) (*fModel.FamilyModel, error)
	CreateFamily(ctx context.Context, m *fModel.FamilyModel) error

	StudentByID(ctx context.Context, id uuid.UUID) (*sModel.StudentModel, error)
	CreateStudent(ctx context.Context, m *sModel.StudentModel) error
	SaveStudent(ctx context.Context, m *sModel.StudentModel) error

	ParentsByFamily(ctx context.Context, familyID uuid.UUID) ([]fModel.ParentModel, error)
	CreateParent(ctx context.Context, m *fModel.ParentModel) error
	UpsertParentStudent(ctx context.Context, m *fModel.ParentStudentModel) error
	UpsertStudentClass(ctx context.Context, m *sModel.StudentClassModel) error

	RecordBatch(ctx context.Context, m *iModel.ImportBatchModel) error
	ListBatches(ctx context.Context, limit, offset int) ([]iModel.ImportBatchModel, int64, error)

	// Transaction menjalankan fn dengan store yang terikat ke tx.
	// Return error dari fn = rollback.
	Transaction(ctx context.Context, fn func(ImportStore) error) error
}

/* ===================== GORM IMPLEMENTATION ===================== */

type gormImportStore struct {
	db *gorm.DB
}

func NewImportStore(db *gorm.DB) ImportStore {
	return &gormImportStore{db: db}
}

func (s *gormImportStore) AllGrades(ctx context.Context) ([]aModel.GradeModel, error) {
	var out []aModel.GradeModel
	err := s.db.WithContext(ctx).
		Where("grade_is_active = TRUE").
		Order("grade_level ASC, grade_name ASC").
		Find(&out).Error
	return out, err
}

func (s *gormImportStore) AllClasses(ctx context.Context) ([]aModel.ClassModel, error) {
	var out []aModel.ClassModel
	err := s.db.WithContext(ctx).
		Where("class_is_active = TRUE").
		Order("class_name ASC").
		Find(&out).Error
	return out, err
}

func (s *gormImportStore) FindDuplicateStudents(ctx context.Context, q DuplicateQuery) ([]sModel.StudentModel, error) {
	tx := s.db.WithContext(ctx).Model(&sModel.StudentModel{})

	// Nama (AND, case-insensitive) selalu jadi satu cabang OR;
	// code & DOB masing-masing memperluas kandidat.
	cond := tx.Session(&gorm.Session{NewDB: true}).
		Where("LOWER(student_first_name) = LOWER(?) AND LOWER(student_last_name) = LOWER(?)", q.FirstName, q.LastName)
	if q.StudentCode != "" {
		cond = cond.Or("student_code = ?", q.StudentCode)
	}
	if q.DateOfBirth != nil {
		cond = cond.Or("student_date_of_birth = ?", q.DateOfBirth.Format("2006-01-02"))
	}

	var out []sModel.StudentModel
	err := tx.Where(cond).
		Order("student_created_at DESC").
		Limit(20).
		Find(&out).Error
	return out, err
}

func (s *gormImportStore) FamilyByID(ctx context.Context, id uuid.UUID) (*fModel.FamilyModel, error) {
	var m fModel.FamilyModel
	err := s.db.WithContext(ctx).First(&m, "family_id = ?", id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &m, nil
}

func (s *gormImportStore) FindFamilyByNameAddress(ctx context.Context, name, address string) (*fModel.FamilyModel, error) {
	var m fModel.FamilyModel
	tx := s.db.WithContext(ctx).Where("LOWER(family_name) = LOWER(?)", name)
	if address != "" {
		tx = tx.Where("LOWER(COALESCE(family_address, '')) = LOWER(?)", address)
	}
	err := tx.Order("family_created_at DESC").First(&m).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &m, nil
}

func (s *gormImportStore) CreateFamily(ctx context.Context, m *fModel.FamilyModel) error {
	return s.db.WithContext(ctx).Create(m).Error
}

func (s *gormImportStore) StudentByID(ctx context.Context, id uuid.UUID) (*sModel.StudentModel, error) {
	var m sModel.StudentModel
	err := s.db.WithContext(ctx).First(&m, "student_id = ?", id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &m, nil
}

func (s *gormImportStore) CreateStudent(ctx context.Context, m *sModel.StudentModel) error {
	return s.db.WithContext(ctx).Create(m).Error
}

func (s *gormImportStore) SaveStudent(ctx context.Context, m *sModel.StudentModel) error {
	return s.db.WithContext(ctx).Save(m).Error
}

func (s *gormImportStore) ParentsByFamily(ctx context.Context, familyID uuid.UUID) ([]fModel.ParentModel, error) {
	var out []fModel.ParentModel
	err := s.db.WithContext(ctx).
		Where("parent_family_id = ?", familyID).
		Order("parent_created_at ASC").
		Find(&out).Error
	return out, err
}

func (s *gormImportStore) CreateParent(ctx context.Context, m *fModel.ParentModel) error {
	return s.db.WithContext(ctx).Create(m).Error
}

func (s *gormImportStore) UpsertParentStudent(ctx context.Context, m *fModel.ParentStudentModel) error {
	// Pasangan (parent, student) unik; tabrakan = refresh relationship saja.
	return s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "parent_student_parent_id"},
			{Name: "parent_student_student_id"},
		},
		DoUpdates: clause.AssignmentColumns([]string{
			"parent_student_relationship",
			"parent_student_is_primary",
		}),
	}).Create(m).Error
}

func (s *gormImportStore) UpsertStudentClass(ctx context.Context, m *sModel.StudentClassModel) error {
	return s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "student_class_student_id"},
			{Name: "student_class_class_id"},
		},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"student_class_status": sModel.StudentClassStatusActive,
		}),
	}).Create(m).Error
}

func (s *gormImportStore) RecordBatch(ctx context.Context, m *iModel.ImportBatchModel) error {
	return s.db.WithContext(ctx).Create(m).Error
}

func (s *gormImportStore) ListBatches(ctx context.Context, limit, offset int) ([]iModel.ImportBatchModel, int64, error) {
	var total int64
	if err := s.db.WithContext(ctx).Model(&iModel.ImportBatchModel{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var out []iModel.ImportBatchModel
	err := s.db.WithContext(ctx).
		Order("import_batch_created_at DESC").
		Limit(limit).Offset(offset).
		Find(&out).Error
	return out, total, err
}

func (s *gormImportStore) Transaction(ctx context.Context, fn func(ImportStore) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&gormImportStore{db: tx})
	})
}
