// file: internals/features/school/imports/model/import_batch_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Fase validate murni read-only, jadi satu-satunya kind yang pernah
// ditulis ke audit trail adalah commit.
const ImportBatchKindCommit = "commit"

// ImportBatchModel = jejak audit per batch commit.
// Summary disimpan mentah sebagai JSON supaya riwayat tetap terbaca
// walau shape response berubah di versi berikutnya.
type ImportBatchModel struct {
	ImportBatchID        uuid.UUID      `json:"import_batch_id" gorm:"column:import_batch_id;type:uuid;default:gen_random_uuid();primaryKey"`
	ImportBatchKind      string         `json:"import_batch_kind" gorm:"column:import_batch_kind;type:varchar(20);not null"`
	ImportBatchRowCount  int            `json:"import_batch_row_count" gorm:"column:import_batch_row_count;not null;default:0"`
	ImportBatchImported  int            `json:"import_batch_imported" gorm:"column:import_batch_imported;not null;default:0"`
	ImportBatchErrors    int            `json:"import_batch_errors" gorm:"column:import_batch_errors;not null;default:0"`
	ImportBatchSummary   datatypes.JSON `json:"import_batch_summary" gorm:"column:import_batch_summary;type:jsonb"`
	ImportBatchCreatedBy *uuid.UUID     `json:"import_batch_created_by" gorm:"column:import_batch_created_by;type:uuid"`

	ImportBatchCreatedAt time.Time      `json:"import_batch_created_at" gorm:"column:import_batch_created_at;autoCreateTime;index:idx_import_batches_created_at,sort:desc"`
	ImportBatchDeletedAt gorm.DeletedAt `json:"import_batch_deleted_at,omitempty" gorm:"column:import_batch_deleted_at;index"`
}

func (ImportBatchModel) TableName() string {
	return "import_batches"
}
