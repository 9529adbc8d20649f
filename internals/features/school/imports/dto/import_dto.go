// file: internals/features/school/imports/dto/import_dto.go
package dto

import (
	fDTO "schoolku_backend/internals/features/school/families/dto"
	sDTO "schoolku_backend/internals/features/school/students/dto"
)

/* ===================== INPUT ===================== */

// ImportRow = satu baris spreadsheet yang sudah dipetakan ke key kanonik
// oleh step column-mapping di frontend. Semua field string apa adanya;
// normalisasi terjadi di pipeline, bukan di sini.
type ImportRow struct {
	StudentName string `json:"studentName"`
	ParentName  string `json:"parentName"`
	Address     string `json:"address"`
	HomePhone   string `json:"homePhone"`
	FatherCell  string `json:"fatherCell"`
	MotherCell  string `json:"motherCell"`
	Grade       string `json:"grade"`
	Class       string `json:"class"`
	FamilyID    string `json:"familyId"`
	StudentID   string `json:"studentId"`
	DateOfBirth string `json:"dateOfBirth"`
	Tuition     string `json:"tuition"`
	Paid        string `json:"paid"`
	Pledges     string `json:"pledges"`
}

// Aksi per-row saat ketemu duplicate
const (
	DuplicateActionCreate = "create"
	DuplicateActionMerge  = "merge"
	DuplicateActionUpdate = "update"
)

type ImportOptions struct {
	// Key utama: "row_<n>". Key "Lastname, Firstname" masih diterima
	// sebagai fallback legacy (tidak dijamin unik!).
	DuplicateActions map[string]string `json:"duplicate_actions"`

	// true → semua write satu row dibungkus satu transaksi
	// (row gagal = tidak ada jejak parsial). Default false mengikuti
	// perilaku lama (best-effort per statement).
	AtomicRows bool `json:"atomic_rows"`
}

type ValidateImportRequest struct {
	Rows []ImportRow `json:"rows" validate:"required,min=1,dive"`
}

type ImportBatchRequest struct {
	Rows    []ImportRow   `json:"rows" validate:"required,min=1,dive"`
	Options ImportOptions `json:"options"`
}

/* ===================== VALIDATION REPORT ===================== */

// Kode issue (taksonomi tetap, jangan tambah sembarangan)
const (
	IssueFormat         = "format"           // string nama tidak bisa diparse
	IssueMissingField   = "missing_field"    // field wajib kosong
	IssueLookupNotFound = "lookup_not_found" // grade/class tidak dikenal
	IssuePhoneFormat    = "phone_format"     // digit < 10
	IssueDuplicateFound = "duplicate_found"  // informasional, butuh keputusan user
	IssuePartialWrite   = "partial_write"    // write turunan gagal setelah student dibuat
	IssueAmountFormat   = "amount_format"    // tuition/paid/pledges bukan angka valid
)

type ValidationIssue struct {
	Field   string `json:"field"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

type RowValidation struct {
	RowIndex int               `json:"row_index"`
	Valid    bool              `json:"valid"`
	Errors   []ValidationIssue `json:"errors"`
	Warnings []ValidationIssue `json:"warnings"`
}

// Flat issue + posisi row (untuk list error/warning global)
type RowIssue struct {
	RowIndex int    `json:"row_index"`
	Field    string `json:"field"`
	Code     string `json:"code"`
	Message  string `json:"message"`
}

// Kandidat duplikat: Student terisi kalau kandidat berasal dari database,
// BatchRowIndex terisi kalau kandidat adalah row lain di batch yang sama.
type DuplicateCandidate struct {
	Student         *sDTO.StudentResponse `json:"student,omitempty"`
	BatchRowIndex   *int                  `json:"batch_row_index,omitempty"`
	SimilarityScore int                   `json:"similarity_score"`
}

type RowDuplicates struct {
	RowIndex   int                  `json:"row_index"`
	StudentKey string               `json:"student_key"` // "Lastname, Firstname"
	Candidates []DuplicateCandidate `json:"candidates"`
}

type ValidateBatchDetails struct {
	TotalRows     int             `json:"total_rows"`
	ValidRows     int             `json:"valid_rows"`
	InvalidRows   int             `json:"invalid_rows"`
	WarningRows   int             `json:"warning_rows"`
	DuplicateRows int             `json:"duplicate_rows"`
	Rows          []RowValidation `json:"rows"`
}

type ValidateBatchResponse struct {
	Valid      bool                 `json:"valid"`
	Errors     []RowIssue           `json:"errors"`
	Warnings   []RowIssue           `json:"warnings"`
	Duplicates []RowDuplicates      `json:"duplicates"`
	Details    ValidateBatchDetails `json:"details"`
}

/* ===================== IMPORT RESULT ===================== */

type RowImportResult struct {
	RowIndex      int                    `json:"row_index"`
	Success       bool                   `json:"success"`
	Student       *sDTO.StudentResponse  `json:"student,omitempty"`
	Family        *fDTO.FamilyResponse   `json:"family,omitempty"`
	Parents       []*fDTO.ParentResponse `json:"parents,omitempty"`
	ClassAssigned bool                   `json:"class_assigned"`
	Updated       bool                   `json:"updated"` // true = merge/update, false = create
	Errors        []ValidationIssue      `json:"errors"`
	Warnings      []ValidationIssue      `json:"warnings"`
}

type BatchSummary struct {
	Imported         int               `json:"imported"`
	ErrorCount       int               `json:"error_count"`
	FamiliesCreated  int               `json:"families_created"`
	ParentsCreated   int               `json:"parents_created"`
	StudentsCreated  int               `json:"students_created"`
	StudentsUpdated  int               `json:"students_updated"`
	ClassAssignments int               `json:"class_assignments"`
	Results          []RowImportResult `json:"results"`
}
