// file: internals/features/school/imports/controller/import_controller.go
package controller

import (
	"encoding/json"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"

	"schoolku_backend/internals/features/school/imports/dto"
	iModel "schoolku_backend/internals/features/school/imports/model"
	"schoolku_backend/internals/features/school/imports/service"
	helper "schoolku_backend/internals/helpers"
)

var validate = validator.New()

type ImportController struct {
	DB      *gorm.DB
	Service *service.ImportService
	Store   service.ImportStore
}

func NewImportController(db *gorm.DB) *ImportController {
	store := service.NewImportStore(db)
	return &ImportController{
		DB:      db,
		Service: service.NewImportService(store),
		Store:   store,
	}
}

/* ===================== FASE 1: VALIDATE (read-only) ===================== */

// POST /api/a/imports/validate
func (ctrl *ImportController) ValidateImport(c *fiber.Ctx) error {
	var req dto.ValidateImportRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	resp, err := ctrl.Service.ValidateBatch(c.Context(), req.Rows)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	// fase validasi murni read-only, audit trail hanya dicatat saat commit
	return helper.Success(c, "Validasi batch selesai", resp)
}

/* ===================== FASE 2: COMMIT ===================== */

// POST /api/a/imports/commit
func (ctrl *ImportController) CommitImport(c *fiber.Ctx) error {
	var req dto.ImportBatchRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	summary, err := ctrl.Service.ImportBatch(c.Context(), req.Rows, req.Options)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	ctrl.recordBatch(c, iModel.ImportBatchKindCommit, len(req.Rows), summary.Imported, summary.ErrorCount, summary)
	return helper.Success(c, "Import batch selesai", summary)
}

/* ===================== UPLOAD XLSX ===================== */

// header kanonik yang dikenali di baris pertama sheet (ci)
var canonicalHeaders = map[string]bool{
	"studentname": true, "parentname": true, "address": true,
	"homephone": true, "fathercell": true, "mothercell": true,
	"grade": true, "class": true, "familyid": true, "studentid": true,
	"dateofbirth": true, "tuition": true, "paid": true, "pledges": true,
}

// POST /api/a/imports/upload — terima file .xlsx, hasilkan rows kanonik
// lalu langsung jalankan fase validasi. Mapping kolom bebas tetap urusan
// frontend; endpoint ini hanya menerima sheet yang headernya sudah kanonik.
func (ctrl *ImportController) UploadXlsx(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "File xlsx wajib diupload di field 'file'")
	}
	src, err := fileHeader.Open()
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "File tidak bisa dibuka")
	}
	defer src.Close()

	book, err := excelize.OpenReader(src)
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "File bukan workbook xlsx yang valid")
	}
	defer book.Close()

	sheet := book.GetSheetName(0)
	if sheet == "" {
		return helper.Error(c, fiber.StatusBadRequest, "Workbook tidak punya sheet")
	}
	cells, err := book.GetRows(sheet)
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Sheet tidak bisa dibaca")
	}
	if len(cells) < 2 {
		return helper.Error(c, fiber.StatusBadRequest, "Sheet kosong, minimal satu baris data di bawah header")
	}

	// baris pertama = header; kolom yang tidak dikenal diabaikan
	colKey := make(map[int]string, len(cells[0]))
	for i, h := range cells[0] {
		k := strings.ToLower(helper.CollapseSpaces(h))
		k = strings.ReplaceAll(k, " ", "")
		k = strings.ReplaceAll(k, "_", "")
		if canonicalHeaders[k] {
			colKey[i] = k
		}
	}
	if len(colKey) == 0 {
		return helper.Error(c, fiber.StatusBadRequest, "Tidak ada header kanonik yang dikenali di baris pertama")
	}

	rows := make([]dto.ImportRow, 0, len(cells)-1)
	for _, line := range cells[1:] {
		var row dto.ImportRow
		empty := true
		for i, val := range line {
			key, ok := colKey[i]
			if !ok {
				continue
			}
			if helper.CollapseSpaces(val) != "" {
				empty = false
			}
			assignCanonical(&row, key, val)
		}
		if !empty {
			rows = append(rows, row)
		}
	}
	if len(rows) == 0 {
		return helper.Error(c, fiber.StatusBadRequest, "Tidak ada baris data terisi di sheet")
	}

	resp, err := ctrl.Service.ValidateBatch(c.Context(), rows)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.Success(c, "File diproses, hasil validasi siap direview", fiber.Map{
		"rows":       rows,
		"validation": resp,
	})
}

func assignCanonical(row *dto.ImportRow, key, val string) {
	switch key {
	case "studentname":
		row.StudentName = val
	case "parentname":
		row.ParentName = val
	case "address":
		row.Address = val
	case "homephone":
		row.HomePhone = val
	case "fathercell":
		row.FatherCell = val
	case "mothercell":
		row.MotherCell = val
	case "grade":
		row.Grade = val
	case "class":
		row.Class = val
	case "familyid":
		row.FamilyID = val
	case "studentid":
		row.StudentID = val
	case "dateofbirth":
		row.DateOfBirth = val
	case "tuition":
		row.Tuition = val
	case "paid":
		row.Paid = val
	case "pledges":
		row.Pledges = val
	}
}

/* ===================== RIWAYAT BATCH ===================== */

// GET /api/a/imports/history
func (ctrl *ImportController) ListBatches(c *fiber.Ctx) error {
	params := helper.ParseFiber(c, "created_at", "desc", helper.AdminOpts)
	batches, total, err := ctrl.Store.ListBatches(c.Context(), params.Limit(), params.Offset())
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil riwayat import")
	}
	return helper.Success(c, "Riwayat import", fiber.Map{
		"data": batches,
		"meta": helper.BuildMeta(total, params),
	})
}

// audit trail; gagal nyatat tidak boleh mengganggu response utama
func (ctrl *ImportController) recordBatch(c *fiber.Ctx, kind string, rowCount, imported, errors int, payload interface{}) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return
	}
	m := &iModel.ImportBatchModel{
		ImportBatchKind:     kind,
		ImportBatchRowCount: rowCount,
		ImportBatchImported: imported,
		ImportBatchErrors:   errors,
		ImportBatchSummary:  raw,
	}
	if uid, ok := c.Locals("user_id").(string); ok {
		if parsed, err := uuid.Parse(uid); err == nil {
			m.ImportBatchCreatedBy = &parsed
		}
	}
	_ = ctrl.Store.RecordBatch(c.Context(), m)
}
