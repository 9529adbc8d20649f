package controller

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	aModel "schoolku_backend/internals/features/school/academics/model"
	fModel "schoolku_backend/internals/features/school/families/model"
	"schoolku_backend/internals/features/school/imports/dto"
	iModel "schoolku_backend/internals/features/school/imports/model"
	"schoolku_backend/internals/features/school/imports/service"
	sModel "schoolku_backend/internals/features/school/students/model"
)

// memStore = ImportStore minimal untuk uji perilaku endpoint;
// cukup mencatat write yang terjadi, tanpa meniru query.
type memStore struct {
	batches  []iModel.ImportBatchModel
	families int
	students int
	parents  int
}

func (s *memStore) AllGrades(ctx context.Context) ([]aModel.GradeModel, error)   { return nil, nil }
func (s *memStore) AllClasses(ctx context.Context) ([]aModel.ClassModel, error)  { return nil, nil }
func (s *memStore) FindDuplicateStudents(ctx context.Context, q service.DuplicateQuery) ([]sModel.StudentModel, error) {
	return nil, nil
}
func (s *memStore) FamilyByID(ctx context.Context, id uuid.UUID) (*fModel.FamilyModel, error) {
	return nil, nil
}
func (s *memStore) FindFamilyByNameAddress(ctx context.Context, name, address string) (*fModel.FamilyModel, error) {
	return nil, nil
}
func (s *memStore) CreateFamily(ctx context.Context, m *fModel.FamilyModel) error {
	m.FamilyID = uuid.New()
	s.families++
	return nil
}
func (s *memStore) StudentByID(ctx context.Context, id uuid.UUID) (*sModel.StudentModel, error) {
	return nil, nil
}
func (s *memStore) CreateStudent(ctx context.Context, m *sModel.StudentModel) error {
	m.StudentID = uuid.New()
	s.students++
	return nil
}
func (s *memStore) SaveStudent(ctx context.Context, m *sModel.StudentModel) error { return nil }
func (s *memStore) ParentsByFamily(ctx context.Context, familyID uuid.UUID) ([]fModel.ParentModel, error) {
	return nil, nil
}
func (s *memStore) CreateParent(ctx context.Context, m *fModel.ParentModel) error {
	m.ParentID = uuid.New()
	s.parents++
	return nil
}
func (s *memStore) UpsertParentStudent(ctx context.Context, m *fModel.ParentStudentModel) error {
	return nil
}
func (s *memStore) UpsertStudentClass(ctx context.Context, m *sModel.StudentClassModel) error {
	return nil
}
func (s *memStore) RecordBatch(ctx context.Context, m *iModel.ImportBatchModel) error {
	s.batches = append(s.batches, *m)
	return nil
}
func (s *memStore) ListBatches(ctx context.Context, limit, offset int) ([]iModel.ImportBatchModel, int64, error) {
	return s.batches, int64(len(s.batches)), nil
}
func (s *memStore) Transaction(ctx context.Context, fn func(service.ImportStore) error) error {
	return fn(s)
}

func newTestApp(store service.ImportStore) *fiber.App {
	app := fiber.New()
	ctrl := &ImportController{Service: service.NewImportService(store), Store: store}
	app.Post("/validate", ctrl.ValidateImport)
	app.Post("/commit", ctrl.CommitImport)
	return app
}

func postJSON(t *testing.T, app *fiber.App, path string, body interface{}) int {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(fiber.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp.StatusCode
}

func TestValidateImport_IsReadOnly(t *testing.T) {
	store := &memStore{}
	app := newTestApp(store)

	code := postJSON(t, app, "/validate", dto.ValidateImportRequest{Rows: []dto.ImportRow{
		{StudentName: "Cohen, Sarah", ParentName: "Cohen, Moshe"},
	}})
	require.Equal(t, fiber.StatusOK, code)

	// fase validasi tidak boleh menulis apa pun, audit trail termasuk
	assert.Empty(t, store.batches)
	assert.Zero(t, store.families)
	assert.Zero(t, store.students)
	assert.Zero(t, store.parents)
}

func TestCommitImport_RecordsAuditTrail(t *testing.T) {
	store := &memStore{}
	app := newTestApp(store)

	code := postJSON(t, app, "/commit", dto.ImportBatchRequest{Rows: []dto.ImportRow{
		{StudentName: "Cohen, Sarah", ParentName: "Cohen, Moshe"},
	}})
	require.Equal(t, fiber.StatusOK, code)

	require.Len(t, store.batches, 1)
	b := store.batches[0]
	assert.Equal(t, iModel.ImportBatchKindCommit, b.ImportBatchKind)
	assert.Equal(t, 1, b.ImportBatchRowCount)
	assert.Equal(t, 1, b.ImportBatchImported)
	assert.Equal(t, 0, b.ImportBatchErrors)
}
