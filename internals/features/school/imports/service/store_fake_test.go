package service

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	aModel "schoolku_backend/internals/features/school/academics/model"
	fModel "schoolku_backend/internals/features/school/families/model"
	iModel "schoolku_backend/internals/features/school/imports/model"
	sModel "schoolku_backend/internals/features/school/students/model"
)

// fakeStore = ImportStore in-memory untuk unit test pipeline,
// meniru semantik upsert & pencarian ci milik implementasi GORM.
type fakeStore struct {
	grades  []aModel.GradeModel
	classes []aModel.ClassModel

	families       map[uuid.UUID]*fModel.FamilyModel
	students       map[uuid.UUID]*sModel.StudentModel
	parents        map[uuid.UUID]*fModel.ParentModel
	parentStudents map[[2]uuid.UUID]*fModel.ParentStudentModel
	studentClasses map[[2]uuid.UUID]*sModel.StudentClassModel
	batches        []iModel.ImportBatchModel

	// hook untuk menyuntik kegagalan write di tengah proses satu row
	createStudentErr func(m *sModel.StudentModel) error

	seq int
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		families:       map[uuid.UUID]*fModel.FamilyModel{},
		students:       map[uuid.UUID]*sModel.StudentModel{},
		parents:        map[uuid.UUID]*fModel.ParentModel{},
		parentStudents: map[[2]uuid.UUID]*fModel.ParentStudentModel{},
		studentClasses: map[[2]uuid.UUID]*sModel.StudentClassModel{},
	}
}

func (f *fakeStore) addGrade(name string, aliases ...string) aModel.GradeModel {
	g := aModel.GradeModel{
		GradeID:       uuid.New(),
		GradeName:     name,
		GradeAliases:  pq.StringArray(aliases),
		GradeIsActive: true,
	}
	f.grades = append(f.grades, g)
	return g
}

func (f *fakeStore) addClass(name string, gradeID uuid.UUID) aModel.ClassModel {
	c := aModel.ClassModel{
		ClassID:       uuid.New(),
		ClassGradeID:  gradeID,
		ClassName:     name,
		ClassIsActive: true,
	}
	f.classes = append(f.classes, c)
	return c
}

func (f *fakeStore) AllGrades(ctx context.Context) ([]aModel.GradeModel, error) {
	return f.grades, nil
}

func (f *fakeStore) AllClasses(ctx context.Context) ([]aModel.ClassModel, error) {
	return f.classes, nil
}

func (f *fakeStore) FindDuplicateStudents(ctx context.Context, q DuplicateQuery) ([]sModel.StudentModel, error) {
	var out []sModel.StudentModel
	for _, m := range f.students {
		nameHit := strings.EqualFold(m.StudentFirstName, q.FirstName) &&
			strings.EqualFold(m.StudentLastName, q.LastName)
		codeHit := q.StudentCode != "" && m.StudentCode != nil && *m.StudentCode == q.StudentCode
		dobHit := q.DateOfBirth != nil && m.StudentDateOfBirth != nil &&
			m.StudentDateOfBirth.Equal(*q.DateOfBirth)
		if nameHit || codeHit || dobHit {
			out = append(out, *m)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].StudentCreatedAt.After(out[j].StudentCreatedAt)
	})
	return out, nil
}

func (f *fakeStore) FamilyByID(ctx context.Context, id uuid.UUID) (*fModel.FamilyModel, error) {
	if m, ok := f.families[id]; ok {
		cp := *m
		return &cp, nil
	}
	return nil, nil
}

func (f *fakeStore) FindFamilyByNameAddress(ctx context.Context, name, address string) (*fModel.FamilyModel, error) {
	for _, m := range f.families {
		if !strings.EqualFold(m.FamilyName, name) {
			continue
		}
		if address != "" {
			got := ""
			if m.FamilyAddress != nil {
				got = *m.FamilyAddress
			}
			if !strings.EqualFold(got, address) {
				continue
			}
		}
		cp := *m
		return &cp, nil
	}
	return nil, nil
}

func (f *fakeStore) CreateFamily(ctx context.Context, m *fModel.FamilyModel) error {
	m.FamilyID = uuid.New()
	cp := *m
	f.families[m.FamilyID] = &cp
	return nil
}

func (f *fakeStore) StudentByID(ctx context.Context, id uuid.UUID) (*sModel.StudentModel, error) {
	if m, ok := f.students[id]; ok {
		cp := *m
		return &cp, nil
	}
	return nil, nil
}

func (f *fakeStore) CreateStudent(ctx context.Context, m *sModel.StudentModel) error {
	if f.createStudentErr != nil {
		if err := f.createStudentErr(m); err != nil {
			return err
		}
	}
	m.StudentID = uuid.New()
	f.seq++
	m.StudentCreatedAt = time.Now().Add(time.Duration(f.seq) * time.Second)
	cp := *m
	f.students[m.StudentID] = &cp
	return nil
}

func (f *fakeStore) SaveStudent(ctx context.Context, m *sModel.StudentModel) error {
	cp := *m
	f.students[m.StudentID] = &cp
	return nil
}

func (f *fakeStore) ParentsByFamily(ctx context.Context, familyID uuid.UUID) ([]fModel.ParentModel, error) {
	var out []fModel.ParentModel
	for _, m := range f.parents {
		if m.ParentFamilyID == familyID {
			out = append(out, *m)
		}
	}
	return out, nil
}

func (f *fakeStore) CreateParent(ctx context.Context, m *fModel.ParentModel) error {
	m.ParentID = uuid.New()
	cp := *m
	f.parents[m.ParentID] = &cp
	return nil
}

func (f *fakeStore) UpsertParentStudent(ctx context.Context, m *fModel.ParentStudentModel) error {
	key := [2]uuid.UUID{m.ParentStudentParentID, m.ParentStudentStudentID}
	if old, ok := f.parentStudents[key]; ok {
		old.ParentStudentRelationship = m.ParentStudentRelationship
		old.ParentStudentIsPrimary = m.ParentStudentIsPrimary
		return nil
	}
	m.ParentStudentID = uuid.New()
	cp := *m
	f.parentStudents[key] = &cp
	return nil
}

func (f *fakeStore) UpsertStudentClass(ctx context.Context, m *sModel.StudentClassModel) error {
	key := [2]uuid.UUID{m.StudentClassStudentID, m.StudentClassClassID}
	if old, ok := f.studentClasses[key]; ok {
		old.StudentClassStatus = sModel.StudentClassStatusActive
		return nil
	}
	m.StudentClassID = uuid.New()
	cp := *m
	f.studentClasses[key] = &cp
	return nil
}

func (f *fakeStore) RecordBatch(ctx context.Context, m *iModel.ImportBatchModel) error {
	m.ImportBatchID = uuid.New()
	f.batches = append(f.batches, *m)
	return nil
}

func (f *fakeStore) ListBatches(ctx context.Context, limit, offset int) ([]iModel.ImportBatchModel, int64, error) {
	return f.batches, int64(len(f.batches)), nil
}

// fakeSnapshot menyimpan isi store sebelum transaksi untuk dipulihkan
// kalau fn mengembalikan error (meniru rollback GORM).
type fakeSnapshot struct {
	families       map[uuid.UUID]*fModel.FamilyModel
	students       map[uuid.UUID]*sModel.StudentModel
	parents        map[uuid.UUID]*fModel.ParentModel
	parentStudents map[[2]uuid.UUID]*fModel.ParentStudentModel
	studentClasses map[[2]uuid.UUID]*sModel.StudentClassModel
	batches        []iModel.ImportBatchModel
	seq            int
}

func (f *fakeStore) snapshot() fakeSnapshot {
	s := fakeSnapshot{
		families:       map[uuid.UUID]*fModel.FamilyModel{},
		students:       map[uuid.UUID]*sModel.StudentModel{},
		parents:        map[uuid.UUID]*fModel.ParentModel{},
		parentStudents: map[[2]uuid.UUID]*fModel.ParentStudentModel{},
		studentClasses: map[[2]uuid.UUID]*sModel.StudentClassModel{},
		batches:        append([]iModel.ImportBatchModel(nil), f.batches...),
		seq:            f.seq,
	}
	for k, v := range f.families {
		cp := *v
		s.families[k] = &cp
	}
	for k, v := range f.students {
		cp := *v
		s.students[k] = &cp
	}
	for k, v := range f.parents {
		cp := *v
		s.parents[k] = &cp
	}
	for k, v := range f.parentStudents {
		cp := *v
		s.parentStudents[k] = &cp
	}
	for k, v := range f.studentClasses {
		cp := *v
		s.studentClasses[k] = &cp
	}
	return s
}

func (f *fakeStore) restore(s fakeSnapshot) {
	f.families = s.families
	f.students = s.students
	f.parents = s.parents
	f.parentStudents = s.parentStudents
	f.studentClasses = s.studentClasses
	f.batches = s.batches
	f.seq = s.seq
}

func (f *fakeStore) Transaction(ctx context.Context, fn func(ImportStore) error) error {
	snap := f.snapshot()
	if err := fn(f); err != nil {
		f.restore(snap)
		return err
	}
	return nil
}
