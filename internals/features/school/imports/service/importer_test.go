package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	fModel "schoolku_backend/internals/features/school/families/model"
	"schoolku_backend/internals/features/school/imports/dto"
	sModel "schoolku_backend/internals/features/school/students/model"
)

func TestImportBatch_EndToEndCohenScenario(t *testing.T) {
	f := newFakeStore()
	g := f.addGrade("1st Grade")
	cls := f.addClass("1A", g.GradeID)

	svc := NewImportService(f)
	summary, err := svc.ImportBatch(context.Background(), []dto.ImportRow{{
		StudentName: "Cohen, Sarah",
		ParentName:  "Cohen, Moshe and Rivka",
		Address:     "123 Main St",
		Grade:       "1st Grade",
		Class:       "1A",
	}}, dto.ImportOptions{})
	require.NoError(t, err)

	assert.Equal(t, 1, summary.Imported)
	assert.Equal(t, 0, summary.ErrorCount)
	assert.Equal(t, 1, summary.FamiliesCreated)
	assert.Equal(t, 2, summary.ParentsCreated)
	assert.Equal(t, 1, summary.StudentsCreated)
	assert.Equal(t, 0, summary.StudentsUpdated)
	assert.Equal(t, 1, summary.ClassAssignments)

	// satu Family "Cohen" di alamat yang diberikan
	require.Len(t, f.families, 1)
	for _, fam := range f.families {
		assert.Equal(t, "Cohen", fam.FamilyName)
		require.NotNil(t, fam.FamilyAddress)
		assert.Equal(t, "123 Main St", *fam.FamilyAddress)
	}

	// satu Student aktif di grade yang diresolve
	require.Len(t, f.students, 1)
	for _, st := range f.students {
		assert.Equal(t, "Sarah", st.StudentFirstName)
		assert.Equal(t, "Cohen", st.StudentLastName)
		assert.Equal(t, "active", st.StudentEnrollmentStatus)
		require.NotNil(t, st.StudentGradeID)
		assert.Equal(t, g.GradeID, *st.StudentGradeID)
	}

	// dua Parent, yang pertama primary, default guardian (tanpa cue gender)
	require.Len(t, f.parents, 2)
	primaries := 0
	for _, p := range f.parents {
		assert.Equal(t, fModel.ParentRelationshipGuardian, p.ParentRelationship)
		assert.True(t, p.ParentCanPickup)
		assert.True(t, p.ParentEmergencyContact)
		if p.ParentIsPrimaryContact {
			primaries++
			assert.Equal(t, "Moshe", p.ParentFirstName)
		}
	}
	assert.Equal(t, 1, primaries)

	// satu assignment kelas aktif ke 1A
	require.Len(t, f.studentClasses, 1)
	for key, sc := range f.studentClasses {
		assert.Equal(t, cls.ClassID, key[1])
		assert.Equal(t, "active", sc.StudentClassStatus)
	}
	require.Len(t, f.parentStudents, 2)
}

func TestImportBatch_CellPhoneDisambiguatesRelationship(t *testing.T) {
	f := newFakeStore()
	svc := NewImportService(f)

	_, err := svc.ImportBatch(context.Background(), []dto.ImportRow{{
		StudentName: "Cohen, Sarah",
		ParentName:  "Cohen, Moshe and Rivka",
		FatherCell:  "5551234567",
		MotherCell:  "5559876543",
	}}, dto.ImportOptions{})
	require.NoError(t, err)

	// dua cell terisi: parent pertama father, kedua mother (klaim sekali pakai)
	rels := map[string]string{}
	phones := map[string]string{}
	for _, p := range f.parents {
		rels[p.ParentFirstName] = p.ParentRelationship
		if p.ParentPhone != nil {
			phones[p.ParentFirstName] = *p.ParentPhone
		}
	}
	assert.Equal(t, fModel.ParentRelationshipFather, rels["Moshe"])
	assert.Equal(t, fModel.ParentRelationshipMother, rels["Rivka"])
	assert.Equal(t, "5551234567", phones["Moshe"])
	assert.Equal(t, "5559876543", phones["Rivka"])
}

func TestImportBatch_SiblingsShareFamilyViaToken(t *testing.T) {
	f := newFakeStore()
	svc := NewImportService(f)

	summary, err := svc.ImportBatch(context.Background(), []dto.ImportRow{
		{StudentName: "Cohen, Sarah", ParentName: "Cohen, Moshe", FamilyID: "FAM-1", Address: "123 Main St"},
		{StudentName: "Cohen, David", ParentName: "Cohen, Moshe", FamilyID: "FAM-1", Address: "123 Main St"},
	}, dto.ImportOptions{})
	require.NoError(t, err)

	assert.Equal(t, 2, summary.Imported)
	assert.Equal(t, 1, summary.FamiliesCreated)
	require.Len(t, f.families, 1)

	var famID uuid.UUID
	for id := range f.families {
		famID = id
	}
	for _, st := range f.students {
		assert.Equal(t, famID, st.StudentFamilyID)
	}
}

func TestImportBatch_UpdateDecisionIsIdempotent(t *testing.T) {
	f := newFakeStore()
	f.addGrade("1st Grade")
	svc := NewImportService(f)

	row := dto.ImportRow{
		StudentName: "Cohen, Sarah",
		ParentName:  "Cohen, Moshe",
		Grade:       "1st Grade",
	}

	first, err := svc.ImportBatch(context.Background(), []dto.ImportRow{row}, dto.ImportOptions{})
	require.NoError(t, err)
	assert.Equal(t, 1, first.StudentsCreated)
	assert.Equal(t, 1, first.FamiliesCreated)

	second, err := svc.ImportBatch(context.Background(), []dto.ImportRow{row}, dto.ImportOptions{
		DuplicateActions: map[string]string{"row_0": dto.DuplicateActionUpdate},
	})
	require.NoError(t, err)

	// run kedua: tidak ada Family/Student baru, hanya satu update
	assert.Equal(t, 0, second.StudentsCreated)
	assert.Equal(t, 0, second.FamiliesCreated)
	assert.Equal(t, 1, second.StudentsUpdated)
	require.Len(t, f.students, 1)
	require.Len(t, f.families, 1)
	require.Len(t, f.parents, 1) // Moshe tidak digandakan
}

func TestImportBatch_ClassAssignmentUpsertNeverDuplicates(t *testing.T) {
	f := newFakeStore()
	g := f.addGrade("1st Grade")
	f.addClass("1A", g.GradeID)
	svc := NewImportService(f)

	row := dto.ImportRow{
		StudentName: "Cohen, Sarah",
		ParentName:  "Cohen, Moshe",
		Grade:       "1st Grade",
		Class:       "1A",
	}
	_, err := svc.ImportBatch(context.Background(), []dto.ImportRow{row}, dto.ImportOptions{})
	require.NoError(t, err)
	_, err = svc.ImportBatch(context.Background(), []dto.ImportRow{row}, dto.ImportOptions{
		DuplicateActions: map[string]string{"row_0": dto.DuplicateActionUpdate},
	})
	require.NoError(t, err)

	// tetap satu pasangan (student, class) aktif
	require.Len(t, f.studentClasses, 1)
	for _, sc := range f.studentClasses {
		assert.Equal(t, "active", sc.StudentClassStatus)
	}
}

func TestImportBatch_MergeFillsOnlyEmptyFields(t *testing.T) {
	f := newFakeStore()
	g1 := f.addGrade("1st Grade")
	f.addGrade("2nd Grade")
	svc := NewImportService(f)

	// seed lewat import pertama, dapat grade 1
	_, err := svc.ImportBatch(context.Background(), []dto.ImportRow{{
		StudentName: "Cohen, Sarah",
		ParentName:  "Cohen, Moshe",
		Grade:       "1st Grade",
	}}, dto.ImportOptions{})
	require.NoError(t, err)

	// merge dengan grade berbeda: grade lama tidak boleh tertimpa
	_, err = svc.ImportBatch(context.Background(), []dto.ImportRow{{
		StudentName: "Cohen, Sarah",
		ParentName:  "Cohen, Moshe",
		Grade:       "2nd Grade",
	}}, dto.ImportOptions{
		DuplicateActions: map[string]string{"row_0": dto.DuplicateActionMerge},
	})
	require.NoError(t, err)

	require.Len(t, f.students, 1)
	for _, st := range f.students {
		require.NotNil(t, st.StudentGradeID)
		assert.Equal(t, g1.GradeID, *st.StudentGradeID)
	}
}

func TestImportBatch_LegacyNameKeyDecisionFallback(t *testing.T) {
	f := newFakeStore()
	svc := NewImportService(f)

	_, err := svc.ImportBatch(context.Background(), []dto.ImportRow{{
		StudentName: "Cohen, Sarah",
		ParentName:  "Cohen, Moshe",
	}}, dto.ImportOptions{})
	require.NoError(t, err)

	second, err := svc.ImportBatch(context.Background(), []dto.ImportRow{{
		StudentName: "Cohen, Sarah",
		ParentName:  "Cohen, Moshe",
	}}, dto.ImportOptions{
		DuplicateActions: map[string]string{"Cohen, Sarah": dto.DuplicateActionUpdate},
	})
	require.NoError(t, err)

	assert.Equal(t, 1, second.StudentsUpdated)
	assert.Equal(t, 0, second.StudentsCreated)
}

func TestImportBatch_RowIndexKeyWinsOverNameKey(t *testing.T) {
	f := newFakeStore()
	svc := NewImportService(f)

	_, err := svc.ImportBatch(context.Background(), []dto.ImportRow{{
		StudentName: "Cohen, Sarah",
		ParentName:  "Cohen, Moshe",
	}}, dto.ImportOptions{})
	require.NoError(t, err)

	second, err := svc.ImportBatch(context.Background(), []dto.ImportRow{{
		StudentName: "Cohen, Sarah",
		ParentName:  "Cohen, Moshe",
	}}, dto.ImportOptions{
		DuplicateActions: map[string]string{
			"row_0":        dto.DuplicateActionCreate,
			"Cohen, Sarah": dto.DuplicateActionUpdate,
		},
	})
	require.NoError(t, err)

	// key row index menang: tetap create walau key legacy bilang update
	assert.Equal(t, 1, second.StudentsCreated)
	assert.Equal(t, 0, second.StudentsUpdated)
}

func TestImportBatch_BadRowDoesNotAbortBatch(t *testing.T) {
	f := newFakeStore()
	svc := NewImportService(f)

	summary, err := svc.ImportBatch(context.Background(), []dto.ImportRow{
		{StudentName: "", ParentName: ""},
		{StudentName: "Cohen, Sarah", ParentName: "Cohen, Moshe"},
	}, dto.ImportOptions{})
	require.NoError(t, err)

	assert.Equal(t, 1, summary.Imported)
	assert.Equal(t, 1, summary.ErrorCount)
	require.Len(t, summary.Results, 2)
	assert.False(t, summary.Results[0].Success)
	assert.True(t, summary.Results[1].Success)
	require.Len(t, f.students, 1)
}

func TestImportBatch_CrossGradeClassStillAssignedWithWarning(t *testing.T) {
	f := newFakeStore()
	f.addGrade("1st Grade")
	g2 := f.addGrade("2nd Grade")
	f.addClass("2B", g2.GradeID)
	svc := NewImportService(f)

	summary, err := svc.ImportBatch(context.Background(), []dto.ImportRow{{
		StudentName: "Cohen, Sarah",
		ParentName:  "Cohen, Moshe",
		Grade:       "1st Grade",
		Class:       "2B",
	}}, dto.ImportOptions{})
	require.NoError(t, err)

	// fallback global tetap assign class, tapi ada warning
	assert.Equal(t, 1, summary.ClassAssignments)
	require.Len(t, summary.Results, 1)
	assert.True(t, summary.Results[0].ClassAssigned)
	assert.NotEmpty(t, summary.Results[0].Warnings)
}

func TestImportBatch_ExistingFamilyReusedByNameAndAddress(t *testing.T) {
	f := newFakeStore()
	addr := "123 Main St"
	existing := &fModel.FamilyModel{FamilyName: "Cohen", FamilyAddress: &addr}
	require.NoError(t, f.CreateFamily(context.Background(), existing))

	svc := NewImportService(f)
	summary, err := svc.ImportBatch(context.Background(), []dto.ImportRow{{
		StudentName: "Cohen, Sarah",
		ParentName:  "Cohen, Moshe",
		Address:     "123 main st",
	}}, dto.ImportOptions{})
	require.NoError(t, err)

	assert.Equal(t, 0, summary.FamiliesCreated)
	require.Len(t, f.families, 1)
	for _, st := range f.students {
		assert.Equal(t, existing.FamilyID, st.StudentFamilyID)
	}
}

func TestImportBatch_AtomicRowRollsBackAllWrites(t *testing.T) {
	f := newFakeStore()
	f.createStudentErr = func(m *sModel.StudentModel) error {
		if m.StudentFirstName == "Sarah" {
			return errors.New("insert siswa gagal")
		}
		return nil
	}

	svc := NewImportService(f)
	summary, err := svc.ImportBatch(context.Background(), []dto.ImportRow{
		{
			StudentName: "Cohen, Sarah",
			ParentName:  "Cohen, Moshe",
			Address:     "123 Main St",
			FamilyID:    "FAM-1",
		},
		{
			StudentName: "Cohen, David",
			ParentName:  "Cohen, Moshe",
			Address:     "123 Main St",
			FamilyID:    "FAM-1",
		},
	}, dto.ImportOptions{AtomicRows: true})
	require.NoError(t, err)

	// row pertama gagal di tengah: Family yang sempat dibuat di dalam tx
	// ikut hilang, tidak ada jejak parsial
	assert.Equal(t, 1, summary.Imported)
	assert.Equal(t, 1, summary.ErrorCount)
	require.Len(t, summary.Results, 2)
	assert.False(t, summary.Results[0].Success)
	assert.False(t, summary.Results[0].ClassAssigned)
	assert.NotEmpty(t, summary.Results[0].Errors)
	assert.True(t, summary.Results[1].Success)

	// token FAM-1 milik row gagal ikut dibatalkan, jadi row kedua membuat
	// Family baru lewat pencarian nama+alamat, dan hanya satu yang tersisa
	assert.Equal(t, 1, summary.FamiliesCreated)
	assert.Equal(t, 1, summary.StudentsCreated)
	require.Len(t, f.families, 1)
	require.Len(t, f.students, 1)
	require.Len(t, f.parents, 1)
	for _, st := range f.students {
		assert.Equal(t, "David", st.StudentFirstName)
	}
}
