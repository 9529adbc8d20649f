package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"schoolku_backend/internals/features/school/imports/dto"
	sModel "schoolku_backend/internals/features/school/students/model"
)

func lookupsFor(t *testing.T, f *fakeStore) *RefLookups {
	t.Helper()
	l, err := LoadRefLookups(context.Background(), f)
	require.NoError(t, err)
	return l
}

func issueCodes(issues []dto.ValidationIssue) map[string]string {
	out := map[string]string{}
	for _, i := range issues {
		out[i.Field] = i.Code
	}
	return out
}

func TestValidateRow_HappyPath(t *testing.T) {
	f := newFakeStore()
	g := f.addGrade("1st Grade", "1", "first")
	f.addClass("1A", g.GradeID)

	rv := ValidateRow(0, dto.ImportRow{
		StudentName: "Cohen, Sarah",
		ParentName:  "Cohen, Moshe and Rivka",
		Address:     "123 Main St",
		HomePhone:   "(555) 123-4567",
		Grade:       "1st Grade",
		Class:       "1A",
	}, lookupsFor(t, f))

	assert.True(t, rv.Valid)
	assert.Empty(t, rv.Errors)
	assert.Empty(t, rv.Warnings)
}

func TestValidateRow_MissingRequiredNames(t *testing.T) {
	f := newFakeStore()
	rv := ValidateRow(0, dto.ImportRow{}, lookupsFor(t, f))

	assert.False(t, rv.Valid)
	codes := issueCodes(rv.Errors)
	assert.Equal(t, dto.IssueMissingField, codes["studentName"])
	assert.Equal(t, dto.IssueMissingField, codes["parentName"])
}

func TestValidateRow_UnparseableNamesAreFormatErrors(t *testing.T) {
	f := newFakeStore()
	rv := ValidateRow(0, dto.ImportRow{
		StudentName: "Madonna",
		ParentName:  "Cohen, Moshe",
	}, lookupsFor(t, f))

	assert.False(t, rv.Valid)
	assert.Equal(t, dto.IssueFormat, issueCodes(rv.Errors)["studentName"])
}

func TestValidateRow_PhoneFieldsCheckedIndependently(t *testing.T) {
	f := newFakeStore()
	rv := ValidateRow(0, dto.ImportRow{
		StudentName: "Cohen, Sarah",
		ParentName:  "Cohen, Moshe",
		HomePhone:   "555-1234",       // 7 digit → error
		FatherCell:  "(555) 123-4567", // 10 digit → ok
	}, lookupsFor(t, f))

	assert.False(t, rv.Valid)
	codes := issueCodes(rv.Errors)
	assert.Equal(t, dto.IssuePhoneFormat, codes["homePhone"])
	assert.NotContains(t, codes, "fatherCell")
}

func TestValidateRow_UnknownGradeListsAvailable(t *testing.T) {
	f := newFakeStore()
	f.addGrade("1st Grade")
	f.addGrade("2nd Grade")

	rv := ValidateRow(0, dto.ImportRow{
		StudentName: "Cohen, Sarah",
		ParentName:  "Cohen, Moshe",
		Grade:       "99th Grade",
	}, lookupsFor(t, f))

	assert.False(t, rv.Valid)
	require.Len(t, rv.Errors, 1)
	assert.Equal(t, dto.IssueLookupNotFound, rv.Errors[0].Code)
	assert.Contains(t, rv.Errors[0].Message, "1st Grade")
	assert.Contains(t, rv.Errors[0].Message, "2nd Grade")
}

func TestValidateRow_GradeAliasMatches(t *testing.T) {
	f := newFakeStore()
	f.addGrade("1st Grade", "grade 1", "1")

	rv := ValidateRow(0, dto.ImportRow{
		StudentName: "Cohen, Sarah",
		ParentName:  "Cohen, Moshe",
		Grade:       "GRADE 1",
	}, lookupsFor(t, f))

	assert.True(t, rv.Valid)
}

func TestValidateRow_MissingGradeAndClassAreWarnings(t *testing.T) {
	f := newFakeStore()
	rv := ValidateRow(0, dto.ImportRow{
		StudentName: "Cohen, Sarah",
		ParentName:  "Cohen, Moshe",
	}, lookupsFor(t, f))

	assert.True(t, rv.Valid)
	warns := issueCodes(rv.Warnings)
	assert.Contains(t, warns, "grade")
	assert.Contains(t, warns, "class")
}

func TestValidateRow_ClassInOtherGradeIsWarning(t *testing.T) {
	f := newFakeStore()
	g1 := f.addGrade("1st Grade")
	g2 := f.addGrade("2nd Grade")
	_ = g1
	f.addClass("2B", g2.GradeID)

	rv := ValidateRow(0, dto.ImportRow{
		StudentName: "Cohen, Sarah",
		ParentName:  "Cohen, Moshe",
		Grade:       "1st Grade",
		Class:       "2B",
	}, lookupsFor(t, f))

	// class ada tapi bukan di grade row ini: warning, bukan error
	assert.True(t, rv.Valid)
	assert.Equal(t, dto.IssueLookupNotFound, issueCodes(rv.Warnings)["class"])
}

func TestValidateRow_AmountWarnings(t *testing.T) {
	f := newFakeStore()
	rv := ValidateRow(0, dto.ImportRow{
		StudentName: "Cohen, Sarah",
		ParentName:  "Cohen, Moshe",
		Tuition:     "$1,200.00",
		Paid:        "abc",
	}, lookupsFor(t, f))

	assert.True(t, rv.Valid) // nominal salah format tidak memblokir
	warns := issueCodes(rv.Warnings)
	assert.NotContains(t, warns, "tuition")
	assert.Equal(t, dto.IssueAmountFormat, warns["paid"])
}

func TestValidateBatch_AttachesDuplicatesAndCounts(t *testing.T) {
	f := newFakeStore()
	existing := &sModel.StudentModel{
		StudentFirstName:        "Sarah",
		StudentLastName:         "Cohen",
		StudentEnrollmentStatus: sModel.EnrollmentStatusActive,
	}
	require.NoError(t, f.CreateStudent(context.Background(), existing))

	svc := NewImportService(f)
	resp, err := svc.ValidateBatch(context.Background(), []dto.ImportRow{
		{StudentName: "Cohen, Sarah", ParentName: "Cohen, Moshe"},
		{StudentName: "", ParentName: ""},
	})
	require.NoError(t, err)

	assert.False(t, resp.Valid)
	assert.Equal(t, 2, resp.Details.TotalRows)
	assert.Equal(t, 1, resp.Details.ValidRows)
	assert.Equal(t, 1, resp.Details.InvalidRows)
	assert.Equal(t, 1, resp.Details.DuplicateRows)

	require.Len(t, resp.Duplicates, 1)
	d := resp.Duplicates[0]
	assert.Equal(t, 0, d.RowIndex)
	assert.Equal(t, "Cohen, Sarah", d.StudentKey)
	require.Len(t, d.Candidates, 1)
	assert.Equal(t, 50, d.Candidates[0].SimilarityScore)
}

func TestValidateBatch_TwoIdenticalRowsSeeEachOthersCandidate(t *testing.T) {
	f := newFakeStore() // database kosong, kandidat murni dari antar-row

	svc := NewImportService(f)
	resp, err := svc.ValidateBatch(context.Background(), []dto.ImportRow{
		{StudentName: "Cohen, Sarah", ParentName: "Cohen, Moshe"},
		{StudentName: "Cohen, Sarah", ParentName: "Cohen, Moshe"},
	})
	require.NoError(t, err)

	// dua row identik tanpa studentId/dob: dua-duanya saling melihat
	// sebagai kandidat dengan skor tepat 50, walau database masih kosong
	require.Len(t, resp.Duplicates, 2)
	for i, d := range resp.Duplicates {
		assert.Equal(t, i, d.RowIndex)
		assert.Equal(t, "Cohen, Sarah", d.StudentKey)
		require.Len(t, d.Candidates, 1)
		c := d.Candidates[0]
		assert.Nil(t, c.Student) // bukan dari database
		require.NotNil(t, c.BatchRowIndex)
		assert.Equal(t, 1-i, *c.BatchRowIndex)
		assert.Equal(t, 50, c.SimilarityScore)
	}
	assert.Equal(t, 2, resp.Details.DuplicateRows)
}

func TestValidateBatch_StoredAndInBatchCandidatesCombine(t *testing.T) {
	f := newFakeStore()
	existing := &sModel.StudentModel{
		StudentFirstName:        "Sarah",
		StudentLastName:         "Cohen",
		StudentEnrollmentStatus: sModel.EnrollmentStatusActive,
	}
	require.NoError(t, f.CreateStudent(context.Background(), existing))

	svc := NewImportService(f)
	resp, err := svc.ValidateBatch(context.Background(), []dto.ImportRow{
		{StudentName: "Cohen, Sarah", ParentName: "Cohen, Moshe"},
		{StudentName: "Cohen, Sarah", ParentName: "Cohen, Moshe"},
	})
	require.NoError(t, err)

	// tiap row melihat kandidat dari database + kandidat row satunya
	require.Len(t, resp.Duplicates, 2)
	for _, d := range resp.Duplicates {
		require.Len(t, d.Candidates, 2)
		assert.NotNil(t, d.Candidates[0].Student)
		assert.Nil(t, d.Candidates[0].BatchRowIndex)
		assert.Nil(t, d.Candidates[1].Student)
		assert.NotNil(t, d.Candidates[1].BatchRowIndex)
	}
}
