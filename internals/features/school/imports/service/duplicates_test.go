package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func datePtr(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func TestSimilarityScore_NameOnly(t *testing.T) {
	a := StudentIdentity{FirstName: "Sarah", LastName: "Cohen"}
	b := StudentIdentity{FirstName: "sarah", LastName: "COHEN"}
	assert.Equal(t, 50, SimilarityScore(a, b))
	// simetris
	assert.Equal(t, SimilarityScore(a, b), SimilarityScore(b, a))
}

func TestSimilarityScore_PureIDMatch(t *testing.T) {
	// nama beda, studentId sama: tepat 40, bukan 50+40
	a := StudentIdentity{FirstName: "Sarah", LastName: "Cohen", StudentCode: "S-100"}
	b := StudentIdentity{FirstName: "Rivka", LastName: "Levy", StudentCode: "S-100"}
	assert.Equal(t, 40, SimilarityScore(a, b))
}

func TestSimilarityScore_IDMissingOnOneSide(t *testing.T) {
	a := StudentIdentity{FirstName: "Sarah", LastName: "Cohen", StudentCode: "S-100"}
	b := StudentIdentity{FirstName: "Sarah", LastName: "Cohen"}
	assert.Equal(t, 50, SimilarityScore(a, b))
}

func TestSimilarityScore_AllSignalsCapped(t *testing.T) {
	gid := uuid.New()
	a := StudentIdentity{
		FirstName: "Sarah", LastName: "Cohen",
		StudentCode: "S-100",
		DateOfBirth: datePtr(2017, time.March, 9),
		GradeID:     &gid,
	}
	b := a
	// 50+40+10+5 = 105 → cap 100
	assert.Equal(t, 100, SimilarityScore(a, b))
}

func TestSimilarityScore_NoSignals(t *testing.T) {
	a := StudentIdentity{FirstName: "Sarah", LastName: "Cohen"}
	b := StudentIdentity{FirstName: "Rivka", LastName: "Levy"}
	assert.Equal(t, 0, SimilarityScore(a, b))
}

func TestSimilarityScore_DOBAndGradeOnly(t *testing.T) {
	gid := uuid.New()
	a := StudentIdentity{FirstName: "Sarah", LastName: "Cohen", DateOfBirth: datePtr(2017, time.March, 9), GradeID: &gid}
	b := StudentIdentity{FirstName: "Rivka", LastName: "Levy", DateOfBirth: datePtr(2017, time.March, 9), GradeID: &gid}
	assert.Equal(t, 15, SimilarityScore(a, b))
}

func TestParseImportDate_Formats(t *testing.T) {
	for _, raw := range []string{"2017-03-09", "03/09/2017", "3/9/2017"} {
		got := ParseImportDate(raw)
		if assert.NotNil(t, got, raw) {
			assert.Equal(t, 2017, got.Year())
			assert.Equal(t, time.March, got.Month())
			assert.Equal(t, 9, got.Day())
		}
	}
	assert.Nil(t, ParseImportDate(""))
	assert.Nil(t, ParseImportDate("bukan tanggal"))
}
