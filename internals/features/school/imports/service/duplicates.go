// file: internals/features/school/imports/service/duplicates.go
package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	sModel "schoolku_backend/internals/features/school/students/model"
	helper "schoolku_backend/internals/helpers"
)

// StudentIdentity = proyeksi field yang dipakai untuk skor kemiripan.
// Dibangun dari row import maupun dari record DB supaya skornya simetris.
type StudentIdentity struct {
	FirstName   string
	LastName    string
	StudentCode string
	DateOfBirth *time.Time
	GradeID     *uuid.UUID
}

func equalFold(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}

/// SimilarityScore menghitung skor 0..100:
//
//	+50 first+last name sama (ci)
//	+40 student code sama (dua-duanya terisi)
//	+10 tanggal lahir sama (dua-duanya terisi)
//	+5  grade sama
//
// Field kosong di salah satu sisi tidak menambah skor. Cap di 100.
func SimilarityScore(a, b StudentIdentity) int {
	score := 0
	if a.FirstName != "" && a.LastName != "" &&
		equalFold(a.FirstName, b.FirstName) && equalFold(a.LastName, b.LastName) {
		score += 50
	}
	if a.StudentCode != "" && b.StudentCode != "" && equalFold(a.StudentCode, b.StudentCode) {
		score += 40
	}
	if a.DateOfBirth != nil && b.DateOfBirth != nil {
		ay, am, ad := a.DateOfBirth.Date()
		by, bm, bd := b.DateOfBirth.Date()
		if ay == by && am == bm && ad == bd {
			score += 10
		}
	}
	if a.GradeID != nil && b.GradeID != nil && *a.GradeID == *b.GradeID {
		score += 5
	}
	if score > 100 {
		score = 100
	}
	return score
}

// IdentitiesOverlap meniru predikat query pencarian duplikat untuk dua
// identitas in-memory: nama sama (ci), atau code sama, atau tanggal lahir
// sama. Dipakai untuk mendeteksi duplikat antar-row di batch yang sama
// tanpa lewat database.
func IdentitiesOverlap(a, b StudentIdentity) bool {
	if a.FirstName != "" && a.LastName != "" &&
		equalFold(a.FirstName, b.FirstName) && equalFold(a.LastName, b.LastName) {
		return true
	}
	if a.StudentCode != "" && b.StudentCode != "" && equalFold(a.StudentCode, b.StudentCode) {
		return true
	}
	if a.DateOfBirth != nil && b.DateOfBirth != nil {
		ay, am, ad := a.DateOfBirth.Date()
		by, bm, bd := b.DateOfBirth.Date()
		if ay == by && am == bm && ad == bd {
			return true
		}
	}
	return false
}

// IdentityFromRow membangun identitas dari satu row import.
// Nama harus sudah diparse duluan; row yang gagal parse tidak sampai ke sini.
func IdentityFromRow(name *ParsedName, studentCode, dob, grade string, lookups *RefLookups) StudentIdentity {
	id := StudentIdentity{
		StudentCode: helper.CollapseSpaces(studentCode),
	}
	if name != nil {
		id.FirstName = name.FirstName
		id.LastName = name.LastName
	}
	if t := ParseImportDate(dob); t != nil {
		id.DateOfBirth = t
	}
	if g := lookups.GradeByName(grade); g != nil {
		gid := g.GradeID
		id.GradeID = &gid
	}
	return id
}

func IdentityFromModel(m *sModel.StudentModel) StudentIdentity {
	id := StudentIdentity{
		FirstName:   m.StudentFirstName,
		LastName:    m.StudentLastName,
		DateOfBirth: m.StudentDateOfBirth,
		GradeID:     m.StudentGradeID,
	}
	if m.StudentCode != nil {
		id.StudentCode = *m.StudentCode
	}
	return id
}

// DuplicateCandidateModel = kandidat + skornya, masih level model
// (konversi ke DTO terjadi di validator).
type DuplicateCandidateModel struct {
	Student *sModel.StudentModel
	Score   int
}

// FindDuplicateCandidates menjalankan query kandidat lalu menskor semuanya.
// Urutan hasil mengikuti query (terbaru duluan).
func FindDuplicateCandidates(ctx context.Context, store ImportStore, id StudentIdentity) ([]DuplicateCandidateModel, error) {
	if id.FirstName == "" || id.LastName == "" {
		return nil, nil
	}
	found, err := store.FindDuplicateStudents(ctx, DuplicateQuery{
		FirstName:   id.FirstName,
		LastName:    id.LastName,
		StudentCode: id.StudentCode,
		DateOfBirth: id.DateOfBirth,
	})
	if err != nil {
		return nil, err
	}

	out := make([]DuplicateCandidateModel, 0, len(found))
	for i := range found {
		m := found[i]
		out = append(out, DuplicateCandidateModel{
			Student: &m,
			Score:   SimilarityScore(id, IdentityFromModel(&m)),
		})
	}
	return out, nil
}

// ParseImportDate menerima format tanggal umum di spreadsheet sekolah.
// Nil kalau kosong / tidak dikenal.
func ParseImportDate(raw string) *time.Time {
	raw = helper.CollapseSpaces(raw)
	if raw == "" {
		return nil
	}
	layouts := []string{"2006-01-02", "01/02/2006", "1/2/2006", "01-02-2006", "2006/01/02"}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return &t
		}
	}
	return nil
}
