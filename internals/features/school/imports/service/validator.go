// file: internals/features/school/imports/service/validator.go
package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"schoolku_backend/internals/features/school/imports/dto"
	sDTO "schoolku_backend/internals/features/school/students/dto"
	helper "schoolku_backend/internals/helpers"
)

// urutan check per-row itu kontrak: error pertama yang kelihatan user
// harus konsisten antar run
func ValidateRow(rowIndex int, row dto.ImportRow, lookups *RefLookups) dto.RowValidation {
	out := dto.RowValidation{
		RowIndex: rowIndex,
		Errors:   []dto.ValidationIssue{},
		Warnings: []dto.ValidationIssue{},
	}

	addErr := func(field, code, msg string) {
		out.Errors = append(out.Errors, dto.ValidationIssue{Field: field, Code: code, Message: msg})
	}
	addWarn := func(field, code, msg string) {
		out.Warnings = append(out.Warnings, dto.ValidationIssue{Field: field, Code: code, Message: msg})
	}

	// 1) studentName wajib & parseable
	if helper.CollapseSpaces(row.StudentName) == "" {
		addErr("studentName", dto.IssueMissingField, "Nama siswa wajib diisi")
	} else if ParseStudentName(row.StudentName) == nil {
		addErr("studentName", dto.IssueFormat,
			fmt.Sprintf("Nama siswa %q tidak bisa diparse. Format yang didukung: \"Last, First\" atau \"First Last\"", row.StudentName))
	}

	// 2) parentName wajib & minimal satu first name
	if helper.CollapseSpaces(row.ParentName) == "" {
		addErr("parentName", dto.IssueMissingField, "Nama orang tua wajib diisi")
	} else if ParseParentNames(row.ParentName) == nil {
		addErr("parentName", dto.IssueFormat,
			fmt.Sprintf("Nama orang tua %q tidak bisa diparse. Format yang didukung: \"Last, First and First\"", row.ParentName))
	}

	// 3) alamat terlalu pendek = warning saja
	if addr := helper.CollapseSpaces(row.Address); addr != "" && len(addr) < 5 {
		addWarn("address", dto.IssueFormat, "Alamat terlalu pendek, kemungkinan tidak lengkap")
	}

	// 4) telepon: masing-masing field dicek sendiri, minimal 10 digit
	for _, p := range []struct{ field, val string }{
		{"homePhone", row.HomePhone},
		{"fatherCell", row.FatherCell},
		{"motherCell", row.MotherCell},
	} {
		if helper.CollapseSpaces(p.val) == "" {
			continue
		}
		if len(helper.DigitsOnly(p.val)) < 10 {
			addErr(p.field, dto.IssuePhoneFormat,
				fmt.Sprintf("Nomor telepon %s %q kurang dari 10 digit", p.field, p.val))
		}
	}

	// 5) grade
	var resolvedGrade = lookups.GradeByName(row.Grade)
	if helper.CollapseSpaces(row.Grade) == "" {
		addWarn("grade", dto.IssueMissingField, "Grade kosong, siswa dibuat tanpa grade")
	} else if resolvedGrade == nil {
		msg := fmt.Sprintf("Grade %q tidak dikenal. Grade tersedia: %s", row.Grade, strings.Join(lookups.GradeNames(), ", "))
		if sug := lookups.SuggestGrades(row.Grade); len(sug) > 0 {
			msg += fmt.Sprintf(". Mungkin maksud Anda: %s", strings.Join(sug, ", "))
		}
		addErr("grade", dto.IssueLookupNotFound, msg)
	}

	// 6) class: scoped ke grade dulu, fallback global (lihat lookups.ClassByName)
	if helper.CollapseSpaces(row.Class) == "" {
		addWarn("class", dto.IssueMissingField, "Class kosong, siswa dibuat tanpa kelas")
	} else {
		var gid *uuid.UUID
		if resolvedGrade != nil {
			v := resolvedGrade.GradeID
			gid = &v
		}
		class, scoped := lookups.ClassByName(row.Class, gid)
		switch {
		case class == nil:
			msg := fmt.Sprintf("Class %q tidak dikenal. Class tersedia: %s", row.Class, strings.Join(lookups.ClassNames(gid), ", "))
			if sug := lookups.SuggestClasses(row.Class); len(sug) > 0 {
				msg += fmt.Sprintf(". Mungkin maksud Anda: %s", strings.Join(sug, ", "))
			}
			addErr("class", dto.IssueLookupNotFound, msg)
		case !scoped && resolvedGrade != nil:
			addWarn("class", dto.IssueLookupNotFound,
				fmt.Sprintf("Class %q ada tapi tidak terdaftar di grade %q, dipakai apa adanya", row.Class, resolvedGrade.GradeName))
		}
	}

	// 7) familyId whitespace doang = warning
	if row.FamilyID != "" && helper.CollapseSpaces(row.FamilyID) == "" {
		addWarn("familyId", dto.IssueMissingField, "familyId hanya berisi spasi, diabaikan")
	}

	// 8) nominal uang: salah format = warning, bukan error
	for _, a := range []struct{ field, val string }{
		{"tuition", row.Tuition},
		{"paid", row.Paid},
		{"pledges", row.Pledges},
	} {
		if helper.CollapseSpaces(a.val) == "" {
			continue
		}
		if _, err := helper.ParseAmount(a.val); err != nil {
			addWarn(a.field, dto.IssueAmountFormat,
				fmt.Sprintf("Nilai %s %q bukan angka non-negatif yang valid", a.field, a.val))
		}
	}

	out.Valid = len(out.Errors) == 0
	return out
}

// ValidateBatch = fase read-only sebelum commit: validasi semua row,
// lalu deteksi duplikat untuk row yang lolos dan namanya parseable.
func (s *ImportService) ValidateBatch(ctx context.Context, rows []dto.ImportRow) (*dto.ValidateBatchResponse, error) {
	lookups, err := LoadRefLookups(ctx, s.store)
	if err != nil {
		// satu-satunya failure yang boleh menggagalkan seluruh operasi
		return nil, fmt.Errorf("gagal memuat data referensi grade/class: %w", err)
	}

	resp := &dto.ValidateBatchResponse{
		Errors:     []dto.RowIssue{},
		Warnings:   []dto.RowIssue{},
		Duplicates: []dto.RowDuplicates{},
	}
	resp.Details.Rows = make([]dto.RowValidation, 0, len(rows))
	resp.Details.TotalRows = len(rows)

	// identitas per-row untuk cross-check antar-row (hanya row valid + parseable)
	type rowIdentity struct {
		rowIndex int
		name     *ParsedName
		id       StudentIdentity
	}
	identities := make([]rowIdentity, 0, len(rows))
	dupByRow := make(map[int]*dto.RowDuplicates)

	// Pass 1: validasi per-row + kandidat duplikat dari database
	for i, row := range rows {
		rv := ValidateRow(i, row, lookups)

		// duplikat hanya dicek kalau row tidak punya blocking error
		if rv.Valid {
			if name := ParseStudentName(row.StudentName); name != nil {
				id := IdentityFromRow(name, row.StudentID, row.DateOfBirth, row.Grade, lookups)
				identities = append(identities, rowIdentity{rowIndex: i, name: name, id: id})

				cands, derr := FindDuplicateCandidates(ctx, s.store, id)
				if derr != nil {
					rv.Warnings = append(rv.Warnings, dto.ValidationIssue{
						Field:   "studentName",
						Code:    dto.IssueDuplicateFound,
						Message: "Pengecekan duplikat gagal, lanjut tanpa info duplikat",
					})
				} else if len(cands) > 0 {
					rd := &dto.RowDuplicates{
						RowIndex:   i,
						StudentKey: fmt.Sprintf("%s, %s", name.LastName, name.FirstName),
						Candidates: make([]dto.DuplicateCandidate, 0, len(cands)),
					}
					for _, c := range cands {
						rd.Candidates = append(rd.Candidates, dto.DuplicateCandidate{
							Student:         sDTO.NewStudentResponse(c.Student),
							SimilarityScore: c.Score,
						})
					}
					dupByRow[i] = rd
				}
			}
		}

		resp.Details.Rows = append(resp.Details.Rows, rv)
	}

	// Pass 2: cross-check antar-row. Dua row yang saling mirip melihat satu
	// sama lain sebagai kandidat, dua arah, dengan skor yang simetris.
	appendBatchCandidate := func(ri rowIdentity, otherRow, score int) {
		rd, ok := dupByRow[ri.rowIndex]
		if !ok {
			rd = &dto.RowDuplicates{
				RowIndex:   ri.rowIndex,
				StudentKey: fmt.Sprintf("%s, %s", ri.name.LastName, ri.name.FirstName),
				Candidates: []dto.DuplicateCandidate{},
			}
			dupByRow[ri.rowIndex] = rd
		}
		other := otherRow
		rd.Candidates = append(rd.Candidates, dto.DuplicateCandidate{
			BatchRowIndex:   &other,
			SimilarityScore: score,
		})
	}
	for x := 0; x < len(identities); x++ {
		for y := x + 1; y < len(identities); y++ {
			a, b := identities[x], identities[y]
			if !IdentitiesOverlap(a.id, b.id) {
				continue
			}
			score := SimilarityScore(a.id, b.id)
			appendBatchCandidate(a, b.rowIndex, score)
			appendBatchCandidate(b, a.rowIndex, score)
		}
	}

	// Gabungkan hasil duplikat ke response, urut per row
	for _, ri := range identities {
		rd, ok := dupByRow[ri.rowIndex]
		if !ok {
			continue
		}
		resp.Duplicates = append(resp.Duplicates, *rd)
		rv := &resp.Details.Rows[ri.rowIndex]
		rv.Warnings = append(rv.Warnings, dto.ValidationIssue{
			Field:   "studentName",
			Code:    dto.IssueDuplicateFound,
			Message: fmt.Sprintf("Ditemukan %d kandidat duplikat, tentukan aksi create/merge/update", len(rd.Candidates)),
		})
		resp.Details.DuplicateRows++
	}

	// Agregasi flat errors/warnings + counter
	for i := range resp.Details.Rows {
		rv := resp.Details.Rows[i]
		for _, e := range rv.Errors {
			resp.Errors = append(resp.Errors, dto.RowIssue{RowIndex: i, Field: e.Field, Code: e.Code, Message: e.Message})
		}
		for _, w := range rv.Warnings {
			resp.Warnings = append(resp.Warnings, dto.RowIssue{RowIndex: i, Field: w.Field, Code: w.Code, Message: w.Message})
		}
		if rv.Valid {
			resp.Details.ValidRows++
		} else {
			resp.Details.InvalidRows++
		}
		if len(rv.Warnings) > 0 {
			resp.Details.WarningRows++
		}
	}

	resp.Valid = resp.Details.InvalidRows == 0
	return resp, nil
}
