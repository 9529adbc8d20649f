// file: internals/features/school/imports/service/importer.go
package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	aModel "schoolku_backend/internals/features/school/academics/model"
	fDTO "schoolku_backend/internals/features/school/families/dto"
	fModel "schoolku_backend/internals/features/school/families/model"
	"schoolku_backend/internals/features/school/imports/dto"
	sDTO "schoolku_backend/internals/features/school/students/dto"
	sModel "schoolku_backend/internals/features/school/students/model"
	helper "schoolku_backend/internals/helpers"
)

type ImportService struct {
	store ImportStore
}

func NewImportService(store ImportStore) *ImportService {
	return &ImportService{store: store}
}

// batchContext = satu-satunya state mutable yang dishare antar row,
// scoped ke satu invocation batch (tidak pernah nyangkut di memori global).
// familyIDMap yang membuat kakak-adik di satu spreadsheet jatuh ke
// Family yang sama, makanya row WAJIB diproses urut.
type batchContext struct {
	lookups     *RefLookups
	familyIDMap map[string]uuid.UUID
}

// Tabel aturan relationship, dicek berurutan terhadap first name
// (lowercase substring). Default kalau tidak ada yang kena: guardian.
var relationshipRules = []struct {
	keyword      string
	relationship string
}{
	{"father", fModel.ParentRelationshipFather},
	{"dad", fModel.ParentRelationshipFather},
	{"mother", fModel.ParentRelationshipMother},
	{"mom", fModel.ParentRelationshipMother},
}

// hasil per-row level internal, bawa ID untuk agregasi unik
type rowOutcome struct {
	result           dto.RowImportResult
	createdFamilyID  *uuid.UUID
	createdStudentID *uuid.UUID
	updatedStudentID *uuid.UUID
	createdParentIDs []uuid.UUID
	classAssigned    bool
}

// ImportBatch = fase commit. Row diproses sequential sesuai urutan file;
// satu row rusak tidak boleh membatalkan batch.
func (s *ImportService) ImportBatch(ctx context.Context, rows []dto.ImportRow, opts dto.ImportOptions) (*dto.BatchSummary, error) {
	lookups, err := LoadRefLookups(ctx, s.store)
	if err != nil {
		return nil, fmt.Errorf("gagal memuat data referensi grade/class: %w", err)
	}

	bctx := &batchContext{
		lookups:     lookups,
		familyIDMap: make(map[string]uuid.UUID),
	}

	summary := &dto.BatchSummary{Results: make([]dto.RowImportResult, 0, len(rows))}
	familySet := map[uuid.UUID]bool{}
	parentSet := map[uuid.UUID]bool{}
	studentSet := map[uuid.UUID]bool{}
	updatedSet := map[uuid.UUID]bool{}

	for i, row := range rows {
		decision := resolveDecision(opts.DuplicateActions, i, row.StudentName)
		out := s.runRow(ctx, bctx, i, row, decision, opts.AtomicRows)

		// agregasi pakai set ID unik, bukan hitungan row
		if out.createdFamilyID != nil {
			familySet[*out.createdFamilyID] = true
		}
		if out.createdStudentID != nil {
			studentSet[*out.createdStudentID] = true
		}
		if out.updatedStudentID != nil {
			updatedSet[*out.updatedStudentID] = true
		}
		for _, pid := range out.createdParentIDs {
			parentSet[pid] = true
		}
		if out.classAssigned {
			summary.ClassAssignments++
		}
		if out.result.Success {
			summary.Imported++
		}
		if len(out.result.Errors) > 0 {
			summary.ErrorCount++
		}
		summary.Results = append(summary.Results, out.result)
	}

	summary.FamiliesCreated = len(familySet)
	summary.ParentsCreated = len(parentSet)
	summary.StudentsCreated = len(studentSet)
	summary.StudentsUpdated = len(updatedSet)
	return summary, nil
}

// resolveDecision: key row index yang utama; key display "Last, First"
// cuma fallback legacy (tidak unik, dua siswa bisa share key yang sama).
func resolveDecision(actions map[string]string, rowIndex int, studentName string) string {
	if len(actions) == 0 {
		return dto.DuplicateActionCreate
	}
	if d, ok := actions[fmt.Sprintf("row_%d", rowIndex)]; ok && d != "" {
		return d
	}
	if name := ParseStudentName(studentName); name != nil {
		if d, ok := actions[fmt.Sprintf("%s, %s", name.LastName, name.FirstName)]; ok && d != "" {
			return d
		}
	}
	return dto.DuplicateActionCreate
}

// runRow membungkus processRow dengan recover (exception tak terduga
// jadi row error, bukan batch abort) dan, kalau diminta, transaksi per row.
func (s *ImportService) runRow(ctx context.Context, bctx *batchContext, idx int, row dto.ImportRow, decision string, atomic bool) (out rowOutcome) {
	defer func() {
		if r := recover(); r != nil {
			out = rowOutcome{result: dto.RowImportResult{
				RowIndex: idx,
				Errors: []dto.ValidationIssue{{
					Field:   "row",
					Code:    dto.IssueFormat,
					Message: fmt.Sprintf("Row gagal diproses karena error tak terduga: %v", r),
				}},
				Warnings: []dto.ValidationIssue{},
			}}
		}
	}()

	if !atomic {
		return s.processRow(ctx, s.store, bctx, idx, row, decision)
	}

	// Mode atomic: semua write satu row dalam satu tx. Kalau rollback,
	// entry familyIDMap yang baru ditambah row ini ikut dibatalkan
	// supaya row berikutnya tidak mereferensi Family yang tidak jadi ada.
	tokenBefore, hadBefore := "", false
	if tok := helper.CollapseSpaces(row.FamilyID); tok != "" {
		_, hadBefore = bctx.familyIDMap[tok]
		tokenBefore = tok
	}

	err := s.store.Transaction(ctx, func(txStore ImportStore) error {
		out = s.processRow(ctx, txStore, bctx, idx, row, decision)
		if !out.result.Success {
			return fmt.Errorf("row %d gagal, rollback", idx)
		}
		return nil
	})
	if err != nil {
		if out.result.Success {
			// fn sukses tapi commit gagal
			out.result.Success = false
			out.result.Errors = append(out.result.Errors, dto.ValidationIssue{
				Field:   "row",
				Code:    dto.IssuePartialWrite,
				Message: fmt.Sprintf("Transaksi row gagal di-commit: %v", err),
			})
		}
		if tokenBefore != "" && !hadBefore {
			delete(bctx.familyIDMap, tokenBefore)
		}
		out.createdFamilyID = nil
		out.createdStudentID = nil
		out.updatedStudentID = nil
		out.createdParentIDs = nil
		out.classAssigned = false
		out.result.ClassAssigned = false
	}
	return out
}

func (s *ImportService) processRow(ctx context.Context, store ImportStore, bctx *batchContext, idx int, row dto.ImportRow, decision string) rowOutcome {
	out := rowOutcome{result: dto.RowImportResult{
		RowIndex: idx,
		Errors:   []dto.ValidationIssue{},
		Warnings: []dto.ValidationIssue{},
	}}
	res := &out.result

	addErr := func(field, code, msg string) {
		res.Errors = append(res.Errors, dto.ValidationIssue{Field: field, Code: code, Message: msg})
	}
	addWarn := func(field, code, msg string) {
		res.Warnings = append(res.Warnings, dto.ValidationIssue{Field: field, Code: code, Message: msg})
	}

	// 1) parse nama, gagal = skip row
	studentName := ParseStudentName(row.StudentName)
	if studentName == nil {
		addErr("studentName", dto.IssueFormat, fmt.Sprintf("Nama siswa %q tidak bisa diparse", row.StudentName))
		return out
	}
	parentNames := ParseParentNames(row.ParentName)
	if parentNames == nil {
		addErr("parentName", dto.IssueFormat, fmt.Sprintf("Nama orang tua %q tidak bisa diparse", row.ParentName))
		return out
	}

	// 2) resolve family
	family, created, err := s.resolveFamily(ctx, store, bctx, row, studentName, parentNames)
	if err != nil {
		addErr("familyId", dto.IssueLookupNotFound, fmt.Sprintf("Gagal resolve family: %v", err))
		return out
	}
	if created {
		id := family.FamilyID
		out.createdFamilyID = &id
	}
	res.Family = fDTO.NewFamilyResponse(family)

	// 3) grade/class dari snapshot batch; tidak ketemu bukan fatal di sini
	// (sudah dilaporkan saat validasi), row jalan terus tanpa grade/class
	grade := bctx.lookups.GradeByName(row.Grade)
	var gradeID *uuid.UUID
	if grade != nil {
		v := grade.GradeID
		gradeID = &v
	}
	var class *aModel.ClassModel
	if helper.CollapseSpaces(row.Class) != "" {
		var scoped bool
		class, scoped = bctx.lookups.ClassByName(row.Class, gradeID)
		if class != nil && !scoped && grade != nil {
			addWarn("class", dto.IssueLookupNotFound,
				fmt.Sprintf("Class %q tidak terdaftar di grade %q, dipakai lewat fallback global", row.Class, grade.GradeName))
		}
	}

	// 4) aplikasikan keputusan duplikat
	var student *sModel.StudentModel
	updated := false
	if decision == dto.DuplicateActionMerge || decision == dto.DuplicateActionUpdate {
		identity := IdentityFromRow(studentName, row.StudentID, row.DateOfBirth, row.Grade, bctx.lookups)
		cands, derr := FindDuplicateCandidates(ctx, store, identity)
		if derr != nil {
			addWarn("studentName", dto.IssueDuplicateFound, "Pengecekan duplikat gagal, lanjut sebagai create")
		} else if len(cands) > 0 {
			// kandidat pertama = yang paling baru dibuat
			student = cands[0].Student
			switch decision {
			case dto.DuplicateActionUpdate:
				// overwrite total grade + family, tandai aktif
				student.StudentGradeID = gradeID
				student.StudentFamilyID = family.FamilyID
			case dto.DuplicateActionMerge:
				// isi hanya field yang masih kosong
				if student.StudentGradeID == nil {
					student.StudentGradeID = gradeID
				}
				if student.StudentFamilyID == uuid.Nil {
					student.StudentFamilyID = family.FamilyID
				}
			}
			student.StudentEnrollmentStatus = sModel.EnrollmentStatusActive
			if err := store.SaveStudent(ctx, student); err != nil {
				addErr("studentName", dto.IssuePartialWrite, fmt.Sprintf("Gagal update siswa: %v", err))
				return out
			}
			updated = true
			id := student.StudentID
			out.updatedStudentID = &id
		}
		// tidak ada kandidat padahal diminta merge/update → jatuh ke create
	}

	// 5) create siswa baru kalau tidak ada target merge/update
	if student == nil {
		student = &sModel.StudentModel{
			StudentFamilyID:         family.FamilyID,
			StudentGradeID:          gradeID,
			StudentFirstName:        studentName.FirstName,
			StudentLastName:         studentName.LastName,
			StudentDateOfBirth:      ParseImportDate(row.DateOfBirth),
			StudentEnrollmentStatus: sModel.EnrollmentStatusActive,
		}
		if code := helper.CollapseSpaces(row.StudentID); code != "" {
			student.StudentCode = &code
		}
		if err := store.CreateStudent(ctx, student); err != nil {
			addErr("studentName", dto.IssueFormat, fmt.Sprintf("Gagal membuat siswa: %v", err))
			return out
		}
		id := student.StudentID
		out.createdStudentID = &id
	}
	res.Student = sDTO.NewStudentResponse(student)
	res.Updated = updated

	// 6) assignment kelas: upsert idempotent, gagal bukan berarti row batal
	if class != nil {
		sc := &sModel.StudentClassModel{
			StudentClassStudentID: student.StudentID,
			StudentClassClassID:   class.ClassID,
			StudentClassStatus:    sModel.StudentClassStatusActive,
		}
		if err := store.UpsertStudentClass(ctx, sc); err != nil {
			addErr("class", dto.IssuePartialWrite, fmt.Sprintf("Siswa terbuat tapi assignment kelas gagal: %v", err))
		} else {
			res.ClassAssigned = true
			out.classAssigned = true
		}
	}

	// 7) buat & link orang tua. Orang tua dengan nama sama yang sudah
	// ada di family dipakai ulang supaya re-import tidak menggandakan.
	existingParents := map[string]*fModel.ParentModel{}
	if have, perr := store.ParentsByFamily(ctx, family.FamilyID); perr == nil {
		for i := range have {
			p := &have[i]
			existingParents[parentKey(p.ParentFirstName, p.ParentLastName)] = p
		}
	}

	claimedFather, claimedMother := false, false
	for pi, pn := range parentNames {
		if pn.FirstName == "" {
			continue
		}

		rel := fModel.ParentRelationshipGuardian
		matched := false
		lowerFirst := strings.ToLower(pn.FirstName)
		for _, rule := range relationshipRules {
			if strings.Contains(lowerFirst, rule.keyword) {
				rel = rule.relationship
				matched = true
				break
			}
		}
		// fallback: field cell mana yang terisi; sekali kepakai tidak
		// boleh mengklaim parent kedua juga
		if !matched {
			switch {
			case helper.CollapseSpaces(row.FatherCell) != "" && !claimedFather:
				rel = fModel.ParentRelationshipFather
			case helper.CollapseSpaces(row.MotherCell) != "" && !claimedMother:
				rel = fModel.ParentRelationshipMother
			}
		}
		switch rel {
		case fModel.ParentRelationshipFather:
			claimedFather = true
		case fModel.ParentRelationshipMother:
			claimedMother = true
		}

		phone := parentPhone(rel, row)
		lastName := pn.LastName
		if lastName == "" {
			lastName = family.FamilyName
		}

		parent, exists := existingParents[parentKey(pn.FirstName, lastName)]
		if !exists {
			parent = &fModel.ParentModel{
				ParentFamilyID:         family.FamilyID,
				ParentFirstName:        pn.FirstName,
				ParentLastName:         lastName,
				ParentRelationship:     rel,
				ParentIsPrimaryContact: pi == 0,
				ParentCanPickup:        true,
				ParentEmergencyContact: true,
			}
			if phone != "" {
				parent.ParentPhone = &phone
			}
			if err := store.CreateParent(ctx, parent); err != nil {
				addErr("parentName", dto.IssuePartialWrite, fmt.Sprintf("Gagal membuat orang tua %q: %v", pn.FirstName, err))
				continue
			}
			existingParents[parentKey(pn.FirstName, lastName)] = parent
			out.createdParentIDs = append(out.createdParentIDs, parent.ParentID)
		}
		res.Parents = append(res.Parents, fDTO.NewParentResponse(parent))

		link := &fModel.ParentStudentModel{
			ParentStudentParentID:     parent.ParentID,
			ParentStudentStudentID:    student.StudentID,
			ParentStudentRelationship: rel,
			ParentStudentIsPrimary:    pi == 0,
		}
		if err := store.UpsertParentStudent(ctx, link); err != nil {
			addErr("parentName", dto.IssuePartialWrite, fmt.Sprintf("Orang tua %q terbuat tapi gagal dilink ke siswa: %v", pn.FirstName, err))
		}
	}

	res.Success = true
	return out
}

// resolveFamily: (a) token familyId yang sudah dikenal batch ini,
// (b) pencarian nama (+alamat) exact ci, (c) buat baru.
// Token familyId SELALU dicatat ke familyIDMap supaya kakak-adik
// di row berikutnya jatuh ke Family yang sama.
func (s *ImportService) resolveFamily(ctx context.Context, store ImportStore, bctx *batchContext, row dto.ImportRow, studentName *ParsedName, parents []*ParsedName) (*fModel.FamilyModel, bool, error) {
	token := helper.CollapseSpaces(row.FamilyID)
	address := helper.CollapseSpaces(row.Address)

	// surname keluarga: orang tua pertama, fallback surname siswa
	famName := studentName.LastName
	if len(parents) > 0 && parents[0].LastName != "" {
		famName = parents[0].LastName
	}

	remember := func(f *fModel.FamilyModel) {
		if token != "" {
			bctx.familyIDMap[token] = f.FamilyID
		}
	}

	// (a) token sudah dipetakan row sebelumnya; re-fetch untuk memastikan
	// Family-nya masih ada (kalau sudah dihapus, jatuh ke pencarian)
	if token != "" {
		if famID, ok := bctx.familyIDMap[token]; ok {
			f, err := store.FamilyByID(ctx, famID)
			if err != nil {
				return nil, false, err
			}
			if f != nil {
				return f, false, nil
			}
		}
	}

	// (b) cari by nama (+alamat kalau ada)
	if famName != "" {
		f, err := store.FindFamilyByNameAddress(ctx, famName, address)
		if err != nil {
			return nil, false, err
		}
		if f != nil {
			remember(f)
			return f, false, nil
		}
	}

	// (c) buat baru dari hasil parse
	f := &fModel.FamilyModel{FamilyName: famName}
	if address != "" {
		f.FamilyAddress = &address
	}
	if phone := helper.CollapseSpaces(row.HomePhone); phone != "" {
		f.FamilyPhone = &phone
	}
	if err := store.CreateFamily(ctx, f); err != nil {
		return nil, false, err
	}
	remember(f)
	return f, true, nil
}

func parentKey(first, last string) string {
	return strings.ToLower(helper.CollapseSpaces(first)) + "|" + strings.ToLower(helper.CollapseSpaces(last))
}

func parentPhone(rel string, row dto.ImportRow) string {
	switch rel {
	case fModel.ParentRelationshipFather:
		if p := helper.CollapseSpaces(row.FatherCell); p != "" {
			return p
		}
	case fModel.ParentRelationshipMother:
		if p := helper.CollapseSpaces(row.MotherCell); p != "" {
			return p
		}
	}
	return helper.CollapseSpaces(row.HomePhone)
}
