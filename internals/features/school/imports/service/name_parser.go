// file: internals/features/school/imports/service/name_parser.go
package service

import (
	"regexp"
	"strings"

	helper "schoolku_backend/internals/helpers"
)

// ParsedName = hasil parse string nama mentah. Ephemeral, tidak pernah
// disimpan; langsung dipakai untuk lookup & insert.
type ParsedName struct {
	FirstName string
	LastName  string
}

var andSplitRe = regexp.MustCompile(`(?i)\band\b`)

// ParseStudentName menerima "Last, First" atau "First Last".
// Butuh minimal dua token terpakai; selain itu nil. Tidak pernah panic,
// input sekotor apa pun.
func ParseStudentName(raw string) *ParsedName {
	raw = helper.CollapseSpaces(raw)
	if raw == "" {
		return nil
	}

	if idx := strings.Index(raw, ","); idx >= 0 {
		last := helper.CollapseSpaces(raw[:idx])
		first := helper.CollapseSpaces(raw[idx+1:])
		if last == "" || first == "" {
			return nil
		}
		return &ParsedName{FirstName: first, LastName: last}
	}

	parts := strings.Fields(raw)
	if len(parts) < 2 {
		return nil
	}
	// token pertama = first name, sisanya surname (menangani "van der Berg" dll.)
	return &ParsedName{
		FirstName: parts[0],
		LastName:  strings.Join(parts[1:], " "),
	}
}

// ParseParentNames memecah string orang tua gabungan, dipisah kata "and".
// Segmen pertama berkomra menentukan surname bersama:
//
//	"Cohen, Yehuda and Bracha" → Yehuda Cohen + Bracha Cohen
//
// Segmen pertama tanpa koma = first name polos tanpa surname (surname
// keluarga diisi belakangan dari Family). Nil kalau tidak ada satu pun
// first name valid.
func ParseParentNames(raw string) []*ParsedName {
	raw = helper.CollapseSpaces(raw)
	if raw == "" {
		return nil
	}

	segments := andSplitRe.Split(raw, -1)
	var out []*ParsedName
	sharedSurname := ""

	for i, seg := range segments {
		seg = helper.CollapseSpaces(strings.Trim(seg, ",& "))
		if seg == "" {
			continue
		}

		if idx := strings.Index(seg, ","); idx >= 0 {
			last := helper.CollapseSpaces(seg[:idx])
			first := helper.CollapseSpaces(seg[idx+1:])
			if first == "" {
				continue
			}
			if i == 0 {
				sharedSurname = last
			}
			out = append(out, &ParsedName{FirstName: first, LastName: last})
			continue
		}

		// tanpa koma: seluruh segmen = first name, mewarisi surname bersama
		out = append(out, &ParsedName{FirstName: seg, LastName: sharedSurname})
	}

	if len(out) == 0 {
		return nil
	}
	return out
}
