// file: internals/features/school/imports/service/lookups.go
package service

import (
	"context"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/lithammer/fuzzysearch/fuzzy"

	aModel "schoolku_backend/internals/features/school/academics/model"
)

// RefLookups = snapshot data referensi (grades & classes) yang di-load
// SEKALI di awal batch. Semua row dalam satu batch melihat snapshot yang
// sama; perubahan referensi di tengah batch tidak ikut terbaca.
type RefLookups struct {
	grades  []aModel.GradeModel
	classes []aModel.ClassModel

	gradeByName map[string]*aModel.GradeModel // key: nama & alias, sudah lowercase
	classByKey  map[string][]*aModel.ClassModel
}

func lookupKey(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// LoadRefLookups membaca grades + classes aktif dan membangun index.
func LoadRefLookups(ctx context.Context, store ImportStore) (*RefLookups, error) {
	grades, err := store.AllGrades(ctx)
	if err != nil {
		return nil, err
	}
	classes, err := store.AllClasses(ctx)
	if err != nil {
		return nil, err
	}

	l := &RefLookups{
		grades:      grades,
		classes:     classes,
		gradeByName: make(map[string]*aModel.GradeModel, len(grades)*2),
		classByKey:  make(map[string][]*aModel.ClassModel, len(classes)),
	}

	for i := range grades {
		g := &grades[i]
		l.gradeByName[lookupKey(g.GradeName)] = g
		for _, alias := range g.GradeAliases {
			if k := lookupKey(alias); k != "" {
				// nama resmi menang kalau alias bentrok
				if _, taken := l.gradeByName[k]; !taken {
					l.gradeByName[k] = g
				}
			}
		}
	}
	for i := range classes {
		c := &classes[i]
		k := lookupKey(c.ClassName)
		l.classByKey[k] = append(l.classByKey[k], c)
	}

	return l, nil
}

// GradeByName mencocokkan nama / alias grade, case-insensitive.
func (l *RefLookups) GradeByName(name string) *aModel.GradeModel {
	if l == nil {
		return nil
	}
	return l.gradeByName[lookupKey(name)]
}

// ClassByName mencari class dengan nama persis (ci). Kalau gradeID diisi,
// class yang menempel di grade tsb diprioritaskan; scoped=false artinya
// match hanya ketemu di grade lain (boleh dipakai, tapi patut diwarning).
func (l *RefLookups) ClassByName(name string, gradeID *uuid.UUID) (class *aModel.ClassModel, scoped bool) {
	if l == nil {
		return nil, false
	}
	matches := l.classByKey[lookupKey(name)]
	if len(matches) == 0 {
		return nil, false
	}
	if gradeID != nil {
		for _, c := range matches {
			if c.ClassGradeID == *gradeID {
				return c, true
			}
		}
	}
	return matches[0], gradeID == nil
}

// GradeNames mengembalikan daftar nama grade resmi (tanpa alias),
// urut sesuai snapshot, untuk pesan error lookup.
func (l *RefLookups) GradeNames() []string {
	if l == nil {
		return nil
	}
	out := make([]string, 0, len(l.grades))
	for i := range l.grades {
		out = append(out, l.grades[i].GradeName)
	}
	return out
}

// ClassNames mengembalikan nama class yang tersedia; kalau gradeID diisi,
// hanya class milik grade tsb (sesuai pesan error yang scoped).
func (l *RefLookups) ClassNames(gradeID *uuid.UUID) []string {
	if l == nil {
		return nil
	}
	out := make([]string, 0, len(l.classes))
	for i := range l.classes {
		c := &l.classes[i]
		if gradeID != nil && c.ClassGradeID != *gradeID {
			continue
		}
		out = append(out, c.ClassName)
	}
	return out
}

// SuggestGrades mengembalikan nama grade termirip untuk pesan
// "tidak dikenal, mungkin maksud Anda ...". Maksimal 3.
func (l *RefLookups) SuggestGrades(name string) []string {
	if l == nil {
		return nil
	}
	names := make([]string, 0, len(l.grades))
	for i := range l.grades {
		names = append(names, l.grades[i].GradeName)
	}
	return topFuzzy(name, names, 3)
}

// SuggestClasses idem SuggestGrades, untuk nama class.
func (l *RefLookups) SuggestClasses(name string) []string {
	if l == nil {
		return nil
	}
	seen := make(map[string]bool, len(l.classes))
	names := make([]string, 0, len(l.classes))
	for i := range l.classes {
		n := l.classes[i].ClassName
		if !seen[n] {
			seen[n] = true
			names = append(names, n)
		}
	}
	return topFuzzy(name, names, 3)
}

func topFuzzy(target string, pool []string, max int) []string {
	ranks := fuzzy.RankFindNormalizedFold(target, pool)
	sort.Sort(ranks)
	out := make([]string, 0, max)
	for _, r := range ranks {
		out = append(out, r.Target)
		if len(out) == max {
			break
		}
	}
	return out
}
