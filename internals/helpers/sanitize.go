// internals/helpers/sanitize.go
package helper

import (
	"strconv"
	"strings"
	"unicode"
)

// CollapseSpaces trim + rapikan spasi ganda jadi satu
func CollapseSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// DigitsOnly buang semua karakter non-digit (untuk normalisasi nomor telepon)
func DigitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ParseAmount parse nominal uang dari spreadsheet:
// buang simbol mata uang/koma/spasi, lalu parse sebagai float.
// Nilai negatif dianggap tidak valid.
func ParseAmount(s string) (float64, error) {
	cleaned := strings.Map(func(r rune) rune {
		if unicode.IsDigit(r) || r == '.' || r == '-' {
			return r
		}
		return -1
	}, strings.TrimSpace(s))

	n, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, strconv.ErrRange
	}
	return n, nil
}
