package service

import (
	"strings"
	"unicode"

	"github.com/google/uuid"
)

// slugify приводит название к url-безопасному виду: нижний регистр,
// не-алфавитные символы схлопываются в дефисы. Для пустого результата
// генерируется uuid, чтобы не нарушить уникальность слага.
func slugify(name string) string {
	var b strings.Builder
	prevDash := true // срезаем ведущие дефисы
	for _, r := range strings.ToLower(name) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
			prevDash = false
		case !prevDash:
			b.WriteByte('-')
			prevDash = true
		}
	}
	slug := strings.TrimRight(b.String(), "-")
	if slug == "" {
		return uuid.NewString()
	}
	return slug
}
