// Package slug реализует детерминированное выведение URL-безопасного slug
// из имени клиента: нижний регистр, удаление диакритики, схлопывание
// последовательностей не-алфанумерик символов в один дефис, обрезка
// дефисов по краям. Make идемпотентен: повторная нормализация уже
// нормализованного slug ничего не меняет.
package slug

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var stripDiacritics = transform.Chain(
	norm.NFD,
	runes.Remove(runes.In(unicode.Mn)),
	norm.NFC,
)

// Make выводит slug из произвольного имени.
func Make(name string) string {
	folded, _, err := transform.String(stripDiacritics, name)
	if err != nil {
		// Трансформация рун не может провалиться на корректном UTF-8,
		// но на всякий случай работаем с исходной строкой.
		folded = name
	}
	folded = strings.ToLower(folded)

	var b strings.Builder
	b.Grow(len(folded))
	pendingHyphen := false
	for _, r := range folded {
		if r >= 'a' && r <= 'z' || r >= '0' && r <= '9' {
			if pendingHyphen && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingHyphen = false
			b.WriteRune(r)
			continue
		}
		pendingHyphen = true
	}
	return b.String()
}

// IsValid сообщает, является ли строка уже нормализованным slug.
func IsValid(s string) bool {
	return s != "" && Make(s) == s
}
