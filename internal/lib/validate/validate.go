// Package validate содержит чистые функции проверки параметров запроса:
// наличие значения, форма адреса электронной почты и форма пароля.
// Функции не имеют побочных эффектов; обработчики HTTP применяют их
// в строго заданном порядке: сначала наличие, затем форма.
package validate

import "regexp"

var (
	emailRe    = regexp.MustCompile(`^[^@]+@[^@]+\.[^@]+$`)
	passwordRe = regexp.MustCompile(`^[A-Za-z0-9@#$%^&+=]{8,}$`)
)

// Presence сообщает, задано ли значение параметра (непустая строка).
func Presence(value string) bool {
	return len(value) > 0
}

// Email проверяет форму адреса: непустая локальная часть без @, один символ @,
// домен с хотя бы одной точкой. Это форма "x@y.z", а не полный RFC 5322.
func Email(value string) bool {
	return emailRe.MatchString(value)
}

// Password проверяет, что вся строка состоит минимум из 8 символов
// набора A-Z, a-z, 0-9 и @#$%^&+=. Частичное совпадение не засчитывается.
func Password(value string) bool {
	return passwordRe.MatchString(value)
}
