// Package password реализует детерминированное хеширование паролей.
//
// Digest возвращает несолёный MD5-хэш в hex-представлении. Алгоритм
// унаследован от существующего формата хранения: одинаковые пароли дают
// одинаковые дайджесты, сравнение выполняется только на равенство.
// Смена алгоритма меняет формат данных в хранилище и требует миграции.
package password

import (
	"crypto/md5"
	"encoding/hex"
)

// Digest принимает пароль пользователя и возвращает его hex-дайджест
// фиксированной длины. Для одного и того же входа результат всегда одинаков.
func Digest(password string) string {
	sum := md5.Sum([]byte(password))
	return hex.EncodeToString(sum[:])
}
