// Package token генерирует непрозрачные идентификаторы сессий.
package token

import (
	"encoding/hex"
	"strings"

	"github.com/google/uuid"
)

// Length — длина выдаваемого токена в символах.
const Length = 6

// New возвращает короткий URL-безопасный токен: первые шесть hex-символов
// случайного UUID, приведённые к верхнему регистру. Токен никак не связан
// с атрибутами пользователя; проверка коллизий не выполняется.
func New() string {
	u := uuid.New()
	return strings.ToUpper(hex.EncodeToString(u[:])[:Length])
}
