// Package response содержит типы JSON‑ответов сервиса и константы
// сообщений. Тексты сообщений зафиксированы как внешний контракт:
// доменные неуспехи (занятый email, несовпадение учётных данных,
// отсутствие записи) отдаются с кодом 200 и телом, описывающим исход,
// а недоступность хранилища — с кодом 500.
package response

// Status — тело ответа с исходом операции; Token заполняется при входе.
type Status struct {
	Status string `json:"status"`
	Token  string `json:"token,omitempty"`
}

// Message — тело ответа с пояснительным сообщением: ошибки валидации
// параметров и статусы сессии.
type Message struct {
	Message string `json:"message"`
}

// Exception — тело ответа при недоступности хранилища.
type Exception struct {
	Exception string `json:"exception"`
}

// Profile — тело ответа операции просмотра пользователя. LastLogin содержит
// либо список дат входов в читаемом виде, либо маркер MarkerNeverLoggedIn.
type Profile struct {
	Username  string `json:"username"`
	Email     string `json:"email"`
	LastLogin any    `json:"lastlogin"`
}

// UserNotFound — тело ответа просмотра для неизвестного email.
type UserNotFound struct {
	User string `json:"user"`
}

// Тексты сообщений и статусов внешнего контракта.
const (
	MsgEmailParamMissing    = "parameter email missing"
	MsgMissingUserEmailPass = "one of the mandatory parameter is missing ( username, email, password )"
	MsgMissingEmailPass     = "one of the mandatory parameter is missing ( email, password )"
	MsgMissingEmailUser     = "one of the mandatory parameter is missing ( email, username )"
	MsgBadEmailValue        = "bad value to the parameter email"
	MsgBadPasswordValue     = "bad value to the parameter password"

	StatusUserAdded        = "user added successfully"
	StatusEmailTaken       = "please try with new email address"
	StatusUserDeleted      = "user deleted successfully"
	StatusUserDeleteFailed = "user delete failed"
	StatusUserUpdated      = "user profile updated successfully"
	StatusUserUpdateFailed = "user profile update failed"
	StatusLoginSuccessful  = "user login successful"
	StatusLoginFailed      = "user login failed"

	MarkerNeverLoggedIn = "user has not logged in"
	ValueUserNotFound   = "user not found"
	ExceptionStorage    = "Some issue with MongoDB Connectivity"
)

// TimeLayout — формат дат входов в теле ответа просмотра.
const TimeLayout = "2006-01-02 15:04:05"

// Msg возвращает Message с переданным текстом.
func Msg(msg string) Message {
	return Message{Message: msg}
}

// StatusOnly возвращает Status без токена.
func StatusOnly(status string) Status {
	return Status{Status: status}
}

// StorageException возвращает стандартное тело ошибки хранилища.
func StorageException() Exception {
	return Exception{Exception: ExceptionStorage}
}
