// Package storage определяет доменные ошибки слоя хранения. Ошибки этого
// набора означают ожидаемый отрицательный исход операции; любая другая
// ошибка слоя хранения трактуется как недоступность хранилища и на границе
// HTTP отображается в серверную ошибку.
package storage

import "errors"

var (
	// ErrUserExists — запись с таким email уже существует.
	ErrUserExists = errors.New("user already exists")
	// ErrUserNotFound — запись не найдена или не совпали оба поля запроса.
	ErrUserNotFound = errors.New("user not found")
	// ErrInvalidCredentials — пара email и дайджест пароля не совпала
	// ни с одной записью.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrHistoryNotFound — журнал входов для email отсутствует.
	ErrHistoryNotFound = errors.New("login history not found")
)
