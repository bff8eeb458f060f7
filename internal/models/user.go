// Package models содержит доменные модели сервиса учётных записей:
// запись пользователя, журнал входов и профиль для выдачи наружу.
package models

import "time"

// User представляет запись пользователя в хранилище документов.
// Поле Email — уникальный ключ записи.
type User struct {
	Email        string `bson:"email"`
	Username     string `bson:"username"`
	PasswordHash string `bson:"password"`
}

// LoginHistory хранит журнал входов пользователя: упорядоченный по времени
// список отметок, пополняемый только добавлением в конец. Запись появляется
// лишь после первого успешного входа, поэтому "записи нет" и "пустой журнал"
// — разные состояния.
type LoginHistory struct {
	Email     string      `bson:"email"`
	LastLogin []time.Time `bson:"lastlogin"`
}

// UserProfile — модель чтения для операции просмотра пользователя.
// Нулевой LastLogins означает, что журнала входов ещё нет.
type UserProfile struct {
	Username   string
	Email      string
	LastLogins []time.Time
}
