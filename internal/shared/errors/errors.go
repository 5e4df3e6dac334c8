// Package errors содержит общие доменные ошибки приложения.
//
// Эти ошибки используются в service и repository слоях
// и маппятся на HTTP-статусы в api слое.
package errors

import "errors"

var (
	// Входные данные невалидны (пустые поля, неправильный формат и т.п.)
	ErrInvalidInput = errors.New("invalid input")
	// Неверные учётные данные
	ErrInvalidCredentials = errors.New("invalid credentials")
	// Получена непредвиденная ошибка
	ErrInternal = errors.New("internal error")
	// Полученные JSON данные с ошибками
	ErrBadJSON = errors.New("bad json")
	// Неавторизован
	ErrUnauthorized = errors.New("unauthorized")
	// Email уже занят другим пользователем
	ErrEmailTaken = errors.New("user already exists")
	// Ресурс не найден. Намеренно одна и та же ошибка для
	// "нет такой записи" и "запись принадлежит другому пользователю":
	// чужие id не должны отличаться от несуществующих.
	ErrNotFound = errors.New("not found")
)

// только для клиента (agent)
var (
	// Задача отсутствует в локальном сторе
	ErrTaskNotFound = errors.New("task not found in local store")
	// Проект отсутствует в локальном сторе
	ErrProjectNotFound = errors.New("project not found in local store")
)
