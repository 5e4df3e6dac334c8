// Package models содержит плоские модели задач и проектов,
// общие для сервера и клиента (agent).
//
// Имена JSON-полей совпадают с контрактом HTTP API (camelCase).
package models

import "time"

// Priority — допустимые значения приоритета задачи.
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

// Project — проект пользователя.
//
// Поля:
//   - ID: уникальный идентификатор (serial)
//   - Name: название проекта
//   - Description: опциональное описание
//   - UserID: владелец проекта; назначается сервером и не меняется
//   - CreatedAt: время создания (серверное)
type Project struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	UserID      int64     `json:"userId"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Task — задача пользователя.
//
// Поля:
//   - ID: уникальный идентификатор (serial)
//   - Title: заголовок задачи
//   - Description: опциональное описание
//   - UserID: владелец задачи; назначается сервером и не меняется
//   - ProjectID: опциональная привязка к проекту того же пользователя
//   - Priority: low | medium | high
//   - DueDate: опциональный срок выполнения
//   - Completed: выполнена ли задача (по умолчанию false)
//   - CreatedAt: время создания (серверное)
type Task struct {
	ID          int64      `json:"id"`
	Title       string     `json:"title"`
	Description *string    `json:"description,omitempty"`
	UserID      int64      `json:"userId"`
	ProjectID   *int64     `json:"projectId,omitempty"`
	Priority    string     `json:"priority"`
	DueDate     *time.Time `json:"dueDate,omitempty"`
	Completed   bool       `json:"completed"`
	CreatedAt   time.Time  `json:"createdAt"`
}

// CreateProjectRequest — запрос на создание проекта.
//
// Используется в:
//
//	POST /projects
type CreateProjectRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
}

// UpdateProjectRequest — запрос на частичное обновление проекта.
//
// Используется в:
//
//	PUT /projects
//
// ID обязателен, остальные поля — указатели: передаются только изменяемые.
// UserID клиента игнорируется, владелец всегда берётся из токена.
type UpdateProjectRequest struct {
	ID          int64   `json:"id"`
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
}

// CreateTaskRequest — запрос на создание задачи.
//
// Используется в:
//
//	POST /tasks
//
// DueDate передаётся строкой "2006-01-02" (или RFC3339);
// пустая строка означает отсутствие срока.
type CreateTaskRequest struct {
	Title       string  `json:"title"`
	Description *string `json:"description,omitempty"`
	ProjectID   *int64  `json:"projectId,omitempty"`
	Priority    string  `json:"priority"`
	DueDate     string  `json:"dueDate,omitempty"`
}

// UpdateTaskRequest — запрос на частичное обновление задачи.
//
// Используется в:
//
//	PUT /tasks
//
// ID обязателен, остальные поля — указатели: передаются только изменяемые.
type UpdateTaskRequest struct {
	ID          int64   `json:"id"`
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	ProjectID   *int64  `json:"projectId,omitempty"`
	Priority    *string `json:"priority,omitempty"`
	DueDate     *string `json:"dueDate,omitempty"`
	Completed   *bool   `json:"completed,omitempty"`
}

// DeleteRequest — запрос на удаление проекта или задачи по ID.
//
// Используется в:
//
//	DELETE /projects
//	DELETE /tasks
type DeleteRequest struct {
	ID int64 `json:"id"`
}

// MessageResponse — ответ на удаление.
//
// Пример: {"message": "project deleted successfully"}
type MessageResponse struct {
	Message string `json:"message"`
}
