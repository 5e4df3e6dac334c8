// Package service содержит бизнес-логику приложения (task planner).
// Это прослойка между HTTP-обработчиками (api) и хранилищем данных (repository).
package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/IvanChernomyrdin/go-yandex-taskplanner/internal/server/config"
	"github.com/IvanChernomyrdin/go-yandex-taskplanner/internal/shared/models"
)

// Repositories — набор интерфейсов, которые сервисный слой ожидает от слоя repository.
type Repositories struct {
	Users    UsersRepo
	Sessions SessionsRepo
	Projects ProjectsRepo
	Tasks    TasksRepo
}

// Services — агрегатор всех сервисов приложения.
type Services struct {
	Auth     *AuthService
	Projects *ProjectsService
	Tasks    *TasksService
}

// NewServices собирает все сервисы приложения.
// cfg нужен AuthService (параметры хеширования пароля и JWT).
func NewServices(repos Repositories, cfg *config.Config) *Services {
	return &Services{
		Auth:     NewAuthService(repos.Users, repos.Sessions, cfg),
		Projects: NewProjectsService(repos.Projects),
		Tasks:    NewTasksService(repos.Tasks),
	}
}

// UsersRepo — репозиторий пользователей (нужен для auth/signup/login).
type UsersRepo interface {
	Create(ctx context.Context, name, email, passwordHash string) (int64, error)
	GetByEmail(ctx context.Context, email string) (int64, string, string, error)
	GetByID(ctx context.Context, id int64) (string, string, error)
}

// SessionsRepo — репозиторий refresh-сессий.
type SessionsRepo interface {
	Create(ctx context.Context, userID int64, refreshHash []byte, expiresAt time.Time) (uuid.UUID, error)
	GetByRefreshHash(ctx context.Context, refreshHash []byte) (id uuid.UUID, userID int64, expiresAt time.Time, revokedAt *time.Time, err error)
	RevokeAndReplace(ctx context.Context, oldID, newID uuid.UUID) error
	RevokeAllForUser(ctx context.Context, userID int64) error
}

// ProjectsRepo — репозиторий проектов: CRUD, каждый метод ограничен userID.
type ProjectsRepo interface {
	List(ctx context.Context, userID int64) ([]models.Project, error)
	Create(ctx context.Context, userID int64, name string, description *string) (models.Project, error)
	Update(ctx context.Context, userID, id int64, name, description *string) (models.Project, error)
	Delete(ctx context.Context, userID, id int64) error
}

// TasksRepo — репозиторий задач: CRUD, каждый метод ограничен userID.
type TasksRepo interface {
	List(ctx context.Context, userID int64) ([]models.Task, error)
	Create(ctx context.Context, userID int64, title string, description *string, projectID *int64, priority string, dueDate *time.Time) (models.Task, error)
	Update(ctx context.Context, userID, id int64, title, description *string, projectID *int64, priority *string, dueDate *time.Time, completed *bool) (models.Task, error)
	Delete(ctx context.Context, userID, id int64) error
}
