package service

import (
	"context"
	"strings"

	"github.com/IvanChernomyrdin/go-yandex-taskplanner/internal/shared/models"
	serr "github.com/IvanChernomyrdin/go-yandex-taskplanner/internal/shared/errors"
)

// ProjectsService реализует бизнес-логику работы с проектами пользователя.
// Сервис:
//   - валидирует входные данные;
//   - не знает о HTTP и БД напрямую;
//   - владельца всегда получает аргументом userID (из identity запроса),
//     клиентские значения владельца сюда не доходят.
type ProjectsService struct {
	repo ProjectsRepo
}

// NewProjectsService создаёт новый ProjectsService.
func NewProjectsService(repo ProjectsRepo) *ProjectsService {
	return &ProjectsService{repo: repo}
}

// List возвращает все проекты пользователя.
func (s *ProjectsService) List(ctx context.Context, userID int64) ([]models.Project, error) {
	return s.repo.List(ctx, userID)
}

// Create создаёт новый проект.
//
// Валидации:
//   - name не пустой.
//
// Ошибки:
//   - ErrInvalidInput — невалидные данные;
//   - ErrInternal — ошибка хранилища.
func (s *ProjectsService) Create(ctx context.Context, userID int64, req models.CreateProjectRequest) (models.Project, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return models.Project{}, serr.ErrInvalidInput
	}
	return s.repo.Create(ctx, userID, name, req.Description)
}

// Update применяет частичное обновление проекта.
//
// Пустое новое имя отклоняется; непереданные поля не меняются.
//
// Ошибки:
//   - ErrInvalidInput
//   - ErrNotFound — нет такой строки или строка чужая (неразличимо)
func (s *ProjectsService) Update(ctx context.Context, userID int64, req models.UpdateProjectRequest) (models.Project, error) {
	if req.ID <= 0 {
		return models.Project{}, serr.ErrInvalidInput
	}
	if req.Name != nil && strings.TrimSpace(*req.Name) == "" {
		return models.Project{}, serr.ErrInvalidInput
	}
	return s.repo.Update(ctx, userID, req.ID, req.Name, req.Description)
}

// Delete удаляет проект вместе с его задачами (cascade).
//
// Ошибки:
//   - ErrInvalidInput
//   - ErrNotFound — нет такой строки или строка чужая (неразличимо)
func (s *ProjectsService) Delete(ctx context.Context, userID, id int64) error {
	if id <= 0 {
		return serr.ErrInvalidInput
	}
	return s.repo.Delete(ctx, userID, id)
}
