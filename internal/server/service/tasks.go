package service

import (
	"context"
	"strings"
	"time"

	"github.com/IvanChernomyrdin/go-yandex-taskplanner/internal/shared/models"
	serr "github.com/IvanChernomyrdin/go-yandex-taskplanner/internal/shared/errors"
)

// TasksService реализует бизнес-логику работы с задачами пользователя.
//
// Сервис:
//   - валидирует входные данные (priority, dueDate, обязательные поля);
//   - не знает о HTTP и БД напрямую.
type TasksService struct {
	repo TasksRepo
}

// NewTasksService создаёт новый TasksService.
func NewTasksService(repo TasksRepo) *TasksService {
	return &TasksService{repo: repo}
}

// validPriority проверяет значение приоритета.
func validPriority(p string) bool {
	switch p {
	case models.PriorityLow, models.PriorityMedium, models.PriorityHigh:
		return true
	}
	return false
}

// parseDueDate разбирает срок выполнения из строки.
//
// Принимаются форматы "2006-01-02" и RFC3339.
// Пустая строка означает отсутствие срока (nil, без ошибки).
func parseDueDate(s string) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return &t, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return &t, nil
	}
	return nil, serr.ErrInvalidInput
}

// List возвращает все задачи пользователя.
func (s *TasksService) List(ctx context.Context, userID int64) ([]models.Task, error) {
	return s.repo.List(ctx, userID)
}

// Create создаёт новую задачу.
//
// Валидации:
//   - title не пустой;
//   - priority ∈ {low, medium, high};
//   - dueDate (если задан) парсится по "2006-01-02" или RFC3339;
//   - projectID (если задан) должен указывать на проект того же
//     пользователя — это проверяет репозиторий тем же запросом,
//     чужой проект выглядит как ErrNotFound.
//
// Ошибки:
//   - ErrInvalidInput
//   - ErrNotFound
//   - ErrInternal
func (s *TasksService) Create(ctx context.Context, userID int64, req models.CreateTaskRequest) (models.Task, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" || !validPriority(req.Priority) {
		return models.Task{}, serr.ErrInvalidInput
	}
	if req.ProjectID != nil && *req.ProjectID <= 0 {
		return models.Task{}, serr.ErrInvalidInput
	}

	due, err := parseDueDate(req.DueDate)
	if err != nil {
		return models.Task{}, err
	}

	return s.repo.Create(ctx, userID, title, req.Description, req.ProjectID, req.Priority, due)
}

// Update применяет частичное обновление задачи.
//
// Переданные поля проходят те же проверки, что и при создании;
// непереданные не меняются. Повторное применение того же патча
// оставляет строку в том же состоянии.
//
// Ошибки:
//   - ErrInvalidInput
//   - ErrNotFound — нет такой строки, строка чужая или чужой projectID
func (s *TasksService) Update(ctx context.Context, userID int64, req models.UpdateTaskRequest) (models.Task, error) {
	if req.ID <= 0 {
		return models.Task{}, serr.ErrInvalidInput
	}
	if req.Title != nil && strings.TrimSpace(*req.Title) == "" {
		return models.Task{}, serr.ErrInvalidInput
	}
	if req.Priority != nil && !validPriority(*req.Priority) {
		return models.Task{}, serr.ErrInvalidInput
	}
	if req.ProjectID != nil && *req.ProjectID <= 0 {
		return models.Task{}, serr.ErrInvalidInput
	}

	var due *time.Time
	if req.DueDate != nil {
		parsed, err := parseDueDate(*req.DueDate)
		if err != nil {
			return models.Task{}, err
		}
		due = parsed
	}

	return s.repo.Update(ctx, userID, req.ID, req.Title, req.Description, req.ProjectID, req.Priority, due, req.Completed)
}

// Delete удаляет задачу.
//
// Ошибки:
//   - ErrInvalidInput
//   - ErrNotFound — нет такой строки или строка чужая (неразличимо)
func (s *TasksService) Delete(ctx context.Context, userID, id int64) error {
	if id <= 0 {
		return serr.ErrInvalidInput
	}
	return s.repo.Delete(ctx, userID, id)
}
