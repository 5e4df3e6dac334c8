package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/IvanChernomyrdin/go-yandex-taskplanner/internal/shared/models"
	serr "github.com/IvanChernomyrdin/go-yandex-taskplanner/internal/shared/errors"
)

// TasksRepository реализует доступ к хранилищу задач (PostgreSQL).
type TasksRepository struct {
	db *sql.DB
}

// NewTasksRepository создаёт новый экземпляр TasksRepository.
func NewTasksRepository(db *sql.DB) *TasksRepository {
	return &TasksRepository{db: db}
}

func scanTask(row interface{ Scan(...any) error }) (models.Task, error) {
	var (
		t       models.Task
		desc    sql.NullString
		project sql.NullInt64
		due     sql.NullTime
	)
	if err := row.Scan(&t.ID, &t.Title, &desc, &t.UserID, &project, &t.Priority, &due, &t.Completed, &t.CreatedAt); err != nil {
		return models.Task{}, err
	}
	if desc.Valid {
		t.Description = &desc.String
	}
	if project.Valid {
		t.ProjectID = &project.Int64
	}
	if due.Valid {
		t.DueDate = &due.Time
	}
	return t, nil
}

// List возвращает все задачи пользователя userID.
func (r *TasksRepository) List(ctx context.Context, userID int64) ([]models.Task, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, title, description, user_id, project_id, priority, due_date, completed, created_at
		FROM tasks
		WHERE user_id = $1
		ORDER BY id
	`, userID)
	if err != nil {
		return nil, serr.ErrInternal
	}
	defer rows.Close()

	tasks := make([]models.Task, 0)
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, serr.ErrInternal
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, serr.ErrInternal
	}
	return tasks, nil
}

// Create сохраняет новую задачу.
//
// user_id задаётся сервером из identity запроса.
//
// Если projectID указан, вставка выполняется через
// INSERT ... SELECT FROM projects WHERE id = $proj AND user_id = $caller:
// привязка к чужому или несуществующему проекту не даст ни одной строки
// и вернёт ErrNotFound. Проверка владельца и вставка — один запрос,
// окна между ними нет.
func (r *TasksRepository) Create(
	ctx context.Context,
	userID int64,
	title string,
	description *string,
	projectID *int64,
	priority string,
	dueDate *time.Time,
) (models.Task, error) {

	var row *sql.Row
	if projectID == nil {
		row = r.db.QueryRowContext(ctx, `
			INSERT INTO tasks (title, description, user_id, priority, due_date)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id, title, description, user_id, project_id, priority, due_date, completed, created_at
		`, title, description, userID, priority, dueDate)
	} else {
		row = r.db.QueryRowContext(ctx, `
			INSERT INTO tasks (title, description, user_id, project_id, priority, due_date)
			SELECT $1, $2, $3, p.id, $5, $6
			FROM projects p
			WHERE p.id = $4 AND p.user_id = $3
			RETURNING id, title, description, user_id, project_id, priority, due_date, completed, created_at
		`, title, description, userID, *projectID, priority, dueDate)
	}

	t, err := scanTask(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return models.Task{}, serr.ErrNotFound
		}
		return models.Task{}, serr.ErrInternal
	}
	return t, nil
}

// Update применяет частичное обновление задачи.
//
// NULL-аргументы оставляют прежнее значение (COALESCE).
// Смена projectID дополнительно требует, чтобы новый проект принадлежал
// тому же пользователю — условие входит в тот же UPDATE.
// Несуществующая строка, чужая строка и чужой проект одинаково
// заканчиваются ErrNotFound.
func (r *TasksRepository) Update(
	ctx context.Context,
	userID, id int64,
	title *string,
	description *string,
	projectID *int64,
	priority *string,
	dueDate *time.Time,
	completed *bool,
) (models.Task, error) {

	row := r.db.QueryRowContext(ctx, `
		UPDATE tasks
		SET title       = COALESCE($3, title),
		    description = COALESCE($4, description),
		    project_id  = COALESCE($5, project_id),
		    priority    = COALESCE($6, priority),
		    due_date    = COALESCE($7, due_date),
		    completed   = COALESCE($8, completed)
		WHERE id = $1 AND user_id = $2
		  AND ($5::bigint IS NULL OR EXISTS (
		        SELECT 1 FROM projects p WHERE p.id = $5 AND p.user_id = $2
		  ))
		RETURNING id, title, description, user_id, project_id, priority, due_date, completed, created_at
	`, id, userID, title, description, projectID, priority, dueDate, completed)

	t, err := scanTask(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return models.Task{}, serr.ErrNotFound
		}
		return models.Task{}, serr.ErrInternal
	}
	return t, nil
}

// Delete удаляет задачу пользователя.
//
// Отсутствующая и чужая строка неразличимы: обе дают ErrNotFound.
func (r *TasksRepository) Delete(ctx context.Context, userID, id int64) error {
	var deleted int64
	err := r.db.QueryRowContext(ctx, `
		DELETE FROM tasks
		WHERE id = $1 AND user_id = $2
		RETURNING id
	`, id, userID).Scan(&deleted)

	if err != nil {
		if err == sql.ErrNoRows {
			return serr.ErrNotFound
		}
		return serr.ErrInternal
	}
	return nil
}
