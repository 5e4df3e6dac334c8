// Package repository содержит реализации слоя доступа к данным (Repository layer).
//
// Репозитории инкапсулируют работу с БД и не содержат бизнес-логики.
// Все ошибки приводятся к доменным ошибкам из internal/shared/errors.
//
// Ключевое правило слоя: каждый UPDATE/DELETE выполняется одним запросом
// с двойным предикатом (id = $x AND user_id = $caller). Отдельного
// "сначала прочитать, потом сравнить владельца" нет — иначе между проверкой
// и записью успел бы вклиниться конкурентный запрос.
package repository

import (
	"context"
	"database/sql"

	"github.com/IvanChernomyrdin/go-yandex-taskplanner/internal/shared/models"
	serr "github.com/IvanChernomyrdin/go-yandex-taskplanner/internal/shared/errors"
)

// ProjectsRepository реализует доступ к хранилищу проектов (PostgreSQL).
type ProjectsRepository struct {
	db *sql.DB
}

// NewProjectsRepository создаёт новый экземпляр ProjectsRepository.
func NewProjectsRepository(db *sql.DB) *ProjectsRepository {
	return &ProjectsRepository{db: db}
}

func scanProject(row interface{ Scan(...any) error }) (models.Project, error) {
	var (
		p    models.Project
		desc sql.NullString
	)
	if err := row.Scan(&p.ID, &p.Name, &desc, &p.UserID, &p.CreatedAt); err != nil {
		return models.Project{}, err
	}
	if desc.Valid {
		p.Description = &desc.String
	}
	return p, nil
}

// List возвращает все проекты пользователя userID.
func (r *ProjectsRepository) List(ctx context.Context, userID int64) ([]models.Project, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, description, user_id, created_at
		FROM projects
		WHERE user_id = $1
		ORDER BY id
	`, userID)
	if err != nil {
		return nil, serr.ErrInternal
	}
	defer rows.Close()

	projects := make([]models.Project, 0)
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, serr.ErrInternal
		}
		projects = append(projects, p)
	}
	if err := rows.Err(); err != nil {
		return nil, serr.ErrInternal
	}
	return projects, nil
}

// Create сохраняет новый проект.
//
// user_id берётся только из аргумента userID (identity запроса),
// никакое значение из тела запроса сюда не попадает.
func (r *ProjectsRepository) Create(ctx context.Context, userID int64, name string, description *string) (models.Project, error) {
	row := r.db.QueryRowContext(ctx, `
		INSERT INTO projects (name, description, user_id)
		VALUES ($1, $2, $3)
		RETURNING id, name, description, user_id, created_at
	`, name, description, userID)

	p, err := scanProject(row)
	if err != nil {
		return models.Project{}, serr.ErrInternal
	}
	return p, nil
}

// Update применяет частичное обновление проекта.
//
// NULL-аргументы оставляют прежнее значение (COALESCE).
// Если строка не найдена ИЛИ принадлежит другому пользователю —
// возвращается одинаковый ErrNotFound.
func (r *ProjectsRepository) Update(ctx context.Context, userID, id int64, name, description *string) (models.Project, error) {
	row := r.db.QueryRowContext(ctx, `
		UPDATE projects
		SET name        = COALESCE($3, name),
		    description = COALESCE($4, description)
		WHERE id = $1 AND user_id = $2
		RETURNING id, name, description, user_id, created_at
	`, id, userID, name, description)

	p, err := scanProject(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return models.Project{}, serr.ErrNotFound
		}
		return models.Project{}, serr.ErrInternal
	}
	return p, nil
}

// Delete удаляет проект пользователя.
//
// Задачи проекта удаляются каскадно (FK tasks.project_id ON DELETE CASCADE).
// Отсутствующая и чужая строка неразличимы: обе дают ErrNotFound.
func (r *ProjectsRepository) Delete(ctx context.Context, userID, id int64) error {
	var deleted int64
	err := r.db.QueryRowContext(ctx, `
		DELETE FROM projects
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
